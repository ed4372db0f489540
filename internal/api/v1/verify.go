package v1

import (
	"net/http"
	"os"

	"github.com/vodarr/vodarr/internal/history"
	"github.com/vodarr/vodarr/internal/library"
)

// VerifyProblem describes a problem found during verification.
type VerifyProblem struct {
	VideoID string   `json:"videoId,omitempty"`
	Title   string   `json:"title,omitempty"`
	Path    string   `json:"path,omitempty"`
	Issue   string   `json:"issue"`
	Likely  string   `json:"likelyCause"`
	Fixes   []string `json:"suggestedFixes"`
}

// VerifyResponse is the response for GET /verify.
type VerifyResponse struct {
	Connections struct {
		YtDlp        bool   `json:"ytdlp"`
		YtDlpVersion string `json:"ytdlpVersion,omitempty"`
		YtDlpErr     string `json:"ytdlpError,omitempty"`
	} `json:"connections"`
	Checked  int             `json:"checked"`
	Passed   int             `json:"passed"`
	Problems []VerifyProblem `json:"problems"`
}

// verify cross-checks the library against the filesystem and reports videos
// whose files have gone missing, plus whether yt-dlp is reachable at all.
func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := VerifyResponse{}

	if s.deps.YtDlp != nil {
		version, err := s.deps.YtDlp.Version(ctx)
		resp.Connections.YtDlp = err == nil
		resp.Connections.YtDlpVersion = version
		if err != nil {
			resp.Connections.YtDlpErr = err.Error()
		}
	}

	var videos []*library.Video
	if id := r.URL.Query().Get("id"); id != "" {
		v, err := s.deps.Library.GetVideo(id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		videos = []*library.Video{v}
	} else {
		var err error
		videos, _, err = s.deps.Library.ListVideos(library.VideoFilter{})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", "list videos: "+err.Error())
			return
		}
	}

	resp.Checked = len(videos)
	for _, v := range videos {
		if problem := verifyVideo(v); problem != nil {
			resp.Problems = append(resp.Problems, *problem)
		} else {
			resp.Passed++
		}
	}

	// Recent failures are worth surfacing even though the files never landed.
	failed := history.StatusFailed
	items, _, err := s.deps.History.List(history.Filter{Status: &failed, Limit: 25})
	if err == nil {
		for _, item := range items {
			resp.Problems = append(resp.Problems, VerifyProblem{
				Title: item.Title,
				Issue: "Download failed: " + item.Error,
				Likely: "The source was removed, region-locked, or yt-dlp needs an update",
				Fixes: []string{
					"vodarr download " + item.SourceURL,
				},
			})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func verifyVideo(v *library.Video) *VerifyProblem {
	if v.FilePath == "" {
		return &VerifyProblem{
			VideoID: v.ID,
			Title:   v.Title,
			Issue:   "No file path recorded",
			Likely:  "The download finished but yt-dlp did not report an output path",
			Fixes: []string{
				"vodarr download " + v.SourceURL,
				"vodarr videos rm " + v.ID,
			},
		}
	}
	if _, err := os.Stat(v.FilePath); os.IsNotExist(err) {
		return &VerifyProblem{
			VideoID: v.ID,
			Title:   v.Title,
			Path:    v.FilePath,
			Issue:   "File not found on disk",
			Likely:  "The file was manually deleted or moved",
			Fixes: []string{
				"vodarr download " + v.SourceURL,
				"vodarr videos rm " + v.ID,
			},
		}
	}
	return nil
}
