// Package ytdlp wraps the yt-dlp executable for playlist enumeration and downloads.
package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	defaultPath    = "yt-dlp"
	defaultTimeout = 10 * time.Minute
)

// Classified subprocess failures.
var (
	ErrNotInstalled = errors.New("yt-dlp not installed")
	ErrNotFound     = errors.New("source not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrTimeout      = errors.New("yt-dlp timed out")
)

// Runner invokes yt-dlp as a subprocess.
type Runner struct {
	// Path is the yt-dlp executable. Defaults to "yt-dlp" on $PATH.
	Path string

	// Timeout bounds a single invocation. Defaults to 10 minutes.
	Timeout time.Duration

	// DownloadDir is where downloaded files land.
	DownloadDir string

	// ExtraArgs are appended to every invocation.
	ExtraArgs []string
}

// New creates a runner. Zero values fall back to defaults.
func New(path string, timeout time.Duration, downloadDir string, extraArgs []string) *Runner {
	return &Runner{Path: path, Timeout: timeout, DownloadDir: downloadDir, ExtraArgs: extraArgs}
}

// Playlist is yt-dlp's -J output for a playlist or channel tab.
type Playlist struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Uploader   string  `json:"uploader"`
	Channel    string  `json:"channel"`
	ChannelID  string  `json:"channel_id"`
	ChannelURL string  `json:"channel_url"`
	WebpageURL string  `json:"webpage_url"`
	Entries    []Entry `json:"entries"`
}

// Entry is a single item in a flat playlist listing.
type Entry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
}

// Video is yt-dlp's JSON for one downloaded video.
type Video struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Uploader   string  `json:"uploader"`
	Channel    string  `json:"channel"`
	WebpageURL string  `json:"webpage_url"`
	Duration   float64 `json:"duration"`
	Filename   string  `json:"_filename"`
}

// FlatPlaylist enumerates a playlist or channel tab without downloading.
// limit > 0 restricts the listing to the first limit entries.
func (r *Runner) FlatPlaylist(ctx context.Context, url string, limit int) (*Playlist, error) {
	args := []string{"--flat-playlist", "-J", "--no-warnings"}
	if limit > 0 {
		args = append(args, "-I", fmt.Sprintf("1:%d", limit))
	}
	args = append(args, r.ExtraArgs...)
	args = append(args, url)

	out, err := r.run(ctx, args)
	if err != nil {
		return nil, err
	}
	return parsePlaylist(out)
}

// Download fetches a single video and returns its metadata.
func (r *Runner) Download(ctx context.Context, url string) (*Video, error) {
	args := []string{"--no-warnings", "--no-simulate", "--print-json"}
	if r.DownloadDir != "" {
		args = append(args, "-P", r.DownloadDir)
	}
	args = append(args, "-o", "%(uploader)s/%(title)s [%(id)s].%(ext)s")
	args = append(args, r.ExtraArgs...)
	args = append(args, url)

	out, err := r.run(ctx, args)
	if err != nil {
		return nil, err
	}
	return parseVideo(out)
}

// Version reports the installed yt-dlp version, or ErrNotInstalled.
func (r *Runner) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, r.path(), "--version")
	out, err := cmd.Output()
	if err != nil {
		return "", ErrNotInstalled
	}
	return strings.TrimSpace(string(out)), nil
}

func (r *Runner) run(ctx context.Context, args []string) ([]byte, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, r.path(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if cmdCtx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		if cmdCtx.Err() == context.Canceled {
			return nil, context.Canceled
		}
		return nil, classifyStderr(stderr.String(), err)
	}
	return stdout.Bytes(), nil
}

func (r *Runner) path() string {
	if r.Path != "" {
		return r.Path
	}
	return defaultPath
}

// classifyStderr maps common yt-dlp failure patterns to sentinel errors.
func classifyStderr(stderr string, err error) error {
	switch {
	case strings.Contains(stderr, "not found") || strings.Contains(stderr, "does not exist") || strings.Contains(stderr, "404"):
		return fmt.Errorf("%w: %s", ErrNotFound, firstLine(stderr))
	case strings.Contains(stderr, "429") || strings.Contains(stderr, "rate-limit") || strings.Contains(stderr, "Too Many Requests"):
		return fmt.Errorf("%w: %s", ErrRateLimited, firstLine(stderr))
	case strings.Contains(stderr, "not recognized") || strings.Contains(stderr, "executable file not found"):
		return ErrNotInstalled
	}
	return fmt.Errorf("yt-dlp failed: %w: %s", err, firstLine(stderr))
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func parsePlaylist(data []byte) (*Playlist, error) {
	var pl Playlist
	if err := json.Unmarshal(data, &pl); err != nil {
		return nil, fmt.Errorf("parse yt-dlp playlist output: %w", err)
	}
	return &pl, nil
}

func parseVideo(data []byte) (*Video, error) {
	// --print-json can emit one JSON object per requested format; take the first.
	dec := json.NewDecoder(bytes.NewReader(data))
	var v Video
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse yt-dlp video output: %w", err)
	}
	return &v, nil
}
