package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyURL_YouTubeChannel(t *testing.T) {
	result := classifyURL("https://www.youtube.com/@somechannel")

	assert.Empty(t, result.Error)
	assert.Equal(t, "youtube", result.Platform)
	assert.Equal(t, "author", result.Kind)
	assert.Equal(t, "https://www.youtube.com/@somechannel/videos", result.Videos)
	assert.Equal(t, "https://www.youtube.com/@somechannel/shorts", result.Shorts)
	assert.Equal(t, "https://www.youtube.com/@somechannel/playlists", result.Playlists)
}

func TestClassifyURL_YouTubePlaylist(t *testing.T) {
	result := classifyURL("https://www.youtube.com/playlist?list=PLabc123")

	assert.Empty(t, result.Error)
	assert.Equal(t, "youtube", result.Platform)
	assert.Equal(t, "playlist", result.Kind)
	// Single playlists poll the playlist itself, not author feeds.
	assert.Empty(t, result.Videos)
	assert.Empty(t, result.Playlists)
}

func TestClassifyURL_YouTubePlaylistsTab(t *testing.T) {
	result := classifyURL("https://www.youtube.com/@somechannel/playlists")

	assert.Empty(t, result.Error)
	assert.Equal(t, "youtube", result.Platform)
	assert.Equal(t, "channel_playlists", result.Kind)
}

func TestClassifyURL_BilibiliSpace(t *testing.T) {
	result := classifyURL("https://space.bilibili.com/123456")

	assert.Empty(t, result.Error)
	assert.Equal(t, "bilibili", result.Platform)
	assert.Equal(t, "author", result.Kind)
	assert.Equal(t, "https://space.bilibili.com/123456/video", result.Videos)
	assert.Empty(t, result.Shorts)
	assert.Equal(t, "https://space.bilibili.com/123456/lists", result.Playlists)
}

func TestClassifyURL_BilibiliSeriesTab(t *testing.T) {
	result := classifyURL("https://space.bilibili.com/123456/lists")

	assert.Empty(t, result.Error)
	assert.Equal(t, "bilibili", result.Platform)
	assert.Equal(t, "channel_playlists", result.Kind)
}

func TestClassifyURL_Unrecognized(t *testing.T) {
	result := classifyURL("https://example.com/some/video")

	assert.NotEmpty(t, result.Error)
	assert.Empty(t, result.Platform)
	assert.Empty(t, result.Kind)
}

func TestClassifyURL_TrimsTrailingSlash(t *testing.T) {
	result := classifyURL("https://www.youtube.com/@somechannel/  ")

	assert.Equal(t, "https://www.youtube.com/@somechannel", result.URL)
	assert.Equal(t, "author", result.Kind)
}

func TestReadURLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := `# channels to follow
https://www.youtube.com/@somechannel

https://space.bilibili.com/123456
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	urls, err := readURLFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://www.youtube.com/@somechannel",
		"https://space.bilibili.com/123456",
	}, urls)
}

func TestReadURLFile_Missing(t *testing.T) {
	_, err := readURLFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
