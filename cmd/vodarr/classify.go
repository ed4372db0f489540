package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vodarr/vodarr/pkg/platform"
)

// ClassifyResult is the JSON-friendly classification of one URL.
type ClassifyResult struct {
	URL       string `json:"url"`
	Platform  string `json:"platform,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Videos    string `json:"videosUrl,omitempty"`
	Shorts    string `json:"shortsUrl,omitempty"`
	Playlists string `json:"playlistsUrl,omitempty"`
	Error     string `json:"error,omitempty"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] <url>",
	Short: "Classify a platform URL (local, no server needed)",
	Long: `Classify a URL the way the server would when subscribing:
which platform it belongs to, whether it is a channel, a single
playlist, or a channel's playlists tab, and the feed URLs that
would be polled for it.

Examples:
  vodarr classify https://www.youtube.com/@somechannel
  vodarr classify "https://youtube.com/playlist?list=PLxyz"
  vodarr classify --file urls.txt --json`,
	RunE: runClassifyCmd,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringP("file", "f", "", "Read URLs from file (one per line)")
}

func runClassifyCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")

	var urls []string
	if inputFile != "" {
		lines, err := readURLFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		urls = lines
	} else if len(args) > 0 {
		urls = []string{args[0]}
	} else {
		return fmt.Errorf("usage: vodarr classify <url> or vodarr classify --file <filename>")
	}

	results := make([]ClassifyResult, 0, len(urls))
	for _, u := range urls {
		results = append(results, classifyURL(u))
	}

	if jsonOutput {
		if len(results) == 1 {
			printJSON(results[0])
		} else {
			printJSON(results)
		}
		return nil
	}

	for i, result := range results {
		if i > 0 {
			fmt.Println()
		}
		printClassifyResult(result)
	}
	return nil
}

func classifyURL(rawURL string) ClassifyResult {
	result := ClassifyResult{URL: platform.Normalize(rawURL)}

	p, kind, err := platform.Classify(rawURL)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Platform = string(p)
	result.Kind = string(kind)

	// Feed URLs only make sense for channel-shaped subscriptions.
	if kind == platform.KindAuthor {
		result.Videos = platform.VideosURL(p, rawURL)
		result.Shorts = platform.ShortsURL(p, rawURL)
		result.Playlists = platform.PlaylistsURL(p, rawURL)
	}

	return result
}

// readURLFile reads URLs from a file, one per line.
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			urls = append(urls, line)
		}
	}
	return urls, scanner.Err()
}

func printClassifyResult(r ClassifyResult) {
	fmt.Printf("URL:        %s\n", r.URL)
	if r.Error != "" {
		fmt.Printf("Error:      %s\n", r.Error)
		return
	}
	fmt.Printf("Platform:   %s\n", r.Platform)
	fmt.Printf("Kind:       %s\n", r.Kind)
	if r.Videos != "" {
		fmt.Printf("Videos:     %s\n", r.Videos)
	}
	if r.Shorts != "" {
		fmt.Printf("Shorts:     %s\n", r.Shorts)
	}
	if r.Playlists != "" {
		fmt.Printf("Playlists:  %s\n", r.Playlists)
	}
}
