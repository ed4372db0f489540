package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Download a single video now",
	Long: `Download one video immediately, outside any subscription or task.
The command blocks until the download finishes and the video is
recorded in the library.`,
	Args: cobra.ExactArgs(1),
	RunE: runDownloadCmd,
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show active downloads",
	RunE:  runQueueCmd,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(queueCmd)
}

func runDownloadCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	video, err := client.Download(args[0])
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	if jsonOutput {
		printJSON(video)
		return nil
	}

	fmt.Printf("Downloaded %q by %s\n", video.Title, video.Author)
	if video.FilePath != "" {
		fmt.Printf("  File: %s\n", video.FilePath)
	}
	return nil
}

func runQueueCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	downloads, err := client.ActiveDownloads()
	if err != nil {
		return fmt.Errorf("queue fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(downloads)
		return nil
	}

	if len(downloads.Items) == 0 {
		fmt.Println("No active downloads")
		return nil
	}

	fmt.Printf("Active Downloads (%d):\n\n", downloads.Total)
	fmt.Printf("  %-4s %-60s %-12s %s\n", "ID", "URL", "STARTED", "SOURCE")
	fmt.Println("  " + strings.Repeat("-", 96))

	for _, dl := range downloads.Items {
		source := "manual"
		if dl.SubscriptionID != "" {
			source = "sub " + dl.SubscriptionID
		} else if dl.TaskID != "" {
			source = "task " + dl.TaskID
		}
		fmt.Printf("  %-4d %-60s %-12s %s\n",
			dl.ID, truncate(dl.URL, 60), formatRFC3339Ago(dl.StartedAt), source)
	}
	return nil
}
