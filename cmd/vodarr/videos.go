package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Browse the video library",
	Long: `Browse downloaded videos.

Examples:
  vodarr videos                         # List library videos
  vodarr videos -a "Some Channel"       # Filter by author
  vodarr videos -p bilibili             # Filter by platform
  vodarr videos rm <id>                 # Remove a video record`,
	RunE: runVideosListCmd,
}

var videosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library videos",
	RunE:  runVideosListCmd,
}

var videosRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a video from the library",
	Long: `Remove a video record from the library. The removal is recorded in
history, so a subscription check will download the video again if it is
still present upstream.`,
	Args: cobra.ExactArgs(1),
	RunE: runVideosRmCmd,
}

func init() {
	rootCmd.AddCommand(videosCmd)
	videosCmd.AddCommand(videosListCmd, videosRmCmd)

	videosCmd.PersistentFlags().StringP("author", "a", "", "Filter by author")
	videosCmd.PersistentFlags().StringP("platform", "p", "", "Filter by platform (youtube, bilibili)")
	videosCmd.PersistentFlags().IntP("limit", "n", 50, "Maximum videos to list")
	videosCmd.PersistentFlags().Int("offset", 0, "Pagination offset")
}

func runVideosListCmd(cmd *cobra.Command, args []string) error {
	author, _ := cmd.Flags().GetString("author")
	platformName, _ := cmd.Flags().GetString("platform")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	client := NewClient(serverURL)
	videos, err := client.Videos(author, platformName, limit, offset)
	if err != nil {
		return fmt.Errorf("list videos failed: %w", err)
	}

	if jsonOutput {
		printJSON(videos)
		return nil
	}

	printVideoTable(videos)
	return nil
}

func runVideosRmCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	if err := client.RemoveVideo(args[0]); err != nil {
		return fmt.Errorf("remove video failed: %w", err)
	}
	fmt.Printf("Removed video %s\n", args[0])
	return nil
}

func printVideoTable(videos *ListVideosResponse) {
	if len(videos.Items) == 0 {
		fmt.Println("No videos")
		return
	}

	fmt.Printf("Videos (%d):\n\n", videos.Total)
	fmt.Printf("  %-36s %-44s %-20s %-9s %s\n", "ID", "TITLE", "AUTHOR", "LENGTH", "DOWNLOADED")
	fmt.Println("  " + strings.Repeat("-", 120))

	for _, v := range videos.Items {
		fmt.Printf("  %-36s %-44s %-20s %-9s %s\n",
			v.ID, truncate(v.Title, 44), truncate(v.Author, 20),
			formatDuration(v.DurationSecs), formatRFC3339Ago(v.DownloadedAt))
	}
}

func formatDuration(secs float64) string {
	if secs <= 0 {
		return "-"
	}
	d := time.Duration(secs) * time.Second
	if d >= time.Hour {
		return fmt.Sprintf("%d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
