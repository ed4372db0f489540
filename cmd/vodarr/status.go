package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [video-id]",
	Short: "System status and library verification",
	Long: `Show system status and verify library files against the filesystem.

Without arguments, shows the system summary (yt-dlp, subscriptions, tasks).
With a video ID, verifies that specific video's file on disk.

Examples:
  vodarr status               # Show system summary
  vodarr status --verify      # Summary + verify every library file
  vodarr status dQw4w9WgXcQ   # Verify one video`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("verify", false, "Verify every library file on disk")
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	runVerify, _ := cmd.Flags().GetBool("verify")

	// A video ID narrows verification to that one video.
	if len(args) > 0 {
		return runVerifyLibrary(client, args[0])
	}

	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		if runVerify {
			verify, err := client.Verify("")
			if err != nil {
				return fmt.Errorf("verify failed: %w", err)
			}
			combined := map[string]any{
				"status": status,
				"verify": verify,
			}
			printJSON(combined)
		} else {
			printJSON(status)
		}
		return nil
	}

	printStatus(serverURL, status)

	if runVerify {
		fmt.Println()
		return runVerifyLibrary(client, "")
	}

	return nil
}

func runVerifyLibrary(client *Client, videoID string) error {
	result, err := client.Verify(videoID)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if jsonOutput {
		printJSON(result)
		return nil
	}

	printVerifyResult(result)
	return nil
}

func printStatus(server string, s *StatusResponse) {
	fmt.Printf("vodarr v%s | Server: %s | Status: %s\n\n", s.Version, server, s.Status)

	fmt.Println("Activity")
	fmt.Printf("  Subscriptions:     %d\n", s.Subscriptions)
	fmt.Printf("  Active tasks:      %d\n", s.ActiveTasks)
	fmt.Printf("  Active downloads:  %d\n", s.ActiveDownloads)
}

func printVerifyResult(r *VerifyResponse) {
	fmt.Printf("Verification (%d videos checked):\n\n", r.Checked)

	ytdlpStatus := "ok"
	if r.Connections.YtDlpVersion != "" {
		ytdlpStatus = "ok (" + r.Connections.YtDlpVersion + ")"
	}
	if !r.Connections.YtDlp {
		ytdlpStatus = "FAIL " + r.Connections.YtDlpErr
	}
	fmt.Printf("  yt-dlp:  %s\n", ytdlpStatus)
	fmt.Printf("  Passed:  %d/%d\n", r.Passed, r.Checked)
	fmt.Println()

	if len(r.Problems) == 0 {
		fmt.Println("No problems detected.")
		return
	}

	fmt.Printf("Problems (%d):\n\n", len(r.Problems))

	for i := range r.Problems {
		p := &r.Problems[i]
		title := p.Title
		if title == "" {
			title = p.VideoID
		}
		fmt.Printf("  %s\n", title)
		if p.Path != "" {
			fmt.Printf("    Path: %s\n", p.Path)
		}
		fmt.Printf("    Issue: %s\n", p.Issue)
		fmt.Printf("    Likely: %s\n", p.Likely)
		fmt.Printf("    Fix: %s\n", strings.Join(p.Fixes, "\n         "))
		fmt.Println()
	}

	fmt.Printf("%d problems found. Run suggested commands to resolve.\n", len(r.Problems))
}
