package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var subsCmd = &cobra.Command{
	Use:   "subs",
	Short: "Manage subscriptions",
	Long: `Manage channel and playlist subscriptions.

Examples:
  vodarr subs                                        # List subscriptions
  vodarr subs add https://youtube.com/@somechannel   # Follow a channel
  vodarr subs add URL --interval 30 --shorts         # Custom check interval, include Shorts
  vodarr subs pause <id>                             # Stop checking without deleting
  vodarr subs rm <id>                                # Delete a subscription`,
	RunE: runSubsListCmd,
}

var subsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions",
	RunE:  runSubsListCmd,
}

var subsAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Subscribe to a channel or playlist URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsAddCmd,
}

var subsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsRmCmd,
}

var subsPauseCmd = &cobra.Command{
	Use:   "pause <id>",
	Short: "Pause checking a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsPauseCmd,
}

var subsResumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Resume checking a paused subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsResumeCmd,
}

func init() {
	rootCmd.AddCommand(subsCmd)
	subsCmd.AddCommand(subsListCmd, subsAddCmd, subsRmCmd, subsPauseCmd, subsResumeCmd)

	subsAddCmd.Flags().Int64P("interval", "i", 0, "Minutes between checks (default: server default)")
	subsAddCmd.Flags().StringP("title", "t", "", "Playlist title override")
	subsAddCmd.Flags().Bool("shorts", false, "Also download Shorts from this channel")
	subsAddCmd.Flags().StringP("collection", "c", "", "Collection ID to file downloads into")
}

func runSubsListCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	subs, err := client.Subscriptions()
	if err != nil {
		return fmt.Errorf("list subscriptions failed: %w", err)
	}

	if jsonOutput {
		printJSON(subs)
		return nil
	}

	if len(subs.Items) == 0 {
		fmt.Println("No subscriptions")
		return nil
	}

	fmt.Printf("Subscriptions (%d):\n\n", subs.Total)
	fmt.Printf("  %-36s %-22s %-17s %-6s %-10s %s\n", "ID", "AUTHOR", "TYPE", "EVERY", "LAST CHECK", "VIDEOS")
	fmt.Println("  " + strings.Repeat("-", 100))

	for _, sub := range subs.Items {
		name := sub.Author
		if sub.PlaylistTitle != "" {
			name = sub.PlaylistTitle
		}
		name = truncate(name, 22)

		state := fmt.Sprintf("%d", sub.DownloadCount)
		if sub.Paused {
			state += "  (paused)"
		}

		fmt.Printf("  %-36s %-22s %-17s %-6s %-10s %s\n",
			sub.ID, name, sub.Type, formatInterval(sub.Interval),
			formatTimeAgo(sub.LastCheck/1000), state)
	}
	return nil
}

func runSubsAddCmd(cmd *cobra.Command, args []string) error {
	interval, _ := cmd.Flags().GetInt64("interval")
	title, _ := cmd.Flags().GetString("title")
	shorts, _ := cmd.Flags().GetBool("shorts")
	collection, _ := cmd.Flags().GetString("collection")

	req := AddSubscriptionRequest{
		URL:            args[0],
		Interval:       interval,
		Title:          title,
		DownloadShorts: shorts,
	}
	if collection != "" {
		req.CollectionID = &collection
	}

	client := NewClient(serverURL)
	sub, err := client.AddSubscription(req)
	if err != nil {
		return fmt.Errorf("add subscription failed: %w", err)
	}

	if jsonOutput {
		printJSON(sub)
		return nil
	}

	name := sub.Author
	if sub.PlaylistTitle != "" {
		name = sub.PlaylistTitle
	}
	fmt.Printf("Subscribed to %s (%s, checking every %s)\n", name, sub.Type, formatInterval(sub.Interval))
	fmt.Printf("  ID: %s\n", sub.ID)
	return nil
}

func runSubsRmCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	if err := client.RemoveSubscription(args[0]); err != nil {
		return fmt.Errorf("remove subscription failed: %w", err)
	}
	fmt.Printf("Removed subscription %s\n", args[0])
	return nil
}

func runSubsPauseCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	sub, err := client.PauseSubscription(args[0])
	if err != nil {
		return fmt.Errorf("pause subscription failed: %w", err)
	}

	if jsonOutput {
		printJSON(sub)
		return nil
	}
	fmt.Printf("Paused %s\n", sub.Author)
	return nil
}

func runSubsResumeCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	sub, err := client.ResumeSubscription(args[0])
	if err != nil {
		return fmt.Errorf("resume subscription failed: %w", err)
	}

	if jsonOutput {
		printJSON(sub)
		return nil
	}
	fmt.Printf("Resumed %s (next check within %s)\n", sub.Author, formatInterval(sub.Interval))
	return nil
}

func formatInterval(mins int64) string {
	if mins >= 60 && mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dm", mins)
}
