package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:     "collections",
	Aliases: []string{"cols"},
	Short:   "Manage collections",
	Long: `Manage collections. A collection groups videos for playback apps;
a video can belong to any number of collections.

Examples:
  vodarr collections                        # List collections
  vodarr collections create "Conference Talks"
  vodarr collections videos <id>            # Videos in a collection
  vodarr collections add <id> <video-id>
  vodarr collections remove <id> <video-id>`,
	RunE: runCollectionsListCmd,
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections",
	RunE:  runCollectionsListCmd,
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionsCreateCmd,
}

var collectionsVideosCmd = &cobra.Command{
	Use:   "videos <id>",
	Short: "List the videos in a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionsVideosCmd,
}

var collectionsAddCmd = &cobra.Command{
	Use:   "add <id> <video-id>",
	Short: "Add a video to a collection",
	Args:  cobra.ExactArgs(2),
	RunE:  runCollectionsAddCmd,
}

var collectionsRemoveCmd = &cobra.Command{
	Use:   "remove <id> <video-id>",
	Short: "Remove a video from a collection",
	Args:  cobra.ExactArgs(2),
	RunE:  runCollectionsRemoveCmd,
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
	collectionsCmd.AddCommand(collectionsListCmd, collectionsCreateCmd,
		collectionsVideosCmd, collectionsAddCmd, collectionsRemoveCmd)

	collectionsVideosCmd.Flags().IntP("limit", "n", 50, "Maximum videos to list")
	collectionsVideosCmd.Flags().Int("offset", 0, "Pagination offset")
}

func runCollectionsListCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	cols, err := client.Collections()
	if err != nil {
		return fmt.Errorf("list collections failed: %w", err)
	}

	if jsonOutput {
		printJSON(cols)
		return nil
	}

	if len(cols) == 0 {
		fmt.Println("No collections")
		return nil
	}

	fmt.Printf("Collections (%d):\n\n", len(cols))
	fmt.Printf("  %-36s %-30s %s\n", "ID", "NAME", "VIDEOS")
	fmt.Println("  " + strings.Repeat("-", 76))

	for _, c := range cols {
		fmt.Printf("  %-36s %-30s %d\n", c.ID, truncate(c.Name, 30), c.VideoCount)
	}
	return nil
}

func runCollectionsCreateCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	c, err := client.CreateCollection(args[0])
	if err != nil {
		return fmt.Errorf("create collection failed: %w", err)
	}

	if jsonOutput {
		printJSON(c)
		return nil
	}
	fmt.Printf("Created collection %q\n", c.Name)
	fmt.Printf("  ID: %s\n", c.ID)
	return nil
}

func runCollectionsVideosCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	client := NewClient(serverURL)
	videos, err := client.CollectionVideos(args[0], limit, offset)
	if err != nil {
		return fmt.Errorf("collection videos failed: %w", err)
	}

	if jsonOutput {
		printJSON(videos)
		return nil
	}

	printVideoTable(videos)
	return nil
}

func runCollectionsAddCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	if err := client.AddCollectionVideo(args[0], args[1]); err != nil {
		return fmt.Errorf("add to collection failed: %w", err)
	}
	fmt.Printf("Added video %s to collection %s\n", args[1], args[0])
	return nil
}

func runCollectionsRemoveCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	if err := client.RemoveCollectionVideo(args[0], args[1]); err != nil {
		return fmt.Errorf("remove from collection failed: %w", err)
	}
	fmt.Printf("Removed video %s from collection %s\n", args[1], args[0])
	return nil
}
