package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show download history",
	Long: `Show the download history, newest first.

Examples:
  vodarr history                   # Recent downloads
  vodarr history -s failed         # Only failures
  vodarr history -q "lecture"      # Search titles and authors`,
	RunE: runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringP("status", "s", "", "Filter by status (downloaded, failed, skipped, deleted)")
	historyCmd.Flags().StringP("query", "q", "", "Search titles and authors")
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum entries to show")
	historyCmd.Flags().Int("offset", 0, "Pagination offset")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	query, _ := cmd.Flags().GetString("query")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	client := NewClient(serverURL)
	items, err := client.History(status, query, limit, offset)
	if err != nil {
		return fmt.Errorf("history fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(items)
		return nil
	}

	if len(items.Items) == 0 {
		fmt.Println("No history")
		return nil
	}

	fmt.Printf("History (%d):\n\n", items.Total)
	fmt.Printf("  %-12s %-12s %-40s %-20s %s\n", "WHEN", "STATUS", "TITLE", "AUTHOR", "DETAIL")
	fmt.Println("  " + strings.Repeat("-", 100))

	for _, item := range items.Items {
		detail := ""
		if item.Error != "" {
			detail = truncate(item.Error, 30)
		}
		fmt.Printf("  %-12s %-12s %-40s %-20s %s\n",
			formatRFC3339Ago(item.FinishedAt), item.Status,
			truncate(item.Title, 40), truncate(item.Author, 20), detail)
	}
	return nil
}
