package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent events",
	RunE:  runEventsCmd,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	eventsCmd.Flags().Int64("since", 0, "Only events after this event ID")
}

func runEventsCmd(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	since, _ := cmd.Flags().GetInt64("since")

	client := NewClient(serverURL)
	events, err := client.Events(limit, since)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	if jsonOutput {
		printJSON(events)
		return nil
	}

	printEventTable(events)
	return nil
}

func printEventTable(events *ListEventsResponse) {
	if len(events.Items) == 0 {
		fmt.Println("No events")
		return
	}

	fmt.Printf("Recent Events (%d):\n\n", events.Total)
	fmt.Printf("  %-8s %-12s %-26s %s\n", "ID", "TIME", "TYPE", "ENTITY")
	fmt.Println("  " + strings.Repeat("-", 76))

	for _, e := range events.Items {
		entity := e.EntityType + "/" + truncate(e.EntityID, 24)
		fmt.Printf("  %-8d %-12s %-26s %s\n", e.ID, formatRFC3339Ago(e.OccurredAt), e.EventType, entity)
	}
}
