package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check all subscriptions for new videos now",
	Long: `Trigger an immediate subscription check instead of waiting
for the next scheduler tick. The check runs in the background;
watch progress with 'vodarr events' or 'vodarr queue'.`,
	RunE: runCheckCmd,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	if err := client.CheckSubscriptions(); err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	fmt.Println("Subscription check started")
	return nil
}
