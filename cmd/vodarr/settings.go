package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change server settings",
	Long: `Show or change server settings.

Examples:
  vodarr settings                                      # Show current settings
  vodarr settings set save-author-collections true     # File downloads by author`,
	RunE: runSettingsShowCmd,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSetCmd,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShowCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	s, err := client.Settings()
	if err != nil {
		return fmt.Errorf("settings fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(s)
		return nil
	}

	fmt.Println("Settings")
	fmt.Printf("  save-author-collections:  %t\n", s.SaveAuthorFilesToCollection)
	return nil
}

func runSettingsSetCmd(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	client := NewClient(serverURL)
	current, err := client.Settings()
	if err != nil {
		return fmt.Errorf("settings fetch failed: %w", err)
	}

	switch key {
	case "save-author-collections":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q: expected true or false", value)
		}
		current.SaveAuthorFilesToCollection = b
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	updated, err := client.UpdateSettings(*current)
	if err != nil {
		return fmt.Errorf("settings update failed: %w", err)
	}

	if jsonOutput {
		printJSON(updated)
		return nil
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
