package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "vodarr",
	Short: "CLI client for the vodarr video library",
	Long: `vodarr - CLI client for the vodarr video library

Subscribe to channels and playlists, watch backlog downloads,
and browse the library from the command line.

Run 'vodarrd' to start the server daemon.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vodarr version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vodarr %s\n", version)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8585", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("vodarr {{.Version}}\n")
}
