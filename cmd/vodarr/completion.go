package main

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for vodarr.

To load completions:

Bash:
  $ source <(vodarr completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ vodarr completion bash > /etc/bash_completion.d/vodarr
  # macOS:
  $ vodarr completion bash > $(brew --prefix)/etc/bash_completion.d/vodarr

Zsh:
  $ source <(vodarr completion zsh)
  # To load completions for each session, execute once:
  $ vodarr completion zsh > "${fpath[1]}/_vodarr"

Fish:
  $ vodarr completion fish | source
  # To load completions for each session, execute once:
  $ vodarr completion fish > ~/.config/fish/completions/vodarr.fish

PowerShell:
  PS> vodarr completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, execute once:
  PS> vodarr completion powershell > vodarr.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
