package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for blogscope.

To load completions:

Bash:
  $ source <(blogscope completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ blogscope completion bash > /etc/bash_completion.d/blogscope
  # macOS:
  $ blogscope completion bash > $(brew --prefix)/etc/bash_completion.d/blogscope

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ blogscope completion zsh > "${fpath[1]}/_blogscope"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ blogscope completion fish | source

  # To load completions for each session, execute once:
  $ blogscope completion fish > ~/.config/fish/completions/blogscope.fish

PowerShell:
  PS> blogscope completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> blogscope completion powershell > blogscope.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations:           map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(stdout(cmd))
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout(cmd))
			case "fish":
				return cmd.Root().GenFishCompletion(stdout(cmd), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout(cmd))
			}
			return nil
		},
	}

	return cmd
}
