// Package completion provides the shell completion command.
package completion

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cyberui/pkg/errors"
)

// Shells lists the supported completion targets.
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// NewCommand creates the completion command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

  $ source <(cyberui completion bash)

  # To load completions for each session, execute once:
  $ cyberui completion bash > /etc/bash_completion.d/cyberui

Zsh:

  $ cyberui completion zsh > "${fpath[1]}/_cyberui"

  # You will need to start a new shell for this setup to take effect.

Fish:

  $ cyberui completion fish | source
  $ cyberui completion fish > ~/.config/fish/completions/cyberui.fish

PowerShell:

  PS> cyberui completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             Shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Generate(cmd.Root(), cmd, args[0])
		},
	}
}

// Generate writes the completion script for shell to cmd's output.
func Generate(root, cmd *cobra.Command, shell string) error {
	w := cmd.OutOrStdout()
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return &errors.ValidationError{
			Field:   "shell",
			Value:   shell,
			Message: "must be one of bash, zsh, fish, powershell",
		}
	}
}
