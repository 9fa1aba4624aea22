package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cyberui/cmd/cyberui/cmd/completion"
	"github.com/agentstation/cyberui/cmd/cyberui/cmd/list"
	"github.com/agentstation/cyberui/cmd/cyberui/cmd/playground"
	"github.com/agentstation/cyberui/cmd/cyberui/cmd/serve"
	"github.com/agentstation/cyberui/cmd/cyberui/cmd/show"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(playground.NewCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a))

	rootCmd.AddCommand(completion.NewCommand())
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("cyberui %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
