package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/cyberui/internal/cmd/output"
)

// Execute runs the cyberui CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cyberui",
		Short:   "CyberUI component catalog CLI",
		Version: a.version,
		Long: `CyberUI is a catalog of cyberpunk-styled UI components.

Browse components by category, inspect their props and code snippets,
compose an example page in the playground, or serve the catalog over
a JSON API.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.cyberui.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml, wide")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("cyberui {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It reloads the config
// when --config is given, then applies explicitly set flags on top.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if path := mustGetString(cmd, "config"); path != "" {
		config, err := LoadConfig(path)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(changedFlags(cmd))

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config_file", a.config.ConfigFile).
		Msg("Command starting")
	return nil
}

// changedFlags collects persistent flags the user actually set.
func changedFlags(cmd *cobra.Command) Flags {
	var f Flags
	fs := cmd.Flags()
	if fs.Changed("verbose") {
		v := mustGetBool(cmd, "verbose")
		f.Verbose = &v
	}
	if fs.Changed("quiet") {
		v := mustGetBool(cmd, "quiet")
		f.Quiet = &v
	}
	if fs.Changed("no-color") {
		v := mustGetBool(cmd, "no-color")
		f.NoColor = &v
	}
	if fs.Changed("format") {
		v := mustGetString(cmd, "format")
		f.Format = &v
	}
	if fs.Changed("log-level") {
		v := mustGetString(cmd, "log-level")
		f.LogLevel = &v
	}
	return f
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
