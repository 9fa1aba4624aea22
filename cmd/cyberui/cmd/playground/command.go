// Package playground provides the playground command: compose an example
// page from catalog components and print, copy or save its source.
package playground

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bmatcuk/doublestar/v4"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/internal/cmd/emoji"
	"github.com/agentstation/cyberui/internal/cmd/output"
	"github.com/agentstation/cyberui/internal/cmd/style"
	"github.com/agentstation/cyberui/internal/tui"
	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/constants"
	"github.com/agentstation/cyberui/pkg/errors"
	"github.com/agentstation/cyberui/pkg/logging"
	"github.com/agentstation/cyberui/pkg/playground"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// Result is the structured (json/yaml) form of the playground output.
type Result struct {
	Selected []playground.Selected `json:"selected" yaml:"selected"`
	Code     string                `json:"code" yaml:"code"`
}

type options struct {
	copy        bool
	outFile     string
	interactive bool
}

// NewCommand creates the playground command.
func NewCommand(app application.Application) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "playground [id|glob]...",
		Aliases: []string{"play", "pg"},
		GroupID: "core",
		Short:   "Generate an example page from selected components",
		Long: `Playground generates the source of an example page that imports and
renders the selected components in order.

Arguments are component ids or glob patterns over ids ("cyber-*",
"{button,card}"). Globs expand in catalog order. An id that is not in the
catalog still renders as <Id />.

With --interactive the selection is edited in a terminal UI: toggle
components with space, search with /, reset with r, copy with c and
finish with q.`,
		Example: `  cyberui playground button card
  cyberui playground 'cyber-*' scan-line --copy
  cyberui playground -i
  cyberui playground button input -O page.tsx`,
		ValidArgsFunction: idCompletion(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the generated code to the clipboard")
	cmd.Flags().StringVarP(&opts.outFile, "out", "O", "", "write the generated code to a file")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "edit the selection in a terminal UI")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, args []string, opts options) error {
	cat, err := app.Catalog()
	if err != nil {
		return err
	}
	ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "playground")

	selected, err := Resolve(cat, args)
	if err != nil {
		return err
	}
	for _, s := range selected {
		if _, ok := cat.Component(s.ID); !ok {
			logging.FromContext(logging.WithComponent(ctx, s.ID)).Warn().
				Msg("Component not in catalog; rendering placeholder")
		}
	}

	if opts.interactive {
		var cancelled bool
		selected, cancelled, err = runInteractive(cmd, app, cat, selected)
		if err != nil {
			return err
		}
		if cancelled {
			return nil
		}
	}

	code := playground.GenerateCode(cat, selected)
	w := cmd.OutOrStdout()

	if opts.copy {
		if err := copyToClipboard(code); err != nil {
			return errors.WrapIO("write", "clipboard", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s Copied %d component(s) to clipboard\n", emoji.Success, len(selected))
	}

	if opts.outFile != "" {
		if err := os.WriteFile(opts.outFile, []byte(code+"\n"), constants.FilePermissions); err != nil {
			return errors.WrapIO("write", opts.outFile, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s Wrote %s\n", emoji.Success, opts.outFile)
		return nil
	}

	format := output.Format(strings.ToLower(app.OutputFormat()))
	if format == output.FormatJSON || format == output.FormatYAML {
		if selected == nil {
			selected = []playground.Selected{}
		}
		return output.NewFormatter(format).Format(w, Result{Selected: selected, Code: code})
	}

	_, err = fmt.Fprintln(w, code)
	return err
}

// Resolve turns arguments into an ordered selection. Plain ids are kept as
// given, duplicates included, and unknown ids use the id as their name.
// Glob patterns expand to every matching id in catalog order.
func Resolve(cat catalogs.Reader, args []string) ([]playground.Selected, error) {
	var selected []playground.Selected
	all := cat.Components()

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}

		if !isGlob(arg) {
			name := arg
			if c, ok := cat.Component(arg); ok {
				name = c.Name
			}
			selected = append(selected, playground.Selected{ID: arg, Name: name})
			continue
		}

		if !doublestar.ValidatePattern(arg) {
			return nil, errors.NewValidationError("pattern", arg, "invalid glob pattern")
		}
		matched := 0
		for _, c := range all {
			ok, err := doublestar.Match(arg, c.ID)
			if err != nil {
				return nil, errors.NewValidationError("pattern", arg, err.Error())
			}
			if ok {
				selected = append(selected, playground.Selected{ID: c.ID, Name: c.Name})
				matched++
			}
		}
		if matched == 0 {
			return nil, errors.NewNotFoundError("component pattern", arg)
		}
	}

	return selected, nil
}

func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func runInteractive(cmd *cobra.Command, app application.Application, cat catalogs.Reader, initial []playground.Selected) ([]playground.Selected, bool, error) {
	model := tui.NewModel(cat, initial, style.New(app.NoColor()), tui.CopyFunc(copyToClipboard))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	final, err := program.Run()
	if err != nil {
		return nil, false, errors.WrapResource("run", "playground", "interactive", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return nil, false, errors.New("unexpected playground model")
	}
	return m.Selected(), m.Cancelled(), nil
}

func idCompletion(app application.Application) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		cat, err := app.Catalog()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		components := cat.Components()
		ids := make([]string, 0, len(components))
		for _, c := range components {
			ids = append(ids, c.ID+"\t"+c.Name)
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}
