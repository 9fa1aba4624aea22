// Package show provides the show command, the CLI rendition of a
// component's detail page.
package show

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/internal/cmd/constants"
	"github.com/agentstation/cyberui/internal/cmd/output"
	"github.com/agentstation/cyberui/internal/cmd/style"
	"github.com/agentstation/cyberui/internal/cmd/table"
	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/errors"
	"github.com/agentstation/cyberui/pkg/logging"
)

// Detail is the structured (json/yaml) form of the show output.
type Detail struct {
	Component catalogs.Component  `json:"component" yaml:"component"`
	Prev      *catalogs.Component `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next      *catalogs.Component `json:"next,omitempty" yaml:"next,omitempty"`
}

// NewCommand creates the show command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <id>",
		Aliases: []string{"get", "describe"},
		GroupID: "core",
		Short:   "Show a component's details",
		Long: `Show prints a component's description, variants, props and code
snippets, with links to the previous and next component.

--code prints a single snippet with no decoration, suitable for piping:
  example  the short example (default snippet)
  usage    the extended usage snippet
  full     the complete component source`,
		Example: `  cyberui show button
  cyberui show glitch-text --code full > GlitchText.tsx
  cyberui show card -o json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: idCompletion(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, _ := cmd.Flags().GetString("code")
			return run(cmd, app, args[0], code)
		},
	}

	cmd.Flags().String("code", "", "print one snippet raw: example, usage, full")
	_ = cmd.RegisterFlagCompletionFunc("code", cobra.FixedCompletions(
		[]string{constants.CodeExample, constants.CodeUsage, constants.CodeFull},
		cobra.ShellCompDirectiveNoFileComp,
	))

	return cmd
}

func run(cmd *cobra.Command, app application.Application, id, code string) error {
	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	ctx := logging.WithComponent(logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "show"), id)
	logger := logging.FromContext(ctx)

	c, ok := cat.Component(id)
	if !ok {
		return errors.NewNotFoundError("component", id)
	}
	logger.Debug().Str("code", code).Msg("Showing component")

	w := cmd.OutOrStdout()
	if code != "" {
		snippet, err := Snippet(c, code)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, snippet)
		return err
	}

	prev, next := cat.Neighbors(id)
	format := output.DetectFormat(app.OutputFormat())
	if !output.IsTabular(format) {
		return output.NewFormatter(format).Format(w, Detail{Component: c, Prev: prev, Next: next})
	}

	width := style.DefaultWidth
	if f, ok := w.(*os.File); ok {
		width = style.Width(f)
	}
	return Render(w, style.New(app.NoColor()), width, c, prev, next)
}

// Snippet returns the requested code snippet of c.
func Snippet(c catalogs.Component, which string) (string, error) {
	var s string
	switch strings.ToLower(which) {
	case constants.CodeExample:
		s = c.Code
	case constants.CodeUsage:
		s = c.Usage
	case constants.CodeFull:
		s = c.FullCode
	default:
		return "", errors.NewValidationError("code", which, "must be one of: example, usage, full")
	}
	if s == "" {
		return "", errors.NewValidationError("code", which, fmt.Sprintf("component %s has no %s snippet", c.ID, which))
	}
	return s, nil
}

// Render writes the styled detail view.
func Render(w io.Writer, s style.Styles, width int, c catalogs.Component, prev, next *catalogs.Component) error {
	var b strings.Builder

	b.WriteString(s.Title.Render(c.Name))
	b.WriteString("  ")
	b.WriteString(s.Badge.Render(table.Label(c.Category.String())))
	if c.Subcategory != "" {
		b.WriteString(s.Badge.Render(table.Label(c.Subcategory)))
	}
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render(style.Wrap(c.Description, width)))
	b.WriteString("\n")

	if len(c.Variants) > 0 {
		b.WriteString(s.Section.Render("Variants"))
		b.WriteString("\n")
		for _, v := range c.Variants {
			line := "  " + v
			if v == c.DefaultVariant() {
				line += " " + s.Muted.Render("(default)")
			}
			b.WriteString(line + "\n")
		}
	}

	if len(c.Props) > 0 {
		b.WriteString(s.Section.Render("Props"))
		b.WriteString("\n")
		var props strings.Builder
		if err := output.NewFormatter(output.FormatTable).Format(&props, table.PropsToTableData(c.Props)); err != nil {
			return err
		}
		b.WriteString(props.String())
	}

	b.WriteString(s.Section.Render("Example"))
	b.WriteString("\n")
	b.WriteString(s.Code.Render(c.Code))
	b.WriteString("\n")

	if c.Usage != "" {
		b.WriteString(s.Section.Render("Usage"))
		b.WriteString("\n")
		b.WriteString(s.Code.Render(c.Usage))
		b.WriteString("\n")
	}

	if c.FullCode != "" {
		b.WriteString(s.Muted.Render(fmt.Sprintf("Full source: cyberui show %s --code full", c.ID)))
		b.WriteString("\n")
	}

	if nav := navigation(s, prev, next); nav != "" {
		b.WriteString("\n")
		b.WriteString(nav)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func navigation(s style.Styles, prev, next *catalogs.Component) string {
	var parts []string
	if prev != nil {
		parts = append(parts, s.Label.Render("← "+prev.Name)+s.Muted.Render(" ("+prev.ID+")"))
	}
	if next != nil {
		parts = append(parts, s.Label.Render(next.Name+" →")+s.Muted.Render(" ("+next.ID+")"))
	}
	return strings.Join(parts, "   ")
}

func idCompletion(app application.Application) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
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
