package list

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/internal/cmd/output"
	"github.com/agentstation/cyberui/internal/cmd/table"
	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/constants"
	"github.com/agentstation/cyberui/pkg/logging"
)

// NewComponentsCommand creates the list components subcommand.
func NewComponentsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"component", "c"},
		Short:   "List components",
		Long: `List components in declaration order.

--category accepts "all", a top-level category (usable, experimental)
or a subcategory slug (buttons, inputs, cards, navigation, media,
text-effects, backgrounds). --search matches a case-insensitive
substring of the name or description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, _ := cmd.Flags().GetString("category")
			search, _ := cmd.Flags().GetString("search")
			return runComponents(cmd, app, category, search)
		},
	}

	cmd.Flags().StringP("category", "c", constants.AllCategory, "category or subcategory slug")
	cmd.Flags().StringP("search", "s", "", "filter by name or description")
	_ = cmd.RegisterFlagCompletionFunc("category", categoryCompletion(app))

	return cmd
}

func runComponents(cmd *cobra.Command, app application.Application, category, search string) error {
	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = constants.AllCategory
	}
	components := cat.Filter(category, search)

	ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "list components")
	logging.FromContext(ctx).Debug().
		Str("category", category).
		Str("search", search).
		Int("count", len(components)).
		Msg("Filtered components")

	format := output.DetectFormat(app.OutputFormat())
	return output.Write(cmd.OutOrStdout(), format, components, func(wide bool) output.Data {
		return table.ComponentsToTableData(components, wide)
	})
}

// categoryCompletion completes --category with every slug in the tree.
func categoryCompletion(app application.Application) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		cat, err := app.Catalog()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return categorySlugs(cat.Categories()), cobra.ShellCompDirectiveNoFileComp
	}
}

func categorySlugs(categories []catalogs.Category) []string {
	var slugs []string
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
		for _, sub := range c.Subcategories {
			slugs = append(slugs, sub.Slug)
		}
	}
	return slugs
}
