package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/internal/cmd/output"
	"github.com/agentstation/cyberui/internal/cmd/table"
)

// NewCategoriesCommand creates the list categories subcommand.
func NewCategoriesCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "List the category tree with component counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			categories := cat.Categories()

			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, categories, func(bool) output.Data {
				return table.CategoriesToTableData(categories, cat.Components())
			})
		},
	}
}
