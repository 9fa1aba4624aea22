// Package list provides the list command and its subcommands.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/cyberui/internal/cmd/application"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List catalog resources",
		Long: `List displays resources from the component catalog.

Available subcommands:
  components  - UI components, filterable by category and name
  categories  - category tree with component counts`,
		Example: `  cyberui list components                        # All components
  cyberui list components --category inputs      # One subcategory
  cyberui list components -c experimental -s grid
  cyberui list categories -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewComponentsCommand(app))
	cmd.AddCommand(NewCategoriesCommand(app))

	return cmd
}
