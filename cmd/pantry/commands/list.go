package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pantry/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, err := cmd.Flags().GetString("category")
			if err != nil {
				return err
			}

			recipes, err := c.app.ListRecipes(cmd.Context(), domain.Category(category))
			if err != nil {
				return err
			}

			if len(recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recipes found.")
				return nil
			}
			for _, r := range recipes {
				line := fmt.Sprintf("%s\t%s\t(serves %d)", r.ID, r.Title, r.Servings)
				if r.Category != "" {
					line += "\t" + string(r.Category)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringP("category", "c", "", "Only list recipes in this category")
	return cmd
}
