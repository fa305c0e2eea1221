package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.app.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %s\n", r.ID)
			fmt.Fprintf(out, "Title:     %s\n", r.Title)
			fmt.Fprintf(out, "Servings:  %d\n", r.Servings)
			if r.Category != "" {
				fmt.Fprintf(out, "Category:  %s\n", r.Category)
			}
			if r.ImageURL != "" {
				fmt.Fprintf(out, "Image:     %s\n", r.ImageURL)
			}
			if !r.CreatedAt.IsZero() {
				fmt.Fprintf(out, "Created:   %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
			}
			if r.Instructions != "" {
				fmt.Fprintf(out, "\n%s\n", r.Instructions)
			}
			return nil
		},
	}
}
