package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/engine/mutator"
	"go.trai.ch/zerr"
)

func (c *CLI) newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create a recipe, or update one with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			id, _ := flags.GetString("id")
			title, _ := flags.GetString("title")
			instructions, _ := flags.GetString("instructions")
			servings, _ := flags.GetInt("servings")
			category, _ := flags.GetString("category")
			imagePath, _ := flags.GetString("image")

			req := mutator.SaveRequest{
				RecipeID: id,
				Recipe: domain.RecipeInput{
					Title:        title,
					Instructions: instructions,
					Servings:     servings,
					Category:     domain.Category(category),
				},
			}

			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return zerr.Wrap(err, "failed to read image file")
				}
				req.Image = &domain.ImageFile{
					Name: filepath.Base(imagePath),
					Data: data,
				}
			}

			saved, err := c.app.SaveRecipe(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", saved.Title, saved.ID)
			return nil
		},
	}

	cmd.Flags().String("id", "", "Recipe identifier (update an existing recipe)")
	cmd.Flags().StringP("title", "t", "", "Recipe title")
	cmd.Flags().String("instructions", "", "Preparation instructions")
	cmd.Flags().IntP("servings", "s", 1, "Number of servings")
	cmd.Flags().StringP("category", "c", "", "Category label")
	cmd.Flags().String("image", "", "Path to an image to upload and attach")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
