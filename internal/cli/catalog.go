package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Vovarama1992/cloudio/internal/domain"
	"github.com/Vovarama1992/cloudio/internal/domain/views"
	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/spf13/cobra"
)

// catalogView builds an admin view: the command line is a management surface.
func (a *app) catalogView(yes bool) *views.CatalogView {
	return views.NewCatalogView(a.backend(), domain.AdminPath, a.alerter(), a.confirmer(yes), a.log)
}

func filesCMD(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List, add and delete catalog files",
	}

	var jsonOutput bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List files, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.backend().ListFiles(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), files)
			}
			outputFiles(cmd.OutOrStdout(), files)
			return nil
		},
	}
	list.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	var form views.FileForm
	var mediaType string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a file to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.catalogView(false)
			v.Form = form
			v.Form.MediaType = models.MediaType(mediaType)

			if err := v.AddFile(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "File added")
			return nil
		},
	}
	add.Flags().StringVar(&form.Title, "title", "", "file title (required)")
	add.Flags().StringVar(&form.Description, "description", "", "short description")
	add.Flags().StringVar(&form.SourceURL, "url", "", "source URL (required)")
	add.Flags().IntVar(&form.CategoryID, "category", 0, "category id (0 for none)")
	add.Flags().StringVar(&mediaType, "type", string(models.MediaVideo), "media type: video, pdf or image")

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.catalogView(yes).DeleteFile(cmd.Context(), id)
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	cmd.AddCommand(list, add, del)
	return cmd
}

func categoriesCMD(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List, add and delete categories",
	}

	var jsonOutput bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := a.backend().ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), categories)
			}
			outputCategories(cmd.OutOrStdout(), categories)
			return nil
		},
	}
	list.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.catalogView(false)
			v.NewCategoryName = strings.Join(args, " ")
			if err := v.AddCategory(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category added")
			return nil
		},
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category; its files become uncategorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.catalogView(yes).DeleteCategory(cmd.Context(), id)
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	cmd.AddCommand(list, add, del)
	return cmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
