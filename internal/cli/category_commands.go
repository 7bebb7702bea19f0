package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"productcatalog/internal/model"
)

func (cli *CLI) categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	var (
		name        string
		description string
		parentID    int64
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			category := &model.Category{Name: name, Description: description}
			if parentID != 0 {
				category.ParentCategoryID = &parentID
			}
			id, err := cli.categories.Create(cmd.Context(), category)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category created with ID %d\n", id)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Category name")
	addCmd.Flags().StringVar(&description, "description", "", "Category description")
	addCmd.Flags().Int64Var(&parentID, "parent", 0, "Parent category ID (0 for root)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := cli.categories.List(cmd.Context())
			if err != nil {
				return err
			}
			printCategories(cmd.OutOrStdout(), categories)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an unreferenced category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			if err := cli.categories.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category deleted")
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, deleteCmd)
	return cmd
}
