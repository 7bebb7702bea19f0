package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"productcatalog/internal/model"
	"productcatalog/internal/schema"
)

func (cli *CLI) supplierCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supplier",
		Short: "Manage suppliers",
	}

	var (
		name     string
		address  string
		contact  string
		phone    string
		email    string
		inactive bool
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a supplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			supplier := &model.Supplier{
				Name:          name,
				Address:       address,
				ContactPerson: contact,
				Phone:         phone,
				Email:         email,
				IsActive:      schema.BoolInt(!inactive),
			}
			id, err := cli.suppliers.Create(cmd.Context(), supplier)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Supplier created with ID %d\n", id)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Supplier name")
	addCmd.Flags().StringVar(&address, "address", "", "Supplier address")
	addCmd.Flags().StringVar(&contact, "contact", "", "Contact person")
	addCmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	addCmd.Flags().StringVar(&email, "email", "", "Email address")
	addCmd.Flags().BoolVar(&inactive, "inactive", false, "Create the supplier inactive")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			suppliers, err := cli.suppliers.List(cmd.Context())
			if err != nil {
				return err
			}
			printSuppliers(cmd.OutOrStdout(), suppliers, false)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a supplier, detaching its products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			if err := cli.suppliers.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Supplier deleted")
			return nil
		},
	}

	cmd.AddCommand(addCmd, listCmd, deleteCmd)
	return cmd
}
