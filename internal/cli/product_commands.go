package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"productcatalog/internal/model"
	"productcatalog/internal/repository"
	"productcatalog/internal/schema"
)

type productFlags struct {
	name         string
	description  string
	price        string
	stock        int
	categoryID   int64
	supplierID   int64
	sku          string
	weight       string
	dimensions   string
	discontinued bool
	reorderLevel int
}

func registerProductFlags(cmd *cobra.Command, flags *productFlags) {
	cmd.Flags().StringVar(&flags.name, "name", "", "Product name")
	cmd.Flags().StringVar(&flags.description, "description", "", "Product description")
	cmd.Flags().StringVar(&flags.price, "price", "0", "Product price")
	cmd.Flags().IntVar(&flags.stock, "stock", 0, "Stock quantity")
	cmd.Flags().Int64Var(&flags.categoryID, "category", 0, "Category ID")
	cmd.Flags().Int64Var(&flags.supplierID, "supplier", 0, "Supplier ID (0 for none)")
	cmd.Flags().StringVar(&flags.sku, "sku", "", "Stock keeping unit")
	cmd.Flags().StringVar(&flags.weight, "weight", "", "Product weight")
	cmd.Flags().StringVar(&flags.dimensions, "dimensions", "", "Product dimensions")
	cmd.Flags().BoolVar(&flags.discontinued, "discontinued", false, "Mark the product discontinued")
	cmd.Flags().IntVar(&flags.reorderLevel, "reorder-level", 0, "Reorder level")
}

func (f *productFlags) toProduct() (*model.Product, error) {
	price, err := decimal.NewFromString(f.price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", f.price, err)
	}

	p := &model.Product{
		Name:           f.name,
		Description:    f.description,
		Price:          price,
		StockQuantity:  f.stock,
		CategoryID:     f.categoryID,
		SKU:            f.sku,
		Dimensions:     f.dimensions,
		IsDiscontinued: schema.BoolInt(f.discontinued),
		ReorderLevel:   f.reorderLevel,
	}
	if f.supplierID != 0 {
		p.SupplierID = &f.supplierID
	}
	if f.weight != "" {
		w, err := decimal.NewFromString(f.weight)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", f.weight, err)
		}
		p.Weight = &w
	}
	return p, nil
}

func parseIDArg(args []string) (int64, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func (cli *CLI) productListCmd() *cobra.Command {
	var limit int32
	var token string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 && token == "" {
				products, err := cli.products.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				printProducts(cmd.OutOrStdout(), products)
				return nil
			}

			query := repository.NewQuery()
			if err := query.ApplyPagination(limit, token); err != nil {
				return err
			}
			products, err := cli.products.List(cmd.Context(), *query)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			if len(products) > 0 {
				last := products[len(products)-1]
				next := repository.Paginator{LastID: last.ID, LastCreatedAt: last.CreatedDate}
				fmt.Fprintf(cmd.OutOrStdout(), "\nNext page token: %s\n", next.Encode())
			}
			return nil
		},
	}

	cmd.Flags().Int32Var(&limit, "limit", 0, "Page size (0 lists everything)")
	cmd.Flags().StringVar(&token, "page-token", "", "Pagination token from a previous page")
	return cmd
}

func (cli *CLI) productGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			product, err := cli.products.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProduct(cmd.OutOrStdout(), product)
			return nil
		},
	}
}

func (cli *CLI) productAddCmd() *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := flags.toProduct()
			if err != nil {
				return err
			}
			id, err := cli.products.Create(cmd.Context(), product)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product created with ID %d\n", id)
			return nil
		},
	}

	registerProductFlags(cmd, &flags)
	return cmd
}

func (cli *CLI) productUpdateCmd() *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			product, err := flags.toProduct()
			if err != nil {
				return err
			}
			product.ID = id
			if err := cli.products.Update(cmd.Context(), product); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product updated")
			return nil
		},
	}

	registerProductFlags(cmd, &flags)
	return cmd
}

func (cli *CLI) productDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			if err := cli.products.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product deleted")
			return nil
		},
	}
}

func (cli *CLI) productStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock <id> <quantity>",
		Short: "Set the stock quantity of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if err := cli.products.UpdateStock(cmd.Context(), id, quantity); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Stock updated")
			return nil
		},
	}
}
