package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"productcatalog/internal/config"
	"productcatalog/internal/service"
)

// CLI wires the catalog services into a cobra command tree. Running the root
// command without a subcommand starts the interactive menu.
type CLI struct {
	conf       *config.Config
	products   *service.ProductService
	categories *service.CategoryService
	suppliers  *service.SupplierService
	reports    *service.ReportService

	rootCmd *cobra.Command
}

func New(
	conf *config.Config,
	products *service.ProductService,
	categories *service.CategoryService,
	suppliers *service.SupplierService,
	reports *service.ReportService,
) *CLI {
	cli := &CLI{
		conf:       conf,
		products:   products,
		categories: categories,
		suppliers:  suppliers,
		reports:    reports,
	}

	cli.rootCmd = &cobra.Command{
		Use:   "catalog",
		Short: "Product catalog management",
		Long: `Manage a product catalog backed by PostgreSQL.

Without a subcommand an interactive menu is started. Subcommands cover
product CRUD, stock updates, category and supplier management, and the
reporting queries.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.runMenu(cmd.Context())
		},
	}

	cli.rootCmd.AddCommand(
		cli.productListCmd(),
		cli.productGetCmd(),
		cli.productAddCmd(),
		cli.productUpdateCmd(),
		cli.productDeleteCmd(),
		cli.productStockCmd(),
		cli.categoryCmd(),
		cli.supplierCmd(),
		cli.reportCmd(),
		cli.serveCmd(),
	)

	return cli
}

// Execute runs the root command.
func (cli *CLI) Execute() {
	if err := cli.rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
