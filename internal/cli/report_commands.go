package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"productcatalog/internal/service"
)

func (cli *CLI) reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reporting queries",
	}

	detailsCmd := &cobra.Command{
		Use:   "details",
		Short: "List products with category and supplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := cli.reports.ProductsWithDetails(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range products {
				category := "-"
				if p.Category != nil {
					category = p.Category.Name
				}
				supplier := "-"
				if p.Supplier != nil {
					supplier = p.Supplier.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  %s  category=%s  supplier=%s\n",
					p.ID, p.Name, p.Price.StringFixed(2), category, supplier)
			}
			return nil
		},
	}

	hierarchyCmd := &cobra.Command{
		Use:   "hierarchy",
		Short: "Show the category tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := cli.reports.CategoryHierarchy(cmd.Context())
			if err != nil {
				return err
			}
			printCategoryTree(cmd.OutOrStdout(), roots, "")
			return nil
		},
	}

	byCategoryCmd := &cobra.Command{
		Use:   "by-category <category-id>",
		Short: "List products in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			products, err := cli.reports.ProductsByCategory(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}

	var count int
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recently created products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := cli.reports.RecentProducts(cmd.Context(), count)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
	recentCmd.Flags().IntVar(&count, "count", service.DefaultRecentCount, "Number of products to show")

	historyCmd := &cobra.Command{
		Use:   "history <product-id>",
		Short: "Show the audit trail of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args)
			if err != nil {
				return err
			}
			entries, err := cli.reports.HistoryForProduct(cmd.Context(), id)
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	var threshold int
	lowStockCmd := &cobra.Command{
		Use:   "low-stock",
		Short: "List products at or below a stock threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := cli.reports.LowStockProducts(cmd.Context(), threshold)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
	lowStockCmd.Flags().IntVar(&threshold, "threshold", service.DefaultLowStockThreshold, "Stock threshold")

	var minPrice, maxPrice string
	priceRangeCmd := &cobra.Command{
		Use:   "price-range",
		Short: "List products priced within a range",
		RunE: func(cmd *cobra.Command, args []string) error {
			minDec, err := decimal.NewFromString(minPrice)
			if err != nil {
				return fmt.Errorf("invalid min price %q", minPrice)
			}
			maxDec, err := decimal.NewFromString(maxPrice)
			if err != nil {
				return fmt.Errorf("invalid max price %q", maxPrice)
			}
			products, err := cli.reports.ProductsByPriceRange(cmd.Context(), minDec, maxDec)
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), products)
			return nil
		},
	}
	priceRangeCmd.Flags().StringVar(&minPrice, "min", "0", "Minimum price, inclusive")
	priceRangeCmd.Flags().StringVar(&maxPrice, "max", "0", "Maximum price, inclusive")

	supplierPerfCmd := &cobra.Command{
		Use:   "supplier-performance",
		Short: "List suppliers by product count",
		RunE: func(cmd *cobra.Command, args []string) error {
			suppliers, err := cli.reports.SupplierPerformance(cmd.Context())
			if err != nil {
				return err
			}
			printSuppliers(cmd.OutOrStdout(), suppliers, true)
			return nil
		},
	}

	categoryStatsCmd := &cobra.Command{
		Use:   "category-statistics",
		Short: "List categories by product count",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := cli.reports.CategoryStatistics(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  products=%d\n", c.ID, c.Name, c.ProductCount)
			}
			return nil
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the latest catalog summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := cli.reports.Stats(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Total products:     %d\n", stats.TotalProducts)
			fmt.Fprintf(w, "Average price:      %s\n", stats.AveragePrice.StringFixed(2))
			fmt.Fprintf(w, "Total stock value:  %s\n", stats.TotalStockValue.StringFixed(2))
			fmt.Fprintf(w, "Low stock count:    %d\n", stats.LowStockCount)
			fmt.Fprintf(w, "Discontinued:       %d\n", stats.DiscontinuedCount)
			fmt.Fprintf(w, "Last updated:       %s\n", stats.LastUpdated.Format(time.RFC3339))
			return nil
		},
	}

	cmd.AddCommand(
		detailsCmd,
		hierarchyCmd,
		byCategoryCmd,
		recentCmd,
		historyCmd,
		lowStockCmd,
		priceRangeCmd,
		supplierPerfCmd,
		categoryStatsCmd,
		statsCmd,
	)
	return cmd
}
