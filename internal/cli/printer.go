package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"productcatalog/internal/model"
)

func printProducts(w io.Writer, products []*model.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY\tSKU\tDISCONTINUED")
	for _, p := range products {
		discontinued := ""
		if p.IsDiscontinued.Bool() {
			discontinued = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
			p.ID, p.Name, p.Price.StringFixed(2), p.StockQuantity, p.CategoryID, p.SKU, discontinued)
	}
	tw.Flush()
}

func printProduct(w io.Writer, p *model.Product) {
	fmt.Fprintf(w, "ID:             %d\n", p.ID)
	fmt.Fprintf(w, "Name:           %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(w, "Description:    %s\n", p.Description)
	}
	fmt.Fprintf(w, "Price:          %s\n", p.Price.StringFixed(2))
	fmt.Fprintf(w, "Stock:          %d\n", p.StockQuantity)
	fmt.Fprintf(w, "Category:       %d\n", p.CategoryID)
	if p.SupplierID != nil {
		fmt.Fprintf(w, "Supplier:       %d\n", *p.SupplierID)
	}
	if p.SKU != "" {
		fmt.Fprintf(w, "SKU:            %s\n", p.SKU)
	}
	if p.Weight != nil {
		fmt.Fprintf(w, "Weight:         %s\n", p.Weight.String())
	}
	if p.Dimensions != "" {
		fmt.Fprintf(w, "Dimensions:     %s\n", p.Dimensions)
	}
	fmt.Fprintf(w, "Discontinued:   %t\n", p.IsDiscontinued.Bool())
	fmt.Fprintf(w, "Reorder level:  %d\n", p.ReorderLevel)
	fmt.Fprintf(w, "Created:        %s\n", p.CreatedDate.Format(time.RFC3339))
	if p.ModifiedDate != nil {
		fmt.Fprintf(w, "Modified:       %s\n", p.ModifiedDate.Format(time.RFC3339))
	}
}

func printCategories(w io.Writer, categories []*model.Category) {
	if len(categories) == 0 {
		fmt.Fprintln(w, "No categories found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPARENT\tCREATED")
	for _, c := range categories {
		parent := "-"
		if c.ParentCategoryID != nil {
			parent = fmt.Sprintf("%d", *c.ParentCategoryID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Name, parent, c.CreatedDate.Format("2006-01-02"))
	}
	tw.Flush()
}

func printCategoryTree(w io.Writer, categories []*model.Category, indent string) {
	for _, c := range categories {
		fmt.Fprintf(w, "%s%s (id %d)\n", indent, c.Name, c.ID)
		printCategoryTree(w, c.SubCategories, indent+"  ")
	}
}

func printSuppliers(w io.Writer, suppliers []*model.Supplier, withCount bool) {
	if len(suppliers) == 0 {
		fmt.Fprintln(w, "No suppliers found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if withCount {
		fmt.Fprintln(tw, "ID\tNAME\tCONTACT\tEMAIL\tACTIVE\tPRODUCTS")
	} else {
		fmt.Fprintln(tw, "ID\tNAME\tCONTACT\tEMAIL\tACTIVE")
	}
	for _, s := range suppliers {
		active := "no"
		if s.IsActive.Bool() {
			active = "yes"
		}
		if withCount {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", s.ID, s.Name, s.ContactPerson, s.Email, active, s.ProductCount)
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.ContactPerson, s.Email, active)
		}
	}
	tw.Flush()
}

func printHistory(w io.Writer, entries []*model.ProductHistory) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history entries found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tACTION\tOLD PRICE\tNEW PRICE\tOLD STOCK\tNEW STOCK\tDATE\tBY")
	for _, h := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			h.ID, h.Action,
			decimalOrDash(h.OldPrice), decimalOrDash(h.NewPrice),
			intOrDash(h.OldStock), intOrDash(h.NewStock),
			h.ActionDate.Format(time.RFC3339), h.ModifiedBy)
	}
	tw.Flush()
}

func decimalOrDash(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.StringFixed(2)
}

func intOrDash(i *int) string {
	if i == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *i)
}
