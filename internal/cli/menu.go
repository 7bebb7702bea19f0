package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"productcatalog/internal/model"
)

// runMenu runs the interactive console loop until the user quits.
func (cli *CLI) runMenu(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("Product Management System")
		fmt.Println("------------------------")
		fmt.Println("1. List all products")
		fmt.Println("2. Get product by ID")
		fmt.Println("3. Create new product")
		fmt.Println("4. Update product")
		fmt.Println("5. Delete product")
		fmt.Println("6. Update product stock")
		fmt.Println("Q. Quit")
		fmt.Print("\nEnter your choice: ")

		choice, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "1":
			cli.menuListProducts(ctx)
		case "2":
			cli.menuGetProduct(ctx, reader)
		case "3":
			cli.menuCreateProduct(ctx, reader)
		case "4":
			cli.menuUpdateProduct(ctx, reader)
		case "5":
			cli.menuDeleteProduct(ctx, reader)
		case "6":
			cli.menuUpdateStock(ctx, reader)
		case "q":
			return nil
		default:
			fmt.Println("\nInvalid choice. Please try again.")
		}
		fmt.Println()
	}
}

func (cli *CLI) menuListProducts(ctx context.Context) {
	products, err := cli.products.GetAll(ctx)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Println()
	printProducts(os.Stdout, products)
}

func (cli *CLI) menuGetProduct(ctx context.Context, reader *bufio.Reader) {
	id, ok := promptID(reader, "\nEnter product ID: ")
	if !ok {
		return
	}
	product, err := cli.products.Get(ctx, id)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Println()
	printProduct(os.Stdout, product)
}

func (cli *CLI) menuCreateProduct(ctx context.Context, reader *bufio.Reader) {
	product := promptProductDetails(reader)
	id, err := cli.products.Create(ctx, product)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Printf("\nProduct created successfully with ID: %d\n", id)
}

func (cli *CLI) menuUpdateProduct(ctx context.Context, reader *bufio.Reader) {
	id, ok := promptID(reader, "\nEnter product ID to update: ")
	if !ok {
		return
	}
	existing, err := cli.products.Get(ctx, id)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}

	product := promptProductDetails(reader)
	product.ID = id
	product.CategoryID = existing.CategoryID
	product.SupplierID = existing.SupplierID
	product.CreatedDate = existing.CreatedDate
	if err := cli.products.Update(ctx, product); err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Println("Product updated successfully.")
}

func (cli *CLI) menuDeleteProduct(ctx context.Context, reader *bufio.Reader) {
	id, ok := promptID(reader, "\nEnter product ID to delete: ")
	if !ok {
		return
	}
	if err := cli.products.Delete(ctx, id); err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Println("Product deleted successfully.")
}

func (cli *CLI) menuUpdateStock(ctx context.Context, reader *bufio.Reader) {
	id, ok := promptID(reader, "\nEnter product ID: ")
	if !ok {
		return
	}

	fmt.Print("Enter new stock quantity: ")
	quantity, err := strconv.Atoi(readLine(reader))
	if err != nil {
		fmt.Println("Invalid quantity format.")
		return
	}

	if err := cli.products.UpdateStock(ctx, id, quantity); err != nil {
		fmt.Printf("\nError: %v\n", err)
		return
	}
	fmt.Println("Stock updated successfully.")
}

func promptProductDetails(reader *bufio.Reader) *model.Product {
	fmt.Print("\nEnter product name: ")
	name := readLine(reader)

	fmt.Print("Enter product description (optional): ")
	description := readLine(reader)

	fmt.Print("Enter price: ")
	price, err := decimal.NewFromString(readLine(reader))
	if err != nil {
		price = decimal.Zero
	}

	fmt.Print("Enter stock quantity: ")
	quantity, err := strconv.Atoi(readLine(reader))
	if err != nil {
		quantity = 0
	}

	fmt.Print("Enter category ID: ")
	categoryID, err := strconv.ParseInt(readLine(reader), 10, 64)
	if err != nil {
		categoryID = 0
	}

	return &model.Product{
		Name:          name,
		Description:   description,
		Price:         price,
		StockQuantity: quantity,
		CategoryID:    categoryID,
	}
}

func promptID(reader *bufio.Reader, prompt string) (int64, bool) {
	fmt.Print(prompt)
	id, err := strconv.ParseInt(readLine(reader), 10, 64)
	if err != nil {
		fmt.Println("Invalid ID format.")
		return 0, false
	}
	return id, true
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
