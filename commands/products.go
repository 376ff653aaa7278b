package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"farm-market/client"
	"farm-market/listing"
	"farm-market/models"
)

var (
	searchText     string
	categoryFilter string
	minPrice       float64
	maxPrice       float64
	sortOption     string

	productName        string
	productDescription string
	productCategory    int
	productPrice       float64
	productQuantity    int
	productImage       string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse and manage product listings",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products (own listings for farmers, the whole market for buyers)",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		products, err := c.Products(context.Background())
		if err != nil {
			return describeAPIError(err)
		}

		products = listing.Filter(products, listing.Query{
			Text:     searchText,
			Category: categoryFilter,
			MinPrice: minPrice,
			MaxPrice: maxPrice,
		})
		products = listing.Sort(products, sortOption)

		if len(products) == 0 {
			fmt.Println("No products found.")
			return nil
		}
		for _, p := range products {
			printProduct(p, c.Role() == models.RoleFarmer)
		}
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product listing (farmer)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if productName == "" || productPrice <= 0 || productQuantity < 1 {
			return errors.New("--name is required, --price must be positive and --quantity must be at least 1")
		}
		if models.CategoryName(productCategory) == models.DefaultCategoryName && productCategory != 5 {
			return fmt.Errorf("unknown category id %d: valid ids are 1-5", productCategory)
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		imageURL := productImage
		if imageURL != "" && !isURL(imageURL) {
			// Treat the flag as a local file and upload it first.
			imageURL, err = c.UploadImage(context.Background(), productImage)
			if err != nil {
				return fmt.Errorf("uploading image: %w", err)
			}
		}

		err = c.AddProduct(context.Background(), models.CreateProductRequest{
			Name:        productName,
			Description: productDescription,
			CategoryID:  productCategory,
			Price:       productPrice,
			Quantity:    productQuantity,
			ImageURL:    imageURL,
		})
		if err != nil {
			return describeAPIError(err)
		}
		fmt.Printf("Added %q\n", productName)
		return nil
	},
}

var productsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit one of your product listings (farmer); all fields are replaced",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		if productName == "" || productPrice <= 0 || productQuantity < 0 {
			return errors.New("--name is required, --price must be positive and --quantity must not be negative")
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		imageURL := productImage
		if imageURL != "" && !isURL(imageURL) {
			imageURL, err = c.UploadImage(context.Background(), productImage)
			if err != nil {
				return fmt.Errorf("uploading image: %w", err)
			}
		}

		err = c.EditProduct(context.Background(), id, models.UpdateProductRequest{
			Name:        productName,
			Description: productDescription,
			CategoryID:  productCategory,
			Price:       productPrice,
			Quantity:    productQuantity,
			ImageURL:    imageURL,
		})
		if err != nil {
			return describeAPIError(err)
		}
		fmt.Printf("Updated product %d\n", id)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your product listings (farmer)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		if err := c.DeleteProduct(context.Background(), id); err != nil {
			return describeAPIError(err)
		}
		fmt.Printf("Deleted product %d\n", id)
		return nil
	},
}

func printProduct(p models.Product, ownListing bool) {
	low := ""
	if ownListing && p.LowStock() {
		low = "  [low stock]"
	}
	fmt.Printf("#%d %s  $%.2f  (%s, %d available)%s\n",
		p.ID, p.Name, p.Price, models.CategoryName(p.CategoryID), p.Quantity, low)
	if p.Description != "" {
		fmt.Printf("    %s\n", p.Description)
	}
}

// describeAPIError turns the common backend failures into messages that tell
// the user what to do next.
func describeAPIError(err error) error {
	if client.IsAuthError(err) {
		return fmt.Errorf("not logged in for role %q (or the session expired): run \"farmmarket login --role %s\"", roleFlag, roleFlag)
	}
	if client.IsNotFound(err) {
		return errors.New("not found: it may have been deleted in the meantime")
	}
	return err
}

func isURL(s string) bool {
	return len(s) > 7 && (s[:7] == "http://" || s[:8] == "https://")
}

func init() {
	productsListCmd.Flags().StringVar(&searchText, "search", "", "Match name or description")
	productsListCmd.Flags().StringVar(&categoryFilter, "category", listing.CategoryAll, "Category name filter")
	productsListCmd.Flags().Float64Var(&minPrice, "min-price", 0, "Minimum price")
	productsListCmd.Flags().Float64Var(&maxPrice, "max-price", 0, "Maximum price (0 for no limit)")
	productsListCmd.Flags().StringVar(&sortOption, "sort", listing.SortNewest,
		fmt.Sprintf("Sort order: %q, %q or %q", listing.SortNewest, listing.SortPriceLowHigh, listing.SortPriceHighLow))

	for _, cmd := range []*cobra.Command{productsAddCmd, productsEditCmd} {
		cmd.Flags().StringVar(&productName, "name", "", "Product name")
		cmd.Flags().StringVar(&productDescription, "description", "", "Product description")
		cmd.Flags().IntVar(&productCategory, "category", 5, "Category id (1 Fruits, 2 Vegetables, 3 Dairy, 4 Plants, 5 Others)")
		cmd.Flags().Float64Var(&productPrice, "price", 0, "Unit price")
		cmd.Flags().IntVar(&productQuantity, "quantity", 0, "Stock quantity")
		cmd.Flags().StringVar(&productImage, "image", "", "Image URL, or a local file to upload")
	}

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsEditCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}
