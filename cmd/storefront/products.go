package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/Srinath-230/e-commerce-frontend-app/pkg/errors"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/form"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/session"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Work with the product catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE:  runProductsList,
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the catalog",
	RunE:  runProductsAdd,
}

var productsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing product",
	Long: `Edit an existing product. Only the flags you pass are changed;
everything else keeps its current value.`,
	Args: cobra.ExactArgs(1),
	RunE: runProductsEdit,
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsDelete,
}

var (
	productName        string
	productDescription string
	productPrice       string
	productImageURL    string
	deleteYes          bool
)

func init() {
	productsAddCmd.Flags().StringVar(&productName, "name", "", "product name (required)")
	productsAddCmd.Flags().StringVar(&productDescription, "description", "", "product description (required)")
	productsAddCmd.Flags().StringVar(&productPrice, "price", "", "product price (required)")
	productsAddCmd.Flags().StringVar(&productImageURL, "image-url", "", "product image URL")

	productsEditCmd.Flags().StringVar(&productName, "name", "", "new product name")
	productsEditCmd.Flags().StringVar(&productDescription, "description", "", "new product description")
	productsEditCmd.Flags().StringVar(&productPrice, "price", "", "new product price")
	productsEditCmd.Flags().StringVar(&productImageURL, "image-url", "", "new product image URL")

	productsDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsEditCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if err := a.Session.Navigate(ctx, session.ViewProducts); err != nil {
		return err
	}
	printProducts(a.Products.Snapshot())
	return nil
}

func runProductsAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	a.Session.OpenCreate()
	f := a.Session.Form()
	f.Bind(form.FieldName, productName)
	f.Bind(form.FieldDescription, productDescription)
	f.Bind(form.FieldPrice, productPrice)
	f.Bind(form.FieldImageURL, productImageURL)

	if err := a.Session.SubmitForm(ctx); err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) && len(f.Errors()) > 0 {
			fmt.Println("Product not saved:")
			printFieldErrors(f.Errors())
		}
		return err
	}
	fmt.Println("Product added.")
	return nil
}

func runProductsEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if err := a.Session.Navigate(ctx, session.ViewProducts); err != nil {
		return err
	}
	if err := a.Session.OpenEdit(args[0]); err != nil {
		return err
	}

	f := a.Session.Form()
	if cmd.Flags().Changed("name") {
		f.Bind(form.FieldName, productName)
	}
	if cmd.Flags().Changed("description") {
		f.Bind(form.FieldDescription, productDescription)
	}
	if cmd.Flags().Changed("price") {
		f.Bind(form.FieldPrice, productPrice)
	}
	if cmd.Flags().Changed("image-url") {
		f.Bind(form.FieldImageURL, productImageURL)
	}

	if err := a.Session.SubmitForm(ctx); err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) && len(f.Errors()) > 0 {
			fmt.Println("Product not saved:")
			printFieldErrors(f.Errors())
		}
		return err
	}
	fmt.Println("Product updated.")
	return nil
}

func runProductsDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if err := a.Session.Navigate(ctx, session.ViewProducts); err != nil {
		return err
	}

	if deleteYes {
		// --yes skips the prompt and deletes directly.
		if err := a.Products.Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Product deleted.")
		return nil
	}
	return a.Session.DeleteProduct(ctx, args[0])
}
