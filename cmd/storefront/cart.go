package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/session"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the shopping cart",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

func init() {
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	rootCmd.AddCommand(cartCmd)
}

func runCartShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if err := a.Session.Navigate(ctx, session.ViewCart); err != nil {
		return err
	}
	// Product details are needed to price the cart lines.
	if err := a.Products.Refresh(ctx); err != nil {
		return err
	}
	printCart(a)
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if err := a.Cart.Refresh(ctx); err != nil {
		return err
	}
	if err := a.Cart.AddToCart(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Added to cart.")
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if err := a.Cart.RemoveItem(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Removed from cart.")
	return nil
}
