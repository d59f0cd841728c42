package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Srinath-230/e-commerce-frontend-app/internal/app"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/config"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/domain"
	"github.com/Srinath-230/e-commerce-frontend-app/internal/session"
	"github.com/Srinath-230/e-commerce-frontend-app/pkg/logger"
)

// newApp loads configuration and builds the full client. Notices go to
// stdout; destructive actions prompt on stdin.
func newApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New("storefront", cfg.LogLevel)
	notify := func(message string) {
		fmt.Println(message)
	}

	return app.New(cfg, log, stdinConfirmer{}, notify), nil
}

// stdinConfirmer asks a yes/no question on the terminal and treats
// anything other than y/yes as a decline.
type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

var _ session.Confirmer = stdinConfirmer{}

func printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tDESCRIPTION")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\n", p.ID, p.Name, p.Price, truncate(p.Description, 50))
	}
	w.Flush()
}

func printCart(a *app.App) {
	lines := a.Cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tPRODUCT\tQTY\tPRICE\tTOTAL")
	for _, line := range lines {
		fmt.Fprintf(w, "%s\t%s\t%d\t$%.2f\t$%.2f\n",
			line.Item.ID, line.Product.Name, line.Item.Quantity, line.Product.Price, line.Total())
	}
	w.Flush()
	fmt.Printf("\nCart total: $%.2f\n", a.Cart.Total())
}

func printFieldErrors(errs map[string]string) {
	for field, msg := range errs {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
