package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/api"
	"github.com/elyvra/storefront/internal/config"
	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/internal/session"
	"github.com/elyvra/storefront/internal/store"
	"github.com/elyvra/storefront/internal/view"
)

func usage() {
	fmt.Println("Usage: admin <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login <username> <password>         Log in and persist the profile")
	fmt.Println("  logout                              Clear the persisted profile")
	fmt.Println("  stats                               Show dashboard metrics")
	fmt.Println("  orders [status]                     List orders, optionally by status")
	fmt.Println("  set-status <id> <status> [--force]  Move an order to a new status")
	fmt.Println("  products [search]                   List catalog products")
	fmt.Println("  delete-product <id>                 Delete a product (asks first)")
	fmt.Println("  blog [search]                       List blog posts, drafts included")
	fmt.Println("  delete-post <id>                    Delete a blog post (asks first)")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	st, err := store.Open(cfg.State.Path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open local state: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	client := api.NewClient(cfg.API, logger)
	gate := session.NewAdminGate(client, st, logger)
	ctx := context.Background()

	if err := gate.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load admin session: %v\n", err)
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "login":
		if len(os.Args) < 4 {
			usage()
		}
		admin, err := gate.Login(ctx, os.Args[2], os.Args[3])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Logged in as %s (%s)\n", admin.Username, admin.FullName)
		return

	case "logout":
		if err := gate.Logout(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Logout failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Logged out")
		return
	}

	// Every other command sits behind the session gate.
	if !gate.LoggedIn() {
		fmt.Fprintln(os.Stderr, "Not logged in. Run: admin login <username> <password>")
		os.Exit(1)
	}
	lang, _ := st.Language(ctx)

	switch command {
	case "stats":
		stats, err := client.Stats(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch stats: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Revenue:   $%.2f\n", stats.TotalRevenue)
		fmt.Printf("Orders:    %d\n", stats.TotalOrders)
		fmt.Printf("Customers: %d\n", stats.TotalCustomers)
		fmt.Printf("Products:  %d\n", stats.TotalProducts)
		fmt.Printf("Carts:     %d active of %d (%d abandoned)\n",
			stats.ActiveCarts, stats.TotalCarts, stats.AbandonedCarts)
		for status, count := range stats.OrdersByStatus {
			fmt.Printf("  %-16s %d\n", status, count)
		}

	case "orders":
		orders := view.NewOrdersView(client, logger)
		if len(os.Args) > 2 {
			err = orders.SetStatusFilter(ctx, domain.OrderStatus(os.Args[2]))
		} else {
			err = orders.Refresh(ctx)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch orders: %v\n", err)
			os.Exit(1)
		}
		if orders.Empty() {
			fmt.Println("No orders found")
			return
		}
		for _, o := range orders.Orders() {
			badge := view.StatusBadge(lang, o.Status)
			fmt.Printf("%s  $%.2f  [%s]  customer %s\n", o.ID, o.TotalAmount, badge.Label, o.CustomerID)
		}

	case "set-status":
		if len(os.Args) < 4 {
			usage()
		}
		force := len(os.Args) > 4 && os.Args[4] == "--force"
		orders := view.NewOrdersView(client, logger)
		if err := orders.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch orders: %v\n", err)
			os.Exit(1)
		}
		status := domain.OrderStatus(os.Args[3])
		if err := orders.UpdateStatus(ctx, os.Args[2], status, force); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to update order: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Order %s moved to %s\n", os.Args[2], status)

	case "products":
		products := view.NewProductsView(client, logger)
		if err := products.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
			os.Exit(1)
		}
		if len(os.Args) > 2 {
			products.SetSearch(os.Args[2])
		}
		if products.Empty() {
			fmt.Println("No products found")
			return
		}
		for _, p := range products.Products() {
			badge := view.StockBadge(&p)
			fmt.Printf("%s  %-20s  $%.2f  [%s] stock %d\n",
				p.ID, p.SKU, p.Price, badge.Label, p.StockQuantity)
		}

	case "delete-product":
		if len(os.Args) < 3 {
			usage()
		}
		products := view.NewProductsView(client, logger)
		if err := products.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
			os.Exit(1)
		}
		result, err := products.Delete(ctx, os.Args[2], promptConfirm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete product: %v\n", err)
			os.Exit(1)
		}
		if !result.Confirmed {
			fmt.Println("Cancelled")
			return
		}
		fmt.Println("Product deleted")

	case "blog":
		posts := view.NewBlogView(client, false, logger)
		if err := posts.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch blog posts: %v\n", err)
			os.Exit(1)
		}
		if len(os.Args) > 2 {
			posts.SetSearch(os.Args[2])
		}
		if posts.Empty() {
			fmt.Println("No posts found")
			return
		}
		for _, p := range posts.Posts() {
			state := "draft"
			if p.Published {
				state = "published"
			}
			fmt.Printf("%s  [%s]  %s by %s\n", p.ID, state, p.Title[lang], p.Author)
		}

	case "delete-post":
		if len(os.Args) < 3 {
			usage()
		}
		posts := view.NewBlogView(client, false, logger)
		if err := posts.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch blog posts: %v\n", err)
			os.Exit(1)
		}
		result, err := posts.Delete(ctx, os.Args[2], promptConfirm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete blog post: %v\n", err)
			os.Exit(1)
		}
		if !result.Confirmed {
			fmt.Println("Cancelled")
			return
		}
		fmt.Println("Blog post deleted")

	default:
		usage()
	}
}

// promptConfirm asks on stdin; anything but y/yes declines
func promptConfirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
