package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/api"
	"github.com/elyvra/storefront/internal/config"
	"github.com/elyvra/storefront/internal/domain"
	"github.com/elyvra/storefront/internal/i18n"
	"github.com/elyvra/storefront/internal/session"
	"github.com/elyvra/storefront/internal/store"
	"github.com/elyvra/storefront/internal/view"
)

func usage() {
	fmt.Println("Usage: storefront <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  products [category]      List products, optionally by category")
	fmt.Println("  search <term>            Search products by name or SKU")
	fmt.Println("  add <product-id> [qty]   Add a product to the cart")
	fmt.Println("  cart                     Show the cart item count")
	fmt.Println("  lang <locale>            Set the display language (en, ar, fr)")
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
	ctx := context.Background()

	lang, err := st.Language(ctx)
	if err != nil {
		lang = i18n.Match(cfg.Language)
	}
	t := i18n.T(lang)

	switch os.Args[1] {
	case "products":
		products := view.NewProductsView(client, logger)
		if len(os.Args) > 2 {
			category := domain.ProductCategory(os.Args[2])
			if !category.IsValid() {
				fmt.Fprintf(os.Stderr, "Unknown category %q\n", os.Args[2])
				os.Exit(1)
			}
			err = products.SetCategoryFilter(ctx, category)
		} else {
			err = products.Refresh(ctx)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", t.GenericError, err)
			os.Exit(1)
		}
		printProducts(products, lang, t)

	case "search":
		if len(os.Args) < 3 {
			usage()
		}
		products := view.NewProductsView(client, logger)
		if err := products.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", t.GenericError, err)
			os.Exit(1)
		}
		products.SetSearch(os.Args[2])
		printProducts(products, lang, t)

	case "add":
		if len(os.Args) < 3 {
			usage()
		}
		quantity := 1
		if len(os.Args) > 3 {
			if _, err := fmt.Sscanf(os.Args[3], "%d", &quantity); err != nil {
				fmt.Fprintf(os.Stderr, "Invalid quantity %q\n", os.Args[3])
				os.Exit(1)
			}
		}

		cart := session.NewCartSession(client, st, logger)
		if err := cart.EnsureCart(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", t.GenericError, err)
			os.Exit(1)
		}
		if err := cart.AddItem(ctx, os.Args[2], quantity); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", t.GenericError, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d\n", t.Cart, cart.Count())

	case "cart":
		cart := session.NewCartSession(client, st, logger)
		if err := cart.EnsureCart(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", t.GenericError, err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d\n", t.Cart, cart.Count())

	case "lang":
		if len(os.Args) < 3 {
			usage()
		}
		lang := i18n.Match(os.Args[2])
		if err := st.SaveLanguage(ctx, lang); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save language: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Language set to %s\n", lang)

	default:
		usage()
	}
}

func printProducts(products *view.ProductsView, lang domain.Language, t i18n.Strings) {
	if products.Empty() {
		fmt.Println(t.NoItems)
		return
	}
	for _, p := range products.Products() {
		info := p.Translation(lang)
		badge := view.StockBadge(&p)
		fmt.Printf("%s  %s%.2f  [%s]  %s (%s)\n",
			p.ID, t.Currency, p.DisplayPrice(), badge.Label, info.Name, p.SKU)
	}
}
