package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/minshop/storefront/internal/cart"
	"github.com/minshop/storefront/internal/config"
	"github.com/minshop/storefront/internal/rest"
	"github.com/minshop/storefront/internal/storage"
)

const usage = `usage: storefront <command> [args]

commands:
  products                   list the catalogue
  product <route>            show one product
  categories                 list product categories
  cart                       show the current cart
  add <productId> [qty]      add a product to the cart
  update <productId> <qty>   set a line item quantity (0 removes)
  remove <productId>         remove a product from the cart
  checkout-options           list usable payment and logistics options
  order <orderNumber>        look up an order
  pay-url <orderNumber>      print the payment page URL
  cvs-url <logId>            print the convenience-store map URL
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("storefront failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("no command given")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	restCfg := rest.Config{BaseURL: cfg.APIURL, Timeout: cfg.Timeout}

	local, err := storage.Open(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("storage.Open: %w", err)
	}

	cartClient, err := rest.NewCart(restCfg)
	if err != nil {
		return fmt.Errorf("rest.NewCart: %w", err)
	}

	store, err := cart.NewStore(cartClient, local.Attach())
	if err != nil {
		return fmt.Errorf("cart.NewStore: %w", err)
	}

	ctx := context.Background()

	switch cmd, params := args[0], args[1:]; cmd {
	case "products":
		return listProducts(ctx, restCfg)
	case "product":
		if len(params) != 1 {
			return fmt.Errorf("product needs a route")
		}
		return showProduct(ctx, restCfg, params[0])
	case "categories":
		return listCategories(ctx, restCfg)
	case "cart":
		return showCart(ctx, store)
	case "add":
		if len(params) < 1 {
			return fmt.Errorf("add needs a product id")
		}
		quantity := 1
		if len(params) > 1 {
			quantity, err = strconv.Atoi(params[1])
			if err != nil {
				return fmt.Errorf("quantity[%s] is not a number: %w", params[1], err)
			}
		}
		if err := store.Add(ctx, params[0], quantity); err != nil {
			return fmt.Errorf("store.Add: %w", err)
		}
		return showCart(ctx, store)
	case "update":
		if len(params) != 2 {
			return fmt.Errorf("update needs a product id and a quantity")
		}
		quantity, err := strconv.Atoi(params[1])
		if err != nil {
			return fmt.Errorf("quantity[%s] is not a number: %w", params[1], err)
		}
		if err := store.UpdateQuantity(ctx, params[0], quantity); err != nil {
			return fmt.Errorf("store.UpdateQuantity: %w", err)
		}
		return showCart(ctx, store)
	case "remove":
		if len(params) != 1 {
			return fmt.Errorf("remove needs a product id")
		}
		if err := store.Remove(ctx, params[0]); err != nil {
			return fmt.Errorf("store.Remove: %w", err)
		}
		return showCart(ctx, store)
	case "checkout-options":
		return listCheckoutOptions(ctx, restCfg)
	case "order":
		if len(params) != 1 {
			return fmt.Errorf("order needs an order number")
		}
		return showOrder(ctx, restCfg, params[0])
	case "pay-url":
		if len(params) != 1 {
			return fmt.Errorf("pay-url needs an order number")
		}
		return showPaymentURL(restCfg, params[0])
	case "cvs-url":
		if len(params) != 1 {
			return fmt.Errorf("cvs-url needs a logistics id")
		}
		logID, err := strconv.ParseInt(params[0], 10, 64)
		if err != nil {
			return fmt.Errorf("logId[%s] is not a number: %w", params[0], err)
		}
		return showCVSMapURL(restCfg, logID)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func listProducts(ctx context.Context, cfg rest.Config) error {
	client, err := rest.NewProduct(cfg)
	if err != nil {
		return fmt.Errorf("rest.NewProduct: %w", err)
	}

	products, err := client.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("client.ListProducts: %w", err)
	}

	for _, p := range products {
		fmt.Printf("%-12s %-24s %s\n", p.ID, p.Name, p.Price)
	}
	return nil
}

func showProduct(ctx context.Context, cfg rest.Config, route string) error {
	client, err := rest.NewProduct(cfg)
	if err != nil {
		return fmt.Errorf("rest.NewProduct: %w", err)
	}

	p, err := client.GetProduct(ctx, route)
	if err != nil {
		return fmt.Errorf("client.GetProduct: %w", err)
	}

	fmt.Printf("%s (%s)\nprice: %s\n%s\n", p.Name, p.ID, p.Price, p.Description)
	return nil
}

func listCategories(ctx context.Context, cfg rest.Config) error {
	client, err := rest.NewProduct(cfg)
	if err != nil {
		return fmt.Errorf("rest.NewProduct: %w", err)
	}

	categories, err := client.Categories(ctx)
	if err != nil {
		return fmt.Errorf("client.Categories: %w", err)
	}

	for _, c := range categories {
		fmt.Println(c)
	}
	return nil
}

func showCart(ctx context.Context, store *cart.Store) error {
	if err := store.Refresh(ctx); err != nil {
		return fmt.Errorf("store.Refresh: %w", err)
	}

	c := store.Cart()
	if len(c.Products) == 0 {
		fmt.Println("cart is empty")
		return nil
	}

	for _, line := range c.Products {
		fmt.Printf("%-12s x%-3d %s\n", line.Product.ID, line.Quantity, line.Product.Price)
	}
	fmt.Printf("items: %d  total: %s\n", store.ItemCount(), store.TotalPrice())
	return nil
}

func listCheckoutOptions(ctx context.Context, cfg rest.Config) error {
	client, err := rest.NewOrder(cfg)
	if err != nil {
		return fmt.Errorf("rest.NewOrder: %w", err)
	}

	options, err := client.UsableOptions(ctx)
	if err != nil {
		return fmt.Errorf("client.UsableOptions: %w", err)
	}

	fmt.Println("payment:")
	for _, p := range options.Payments {
		fmt.Printf("  %d  %s\n", p.ID, p.Name)
	}
	fmt.Println("logistics:")
	for _, l := range options.Logistics {
		fmt.Printf("  %d  %s (fee %s)\n", l.ID, l.Name, l.Fee)
	}
	return nil
}

func showOrder(ctx context.Context, cfg rest.Config, orderNumber string) error {
	client, err := rest.NewOrder(cfg)
	if err != nil {
		return fmt.Errorf("rest.NewOrder: %w", err)
	}

	order, err := client.GetOrder(ctx, orderNumber)
	if err != nil {
		return fmt.Errorf("client.GetOrder: %w", err)
	}

	fmt.Printf("order %s  status: %s\n", order.OrderNumber, order.Status)
	for _, line := range order.Products {
		fmt.Printf("%-12s x%-3d %s\n", line.Product.ID, line.Quantity, line.Product.Price)
	}
	fmt.Printf("total: %s %v\n", order.Total.Amount, order.Total.Currency)
	return nil
}

func showPaymentURL(cfg rest.Config, orderNumber string) error {
	client, err := rest.NewPayment(cfg)
	if err != nil {
		return fmt.Errorf("rest.NewPayment: %w", err)
	}

	path, err := client.PaymentPagePath(orderNumber)
	if err != nil {
		return fmt.Errorf("client.PaymentPagePath: %w", err)
	}

	fmt.Println(path)
	return nil
}

func showCVSMapURL(cfg rest.Config, logID int64) error {
	client, err := rest.NewLogistics(cfg)
	if err != nil {
		return fmt.Errorf("rest.NewLogistics: %w", err)
	}

	path, err := client.CVSMapPath(logID)
	if err != nil {
		return fmt.Errorf("client.CVSMapPath: %w", err)
	}

	fmt.Println(path)
	return nil
}
