package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mtarza13/FlavorDash/internal/assistant"
	"github.com/mtarza13/FlavorDash/internal/cache"
	"github.com/mtarza13/FlavorDash/internal/cart"
	"github.com/mtarza13/FlavorDash/internal/config"
	"github.com/mtarza13/FlavorDash/internal/models"
	"github.com/mtarza13/FlavorDash/internal/services"
	"github.com/mtarza13/FlavorDash/internal/store"
)

const usage = `expected a subcommand: menu, register, login, logout, whoami, fav, order, orders, stats, ask, add-product, delete-product`

type app struct {
	store    store.Store
	catalog  *services.CatalogService
	identity *services.IdentityService
	orders   *services.OrderService
	chef     *assistant.Client
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	db, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	lat := services.DefaultLatency()
	if cfg.Fast {
		lat = services.ZeroLatency()
	}

	sim := services.NewSimulator(services.DefaultSchedule())
	a := &app{
		store:    db,
		catalog:  services.NewCatalogService(db, cache.New(), lat),
		identity: services.NewIdentityService(db, lat),
		orders:   services.NewOrderService(db, sim, lat),
		chef:     assistant.NewClient(cfg.AssistantAPIKey, cfg.AssistantModel),
	}

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "menu":
		a.menu(ctx, os.Args[2:])
	case "register":
		a.register(ctx, os.Args[2:])
	case "login":
		a.login(ctx, os.Args[2:])
	case "logout":
		if err := a.identity.Logout(ctx); err != nil {
			fatal(err)
		}
		fmt.Println("Logged out.")
	case "whoami":
		a.whoami(ctx)
	case "fav":
		a.fav(ctx, os.Args[2:])
	case "order":
		a.order(ctx, os.Args[2:])
	case "orders":
		a.history(ctx, os.Args[2:])
	case "stats":
		a.stats(ctx)
	case "ask":
		a.ask(ctx, os.Args[2:])
	case "add-product":
		a.addProduct(ctx, os.Args[2:])
	case "delete-product":
		a.deleteProduct(ctx, os.Args[2:])
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func (a *app) menu(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("menu", flag.ExitOnError)
	page := fs.Int("page", 1, "Page number (1-based)")
	limit := fs.Int("limit", 10, "Items per page")
	fs.Parse(args)

	result, err := a.catalog.GetAll(ctx, *page, *limit)
	if err != nil {
		fatal(err)
	}
	for _, p := range result.Products {
		avail := ""
		if !p.IsAvailable {
			avail = " (unavailable)"
		}
		fmt.Printf("%-4s %-24s $%6.2f  %s  %.1f★ (%d)%s\n", p.ID, p.Name, p.Price, p.Category, p.Rating, p.Reviews, avail)
	}
	if result.HasMore {
		fmt.Printf("-- more on page %d --\n", *page+1)
	}
}

func (a *app) register(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "Full name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	password := fs.String("password", "", "Password")
	fs.Parse(args)

	if *name == "" || *email == "" {
		fmt.Println("name and email are required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	user, err := a.identity.Register(ctx, *name, *email, *phone, *password)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Welcome, %s! You are logged in.\n", user.Name)
}

func (a *app) login(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password")
	fs.Parse(args)

	user, err := a.identity.Login(ctx, *email, *password)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Logged in as %s (%s).\n", user.Name, user.Role)
}

func (a *app) whoami(ctx context.Context) {
	user, err := a.identity.CurrentUser(ctx)
	if err != nil {
		fatal(err)
	}
	if user == nil {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s <%s> role=%s favorites=%v\n", user.Name, user.Email, user.Role, user.Favorites)
}

func (a *app) fav(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("fav", flag.ExitOnError)
	productID := fs.String("product", "", "Product ID to toggle")
	fs.Parse(args)

	user, err := a.identity.ToggleFavorite(ctx, *productID)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Favorites: %v\n", user.Favorites)
}

// order builds a cart from -items "id:qty,id:qty", checks out, and optionally
// tails the kitchen simulation until delivery.
func (a *app) order(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	itemsSpec := fs.String("items", "", `Cart lines as "id:qty,id:qty"`)
	address := fs.String("address", "", "Delivery address")
	phone := fs.String("phone", "", "Contact phone")
	pay := fs.String("pay", "card", "Payment method: card, cash or apple_pay")
	last4 := fs.String("card-last4", "", "Last 4 card digits (card payments)")
	notes := fs.String("notes", "", "Delivery instructions")
	watch := fs.Bool("watch", false, "Tail order status until delivered")
	fs.Parse(args)

	user, err := a.identity.CurrentUser(ctx)
	if err != nil {
		fatal(err)
	}
	if user == nil {
		fatal(services.ErrNotLoggedIn)
	}

	c, err := a.buildCart(ctx, *itemsSpec)
	if err != nil {
		fatal(err)
	}

	order, err := a.orders.Create(ctx, services.CreateOrderParams{
		UserID:        user.ID,
		Items:         c.Items(),
		Subtotal:      c.Subtotal(),
		Address:       *address,
		Phone:         *phone,
		PaymentMethod: models.PaymentMethod(*pay),
		CardLast4:     *last4,
		Instructions:  *notes,
	})
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Order %s placed: subtotal $%.2f + fee $%.2f + tax $%.2f = $%.2f (%s/%s)\n",
		order.ID, order.Subtotal, order.DeliveryFee, order.Tax, order.Total,
		order.PaymentMethod, order.PaymentStatus)

	if *watch {
		a.watchOrder(ctx, user.ID, order.ID)
	}
}

func (a *app) buildCart(ctx context.Context, spec string) (*cart.Cart, error) {
	if spec == "" {
		return nil, fmt.Errorf("no items given; use -items \"id:qty,id:qty\"")
	}
	byID := make(map[string]models.Product)
	for page := 1; ; page++ {
		result, err := a.catalog.GetAll(ctx, page, 50)
		if err != nil {
			return nil, err
		}
		for _, p := range result.Products {
			byID[p.ID] = p
		}
		if !result.HasMore {
			break
		}
	}

	c := cart.New()
	for _, line := range strings.Split(spec, ",") {
		id, qtyStr, ok := strings.Cut(strings.TrimSpace(line), ":")
		qty := 1
		if ok {
			n, err := strconv.Atoi(qtyStr)
			if err != nil {
				return nil, fmt.Errorf("bad quantity in %q", line)
			}
			qty = n
		}
		product, found := byID[id]
		if !found {
			return nil, fmt.Errorf("product %s: %w", id, services.ErrNotFound)
		}
		c.Add(product, qty)
	}
	if c.Count() == 0 {
		return nil, fmt.Errorf("cart is empty")
	}
	return c, nil
}

func (a *app) watchOrder(ctx context.Context, userID, orderID string) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	last := models.OrderStatus("")
	for orders := range a.orders.WatchUserOrders(ctx, userID, 5*time.Second) {
		for _, o := range orders {
			if o.ID != orderID || o.Status == last {
				continue
			}
			last = o.Status
			fmt.Printf("  status: %s\n", o.Status)
			if o.Status == models.StatusDelivered {
				return
			}
		}
	}
}

func (a *app) history(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	all := fs.Bool("all", false, "List every order (admin)")
	fs.Parse(args)

	var (
		orders []models.Order
		err    error
	)
	if *all {
		orders, err = a.orders.AllOrders(ctx)
	} else {
		user, uerr := a.identity.CurrentUser(ctx)
		if uerr != nil {
			fatal(uerr)
		}
		if user == nil {
			fatal(services.ErrNotLoggedIn)
		}
		orders, err = a.orders.UserOrders(ctx, user.ID)
	}
	if err != nil {
		fatal(err)
	}

	for _, o := range orders {
		fmt.Printf("%s  %s  $%.2f  %-10s  %s\n",
			o.ID, o.Date.Format(time.RFC3339), o.Total, o.Status, o.Address)
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
	}
}

func (a *app) stats(ctx context.Context) {
	stats, err := a.orders.DashboardStats(ctx)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Products: %d  Orders: %d  Revenue: $%.2f\n", stats.TotalProducts, stats.TotalOrders, stats.Revenue)
	for status, n := range stats.OrdersByStatus {
		fmt.Printf("  %-10s %d\n", status, n)
	}
	for _, top := range stats.TopProducts {
		fmt.Printf("  %-24s ordered %d times\n", top.Name, top.OrderCount)
	}
}

func (a *app) ask(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	question := fs.String("q", "", "Question for Chef Bot")
	fs.Parse(args)

	if *question == "" {
		fmt.Println("a question is required, e.g. -q \"what goes well with sushi?\"")
		os.Exit(1)
	}

	products, err := a.store.Products()
	if err != nil {
		fatal(err)
	}
	fmt.Println(a.chef.Complete(ctx, *question, assistant.CatalogContext(products)))
}

func (a *app) addProduct(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("add-product", flag.ExitOnError)
	name := fs.String("name", "", "Product name")
	desc := fs.String("description", "", "Description")
	price := fs.Float64("price", 0, "Price")
	category := fs.String("category", "", "Category")
	image := fs.String("image", "", "Image URL")
	calories := fs.Int("calories", 0, "Calories")
	prep := fs.Int("prep", 10, "Preparation time in minutes")
	ingredients := fs.String("ingredients", "", "Comma-separated ingredient list")
	fs.Parse(args)

	product, err := a.catalog.Add(ctx, services.ProductInput{
		Name:        *name,
		Description: *desc,
		Price:       *price,
		Category:    *category,
		Image:       *image,
		Calories:    *calories,
		PrepTime:    *prep,
		Ingredients: strings.Split(*ingredients, ","),
		IsAvailable: true,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Product '%s' created with id %s.\n", product.Name, product.ID)
}

func (a *app) deleteProduct(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("delete-product", flag.ExitOnError)
	id := fs.String("id", "", "Product ID")
	fs.Parse(args)

	if err := a.catalog.Delete(ctx, *id); err != nil {
		fatal(err)
	}
	fmt.Printf("Product %s deleted.\n", *id)
}
