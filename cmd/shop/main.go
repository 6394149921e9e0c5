package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/clientstate"
	"github.com/example/storefront/internal/domain/cart"
	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/example/storefront/internal/session"
)

// shop is the interactive demo storefront: seeded catalog, client-side cart
// and session, order submission against an in-process store.
type shop struct {
	products store.ProductStore
	orders   *order.Service
	cart     *cart.Store
	session  *session.Store
	verifier auth.Verifier
	jwt      *auth.JWTService
}

func main() {
	ctx := context.Background()

	cartStorage := getEnv("CART_STORAGE", "memory")

	var storage clientstate.Storage
	switch cartStorage {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("[Shop] Failed to connect to Redis: %v", err)
		}
		sessionID := getEnv("SESSION_ID", "demo")
		storage = clientstate.NewRedisStorage(client, sessionID)
		log.Printf("[Shop] Client state: Redis (session %s)", sessionID)
	case "memory":
		storage = clientstate.NewMemoryStorage()
	default:
		log.Fatalf("[Shop] Unknown CART_STORAGE: %s", cartStorage)
	}

	mem := store.NewSeededMemoryStore()
	jwtSecret := getEnv("JWT_SECRET", "demo-secret-demo-secret-demo-secret!")

	s := &shop{
		products: mem,
		orders:   order.NewService(mem, mem, nil),
		cart: cart.NewStore(storage, func(msg string) {
			fmt.Println(">", msg)
		}),
		session:  session.NewStore(storage),
		verifier: auth.NewStaticVerifier(auth.DefaultStaticUsers()),
		jwt:      auth.NewJWTService(jwtSecret, 24*time.Hour),
	}

	if err := s.cart.Load(ctx); err != nil {
		log.Printf("[Shop] Failed to load saved cart: %v", err)
	}
	if err := s.session.Load(ctx); err != nil {
		log.Printf("[Shop] Failed to load saved session: %v", err)
	}

	fmt.Println("Storefront demo. Type 'help' for commands.")
	if p := s.session.Profile(); p != nil {
		fmt.Printf("Welcome back, %s.\n", p.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("shop> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		if args[0] == "quit" || args[0] == "exit" {
			return
		}
		s.run(ctx, args)
	}
}

func (s *shop) run(ctx context.Context, args []string) {
	switch args[0] {
	case "help":
		fmt.Println(`Commands:
  products [search]         list products, optionally filtered
  add <product-id>          add a product to the cart
  remove <product-id>       remove a product from the cart
  qty <product-id> <n>      set a line's quantity
  cart                      show the cart
  clear                     empty the cart
  login <email> <password>  sign in (demo: user@example.com / password123)
  logout                    sign out
  whoami                    show the signed-in user
  checkout <card|upi|cash>  submit the cart as an order
  orders                    list your orders
  quit                      leave`)

	case "products":
		opts := catalog.FilterOptions{}
		if len(args) > 1 {
			opts.Search = strings.Join(args[1:], " ")
		}
		for _, p := range s.products.ListProducts(ctx, opts) {
			fmt.Printf("  %-4s %-28s %10s  stock %d\n", p.ID, p.Title, formatCents(p.Price), p.Stock)
		}

	case "add":
		if len(args) != 2 {
			fmt.Println("usage: add <product-id>")
			return
		}
		p, ok := s.products.GetProduct(ctx, args[1])
		if !ok {
			fmt.Println("no such product")
			return
		}
		s.cart.AddItem(ctx, p)

	case "remove":
		if len(args) != 2 {
			fmt.Println("usage: remove <product-id>")
			return
		}
		s.cart.RemoveItem(ctx, args[1])

	case "qty":
		if len(args) != 3 {
			fmt.Println("usage: qty <product-id> <n>")
			return
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Println("quantity must be a number")
			return
		}
		s.cart.UpdateQuantity(ctx, args[1], n)

	case "cart":
		items := s.cart.Items()
		if len(items) == 0 {
			fmt.Println("cart is empty")
			return
		}
		for _, item := range items {
			fmt.Printf("  %-28s x%-3d %10s\n", item.Title, item.Quantity, formatCents(item.UnitPrice*item.Quantity))
		}
		fmt.Printf("  %d items, subtotal %s\n", s.cart.ItemCount(), formatCents(s.cart.Subtotal()))

	case "clear":
		s.cart.Clear(ctx)

	case "login":
		if len(args) != 3 {
			fmt.Println("usage: login <email> <password>")
			return
		}
		u, err := s.verifier.Verify(ctx, args[1], args[2])
		if err != nil {
			fmt.Println("invalid email or password")
			return
		}
		token, _, err := s.jwt.GenerateToken(u.ID, u.Email, u.Role)
		if err != nil {
			fmt.Println("failed to sign in:", err)
			return
		}
		profile := session.Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
		if err := s.session.SignIn(ctx, token, profile); err != nil {
			fmt.Println("failed to sign in:", err)
			return
		}
		fmt.Printf("signed in as %s\n", u.Name)

	case "logout":
		if err := s.session.SignOut(ctx); err != nil {
			fmt.Println("failed to sign out:", err)
			return
		}
		fmt.Println("signed out")

	case "whoami":
		p := s.session.Profile()
		if p == nil {
			fmt.Println("not signed in")
			return
		}
		fmt.Printf("%s <%s> (%s)\n", p.Name, p.Email, p.Role)

	case "checkout":
		if len(args) != 2 {
			fmt.Println("usage: checkout <card|upi|cash>")
			return
		}
		if !s.session.IsAuthenticated() {
			fmt.Println("sign in before checking out")
			return
		}
		items := s.cart.Items()
		req := order.PlaceRequest{
			PaymentMethod: order.PaymentMethod(args[1]),
			ShippingAddress: order.ShippingAddress{
				Name:    s.session.Profile().Name,
				Address: "1 Demo Street",
				City:    "Demoville",
				Country: "US",
			},
		}
		for _, item := range items {
			req.Items = append(req.Items, order.LineRequest{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		o, err := s.orders.Place(ctx, s.session.Profile().ID, req)
		if err != nil {
			fmt.Println("checkout failed:", err)
			return
		}
		s.cart.Clear(ctx)
		fmt.Printf("order %s placed, total %s\n", o.ID, formatCents(o.TotalAmount))

	case "orders":
		if !s.session.IsAuthenticated() {
			fmt.Println("sign in first")
			return
		}
		orders := s.orders.ListByUser(ctx, s.session.Profile().ID)
		if len(orders) == 0 {
			fmt.Println("no orders yet")
			return
		}
		for _, o := range orders {
			fmt.Printf("  %s  %-10s %10s  %s\n", o.ID, o.Status, formatCents(o.TotalAmount), o.CreatedAt.Format("2006-01-02 15:04"))
		}

	default:
		fmt.Println("unknown command, try 'help'")
	}
}

func formatCents(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
