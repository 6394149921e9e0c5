package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/domain/user"
)

// PostgresStore backs products, orders, and users with PostgreSQL. Order
// line items and shipping addresses are stored as JSON columns.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Product operations

func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*catalog.Product, bool) {
	var p catalog.Product
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, price, image, category, rating, stock
		FROM products WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Image, &p.Category, &p.Rating, &p.Stock)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[Store] Error getting product %s: %v", id, err)
		}
		return nil, false
	}
	return &p, true
}

func (s *PostgresStore) ListProducts(ctx context.Context, opts catalog.FilterOptions) []*catalog.Product {
	query := `
		SELECT id, title, description, price, image, category, rating, stock
		FROM products
	`
	var args []any
	var conditions []string

	if opts.Category != "" {
		args = append(args, opts.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if opts.MinPrice > 0 {
		args = append(args, opts.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}
	if opts.MaxPrice > 0 {
		args = append(args, opts.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}
	if opts.Search != "" {
		args = append(args, "%"+opts.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("[Store] Error listing products: %v", err)
		return nil
	}
	defer rows.Close()

	var products []*catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Image, &p.Category, &p.Rating, &p.Stock); err != nil {
			log.Printf("[Store] Error scanning product: %v", err)
			continue
		}
		products = append(products, &p)
	}
	return products
}

func (s *PostgresStore) CreateProduct(ctx context.Context, p *catalog.Product) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, title, description, price, image, category, rating, stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			image = EXCLUDED.image,
			category = EXCLUDED.category,
			rating = EXCLUDED.rating,
			stock = EXCLUDED.stock
	`, p.ID, p.Title, p.Description, p.Price, p.Image, p.Category, p.Rating, p.Stock, time.Now())
	return err
}

func (s *PostgresStore) UpdateProduct(ctx context.Context, p *catalog.Product) bool {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products SET
			title = $2, description = $3, price = $4, image = $5,
			category = $6, rating = $7, stock = $8
		WHERE id = $1
	`, p.ID, p.Title, p.Description, p.Price, p.Image, p.Category, p.Rating, p.Stock)
	if err != nil {
		log.Printf("[Store] Error updating product %s: %v", p.ID, err)
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

func (s *PostgresStore) DeleteProduct(ctx context.Context, id string) bool {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Printf("[Store] Error deleting product %s: %v", id, err)
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

func (s *PostgresStore) UpdateStock(ctx context.Context, id string, stock int) error {
	_, err := s.db.ExecContext(ctx, `UPDATE products SET stock = $2 WHERE id = $1`, id, stock)
	return err
}

// Order operations

func (s *PostgresStore) CreateOrder(ctx context.Context, o *order.Order) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	addressJSON, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, items, total_amount, shipping_address,
			payment_method, payment_status, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, o.ID, o.UserID, itemsJSON, o.TotalAmount, addressJSON,
		string(o.PaymentMethod), string(o.PaymentStatus), string(o.Status), o.CreatedAt, o.UpdatedAt)
	return err
}

func (s *PostgresStore) GetOrder(ctx context.Context, id string) (*order.Order, bool) {
	o, err := s.scanOrder(s.db.QueryRowContext(ctx, `
		SELECT id, user_id, items, total_amount, shipping_address,
			payment_method, payment_status, status, created_at, updated_at
		FROM orders WHERE id = $1
	`, id))
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[Store] Error getting order %s: %v", id, err)
		}
		return nil, false
	}
	return o, true
}

func (s *PostgresStore) ListOrdersByUser(ctx context.Context, userID string) []*order.Order {
	return s.listOrders(ctx, `
		SELECT id, user_id, items, total_amount, shipping_address,
			payment_method, payment_status, status, created_at, updated_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
}

func (s *PostgresStore) ListOrders(ctx context.Context) []*order.Order {
	return s.listOrders(ctx, `
		SELECT id, user_id, items, total_amount, shipping_address,
			payment_method, payment_status, status, created_at, updated_at
		FROM orders ORDER BY created_at DESC
	`)
}

func (s *PostgresStore) UpdateOrderStatus(ctx context.Context, id string, status order.Status, updatedAt time.Time) (*order.Order, bool) {
	o, err := s.scanOrder(s.db.QueryRowContext(ctx, `
		UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1
		RETURNING id, user_id, items, total_amount, shipping_address,
			payment_method, payment_status, status, created_at, updated_at
	`, id, string(status), updatedAt))
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[Store] Error updating order %s status: %v", id, err)
		}
		return nil, false
	}
	return o, true
}

func (s *PostgresStore) listOrders(ctx context.Context, query string, args ...any) []*order.Order {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("[Store] Error listing orders: %v", err)
		return nil
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := s.scanOrder(rows)
		if err != nil {
			log.Printf("[Store] Error scanning order: %v", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *PostgresStore) scanOrder(row rowScanner) (*order.Order, error) {
	var o order.Order
	var itemsJSON, addressJSON []byte
	var paymentMethod, paymentStatus, status string

	err := row.Scan(&o.ID, &o.UserID, &itemsJSON, &o.TotalAmount, &addressJSON,
		&paymentMethod, &paymentStatus, &status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(addressJSON, &o.ShippingAddress); err != nil {
		return nil, err
	}
	o.PaymentMethod = order.PaymentMethod(paymentMethod)
	o.PaymentStatus = order.PaymentStatus(paymentStatus)
	o.Status = order.Status(status)
	return &o, nil
}

// User operations

func (s *PostgresStore) CreateUser(ctx context.Context, u *user.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID, u.Email, u.Name, u.Role, u.PasswordHash, u.CreatedAt)
	return err
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*user.User, bool) {
	var u user.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, role, password_hash, created_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[Store] Error getting user %s: %v", id, err)
		}
		return nil, false
	}
	return &u, true
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*user.User, bool) {
	var u user.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, role, password_hash, created_at
		FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[Store] Error getting user by email: %v", err)
		}
		return nil, false
	}
	return &u, true
}
