package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/domain/user"
)

// MemoryStore is an in-memory backend for products, orders, and users. Used
// by tests and demo mode; each method takes the same interface shape as the
// PostgreSQL backend.
type MemoryStore struct {
	mu           sync.RWMutex
	products     map[string]*catalog.Product
	productOrder []string // insertion order for stable listings
	orders       map[string]*order.Order
	users        map[string]*user.User
	usersByEmail map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:     make(map[string]*catalog.Product),
		orders:       make(map[string]*order.Order),
		users:        make(map[string]*user.User),
		usersByEmail: make(map[string]string),
	}
}

// NewSeededMemoryStore returns a MemoryStore preloaded with the demo catalog.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	for _, p := range catalog.SeedProducts() {
		_ = s.CreateProduct(context.Background(), p)
	}
	return s
}

// Product operations

func (s *MemoryStore) GetProduct(ctx context.Context, id string) (*catalog.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

func (s *MemoryStore) ListProducts(ctx context.Context, opts catalog.FilterOptions) []*catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*catalog.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		cp := *s.products[id]
		all = append(all, &cp)
	}
	return catalog.Filter(all, opts)
}

func (s *MemoryStore) CreateProduct(ctx context.Context, p *catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.ID]; !exists {
		s.productOrder = append(s.productOrder, p.ID)
	}
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *MemoryStore) UpdateProduct(ctx context.Context, p *catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return false
	}
	cp := *p
	s.products[p.ID] = &cp
	return true
}

func (s *MemoryStore) DeleteProduct(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	for i, pid := range s.productOrder {
		if pid == id {
			s.productOrder = append(s.productOrder[:i], s.productOrder[i+1:]...)
			break
		}
	}
	return true
}

func (s *MemoryStore) UpdateStock(ctx context.Context, id string, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

// Order operations

func (s *MemoryStore) CreateOrder(ctx context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *o
	s.orders[o.ID] = &cp
	return nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, id string) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	cp := *o
	return &cp, true
}

func (s *MemoryStore) ListOrdersByUser(ctx context.Context, userID string) []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*order.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sortOrdersNewestFirst(out)
	return out
}

func (s *MemoryStore) ListOrders(ctx context.Context) []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		cp := *o
		out = append(out, &cp)
	}
	sortOrdersNewestFirst(out)
	return out
}

func (s *MemoryStore) UpdateOrderStatus(ctx context.Context, id string, status order.Status, updatedAt time.Time) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	cp := *o
	return &cp, true
}

// User operations

func (s *MemoryStore) CreateUser(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *u
	s.users[u.ID] = &cp
	s.usersByEmail[u.Email] = u.ID
	return nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[email]
	if !ok {
		return nil, false
	}
	cp := *s.users[id]
	return &cp, true
}

func sortOrdersNewestFirst(orders []*order.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
