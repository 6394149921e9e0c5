package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/example/storefront/internal/clientstate"
	"github.com/example/storefront/internal/domain/catalog"
)

// Item is one cart line. UnitPrice is snapshotted when the product is first
// added; later catalog price changes do not touch lines already in the cart.
type Item struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int    `json:"unit_price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Notifier surfaces user-visible cart messages ("X added to your cart").
type Notifier func(message string)

// Store holds the session's cart: at most one line per product, quantities
// always >= 1. Every mutation writes the full item set to storage before
// returning; Load rehydrates it once at session start.
type Store struct {
	mu      sync.Mutex
	items   []Item // insertion order
	storage clientstate.Storage
	notify  Notifier
	loaded  bool
}

func NewStore(storage clientstate.Storage, notify Notifier) *Store {
	if notify == nil {
		notify = func(string) {}
	}
	return &Store{storage: storage, notify: notify}
}

// Load rehydrates the cart from storage. Only the first call reads; repeated
// calls are no-ops so a restart cannot clobber in-session mutations.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}
	s.loaded = true

	data, ok, err := s.storage.Get(ctx, clientstate.CartKey)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		return fmt.Errorf("failed to decode saved cart: %w", err)
	}
	return nil
}

// AddItem puts a product in the cart. An existing line for the same product
// gains quantity 1; otherwise a new line is appended with the product's
// current price. Always succeeds.
func (s *Store) AddItem(ctx context.Context, p *catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity++
			s.persist(ctx)
			s.notify(fmt.Sprintf("Added another %s to your cart", p.Title))
			return
		}
	}

	s.items = append(s.items, Item{
		ProductID: p.ID,
		Title:     p.Title,
		UnitPrice: p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
	s.persist(ctx)
	s.notify(fmt.Sprintf("%s added to your cart", p.Title))
}

// RemoveItem deletes the line for productID. Removing an absent product is a
// silent no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			title := s.items[i].Title
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			s.notify(fmt.Sprintf("%s removed from your cart", title))
			return
		}
	}
}

// UpdateQuantity replaces the quantity for productID. Quantities below 1 are
// rejected as a no-op; removal is explicit, never a zero quantity.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
	s.notify("Cart cleared")
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of unit price times quantity over all lines, in cents.
func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.UnitPrice * item.Quantity
	}
	return total
}

// persist writes the item set to storage. Callers hold the lock. Failures are
// logged; cart mutations never fail from the caller's point of view.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("[Cart] Failed to encode cart: %v", err)
		return
	}
	if err := s.storage.Set(ctx, clientstate.CartKey, data); err != nil {
		log.Printf("[Cart] Failed to save cart: %v", err)
	}
}
