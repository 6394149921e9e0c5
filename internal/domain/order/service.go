package order

import (
	"context"
	"log"
	"time"

	"github.com/example/storefront/internal/domain/catalog"
	"github.com/google/uuid"
)

// ProductStore is the slice of the product store order submission needs.
type ProductStore interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, bool)
	UpdateStock(ctx context.Context, id string, stock int) error
}

// Store persists orders.
type Store interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id string) (*Order, bool)
	ListOrdersByUser(ctx context.Context, userID string) []*Order
	ListOrders(ctx context.Context) []*Order
	UpdateOrderStatus(ctx context.Context, id string, status Status, updatedAt time.Time) (*Order, bool)
}

// Publisher emits order events. Publishing is best effort; a broker outage
// never fails a placed order.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// LineRequest is one submitted {productId, quantity} pair.
type LineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceRequest is the checkout payload.
type PlaceRequest struct {
	Items           []LineRequest   `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
}

// Service converts submitted carts into persisted orders, enforcing stock.
type Service struct {
	products  ProductStore
	orders    Store
	publisher Publisher
}

func NewService(products ProductStore, orders Store, publisher Publisher) *Service {
	return &Service{
		products:  products,
		orders:    orders,
		publisher: publisher,
	}
}

// Place processes the submitted lines strictly in order. Each line is looked
// up, checked against stock, and its decrement persisted immediately before
// the next line is considered. A failing line rejects the whole submission,
// but stock already taken by earlier lines stays decremented. There is no
// rollback and no lock around the loop, so two concurrent submissions can
// both pass the stock check.
func (s *Service) Place(ctx context.Context, userID string, req PlaceRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !ValidPaymentMethod(req.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	totalAmount := 0
	items := make([]Item, 0, len(req.Items))

	for _, line := range req.Items {
		p, ok := s.products.GetProduct(ctx, line.ProductID)
		if !ok {
			return nil, &NotFoundError{ProductID: line.ProductID}
		}

		if line.Quantity > p.Stock {
			return nil, &InsufficientStockError{Title: p.Title, Available: p.Stock}
		}

		if err := s.products.UpdateStock(ctx, p.ID, p.Stock-line.Quantity); err != nil {
			return nil, err
		}

		totalAmount += p.Price * line.Quantity
		items = append(items, Item{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Quantity:  line.Quantity,
		})
	}

	now := time.Now()
	o := &Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     totalAmount,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   PaymentPending,
		Status:          StatusProcessing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	s.publish(ctx, o.ID, Event{Type: EventOrderPlaced, Data: OrderPlaced{
		OrderID:  o.ID,
		UserID:   o.UserID,
		Items:    o.Items,
		Total:    o.TotalAmount,
		PlacedAt: o.CreatedAt,
	}})

	return o, nil
}

// Get returns an order by ID.
func (s *Service) Get(ctx context.Context, id string) (*Order, bool) {
	return s.orders.GetOrder(ctx, id)
}

// ListByUser returns the caller's orders.
func (s *Service) ListByUser(ctx context.Context, userID string) []*Order {
	return s.orders.ListOrdersByUser(ctx, userID)
}

// ListAll returns every order.
func (s *Service) ListAll(ctx context.Context) []*Order {
	return s.orders.ListOrders(ctx)
}

// UpdateStatus overwrites the order's status with whatever value was
// submitted. Any string is accepted and replaces the current status
// unconditionally.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	now := time.Now()
	o, ok := s.orders.UpdateOrderStatus(ctx, id, status, now)
	if !ok {
		return nil, ErrOrderNotFound
	}

	s.publish(ctx, o.ID, Event{Type: EventOrderStatusChanged, Data: OrderStatusChanged{
		OrderID:   o.ID,
		Status:    status,
		ChangedAt: now,
	}})

	return o, nil
}

func (s *Service) publish(ctx context.Context, key string, event Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		log.Printf("[Order] Failed to publish %s event for order %s: %v", event.Type, key, err)
	}
}
