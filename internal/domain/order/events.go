package order

import "time"

// Event types published to the order topic.
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// Event is the envelope written to Kafka. Data holds the typed payload.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// OrderPlaced is emitted after an order is persisted.
type OrderPlaced struct {
	OrderID  string    `json:"order_id"`
	UserID   string    `json:"user_id"`
	Items    []Item    `json:"items"`
	Total    int       `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}

// OrderStatusChanged is emitted when an administrator overwrites the status.
type OrderStatusChanged struct {
	OrderID   string    `json:"order_id"`
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
