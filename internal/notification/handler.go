package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/domain/user"
	"github.com/example/storefront/internal/email"
)

// UserLookup resolves the recipient for a notification.
type UserLookup interface {
	GetUser(ctx context.Context, id string) (*user.User, bool)
}

// EmailSender sends the actual mail.
type EmailSender interface {
	SendOrderConfirmation(to, orderID string, total int, items []email.OrderItem) error
}

// Handler consumes order events and sends the matching notification emails.
type Handler struct {
	users  UserLookup
	sender EmailSender
}

func NewHandler(users UserLookup, sender EmailSender) *Handler {
	return &Handler{
		users:  users,
		sender: sender,
	}
}

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// HandleMessage processes one consumed event. Unknown event types are
// skipped without error.
func (h *Handler) HandleMessage(ctx context.Context, key, value []byte) error {
	var env envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	switch env.Type {
	case order.EventOrderPlaced:
		return h.handleOrderPlaced(ctx, env.Data)
	case order.EventOrderStatusChanged:
		// No email for status changes yet.
		return nil
	default:
		log.Printf("[Notification] Skipping unknown event type: %s", env.Type)
		return nil
	}
}

func (h *Handler) handleOrderPlaced(ctx context.Context, data json.RawMessage) error {
	var evt order.OrderPlaced
	if err := json.Unmarshal(data, &evt); err != nil {
		return fmt.Errorf("failed to decode order placed event: %w", err)
	}

	u, ok := h.users.GetUser(ctx, evt.UserID)
	if !ok {
		return fmt.Errorf("user %s not found for order %s", evt.UserID, evt.OrderID)
	}

	items := make([]email.OrderItem, 0, len(evt.Items))
	for _, it := range evt.Items {
		items = append(items, email.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	if err := h.sender.SendOrderConfirmation(u.Email, evt.OrderID, evt.Total, items); err != nil {
		return fmt.Errorf("failed to send confirmation for order %s: %w", evt.OrderID, err)
	}

	log.Printf("[Notification] Sent order confirmation for %s to %s", evt.OrderID, u.Email)
	return nil
}
