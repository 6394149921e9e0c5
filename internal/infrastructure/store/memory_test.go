package store

import (
	"context"
	"testing"
	"time"

	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SeededCatalog(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	products := s.ListProducts(ctx, catalog.FilterOptions{})
	require.Len(t, products, 12)

	// Listing preserves seed order
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "12", products[11].ID)
}

func TestMemoryStore_GetProduct_ReturnsCopy(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	p, ok := s.GetProduct(ctx, "1")
	require.True(t, ok)
	p.Stock = 0

	again, ok := s.GetProduct(ctx, "1")
	require.True(t, ok)
	assert.Equal(t, 25, again.Stock)
}

func TestMemoryStore_UpdateStock(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.UpdateStock(ctx, "1", 7))

	p, ok := s.GetProduct(ctx, "1")
	require.True(t, ok)
	assert.Equal(t, 7, p.Stock)
}

func TestMemoryStore_DeleteProduct_RemovesFromListing(t *testing.T) {
	s := NewSeededMemoryStore()
	ctx := context.Background()

	assert.True(t, s.DeleteProduct(ctx, "1"))
	assert.False(t, s.DeleteProduct(ctx, "1"))

	products := s.ListProducts(ctx, catalog.FilterOptions{})
	assert.Len(t, products, 11)
	_, ok := s.GetProduct(ctx, "1")
	assert.False(t, ok)
}

func TestMemoryStore_OrdersNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"o1", "o2", "o3"} {
		require.NoError(t, s.CreateOrder(ctx, &order.Order{
			ID:        id,
			UserID:    "u1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	orders := s.ListOrdersByUser(ctx, "u1")
	require.Len(t, orders, 3)
	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o1", orders[2].ID)
}

func TestMemoryStore_UpdateOrderStatus(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.CreateOrder(ctx, &order.Order{ID: "o1", Status: order.StatusProcessing}))

	now := time.Now()
	updated, ok := s.UpdateOrderStatus(ctx, "o1", order.StatusShipped, now)
	require.True(t, ok)
	assert.Equal(t, order.StatusShipped, updated.Status)
	assert.Equal(t, now, updated.UpdatedAt)

	_, ok = s.UpdateOrderStatus(ctx, "missing", order.StatusShipped, now)
	assert.False(t, ok)
}

func TestMemoryStore_Users(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	u := &user.User{ID: "u1", Email: "alice@example.com", Name: "Alice", Role: user.RoleCustomer}
	require.NoError(t, s.CreateUser(ctx, u))

	byID, ok := s.GetUser(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, "Alice", byID.Name)

	byEmail, ok := s.GetUserByEmail(ctx, "alice@example.com")
	require.True(t, ok)
	assert.Equal(t, "u1", byEmail.ID)

	_, ok = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.False(t, ok)
}
