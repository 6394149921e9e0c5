package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/example/storefront/internal/clientstate"
	"github.com/example/storefront/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	blazer = &catalog.Product{ID: "1", Title: "Modern Slim Fit Blazer", Price: 12999, Image: "blazer.jpg"}
	shirt  = &catalog.Product{ID: "2", Title: "Classic White Dress Shirt", Price: 5999}
)

func newTestStore() (*Store, *clientstate.MemoryStorage, *[]string) {
	storage := clientstate.NewMemoryStorage()
	var messages []string
	store := NewStore(storage, func(msg string) {
		messages = append(messages, msg)
	})
	return store, storage, &messages
}

func TestAddItem_NewProduct(t *testing.T) {
	store, _, messages := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, blazer)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ProductID)
	assert.Equal(t, "Modern Slim Fit Blazer", items[0].Title)
	assert.Equal(t, 12999, items[0].UnitPrice)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, []string{"Modern Slim Fit Blazer added to your cart"}, *messages)
}

func TestAddItem_ExistingProductIncrementsQuantity(t *testing.T) {
	store, _, messages := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, blazer)
	store.AddItem(ctx, blazer)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Added another Modern Slim Fit Blazer to your cart", (*messages)[1])
}

func TestAddItem_SnapshotsPriceAtAddTime(t *testing.T) {
	store, _, _ := newTestStore()
	ctx := context.Background()

	p := &catalog.Product{ID: "x", Title: "Scarf", Price: 5999}
	store.AddItem(ctx, p)

	// A later catalog price change must not touch the line already in the cart.
	p.Price = 7999
	store.AddItem(ctx, p)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5999, items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2*5999, store.Subtotal())
}

func TestRemoveItem(t *testing.T) {
	store, _, messages := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, blazer)
	store.AddItem(ctx, shirt)
	store.RemoveItem(ctx, "1")

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ProductID)
	assert.Contains(t, *messages, "Modern Slim Fit Blazer removed from your cart")
}

func TestRemoveItem_AbsentProductIsSilent(t *testing.T) {
	store, _, messages := newTestStore()
	ctx := context.Background()

	store.RemoveItem(ctx, "nope")

	assert.Empty(t, store.Items())
	assert.Empty(t, *messages)
}

func TestUpdateQuantity(t *testing.T) {
	store, _, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, blazer)
	store.UpdateQuantity(ctx, "1", 5)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantity_BelowOneIsRejected(t *testing.T) {
	store, _, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, blazer)

	tests := []struct {
		name string
		qty  int
	}{
		{"zero", 0},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.UpdateQuantity(ctx, "1", tt.qty)
			items := store.Items()
			require.Len(t, items, 1)
			assert.Equal(t, 1, items[0].Quantity)
		})
	}
}

func TestClear(t *testing.T) {
	store, _, messages := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, blazer)
	store.AddItem(ctx, shirt)
	store.Clear(ctx)

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.ItemCount())
	assert.Equal(t, 0, store.Subtotal())
	assert.Contains(t, *messages, "Cart cleared")
}

func TestItemCountAndSubtotal(t *testing.T) {
	store, _, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, blazer)
	store.AddItem(ctx, blazer)
	store.AddItem(ctx, shirt)
	store.UpdateQuantity(ctx, "2", 3)

	assert.Equal(t, 5, store.ItemCount())
	assert.Equal(t, 2*12999+3*5999, store.Subtotal())
}

func TestPersistence_EveryMutationWritesStorage(t *testing.T) {
	store, storage, _ := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, blazer)

	data, ok, err := storage.Get(ctx, clientstate.CartKey)
	require.NoError(t, err)
	require.True(t, ok)

	var saved []Item
	require.NoError(t, json.Unmarshal(data, &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "1", saved[0].ProductID)

	store.RemoveItem(ctx, "1")

	data, ok, err = storage.Get(ctx, clientstate.CartKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Empty(t, saved)
}

func TestLoad_RehydratesSavedCart(t *testing.T) {
	storage := clientstate.NewMemoryStorage()
	ctx := context.Background()

	first := NewStore(storage, nil)
	first.AddItem(ctx, blazer)
	first.AddItem(ctx, blazer)
	first.AddItem(ctx, shirt)

	second := NewStore(storage, nil)
	require.NoError(t, second.Load(ctx))

	items := second.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 3, second.ItemCount())
	assert.Equal(t, first.Subtotal(), second.Subtotal())
}

func TestLoad_OnlyFirstCallReads(t *testing.T) {
	storage := clientstate.NewMemoryStorage()
	ctx := context.Background()

	saved, err := json.Marshal([]Item{{ProductID: "9", Title: "Sneakers", UnitPrice: 4999, Quantity: 1}})
	require.NoError(t, err)
	require.NoError(t, storage.Set(ctx, clientstate.CartKey, saved))

	store := NewStore(storage, nil)
	require.NoError(t, store.Load(ctx))
	store.AddItem(ctx, blazer)

	// A second Load must not clobber the in-session mutation.
	require.NoError(t, store.Load(ctx))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "9", items[0].ProductID)
	assert.Equal(t, "1", items[1].ProductID)
}

func TestLoad_EmptyStorage(t *testing.T) {
	store, _, _ := newTestStore()

	require.NoError(t, store.Load(context.Background()))
	assert.Empty(t, store.Items())
}
