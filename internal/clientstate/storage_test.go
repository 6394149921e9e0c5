package clientstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_SetGetDelete(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, CartKey, []byte(`[{"product_id":"1"}]`)))

	data, ok, err := s.Get(ctx, CartKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"product_id":"1"}]`, string(data))

	require.NoError(t, s.Delete(ctx, CartKey))

	_, ok, err = s.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStorage_DeleteMissingKeyIsNoop(t *testing.T) {
	s := NewMemoryStorage()
	assert.NoError(t, s.Delete(context.Background(), "never-set"))
}

func TestMemoryStorage_CopiesOnReadAndWrite(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, s.Set(ctx, TokenKey, value))

	// Mutating the written slice must not change what was stored
	value[0] = 'X'
	data, ok, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "original", string(data))

	// Mutating the read slice must not change later reads
	data[0] = 'Y'
	again, _, err := s.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "original", string(again))
}
