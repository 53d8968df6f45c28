package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileProviderRoundTrip(t *testing.T) {
	p := NewFileProvider(t.TempDir())
	ctx := context.Background()

	_, ok, err := p.Load(ctx, "ecommerce-store")
	require.NoError(t, err)
	assert.False(t, ok, "missing snapshot must report absence, not an error")

	payload := []byte(`{"cart":[],"isLoggedIn":false}`)
	require.NoError(t, p.Save(ctx, "ecommerce-store", payload))

	got, ok, err := p.Load(ctx, "ecommerce-store")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestFileProviderOverwrite(t *testing.T) {
	p := NewFileProvider(t.TempDir())
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, "k", []byte("first")))
	require.NoError(t, p.Save(ctx, "k", []byte("second")))

	got, ok, err := p.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("second"), got)
}

func TestMemoryProviderIsolatesStoredBytes(t *testing.T) {
	p := NewMemoryProvider()
	ctx := context.Background()

	value := []byte("snapshot")
	require.NoError(t, p.Save(ctx, "k", value))
	value[0] = 'X' // caller mutating its buffer must not corrupt the stored copy

	got, ok, err := p.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("snapshot"), got)
}
