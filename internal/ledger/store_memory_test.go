package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	addr := CourseAddress("rust-101")

	_, err := store.Get(ctx, addr)
	assert.True(t, errors.Is(err, ErrNotFound))

	rec := Record{Address: addr, Kind: KindCourse, Data: []byte{1, 2, 3}}
	require.NoError(t, store.Put(ctx, rec))

	got, err := store.Get(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, rec.Data, got.Data)
	assert.Equal(t, KindCourse, got.Kind)

	require.NoError(t, store.Delete(ctx, addr))
	_, err = store.Get(ctx, addr)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(store.Delete(ctx, addr), ErrNotFound))
}

func TestMemoryStore_GetDoesNotAliasStoredData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	addr := CourseAddress("rust-101")

	require.NoError(t, store.Put(ctx, Record{Address: addr, Kind: KindCourse, Data: []byte{1, 2, 3}}))

	got, err := store.Get(ctx, addr)
	require.NoError(t, err)
	got.Data[0] = 0xFF

	again, err := store.Get(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, byte(1), again.Data[0])
}

func TestMemoryStore_ListByKind(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, Record{Address: CourseAddress("a"), Kind: KindCourse, Data: []byte{1}}))
	require.NoError(t, store.Put(ctx, Record{Address: CourseAddress("b"), Kind: KindCourse, Data: []byte{2}}))
	require.NoError(t, store.Put(ctx, Record{Address: ConfigAddress(), Kind: KindConfig, Data: []byte{3}}))

	courses, err := store.ListByKind(ctx, KindCourse)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	// Deterministic ordering across calls.
	again, err := store.ListByKind(ctx, KindCourse)
	require.NoError(t, err)
	assert.Equal(t, courses, again)

	configs, err := store.ListByKind(ctx, KindConfig)
	require.NoError(t, err)
	assert.Len(t, configs, 1)
}
