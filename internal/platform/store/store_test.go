package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/mercadito-app/mercadito/internal/platform/store"
)

type record struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	items := []record{
		{ID: "a", Name: "first", Value: 100.5},
		{ID: "b", Name: "second", Value: 0},
	}
	require.NoError(t, store.SaveSlice(ctx, fs, store.Products, items))

	got, err := store.LoadSlice[record](ctx, fs, store.Products)
	require.NoError(t, err)
	require.Equal(t, items, got)
}

func TestFileStoreAbsentCollectionIsEmpty(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.LoadSlice[record](context.Background(), fs, store.Abonos)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFileStoreSaveReplacesCollection(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SaveSlice(ctx, fs, store.Sales, []record{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.SaveSlice(ctx, fs, store.Sales, []record{{ID: "b"}}))

	got, err := store.LoadSlice[record](ctx, fs, store.Sales)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].ID)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rs := store.NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	items := []record{{ID: "a", Name: "first", Value: 99.99}}
	require.NoError(t, store.SaveSlice(ctx, rs, store.Products, items))

	got, err := store.LoadSlice[record](ctx, rs, store.Products)
	require.NoError(t, err)
	require.Equal(t, items, got)
}

func TestRedisStoreAbsentCollectionIsEmpty(t *testing.T) {
	mr := miniredis.RunT(t)
	rs := store.NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	got, err := store.LoadSlice[record](context.Background(), rs, store.Sales)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCollectionsAreIndependent(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.SaveSlice(ctx, fs, store.Products, []record{{ID: "p"}}))
	require.NoError(t, store.SaveSlice(ctx, fs, store.Sales, []record{{ID: "s1"}, {ID: "s2"}}))

	products, err := store.LoadSlice[record](ctx, fs, store.Products)
	require.NoError(t, err)
	sales, err := store.LoadSlice[record](ctx, fs, store.Sales)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Len(t, sales, 2)
}
