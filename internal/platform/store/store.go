// Package store persists the three flat collections the application works
// on. Each collection is one JSON array held under a single key; readers
// always load the whole array and writers always replace it.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names. Each one is an independent id namespace.
const (
	Products = "products"
	Sales    = "sales"
	Abonos   = "abonos"
)

// Store is the key-value persistence collaborator. Load of an absent
// collection returns an empty JSON array, never an error.
type Store interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
}

var emptyArray = []byte("[]")

// LoadSlice loads and decodes a whole collection.
func LoadSlice[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	raw, err := s.Load(ctx, collection)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		raw = emptyArray
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", collection, err)
	}
	return items, nil
}

// SaveSlice encodes and replaces a whole collection.
func SaveSlice[T any](ctx context.Context, s Store, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", collection, err)
	}
	return s.Save(ctx, collection, raw)
}
