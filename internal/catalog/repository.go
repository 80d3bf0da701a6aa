package catalog

import (
	"context"

	"github.com/mercadito-app/mercadito/internal/platform/store"
	"github.com/mercadito-app/mercadito/internal/shared"
)

// Repository is the catalog's data access boundary.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Insert(ctx context.Context, product Product) error
	Update(ctx context.Context, product Product) error
	Delete(ctx context.Context, id string) error
	// ReplaceAll swaps the whole collection, used by stock mutation which
	// touches several products in one read-modify-write pass.
	ReplaceAll(ctx context.Context, products []Product) error
}

// StoreRepository keeps products in the flat store collection.
type StoreRepository struct {
	store store.Store
}

// NewStoreRepository builds a store-backed repository.
func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) List(ctx context.Context) ([]Product, error) {
	return store.LoadSlice[Product](ctx, r.store, store.Products)
}

func (r *StoreRepository) Get(ctx context.Context, id string) (Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, shared.ErrNotFound
}

func (r *StoreRepository) Insert(ctx context.Context, product Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	products = append(products, product)
	return r.ReplaceAll(ctx, products)
}

func (r *StoreRepository) Update(ctx context.Context, product Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, p := range products {
		if p.ID == product.ID {
			products[i] = product
			return r.ReplaceAll(ctx, products)
		}
	}
	return shared.ErrNotFound
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return shared.ErrNotFound
	}
	return r.ReplaceAll(ctx, kept)
}

func (r *StoreRepository) ReplaceAll(ctx context.Context, products []Product) error {
	return store.SaveSlice(ctx, r.store, store.Products, products)
}
