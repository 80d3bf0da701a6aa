package sales

import (
	"context"

	"github.com/mercadito-app/mercadito/internal/platform/store"
	"github.com/mercadito-app/mercadito/internal/shared"
)

// Repository is the sales data access boundary.
type Repository interface {
	List(ctx context.Context) ([]Sale, error)
	Get(ctx context.Context, id string) (Sale, error)
	Insert(ctx context.Context, sale Sale) error
	Update(ctx context.Context, sale Sale) error
	Delete(ctx context.Context, id string) error
}

// StoreRepository keeps sales in the flat store collection. Legacy-shaped
// records normalize themselves during decoding (see Sale.UnmarshalJSON).
type StoreRepository struct {
	store store.Store
}

// NewStoreRepository builds a store-backed repository.
func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) List(ctx context.Context) ([]Sale, error) {
	return store.LoadSlice[Sale](ctx, r.store, store.Sales)
}

func (r *StoreRepository) Get(ctx context.Context, id string) (Sale, error) {
	sales, err := r.List(ctx)
	if err != nil {
		return Sale{}, err
	}
	for _, s := range sales {
		if s.ID == id {
			return s, nil
		}
	}
	return Sale{}, shared.ErrNotFound
}

func (r *StoreRepository) Insert(ctx context.Context, sale Sale) error {
	sales, err := r.List(ctx)
	if err != nil {
		return err
	}
	sales = append(sales, sale)
	return store.SaveSlice(ctx, r.store, store.Sales, sales)
}

func (r *StoreRepository) Update(ctx context.Context, sale Sale) error {
	sales, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, s := range sales {
		if s.ID == sale.ID {
			sales[i] = sale
			return store.SaveSlice(ctx, r.store, store.Sales, sales)
		}
	}
	return shared.ErrNotFound
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	sales, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := sales[:0]
	found := false
	for _, s := range sales {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return shared.ErrNotFound
	}
	return store.SaveSlice(ctx, r.store, store.Sales, kept)
}
