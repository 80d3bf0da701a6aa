package ledger

import (
	"context"

	"github.com/mercadito-app/mercadito/internal/platform/store"
	"github.com/mercadito-app/mercadito/internal/shared"
)

// Repository is the ledger's data access boundary.
type Repository interface {
	List(ctx context.Context) ([]Abono, error)
	Insert(ctx context.Context, abono Abono) error
	Delete(ctx context.Context, id string) error
	DeleteBySale(ctx context.Context, saleID string) error
}

// StoreRepository keeps abonos in the flat store collection.
type StoreRepository struct {
	store store.Store
}

// NewStoreRepository builds a store-backed repository.
func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) List(ctx context.Context) ([]Abono, error) {
	return store.LoadSlice[Abono](ctx, r.store, store.Abonos)
}

func (r *StoreRepository) Insert(ctx context.Context, abono Abono) error {
	abonos, err := r.List(ctx)
	if err != nil {
		return err
	}
	abonos = append(abonos, abono)
	return store.SaveSlice(ctx, r.store, store.Abonos, abonos)
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	abonos, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := abonos[:0]
	found := false
	for _, a := range abonos {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return shared.ErrNotFound
	}
	return store.SaveSlice(ctx, r.store, store.Abonos, kept)
}

func (r *StoreRepository) DeleteBySale(ctx context.Context, saleID string) error {
	abonos, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := abonos[:0]
	for _, a := range abonos {
		if a.SaleID == saleID {
			continue
		}
		kept = append(kept, a)
	}
	return store.SaveSlice(ctx, r.store, store.Abonos, kept)
}
