package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/mercadito-app/mercadito/internal/shared"
)

// AbonoInput for recording a payment.
type AbonoInput struct {
	SaleID string
	Amount float64
	Date   string
}

// Service handles abono business logic.
type Service struct {
	repo Repository
}

// NewService builds Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register records a payment against a sale.
func (s *Service) Register(ctx context.Context, input AbonoInput) (Abono, error) {
	if input.SaleID == "" {
		return Abono{}, errors.New("ledger: sale id required")
	}
	if input.Amount <= 0 {
		return Abono{}, ErrInvalidAmount
	}
	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	abono := Abono{
		ID:     shared.NewID(),
		SaleID: input.SaleID,
		Amount: input.Amount,
		Date:   date,
	}
	if err := s.repo.Insert(ctx, abono); err != nil {
		return Abono{}, err
	}
	return abono, nil
}

// Delete removes one abono.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return shared.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// DeleteBySale removes every abono of a sale, the cascade side of sale
// deletion.
func (s *Service) DeleteBySale(ctx context.Context, saleID string) error {
	return s.repo.DeleteBySale(ctx, saleID)
}

// List returns every abono across all sales.
func (s *Service) List(ctx context.Context) ([]Abono, error) {
	return s.repo.List(ctx)
}

// ListBySale returns the abonos recorded against one sale.
func (s *Service) ListBySale(ctx context.Context, saleID string) ([]Abono, error) {
	abonos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]Abono, 0, len(abonos))
	for _, a := range abonos {
		if a.SaleID == saleID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// BalanceFor derives the ledger summary of a sale with the given total.
func (s *Service) BalanceFor(ctx context.Context, saleID string, total float64) (Summary, error) {
	abonos, err := s.repo.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Compute(saleID, total, abonos), nil
}
