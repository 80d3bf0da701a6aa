package sales

import (
	"context"
	"time"

	"github.com/mercadito-app/mercadito/internal/catalog"
	"github.com/mercadito-app/mercadito/internal/ledger"
	"github.com/mercadito-app/mercadito/internal/shared"
)

// CatalogPort is what sales needs from the catalog: the product list for
// price resolution and the stock decrement applied on commit.
type CatalogPort interface {
	List(ctx context.Context) ([]catalog.Product, error)
	ApplyDecrements(ctx context.Context, decrements []catalog.Decrement) error
}

// LedgerPort is what sales needs from the ledger: recording the initial
// abono, reading abonos for derived balances, and the delete cascade.
type LedgerPort interface {
	Register(ctx context.Context, input ledger.AbonoInput) (ledger.Abono, error)
	List(ctx context.Context) ([]ledger.Abono, error)
	DeleteBySale(ctx context.Context, saleID string) error
}

// SaleInput carries a commit request. InitialAbono of zero means no payment
// is recorded with the sale.
type SaleInput struct {
	Client       string
	Date         string
	Items        []LineItem
	InitialAbono float64
}

// UpdateInput edits a legacy single-line sale.
type UpdateInput struct {
	Client    string
	Date      string
	ProductID string
	Quantity  int
	Tier      catalog.Tier
}

// Service coordinates sale composition, commit, and deletion.
type Service struct {
	repo    Repository
	catalog CatalogPort
	ledger  LedgerPort
}

// NewService builds Service instance.
func NewService(repo Repository, catalogPort CatalogPort, ledgerPort LedgerPort) *Service {
	return &Service{repo: repo, catalog: catalogPort, ledger: ledgerPort}
}

// Quote computes the running total the sale form shows while items are
// edited. Skipped lines contribute zero; an all-skipped quote is 0.00, not
// an error.
func (s *Service) Quote(ctx context.Context, items []LineItem) (float64, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return 0, err
	}
	return shared.Round2(ComputeTotal(items, products)), nil
}

// Commit validates and persists a sale, records the optional initial abono,
// and deducts the sold quantities from stock. The recomputed total is
// authoritative; whatever total the form displayed is ignored.
func (s *Service) Commit(ctx context.Context, input SaleInput) (Sale, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return Sale{}, err
	}
	index := indexProducts(products)

	items := make([]LineItem, 0, len(input.Items))
	resolved := 0
	for _, item := range input.Items {
		if item.ProductID == "" || item.Quantity == 0 {
			continue
		}
		if _, ok := index[item.ProductID]; ok {
			resolved++
		}
		items = append(items, item)
	}
	if resolved == 0 {
		return Sale{}, ErrEmptySale
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	sale := Sale{
		ID:        shared.NewID(),
		Client:    input.Client,
		LineItems: items,
		Total:     shared.Round2(ComputeTotal(items, products)),
		Date:      date,
	}
	if err := s.repo.Insert(ctx, sale); err != nil {
		return Sale{}, err
	}

	if input.InitialAbono > 0 {
		_, err := s.ledger.Register(ctx, ledger.AbonoInput{
			SaleID: sale.ID,
			Amount: input.InitialAbono,
			Date:   sale.Date,
		})
		if err != nil {
			return Sale{}, err
		}
	}

	decrements := make([]catalog.Decrement, 0, len(items))
	for _, item := range items {
		decrements = append(decrements, catalog.Decrement{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if err := s.catalog.ApplyDecrements(ctx, decrements); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

// List returns every sale with its resolved lines and derived ledger state.
func (s *Service) List(ctx context.Context) ([]Detail, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	abonos, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	index := indexProducts(products)
	details := make([]Detail, 0, len(sales))
	for _, sale := range sales {
		details = append(details, s.detail(sale, index, abonos))
	}
	return details, nil
}

// Get returns one sale with its resolved lines and derived ledger state.
func (s *Service) Get(ctx context.Context, id string) (Detail, error) {
	sale, err := s.repo.Get(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	products, err := s.catalog.List(ctx)
	if err != nil {
		return Detail{}, err
	}
	abonos, err := s.ledger.List(ctx)
	if err != nil {
		return Detail{}, err
	}
	return s.detail(sale, indexProducts(products), abonos), nil
}

// Update edits a legacy single-line sale and recomputes its total. Stock is
// not re-adjusted: the original never reconciled edits against inventory.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (Sale, error) {
	sale, err := s.repo.Get(ctx, id)
	if err != nil {
		return Sale{}, err
	}
	if len(sale.LineItems) != 1 {
		return Sale{}, ErrNotEditable
	}
	if input.ProductID == "" || input.Quantity == 0 {
		return Sale{}, ErrEmptySale
	}
	products, err := s.catalog.List(ctx)
	if err != nil {
		return Sale{}, err
	}
	item := LineItem{ProductID: input.ProductID, Quantity: input.Quantity, Tier: input.Tier}
	sale.Client = input.Client
	sale.Date = input.Date
	sale.LineItems = []LineItem{item}
	sale.Total = shared.Round2(ComputeTotal(sale.LineItems, products))
	if err := s.repo.Update(ctx, sale); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

// Delete removes a sale and cascade-deletes its abonos. Stock is not
// restored on deletion.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.ledger.DeleteBySale(ctx, id)
}

func (s *Service) detail(sale Sale, index map[string]catalog.Product, abonos []ledger.Abono) Detail {
	lines := make([]ResolvedLine, 0, len(sale.LineItems))
	for _, item := range sale.LineItems {
		line := ResolvedLine{LineItem: item, ProductCode: danglingProductLabel}
		if product, ok := index[item.ProductID]; ok {
			line.ProductCode = product.Code
			line.UnitPrice = catalog.ResolveUnitPrice(product, item.Tier)
		}
		lines = append(lines, line)
	}
	saleAbonos := make([]ledger.Abono, 0)
	for _, a := range abonos {
		if a.SaleID == sale.ID {
			saleAbonos = append(saleAbonos, a)
		}
	}
	return Detail{
		Sale:          sale,
		Lines:         lines,
		TotalQuantity: sale.TotalQuantity(),
		Ledger:        ledger.Compute(sale.ID, sale.Total, abonos),
		Abonos:        saleAbonos,
	}
}
