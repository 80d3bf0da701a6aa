package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/mercadito-app/mercadito/internal/shared"
)

// ProductInput carries the fields of the add/edit product forms.
type ProductInput struct {
	PhotoURL       string
	Category       string
	Code           string
	PriceNormal    float64
	PriceCash      float64
	PriceWholesale float64
	Stock          int
	Notes          string
}

// Decrement is one stock deduction to apply against a product.
type Decrement struct {
	ProductID string
	Quantity  int
}

// Service handles catalog business logic.
type Service struct {
	repo Repository
}

// NewService builds Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	if id == "" {
		return Product{}, shared.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input ProductInput) (Product, error) {
	if err := s.validate(input); err != nil {
		return Product{}, err
	}
	product := Product{
		ID:             shared.NewID(),
		PhotoURL:       input.PhotoURL,
		Category:       input.Category,
		Code:           input.Code,
		PriceNormal:    input.PriceNormal,
		PriceCash:      input.PriceCash,
		PriceWholesale: input.PriceWholesale,
		Stock:          clampStock(input.Stock),
		Notes:          input.Notes,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, product); err != nil {
		return Product{}, err
	}
	return product, nil
}

func (s *Service) Update(ctx context.Context, id string, input ProductInput) (Product, error) {
	if id == "" {
		return Product{}, shared.ErrNotFound
	}
	if err := s.validate(input); err != nil {
		return Product{}, err
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	current.PhotoURL = input.PhotoURL
	current.Category = input.Category
	current.Code = input.Code
	current.PriceNormal = input.PriceNormal
	current.PriceCash = input.PriceCash
	current.PriceWholesale = input.PriceWholesale
	current.Stock = clampStock(input.Stock)
	current.Notes = input.Notes
	// The edit form resolves legacy prices into the tier fields, so the
	// legacy values are consumed here and must not shadow future reads.
	current.PriceSale = 0
	current.PriceBuy = 0
	if err := s.repo.Update(ctx, current); err != nil {
		return Product{}, err
	}
	return current, nil
}

// Delete removes a product. Sales referencing it keep their lines; readers
// resolve the dangling reference to a placeholder.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return shared.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Available lists in-stock products, optionally restricted to one category.
func (s *Service) Available(ctx context.Context, category string) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]Product, 0, len(products))
	for _, p := range products {
		if !p.Available() {
			continue
		}
		if category != "" && categoryOf(p) != category {
			continue
		}
		available = append(available, p)
	}
	return available, nil
}

// Grouped returns the in-stock catalog sectioned by category, categories in
// alphabetical order.
func (s *Service) Grouped(ctx context.Context) ([]CategoryGroup, error) {
	available, err := s.Available(ctx, "")
	if err != nil {
		return nil, err
	}
	byCategory := make(map[string][]Product)
	for _, p := range available {
		c := categoryOf(p)
		byCategory[c] = append(byCategory[c], p)
	}
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	groups := make([]CategoryGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, CategoryGroup{Category: name, Products: byCategory[name]})
	}
	return groups, nil
}

// ApplyDecrements deducts committed sale quantities from stock in a single
// read-modify-write pass. Stock clamps at zero: overselling truncates rather
// than failing, and products no longer in the catalog are skipped.
func (s *Service) ApplyDecrements(ctx context.Context, decrements []Decrement) error {
	if len(decrements) == 0 {
		return nil
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}
	for _, d := range decrements {
		i, ok := index[d.ProductID]
		if !ok {
			continue
		}
		products[i].Stock = clampStock(products[i].Stock - d.Quantity)
	}
	return s.repo.ReplaceAll(ctx, products)
}

func (s *Service) validate(input ProductInput) error {
	if strings.TrimSpace(input.Code) == "" {
		return errors.New("catalog: product code is required")
	}
	if input.PriceNormal < 0 || input.PriceCash < 0 || input.PriceWholesale < 0 {
		return errors.New("catalog: prices must be non-negative")
	}
	return nil
}

func categoryOf(p Product) string {
	if strings.TrimSpace(p.Category) == "" {
		return uncategorized
	}
	return p.Category
}

func clampStock(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
