package sales

import (
	"encoding/json"
	"errors"

	"github.com/mercadito-app/mercadito/internal/catalog"
	"github.com/mercadito-app/mercadito/internal/ledger"
)

// LineItem is one (product, quantity, tier) entry of a sale.
type LineItem struct {
	ProductID string       `json:"productId"`
	Quantity  int          `json:"quantity"`
	Tier      catalog.Tier `json:"tier"`
}

// Sale is a multi-line sale. Earlier revisions persisted a single product
// flattened onto the sale itself; that shape is normalized into a one-item
// line list when loading, so nothing past this boundary branches on shape.
type Sale struct {
	ID        string     `json:"id"`
	Client    string     `json:"client"`
	LineItems []LineItem `json:"lineItems"`
	Total     float64    `json:"total"`
	Date      string     `json:"date"`
}

// UnmarshalJSON accepts both the current lineItems shape and the legacy
// flattened single-item shape.
func (s *Sale) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID        string     `json:"id"`
		Client    string     `json:"client"`
		LineItems []LineItem `json:"lineItems"`
		Total     float64    `json:"total"`
		Date      string     `json:"date"`

		ProductID string       `json:"productId"`
		Quantity  int          `json:"quantity"`
		Tier      catalog.Tier `json:"tier"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = aux.ID
	s.Client = aux.Client
	s.LineItems = aux.LineItems
	s.Total = aux.Total
	s.Date = aux.Date
	if len(s.LineItems) == 0 && aux.ProductID != "" {
		tier := aux.Tier
		if tier == "" {
			tier = catalog.TierNormal
		}
		s.LineItems = []LineItem{{ProductID: aux.ProductID, Quantity: aux.Quantity, Tier: tier}}
	}
	return nil
}

// TotalQuantity sums the line quantities.
func (s Sale) TotalQuantity() int {
	var n int
	for _, item := range s.LineItems {
		n += item.Quantity
	}
	return n
}

// danglingProductLabel stands in for a product a sale line references that
// no longer exists. A soft condition, never an error.
const danglingProductLabel = "N/A"

// ResolvedLine is a sale line joined against the current catalog for
// rendering.
type ResolvedLine struct {
	LineItem
	ProductCode string  `json:"productCode"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Detail is a sale plus everything its listing row shows: resolved lines,
// derived ledger state, and its abonos.
type Detail struct {
	Sale
	Lines         []ResolvedLine `json:"lines"`
	TotalQuantity int            `json:"totalQuantity"`
	Ledger        ledger.Summary `json:"ledger"`
	Abonos        []ledger.Abono `json:"abonos"`
}

// ErrEmptySale rejects a commit whose line items all got skipped.
var ErrEmptySale = errors.New("sales: at least one valid line item required")

// ErrNotEditable rejects edits on multi-line sales; only the legacy
// single-line shape ever had an edit form.
var ErrNotEditable = errors.New("sales: only single-line sales can be edited")
