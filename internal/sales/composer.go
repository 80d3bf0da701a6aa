package sales

import (
	"github.com/mercadito-app/mercadito/internal/catalog"
)

// ComputeTotal aggregates line items into a sale total against the given
// catalog. A line contributes zero when its product id is empty, its
// quantity is zero, or the product is not in the catalog; otherwise it adds
// resolved unit price times quantity. The sum is returned unrounded: only
// commit and display round, to two decimals.
func ComputeTotal(items []LineItem, products []catalog.Product) float64 {
	index := indexProducts(products)
	var total float64
	for _, item := range items {
		if item.ProductID == "" || item.Quantity == 0 {
			continue
		}
		product, ok := index[item.ProductID]
		if !ok {
			continue
		}
		total += catalog.ResolveUnitPrice(product, item.Tier) * float64(item.Quantity)
	}
	return total
}

func indexProducts(products []catalog.Product) map[string]catalog.Product {
	index := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
