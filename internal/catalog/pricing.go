package catalog

// ResolveUnitPrice returns the unit price a tier resolves to for a product.
//
// Each tier walks an ordered fallback chain over legacy fields:
//
//	normal     -> priceNormal, priceSale, 0
//	cash       -> priceCash, 0
//	wholesale  -> priceWholesale, 0
//
// An unknown tier resolves to 0. That is carried-over policy, not an error
// path: callers compose totals out of whatever resolves and skip nothing.
// One historical revision fell back from priceWholesale to priceBuy; that
// read like a purchase-price/sale-price mixup and is not reproduced here.
func ResolveUnitPrice(p Product, tier Tier) float64 {
	switch tier {
	case TierNormal:
		if p.PriceNormal != 0 {
			return p.PriceNormal
		}
		return p.PriceSale
	case TierCash:
		return p.PriceCash
	case TierWholesale:
		return p.PriceWholesale
	default:
		return 0
	}
}
