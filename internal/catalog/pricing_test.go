package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveUnitPriceTiers(t *testing.T) {
	p := Product{PriceNormal: 100, PriceCash: 90, PriceWholesale: 70}

	require.Equal(t, 100.0, ResolveUnitPrice(p, TierNormal))
	require.Equal(t, 90.0, ResolveUnitPrice(p, TierCash))
	require.Equal(t, 70.0, ResolveUnitPrice(p, TierWholesale))
}

func TestResolveUnitPriceLegacyFallback(t *testing.T) {
	legacy := Product{PriceSale: 85}
	require.Equal(t, 85.0, ResolveUnitPrice(legacy, TierNormal))

	// priceNormal takes precedence once set.
	migrated := Product{PriceNormal: 120, PriceSale: 85}
	require.Equal(t, 120.0, ResolveUnitPrice(migrated, TierNormal))
}

func TestResolveUnitPriceMissingFieldsAreZero(t *testing.T) {
	p := Product{PriceNormal: 100}
	require.Equal(t, 0.0, ResolveUnitPrice(p, TierCash))
	require.Equal(t, 0.0, ResolveUnitPrice(p, TierWholesale))
}

func TestResolveUnitPriceNoPurchasePriceFallback(t *testing.T) {
	p := Product{PriceBuy: 40}
	require.Equal(t, 0.0, ResolveUnitPrice(p, TierWholesale))
}

func TestResolveUnitPriceUnknownTier(t *testing.T) {
	p := Product{PriceNormal: 100, PriceCash: 90, PriceWholesale: 70}
	require.Equal(t, 0.0, ResolveUnitPrice(p, Tier("mayoreo++")))
	require.Equal(t, 0.0, ResolveUnitPrice(p, Tier("")))
}
