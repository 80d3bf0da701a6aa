package sales

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mercadito-app/mercadito/internal/catalog"
)

func TestSaleUnmarshalCurrentShape(t *testing.T) {
	raw := `{"id":"s1","client":"Ana","lineItems":[{"productId":"a","quantity":2,"tier":"cash"}],"total":160,"date":"2024-03-01"}`

	var sale Sale
	require.NoError(t, json.Unmarshal([]byte(raw), &sale))
	require.Len(t, sale.LineItems, 1)
	require.Equal(t, "a", sale.LineItems[0].ProductID)
	require.Equal(t, catalog.TierCash, sale.LineItems[0].Tier)
}

func TestSaleUnmarshalLegacyShape(t *testing.T) {
	raw := `{"id":"s1","client":"Ana","productId":"a","quantity":3,"tier":"normal","total":300,"date":"2024-03-01"}`

	var sale Sale
	require.NoError(t, json.Unmarshal([]byte(raw), &sale))
	require.Len(t, sale.LineItems, 1)
	require.Equal(t, LineItem{ProductID: "a", Quantity: 3, Tier: catalog.TierNormal}, sale.LineItems[0])
}

func TestSaleUnmarshalLegacyShapeDefaultsTier(t *testing.T) {
	raw := `{"id":"s1","client":"Ana","productId":"a","total":0,"date":"2024-03-01"}`

	var sale Sale
	require.NoError(t, json.Unmarshal([]byte(raw), &sale))
	require.Len(t, sale.LineItems, 1)
	require.Equal(t, catalog.TierNormal, sale.LineItems[0].Tier)
	require.Equal(t, 0, sale.LineItems[0].Quantity)
}

func TestSaleRoundTripNormalizes(t *testing.T) {
	legacy := `{"id":"s1","client":"Ana","productId":"a","quantity":1,"tier":"wholesale","total":70,"date":"2024-03-01"}`

	var sale Sale
	require.NoError(t, json.Unmarshal([]byte(legacy), &sale))

	encoded, err := json.Marshal(sale)
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"lineItems"`)

	var again Sale
	require.NoError(t, json.Unmarshal(encoded, &again))
	require.Equal(t, sale, again)
}

func TestTotalQuantity(t *testing.T) {
	sale := Sale{LineItems: []LineItem{{Quantity: 2}, {Quantity: 5}}}
	require.Equal(t, 7, sale.TotalQuantity())
}
