package catalog

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(repo Repository) chi.Router {
	r := chi.NewRouter()
	handler := NewHandler(testLogger(), NewService(repo))
	handler.MountRoutes(r)
	return r
}

func TestCreateProductParsesNumeralForms(t *testing.T) {
	repo := &memoryRepo{}
	router := newTestRouter(repo)

	body := `{"code":"BLUSA-01","priceNormal":"1,250.50","priceCash":"1,100","stock":"12"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)

	var view productView
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &view))
	require.Equal(t, 1250.5, view.PriceNormal)
	require.Equal(t, 1100.0, view.PriceCash)
	require.Equal(t, 12, view.Stock)
	require.Equal(t, "1,250.50", view.PriceNormalDisplay)
	require.Equal(t, StockLevelHigh, view.StockLevel)
}

func TestCreateProductRequiresCode(t *testing.T) {
	router := newTestRouter(&memoryRepo{})

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"priceNormal":"100"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(&memoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/products/nope", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestCatalogExcludesSoldOut(t *testing.T) {
	repo := &memoryRepo{products: []Product{
		{ID: "a", Code: "A", Stock: 3, Category: "Blusas"},
		{ID: "b", Code: "B", Stock: 0, Category: "Blusas"},
	}}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var groups []CategoryGroup
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &groups))
	require.Len(t, groups, 1)
	require.Equal(t, "Blusas", groups[0].Category)
	require.Len(t, groups[0].Products, 1)
	require.Equal(t, "A", groups[0].Products[0].Code)
}
