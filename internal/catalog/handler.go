package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mercadito-app/mercadito/internal/platform/httpx"
	"github.com/mercadito-app/mercadito/internal/shared"
)

// Handler wires catalog HTTP endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers product and catalog routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/{id}", h.getProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)
	r.Get("/catalog", h.showCatalog)
}

// productForm accepts the numeric fields as the comma-formatted numeral
// strings the input widgets produce.
type productForm struct {
	PhotoURL       string `json:"photoUrl"`
	Category       string `json:"category"`
	Code           string `json:"code" validate:"required"`
	PriceNormal    string `json:"priceNormal"`
	PriceCash      string `json:"priceCash"`
	PriceWholesale string `json:"priceWholesale"`
	Stock          string `json:"stock"`
	Notes          string `json:"notes"`
}

func (f productForm) input() ProductInput {
	return ProductInput{
		PhotoURL:       f.PhotoURL,
		Category:       f.Category,
		Code:           f.Code,
		PriceNormal:    shared.ParseAmount(f.PriceNormal),
		PriceCash:      shared.ParseAmount(f.PriceCash),
		PriceWholesale: shared.ParseAmount(f.PriceWholesale),
		Stock:          shared.ParseQuantity(f.Stock),
		Notes:          f.Notes,
	}
}

type productView struct {
	Product
	StockLevel            StockLevel `json:"stockLevel"`
	StockDisplay          string     `json:"stockDisplay"`
	PriceNormalDisplay    string     `json:"priceNormalDisplay"`
	PriceCashDisplay      string     `json:"priceCashDisplay"`
	PriceWholesaleDisplay string     `json:"priceWholesaleDisplay"`
}

func viewOf(p Product) productView {
	return productView{
		Product:               p,
		StockLevel:            p.Level(),
		StockDisplay:          shared.FormatQuantity(p.Stock),
		PriceNormalDisplay:    shared.FormatAmount(ResolveUnitPrice(p, TierNormal)),
		PriceCashDisplay:      shared.FormatAmount(ResolveUnitPrice(p, TierCash)),
		PriceWholesaleDisplay: shared.FormatAmount(ResolveUnitPrice(p, TierWholesale)),
	}
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, viewOf(p))
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("get product", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, viewOf(product))
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var form productForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	product, err := h.service.Create(r.Context(), form.input())
	if err != nil {
		h.logger.Error("create product", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	httpx.JSON(w, http.StatusCreated, viewOf(product))
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var form productForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	product, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), form.input())
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			httpx.RespondError(w, err)
			return
		}
		h.logger.Error("update product", slog.Any("error", err))
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, viewOf(product))
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("delete product", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) showCatalog(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		products, err := h.service.Available(r.Context(), category)
		if err != nil {
			h.logger.Error("filter catalog", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, viewOf(p))
		}
		httpx.JSON(w, http.StatusOK, views)
		return
	}
	groups, err := h.service.Grouped(r.Context())
	if err != nil {
		h.logger.Error("group catalog", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, groups)
}
