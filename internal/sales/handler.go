package sales

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mercadito-app/mercadito/internal/catalog"
	"github.com/mercadito-app/mercadito/internal/ledger"
	"github.com/mercadito-app/mercadito/internal/platform/httpx"
	"github.com/mercadito-app/mercadito/internal/shared"
)

// Handler wires sale and abono HTTP endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	ledger    *ledger.Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, ledgerService *ledger.Service) *Handler {
	return &Handler{logger: logger, service: service, ledger: ledgerService, validator: validator.New()}
}

// MountRoutes registers sale and abono routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.listSales)
	r.Post("/sales", h.createSale)
	r.Post("/sales/quote", h.quoteSale)
	r.Get("/sales/{id}", h.getSale)
	r.Put("/sales/{id}", h.updateSale)
	r.Delete("/sales/{id}", h.deleteSale)
	r.Post("/sales/{id}/abonos", h.createAbono)
	r.Delete("/abonos/{id}", h.deleteAbono)
}

// lineItemForm accepts the quantity as the comma-formatted numeral string
// the input widget produces.
type lineItemForm struct {
	ProductID string `json:"productId"`
	Quantity  string `json:"quantity"`
	Tier      string `json:"tier"`
}

func (f lineItemForm) item() LineItem {
	return LineItem{
		ProductID: f.ProductID,
		Quantity:  shared.ParseQuantity(f.Quantity),
		Tier:      catalog.Tier(f.Tier),
	}
}

type saleForm struct {
	Client       string         `json:"client" validate:"required"`
	Date         string         `json:"date"`
	Items        []lineItemForm `json:"items" validate:"required,min=1"`
	InitialAbono string         `json:"initialAbono"`
}

type updateSaleForm struct {
	Client    string `json:"client" validate:"required"`
	Date      string `json:"date"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  string `json:"quantity"`
	Tier      string `json:"tier"`
}

type abonoForm struct {
	Amount string `json:"amount" validate:"required"`
	Date   string `json:"date"`
}

type saleView struct {
	Detail
	TotalDisplay     string `json:"totalDisplay"`
	TotalPaidDisplay string `json:"totalPaidDisplay"`
	BalanceDisplay   string `json:"balanceDisplay"`
}

func viewOf(d Detail) saleView {
	return saleView{
		Detail:           d,
		TotalDisplay:     shared.FormatAmount(d.Total),
		TotalPaidDisplay: shared.FormatAmount(d.Ledger.TotalPaid),
		BalanceDisplay:   shared.FormatAmount(d.Ledger.Balance),
	}
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list sales", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	views := make([]saleView, 0, len(details))
	for _, d := range details {
		views = append(views, viewOf(d))
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("get sale", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, viewOf(detail))
}

func (h *Handler) quoteSale(w http.ResponseWriter, r *http.Request) {
	var form struct {
		Items []lineItemForm `json:"items"`
	}
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	items := make([]LineItem, 0, len(form.Items))
	for _, f := range form.Items {
		items = append(items, f.item())
	}
	total, err := h.service.Quote(r.Context(), items)
	if err != nil {
		h.logger.Error("quote sale", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"total":        total,
		"totalDisplay": shared.FormatAmount(total),
	})
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var form saleForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	items := make([]LineItem, 0, len(form.Items))
	for _, f := range form.Items {
		items = append(items, f.item())
	}
	sale, err := h.service.Commit(r.Context(), SaleInput{
		Client:       form.Client,
		Date:         form.Date,
		Items:        items,
		InitialAbono: shared.ParseAmount(form.InitialAbono),
	})
	if err != nil {
		if errors.Is(err, ErrEmptySale) {
			httpx.Problem(w, http.StatusBadRequest, "Empty Sale", err.Error())
			return
		}
		h.logger.Error("commit sale", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sale)
}

func (h *Handler) updateSale(w http.ResponseWriter, r *http.Request) {
	var form updateSaleForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	sale, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
		Client:    form.Client,
		Date:      form.Date,
		ProductID: form.ProductID,
		Quantity:  shared.ParseQuantity(form.Quantity),
		Tier:      catalog.Tier(form.Tier),
	})
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrNotFound):
			httpx.RespondError(w, err)
		case errors.Is(err, ErrNotEditable), errors.Is(err, ErrEmptySale):
			httpx.Problem(w, http.StatusBadRequest, "Invalid Edit", err.Error())
		default:
			h.logger.Error("update sale", slog.Any("error", err))
			httpx.RespondError(w, err)
		}
		return
	}
	httpx.JSON(w, http.StatusOK, sale)
}

func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("delete sale", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) createAbono(w http.ResponseWriter, r *http.Request) {
	saleID := chi.URLParam(r, "id")
	if _, err := h.service.Get(r.Context(), saleID); err != nil {
		httpx.RespondError(w, err)
		return
	}
	var form abonoForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	abono, err := h.ledger.Register(r.Context(), ledger.AbonoInput{
		SaleID: saleID,
		Amount: shared.ParseAmount(form.Amount),
		Date:   form.Date,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Amount", err.Error())
			return
		}
		h.logger.Error("register abono", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, abono)
}

func (h *Handler) deleteAbono(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("delete abono", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
