package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"restaurant-orders/internal/common/httpx"
	"restaurant-orders/internal/common/logger"
	"restaurant-orders/internal/common/money"
	"restaurant-orders/internal/domain"
)

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())

	var req domain.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	summary, err := h.service.PlaceOrder(r.Context(), req)
	if err != nil {
		h.writeOrderError(w, requestID, err)
		return
	}

	h.lg.Debug("order_placed", requestID, map[string]any{
		"order_id":    summary.OrderID,
		"net_payable": summary.NetPayable,
	})
	httpx.WriteJSON(w, http.StatusCreated, roundSummary(summary))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_id", "order id must be an integer")
		return
	}
	order, found, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to load order")
		return
	}
	if !found {
		httpx.WriteProblem(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orderResponse(order))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit := atoiDefault(r.URL.Query().Get("limit"), 50)
	offset := atoiDefault(r.URL.Query().Get("offset"), 0)

	orders, err := h.service.ListOrders(r.Context(), limit, offset)
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to list orders")
		return
	}
	out := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse(o))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// writeOrderError maps the engine's error kinds to status codes without
// leaking storage internals.
func (h *Handler) writeOrderError(w http.ResponseWriter, requestID string, err error) {
	var invalid *domain.InvalidOrderError
	if errors.As(err, &invalid) {
		httpx.WriteProblem(w, http.StatusBadRequest, "invalid_order", invalid.Error())
		return
	}
	var unknown *domain.UnknownMenuItemError
	if errors.As(err, &unknown) {
		httpx.WriteProblem(w, http.StatusNotFound, "unknown_menu_item", unknown.Error())
		return
	}
	if errors.Is(err, domain.ErrSettingsUnavailable) {
		h.lg.Error("settings_unavailable", requestID, err, nil)
		httpx.WriteProblem(w, http.StatusInternalServerError, "settings_unavailable", "settings are not configured")
		return
	}
	h.lg.Error("order_failed", requestID, err, nil)
	httpx.WriteProblem(w, http.StatusInternalServerError, "internal_error", "failed to place order")
}

func roundSummary(s domain.OrderSummary) domain.OrderSummary {
	s.Total = money.Round2(s.Total)
	s.Discount = money.Round2(s.Discount)
	s.Tax = money.Round2(s.Tax)
	s.NetPayable = money.Round2(s.NetPayable)
	return s
}

func orderResponse(o domain.Order) domain.OrderResponse {
	lines := make([]domain.OrderLineResponse, 0, len(o.Lines))
	for _, ln := range o.Lines {
		lines = append(lines, domain.OrderLineResponse{
			ItemID:   ln.ItemID,
			Name:     ln.Name,
			Price:    money.Round2(ln.Price),
			ImageRef: ln.ImageRef,
		})
	}
	return domain.OrderResponse{
		ID:          o.ID,
		TableNumber: o.TableNumber,
		Lines:       lines,
		Total:       money.Round2(o.Total),
		Discount:    money.Round2(o.Discount),
		Tax:         money.Round2(o.Tax),
		NetPayable:  money.Round2(o.NetPayable),
		CreatedAt:   o.CreatedAt,
	}
}

func atoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return d
	}
	return n
}
