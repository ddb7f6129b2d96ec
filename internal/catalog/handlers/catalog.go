package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"restaurant-orders/internal/common/httpx"
	"restaurant-orders/internal/common/money"
	"restaurant-orders/internal/domain"
)

func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenu(r.Context())
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to load menu")
		return
	}
	out := make([]domain.MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, menuItemResponse(it))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var in domain.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	item, err := h.service.CreateMenuItem(r.Context(), in)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, menuItemResponse(item))
}

func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_id", "item id must be an integer")
		return
	}
	var in domain.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	item, found, err := h.service.UpdateMenuItem(r.Context(), id, in)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	if !found {
		httpx.WriteProblem(w, http.StatusNotFound, "not_found", "menu item not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, menuItemResponse(item))
}

func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_id", "item id must be an integer")
		return
	}
	found, err := h.service.DeleteMenuItem(r.Context(), id)
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to delete menu item")
		return
	}
	if !found {
		httpx.WriteProblem(w, http.StatusNotFound, "not_found", "menu item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.GetSettings(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSettingsUnavailable) {
			httpx.WriteProblem(w, http.StatusInternalServerError, "settings_unavailable", "settings are not configured")
			return
		}
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to load settings")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, settingsResponse(s))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in domain.SettingsInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	s, err := h.service.UpdateSettings(r.Context(), in)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, settingsResponse(s))
}

func writeCatalogError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		httpx.WriteProblem(w, http.StatusBadRequest, "validation_failed", ve.Error())
		return
	}
	httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "storage failure")
}

func menuItemResponse(it domain.MenuItem) domain.MenuItemResponse {
	return domain.MenuItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Price:    money.Round2(it.Price),
		Category: it.Category,
		ImageRef: it.ImageRef,
	}
}

func settingsResponse(s domain.Settings) domain.SettingsResponse {
	return domain.SettingsResponse{
		DiscountRate: s.DiscountRate,
		TaxRate:      s.TaxRate,
		UpdatedAt:    s.UpdatedAt,
	}
}
