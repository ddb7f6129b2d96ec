package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-orders/internal/common/logger"
	"restaurant-orders/internal/domain"
)

type fakeOrderService struct {
	summary domain.OrderSummary
	err     error
}

func (f *fakeOrderService) PlaceOrder(_ context.Context, _ domain.PlaceOrderRequest) (domain.OrderSummary, error) {
	return f.summary, f.err
}

func (f *fakeOrderService) GetOrder(_ context.Context, _ int64) (domain.Order, bool, error) {
	return domain.Order{}, false, nil
}

func (f *fakeOrderService) ListOrders(_ context.Context, _, _ int) ([]domain.Order, error) {
	return nil, nil
}

func placeOrder(t *testing.T, svc *fakeOrderService, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := New(svc, logger.New("test"))
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.PlaceOrder(rec, req)
	return rec
}

const validBody = `{"table_number": 4, "items": [{"item_id": 1}]}`

func TestPlaceOrder_Success(t *testing.T) {
	svc := &fakeOrderService{summary: domain.OrderSummary{
		OrderID:    12,
		Total:      123.456,
		Discount:   0.005,
		Tax:        12.3456,
		NetPayable: 135.7966,
		CreatedAt:  time.Now().UTC(),
	}}
	rec := placeOrder(t, svc, validBody)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got domain.OrderSummary
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// monetary fields are rounded to two decimals at the boundary
	if got.Total != 123.46 || got.Discount != 0.01 || got.Tax != 12.35 || got.NetPayable != 135.8 {
		t.Errorf("unexpected rounded summary: %+v", got)
	}
	if got.OrderID != 12 {
		t.Errorf("order id = %d, want 12", got.OrderID)
	}
}

func TestPlaceOrder_BadJSON(t *testing.T) {
	rec := placeOrder(t, &fakeOrderService{}, `{"table_number":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPlaceOrder_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{
			name:     "invalid order",
			err:      &domain.InvalidOrderError{Field: "items", Message: "at least one item is required"},
			wantCode: http.StatusBadRequest,
			wantType: "invalid_order",
		},
		{
			name:     "unknown menu item",
			err:      &domain.UnknownMenuItemError{MissingIDs: []int64{99}},
			wantCode: http.StatusNotFound,
			wantType: "unknown_menu_item",
		},
		{
			name:     "settings unavailable",
			err:      domain.ErrSettingsUnavailable,
			wantCode: http.StatusInternalServerError,
			wantType: "settings_unavailable",
		},
		{
			name:     "storage failure",
			err:      &domain.StorageError{Op: "insert order", Err: context.DeadlineExceeded},
			wantCode: http.StatusInternalServerError,
			wantType: "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := placeOrder(t, &fakeOrderService{err: tt.err}, validBody)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			var problem map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&problem); err != nil {
				t.Fatalf("decode problem: %v", err)
			}
			if problem["type"] != tt.wantType {
				t.Errorf("problem type = %v, want %q", problem["type"], tt.wantType)
			}
			if tt.name == "storage failure" {
				if detail, _ := problem["detail"].(string); strings.Contains(detail, "insert order") {
					t.Errorf("storage internals leaked to client: %q", detail)
				}
			}
		})
	}
}
