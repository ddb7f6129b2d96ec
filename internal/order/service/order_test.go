package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"restaurant-orders/internal/common/logger"
	"restaurant-orders/internal/domain"
)

type fakeCatalog struct {
	items       map[int64]domain.MenuItem
	settings    domain.Settings
	settingsOK  bool
	findErr     error
	settingsErr error
}

func (f *fakeCatalog) FindByIDs(_ context.Context, ids []int64) ([]domain.MenuItem, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []domain.MenuItem
	for _, id := range ids {
		if it, ok := f.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetSettings(_ context.Context) (domain.Settings, bool, error) {
	if f.settingsErr != nil {
		return domain.Settings{}, false, f.settingsErr
	}
	return f.settings, f.settingsOK, nil
}

type fakeOrderRepo struct {
	inserted  []domain.Order
	insertErr error
	nextID    int64
}

func (f *fakeOrderRepo) InsertOrder(_ context.Context, o domain.Order) (domain.Order, error) {
	if f.insertErr != nil {
		return domain.Order{}, f.insertErr
	}
	f.nextID++
	o.ID = f.nextID
	o.CreatedAt = time.Now().UTC()
	for i := range o.Lines {
		o.Lines[i].OrderID = o.ID
	}
	f.inserted = append(f.inserted, o)
	return o, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (domain.Order, bool, error) {
	for _, o := range f.inserted {
		if o.ID == id {
			return o, true, nil
		}
	}
	return domain.Order{}, false, nil
}

func (f *fakeOrderRepo) List(_ context.Context, limit, offset int) ([]domain.Order, error) {
	return f.inserted, nil
}

type fakePublisher struct {
	published []domain.OrderPlacedMessage
	err       error
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, msg domain.OrderPlacedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		items: map[int64]domain.MenuItem{
			1: {ID: 1, Name: "Caesar Salad", Price: 150, ImageRef: "images/caesar.jpg"},
			2: {ID: 2, Name: "Spaghetti", Price: 200, ImageRef: "images/spaghetti.jpg"},
		},
		settings:   domain.Settings{DiscountRate: 0, TaxRate: 0.10},
		settingsOK: true,
	}
}

func newService(catalog *fakeCatalog, repo *fakeOrderRepo, pub *fakePublisher) *OrderService {
	return New(catalog, repo, pub, logger.New("test"))
}

func TestPlaceOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	pub := &fakePublisher{}
	svc := newService(testCatalog(), repo, pub)

	req := domain.PlaceOrderRequest{
		TableNumber: 7,
		Items:       []domain.PlaceOrderItem{{ItemID: 1}, {ItemID: 2}},
	}
	summary, err := svc.PlaceOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	if summary.Total != 350 || summary.Discount != 0 || summary.Tax != 35 || summary.NetPayable != 385 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if got := summary.Total - summary.Discount + summary.Tax; math.Abs(got-summary.NetPayable) > 1e-9 {
		t.Errorf("invariant broken: %v != %v", got, summary.NetPayable)
	}
	if summary.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 persisted order, got %d", len(repo.inserted))
	}
	order := repo.inserted[0]
	if order.TableNumber != 7 || len(order.Lines) != 2 {
		t.Errorf("unexpected persisted order: %+v", order)
	}
	if order.Lines[0].Name != "Caesar Salad" || order.Lines[0].Price != 150 ||
		order.Lines[0].ImageRef != "images/caesar.jpg" {
		t.Errorf("line snapshot not captured: %+v", order.Lines[0])
	}

	if len(pub.published) != 1 || pub.published[0].OrderID != summary.OrderID {
		t.Errorf("expected one published event for order %d, got %+v", summary.OrderID, pub.published)
	}
}

func TestPlaceOrder_DuplicateItems(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newService(testCatalog(), repo, &fakePublisher{})

	summary, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		TableNumber: 2,
		Items:       []domain.PlaceOrderItem{{ItemID: 1}, {ItemID: 1}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if summary.Total != 300 {
		t.Errorf("duplicate item total = %v, want 300", summary.Total)
	}
	if len(repo.inserted[0].Lines) != 2 {
		t.Errorf("expected 2 lines for duplicated item, got %d", len(repo.inserted[0].Lines))
	}
}

func TestPlaceOrder_UnknownItemIsAllOrNothing(t *testing.T) {
	repo := &fakeOrderRepo{}
	pub := &fakePublisher{}
	svc := newService(testCatalog(), repo, pub)

	_, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		TableNumber: 2,
		Items:       []domain.PlaceOrderItem{{ItemID: 1}, {ItemID: 99}},
	})

	var unknown *domain.UnknownMenuItemError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownMenuItemError, got %v", err)
	}
	if len(unknown.MissingIDs) != 1 || unknown.MissingIDs[0] != 99 {
		t.Errorf("missing ids = %v, want [99]", unknown.MissingIDs)
	}
	if len(repo.inserted) != 0 {
		t.Errorf("no order must be persisted, got %d", len(repo.inserted))
	}
	if len(pub.published) != 0 {
		t.Errorf("no event must be published, got %d", len(pub.published))
	}
}

func TestPlaceOrder_DiscountOverridePrecedence(t *testing.T) {
	catalog := testCatalog()
	catalog.settings = domain.Settings{DiscountRate: 10, TaxRate: 0}
	svc := newService(catalog, &fakeOrderRepo{}, &fakePublisher{})

	summary, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		TableNumber:      1,
		Items:            []domain.PlaceOrderItem{{ItemID: 2}},
		DiscountOverride: floatPtr(50),
	})
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if summary.Discount != 100 {
		t.Errorf("discount = %v, want 100 (override 50%% of 200)", summary.Discount)
	}
}

func TestPlaceOrder_SettingsUnavailable(t *testing.T) {
	catalog := testCatalog()
	catalog.settingsOK = false
	repo := &fakeOrderRepo{}
	svc := newService(catalog, repo, &fakePublisher{})

	_, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		TableNumber: 1,
		Items:       []domain.PlaceOrderItem{{ItemID: 1}},
	})
	if !errors.Is(err, domain.ErrSettingsUnavailable) {
		t.Fatalf("expected ErrSettingsUnavailable, got %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Error("no order must be persisted when settings are missing")
	}
}

func TestPlaceOrder_PersistenceError(t *testing.T) {
	repo := &fakeOrderRepo{insertErr: errors.New("connection reset")}
	svc := newService(testCatalog(), repo, &fakePublisher{})

	_, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		TableNumber: 1,
		Items:       []domain.PlaceOrderItem{{ItemID: 1}},
	})
	var se *domain.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestPlaceOrder_PublishFailureStillSucceeds(t *testing.T) {
	repo := &fakeOrderRepo{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := newService(testCatalog(), repo, pub)

	summary, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		TableNumber: 1,
		Items:       []domain.PlaceOrderItem{{ItemID: 1}},
	})
	if err != nil {
		t.Fatalf("publish failure must not fail the order, got %v", err)
	}
	if len(repo.inserted) != 1 || summary.OrderID == 0 {
		t.Errorf("order should be persisted and acknowledged: %+v", summary)
	}
}

func TestPlaceOrder_RepeatedRequestsPriceIdentically(t *testing.T) {
	svc := newService(testCatalog(), &fakeOrderRepo{}, &fakePublisher{})
	req := domain.PlaceOrderRequest{
		TableNumber: 3,
		Items:       []domain.PlaceOrderItem{{ItemID: 2}, {ItemID: 1}},
	}

	first, err := svc.PlaceOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("first PlaceOrder: %v", err)
	}
	second, err := svc.PlaceOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("second PlaceOrder: %v", err)
	}
	if first.Total != second.Total || first.Tax != second.Tax ||
		first.Discount != second.Discount || first.NetPayable != second.NetPayable {
		t.Errorf("same request must price identically: %+v vs %+v", first, second)
	}
}
