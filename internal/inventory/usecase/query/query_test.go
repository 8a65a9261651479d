package query

import (
	"errors"
	"testing"

	"lagerbestand/internal/inventory/domain"
)

type fakeItemRepo struct {
	items map[string]domain.Item
}

func (f *fakeItemRepo) Create(item *domain.Item) error { return nil }
func (f *fakeItemRepo) Update(item *domain.Item) error { return nil }
func (f *fakeItemRepo) Delete(id string) error         { return nil }

func (f *fakeItemRepo) FindByID(id string) (*domain.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeItemRepo) FindAll() ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(f.items))
	for _, it := range f.items {
		items = append(items, it)
	}
	return items, nil
}

type fakeLedger struct {
	recentLimit int
	itemID      string
}

func (f *fakeLedger) RecordAdjustment(itemID string, delta float64, reason, note string) (*domain.Booking, error) {
	return nil, nil
}

func (f *fakeLedger) FindRecent(limit int) ([]domain.Booking, error) {
	f.recentLimit = limit
	return nil, nil
}

func (f *fakeLedger) FindByItemID(itemID string) ([]domain.Booking, error) {
	f.itemID = itemID
	return nil, nil
}

func (f *fakeLedger) DeleteForItem(itemID string) error { return nil }

type fakeSnapshots struct {
	snap *domain.Snapshot
	err  error
}

func (f *fakeSnapshots) ExportAll() (*domain.Snapshot, error) {
	return f.snap, f.err
}

func (f *fakeSnapshots) ReplaceAll(items []domain.Item, bookings []domain.Booking) error {
	return nil
}

func TestGetItem(t *testing.T) {
	repo := &fakeItemRepo{items: map[string]domain.Item{
		"i1": {ID: "i1", Name: "Schrauben"},
	}}
	h := NewGetItemHandler(repo)

	t.Run("returns the item", func(t *testing.T) {
		item, err := h.Handle(GetItemQuery{ID: "i1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != "Schrauben" {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("missing item surfaces ErrItemNotFound", func(t *testing.T) {
		if _, err := h.Handle(GetItemQuery{ID: "ghost"}); !errors.Is(err, domain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestListItems(t *testing.T) {
	repo := &fakeItemRepo{items: map[string]domain.Item{
		"i1": {ID: "i1"},
		"i2": {ID: "i2"},
	}}
	h := NewListItemsHandler(repo)

	items, err := h.Handle(ListItemsQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestListBookingsLimits(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero takes the default", 0, defaultBookingLimit},
		{"negative takes the default", -5, defaultBookingLimit},
		{"in-range passes through", 7, 7},
		{"excess is capped", 10000, maxBookingLimit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ledger := &fakeLedger{}
			h := NewListBookingsHandler(ledger)

			if _, err := h.Handle(ListBookingsQuery{Limit: c.limit}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ledger.recentLimit != c.want {
				t.Fatalf("expected limit %d, got %d", c.want, ledger.recentLimit)
			}
		})
	}
}

func TestListBookingsByItem(t *testing.T) {
	ledger := &fakeLedger{}
	h := NewListBookingsHandler(ledger)

	if _, err := h.Handle(ListBookingsQuery{ItemID: "i1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ledger.itemID != "i1" {
		t.Fatalf("expected item filter i1, got %q", ledger.itemID)
	}
}

func TestExportBackup(t *testing.T) {
	snap := &domain.Snapshot{Version: domain.SchemaVersion, ExportedAt: 1700000000000}
	h := NewExportBackupHandler(&fakeSnapshots{snap: snap})

	got, err := h.Handle(ExportBackupQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != snap {
		t.Fatal("expected the snapshot to pass through")
	}
}

func TestExportBackupFailure(t *testing.T) {
	h := NewExportBackupHandler(&fakeSnapshots{err: errors.New("io error")})

	if _, err := h.Handle(ExportBackupQuery{}); err == nil {
		t.Fatal("expected error")
	}
}
