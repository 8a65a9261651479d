package repository

import (
	"errors"
	"math"
	"testing"

	"lagerbestand/internal/inventory/domain"
)

func TestRecordAdjustment(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormItemRepository(db)
	ledger := NewGormLedgerRepository(db)

	item := newTestItem("Schrauben", 10)
	if err := repo.Create(item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	booking, err := ledger.RecordAdjustment(item.ID, -3, "Verbrauch", "Baustelle")
	if err != nil {
		t.Fatalf("adjustment failed: %v", err)
	}

	t.Run("stock equals prior stock plus delta", func(t *testing.T) {
		got, err := repo.FindByID(item.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Stock != 7 {
			t.Fatalf("expected stock 7, got %v", got.Stock)
		}
		if got.UpdatedAt < item.UpdatedAt {
			t.Fatal("expected updatedAt to be refreshed")
		}
	})

	t.Run("exactly one booking with a frozen name snapshot", func(t *testing.T) {
		bookings, err := ledger.FindByItemID(item.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bookings) != 1 {
			t.Fatalf("expected 1 booking, got %d", len(bookings))
		}
		b := bookings[0]
		if b.ID != booking.ID || b.Delta != -3 || b.Reason != "Verbrauch" || b.Note != "Baustelle" {
			t.Fatalf("unexpected booking: %+v", b)
		}
		if b.ItemNameSnapshot != "Schrauben" {
			t.Fatalf("expected name snapshot Schrauben, got %q", b.ItemNameSnapshot)
		}
	})

	t.Run("snapshot survives a later rename", func(t *testing.T) {
		got, _ := repo.FindByID(item.ID)
		got.Name = "Holzschrauben"
		if err := repo.Update(got); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		bookings, _ := ledger.FindByItemID(item.ID)
		if bookings[0].ItemNameSnapshot != "Schrauben" {
			t.Fatalf("snapshot changed to %q", bookings[0].ItemNameSnapshot)
		}
	})
}

func TestRecordAdjustmentMissingItem(t *testing.T) {
	db := newTestDB(t)
	ledger := NewGormLedgerRepository(db)

	_, err := ledger.RecordAdjustment("does-not-exist", 1, "", "")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	// The aborted operation must not leave a ledger entry behind.
	bookings, err := ledger.FindRecent(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected empty ledger, got %d bookings", len(bookings))
	}
}

func TestRecordAdjustmentOverflowKeepsPriorStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormItemRepository(db)
	ledger := NewGormLedgerRepository(db)

	item := newTestItem("Schrauben", math.MaxFloat64)
	if err := repo.Create(item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := ledger.RecordAdjustment(item.ID, math.MaxFloat64, "Zugang", ""); err != nil {
		t.Fatalf("adjustment failed: %v", err)
	}

	got, err := repo.FindByID(item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Stock != math.MaxFloat64 {
		t.Fatalf("expected prior stock to be retained, got %v", got.Stock)
	}

	bookings, _ := ledger.FindByItemID(item.ID)
	if len(bookings) != 1 {
		t.Fatalf("expected the booking to be appended, got %d", len(bookings))
	}
}

func TestFindRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormItemRepository(db)
	ledger := NewGormLedgerRepository(db)

	item := newTestItem("Schrauben", 0)
	if err := repo.Create(item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var ids []string
	for i := 0; i < 5; i++ {
		b, err := ledger.RecordAdjustment(item.ID, float64(i+1), "", "")
		if err != nil {
			t.Fatalf("adjustment failed: %v", err)
		}
		ids = append(ids, b.ID)
	}

	bookings, err := ledger.FindRecent(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(bookings))
	}
	for i := 1; i < len(bookings); i++ {
		if bookings[i-1].At < bookings[i].At {
			t.Fatalf("bookings not ordered newest first: %+v", bookings)
		}
	}
	// All five land in the same millisecond at worst, so only check
	// membership, not exact positions.
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, b := range bookings {
		if !seen[b.ID] {
			t.Fatalf("unexpected booking %q", b.ID)
		}
	}
}

func TestDeleteForItem(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormItemRepository(db)
	ledger := NewGormLedgerRepository(db)

	a := newTestItem("A", 0)
	b := newTestItem("B", 0)
	for _, it := range []*domain.Item{a, b} {
		if err := repo.Create(it); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	ledger.RecordAdjustment(a.ID, 1, "", "")
	ledger.RecordAdjustment(a.ID, 2, "", "")
	ledger.RecordAdjustment(b.ID, 3, "", "")

	if err := ledger.DeleteForItem(a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	gone, _ := ledger.FindByItemID(a.ID)
	if len(gone) != 0 {
		t.Fatalf("expected 0 bookings, got %d", len(gone))
	}
	kept, _ := ledger.FindByItemID(b.ID)
	if len(kept) != 1 {
		t.Fatalf("expected 1 booking to survive, got %d", len(kept))
	}
}
