package command

import (
	"lagerbestand/internal/inventory/domain"
)

type fakeItemRepo struct {
	items map[string]domain.Item
	err   error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]domain.Item)}
}

func (f *fakeItemRepo) Create(item *domain.Item) error {
	if f.err != nil {
		return f.err
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItemRepo) FindByID(id string) (*domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeItemRepo) FindAll() ([]domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := make([]domain.Item, 0, len(f.items))
	for _, it := range f.items {
		items = append(items, it)
	}
	return items, nil
}

func (f *fakeItemRepo) Update(item *domain.Item) error {
	if f.err != nil {
		return f.err
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItemRepo) Delete(id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeLedger struct {
	bookings []domain.Booking
	calls    int
	err      error
}

func (f *fakeLedger) RecordAdjustment(itemID string, delta float64, reason, note string) (*domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	b := domain.Booking{
		ID:     domain.NewID(),
		ItemID: itemID,
		Delta:  delta,
		Reason: reason,
		Note:   note,
		At:     domain.NowMillis(),
	}
	f.bookings = append(f.bookings, b)
	return &b, nil
}

func (f *fakeLedger) FindRecent(limit int) ([]domain.Booking, error) {
	if limit > len(f.bookings) {
		limit = len(f.bookings)
	}
	return f.bookings[:limit], nil
}

func (f *fakeLedger) FindByItemID(itemID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.ItemID == itemID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeLedger) DeleteForItem(itemID string) error {
	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if b.ItemID != itemID {
			kept = append(kept, b)
		}
	}
	f.bookings = kept
	return nil
}

type fakeSnapshots struct {
	replacedItems    []domain.Item
	replacedBookings []domain.Booking
	replaceCalls     int
	err              error
}

func (f *fakeSnapshots) ExportAll() (*domain.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Snapshot{
		Version:    domain.SchemaVersion,
		ExportedAt: domain.NowMillis(),
		Items:      f.replacedItems,
		Bookings:   f.replacedBookings,
	}, nil
}

func (f *fakeSnapshots) ReplaceAll(items []domain.Item, bookings []domain.Booking) error {
	f.replaceCalls++
	if f.err != nil {
		return f.err
	}
	f.replacedItems = items
	f.replacedBookings = bookings
	return nil
}
