package command

import (
	"encoding/json"
	"fmt"

	"lagerbestand/internal/inventory/domain"
)

// RestoreBackupCommand carries a raw backup document as uploaded by the
// caller. The payload is parsed here, not in the delivery layer, so the
// "store untouched on malformed input" guarantee has a single owner.
type RestoreBackupCommand struct {
	Payload []byte
}

// RestoreResult reports what a restore actually inserted.
type RestoreResult struct {
	Items           int
	Bookings        int
	DroppedBookings int
}

// RestoreBackupHandler handles restore backup command
type RestoreBackupHandler struct {
	snapshots domain.SnapshotRepository
}

// NewRestoreBackupHandler creates a new restore backup handler
func NewRestoreBackupHandler(snapshots domain.SnapshotRepository) *RestoreBackupHandler {
	return &RestoreBackupHandler{snapshots: snapshots}
}

// restoreDocument tolerates partially-shaped documents: absent or
// non-array items/txs decode as empty lists. Only a payload that is not
// JSON at all is rejected.
type restoreDocument struct {
	Version int             `json:"version"`
	Items   json.RawMessage `json:"items"`
	Txs     json.RawMessage `json:"txs"`
}

// restoreItem accepts both the canonical shape and the legacy
// name+stock-only shape; missing fields take their defined fallbacks.
type restoreItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SKU       string   `json:"sku"`
	Category  string   `json:"category"`
	Unit      string   `json:"unit"`
	Stock     *float64 `json:"stock"`
	CreatedAt *int64   `json:"createdAt"`
	UpdatedAt *int64   `json:"updatedAt"`
}

type restoreBooking struct {
	ID               string   `json:"id"`
	ItemID           string   `json:"itemId"`
	ItemNameSnapshot string   `json:"itemNameSnapshot"`
	Delta            *float64 `json:"delta"`
	Reason           string   `json:"reason"`
	Note             string   `json:"note"`
	At               *int64   `json:"at"`
}

// Handle executes the restore backup command as a destructive full
// replace. Bookings whose itemId matches no restored item are dropped
// rather than reintroduced as dangling references.
func (h *RestoreBackupHandler) Handle(cmd RestoreBackupCommand) (*RestoreResult, error) {
	var doc restoreDocument
	if err := json.Unmarshal(cmd.Payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedBackup, err)
	}

	now := domain.NowMillis()

	items := make([]domain.Item, 0)
	itemIDs := make(map[string]bool)
	for _, raw := range decodeList(doc.Items) {
		var in restoreItem
		if err := json.Unmarshal(raw, &in); err != nil {
			continue
		}
		item := coerceItem(in, now)
		items = append(items, item)
		itemIDs[item.ID] = true
	}

	bookings := make([]domain.Booking, 0)
	dropped := 0
	for _, raw := range decodeList(doc.Txs) {
		var in restoreBooking
		if err := json.Unmarshal(raw, &in); err != nil {
			continue
		}
		if !itemIDs[in.ItemID] {
			dropped++
			continue
		}
		bookings = append(bookings, coerceBooking(in, now))
	}

	if err := h.snapshots.ReplaceAll(items, bookings); err != nil {
		return nil, fmt.Errorf("failed to restore backup: %w", err)
	}

	return &RestoreResult{
		Items:           len(items),
		Bookings:        len(bookings),
		DroppedBookings: dropped,
	}, nil
}

func decodeList(raw json.RawMessage) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func coerceItem(in restoreItem, now int64) domain.Item {
	item := domain.Item{
		ID:        in.ID,
		Name:      domain.NormalizeName(in.Name),
		SKU:       domain.NormalizeName(in.SKU),
		Category:  domain.NormalizeName(in.Category),
		Unit:      domain.NormalizeName(in.Unit),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if item.ID == "" {
		item.ID = domain.NewID()
	}
	if in.Stock != nil {
		item.Stock = domain.NormalizeStock(*in.Stock)
	}
	if in.CreatedAt != nil {
		item.CreatedAt = *in.CreatedAt
	}
	if in.UpdatedAt != nil {
		item.UpdatedAt = *in.UpdatedAt
	}
	return item
}

func coerceBooking(in restoreBooking, now int64) domain.Booking {
	booking := domain.Booking{
		ID:               in.ID,
		ItemID:           in.ItemID,
		ItemNameSnapshot: in.ItemNameSnapshot,
		Reason:           in.Reason,
		Note:             in.Note,
		At:               now,
	}
	if booking.ID == "" {
		booking.ID = domain.NewID()
	}
	if in.Delta != nil {
		booking.Delta = domain.NormalizeStock(*in.Delta)
	}
	if in.At != nil {
		booking.At = *in.At
	}
	return booking
}
