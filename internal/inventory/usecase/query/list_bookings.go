package query

import (
	"fmt"

	"lagerbestand/internal/inventory/domain"
)

const (
	defaultBookingLimit = 50
	maxBookingLimit     = 500
)

// ListBookingsQuery represents the query to list recent bookings.
// ItemID narrows the result to one item's history.
type ListBookingsQuery struct {
	Limit  int
	ItemID string
}

// ListBookingsHandler handles list bookings query
type ListBookingsHandler struct {
	ledger domain.LedgerRepository
}

// NewListBookingsHandler creates a new list bookings handler
func NewListBookingsHandler(ledger domain.LedgerRepository) *ListBookingsHandler {
	return &ListBookingsHandler{ledger: ledger}
}

// Handle executes the list bookings query, newest first.
func (h *ListBookingsHandler) Handle(q ListBookingsQuery) ([]domain.Booking, error) {
	if q.ItemID != "" {
		bookings, err := h.ledger.FindByItemID(q.ItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to list bookings: %w", err)
		}
		return bookings, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultBookingLimit
	}
	if limit > maxBookingLimit {
		limit = maxBookingLimit
	}

	bookings, err := h.ledger.FindRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
