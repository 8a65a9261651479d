package command

import (
	"errors"
	"fmt"
	"math"

	"lagerbestand/internal/inventory/domain"
)

// RecordAdjustmentCommand represents the command to adjust stock and
// append the matching booking.
type RecordAdjustmentCommand struct {
	ItemID string
	Delta  float64
	Reason string
	Note   string
}

// RecordAdjustmentHandler handles record adjustment command
type RecordAdjustmentHandler struct {
	ledger domain.LedgerRepository
}

// NewRecordAdjustmentHandler creates a new record adjustment handler
func NewRecordAdjustmentHandler(ledger domain.LedgerRepository) *RecordAdjustmentHandler {
	return &RecordAdjustmentHandler{ledger: ledger}
}

// Handle executes the record adjustment command. A booking must
// represent a real change: a zero delta is rejected before any write,
// and a non-numeric delta coerces to zero and is rejected the same way.
func (h *RecordAdjustmentHandler) Handle(cmd RecordAdjustmentCommand) (*domain.Booking, error) {
	if cmd.ItemID == "" {
		return nil, fmt.Errorf("item id is required")
	}

	delta := cmd.Delta
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		delta = 0
	}
	if delta == 0 {
		return nil, domain.ErrZeroDelta
	}

	booking, err := h.ledger.RecordAdjustment(cmd.ItemID, delta, cmd.Reason, cmd.Note)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to record adjustment: %w", err)
	}

	return booking, nil
}
