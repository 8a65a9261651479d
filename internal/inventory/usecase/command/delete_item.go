package command

import (
	"errors"
	"fmt"

	"lagerbestand/internal/inventory/domain"
)

// DeleteItemCommand represents the command to delete an item
type DeleteItemCommand struct {
	ID string
}

// DeleteItemHandler handles delete item command
type DeleteItemHandler struct {
	repo domain.ItemRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle executes the delete item command. The repository cascades the
// delete to the item's bookings inside the same transaction.
func (h *DeleteItemHandler) Handle(cmd DeleteItemCommand) error {
	if cmd.ID == "" {
		return fmt.Errorf("id is required")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}
