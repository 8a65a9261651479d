package query

import (
	"fmt"

	"lagerbestand/internal/inventory/domain"
)

// ListItemsQuery represents the query to list all items
type ListItemsQuery struct{}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query. The full collection is returned
// in storage order; the presentation layer applies its own ordering.
func (h *ListItemsHandler) Handle(ListItemsQuery) ([]domain.Item, error) {
	items, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}
