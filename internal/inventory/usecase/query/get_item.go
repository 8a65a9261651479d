package query

import (
	"fmt"

	"lagerbestand/internal/inventory/domain"
)

// GetItemQuery represents the query to get an item
type GetItemQuery struct {
	ID string
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(q GetItemQuery) (*domain.Item, error) {
	if q.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	return h.repo.FindByID(q.ID)
}
