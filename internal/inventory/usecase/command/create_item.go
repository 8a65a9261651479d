package command

import (
	"fmt"

	"lagerbestand/internal/inventory/domain"
)

// CreateItemCommand represents the command to create an item
type CreateItemCommand struct {
	Name     string
	SKU      string
	Category string
	Unit     string
	Stock    float64
}

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo domain.ItemRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command. An empty normalized name is
// rejected before any write, so the store cardinality stays unchanged.
func (h *CreateItemHandler) Handle(cmd CreateItemCommand) (*domain.Item, error) {
	name := domain.NormalizeName(cmd.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	now := domain.NowMillis()
	item := &domain.Item{
		ID:        domain.NewID(),
		Name:      name,
		SKU:       domain.NormalizeName(cmd.SKU),
		Category:  domain.NormalizeName(cmd.Category),
		Unit:      domain.NormalizeName(cmd.Unit),
		Stock:     domain.NormalizeStock(cmd.Stock),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}
