package command

import (
	"fmt"

	"lagerbestand/internal/inventory/domain"
)

// UpdateItemCommand represents the command to update an item
type UpdateItemCommand struct {
	ID       string
	Name     string
	SKU      string
	Category string
	Unit     string
	Stock    float64
}

// UpdateItemHandler handles update item command
type UpdateItemHandler struct {
	repo domain.ItemRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command. The record is loaded first
// and the whole operation fails if it is absent; ID and CreatedAt are
// never altered.
func (h *UpdateItemHandler) Handle(cmd UpdateItemCommand) (*domain.Item, error) {
	if cmd.ID == "" {
		return nil, fmt.Errorf("id is required")
	}

	name := domain.NormalizeName(cmd.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	item, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	item.Name = name
	item.SKU = domain.NormalizeName(cmd.SKU)
	item.Category = domain.NormalizeName(cmd.Category)
	item.Unit = domain.NormalizeName(cmd.Unit)
	item.Stock = domain.NormalizeStock(cmd.Stock)
	item.UpdatedAt = domain.NowMillis()

	if err := h.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}
