package command

import (
	"errors"
	"math"
	"testing"

	"lagerbestand/internal/inventory/domain"
)

func TestCreateItem(t *testing.T) {
	t.Run("allocates id and timestamps", func(t *testing.T) {
		repo := newFakeItemRepo()
		h := NewCreateItemHandler(repo)

		item, err := h.Handle(CreateItemCommand{Name: "Schrauben", Stock: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == "" {
			t.Fatal("expected an id to be assigned")
		}
		if item.CreatedAt == 0 || item.CreatedAt != item.UpdatedAt {
			t.Fatalf("expected createdAt == updatedAt != 0, got %d/%d", item.CreatedAt, item.UpdatedAt)
		}
		if len(repo.items) != 1 {
			t.Fatalf("expected 1 stored item, got %d", len(repo.items))
		}
	})

	t.Run("trims free-text fields", func(t *testing.T) {
		repo := newFakeItemRepo()
		h := NewCreateItemHandler(repo)

		item, err := h.Handle(CreateItemCommand{
			Name:     "  Schrauben  ",
			SKU:      " SCR-10 ",
			Category: " Befestigung ",
			Unit:     " Stk ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != "Schrauben" || item.SKU != "SCR-10" || item.Category != "Befestigung" || item.Unit != "Stk" {
			t.Fatalf("fields not trimmed: %+v", item)
		}
	})

	t.Run("coerces non-finite stock to zero", func(t *testing.T) {
		repo := newFakeItemRepo()
		h := NewCreateItemHandler(repo)

		item, err := h.Handle(CreateItemCommand{Name: "Schrauben", Stock: math.NaN()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Stock != 0 {
			t.Fatalf("expected stock 0, got %v", item.Stock)
		}
	})

	t.Run("empty name is rejected without a write", func(t *testing.T) {
		repo := newFakeItemRepo()
		h := NewCreateItemHandler(repo)

		for _, name := range []string{"", "   ", "\t\n"} {
			if _, err := h.Handle(CreateItemCommand{Name: name}); !errors.Is(err, domain.ErrEmptyName) {
				t.Fatalf("name %q: expected ErrEmptyName, got %v", name, err)
			}
		}
		if len(repo.items) != 0 {
			t.Fatalf("store cardinality changed: %d items", len(repo.items))
		}
	})
}
