package domain

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item represents a tracked stock-keeping unit
type Item struct {
	ID        string  `json:"id" gorm:"primaryKey;size:64"`
	Name      string  `json:"name" gorm:"not null;index"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	Stock     float64 `json:"stock" gorm:"not null;default:0"`
	CreatedAt int64   `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt int64   `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "items"
}

// ItemRepository defines the contract for item data access
type ItemRepository interface {
	Create(item *Item) error
	FindByID(id string) (*Item, error)
	FindAll() ([]Item, error)
	Update(item *Item) error
	Delete(id string) error
}

// NewID allocates a fresh collision-resistant identifier.
// Identifiers are opaque, immutable and never reused.
func NewID() string {
	return uuid.NewString()
}

// NowMillis returns the current wall clock in epoch milliseconds,
// the timestamp unit used throughout the store.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// NormalizeName trims surrounding whitespace from a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeStock coerces a quantity to a finite number, falling back to 0.
func NormalizeStock(stock float64) float64 {
	if math.IsNaN(stock) || math.IsInf(stock, 0) {
		return 0
	}
	return stock
}
