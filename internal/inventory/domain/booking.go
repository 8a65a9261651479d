package domain

// Booking is an immutable record of one stock quantity change.
// It holds a weak reference to its item: deleting the item deletes
// the booking, and the name snapshot is frozen at booking time.
type Booking struct {
	ID               string  `json:"id" gorm:"primaryKey;size:64"`
	ItemID           string  `json:"itemId" gorm:"not null;index"`
	ItemNameSnapshot string  `json:"itemNameSnapshot"`
	Delta            float64 `json:"delta" gorm:"not null"`
	Reason           string  `json:"reason"`
	Note             string  `json:"note"`
	At               int64   `json:"at" gorm:"not null;index"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// LedgerRepository defines the contract for booking data access.
// RecordAdjustment is the only way a booking comes into existence;
// bookings are never edited afterwards.
type LedgerRepository interface {
	RecordAdjustment(itemID string, delta float64, reason, note string) (*Booking, error)
	FindRecent(limit int) ([]Booking, error)
	FindByItemID(itemID string) ([]Booking, error)
	DeleteForItem(itemID string) error
}
