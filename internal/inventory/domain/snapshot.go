package domain

// SchemaVersion is the snapshot document version written on export.
const SchemaVersion = 1

// Snapshot is a complete exported copy of the store, used for backup
// and restore. Exported records are passed through as stored.
type Snapshot struct {
	Version    int       `json:"version"`
	ExportedAt int64     `json:"exportedAt"`
	Items      []Item    `json:"items"`
	Bookings   []Booking `json:"txs"`
}

// SnapshotRepository defines the contract for whole-store backup access.
// ReplaceAll is destructive: it clears both collections and inserts the
// given records as one atomic unit.
type SnapshotRepository interface {
	ExportAll() (*Snapshot, error)
	ReplaceAll(items []Item, bookings []Booking) error
}
