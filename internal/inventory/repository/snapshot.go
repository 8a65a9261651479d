package repository

import (
	"gorm.io/gorm"

	"lagerbestand/internal/inventory/domain"
)

type GormSnapshotRepository struct {
	db *gorm.DB
}

func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// ExportAll reads both collections inside one read transaction and
// wraps them in a versioned snapshot document.
func (r *GormSnapshotRepository) ExportAll() (*domain.Snapshot, error) {
	snap := &domain.Snapshot{
		Version:    domain.SchemaVersion,
		ExportedAt: domain.NowMillis(),
		Items:      []domain.Item{},
		Bookings:   []domain.Booking{},
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Find(&snap.Items).Error; err != nil {
			return err
		}
		return tx.Find(&snap.Bookings).Error
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// ReplaceAll performs the destructive full replace behind restore: both
// collections are cleared and the given records inserted as one
// transaction, so a mid-way failure leaves the prior state untouched.
func (r *GormSnapshotRepository) ReplaceAll(items []domain.Item, bookings []domain.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&domain.Item{}).Error; err != nil {
			return err
		}
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		for i := range bookings {
			if err := tx.Create(&bookings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
