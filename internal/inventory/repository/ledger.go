package repository

import (
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"lagerbestand/internal/inventory/domain"
)

type GormLedgerRepository struct {
	db *gorm.DB
}

func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// RecordAdjustment applies a stock change and appends the matching
// booking in one transaction. A partial outcome (stock changed without
// a ledger entry, or the reverse) is never observable.
func (r *GormLedgerRepository) RecordAdjustment(itemID string, delta float64, reason, note string) (*domain.Booking, error) {
	var booking *domain.Booking
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item domain.Item
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}

		now := domain.NowMillis()

		// Overflow to a non-finite value keeps the prior stock; the
		// booking is still appended so the ledger stays complete.
		next := item.Stock + delta
		if !math.IsNaN(next) && !math.IsInf(next, 0) {
			item.Stock = next
		}
		item.UpdatedAt = now

		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		b := domain.Booking{
			ID:               domain.NewID(),
			ItemID:           item.ID,
			ItemNameSnapshot: item.Name,
			Delta:            delta,
			Reason:           strings.TrimSpace(reason),
			Note:             strings.TrimSpace(note),
			At:               now,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}

		booking = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// FindRecent returns the newest bookings first, bounded to limit. The
// index on "at" lets the query stop once the bound is reached.
func (r *GormLedgerRepository) FindRecent(limit int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.Order("at DESC").Limit(limit).Find(&bookings).Error
	return bookings, err
}

func (r *GormLedgerRepository) FindByItemID(itemID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.Where("item_id = ?", itemID).Order("at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *GormLedgerRepository) DeleteForItem(itemID string) error {
	return r.db.Where("item_id = ?", itemID).Delete(&domain.Booking{}).Error
}
