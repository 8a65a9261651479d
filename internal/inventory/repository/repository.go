package repository

import (
	"errors"

	"gorm.io/gorm"

	"lagerbestand/internal/inventory/domain"
)

type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// AutoMigrate creates the collections, their indexes and the schema
// version marker. Opening an already-initialized store is a no-op and
// never destroys existing data.
func (r *GormItemRepository) AutoMigrate() error {
	if err := r.db.AutoMigrate(&domain.Item{}, &domain.Booking{}, &schemaMeta{}); err != nil {
		return err
	}
	return ensureSchemaVersion(r.db)
}

func (r *GormItemRepository) Create(item *domain.Item) error {
	return r.db.Create(item).Error
}

func (r *GormItemRepository) FindByID(id string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) FindAll() ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Find(&items).Error
	return items, err
}

func (r *GormItemRepository) Update(item *domain.Item) error {
	return r.db.Save(item).Error
}

// Delete removes the item and every booking referencing it as one
// transaction: either both deletes land or neither does.
func (r *GormItemRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var item domain.Item
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrItemNotFound
			}
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Item{}, "id = ?", id).Error
	})
}

// schemaMeta is a single-row marker recording the store schema version,
// so a later open can detect an initialized store.
type schemaMeta struct {
	ID      uint `gorm:"primaryKey"`
	Version int  `gorm:"not null"`
}

func (schemaMeta) TableName() string {
	return "schema_meta"
}

func ensureSchemaVersion(db *gorm.DB) error {
	var meta schemaMeta
	err := db.First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&schemaMeta{ID: 1, Version: domain.SchemaVersion}).Error
	}
	return err
}
