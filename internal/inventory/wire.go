//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"lagerbestand/internal/inventory/delivery/http"
	"lagerbestand/internal/inventory/domain"
	"lagerbestand/internal/inventory/repository"
)

// ProvideItemRepository provides the item repository
func ProvideItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewGormItemRepository(db)
}

// ProvideLedgerRepository provides the ledger repository
func ProvideLedgerRepository(db *gorm.DB) domain.LedgerRepository {
	return repository.NewGormLedgerRepository(db)
}

// ProvideSnapshotRepository provides the snapshot repository
func ProvideSnapshotRepository(db *gorm.DB) domain.SnapshotRepository {
	return repository.NewGormSnapshotRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
	ProvideLedgerRepository,
	ProvideSnapshotRepository,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
