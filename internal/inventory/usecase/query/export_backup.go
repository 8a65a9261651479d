package query

import (
	"fmt"

	"lagerbestand/internal/inventory/domain"
)

// ExportBackupQuery represents the query to export the whole store
type ExportBackupQuery struct{}

// ExportBackupHandler handles export backup query
type ExportBackupHandler struct {
	snapshots domain.SnapshotRepository
}

// NewExportBackupHandler creates a new export backup handler
func NewExportBackupHandler(snapshots domain.SnapshotRepository) *ExportBackupHandler {
	return &ExportBackupHandler{snapshots: snapshots}
}

// Handle executes the export backup query. Stored records pass through
// unfiltered; the document carries the schema version and export time.
func (h *ExportBackupHandler) Handle(ExportBackupQuery) (*domain.Snapshot, error) {
	snap, err := h.snapshots.ExportAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export backup: %w", err)
	}
	return snap, nil
}
