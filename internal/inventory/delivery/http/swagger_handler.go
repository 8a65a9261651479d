package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the inventory ledger
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateItem godoc
// @Summary Create new item
// @Description Create a new inventory item; the name is trimmed and must not be empty
// @Tags Items
// @Accept json
// @Produce json
// @Param request body object{name=string,sku=string,category=string,unit=string,stock=number} true "Item data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/items [post]
func (h *InventoryHandler) CreateItemDoc() {}

// ListItems godoc
// @Summary List all items
// @Description Get the full item collection in storage order
// @Tags Items
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/items [get]
func (h *InventoryHandler) ListItemsDoc() {}

// GetItem godoc
// @Summary Get item by ID
// @Description Get a single item by its ID
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/items/{id} [get]
func (h *InventoryHandler) GetItemDoc() {}

// UpdateItem godoc
// @Summary Update an item
// @Description Overwrite an item's mutable fields; id and createdAt never change
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body object{name=string,sku=string,category=string,unit=string,stock=number} true "Item data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/items/{id} [put]
func (h *InventoryHandler) UpdateItemDoc() {}

// DeleteItem godoc
// @Summary Delete an item
// @Description Delete an item and cascade to its bookings
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/items/{id} [delete]
func (h *InventoryHandler) DeleteItemDoc() {}

// RecordAdjustment godoc
// @Summary Record a stock adjustment
// @Description Atomically apply a non-zero delta to the item's stock and append a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body object{delta=number,reason=string,note=string} true "Adjustment data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/items/{id}/bookings [post]
func (h *InventoryHandler) RecordAdjustmentDoc() {}

// ListBookings godoc
// @Summary List recent bookings
// @Description Get the most recent bookings, newest first
// @Tags Bookings
// @Produce json
// @Param limit query int false "Limit (default 50, max 500)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/bookings [get]
func (h *InventoryHandler) ListBookingsDoc() {}

// ExportBackup godoc
// @Summary Export a backup
// @Description Download the entire store as a versioned, pretty-printed JSON document
// @Tags Backup
// @Produce json
// @Success 200 {object} object{version=int,exportedAt=int,items=array,txs=array}
// @Router /api/backup [get]
func (h *InventoryHandler) ExportBackupDoc() {}

// RestoreBackup godoc
// @Summary Restore a backup
// @Description Destructively replace the entire store with the uploaded document
// @Tags Backup
// @Accept json
// @Produce json
// @Param request body object{version=int,items=array,txs=array} true "Backup document"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/backup/restore [post]
func (h *InventoryHandler) RestoreBackupDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *InventoryHandler) HealthCheckDoc() {}
