package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"lagerbestand/internal/inventory/domain"
	"lagerbestand/internal/inventory/usecase/command"
	"lagerbestand/internal/inventory/usecase/query"
	"lagerbestand/pkg/logger"
)

// restore payloads are whole-store backups; cap them well above any
// realistic inventory size
const maxRestoreBytes = 32 << 20

var validate = validator.New()

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lager_requests_total",
			Help: "Total number of requests to the inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lager_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	bookingsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lager_bookings_recorded_total",
			Help: "Total number of stock adjustments booked",
		},
	)
)

// InventoryHandler handles HTTP requests for the inventory ledger
type InventoryHandler struct {
	// Command handlers
	createHandler  *command.CreateItemHandler
	updateHandler  *command.UpdateItemHandler
	deleteHandler  *command.DeleteItemHandler
	adjustHandler  *command.RecordAdjustmentHandler
	restoreHandler *command.RestoreBackupHandler

	// Query handlers
	getItemHandler      *query.GetItemHandler
	listItemsHandler    *query.ListItemsHandler
	listBookingsHandler *query.ListBookingsHandler
	exportHandler       *query.ExportBackupHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(items domain.ItemRepository, ledger domain.LedgerRepository, snapshots domain.SnapshotRepository) *InventoryHandler {
	return &InventoryHandler{
		createHandler:  command.NewCreateItemHandler(items),
		updateHandler:  command.NewUpdateItemHandler(items),
		deleteHandler:  command.NewDeleteItemHandler(items),
		adjustHandler:  command.NewRecordAdjustmentHandler(ledger),
		restoreHandler: command.NewRestoreBackupHandler(snapshots),

		getItemHandler:      query.NewGetItemHandler(items),
		listItemsHandler:    query.NewListItemsHandler(items),
		listBookingsHandler: query.NewListBookingsHandler(ledger),
		exportHandler:       query.NewExportBackupHandler(snapshots),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

type itemRequest struct {
	Name     string  `json:"name" validate:"required"`
	SKU      string  `json:"sku"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Stock    float64 `json:"stock"`
}

// CreateItem handles POST /api/items
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	item, err := h.createHandler.Handle(command.CreateItemCommand{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Unit:     req.Unit,
		Stock:    req.Stock,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create item")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

// GetItem handles GET /api/items/{id}
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	item, err := h.getItemHandler.Handle(query.GetItemQuery{ID: vars["id"]})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// ListItems handles GET /api/items
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.listItemsHandler.Handle(query.ListItemsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list items")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// UpdateItem handles PUT /api/items/{id}
func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	item, err := h.updateHandler.Handle(command.UpdateItemCommand{
		ID:       vars["id"],
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Unit:     req.Unit,
		Stock:    req.Stock,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Str("item_id", vars["id"]).Msg("Failed to update item")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// DeleteItem handles DELETE /api/items/{id}
//
// Deletion cascades to the item's bookings. The UI obtains the user's
// confirmation before calling; the core does not gate on it.
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.deleteHandler.Handle(command.DeleteItemCommand{ID: vars["id"]}); err != nil {
		logger.Logger.Error().Err(err).Str("item_id", vars["id"]).Msg("Failed to delete item")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item deleted successfully",
	})
}

// RecordAdjustment handles POST /api/items/{id}/bookings
func (h *InventoryHandler) RecordAdjustment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Delta  float64 `json:"delta"`
		Reason string  `json:"reason"`
		Note   string  `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	booking, err := h.adjustHandler.Handle(command.RecordAdjustmentCommand{
		ItemID: vars["id"],
		Delta:  req.Delta,
		Reason: req.Reason,
		Note:   req.Note,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Str("item_id", vars["id"]).Msg("Failed to record adjustment")
		respondError(w, err)
		return
	}

	bookingsRecorded.Inc()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Adjustment recorded successfully",
		Data:    booking,
	})
}

// ListItemBookings handles GET /api/items/{id}/bookings
func (h *InventoryHandler) ListItemBookings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookings, err := h.listBookingsHandler.Handle(query.ListBookingsQuery{ItemID: vars["id"]})
	if err != nil {
		logger.Logger.Error().Err(err).Str("item_id", vars["id"]).Msg("Failed to list item bookings")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    bookings,
	})
}

// ListBookings handles GET /api/bookings
func (h *InventoryHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	bookings, err := h.listBookingsHandler.Handle(query.ListBookingsQuery{Limit: limit})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list bookings")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    bookings,
	})
}

// ExportBackup handles GET /api/backup
//
// The snapshot is served pretty-printed, as a download named after the
// export date.
func (h *InventoryHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	snap, err := h.exportHandler.Handle(query.ExportBackupQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to export backup")
		respondError(w, err)
		return
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		respondError(w, err)
		return
	}

	filename := fmt.Sprintf("lagerbestand_backup_%s.json",
		time.UnixMilli(snap.ExportedAt).Format("2006-01-02"))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// RestoreBackup handles POST /api/backup/restore
//
// Restore replaces the whole store. The UI obtains the user's
// confirmation before calling; malformed payloads leave the store
// untouched.
func (h *InventoryHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxRestoreBytes))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Failed to read request body",
		})
		return
	}

	result, err := h.restoreHandler.Handle(command.RestoreBackupCommand{Payload: payload})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to restore backup")
		respondError(w, err)
		return
	}

	if result.DroppedBookings > 0 {
		logger.Logger.Warn().
			Int("dropped_bookings", result.DroppedBookings).
			Msg("Restore dropped bookings referencing missing items")
	}

	logger.Logger.Info().
		Int("items", result.Items).
		Int("bookings", result.Bookings).
		Msg("Store restored from backup")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Backup restored successfully",
		Data:    result,
	})
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/items", h.metricsMiddleware("/api/items", h.ListItems)).Methods("GET")
	router.HandleFunc("/api/items", h.metricsMiddleware("/api/items", h.CreateItem)).Methods("POST")
	router.HandleFunc("/api/items/{id}", h.metricsMiddleware("/api/items/{id}", h.GetItem)).Methods("GET")
	router.HandleFunc("/api/items/{id}", h.metricsMiddleware("/api/items/{id}", h.UpdateItem)).Methods("PUT")
	router.HandleFunc("/api/items/{id}", h.metricsMiddleware("/api/items/{id}", h.DeleteItem)).Methods("DELETE")
	router.HandleFunc("/api/items/{id}/bookings", h.metricsMiddleware("/api/items/{id}/bookings", h.RecordAdjustment)).Methods("POST")
	router.HandleFunc("/api/items/{id}/bookings", h.metricsMiddleware("/api/items/{id}/bookings", h.ListItemBookings)).Methods("GET")
	router.HandleFunc("/api/bookings", h.metricsMiddleware("/api/bookings", h.ListBookings)).Methods("GET")
	router.HandleFunc("/api/backup", h.metricsMiddleware("/api/backup", h.ExportBackup)).Methods("GET")
	router.HandleFunc("/api/backup/restore", h.metricsMiddleware("/api/backup/restore", h.RestoreBackup)).Methods("POST")
}

// RegisterHealthCheck registers health check endpoint
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Inventory service is healthy",
		})
	}).Methods("GET")
}

// respondError maps domain errors to HTTP status codes
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrZeroDelta),
		errors.Is(err, domain.ErrMalformedBackup):
		status = http.StatusBadRequest
	}

	respondJSON(w, status, Response{
		Success: false,
		Error:   err.Error(),
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
