package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"lagerbestand/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormLedgerRepositoryWithTracing wraps GormLedgerRepository with tracing
type GormLedgerRepositoryWithTracing struct {
	*GormLedgerRepository
}

// NewGormLedgerRepositoryWithTracing creates a new ledger repository with tracing
func NewGormLedgerRepositoryWithTracing(db *gorm.DB) *GormLedgerRepositoryWithTracing {
	return &GormLedgerRepositoryWithTracing{
		GormLedgerRepository: NewGormLedgerRepository(db),
	}
}

// RecordAdjustment with tracing
func (r *GormLedgerRepositoryWithTracing) RecordAdjustmentWithContext(ctx context.Context, itemID string, delta float64, reason, note string) (*domain.Booking, error) {
	_, span := tracer.Start(ctx, "repository.RecordAdjustment",
		trace.WithAttributes(
			attribute.String("booking.item_id", itemID),
			attribute.Float64("booking.delta", delta),
			attribute.String("booking.reason", reason),
		),
	)
	defer span.End()

	booking, err := r.GormLedgerRepository.RecordAdjustment(itemID, delta, reason, note)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("booking.id", booking.ID))
	return booking, nil
}

// FindRecent with tracing
func (r *GormLedgerRepositoryWithTracing) FindRecentWithContext(ctx context.Context, limit int) ([]domain.Booking, error) {
	_, span := tracer.Start(ctx, "repository.FindRecent",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
		),
	)
	defer span.End()

	bookings, err := r.GormLedgerRepository.FindRecent(limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(bookings)))
	return bookings, nil
}

// DeleteForItem with tracing
func (r *GormLedgerRepositoryWithTracing) DeleteForItemWithContext(ctx context.Context, itemID string) error {
	_, span := tracer.Start(ctx, "repository.DeleteForItem",
		trace.WithAttributes(
			attribute.String("booking.item_id", itemID),
		),
	)
	defer span.End()

	if err := r.GormLedgerRepository.DeleteForItem(itemID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// GormItemRepositoryWithTracing wraps GormItemRepository with tracing
type GormItemRepositoryWithTracing struct {
	*GormItemRepository
}

// NewGormItemRepositoryWithTracing creates a new item repository with tracing
func NewGormItemRepositoryWithTracing(db *gorm.DB) *GormItemRepositoryWithTracing {
	return &GormItemRepositoryWithTracing{
		GormItemRepository: NewGormItemRepository(db),
	}
}

// FindByID with tracing
func (r *GormItemRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id string) (*domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("item.id", id),
		),
	)
	defer span.End()

	item, err := r.GormItemRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("item.name", item.Name),
		attribute.Float64("item.stock", item.Stock),
	)
	return item, nil
}

// Delete with tracing
func (r *GormItemRepositoryWithTracing) DeleteWithContext(ctx context.Context, id string) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.String("item.id", id),
		),
	)
	defer span.End()

	if err := r.GormItemRepository.Delete(id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
