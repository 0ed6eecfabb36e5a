package itemrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/item"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item to the database.
// A unique index on the SKU column rejects duplicates; the violation is
// reported as a business rule error so callers can map it uniformly.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewBusinessRuleErrorWithCause("sku must be unique", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing item to the database using optimistic locking.
// The row is matched on both id and the version the aggregate was loaded
// with; zero affected rows means either the item vanished or another
// transaction has moved it forward in the meantime.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Select("*") to include zero-valued columns like IsActive in the update
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.LoadedVersion()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("item", aggregate.ID().String())
		}
		return errs.NewConcurrencyConflictError("item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySKU retrieves an item by its stock keeping unit.
// Stock operations address items by SKU because upstream systems know the
// unit code long before they learn the catalog identifier.
//
// Example:
//
//	sku, err := item.NewSKU("PROD-001")
//	if err != nil {
//		return err
//	}
//	found, err := repo.GetBySKU(ctx, sku)
//	if err != nil {
//		return fmt.Errorf("failed to get item by sku: %w", err)
//	}
//	fmt.Printf("Available units: %d\n", found.StockLevel().Available())
func (r *GormItemRepository) GetBySKU(ctx context.Context, sku item.SKU) (*item.Item, error) {
	if err := sku.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sku", sku.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}
