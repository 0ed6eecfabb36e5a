// Package itemrepo provides data transfer objects and mapping functions for item persistence.
// This package implements the repository pattern for the item domain aggregate, handling
// the conversion between domain entities and database representations.
package itemrepo

import (
	"time"

	"commerce/internal/core/domain/model/item"
	"commerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting item aggregates.
// Maps item domain entities to a relational table with a unique index on the
// SKU and a version column for optimistic concurrency control.
type ItemDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU            string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text"`
	PriceAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PriceCurrency  string          `gorm:"type:varchar(3);not null"`
	Category       string          `gorm:"type:varchar(100);not null;index"`
	StockAvailable int             `gorm:"type:int;not null"`
	StockReserved  int             `gorm:"type:int;not null"`
	IsActive       bool            `gorm:"not null;index"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime:false"`
	Version        int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item domain aggregate to its database representation.
// Maps all item attributes including the stock partitioning and concurrency version.
func fromDomain(item *item.Item) ItemDTO {
	return ItemDTO{
		ID:             item.ID().Bytes(),
		SKU:            item.SKU().Value(),
		Name:           item.Name(),
		Description:    item.Description(),
		PriceAmount:    item.Price().Amount(),
		PriceCurrency:  item.Price().Currency(),
		Category:       item.Category(),
		StockAvailable: item.StockLevel().Available(),
		StockReserved:  item.StockLevel().Reserved(),
		IsActive:       item.IsActive(),
		CreatedAt:      item.CreatedAt(),
		UpdatedAt:      item.UpdatedAt(),
		Version:        item.Version(),
	}
}

// toDomain converts a database DTO to an item domain aggregate.
// Reconstructs the complete aggregate including stock level and version using RestoreItem.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sku, err := item.NewSKU(dto.SKU)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	stockLevel, err := item.NewStockLevel(dto.StockAvailable, dto.StockReserved)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(
		id,
		sku,
		dto.Name,
		dto.Description,
		price,
		stockLevel,
		dto.Category,
		dto.IsActive,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
