// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by customer and lifecycle status.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID     string          `gorm:"type:varchar(64);not null;index"`
	OrderDate      time.Time       `gorm:"not null;index"`
	Status         int             `gorm:"type:int;not null;index"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TrackingNumber *string         `gorm:"type:varchar(100)"`
	Items          []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime:false"`
	Version        int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order lines.
// Links to the owning order via foreign key and optionally references the
// item aggregate backing the line.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID string          `gorm:"type:varchar(64);not null"`
	ItemID    *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all aggregate entities including order lines and their captured prices.
func fromDomain(order *order.Order) OrderDTO {
	orderID := order.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(order.Items()))

	for _, line := range order.Items() {
		var itemID *uuid.UUID
		if line.ItemID() != nil {
			raw := line.ItemID().Bytes()
			itemID = &raw
		}

		items = append(items, OrderItemDTO{
			ID:        line.ID().Bytes(),
			OrderID:   orderID,
			ProductID: line.ProductID(),
			ItemID:    itemID,
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		CustomerID:     order.CustomerID(),
		OrderDate:      order.OrderDate(),
		Status:         int(order.Status()),
		TotalAmount:    order.TotalAmount().Amount(),
		TrackingNumber: order.TrackingNumber(),
		Items:          items,
		CreatedAt:      order.CreatedAt(),
		UpdatedAt:      order.UpdatedAt(),
		Version:        order.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all order lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	// Convert order line DTOs to domain entities
	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, lineDto := range dto.Items {
		line, lineErr := orderItemToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, line)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		dto.OrderDate,
		order.Status(dto.Status),
		items,
		dto.TrackingNumber,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

// orderItemToDomain converts an order line DTO to a domain entity.
// Uses NewOrderItem to reconstruct the line with its persisted state.
func orderItemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var itemID *kernel.UUID
	if dto.ItemID != nil {
		iID, itemErr := kernel.UUIDFromBytes((*dto.ItemID)[:])
		if itemErr != nil {
			return nil, itemErr
		}
		itemID = &iID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.NewOrderItem(id, dto.ProductID, itemID, dto.Quantity, unitPrice)
}
