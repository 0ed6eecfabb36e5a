package item

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

const (
	// maxNameLength is the maximum number of characters allowed in an item name.
	maxNameLength = 200
	// maxDescriptionLength is the maximum number of characters allowed in an item description.
	maxDescriptionLength = 1000
	// maxCategoryLength is the maximum number of characters allowed in an item category.
	maxCategoryLength = 100
)

// Domain errors for item operations.
var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrItemIsNotActive is returned when a stock operation is attempted on a
	// deactivated item.
	ErrItemIsNotActive = errs.NewBusinessRuleError("item is not active")
)

// Item represents a sellable product in the catalog. It is an aggregate root
// that owns the item's identity, catalog attributes and stock level, and
// records domain events for every state change.
//
// Key responsibilities:
//   - Holding catalog attributes (SKU, name, description, price, category)
//   - Guarding stock transitions through the StockLevel value object
//   - Tracking an integer version for optimistic concurrency control
//   - Buffering domain events until they are pulled after persistence
//
// Business rules:
//   - Stock operations are rejected while the item is inactive
//   - Every effective mutation stamps updatedAt and increments the version
//   - No-op updates (identical attributes, repeated activate/deactivate)
//     change nothing and raise no event
//
// Example usage:
//
//	sku, _ := item.NewSKU("PROD-001")
//	price, _ := kernel.NewPriceFromFloat(25.99, "")
//	it, err := item.NewItem(kernel.NewUUID(), sku, "Wireless Mouse", "", price, "Electronics", 100)
//	if err != nil {
//	    return err
//	}
//	if err := it.ReserveStock(30); err != nil {
//	    return err
//	}
type Item struct {
	// id uniquely identifies the item
	id kernel.UUID
	// sku is the globally unique stock keeping unit code
	sku SKU
	// name is the display name of the item
	name string
	// description is the optional long-form description
	description string
	// price is the catalog price with its currency
	price kernel.Price
	// stockLevel partitions physical stock into available and reserved
	stockLevel StockLevel
	// category groups the item in the catalog
	category string
	// isActive marks whether the item accepts stock operations
	isActive bool
	// createdAt is when the item entered the catalog
	createdAt time.Time
	// updatedAt is when the item last changed
	updatedAt time.Time
	// version is incremented on every effective mutation
	version int
	// loadedVersion is the version read from storage, used for conflict detection
	loadedVersion int
	// events buffers domain events until pulled after persistence
	events []kernel.DomainEvent
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a new Item with the specified attributes.
// This is the only way to create a valid Item instance.
//
// The item starts active, with the initial stock fully available and nothing
// reserved, and with an ItemCreated event buffered.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - sku: Stock keeping unit code (must be constructed via NewSKU)
//   - name: Display name (non-empty, ≤200 chars)
//   - description: Optional long-form description (≤1000 chars)
//   - price: Catalog price (must be constructed, amount ≥ 0)
//   - category: Catalog category (non-empty, ≤100 chars)
//   - initialStock: Starting available quantity (must be ≥ 0)
//
// Returns:
//   - *Item: A fully initialized item ready for operations
//   - error: Aggregated validation errors, if any
func NewItem(
	id kernel.UUID,
	sku SKU,
	name string,
	description string,
	price kernel.Price,
	category string,
	initialStock int,
) (*Item, error) {
	now := time.Now().UTC()
	it := &Item{
		isActive:  true,
		createdAt: now,
		updatedAt: now,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	stockLevel, err := NewStockLevel(initialStock, 0)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		it.setID(id),
		it.setSKU(sku),
		it.setName(name),
		it.setDescription(description),
		it.setPrice(price),
		it.setCategory(category),
		it.setStockLevel(stockLevel),
	); err != nil {
		return nil, err
	}

	it.raise(ItemCreated{ItemID: it.id.String(), SKU: it.sku.Value(), Name: it.name})
	return it, nil
}

// RestoreItem reconstructs an Item aggregate from persistent storage.
// Unlike NewItem which creates fresh active items, this constructor restores
// an item to its previously persisted state, including its stock level,
// activity flag and concurrency version. No event is raised.
//
// The loaded version is captured for optimistic concurrency control: the
// repository compares it against the stored row on update and reports a
// conflict when another transaction has moved the item forward in between.
//
// Parameters:
//   - id: Unique identifier for the item
//   - sku: Stock keeping unit code
//   - name: Display name
//   - description: Long-form description
//   - price: Catalog price
//   - stockLevel: Persisted stock partitioning
//   - category: Catalog category
//   - isActive: Whether the item accepts stock operations
//   - createdAt: When the item entered the catalog
//   - updatedAt: When the item last changed
//   - version: Persisted concurrency version (must be ≥ 1)
//
// Returns:
//   - *Item: Restored item aggregate
//   - error: Aggregated validation errors, if any
func RestoreItem(
	id kernel.UUID,
	sku SKU,
	name string,
	description string,
	price kernel.Price,
	stockLevel StockLevel,
	category string,
	isActive bool,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Item, error) {
	it := &Item{
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setSKU(sku),
		it.setName(name),
		it.setDescription(description),
		it.setPrice(price),
		it.setCategory(category),
		it.setStockLevel(stockLevel),
		it.setVersion(version),
	); err != nil {
		return nil, err
	}

	it.loadedVersion = version
	return it, nil
}

// IsEqual compares two items for equality based on their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// Validate checks if the Item was properly constructed using the NewItem or
// RestoreItem constructor. The zero value of Item is invalid.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the unique identifier of the item.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the stock keeping unit code of the item.
func (i *Item) SKU() SKU {
	return i.sku
}

// Name returns the display name of the item.
func (i *Item) Name() string {
	return i.name
}

// Description returns the long-form description of the item.
func (i *Item) Description() string {
	return i.description
}

// Price returns the catalog price of the item.
func (i *Item) Price() kernel.Price {
	return i.price
}

// StockLevel returns the current stock partitioning of the item.
func (i *Item) StockLevel() StockLevel {
	return i.stockLevel
}

// Category returns the catalog category of the item.
func (i *Item) Category() string {
	return i.category
}

// IsActive reports whether the item accepts stock operations.
func (i *Item) IsActive() bool {
	return i.isActive
}

// CreatedAt returns when the item entered the catalog.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns when the item last changed.
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// Version returns the current concurrency version of the item.
// It is incremented on every effective mutation.
func (i *Item) Version() int {
	return i.version
}

// LoadedVersion returns the concurrency version the item carried when it was
// loaded from storage. Repositories use it to detect concurrent updates.
func (i *Item) LoadedVersion() int {
	return i.loadedVersion
}

// Events returns a copy of the buffered domain events without draining them.
func (i *Item) Events() []kernel.DomainEvent {
	out := make([]kernel.DomainEvent, len(i.events))
	copy(out, i.events)
	return out
}

// PullEvents drains the buffered domain events and returns them.
// Subsequent calls return an empty slice until new events are raised.
// It is called once per unit of work, after the item has been persisted.
func (i *Item) PullEvents() []kernel.DomainEvent {
	out := i.events
	i.events = nil
	return out
}

// ReserveStock moves quantity from the available portion to the reserved
// portion and buffers a StockReserved event.
//
// Business rules enforced:
//   - The item must be active
//   - Quantity must be positive and not exceed the available portion
//
// On any violation the item is left unchanged and no event is raised.
func (i *Item) ReserveStock(quantity int) error {
	if err := i.Validate(); err != nil {
		return err
	}

	if !i.isActive {
		return ErrItemIsNotActive
	}

	stockLevel, err := i.stockLevel.Reserve(quantity)
	if err != nil {
		return err
	}

	i.stockLevel = stockLevel
	i.touch()
	i.raise(StockReserved{ItemID: i.id.String(), SKU: i.sku.Value(), Quantity: quantity})
	return nil
}

// ReleaseStock moves quantity from the reserved portion back to the available
// portion and buffers a StockReleased event.
//
// Business rules enforced:
//   - The item must be active
//   - Quantity must be positive and not exceed the reserved portion
//
// On any violation the item is left unchanged and no event is raised.
func (i *Item) ReleaseStock(quantity int) error {
	if err := i.Validate(); err != nil {
		return err
	}

	if !i.isActive {
		return ErrItemIsNotActive
	}

	stockLevel, err := i.stockLevel.Release(quantity)
	if err != nil {
		return err
	}

	i.stockLevel = stockLevel
	i.touch()
	i.raise(StockReleased{ItemID: i.id.String(), SKU: i.sku.Value(), Quantity: quantity})
	return nil
}

// CommitStock removes quantity from the reserved portion, recording that the
// stock physically left the warehouse, and buffers a StockCommitted event.
// The available portion is unchanged.
//
// Business rules enforced:
//   - The item must be active
//   - Quantity must be positive and not exceed the reserved portion
//
// On any violation the item is left unchanged and no event is raised.
func (i *Item) CommitStock(quantity int) error {
	if err := i.Validate(); err != nil {
		return err
	}

	if !i.isActive {
		return ErrItemIsNotActive
	}

	stockLevel, err := i.stockLevel.Commit(quantity)
	if err != nil {
		return err
	}

	i.stockLevel = stockLevel
	i.touch()
	i.raise(StockCommitted{ItemID: i.id.String(), SKU: i.sku.Value(), Quantity: quantity})
	return nil
}

// AdjustStock overwrites the available portion after a manual inventory
// recount and buffers a StockAdjusted event carrying the old and new values.
// The reserved portion is unchanged.
//
// Business rules enforced:
//   - The item must be active
//   - The new available quantity must be non-negative
//
// On any violation the item is left unchanged and no event is raised.
func (i *Item) AdjustStock(newAvailable int) error {
	if err := i.Validate(); err != nil {
		return err
	}

	if !i.isActive {
		return ErrItemIsNotActive
	}

	previousAvailable := i.stockLevel.Available()
	stockLevel, err := i.stockLevel.Adjust(newAvailable)
	if err != nil {
		return err
	}

	i.stockLevel = stockLevel
	i.touch()
	i.raise(StockAdjusted{
		ItemID:            i.id.String(),
		SKU:               i.sku.Value(),
		PreviousAvailable: previousAvailable,
		NewAvailable:      newAvailable,
	})
	return nil
}

// Update replaces the item's catalog attributes with the given values.
//
// All attributes are validated before any of them is applied, so a rejected
// update leaves the item unchanged. When every value equals the current state
// the call is a silent no-op: nothing changes, the version stays put and no
// event is raised. Otherwise all attributes are applied together, the version
// is incremented and an ItemUpdated event is buffered.
//
// Parameters:
//   - name: New display name (non-empty, ≤200 chars)
//   - description: New description (≤1000 chars)
//   - price: New catalog price (must be constructed)
//   - category: New category (non-empty, ≤100 chars)
func (i *Item) Update(name string, description string, price kernel.Price, category string) error {
	if err := i.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		validateName(name),
		validateDescription(description),
		price.Validate(),
		validateCategory(category),
	); err != nil {
		return err
	}

	if i.name == name && i.description == description && i.price.IsEqual(price) && i.category == category {
		return nil
	}

	i.name = name
	i.description = description
	i.price = price
	i.category = category
	i.touch()
	i.raise(ItemUpdated{ItemID: i.id.String(), SKU: i.sku.Value()})
	return nil
}

// Activate switches the item back on so it accepts stock operations again.
// Activating an already active item is a silent no-op.
func (i *Item) Activate() error {
	if err := i.Validate(); err != nil {
		return err
	}

	if i.isActive {
		return nil
	}

	i.isActive = true
	i.touch()
	i.raise(ItemActivated{ItemID: i.id.String(), SKU: i.sku.Value()})
	return nil
}

// Deactivate switches the item off. Deactivated items reject all stock
// operations until activated again. Deactivating an already inactive item
// is a silent no-op.
func (i *Item) Deactivate() error {
	if err := i.Validate(); err != nil {
		return err
	}

	if !i.isActive {
		return nil
	}

	i.isActive = false
	i.touch()
	i.raise(ItemDeactivated{ItemID: i.id.String(), SKU: i.sku.Value()})
	return nil
}

// touch stamps the modification time and advances the concurrency version.
// Called exactly once per effective mutation.
func (i *Item) touch() {
	i.updatedAt = time.Now().UTC()
	i.version++
}

// raise appends a domain event to the buffer.
func (i *Item) raise(event kernel.DomainEvent) {
	i.events = append(i.events, event)
}

// setID sets the item's unique identifier with validation.
// This is an internal setter used during construction.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	i.id = id
	return nil
}

// setSKU sets the item's stock keeping unit code with validation.
// This is an internal setter used during construction.
func (i *Item) setSKU(sku SKU) error {
	if err := sku.Validate(); err != nil {
		return err
	}

	i.sku = sku
	return nil
}

// setName sets the item's display name with validation.
// This is an internal setter used during construction.
func (i *Item) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	i.name = name
	return nil
}

// setDescription sets the item's description with validation.
// This is an internal setter used during construction.
func (i *Item) setDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}

	i.description = description
	return nil
}

// setPrice sets the item's catalog price with validation.
// This is an internal setter used during construction.
func (i *Item) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	i.price = price
	return nil
}

// setCategory sets the item's catalog category with validation.
// This is an internal setter used during construction.
func (i *Item) setCategory(category string) error {
	if err := validateCategory(category); err != nil {
		return err
	}

	i.category = category
	return nil
}

// setStockLevel sets the item's stock partitioning with validation.
// This is an internal setter used during construction.
func (i *Item) setStockLevel(stockLevel StockLevel) error {
	if err := stockLevel.Validate(); err != nil {
		return err
	}

	i.stockLevel = stockLevel
	return nil
}

// setVersion sets the persisted concurrency version.
// Used during restoration only; new items always start at version 1.
func (i *Item) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"version is invalid",
			fmt.Errorf("%d is not greater than 0", version),
		)
	}

	i.version = version
	return nil
}

// validateName rejects empty or overlong item names.
func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name", name, 1, maxNameLength)
	}
	return nil
}

// validateDescription rejects overlong item descriptions.
func validateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description", description, 0, maxDescriptionLength)
	}
	return nil
}

// validateCategory rejects empty or overlong item categories.
func validateCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	if len(category) > maxCategoryLength {
		return errs.NewValueIsOutOfRangeError("category", category, 1, maxCategoryLength)
	}
	return nil
}
