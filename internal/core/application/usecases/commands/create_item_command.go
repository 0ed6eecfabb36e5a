package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
	ErrSKUIsRequired         = errors.New("sku is required")
	ErrNameIsRequired        = errors.New("name is required")
	ErrCategoryIsRequired    = errors.New("category is required")
	ErrPriceIsInvalid        = errors.New("price must be greater than 0")
	ErrInitialStockIsInvalid = errors.New("initial stock must not be negative")
)

// CreateItemCommand represents a request to register a new catalog item.
// Encapsulates the item's identity, catalog attributes, price, and opening stock.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewCreateItemCommand(itemID, "PROD-001", "Wireless Mouse", "", 25.99, "", "Electronics", 100)
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewCreateItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create item: %w", err)
//	}
//	fmt.Printf("Item %s registered with 100 units in stock", itemID)
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	sku          string
	name         string
	description  string
	price        float64
	currency     string
	category     string
	initialStock int

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to register a new catalog item.
// Validates identity, required attributes, a positive price, and a
// non-negative opening stock. SKU format, length limits, and currency
// defaulting are handled by the domain layer.
func NewCreateItemCommand(
	itemID kernel.UUID,
	sku string,
	name string,
	description string,
	price float64,
	currency string,
	category string,
	initialStock int,
) (CreateItemCommand, error) {
	command := CreateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setSKU(sku),
		command.setName(name),
		command.setPrice(price),
		command.setCategory(category),
		command.setInitialStock(initialStock),
	); err != nil {
		return CreateItemCommand{}, err
	}

	command.description = description
	command.currency = currency
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateItemCommandIsNotConstructed if validation fails.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// SKU returns the requested stock keeping unit code.
func (c CreateItemCommand) SKU() string {
	return c.sku
}

// Name returns the display name of the item.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Description returns the optional item description.
func (c CreateItemCommand) Description() string {
	return c.description
}

// Price returns the unit price amount.
func (c CreateItemCommand) Price() float64 {
	return c.price
}

// Currency returns the price currency code, possibly empty for the default.
func (c CreateItemCommand) Currency() string {
	return c.currency
}

// Category returns the catalog category of the item.
func (c CreateItemCommand) Category() string {
	return c.category
}

// InitialStock returns the opening available stock count.
func (c CreateItemCommand) InitialStock() int {
	return c.initialStock
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *CreateItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateItemCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *CreateItemCommand) setInitialStock(initialStock int) error {
	if initialStock < 0 {
		return ErrInitialStockIsInvalid
	}

	c.initialStock = initialStock
	return nil
}
