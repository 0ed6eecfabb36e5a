package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to change an item's catalog attributes.
// The SKU and stock level are not touched by this command; submitting values
// identical to the stored ones is a silent no-op.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	description string
	price       float64
	currency    string
	category    string

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to change an item's catalog attributes.
// Validates identity, required attributes, and a positive price. Length limits
// and currency defaulting are handled by the domain layer.
func NewUpdateItemCommand(
	itemID kernel.UUID,
	name string,
	description string,
	price float64,
	currency string,
	category string,
) (UpdateItemCommand, error) {
	command := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setItemID(itemID),
		command.setName(name),
		command.setPrice(price),
		command.setCategory(category),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	command.description = description
	command.currency = currency
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateItemCommandIsNotConstructed if validation fails.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier of the item to change.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name of the item.
func (c UpdateItemCommand) Name() string {
	return c.name
}

// Description returns the new item description.
func (c UpdateItemCommand) Description() string {
	return c.description
}

// Price returns the new unit price amount.
func (c UpdateItemCommand) Price() float64 {
	return c.price
}

// Currency returns the price currency code, possibly empty for the default.
func (c UpdateItemCommand) Currency() string {
	return c.currency
}

// Category returns the new catalog category of the item.
func (c UpdateItemCommand) Category() string {
	return c.category
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *UpdateItemCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}
