package item

// Domain event names for the item aggregate. Names are used as the event-type
// header and drive topic routing in the publishing adapter.
const (
	ItemCreatedEventName     = "item.created"
	ItemUpdatedEventName     = "item.updated"
	ItemActivatedEventName   = "item.activated"
	ItemDeactivatedEventName = "item.deactivated"
	StockReservedEventName   = "stock.reserved"
	StockReleasedEventName   = "stock.released"
	StockCommittedEventName  = "stock.committed"
	StockAdjustedEventName   = "stock.adjusted"
)

// ItemCreated is raised once when a new item enters the catalog.
type ItemCreated struct {
	ItemID string `json:"itemId"`
	SKU    string `json:"sku"`
	Name   string `json:"name"`
}

// EventName returns the event type identifier.
func (e ItemCreated) EventName() string { return ItemCreatedEventName }

// AggregateID returns the ID of the item that raised the event.
func (e ItemCreated) AggregateID() string { return e.ItemID }

// ItemUpdated is raised when the item's catalog attributes actually change.
// A no-op update raises nothing.
type ItemUpdated struct {
	ItemID string `json:"itemId"`
	SKU    string `json:"sku"`
}

// EventName returns the event type identifier.
func (e ItemUpdated) EventName() string { return ItemUpdatedEventName }

// AggregateID returns the ID of the item that raised the event.
func (e ItemUpdated) AggregateID() string { return e.ItemID }

// ItemActivated is raised when an inactive item is switched back on.
// Activating an already active item raises nothing.
type ItemActivated struct {
	ItemID string `json:"itemId"`
	SKU    string `json:"sku"`
}

// EventName returns the event type identifier.
func (e ItemActivated) EventName() string { return ItemActivatedEventName }

// AggregateID returns the ID of the item that raised the event.
func (e ItemActivated) AggregateID() string { return e.ItemID }

// ItemDeactivated is raised when an active item is switched off.
// Deactivating an already inactive item raises nothing.
type ItemDeactivated struct {
	ItemID string `json:"itemId"`
	SKU    string `json:"sku"`
}

// EventName returns the event type identifier.
func (e ItemDeactivated) EventName() string { return ItemDeactivatedEventName }

// AggregateID returns the ID of the item that raised the event.
func (e ItemDeactivated) AggregateID() string { return e.ItemID }

// StockReserved is raised when quantity moves from available to reserved.
type StockReserved struct {
	ItemID   string `json:"itemId"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// EventName returns the event type identifier.
func (e StockReserved) EventName() string { return StockReservedEventName }

// AggregateID returns the ID of the item that raised the event.
func (e StockReserved) AggregateID() string { return e.ItemID }

// StockReleased is raised when a reservation is undone and quantity moves
// from reserved back to available.
type StockReleased struct {
	ItemID   string `json:"itemId"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// EventName returns the event type identifier.
func (e StockReleased) EventName() string { return StockReleasedEventName }

// AggregateID returns the ID of the item that raised the event.
func (e StockReleased) AggregateID() string { return e.ItemID }

// StockCommitted is raised when reserved quantity leaves the warehouse.
type StockCommitted struct {
	ItemID   string `json:"itemId"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// EventName returns the event type identifier.
func (e StockCommitted) EventName() string { return StockCommittedEventName }

// AggregateID returns the ID of the item that raised the event.
func (e StockCommitted) AggregateID() string { return e.ItemID }

// StockAdjusted is raised when the available quantity is overwritten after a
// manual inventory recount.
type StockAdjusted struct {
	ItemID            string `json:"itemId"`
	SKU               string `json:"sku"`
	PreviousAvailable int    `json:"previousAvailable"`
	NewAvailable      int    `json:"newAvailable"`
}

// EventName returns the event type identifier.
func (e StockAdjusted) EventName() string { return StockAdjustedEventName }

// AggregateID returns the ID of the item that raised the event.
func (e StockAdjusted) AggregateID() string { return e.ItemID }
