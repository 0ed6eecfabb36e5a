package kernel

// DomainEvent is implemented by every event an aggregate records into its
// buffer. Events are facts about completed state changes; the unit of work
// drains them after a successful commit and hands them to the publisher.
//
// EventName is a stable dotted lowercase identifier ("order.paid",
// "stock.reserved") used for routing and message headers. AggregateID is the
// identifier of the emitting aggregate, used as the partitioning key so all
// events of one aggregate keep their order.
type DomainEvent interface {
	EventName() string
	AggregateID() string
}
