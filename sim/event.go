package sim

// EventKind tags the three event types driving the simulation.
type EventKind string

const (
	EventKindDelivery      EventKind = "Delivery"
	EventKindDemand        EventKind = "Demand"
	EventKindReplenishment EventKind = "Replenishment"
)

// EventKindPriority orders simultaneous events. Lower values are processed
// first: deliveries land before the same tick's demand is evaluated, and
// replenishment orders are placed only after all of the tick's demand has
// settled, avoiding spurious same-tick stockouts.
var EventKindPriority = map[EventKind]int{
	EventKindDelivery:      1,
	EventKindDemand:        2,
	EventKindReplenishment: 3,
}

// Event is a timestamped unit of work executed by the Simulator. Events are
// immutable once scheduled and consumed at most once.
type Event interface {
	Timestamp() int64
	EventID() uint64
	Kind() EventKind
	Execute(s *Simulator)
}

// BaseEvent provides the common event fields. The event ID is a per-simulator
// monotonic counter so equal-time equal-kind events pop in FIFO order.
type BaseEvent struct {
	time int64
	id   uint64
	kind EventKind
}

func newBaseEvent(time int64, kind EventKind, id uint64) BaseEvent {
	return BaseEvent{time: time, id: id, kind: kind}
}

func (e *BaseEvent) Timestamp() int64 { return e.time }
func (e *BaseEvent) EventID() uint64  { return e.id }
func (e *BaseEvent) Kind() EventKind  { return e.kind }

// DemandEvent consumes inventory from one SKU instance.
type DemandEvent struct {
	BaseEvent
	LocationID string
	SKUID      string
	Quantity   float64
}

func (e *DemandEvent) Execute(s *Simulator) { s.handleDemand(e) }

// ReplenishmentEvent places a supplier order for one SKU instance; processing
// it schedules the matching delivery one lead time later.
type ReplenishmentEvent struct {
	BaseEvent
	LocationID string
	SKUID      string
	Quantity   float64
}

func (e *ReplenishmentEvent) Execute(s *Simulator) { s.handleReplenishment(e) }

// DeliveryEvent lands a previously registered pending shipment.
type DeliveryEvent struct {
	BaseEvent
	LocationID string
	SKUID      string
	Quantity   float64
	Source     string
}

func (e *DeliveryEvent) Execute(s *Simulator) { s.handleDelivery(e) }
