package sim

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cedarsim/cedarsim/sim/trace"
)

// skuKey identifies one SKU instance: the same item id appears once per
// location that stocks it.
type skuKey struct {
	locationID string
	skuID      string
}

// Simulator is the discrete-event engine: a deterministic time-ordered event
// queue over a finalized Network. Processing is single-threaded and strictly
// sequential — an event's full effect, including any follow-on scheduling,
// completes before the next event is popped.
type Simulator struct {
	Clock   int64
	Horizon int64
	Metrics *Metrics

	network *Network
	queue   *EventHeap
	policy  ReplenishmentPolicy
	logger  *logrus.Logger
	trace   *trace.RunTrace

	registry map[skuKey]*SKU
	keys     []skuKey // deterministic iteration order for seeding

	nextEventID uint64
}

// NewSimulator creates an engine over a finalized network covering every SKU
// instance in it.
func NewSimulator(net *Network, cfg EngineConfig) (*Simulator, error) {
	return newSimulator(net, cfg, "")
}

// NewSimulatorForSKU creates an engine restricted to the subgraph of a single
// item id (its PAR instances plus the Perpetual counterpart). Different item
// ids share no mutable state, so restricted engines may run concurrently.
func NewSimulatorForSKU(net *Network, cfg EngineConfig, skuID string) (*Simulator, error) {
	return newSimulator(net, cfg, skuID)
}

func newSimulator(net *Network, cfg EngineConfig, onlySKU string) (*Simulator, error) {
	if net == nil {
		return nil, fmt.Errorf("sim: nil network")
	}
	if !net.Finalized() {
		return nil, fmt.Errorf("%w: simulator requires a finalized network", ErrNotFinalized)
	}

	horizon := int64(math.MaxInt64)
	if cfg.HorizonWeeks > 0 {
		horizon = WeekTick(cfg.HorizonWeeks)
	}

	s := &Simulator{
		Horizon:  horizon,
		Metrics:  NewMetrics(),
		network:  net,
		queue:    NewEventHeap(),
		policy:   cfg.policy(),
		logger:   cfg.logger(),
		trace:    cfg.Trace,
		registry: make(map[skuKey]*SKU),
	}

	for _, id := range net.SKUIDs() {
		if onlySKU != "" && id != onlySKU {
			continue
		}
		for _, sku := range net.arena[id] {
			s.registry[skuKey{sku.LocationID(), sku.ID()}] = sku
		}
	}
	s.keys = make([]skuKey, 0, len(s.registry))
	for k := range s.registry {
		s.keys = append(s.keys, k)
	}
	sort.Slice(s.keys, func(i, j int) bool {
		if s.keys[i].skuID != s.keys[j].skuID {
			return s.keys[i].skuID < s.keys[j].skuID
		}
		return s.keys[i].locationID < s.keys[j].locationID
	})

	return s, nil
}

// Network returns the topology this engine runs over.
func (s *Simulator) Network() *Network { return s.network }

// Schedule pushes an event onto the engine's queue.
func (s *Simulator) Schedule(ev Event) {
	s.queue.Schedule(ev)
}

// QueueLen returns the number of events waiting to be processed.
func (s *Simulator) QueueLen() int { return s.queue.Len() }

func (s *Simulator) newEventID() uint64 {
	s.nextEventID++
	return s.nextEventID
}

// NewDemandEvent creates a demand event against one SKU instance.
func (s *Simulator) NewDemandEvent(time int64, locationID, skuID string, qty float64) *DemandEvent {
	return &DemandEvent{
		BaseEvent:  newBaseEvent(time, EventKindDemand, s.newEventID()),
		LocationID: locationID,
		SKUID:      skuID,
		Quantity:   qty,
	}
}

// NewReplenishmentEvent creates a replenishment order event.
func (s *Simulator) NewReplenishmentEvent(time int64, locationID, skuID string, qty float64) *ReplenishmentEvent {
	return &ReplenishmentEvent{
		BaseEvent:  newBaseEvent(time, EventKindReplenishment, s.newEventID()),
		LocationID: locationID,
		SKUID:      skuID,
		Quantity:   qty,
	}
}

// NewDeliveryEvent creates a delivery event.
func (s *Simulator) NewDeliveryEvent(time int64, locationID, skuID string, qty float64, source string) *DeliveryEvent {
	return &DeliveryEvent{
		BaseEvent:  newBaseEvent(time, EventKindDelivery, s.newEventID()),
		LocationID: locationID,
		SKUID:      skuID,
		Quantity:   qty,
		Source:     source,
	}
}

// SeedWeeklyDemand schedules one DemandEvent of quantity = demand rate per
// SKU per simulated week in [window.StartWeek, window.EndWeek). SKUs with a
// zero demand rate are skipped. Seeding order is deterministic.
func (s *Simulator) SeedWeeklyDemand(window DemandWindow) {
	for week := window.StartWeek; week < window.EndWeek; week++ {
		at := WeekTick(week)
		for _, k := range s.keys {
			sku := s.registry[k]
			if sku.DemandRate() <= 0 {
				continue
			}
			s.Schedule(s.NewDemandEvent(at, k.locationID, k.skuID, sku.DemandRate()))
		}
	}
}

// Run drains the event queue: pop the earliest event, advance the clock,
// execute, repeat until the queue empties or the horizon is passed.
func (s *Simulator) Run() {
	for s.queue.Len() > 0 {
		ev := s.queue.PopNext()
		if ev.Timestamp() > s.Horizon {
			break
		}
		if ev.Timestamp() < s.Clock {
			panic(fmt.Sprintf("sim: clock went backwards: %d -> %d (%T)", s.Clock, ev.Timestamp(), ev))
		}
		s.Clock = ev.Timestamp()
		s.logger.Debugf("[tick %07d] executing %s #%d", s.Clock, ev.Kind(), ev.EventID())
		ev.Execute(s)
		s.Metrics.EventsProcessed++
	}
	s.Metrics.SimEndedAt = min(s.Clock, s.Horizon)
	s.logger.Infof("[tick %07d] simulation ended after %d events", s.Clock, s.Metrics.EventsProcessed)
}

func (s *Simulator) lookup(locationID, skuID string) *SKU {
	return s.registry[skuKey{locationID, skuID}]
}

// handleDemand consumes inventory, covers shortfalls by emergency transfer
// from the Perpetual counterpart, and synthesizes a replenishment order when
// an inventory gap remains.
func (s *Simulator) handleDemand(e *DemandEvent) {
	sku := s.lookup(e.LocationID, e.SKUID)
	if sku == nil {
		s.rejectEvent(e, "demand for unknown SKU instance")
		return
	}
	s.Metrics.TotalDemand += e.Quantity

	shortfall := sku.FulfillDemand(e.Quantity)
	if shortfall > 0 {
		s.Metrics.TotalStockouts += shortfall
		if s.trace.Enabled() {
			s.trace.RecordStockout(trace.StockoutRecord{
				SKUID:      e.SKUID,
				LocationID: e.LocationID,
				Clock:      s.Clock,
				Shortfall:  shortfall,
			})
		}
		if perp := sku.Perpetual(); perp != nil {
			granted, deficit := perp.AllocateEmergencySupply(shortfall)
			sku.ReceiveEmergencySupply(granted)
			s.Metrics.TotalEmergencyTransfers += granted
			s.Metrics.HospitalStockouts += deficit
			if s.trace.Enabled() {
				s.trace.RecordTransfer(trace.TransferRecord{
					SKUID:        e.SKUID,
					FromLocation: perp.LocationID(),
					ToLocation:   e.LocationID,
					Clock:        s.Clock,
					Quantity:     granted,
					Deficit:      deficit,
				})
			}
		}
	}

	if sku.LocationType() == LocationPAR && sku.CurrentLevel() < 0 {
		panic(fmt.Sprintf("sim: PAR SKU %s at %s has negative level %f", e.SKUID, e.LocationID, sku.CurrentLevel()))
	}

	// Reorder behavior emerges from demand processing: an inventory gap left
	// after this event becomes a same-tick replenishment order.
	if s.policy.ShouldReorder(sku) {
		if gap := sku.InventoryGap(s.Clock); gap > 0 {
			s.Schedule(s.NewReplenishmentEvent(s.Clock, e.LocationID, e.SKUID, gap))
		}
	}
}

// handleReplenishment places the order: registers a pending shipment on the
// SKU and schedules its delivery one lead time later.
func (s *Simulator) handleReplenishment(e *ReplenishmentEvent) {
	if e.Quantity < 0 {
		panic(fmt.Sprintf("sim: negative order quantity %f for SKU %s", e.Quantity, e.SKUID))
	}
	sku := s.lookup(e.LocationID, e.SKUID)
	if sku == nil {
		s.rejectEvent(e, "replenishment for unknown SKU instance")
		return
	}
	s.Metrics.TotalReplenishmentOrders++

	arriveAt := e.Timestamp() + sku.LeadTimeTicks()
	delivery := s.NewDeliveryEvent(arriveAt, e.LocationID, e.SKUID, e.Quantity, SourceSupplier)
	sku.AddPendingShipment(PendingShipment{
		EventID:  delivery.EventID(),
		Quantity: e.Quantity,
		ArriveAt: arriveAt,
		Source:   SourceSupplier,
	})
	s.Schedule(delivery)
	s.logger.Debugf("order placed for %s at %s: %.2f units arriving at tick %d",
		e.SKUID, e.LocationID, e.Quantity, arriveAt)
}

// handleDelivery lands a pending shipment with an unclamped add — this is how
// a negative Perpetual SKU recovers toward zero.
func (s *Simulator) handleDelivery(e *DeliveryEvent) {
	sku := s.lookup(e.LocationID, e.SKUID)
	if sku == nil {
		s.rejectEvent(e, "delivery for unknown SKU instance")
		return
	}
	shipment, ok := sku.RemovePendingShipment(e.EventID())
	if !ok {
		s.rejectEvent(e, "no matching pending shipment")
		return
	}
	sku.SetInventoryLevel(sku.CurrentLevel() + shipment.Quantity)
	s.Metrics.TotalDeliveries++
}

// rejectEvent surfaces an invalid event as a diagnostic and keeps the run
// alive. Invalid events indicate a scheduling bug, not a domain condition.
func (s *Simulator) rejectEvent(ev Event, reason string) {
	s.Metrics.InvalidEvents++
	s.logger.Warnf("[tick %07d] rejected %s #%d: %s", s.Clock, ev.Kind(), ev.EventID(), reason)
}
