package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SKUState is the derived lifecycle state of a SKU, driven entirely by event
// processing.
type SKUState string

const (
	// SKUNominal means no unfulfilled demand and nothing in flight.
	SKUNominal SKUState = "nominal"
	// SKUStockout means the SKU has unfulfilled demand awaiting emergency
	// supply or delivery.
	SKUStockout SKUState = "stockout"
	// SKUReplenishing means at least one shipment is pending.
	SKUReplenishing SKUState = "replenishing"
)

// Shipment sources recorded on deliveries.
const (
	SourceSupplier  = "external_supplier"
	SourceEmergency = "emergency_transfer"
)

// PendingShipment is an in-flight delivery commitment registered on a SKU.
// EventID ties the record to the DeliveryEvent that will consume it.
type PendingShipment struct {
	EventID  uint64
	Quantity float64
	ArriveAt int64
	Source   string
}

// SKU is a single trackable inventory item type held by one Location. The
// same logical item stocked in several locations is represented by distinct
// SKU instances sharing an id.
//
// PAR SKUs clamp their level at zero and record shortfalls as stockout
// amounts; the Perpetual SKU may go negative when emergency-supplying more
// than it holds (service continuity over local correctness).
type SKU struct {
	observable

	id           string
	locationID   string
	locationType LocationType
	targetLevel  float64
	leadTimeDays float64
	demandRate   float64

	level          float64
	pending        []PendingShipment
	stockoutAmount float64

	totalStockouts          float64
	totalEmergencyTransfers float64

	// Emergency-supply topology, wired by the network builder. Non-owning
	// references into the network's SKU arena.
	connectedPARs []*SKU // Perpetual side: the PAR SKUs it can supply
	perpetual     *SKU   // PAR side: back-reference for emergency lookups
}

// NewSKU creates a SKU instance owned by the given location. Lead time is
// given in days; the fractional-week form used for scheduling is derived.
func NewSKU(id, locationID string, locationType LocationType, targetLevel, leadTimeDays, demandRate float64) *SKU {
	s := &SKU{
		id:           id,
		locationID:   locationID,
		locationType: locationType,
		targetLevel:  targetLevel,
		leadTimeDays: leadTimeDays,
		demandRate:   demandRate,
	}
	logrus.Debugf("created SKU %s in %s (lead time %.2f days = %.3f weeks)",
		id, locationID, leadTimeDays, s.LeadTimeWeeks())
	return s
}

func (s *SKU) ID() string                 { return s.id }
func (s *SKU) LocationID() string         { return s.locationID }
func (s *SKU) LocationType() LocationType { return s.locationType }
func (s *SKU) TargetLevel() float64       { return s.targetLevel }
func (s *SKU) DemandRate() float64        { return s.demandRate }
func (s *SKU) LeadTimeDays() float64      { return s.leadTimeDays }

// LeadTimeWeeks is the lead time as a fractional week count (days / 7).
func (s *SKU) LeadTimeWeeks() float64 { return s.leadTimeDays / 7.0 }

// LeadTimeTicks is the scheduling delay between a replenishment order and
// its delivery.
func (s *SKU) LeadTimeTicks() int64 { return DaysToTicks(s.leadTimeDays) }

// Capacity of a SKU is its target inventory level.
func (s *SKU) Capacity() float64 { return s.targetLevel }

func (s *SKU) CurrentLevel() float64 { return s.level }

// StockoutAmount is the currently unfulfilled demand on this SKU.
func (s *SKU) StockoutAmount() float64 { return s.stockoutAmount }

// TotalStockouts is the cumulative shortfall recorded on this SKU. On the
// Perpetual SKU this counts hospital-level stockouts (deficits incurred while
// emergency-supplying).
func (s *SKU) TotalStockouts() float64 { return s.totalStockouts }

// TotalEmergencyTransfers is the cumulative quantity moved through emergency
// supply involving this SKU.
func (s *SKU) TotalEmergencyTransfers() float64 { return s.totalEmergencyTransfers }

// Perpetual returns the Perpetual counterpart of a PAR SKU, nil until the
// network is wired (and always nil on the Perpetual SKU itself).
func (s *SKU) Perpetual() *SKU { return s.perpetual }

// ConnectedPARs returns the PAR SKUs this Perpetual SKU may emergency-supply.
func (s *SKU) ConnectedPARs() []*SKU { return s.connectedPARs }

// SetInventoryLevel sets the current level and notifies observers. PAR SKUs
// are clamped at zero; the Perpetual SKU is not and may go negative.
func (s *SKU) SetInventoryLevel(newLevel float64) {
	if s.locationType == LocationPAR && newLevel < 0 {
		newLevel = 0
	}
	old := s.level
	s.level = newLevel
	s.notify(s, old, newLevel)
}

// FulfillDemand consumes qty from the current level and returns the shortfall
// (zero when fully fulfilled). On shortfall the level is clamped to zero and
// the shortfall is recorded as the SKU's stockout amount.
func (s *SKU) FulfillDemand(qty float64) float64 {
	if qty < 0 {
		panic(fmt.Sprintf("sim: negative demand quantity %f for SKU %s", qty, s.id))
	}
	available := s.level
	if available >= qty {
		s.SetInventoryLevel(available - qty)
		return 0
	}
	s.SetInventoryLevel(0)
	shortfall := qty - available
	s.stockoutAmount = shortfall
	s.totalStockouts += shortfall
	logrus.Warnf("stockout for SKU %s at %s: short %.2f units", s.id, s.locationID, shortfall)
	return shortfall
}

// AllocateEmergencySupply grants qty from this (Perpetual) SKU, going
// negative when it holds less than requested. The deficit newly incurred
// below zero is recorded as a hospital-level stockout and returned alongside
// the granted quantity (granted is always qty in full).
func (s *SKU) AllocateEmergencySupply(qty float64) (granted, deficit float64) {
	if qty < 0 {
		panic(fmt.Sprintf("sim: negative emergency quantity %f for SKU %s", qty, s.id))
	}
	available := s.level
	s.SetInventoryLevel(available - qty)
	if available < qty {
		deficit = qty - max(available, 0)
		s.totalStockouts += deficit
		logrus.Warnf("hospital-level stockout for SKU %s: warehouse short %.2f units (level now %.2f)",
			s.id, deficit, s.level)
	}
	s.totalEmergencyTransfers += qty
	return qty, deficit
}

// ReceiveEmergencySupply adds an emergency transfer to the level and reduces
// the recorded stockout amount.
func (s *SKU) ReceiveEmergencySupply(qty float64) {
	s.SetInventoryLevel(s.level + qty)
	s.stockoutAmount = max(0, s.stockoutAmount-qty)
	s.totalEmergencyTransfers += qty
}

// AddPendingShipment registers an in-flight delivery commitment.
func (s *SKU) AddPendingShipment(p PendingShipment) {
	s.pending = append(s.pending, p)
}

// RemovePendingShipment removes and returns the pending shipment created by
// the delivery event with the given id. ok is false when no such shipment is
// registered (already delivered or never scheduled).
func (s *SKU) RemovePendingShipment(eventID uint64) (p PendingShipment, ok bool) {
	for i, shp := range s.pending {
		if shp.EventID == eventID {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return shp, true
		}
	}
	return PendingShipment{}, false
}

// PendingShipments returns the not-yet-arrived delivery commitments.
func (s *SKU) PendingShipments() []PendingShipment { return s.pending }

// PendingBy sums the quantities of pending shipments arriving at or before
// now.
func (s *SKU) PendingBy(now int64) float64 {
	var total float64
	for _, shp := range s.pending {
		if shp.ArriveAt <= now {
			total += shp.Quantity
		}
	}
	return total
}

// InventoryGap is the amount still needed to reach the target level after
// counting stock on hand and shipments arriving by now. Never negative.
func (s *SKU) InventoryGap(now int64) float64 {
	return max(0, s.targetLevel-(s.level+s.PendingBy(now)))
}

// State derives the SKU's lifecycle state from its runtime fields.
func (s *SKU) State() SKUState {
	switch {
	case s.stockoutAmount > 0:
		return SKUStockout
	case len(s.pending) > 0:
		return SKUReplenishing
	default:
		return SKUNominal
	}
}

func (s *SKU) String() string {
	return fmt.Sprintf("SKU(%s@%s level=%.2f target=%.2f)", s.id, s.locationID, s.level, s.targetLevel)
}
