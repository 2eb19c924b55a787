package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Unbounded is the capacity of a location with no configured maximum.
func Unbounded() float64 { return math.Inf(1) }

// Location is a stocking point (a ward-level PAR or the central Perpetual
// warehouse) owning one SKU instance per item id. Its aggregate queries are
// recomputed on every call; no aggregate state is cached independently of
// SKU mutation.
type Location struct {
	observable

	id          string
	typ         LocationType
	maxCapacity float64
	skus        map[string]*SKU
	policy      ReplenishmentPolicy
}

// NewLocation creates a location of the given type. maxCapacity may be
// Unbounded().
func NewLocation(id string, typ LocationType, maxCapacity float64) *Location {
	return &Location{
		id:          id,
		typ:         typ,
		maxCapacity: maxCapacity,
		skus:        make(map[string]*SKU),
		policy:      OrderUpToLevel{},
	}
}

func (l *Location) ID() string         { return l.id }
func (l *Location) Type() LocationType { return l.typ }

// Capacity is the configured maximum for the location (Unbounded() by
// convention when no limit applies).
func (l *Location) Capacity() float64 { return l.maxCapacity }

// CurrentLevel is the sum of the owned SKUs' current levels, recomputed on
// demand.
func (l *Location) CurrentLevel() float64 {
	var total float64
	for _, s := range l.skus {
		total += s.CurrentLevel()
	}
	return total
}

// Policy returns the replenishment policy in force at this location.
func (l *Location) Policy() ReplenishmentPolicy { return l.policy }

// SetPolicy replaces the location's replenishment policy. A nil policy
// restores the default order-up-to-level behavior.
func (l *Location) SetPolicy(p ReplenishmentPolicy) {
	if p == nil {
		p = OrderUpToLevel{}
	}
	l.policy = p
}

// addSKU registers a SKU with this location and forwards its inventory
// notifications upward. Called by the network builder.
func (l *Location) addSKU(s *SKU) error {
	if _, exists := l.skus[s.ID()]; exists {
		return fmt.Errorf("%w: SKU %s already registered at location %s", ErrDuplicateSKU, s.ID(), l.id)
	}
	l.skus[s.ID()] = s
	s.AddObserver(func(_ Resource, oldLevel, newLevel float64) {
		// Skip the aggregate recompute when nobody upstream is listening.
		if len(l.observers) == 0 {
			return
		}
		total := l.CurrentLevel()
		l.notify(l, total-(newLevel-oldLevel), total)
	})
	return nil
}

// SKU returns the location's instance of the given item id, or nil.
func (l *Location) SKU(skuID string) *SKU { return l.skus[skuID] }

// SKUCount returns the number of SKU instances stocked here.
func (l *Location) SKUCount() int { return len(l.skus) }

// InventoryLevels reports the current level of every SKU in this location.
func (l *Location) InventoryLevels() map[string]float64 {
	out := make(map[string]float64, len(l.skus))
	for id, s := range l.skus {
		out[id] = s.CurrentLevel()
	}
	return out
}

// DemandSummary reports the demand rate of every SKU in this location.
func (l *Location) DemandSummary() map[string]float64 {
	out := make(map[string]float64, len(l.skus))
	for id, s := range l.skus {
		out[id] = s.DemandRate()
	}
	return out
}

// StockoutSummary reports the current stockout amount of every SKU in this
// location.
func (l *Location) StockoutSummary() map[string]float64 {
	out := make(map[string]float64, len(l.skus))
	for id, s := range l.skus {
		out[id] = s.StockoutAmount()
	}
	return out
}

// ReplenishmentSummary reports the number of pending shipments per SKU.
func (l *Location) ReplenishmentSummary() map[string]int {
	out := make(map[string]int, len(l.skus))
	for id, s := range l.skus {
		out[id] = len(s.PendingShipments())
	}
	return out
}

// TotalInventory is the sum of all SKU levels in this location.
func (l *Location) TotalInventory() float64 { return l.CurrentLevel() }

// StockoutRate is the fraction of SKUs with a nonzero stockout amount.
// Zero for an empty location.
func (l *Location) StockoutRate() float64 {
	if len(l.skus) == 0 {
		return 0
	}
	var n int
	for _, s := range l.skus {
		if s.StockoutAmount() > 0 {
			n++
		}
	}
	return float64(n) / float64(len(l.skus))
}

// EmergencyTransferCount is the cumulative emergency-transfer volume across
// SKUs in this location.
func (l *Location) EmergencyTransferCount() float64 {
	var total float64
	for _, s := range l.skus {
		total += s.TotalEmergencyTransfers()
	}
	return total
}

// AverageLeadTime is the mean lead time, in weeks, across SKUs in this
// location. Zero for an empty location.
func (l *Location) AverageLeadTime() float64 {
	if len(l.skus) == 0 {
		return 0
	}
	var total float64
	for _, s := range l.skus {
		total += s.LeadTimeWeeks()
	}
	return total / float64(len(l.skus))
}

// DemandRateStdDev is the standard deviation of demand rates across SKUs in
// this location. Zero when fewer than two SKUs are stocked.
func (l *Location) DemandRateStdDev() float64 {
	if len(l.skus) < 2 {
		return 0
	}
	rates := make([]float64, 0, len(l.skus))
	for _, s := range l.skus {
		rates = append(rates, s.DemandRate())
	}
	return stat.StdDev(rates, nil)
}
