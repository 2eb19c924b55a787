package sim

import "fmt"

// Metrics aggregates simulation-wide statistics, accumulated incrementally
// as events are processed rather than recomputed from final state.
type Metrics struct {
	TotalDemand              float64 // units of demand processed
	TotalStockouts           float64 // units of PAR shortfall recorded
	HospitalStockouts        float64 // units the warehouse went below zero to cover
	TotalEmergencyTransfers  float64 // units moved Perpetual to PAR out of band
	TotalReplenishmentOrders int
	TotalDeliveries          int
	InvalidEvents            int     // rejected events (scheduling bugs), run continued
	EventsProcessed          int
	SimEndedAt               int64   // clock at end of run, capped at the horizon
}

// NewMetrics creates a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ServiceLevel is the fraction of total demand fulfilled without stockout.
// 1.0 when no demand has been processed.
func (m *Metrics) ServiceLevel() float64 {
	if m.TotalDemand == 0 {
		return 1.0
	}
	return (m.TotalDemand - m.TotalStockouts) / m.TotalDemand
}

// Merge folds another run's statistics into m. Used to combine per-shard
// results after a parallel run; SimEndedAt takes the maximum.
func (m *Metrics) Merge(other *Metrics) {
	if other == nil {
		return
	}
	m.TotalDemand += other.TotalDemand
	m.TotalStockouts += other.TotalStockouts
	m.HospitalStockouts += other.HospitalStockouts
	m.TotalEmergencyTransfers += other.TotalEmergencyTransfers
	m.TotalReplenishmentOrders += other.TotalReplenishmentOrders
	m.TotalDeliveries += other.TotalDeliveries
	m.InvalidEvents += other.InvalidEvents
	m.EventsProcessed += other.EventsProcessed
	if other.SimEndedAt > m.SimEndedAt {
		m.SimEndedAt = other.SimEndedAt
	}
}

// Print displays aggregated statistics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Events Processed      : %d\n", m.EventsProcessed)
	fmt.Printf("Total Demand          : %.2f units\n", m.TotalDemand)
	fmt.Printf("Total Stockouts       : %.2f units\n", m.TotalStockouts)
	fmt.Printf("Hospital Stockouts    : %.2f units\n", m.HospitalStockouts)
	fmt.Printf("Emergency Transfers   : %.2f units\n", m.TotalEmergencyTransfers)
	fmt.Printf("Replenishment Orders  : %d\n", m.TotalReplenishmentOrders)
	fmt.Printf("Deliveries            : %d\n", m.TotalDeliveries)
	if m.InvalidEvents > 0 {
		fmt.Printf("Invalid Events        : %d\n", m.InvalidEvents)
	}
	fmt.Printf("Service Level         : %.2f%%\n", m.ServiceLevel()*100)
}
