package trace

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	RunID          string             `json:"run_id"`
	StockoutCount  int                `json:"stockout_count"`
	ShortfallTotal float64            `json:"shortfall_total"`
	TransferCount  int                `json:"transfer_count"`
	TransferVolume float64            `json:"transfer_volume"`
	DeficitTotal   float64            `json:"deficit_total"`
	BySKU          map[string]int     `json:"by_sku"`
	ByLocation     map[string]float64 `json:"by_location"` // shortfall per PAR location
}

// Summarize computes aggregate statistics from a RunTrace. Safe for nil or
// empty traces (returns zero-value fields).
func Summarize(t *RunTrace) *Summary {
	summary := &Summary{
		BySKU:      make(map[string]int),
		ByLocation: make(map[string]float64),
	}
	if t == nil {
		return summary
	}

	summary.RunID = t.RunID
	summary.StockoutCount = len(t.Stockouts)
	for _, rec := range t.Stockouts {
		summary.ShortfallTotal += rec.Shortfall
		summary.BySKU[rec.SKUID]++
		summary.ByLocation[rec.LocationID] += rec.Shortfall
	}

	summary.TransferCount = len(t.Transfers)
	for _, rec := range t.Transfers {
		summary.TransferVolume += rec.Quantity
		summary.DeficitTotal += rec.Deficit
	}

	return summary
}
