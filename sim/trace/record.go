// Package trace provides per-run stockout and emergency-transfer trace
// recording. It has no dependency on sim/ — it stores pure data types, so
// reporting collaborators can consume traces without importing the engine.
package trace

// StockoutRecord captures a single demand shortfall on a PAR SKU.
type StockoutRecord struct {
	SKUID      string  `json:"sku_id"`
	LocationID string  `json:"location_id"`
	Clock      int64   `json:"clock"`
	Shortfall  float64 `json:"shortfall"`
}

// TransferRecord captures a single emergency transfer from the Perpetual
// warehouse to a PAR SKU. Deficit is the amount by which the warehouse went
// (further) negative to grant it, zero when fully covered.
type TransferRecord struct {
	SKUID        string  `json:"sku_id"`
	FromLocation string  `json:"from_location"`
	ToLocation   string  `json:"to_location"`
	Clock        int64   `json:"clock"`
	Quantity     float64 `json:"quantity"`
	Deficit      float64 `json:"deficit"`
}
