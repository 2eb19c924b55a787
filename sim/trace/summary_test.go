package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NilTrace(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.StockoutCount)
	assert.Zero(t, s.TransferCount)
	assert.NotNil(t, s.BySKU)
	assert.NotNil(t, s.ByLocation)
}

func TestSummarize(t *testing.T) {
	tr := New(Config{Level: LevelEvents})
	tr.RecordStockout(StockoutRecord{SKUID: "SKU_A", LocationID: "ED", Clock: 0, Shortfall: 5})
	tr.RecordStockout(StockoutRecord{SKUID: "SKU_A", LocationID: "ICU", Clock: 10, Shortfall: 3})
	tr.RecordStockout(StockoutRecord{SKUID: "SKU_B", LocationID: "ED", Clock: 20, Shortfall: 2})
	tr.RecordTransfer(TransferRecord{SKUID: "SKU_A", FromLocation: "PERPETUAL", ToLocation: "ED", Clock: 0, Quantity: 5, Deficit: 0})
	tr.RecordTransfer(TransferRecord{SKUID: "SKU_A", FromLocation: "PERPETUAL", ToLocation: "ICU", Clock: 10, Quantity: 3, Deficit: 1})

	s := Summarize(tr)

	assert.Equal(t, tr.RunID, s.RunID)
	assert.Equal(t, 3, s.StockoutCount)
	assert.Equal(t, 10.0, s.ShortfallTotal)
	assert.Equal(t, 2, s.TransferCount)
	assert.Equal(t, 8.0, s.TransferVolume)
	assert.Equal(t, 1.0, s.DeficitTotal)
	assert.Equal(t, map[string]int{"SKU_A": 2, "SKU_B": 1}, s.BySKU)
	assert.Equal(t, map[string]float64{"ED": 7, "ICU": 3}, s.ByLocation)
}
