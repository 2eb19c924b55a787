package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel("none"))
	assert.True(t, IsValidLevel("events"))
	assert.True(t, IsValidLevel(""))
	assert.False(t, IsValidLevel("everything"))
}

func TestEnabled(t *testing.T) {
	var nilTrace *RunTrace
	assert.False(t, nilTrace.Enabled())
	assert.False(t, New(Config{Level: LevelNone}).Enabled())
	assert.True(t, New(Config{Level: LevelEvents}).Enabled())
}

func TestNew_AssignsRunID(t *testing.T) {
	a := New(Config{Level: LevelEvents})
	b := New(Config{Level: LevelEvents})
	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRecording(t *testing.T) {
	tr := New(Config{Level: LevelEvents})
	tr.RecordStockout(StockoutRecord{SKUID: "SKU_001", LocationID: "ED", Clock: 10, Shortfall: 5})
	tr.RecordTransfer(TransferRecord{SKUID: "SKU_001", FromLocation: "PERPETUAL", ToLocation: "ED", Clock: 10, Quantity: 5, Deficit: 2})

	assert.Len(t, tr.Stockouts, 1)
	assert.Len(t, tr.Transfers, 1)
}
