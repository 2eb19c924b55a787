package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSKURecords(t *testing.T) {
	in := strings.NewReader(
		"sku_id,location_id,target_level,lead_time_days,demand_rate,initial_level\n" +
			"SKU_001,PERPETUAL,100,2,0,75\n" +
			"SKU_001,ED,50,10.5,10,\n")

	records, err := parseSKURecords(in)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "SKU_001", records[0].SKUID)
	assert.Equal(t, "PERPETUAL", records[0].LocationID)
	require.NotNil(t, records[0].InitialLevel)
	assert.Equal(t, 75.0, *records[0].InitialLevel)

	assert.Equal(t, 10.5, records[1].LeadTimeDays)
	assert.Nil(t, records[1].InitialLevel) // empty cell means start at target
}

func TestParseSKURecords_ColumnOrderFree(t *testing.T) {
	in := strings.NewReader(
		"demand_rate,sku_id,lead_time_days,location_id,target_level\n" +
			"10,SKU_001,7,ED,50\n")

	records, err := parseSKURecords(in)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 10.0, records[0].DemandRate)
	assert.Equal(t, 50.0, records[0].TargetLevel)
}

func TestParseSKURecords_MissingColumn(t *testing.T) {
	in := strings.NewReader("sku_id,location_id,target_level\nSKU_001,ED,50\n")
	_, err := parseSKURecords(in)
	assert.ErrorContains(t, err, "lead_time_days")
}

func TestParseSKURecords_BadNumber(t *testing.T) {
	in := strings.NewReader(
		"sku_id,location_id,target_level,lead_time_days,demand_rate\n" +
			"SKU_001,ED,fifty,7,10\n")
	_, err := parseSKURecords(in)
	assert.ErrorContains(t, err, "line 2")
}

func TestLoadSKURecordsCSV_MissingFile(t *testing.T) {
	_, err := LoadSKURecordsCSV("/nonexistent/records.csv")
	assert.Error(t, err)
}
