package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testNetwork wires the canonical two-location topology: a Perpetual
// warehouse and one PAR ward, both stocking SKU_001.
type testNetwork struct {
	Net  *Network
	PAR  *SKU
	Perp *SKU
}

type skuLevels struct {
	perpTarget, perpLevel float64
	parTarget, parLevel   float64
	parDemand             float64
	leadTimeDays          float64
}

func buildTestNetwork(t *testing.T, lv skuLevels) testNetwork {
	t.Helper()

	net := NewNetwork()
	require.NoError(t, net.AddLocation(NewLocation("PERPETUAL", LocationPerpetual, Unbounded())))
	require.NoError(t, net.AddLocation(NewLocation("ED", LocationPAR, Unbounded())))

	perp := NewSKU("SKU_001", "PERPETUAL", LocationPerpetual, lv.perpTarget, lv.leadTimeDays, 0)
	par := NewSKU("SKU_001", "ED", LocationPAR, lv.parTarget, lv.leadTimeDays, lv.parDemand)
	require.NoError(t, net.AddSKU(perp))
	require.NoError(t, net.AddSKU(par))

	perp.SetInventoryLevel(lv.perpLevel)
	par.SetInventoryLevel(lv.parLevel)

	require.NoError(t, net.Finalize())
	return testNetwork{Net: net, PAR: par, Perp: perp}
}

func newTestSimulator(t *testing.T, tn testNetwork, horizonWeeks int64) *Simulator {
	t.Helper()
	s, err := NewSimulator(tn.Net, EngineConfig{HorizonWeeks: horizonWeeks})
	require.NoError(t, err)
	return s
}

// buildHospitalNetwork wires a three-item topology across two wards plus the
// warehouse, with uneven targets, demand rates, and lead times.
func buildHospitalNetwork(t *testing.T) *Network {
	t.Helper()

	net := NewNetwork()
	require.NoError(t, net.AddLocation(NewLocation("PERPETUAL", LocationPerpetual, Unbounded())))
	require.NoError(t, net.AddLocation(NewLocation("ED", LocationPAR, Unbounded())))
	require.NoError(t, net.AddLocation(NewLocation("ICU", LocationPAR, Unbounded())))

	type rec struct {
		id, loc      string
		typ          LocationType
		target, init float64
		lead, rate   float64
	}
	records := []rec{
		{"SKU_A", "PERPETUAL", LocationPerpetual, 200, 150, 3, 0},
		{"SKU_B", "PERPETUAL", LocationPerpetual, 100, 40, 7, 0},
		{"SKU_C", "PERPETUAL", LocationPerpetual, 500, 500, 1.5, 0},
		{"SKU_A", "ED", LocationPAR, 50, 25, 10.5, 10},
		{"SKU_A", "ICU", LocationPAR, 40, 5, 10.5, 12},
		{"SKU_B", "ED", LocationPAR, 20, 2, 7, 15},
		{"SKU_C", "ICU", LocationPAR, 80, 80, 2, 30},
	}
	for _, r := range records {
		s := NewSKU(r.id, r.loc, r.typ, r.target, r.lead, r.rate)
		require.NoError(t, net.AddSKU(s))
		s.SetInventoryLevel(r.init)
	}
	require.NoError(t, net.Finalize())
	return net
}

// snapshotLevels captures every SKU instance's final state for comparing runs.
func snapshotLevels(net *Network) map[string]float64 {
	out := make(map[string]float64)
	for _, id := range net.SKUIDs() {
		perp := net.PerpetualSKU(id)
		out[id+"@PERPETUAL"] = perp.CurrentLevel()
		out[id+"@PERPETUAL/stockouts"] = perp.TotalStockouts()
		for _, par := range net.PARSKUs(id) {
			key := id + "@" + par.LocationID()
			out[key] = par.CurrentLevel()
			out[key+"/stockouts"] = par.TotalStockouts()
			out[key+"/transfers"] = par.TotalEmergencyTransfers()
		}
	}
	return out
}
