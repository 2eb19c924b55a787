package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLocation_Duplicate(t *testing.T) {
	net := NewNetwork()
	require.NoError(t, net.AddLocation(NewLocation("ED", LocationPAR, Unbounded())))

	err := net.AddLocation(NewLocation("ED", LocationPAR, Unbounded()))
	assert.ErrorIs(t, err, ErrDuplicateLocation)
}

func TestAddLocation_SecondPerpetual(t *testing.T) {
	net := NewNetwork()
	require.NoError(t, net.AddLocation(NewLocation("PERPETUAL", LocationPerpetual, Unbounded())))

	err := net.AddLocation(NewLocation("WAREHOUSE_2", LocationPerpetual, Unbounded()))
	assert.ErrorIs(t, err, ErrMultiplePerpetual)
}

func TestAddSKU_DuplicatePerLocation(t *testing.T) {
	net := NewNetwork()
	require.NoError(t, net.AddLocation(NewLocation("ED", LocationPAR, Unbounded())))
	require.NoError(t, net.AddSKU(NewSKU("SKU_001", "ED", LocationPAR, 50, 7, 10)))

	err := net.AddSKU(NewSKU("SKU_001", "ED", LocationPAR, 50, 7, 10))
	assert.ErrorIs(t, err, ErrDuplicateSKU)
	// The failed add must not grow the arena.
	assert.Len(t, net.arena["SKU_001"], 1)
}

func TestAddSKU_UnknownLocation(t *testing.T) {
	net := NewNetwork()
	err := net.AddSKU(NewSKU("SKU_001", "ED", LocationPAR, 50, 7, 10))
	assert.ErrorIs(t, err, ErrUnknownLocation)
	assert.Empty(t, net.arena)
}

func TestAddSKU_LocationTypeMismatch(t *testing.T) {
	net := NewNetwork()
	require.NoError(t, net.AddLocation(NewLocation("ED", LocationPAR, Unbounded())))

	err := net.AddSKU(NewSKU("SKU_001", "ED", LocationPerpetual, 50, 7, 0))
	assert.ErrorIs(t, err, ErrLocationTypeMismatch)
}

func TestGenerateConnections_WiresBidirectionalEdges(t *testing.T) {
	tn := buildTestNetwork(t, skuLevels{perpTarget: 100, perpLevel: 75, parTarget: 50, parLevel: 25, parDemand: 10, leadTimeDays: 7})

	assert.Same(t, tn.Perp, tn.PAR.Perpetual())
	require.Len(t, tn.Perp.ConnectedPARs(), 1)
	assert.Same(t, tn.PAR, tn.Perp.ConnectedPARs()[0])
}

// A PAR SKU id with no Perpetual counterpart is a data-integrity error and
// must leave the topology unwired.
func TestGenerateConnections_MissingPerpetualCounterpart(t *testing.T) {
	net := NewNetwork()
	require.NoError(t, net.AddLocation(NewLocation("PERPETUAL", LocationPerpetual, Unbounded())))
	require.NoError(t, net.AddLocation(NewLocation("ED", LocationPAR, Unbounded())))

	good := NewSKU("SKU_001", "PERPETUAL", LocationPerpetual, 100, 7, 0)
	require.NoError(t, net.AddSKU(good))
	goodPAR := NewSKU("SKU_001", "ED", LocationPAR, 50, 7, 10)
	require.NoError(t, net.AddSKU(goodPAR))
	orphan := NewSKU("SKU_999", "ED", LocationPAR, 50, 7, 10)
	require.NoError(t, net.AddSKU(orphan))

	err := net.GenerateConnections()
	assert.ErrorIs(t, err, ErrMissingPerpetualSKU)
	// Nothing partially wired, not even the valid id.
	assert.Nil(t, goodPAR.Perpetual())
	assert.Empty(t, good.ConnectedPARs())

	assert.ErrorIs(t, net.Finalize(), ErrMissingPerpetualSKU)
	assert.False(t, net.Finalized())
}

func TestGenerateConnections_NoPerpetualLocation(t *testing.T) {
	net := NewNetwork()
	require.NoError(t, net.AddLocation(NewLocation("ED", LocationPAR, Unbounded())))
	assert.ErrorIs(t, net.GenerateConnections(), ErrNoPerpetualLocation)
}

func TestFinalize_Idempotent(t *testing.T) {
	tn := buildTestNetwork(t, skuLevels{perpTarget: 100, perpLevel: 75, parTarget: 50, parLevel: 25, parDemand: 10, leadTimeDays: 7})

	require.NoError(t, tn.Net.Finalize())
	require.NoError(t, tn.Net.Finalize())

	// Edges must not duplicate on refinalization.
	assert.Len(t, tn.Perp.ConnectedPARs(), 1)
}

func TestLocationQuery_BeforeAndAfterFinalize(t *testing.T) {
	net := NewNetwork()
	require.NoError(t, net.AddLocation(NewLocation("PERPETUAL", LocationPerpetual, Unbounded())))

	_, err := net.Location("PERPETUAL")
	assert.ErrorIs(t, err, ErrNotFinalized)

	require.NoError(t, net.Finalize())
	loc, err := net.Location("PERPETUAL")
	require.NoError(t, err)
	assert.Equal(t, LocationPerpetual, loc.Type())

	_, err = net.Location("NOWHERE")
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestMutationAfterFinalize(t *testing.T) {
	tn := buildTestNetwork(t, skuLevels{perpTarget: 100, perpLevel: 75, parTarget: 50, parLevel: 25, parDemand: 10, leadTimeDays: 7})

	assert.ErrorIs(t, tn.Net.AddLocation(NewLocation("ICU", LocationPAR, Unbounded())), ErrFinalized)
	assert.ErrorIs(t, tn.Net.AddSKU(NewSKU("SKU_002", "ED", LocationPAR, 10, 7, 1)), ErrFinalized)
}

func TestNetworkAccessors(t *testing.T) {
	tn := buildTestNetwork(t, skuLevels{perpTarget: 100, perpLevel: 75, parTarget: 50, parLevel: 25, parDemand: 10, leadTimeDays: 7})

	assert.Equal(t, []string{"SKU_001"}, tn.Net.SKUIDs())
	assert.Same(t, tn.Perp, tn.Net.PerpetualSKU("SKU_001"))
	require.Len(t, tn.Net.PARSKUs("SKU_001"), 1)
	assert.Same(t, tn.PAR, tn.Net.PARSKUs("SKU_001")[0])

	locs := tn.Net.Locations()
	require.Len(t, locs, 2)
	assert.Equal(t, "ED", locs[0].ID())
	assert.Equal(t, "PERPETUAL", locs[1].ID())
}
