package scenario

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cedarsim/cedarsim/sim"
)

// Build constructs a finalized sim.Network from a validated scenario. Any
// structural-integrity error (duplicate registration, PAR SKU with no
// Perpetual counterpart) aborts construction.
func Build(spec *Spec) (*sim.Network, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	net := sim.NewNetwork()
	types := make(map[string]sim.LocationType, len(spec.Locations))
	for _, l := range spec.Locations {
		typ := sim.LocationType(l.Type)
		capacity := sim.Unbounded()
		if l.MaxCapacity != nil {
			capacity = *l.MaxCapacity
		}
		if err := net.AddLocation(sim.NewLocation(l.ID, typ, capacity)); err != nil {
			return nil, err
		}
		types[l.ID] = typ
	}

	for _, r := range spec.SKUs {
		s := sim.NewSKU(r.SKUID, r.LocationID, types[r.LocationID], r.TargetLevel, r.LeadTimeDays, r.DemandRate)
		if err := net.AddSKU(s); err != nil {
			return nil, err
		}
		initial := r.TargetLevel
		if r.InitialLevel != nil {
			initial = *r.InitialLevel
		}
		s.SetInventoryLevel(initial)
	}

	if err := net.Finalize(); err != nil {
		return nil, err
	}
	logrus.Infof("scenario built: %d locations, %d SKU records", len(spec.Locations), len(spec.SKUs))
	return net, nil
}
