package sim

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Structural-integrity errors raised at topology-build time. All are fatal:
// the caller must fix the input data and rebuild.
var (
	ErrDuplicateLocation    = errors.New("duplicate location")
	ErrDuplicateSKU         = errors.New("duplicate SKU")
	ErrUnknownLocation      = errors.New("unknown location")
	ErrNoPerpetualLocation  = errors.New("no Perpetual location")
	ErrMultiplePerpetual    = errors.New("more than one Perpetual location")
	ErrMissingPerpetualSKU  = errors.New("PAR SKU has no Perpetual counterpart")
	ErrLocationTypeMismatch = errors.New("SKU location type mismatch")
	ErrNotFinalized         = errors.New("network not finalized")
	ErrFinalized            = errors.New("network already finalized")
)

// Network is the emergency-replenishment topology: all locations, an arena of
// SKU instances grouped by item id, and the Perpetual↔PAR supply edges.
// It is built incrementally (AddLocation/AddSKU), wired
// (GenerateConnections), and then frozen (Finalize). After Finalize only the
// runtime fields of SKUs change.
type Network struct {
	locations map[string]*Location
	arena     map[string][]*SKU // item id → instances across locations
	perpetual *Location
	wired     bool
	finalized bool
}

// NewNetwork creates an empty topology builder.
func NewNetwork() *Network {
	return &Network{
		locations: make(map[string]*Location),
		arena:     make(map[string][]*SKU),
	}
}

// AddLocation registers a location. Exactly one location of type Perpetual is
// permitted.
func (n *Network) AddLocation(l *Location) error {
	if n.finalized {
		return fmt.Errorf("%w: cannot add location %s", ErrFinalized, l.ID())
	}
	if _, exists := n.locations[l.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateLocation, l.ID())
	}
	if l.Type() == LocationPerpetual {
		if n.perpetual != nil {
			return fmt.Errorf("%w: %s and %s", ErrMultiplePerpetual, n.perpetual.ID(), l.ID())
		}
		n.perpetual = l
	}
	n.locations[l.ID()] = l
	logrus.Debugf("registered %s location %s", l.Type(), l.ID())
	return nil
}

// AddSKU registers a SKU instance with its owning location and the item
// arena. All structural checks run before anything mutates, so a failed add
// leaves nothing partially registered.
func (n *Network) AddSKU(s *SKU) error {
	if n.finalized {
		return fmt.Errorf("%w: cannot add SKU %s", ErrFinalized, s.ID())
	}
	loc, ok := n.locations[s.LocationID()]
	if !ok {
		return fmt.Errorf("%w: SKU %s references location %s", ErrUnknownLocation, s.ID(), s.LocationID())
	}
	if loc.Type() != s.LocationType() {
		return fmt.Errorf("%w: SKU %s declares %s but location %s is %s",
			ErrLocationTypeMismatch, s.ID(), s.LocationType(), loc.ID(), loc.Type())
	}
	if err := loc.addSKU(s); err != nil {
		return err
	}
	n.arena[s.ID()] = append(n.arena[s.ID()], s)
	return nil
}

// GenerateConnections wires every PAR instance of each item id to the
// Perpetual instance of the same id (bidirectional emergency-supply edge).
// An item stocked only in PAR locations is a data-integrity error; the whole
// pass is validated before any edge is added, so a failed call wires nothing.
func (n *Network) GenerateConnections() error {
	if n.finalized {
		return ErrFinalized
	}
	if n.perpetual == nil {
		return ErrNoPerpetualLocation
	}
	if n.wired {
		return nil
	}

	// Validation pass first: every id with a PAR instance needs a Perpetual one.
	for _, id := range n.skuIDs() {
		hasPAR := false
		for _, s := range n.arena[id] {
			if s.LocationType() == LocationPAR {
				hasPAR = true
			}
		}
		if hasPAR && n.perpetual.SKU(id) == nil {
			return fmt.Errorf("%w: %s", ErrMissingPerpetualSKU, id)
		}
	}

	for _, id := range n.skuIDs() {
		perp := n.perpetual.SKU(id)
		for _, s := range n.arena[id] {
			if s.LocationType() != LocationPAR {
				continue
			}
			perp.connectedPARs = append(perp.connectedPARs, s)
			s.perpetual = perp
		}
	}
	n.wired = true
	logrus.Infof("emergency-supply topology wired: %d items across %d locations",
		len(n.arena), len(n.locations))
	return nil
}

// Finalize validates that every PAR SKU has a reachable Perpetual counterpart
// and freezes the structure. Idempotent: finalizing an already-valid network
// changes nothing.
func (n *Network) Finalize() error {
	if n.finalized {
		return nil
	}
	if err := n.GenerateConnections(); err != nil {
		return err
	}
	for _, id := range n.skuIDs() {
		for _, s := range n.arena[id] {
			if s.LocationType() == LocationPAR && s.Perpetual() == nil {
				return fmt.Errorf("%w: %s at %s", ErrMissingPerpetualSKU, id, s.LocationID())
			}
		}
	}
	n.finalized = true
	return nil
}

// Finalized reports whether the structure has been frozen.
func (n *Network) Finalized() bool { return n.finalized }

// Location returns a registered location by id. Querying before Finalize is a
// structural error.
func (n *Network) Location(id string) (*Location, error) {
	if !n.finalized {
		return nil, fmt.Errorf("%w: location %s queried during construction", ErrNotFinalized, id)
	}
	l, ok := n.locations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocation, id)
	}
	return l, nil
}

// Locations returns all registered locations sorted by id.
func (n *Network) Locations() []*Location {
	ids := make([]string, 0, len(n.locations))
	for id := range n.locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*Location, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.locations[id])
	}
	return out
}

// PerpetualLocation returns the single Perpetual warehouse, nil before one is
// registered.
func (n *Network) PerpetualLocation() *Location { return n.perpetual }

// PerpetualSKU returns the Perpetual instance of the given item id, or nil.
func (n *Network) PerpetualSKU(id string) *SKU {
	if n.perpetual == nil {
		return nil
	}
	return n.perpetual.SKU(id)
}

// PARSKUs returns the PAR instances of the given item id.
func (n *Network) PARSKUs(id string) []*SKU {
	var out []*SKU
	for _, s := range n.arena[id] {
		if s.LocationType() == LocationPAR {
			out = append(out, s)
		}
	}
	return out
}

// SKUIDs returns all item ids in the arena, sorted.
func (n *Network) SKUIDs() []string { return n.skuIDs() }

func (n *Network) skuIDs() []string {
	ids := make([]string, 0, len(n.arena))
	for id := range n.arena {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
