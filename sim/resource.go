package sim

// LocationType distinguishes ward-level stocking points from the central
// warehouse.
type LocationType string

const (
	// LocationPAR is a ward-level stocking point with locally consumed inventory.
	LocationPAR LocationType = "PAR"
	// LocationPerpetual is the central warehouse backing all PAR locations.
	LocationPerpetual LocationType = "Perpetual"
)

// Resource is implemented by every inventory-holding entity (Location, SKU).
type Resource interface {
	ID() string
	// Capacity is the target level for a SKU and the configured maximum for
	// a Location (math.Inf(1) when unbounded).
	Capacity() float64
	CurrentLevel() float64
}

// InventoryObserver receives a notification whenever a resource's inventory
// level changes. Registration is append-only for the duration of a run; there
// is no unsubscribe.
type InventoryObserver func(r Resource, oldLevel, newLevel float64)

// observable holds an append-only observer list. Embedded by Location and SKU.
type observable struct {
	observers []InventoryObserver
}

// AddObserver registers fn for inventory-change notifications.
func (o *observable) AddObserver(fn InventoryObserver) {
	if fn == nil {
		return
	}
	o.observers = append(o.observers, fn)
}

func (o *observable) notify(r Resource, oldLevel, newLevel float64) {
	for _, fn := range o.observers {
		fn(r, oldLevel, newLevel)
	}
}
