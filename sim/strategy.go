package sim

// ReplenishmentPolicy decides whether a SKU should place a replenishment
// order and for how much. The engine consults the policy after each demand
// event; alternative policies (min/max, periodic review) can be substituted
// without touching the engine.
type ReplenishmentPolicy interface {
	ShouldReorder(s *SKU) bool
	OrderQuantity(s *SKU) float64
}

// OrderUpToLevel reorders whenever the current level drops below the target
// and orders the difference back up to the target.
type OrderUpToLevel struct{}

func (OrderUpToLevel) ShouldReorder(s *SKU) bool {
	return s.CurrentLevel() < s.TargetLevel()
}

func (OrderUpToLevel) OrderQuantity(s *SKU) float64 {
	return max(0, s.TargetLevel()-s.CurrentLevel())
}
