package sim

import "math"

// Simulated time is an integer tick count at one-minute resolution. Demand is
// seeded on week boundaries; lead times arrive in (possibly fractional) days
// and convert exactly to minutes for most real-world values, so same-tick
// collisions between deliveries and demand stay resolvable by the event
// heap's deterministic tie-break rather than by float comparison.
const (
	TicksPerDay  int64 = 24 * 60
	TicksPerWeek int64 = 7 * TicksPerDay
)

// WeekTick returns the tick at the start of the given simulated week.
func WeekTick(week int64) int64 {
	return week * TicksPerWeek
}

// DaysToTicks converts a duration in days to ticks, rounding to the nearest
// minute.
func DaysToTicks(days float64) int64 {
	return int64(math.Round(days * float64(TicksPerDay)))
}

// WeeksToTicks converts a duration in (possibly fractional) weeks to ticks,
// rounding to the nearest minute.
func WeeksToTicks(weeks float64) int64 {
	return int64(math.Round(weeks * float64(TicksPerWeek)))
}
