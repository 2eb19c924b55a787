package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/cedarsim/cedarsim/sim/trace"
)

// EngineConfig groups the parameters of a single engine run. It is the
// explicit simulation context passed into the engine: there is no global
// mutable configuration state.
type EngineConfig struct {
	// HorizonWeeks bounds the run; events past the horizon are not executed.
	HorizonWeeks int64
	// Policy decides reorders; nil means OrderUpToLevel.
	Policy ReplenishmentPolicy
	// Logger receives engine diagnostics; nil means the logrus standard logger.
	Logger *logrus.Logger
	// Trace optionally records stockouts and emergency transfers.
	Trace *trace.RunTrace
}

func (c EngineConfig) policy() ReplenishmentPolicy {
	if c.Policy == nil {
		return OrderUpToLevel{}
	}
	return c.Policy
}

func (c EngineConfig) logger() *logrus.Logger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

// DemandWindow is the seeded demand schedule: one DemandEvent of
// quantity = demand rate per SKU per simulated week in [StartWeek, EndWeek).
type DemandWindow struct {
	StartWeek int64
	EndWeek   int64
}

// ParallelConfig groups the parameters of a sharded parallel run.
type ParallelConfig struct {
	// Workers bounds the number of concurrently running shard engines.
	// Values < 1 mean one worker per available CPU.
	Workers int
	Window  DemandWindow
}
