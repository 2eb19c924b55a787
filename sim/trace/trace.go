package trace

import "github.com/google/uuid"

// Level controls trace verbosity.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelEvents captures every stockout and emergency transfer.
	LevelEvents Level = "events"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:   true,
	LevelEvents: true,
	"":          true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is recognized.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Config controls trace collection behavior.
type Config struct {
	Level Level
}

// RunTrace collects stockout and transfer records during a simulation run.
// Each trace carries a unique run identifier for correlating exported
// summaries.
type RunTrace struct {
	RunID     string           `json:"run_id"`
	Config    Config           `json:"-"`
	Stockouts []StockoutRecord `json:"stockouts"`
	Transfers []TransferRecord `json:"transfers"`
}

// New creates a RunTrace ready for recording.
func New(config Config) *RunTrace {
	return &RunTrace{
		RunID:     uuid.NewString(),
		Config:    config,
		Stockouts: make([]StockoutRecord, 0),
		Transfers: make([]TransferRecord, 0),
	}
}

// Enabled reports whether records should be collected.
func (t *RunTrace) Enabled() bool {
	return t != nil && t.Config.Level == LevelEvents
}

// RecordStockout appends a stockout record.
func (t *RunTrace) RecordStockout(rec StockoutRecord) {
	t.Stockouts = append(t.Stockouts, rec)
}

// RecordTransfer appends an emergency-transfer record.
func (t *RunTrace) RecordTransfer(rec TransferRecord) {
	t.Transfers = append(t.Transfers, rec)
}
