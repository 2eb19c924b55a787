// Package scenario loads simulation inputs (location declarations, SKU
// records, and the demand window) from YAML or CSV and builds a finalized
// sim.Network from them. It is the in-repo stand-in for the data-ingestion
// collaborator: the engine itself consumes only the flat record contract
// defined here and knows nothing about file layout.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LocationSpec declares one stocking point.
type LocationSpec struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"` // "PAR" or "Perpetual"
	// MaxCapacity left unset means unbounded.
	MaxCapacity *float64 `yaml:"max_capacity,omitempty"`
}

// SKURecord is the flat per-item input contract: a stable identifier, the
// owning location, a target level, a lead time in days, and a weekly demand
// rate.
type SKURecord struct {
	SKUID        string  `yaml:"sku_id"`
	LocationID   string  `yaml:"location_id"`
	TargetLevel  float64 `yaml:"target_level"`
	LeadTimeDays float64 `yaml:"lead_time_days"`
	DemandRate   float64 `yaml:"demand_rate"`
	// InitialLevel left unset means the SKU starts at its target level.
	InitialLevel *float64 `yaml:"initial_level,omitempty"`
}

// DemandSpec is the seeded demand schedule window, in simulated weeks.
type DemandSpec struct {
	StartWeek int64 `yaml:"start_week"`
	EndWeek   int64 `yaml:"end_week"`
}

// Spec is the top-level scenario configuration, loaded from YAML via Load.
type Spec struct {
	Locations []LocationSpec `yaml:"locations"`
	SKUs      []SKURecord    `yaml:"skus"`
	Demand    DemandSpec     `yaml:"demand"`
}

// Load reads and parses a scenario file. The result is not yet validated.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks the scenario against the input contract: exactly one
// Perpetual location, known location types, non-empty identifiers, and
// non-negative numeric fields.
func (s *Spec) Validate() error {
	if len(s.Locations) == 0 {
		return fmt.Errorf("scenario declares no locations")
	}
	perpetual := 0
	seen := make(map[string]bool, len(s.Locations))
	for _, l := range s.Locations {
		if l.ID == "" {
			return fmt.Errorf("location with empty id")
		}
		if seen[l.ID] {
			return fmt.Errorf("location %s declared twice", l.ID)
		}
		seen[l.ID] = true
		switch l.Type {
		case "PAR":
		case "Perpetual":
			perpetual++
		default:
			return fmt.Errorf("location %s has unknown type %q", l.ID, l.Type)
		}
		if l.MaxCapacity != nil && *l.MaxCapacity < 0 {
			return fmt.Errorf("location %s has negative max_capacity", l.ID)
		}
	}
	if perpetual != 1 {
		return fmt.Errorf("scenario declares %d Perpetual locations, want exactly 1", perpetual)
	}

	for i, r := range s.SKUs {
		if r.SKUID == "" || r.LocationID == "" {
			return fmt.Errorf("SKU record %d missing sku_id or location_id", i)
		}
		if !seen[r.LocationID] {
			return fmt.Errorf("SKU %s references undeclared location %s", r.SKUID, r.LocationID)
		}
		if r.TargetLevel < 0 || r.LeadTimeDays < 0 || r.DemandRate < 0 {
			return fmt.Errorf("SKU %s at %s has a negative numeric field", r.SKUID, r.LocationID)
		}
		if r.InitialLevel != nil && *r.InitialLevel < 0 {
			return fmt.Errorf("SKU %s at %s has negative initial_level", r.SKUID, r.LocationID)
		}
	}

	if s.Demand.EndWeek < s.Demand.StartWeek {
		return fmt.Errorf("demand window ends (week %d) before it starts (week %d)",
			s.Demand.EndWeek, s.Demand.StartWeek)
	}
	return nil
}
