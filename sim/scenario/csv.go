package scenario

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadSKURecordsCSV reads SKU records from a CSV file with a header row.
// Required columns: sku_id, location_id, target_level, lead_time_days,
// demand_rate. Optional: initial_level (empty cells mean start-at-target).
// Column order is free; unknown columns are ignored.
func LoadSKURecordsCSV(path string) ([]SKURecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open SKU records %s: %w", path, err)
	}
	defer f.Close()
	records, err := parseSKURecords(f)
	if err != nil {
		return nil, fmt.Errorf("parse SKU records %s: %w", path, err)
	}
	return records, nil
}

func parseSKURecords(r io.Reader) ([]SKURecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"sku_id", "location_id", "target_level", "lead_time_days", "demand_rate"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var out []SKURecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec := SKURecord{
			SKUID:      strings.TrimSpace(row[col["sku_id"]]),
			LocationID: strings.TrimSpace(row[col["location_id"]]),
		}
		if rec.TargetLevel, err = parseFloat(row[col["target_level"]]); err != nil {
			return nil, fmt.Errorf("line %d: target_level: %w", line, err)
		}
		if rec.LeadTimeDays, err = parseFloat(row[col["lead_time_days"]]); err != nil {
			return nil, fmt.Errorf("line %d: lead_time_days: %w", line, err)
		}
		if rec.DemandRate, err = parseFloat(row[col["demand_rate"]]); err != nil {
			return nil, fmt.Errorf("line %d: demand_rate: %w", line, err)
		}
		if i, ok := col["initial_level"]; ok && strings.TrimSpace(row[i]) != "" {
			v, err := parseFloat(row[i])
			if err != nil {
				return nil, fmt.Errorf("line %d: initial_level: %w", line, err)
			}
			rec.InitialLevel = &v
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
