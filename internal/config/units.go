package config

import (
	"fmt"
	"os"

	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultUnits is the building's unit list: the shops first, then the
// apartments from the top floor down.
var DefaultUnits = []string{
	"T5", "T4", "T3", "T2", "T1",
	"9E", "9D", "9C", "9B", "9A",
	"8E", "8D", "8C", "8B", "8A",
	"7E", "7D", "7C", "7B", "7A",
	"6E", "6D", "6C", "6B", "6A",
	"5E", "5D", "5C", "5B", "5A",
	"4E", "4D", "4C", "4B", "4A",
	"3E", "3D", "3C", "3B", "3A",
	"2E", "2D", "2C", "2B", "2A",
	"1E", "1D", "1C", "1B", "1A",
}

type unitsFile struct {
	Units []string `yaml:"units"`
}

// LoadUnitsFile reads a selection list from a YAML file. Both a bare list
// and a document with a top-level "units" key are accepted.
func LoadUnitsFile(path string) ([]string, error) {
	list, err := readUnitsFile(path)
	if err != nil {
		return nil, err
	}
	units := NormalizeUnits(list)
	if len(units) == 0 {
		return nil, fmt.Errorf("units file %s lists no units", path)
	}
	return units, nil
}

func readUnitsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to read units file: %w", err)
	}

	var list []string
	if err := yaml.Unmarshal(data, &list); err != nil {
		var doc unitsFile
		if docErr := yaml.Unmarshal(data, &doc); docErr != nil {
			return nil, fmt.Errorf("failed to parse units file %s: %w", path, docErr)
		}
		list = doc.Units
	}
	return list, nil
}

// NormalizeUnits normalizes unit identifiers and drops blanks and duplicates,
// keeping the first occurrence.
func NormalizeUnits(units []string) []string {
	out, _ := normalizeUnits(units)
	return out
}

// normalizeUnits also returns every dropped repeat, once per repetition.
func normalizeUnits(units []string) (out, duplicates []string) {
	seen := make(map[string]bool, len(units))
	out = make([]string, 0, len(units))
	for _, u := range units {
		id := models.NormalizeUnit(u)
		if id == "" {
			continue
		}
		if seen[id] {
			duplicates = append(duplicates, id)
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, duplicates
}

// ResolveUnits picks the selection list: explicit units first, then a
// units file, then the configured list, then DefaultUnits. A unit listed
// more than once keeps its first position and every repeat is logged as a
// warning on logger, which may be nil.
func (c *Config) ResolveUnits(explicit []string, file string, logger logging.Logger) ([]string, error) {
	if units := selection(explicit, "--units", logger); len(units) > 0 {
		return units, nil
	}
	if file == "" {
		file = c.Report.UnitsFile
	}
	if file != "" {
		list, err := readUnitsFile(file)
		if err != nil {
			return nil, err
		}
		units := selection(list, file, logger)
		if len(units) == 0 {
			return nil, fmt.Errorf("units file %s lists no units", file)
		}
		return units, nil
	}
	if units := selection(c.Report.Units, "report.units", logger); len(units) > 0 {
		return units, nil
	}
	return append([]string(nil), DefaultUnits...), nil
}

func selection(list []string, source string, logger logging.Logger) []string {
	units, duplicates := normalizeUnits(list)
	if logger != nil {
		for _, id := range duplicates {
			logger.Warn("Unit listed more than once, ignoring the repeat",
				logging.F(logging.FieldUnit, id),
				logging.F(logging.FieldSource, source))
		}
	}
	return units
}
