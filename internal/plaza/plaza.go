// Package plaza maps raw exit interchange codes to human-readable plaza
// names. It is consulted at render time only — aggregation always keys and
// sorts by raw code, so name collisions in this table can never change
// grouping.
package plaza

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultNames covers the plazas seen in real statements. Entries loaded
// from a names file are merged over these.
var defaultNames = map[string]string{
	// Pennsylvania Turnpike (T3xx E/W)
	"T322 E": "Interchange 322 (Eastbound)",
	"T322 W": "Interchange 322 (Westbound)",
	"T331 E": "Norristown (Eastbound)",
	"T331 W": "Norristown (Westbound)",
	"T336 E": "Fort Washington (Eastbound)",
	"T336 W": "Fort Washington (Westbound)",
	"T340 W": "Virginia Drive (Westbound)",
	"T341 E": "Willow Grove (Eastbound)",
	"T341 W": "Willow Grove (Westbound)",
	"T349 E": "Bensalem (Eastbound)",
	"T349 W": "Bensalem (Westbound)",
	"T353 E": "Neshaminy Falls (Eastbound)",
	"T353 W": "Neshaminy Falls (Westbound)",
	// Maryland / Delaware River / New Jersey
	"Md Trans Auth - FMT":       "Maryland Trans Auth – Fort McHenry Tunnel",
	"Md Trans Auth - JFK":       "Maryland Trans Auth – JFK Memorial Hwy",
	"Delaware DOT - D95":        "Delaware DOT – I-95",
	"Del River Port Auth - BFB": "Delaware River Port Auth – Ben Franklin Bridge",
	"DRJT Bridge Comm - SF":     "Delaware River Joint Toll – Scudder Falls",
	"DRJT Bridge Comm - T-M":    "Delaware River Joint Toll – Trenton–Morrisville",
	"Burlington Br Comm - TPB":  "Burlington Bridge – Tacony Palmyra",
	"Central Bus. Dist. - CXC":  "Central Business District – CXC",
	"New Jersey Turnpike - 6":   "New Jersey Turnpike – Exit 6",
	"New Jersey Turnpike - 14C": "New Jersey Turnpike – Exit 14C",
	"H43 S":                     "Route 43 South",
}

// Directory resolves exit codes to display names.
type Directory struct {
	names map[string]string
}

// Default returns a directory holding only the built-in table.
func Default() *Directory {
	names := make(map[string]string, len(defaultNames))
	for code, name := range defaultNames {
		names[code] = name
	}
	return &Directory{names: names}
}

// Load builds a directory from a YAML file of code→name pairs merged over
// the built-in table. An empty path returns the defaults.
func Load(path string) (*Directory, error) {
	d := Default()
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plaza names file: %w", err)
	}
	var extra map[string]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse plaza names file %s: %w", path, err)
	}
	for code, name := range extra {
		d.names[code] = name
	}
	return d, nil
}

// DisplayName returns the human-readable name for an exit code, or the raw
// code itself when the directory has no entry for it.
func (d *Directory) DisplayName(code string) string {
	if name, ok := d.names[code]; ok {
		return name
	}
	return code
}
