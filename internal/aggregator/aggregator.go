// Package aggregator groups deposit records by unit.
package aggregator

import (
	"fjacquet/expensas-report/internal/models"
)

// Groups partitions deposits by unit, keeping sheet order inside each group.
type Groups struct {
	byUnit map[string][]models.DepositRecord
	order  []string
}

// Group partitions deposits by UnitID.
func Group(deposits []models.DepositRecord) *Groups {
	g := &Groups{byUnit: make(map[string][]models.DepositRecord)}
	for _, d := range deposits {
		if _, ok := g.byUnit[d.UnitID]; !ok {
			g.order = append(g.order, d.UnitID)
		}
		g.byUnit[d.UnitID] = append(g.byUnit[d.UnitID], d)
	}
	return g
}

// Lookup returns the deposits of unit. The boolean is false when the unit
// has no deposit records at all.
func (g *Groups) Lookup(unit string) ([]models.DepositRecord, bool) {
	records, ok := g.byUnit[unit]
	return records, ok
}

// Units lists the units with deposits in first-seen order.
func (g *Groups) Units() []string {
	return append([]string(nil), g.order...)
}

// Missing returns the units that have deposits but are not in selection.
// Those deposits never reach the report, which usually means a typo in the
// sheet or in the selection list.
func (g *Groups) Missing(selection []string) []string {
	selected := make(map[string]bool, len(selection))
	for _, u := range selection {
		selected[u] = true
	}
	var out []string
	for _, u := range g.order {
		if !selected[u] {
			out = append(out, u)
		}
	}
	return out
}
