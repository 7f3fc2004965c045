package planner

import "github.com/ChicagoDave/haydaycalc/pkg/catalog"

// Building is a read-only view of one kind's selections.
type Building struct {
	Name      string           `json:"name"`
	Asset     string           `json:"asset"`
	Currency  catalog.Currency `json:"currency"`
	MinSlots  int              `json:"min_slots"`
	MaxSlots  int              `json:"max_slots"`
	Instances []Range          `json:"instances"`
	Cost      int              `json:"cost"`
}

// Plan is a point-in-time copy of the planner state.
type Plan struct {
	Reduction int        `json:"reduction"`
	Buildings []Building `json:"buildings"`
	Totals    Totals     `json:"totals"`
}

// Snapshot copies the current planner state.
func (p *Planner) Snapshot() Plan {
	plan := Plan{
		Reduction: p.reduction,
		Buildings: make([]Building, 0, len(p.buildings)),
		Totals:    p.totals,
	}
	for _, b := range p.buildings {
		ranges := make([]Range, len(b.ranges))
		copy(ranges, b.ranges)
		plan.Buildings = append(plan.Buildings, Building{
			Name:      b.kind.Name,
			Asset:     b.kind.Asset,
			Currency:  b.kind.Currency,
			MinSlots:  b.kind.MinSlots,
			MaxSlots:  b.kind.MaxSlots,
			Instances: ranges,
			Cost:      b.cost,
		})
	}
	return plan
}

// Upgrading returns the buildings that still cost something.
func (pl Plan) Upgrading() []Building {
	var out []Building
	for _, b := range pl.Buildings {
		if b.Cost > 0 {
			out = append(out, b)
		}
	}
	return out
}
