// Package planner holds the per-instance slot selections for every visible
// building kind and derives per-kind and global upgrade costs from them.
package planner

import (
	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
	"github.com/ChicagoDave/haydaycalc/pkg/cost"
)

// MaxReduction is the largest accepted global target reduction.
const MaxReduction = 8

// Totals is the global cost split by currency.
type Totals struct {
	Diamonds int `json:"diamonds"`
	Coins    int `json:"coins"`
}

type building struct {
	kind   catalog.Kind
	ranges []Range
	cost   int
}

// Planner tracks the slot selections of every instance. It is not safe for
// concurrent use.
type Planner struct {
	calc      *cost.Calculator
	buildings []*building
	index     map[string]int
	reduction int
	totals    Totals
}

// New creates a planner over every non-excluded kind in c, with every
// instance set to (MinSlots, MaxSlots).
func New(c *catalog.Catalog) *Planner {
	kinds := c.Kinds()
	p := &Planner{
		calc:      cost.New(c),
		buildings: make([]*building, 0, len(kinds)),
		index:     make(map[string]int, len(kinds)),
	}
	for i, k := range kinds {
		p.buildings = append(p.buildings, &building{kind: k})
		p.index[k.Name] = i
	}
	p.Reset()
	return p
}

// Reset restores every instance to its default range and clears the
// reduction.
func (p *Planner) Reset() {
	p.reduction = 0
	for _, b := range p.buildings {
		b.ranges = make([]Range, b.kind.Instances)
		for i := range b.ranges {
			b.ranges[i] = Range{Current: b.kind.MinSlots, Target: b.kind.MaxSlots}
		}
		p.price(b)
	}
	p.sum()
}

// SetCurrent moves the current handle of one instance. It reports false when
// the kind or instance does not exist.
func (p *Planner) SetCurrent(kind string, instance, v int) bool {
	b, ok := p.instance(kind, instance)
	if !ok {
		return false
	}
	b.ranges[instance] = b.ranges[instance].WithCurrent(v, b.kind.MinSlots)
	p.changed(b)
	return true
}

// SetTarget moves the target handle of one instance. It reports false when
// the kind or instance does not exist.
func (p *Planner) SetTarget(kind string, instance, v int) bool {
	b, ok := p.instance(kind, instance)
	if !ok {
		return false
	}
	b.ranges[instance] = b.ranges[instance].WithTarget(v, b.kind.MaxSlots)
	p.changed(b)
	return true
}

// SetRange sets both handles of one instance, target first so the pair stays
// ordered after clamping.
func (p *Planner) SetRange(kind string, instance int, r Range) bool {
	if !p.SetTarget(kind, instance, r.Target) {
		return false
	}
	return p.SetCurrent(kind, instance, r.Current)
}

// SetReduction lowers every kind's target to MaxSlots-r and resets its
// current handle to MinSlots. Kinds for which MaxSlots-r would fall below
// MinSlots are left untouched. r is clamped to [0, MaxReduction].
func (p *Planner) SetReduction(r int) {
	p.reduction = clamp(r, 0, MaxReduction)
	for _, b := range p.buildings {
		target := b.kind.MaxSlots - p.reduction
		if target < b.kind.MinSlots {
			continue
		}
		for i := range b.ranges {
			b.ranges[i] = Range{Current: b.kind.MinSlots, Target: target}
		}
		p.price(b)
	}
	p.sum()
}

// Reduction returns the last applied global reduction.
func (p *Planner) Reduction() int {
	return p.reduction
}

// Range returns the selection of one instance.
func (p *Planner) Range(kind string, instance int) (Range, bool) {
	b, ok := p.instance(kind, instance)
	if !ok {
		return Range{}, false
	}
	return b.ranges[instance], true
}

// KindCost returns the summed cost of every instance of a kind.
func (p *Planner) KindCost(kind string) int {
	i, ok := p.index[kind]
	if !ok {
		return 0
	}
	return p.buildings[i].cost
}

// Totals returns the global cost per currency.
func (p *Planner) Totals() Totals {
	return p.totals
}

func (p *Planner) instance(kind string, instance int) (*building, bool) {
	i, ok := p.index[kind]
	if !ok {
		return nil, false
	}
	b := p.buildings[i]
	if instance < 0 || instance >= len(b.ranges) {
		return nil, false
	}
	return b, true
}

func (p *Planner) changed(b *building) {
	p.price(b)
	p.sum()
}

func (p *Planner) price(b *building) {
	total := 0
	for _, r := range b.ranges {
		total += p.calc.KindCost(b.kind, r.Current, r.Target)
	}
	b.cost = total
}

// sum re-derives the totals from every kind's cost.
func (p *Planner) sum() {
	var t Totals
	for _, b := range p.buildings {
		if b.kind.Currency == catalog.Coin {
			t.Coins += b.cost
		} else {
			t.Diamonds += b.cost
		}
	}
	p.totals = t
}
