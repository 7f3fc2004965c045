package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
	"github.com/ChicagoDave/haydaycalc/pkg/planner"
)

// edit is one parsed --set flag.
type edit struct {
	kind     string
	instance int // 1-based; 0 means every instance
	rng      planner.Range
}

// parseEdit parses Name[#n]=current:target.
func parseEdit(s string) (edit, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return edit{}, fmt.Errorf("invalid --set %q: want Name[#n]=current:target", s)
	}

	var e edit
	e.kind = strings.TrimSpace(lhs)
	if name, n, ok := strings.Cut(e.kind, "#"); ok {
		idx, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || idx < 1 {
			return edit{}, fmt.Errorf("invalid instance in --set %q: want a number from 1", s)
		}
		e.kind = strings.TrimSpace(name)
		e.instance = idx
	}
	if e.kind == "" {
		return edit{}, fmt.Errorf("invalid --set %q: missing kind", s)
	}

	cur, tgt, ok := strings.Cut(rhs, ":")
	if !ok {
		return edit{}, fmt.Errorf("invalid --set %q: want current:target", s)
	}
	var err error
	if e.rng.Current, err = strconv.Atoi(strings.TrimSpace(cur)); err != nil {
		return edit{}, fmt.Errorf("invalid current in --set %q: %w", s, err)
	}
	if e.rng.Target, err = strconv.Atoi(strings.TrimSpace(tgt)); err != nil {
		return edit{}, fmt.Errorf("invalid target in --set %q: %w", s, err)
	}
	return e, nil
}

func (e edit) apply(p *planner.Planner, c *catalog.Catalog) error {
	kind, ok := c.Lookup(e.kind)
	if !ok {
		return fmt.Errorf("unknown kind %q", e.kind)
	}
	if e.instance > kind.Instances {
		return fmt.Errorf("%s has %d instances, got #%d", kind.Name, kind.Instances, e.instance)
	}

	if e.instance > 0 {
		p.SetRange(kind.Name, e.instance-1, e.rng)
		return nil
	}
	for i := 0; i < kind.Instances; i++ {
		p.SetRange(kind.Name, i, e.rng)
	}
	return nil
}
