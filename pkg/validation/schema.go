package validation

import (
	"fmt"
	"sort"

	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
)

// ValidateCatalog checks a parsed catalog for structural problems before it
// is used for pricing.
func ValidateCatalog(c *catalog.Catalog) *Report {
	r := NewReport()
	for _, check := range []func(*catalog.Catalog, *Report){
		validateBounds,
		validateAssets,
		validateKinds,
		validateTables,
	} {
		part := NewReport()
		check(c, part)
		r.Merge(part)
	}

	if r.Valid {
		r.AddInfo(Result{
			Level:   LevelKinds,
			Message: fmt.Sprintf("%d plannable kinds", len(c.Kinds())),
			Path:    "assets",
		})
	}
	return r
}

func validateBounds(c *catalog.Catalog, r *Report) {
	bounds := []struct {
		path  string
		value int
	}{
		{"max_slots.diamond", c.MaxSlots.Diamond},
		{"max_slots.coin", c.MaxSlots.Coin},
		{"default_start.diamond", c.DefaultStart.Diamond},
		{"default_start.coin", c.DefaultStart.Coin},
	}
	for _, b := range bounds {
		if b.value <= 0 {
			r.AddError(Result{
				Level:       LevelBounds,
				Message:     fmt.Sprintf("%s must be greater than 0", b.path),
				Path:        b.path,
				ActualValue: b.value,
				Expected:    "> 0",
			})
		}
	}

	if c.DefaultStart.Diamond > c.MaxSlots.Diamond {
		r.AddError(Result{
			Level:       LevelBounds,
			Message:     "default_start.diamond exceeds max_slots.diamond",
			Path:        "default_start.diamond",
			ActualValue: c.DefaultStart.Diamond,
			Expected:    fmt.Sprintf("<= %d", c.MaxSlots.Diamond),
		})
	}
	if c.DefaultStart.Coin > c.MaxSlots.Coin {
		r.AddError(Result{
			Level:       LevelBounds,
			Message:     "default_start.coin exceeds max_slots.coin",
			Path:        "default_start.coin",
			ActualValue: c.DefaultStart.Coin,
			Expected:    fmt.Sprintf("<= %d", c.MaxSlots.Coin),
		})
	}
}

func validateAssets(c *catalog.Catalog, r *Report) {
	if len(c.Assets) == 0 {
		r.AddError(Result{
			Level:    LevelKinds,
			Message:  "assets must list at least one building",
			Path:     "assets",
			Expected: "at least 1 asset",
		})
		return
	}

	seen := make(map[string]int, len(c.Assets))
	for i, asset := range c.Assets {
		name := catalog.DisplayName(asset)
		if prev, ok := seen[name]; ok {
			r.AddError(Result{
				Level:       LevelKinds,
				Message:     fmt.Sprintf("assets[%d] (%s) duplicates assets[%d]", i, name, prev),
				Path:        fmt.Sprintf("assets[%d]", i),
				ActualValue: asset,
			})
			continue
		}
		seen[name] = i
	}

	for _, name := range c.Excluded {
		if _, ok := seen[name]; !ok {
			r.AddWarning(Result{
				Level:       LevelKinds,
				Message:     fmt.Sprintf("excluded kind %q has no asset", name),
				Path:        "excluded",
				ActualValue: name,
			})
		}
	}
}

func validateKinds(c *catalog.Catalog, r *Report) {
	for _, name := range sortedKeys(c.Instances) {
		n := c.Instances[name]
		if n < 1 {
			r.AddError(Result{
				Level:       LevelKinds,
				Message:     fmt.Sprintf("instances of %s must be at least 1", name),
				Path:        fmt.Sprintf("instances.%s", name),
				ActualValue: n,
				Expected:    ">= 1",
			})
		}
		if _, ok := c.Lookup(name); !ok && !c.IsExcluded(name) {
			r.AddWarning(Result{
				Level:   LevelKinds,
				Message: fmt.Sprintf("instances set for unknown kind %q", name),
				Path:    fmt.Sprintf("instances.%s", name),
			})
		}
	}

	for _, k := range c.Kinds() {
		if k.MinSlots < 1 || k.MinSlots > k.MaxSlots {
			r.AddError(Result{
				Level:       LevelKinds,
				Message:     fmt.Sprintf("%s start slots (%d) must lie within 1..%d", k.Name, k.MinSlots, k.MaxSlots),
				Path:        fmt.Sprintf("start_slots.%s", k.Name),
				ActualValue: k.MinSlots,
				Expected:    fmt.Sprintf("1..%d", k.MaxSlots),
			})
		}
	}
}

func validateTables(c *catalog.Catalog, r *Report) {
	for _, name := range sortedKeys(c.CoinTables) {
		if _, ok := c.DiamondTables[name]; ok {
			r.AddError(Result{
				Level:       LevelTables,
				Message:     fmt.Sprintf("%s is priced in both coins and diamonds", name),
				Path:        fmt.Sprintf("diamond_tables.%s", name),
				Suggestions: []string{"Remove one of the two tables"},
			})
		}
	}

	check := func(section string, tables map[string]catalog.CostTable, currency catalog.Currency) {
		maxSlots := c.MaxSlots.For(currency)
		for _, name := range sortedKeys(tables) {
			table := tables[name]
			if _, ok := c.Lookup(name); !ok && !c.IsExcluded(name) {
				r.AddWarning(Result{
					Level:   LevelTables,
					Message: fmt.Sprintf("%s table for unknown kind %q", section, name),
					Path:    fmt.Sprintf("%s.%s", section, name),
				})
			}
			for _, slot := range table.Slots() {
				path := fmt.Sprintf("%s.%s[%d]", section, name, slot)
				if cost := table[slot]; cost < 0 {
					r.AddError(Result{
						Level:       LevelTables,
						Message:     fmt.Sprintf("%s slot %d has a negative cost", name, slot),
						Path:        path,
						ActualValue: cost,
						Expected:    ">= 0",
					})
				}
				if slot < 2 || slot > maxSlots {
					r.AddWarning(Result{
						Level:       LevelTables,
						Message:     fmt.Sprintf("%s slot %d can never be unlocked", name, slot),
						Path:        path,
						ActualValue: slot,
						Expected:    fmt.Sprintf("2..%d", maxSlots),
						Suggestions: []string{"Entries outside the slot range are ignored"},
					})
				}
			}
		}
	}
	check("coin_tables", c.CoinTables, catalog.Coin)
	check("diamond_tables", c.DiamondTables, catalog.Diamond)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
