package cost

import (
	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
)

// Calculator prices slot upgrades against a catalog.
type Calculator struct {
	catalog *catalog.Catalog
}

// New creates a calculator for the given catalog.
func New(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// Catalog returns the catalog the calculator prices against.
func (c *Calculator) Catalog() *catalog.Catalog {
	return c.catalog
}

// DiamondCost returns the diamonds needed to go from start to target slots on
// the named kind. Kinds with an override table are summed from the table;
// all others use the default progression, which restarts at BaseDiamondCost
// for every range regardless of the absolute slot numbers.
func (c *Calculator) DiamondCost(target, start int, kind string) int {
	if target <= start {
		return 0
	}
	if table, ok := c.catalog.DiamondTable(kind); ok {
		return sumTable(target, start, table)
	}

	total := 0
	for n := start + 1; n <= target; n++ {
		paid := n - start - 1
		total += BaseDiamondCost + paid*DiamondCostStep
	}
	return total
}

// KindCost prices one instance of a kind, dispatching on its currency.
// Excluded kinds never cost anything.
func (c *Calculator) KindCost(k catalog.Kind, current, target int) int {
	if c.catalog.IsExcluded(k.Name) {
		return 0
	}
	if k.Currency == catalog.Coin {
		return CoinCost(target, current, k.Table)
	}
	return c.DiamondCost(target, current, k.Name)
}

// CoinCost returns the coins needed to go from start to target slots using
// the given table. Slots missing from the table are free.
func CoinCost(target, start int, table catalog.CostTable) int {
	if target <= start {
		return 0
	}
	return sumTable(target, start, table)
}

var std = New(catalog.Default())

// DiamondCost prices a diamond upgrade against the default catalog.
func DiamondCost(target, start int, kind string) int {
	return std.DiamondCost(target, start, kind)
}

func sumTable(target, start int, table catalog.CostTable) int {
	total := 0
	for n := start + 1; n <= target; n++ {
		total += table.At(n)
	}
	return total
}
