package catalog

import "sort"

// Currency is the in-game currency a kind's slots are paid in.
type Currency string

const (
	Diamond Currency = "diamond"
	Coin    Currency = "coin"
)

// Catalog is the static cost configuration for every production building.
type Catalog struct {
	MaxSlots      SlotBounds           `yaml:"max_slots" json:"max_slots"`
	DefaultStart  SlotBounds           `yaml:"default_start" json:"default_start"`
	StartSlots    map[string]int       `yaml:"start_slots" json:"start_slots"`
	Instances     map[string]int       `yaml:"instances" json:"instances"`
	Excluded      []string             `yaml:"excluded" json:"excluded"`
	CoinTables    map[string]CostTable `yaml:"coin_tables" json:"coin_tables"`
	DiamondTables map[string]CostTable `yaml:"diamond_tables" json:"diamond_tables"`
	Assets        []string             `yaml:"assets" json:"assets"`
}

// SlotBounds holds one slot count per currency.
type SlotBounds struct {
	Diamond int `yaml:"diamond" json:"diamond"`
	Coin    int `yaml:"coin" json:"coin"`
}

// For returns the bound that applies to the given currency.
func (b SlotBounds) For(c Currency) int {
	if c == Coin {
		return b.Coin
	}
	return b.Diamond
}

// CostTable maps a slot index (the slot being unlocked) to its marginal cost.
type CostTable map[int]int

// At returns the marginal cost of unlocking slot n, or 0 when the table has
// no entry for it.
func (t CostTable) At(n int) int {
	if v, ok := t[n]; ok {
		return v
	}
	return 0
}

// Slots returns the table's slot indices in ascending order.
func (t CostTable) Slots() []int {
	slots := make([]int, 0, len(t))
	for n := range t {
		slots = append(slots, n)
	}
	sort.Ints(slots)
	return slots
}

// Kind is a fully resolved building kind.
type Kind struct {
	Name      string    `json:"name"`
	Asset     string    `json:"asset"`
	Instances int       `json:"instances"`
	Currency  Currency  `json:"currency"`
	MinSlots  int       `json:"min_slots"`
	MaxSlots  int       `json:"max_slots"`
	Table     CostTable `json:"table,omitempty"`
}
