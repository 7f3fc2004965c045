package catalog

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.MaxSlots.Diamond != 9 {
		t.Errorf("max_slots.diamond = %d, want 9", c.MaxSlots.Diamond)
	}
	if c.MaxSlots.Coin != 6 {
		t.Errorf("max_slots.coin = %d, want 6", c.MaxSlots.Coin)
	}
	if len(c.Assets) != 54 {
		t.Errorf("assets = %d, want 54", len(c.Assets))
	}
	if got := c.CoinTables["Lobster Pool"].At(6); got != 102000 {
		t.Errorf("Lobster Pool slot 6 = %d, want 102000", got)
	}
	if got := c.DiamondTables["Lure Workbench"].At(9); got != 415 {
		t.Errorf("Lure Workbench slot 9 = %d, want 415", got)
	}
	if !c.IsExcluded("Mine") {
		t.Error("Mine should be excluded")
	}
}

func TestDefaultKinds(t *testing.T) {
	c := Default()
	kinds := c.Kinds()

	// 54 assets minus Mine.
	if len(kinds) != 53 {
		t.Fatalf("kinds = %d, want 53", len(kinds))
	}
	if kinds[0].Name != "Bakery" {
		t.Errorf("first kind = %q, want Bakery", kinds[0].Name)
	}
	for _, k := range kinds {
		if k.Name == "Mine" {
			t.Fatal("Mine must not be listed")
		}
	}

	tests := []struct {
		name      string
		instances int
		currency  Currency
		min, max  int
	}{
		{"Bakery", 1, Diamond, 2, 9},
		{"Feed Mill", 2, Diamond, 3, 9},
		{"Sugar Mill", 2, Diamond, 2, 9},
		{"Smelter", 5, Diamond, 1, 9},
		{"Net Maker", 1, Diamond, 2, 9},
		{"Lobster Pool", 1, Coin, 1, 6},
		{"Duck Salon", 1, Coin, 1, 6},
		{"Essential Oils Lab", 1, Diamond, 2, 9},
	}
	for _, tt := range tests {
		k, ok := c.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.name)
			continue
		}
		if k.Instances != tt.instances {
			t.Errorf("%s instances = %d, want %d", tt.name, k.Instances, tt.instances)
		}
		if k.Currency != tt.currency {
			t.Errorf("%s currency = %s, want %s", tt.name, k.Currency, tt.currency)
		}
		if k.MinSlots != tt.min || k.MaxSlots != tt.max {
			t.Errorf("%s slots = %d..%d, want %d..%d", tt.name, k.MinSlots, k.MaxSlots, tt.min, tt.max)
		}
	}
}

func TestLookupExcludedAndUnknown(t *testing.T) {
	c := Default()
	if _, ok := c.Lookup("Mine"); ok {
		t.Error("Lookup(Mine) should not be found")
	}
	if _, ok := c.Lookup("Windmill"); ok {
		t.Error("Lookup(Windmill) should not be found")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"01_Bakery.png", "Bakery"},
		{"33_Essential_Oils_Lab.png", "Essential Oils Lab"},
		{"Bakery.png", "Bakery"},
		{"Feed_Mill.jpg", "Feed Mill"},
		{"x1_Feed_Mill.png", "x1 Feed Mill"},
		{"_Loom.png", " Loom"},
		{"07", "07"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCostTableAt(t *testing.T) {
	table := CostTable{3: 10, 5: 45}
	if table.At(3) != 10 {
		t.Errorf("At(3) = %d, want 10", table.At(3))
	}
	if table.At(4) != 0 {
		t.Errorf("At(4) = %d, want 0 for missing slot", table.At(4))
	}
	var empty CostTable
	if empty.At(1) != 0 {
		t.Error("nil table should yield 0")
	}
	slots := table.Slots()
	if len(slots) != 2 || slots[0] != 3 || slots[1] != 5 {
		t.Errorf("Slots() = %v, want [3 5]", slots)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("testdata/small.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	kinds := c.Kinds()
	if len(kinds) != 2 {
		t.Fatalf("kinds = %d, want 2", len(kinds))
	}
	if kinds[0].Name != "Bakery" || kinds[0].Instances != 3 || kinds[0].MaxSlots != 5 {
		t.Errorf("unexpected Bakery: %+v", kinds[0])
	}
	if kinds[1].Name != "Duck Salon" || kinds[1].Currency != Coin || kinds[1].MaxSlots != 4 {
		t.Errorf("unexpected Duck Salon: %+v", kinds[1])
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/catalog.yaml"); err == nil {
		t.Error("expected error for missing catalog file")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("max_slots: [1, 2")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") failed: %v", err)
	}
	if c != Default() {
		t.Error("empty path should return the default catalog")
	}
}
