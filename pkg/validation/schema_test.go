package validation

import (
	"testing"

	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
)

func validCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		MaxSlots:     catalog.SlotBounds{Diamond: 9, Coin: 6},
		DefaultStart: catalog.SlotBounds{Diamond: 2, Coin: 1},
		StartSlots:   map[string]int{"Feed Mill": 3},
		Instances:    map[string]int{"Feed Mill": 2},
		Excluded:     []string{"Mine"},
		CoinTables: map[string]catalog.CostTable{
			"Duck Salon": {2: 51000, 3: 59000},
		},
		DiamondTables: map[string]catalog.CostTable{
			"Net Maker": {3: 10, 4: 20},
		},
		Assets: []string{
			"01_Bakery.png", "02_Feed_Mill.png", "03_Mine.png",
			"04_Duck_Salon.png", "05_Net_Maker.png",
		},
	}
}

func TestValidateCatalogValid(t *testing.T) {
	r := ValidateCatalog(validCatalog())
	if !r.Valid {
		t.Errorf("expected valid report, got %d errors: %v", len(r.Errors), r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
	if len(r.Info) != 1 || r.Info[0].Message != "4 plannable kinds" {
		t.Errorf("unexpected info: %v", r.Info)
	}
}

func TestValidateDefaultCatalog(t *testing.T) {
	r := ValidateCatalog(catalog.Default())
	if !r.Valid {
		t.Errorf("default catalog invalid: %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("default catalog warnings: %v", r.Warnings)
	}
}

func TestValidateCatalogBounds(t *testing.T) {
	c := validCatalog()
	c.MaxSlots.Coin = 0
	r := ValidateCatalog(c)
	if r.Valid {
		t.Error("expected invalid report for max_slots.coin = 0")
	}
	assertHasError(t, r, "max_slots.coin")
	assertHasError(t, r, "default_start.coin")
}

func TestValidateCatalogStartAboveMax(t *testing.T) {
	c := validCatalog()
	c.StartSlots["Feed Mill"] = 12
	r := ValidateCatalog(c)
	assertHasError(t, r, "start_slots.Feed Mill")
}

func TestValidateCatalogInstances(t *testing.T) {
	c := validCatalog()
	c.Instances["Feed Mill"] = 0
	c.Instances["Windmill"] = 2
	r := ValidateCatalog(c)
	assertHasError(t, r, "instances.Feed Mill")
	assertHasWarning(t, r, "instances.Windmill")
}

func TestValidateCatalogDuplicateAsset(t *testing.T) {
	c := validCatalog()
	c.Assets = append(c.Assets, "06_Bakery.jpg")
	r := ValidateCatalog(c)
	assertHasError(t, r, "assets[5]")
}

func TestValidateCatalogNoAssets(t *testing.T) {
	c := validCatalog()
	c.Assets = nil
	r := ValidateCatalog(c)
	assertHasError(t, r, "assets")
}

func TestValidateCatalogExcludedUnknown(t *testing.T) {
	c := validCatalog()
	c.Excluded = append(c.Excluded, "Windmill")
	r := ValidateCatalog(c)
	if !r.Valid {
		t.Error("unknown exclusions should only warn")
	}
	assertHasWarning(t, r, "excluded")
}

func TestValidateCatalogBothCurrencies(t *testing.T) {
	c := validCatalog()
	c.DiamondTables["Duck Salon"] = catalog.CostTable{3: 5}
	r := ValidateCatalog(c)
	assertHasError(t, r, "diamond_tables.Duck Salon")
}

func TestValidateCatalogTableEntries(t *testing.T) {
	c := validCatalog()
	c.CoinTables["Duck Salon"][7] = 1000
	c.DiamondTables["Net Maker"][5] = -1
	c.DiamondTables["Windmill"] = catalog.CostTable{3: 1}
	r := ValidateCatalog(c)

	assertHasWarning(t, r, "coin_tables.Duck Salon[7]")
	assertHasError(t, r, "diamond_tables.Net Maker[5]")
	assertHasWarning(t, r, "diamond_tables.Windmill")
}

func assertHasError(t *testing.T, r *Report, path string) {
	t.Helper()
	for _, e := range r.Errors {
		if e.Path == path {
			return
		}
	}
	t.Errorf("expected error at path %q, got errors: %v", path, r.Errors)
}

func assertHasWarning(t *testing.T, r *Report, path string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Path == path {
			return
		}
	}
	t.Errorf("expected warning at path %q, got warnings: %v", path, r.Warnings)
}
