package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It is parsed once and must not be
// modified by callers.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	return &c, nil
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault loads the catalog at path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// DisplayName derives a kind name from an asset filename: the extension is
// dropped, a leading numeric token before the first underscore is stripped,
// and the remaining underscores become spaces.
//
//	"01_Bakery.png"             -> "Bakery"
//	"33_Essential_Oils_Lab.png" -> "Essential Oils Lab"
func DisplayName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if prefix, rest, ok := strings.Cut(base, "_"); ok && isDigits(prefix) {
		base = rest
	}
	return strings.ReplaceAll(base, "_", " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsExcluded reports whether the named kind is hidden from planning.
func (c *Catalog) IsExcluded(name string) bool {
	for _, e := range c.Excluded {
		if e == name {
			return true
		}
	}
	return false
}

// IsCoin reports whether the named kind is priced in coins.
func (c *Catalog) IsCoin(name string) bool {
	_, ok := c.CoinTables[name]
	return ok
}

// DiamondTable returns the override table for a diamond kind, if it has one.
func (c *Catalog) DiamondTable(name string) (CostTable, bool) {
	t, ok := c.DiamondTables[name]
	return t, ok
}

// Kinds returns every non-excluded kind in asset order. Assets that resolve
// to the same name are reported once.
func (c *Catalog) Kinds() []Kind {
	kinds := make([]Kind, 0, len(c.Assets))
	seen := make(map[string]bool, len(c.Assets))
	for _, asset := range c.Assets {
		name := DisplayName(asset)
		if seen[name] || c.IsExcluded(name) {
			continue
		}
		seen[name] = true
		kinds = append(kinds, c.resolve(name, asset))
	}
	return kinds
}

// Lookup resolves a single kind by name. Excluded kinds and names not in the
// asset list are not found.
func (c *Catalog) Lookup(name string) (Kind, bool) {
	if c.IsExcluded(name) {
		return Kind{}, false
	}
	for _, asset := range c.Assets {
		if DisplayName(asset) == name {
			return c.resolve(name, asset), true
		}
	}
	return Kind{}, false
}

func (c *Catalog) resolve(name, asset string) Kind {
	k := Kind{
		Name:      name,
		Asset:     asset,
		Instances: 1,
		Currency:  Diamond,
	}
	if n, ok := c.Instances[name]; ok && n > 0 {
		k.Instances = n
	}
	if t, ok := c.CoinTables[name]; ok {
		k.Currency = Coin
		k.Table = t
	} else if t, ok := c.DiamondTables[name]; ok {
		k.Table = t
	}
	k.MaxSlots = c.MaxSlots.For(k.Currency)
	k.MinSlots = c.DefaultStart.For(k.Currency)
	if n, ok := c.StartSlots[name]; ok {
		k.MinSlots = n
	}
	return k
}
