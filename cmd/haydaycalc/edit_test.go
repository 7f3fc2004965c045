package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
	"github.com/ChicagoDave/haydaycalc/pkg/planner"
)

func TestParseEdit(t *testing.T) {
	tests := []struct {
		in   string
		want edit
	}{
		{"Bakery=2:5", edit{kind: "Bakery", rng: planner.Range{Current: 2, Target: 5}}},
		{"Smelter#3=1:4", edit{kind: "Smelter", instance: 3, rng: planner.Range{Current: 1, Target: 4}}},
		{" Net Maker = 4 : 9", edit{kind: "Net Maker", rng: planner.Range{Current: 4, Target: 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseEdit(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEditErrors(t *testing.T) {
	for _, in := range []string{
		"Bakery",
		"Bakery=2",
		"=2:5",
		"Bakery#0=2:5",
		"Bakery#x=2:5",
		"Bakery=a:5",
		"Bakery=2:b",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := parseEdit(in)
			assert.Error(t, err)
		})
	}
}

func TestEditApply(t *testing.T) {
	c := catalog.Default()

	t.Run("all instances", func(t *testing.T) {
		p := planner.New(c)
		require.NoError(t, edit{kind: "Smelter", rng: planner.Range{Current: 9, Target: 9}}.apply(p, c))
		assert.Equal(t, 0, p.KindCost("Smelter"))
	})

	t.Run("one instance", func(t *testing.T) {
		p := planner.New(c)
		require.NoError(t, edit{kind: "Smelter", instance: 2, rng: planner.Range{Current: 9, Target: 9}}.apply(p, c))
		assert.Equal(t, 4*132, p.KindCost("Smelter"))
		r, _ := p.Range("Smelter", 1)
		assert.Equal(t, planner.Range{Current: 9, Target: 9}, r)
	})

	t.Run("unknown kind", func(t *testing.T) {
		p := planner.New(c)
		assert.Error(t, edit{kind: "Mine"}.apply(p, c))
	})

	t.Run("instance out of range", func(t *testing.T) {
		p := planner.New(c)
		assert.Error(t, edit{kind: "Bakery", instance: 2}.apply(p, c))
	})
}
