package engine

import (
	"time"

	"github.com/lixenwraith/alchemy/element"
	"github.com/lixenwraith/alchemy/parameter"
)

// TestEpoch is the start time of worlds built by NewTestWorld
var TestEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestConfig builds a small validated config: the four base elements and four products
func NewTestConfig() *element.Config {
	defs := []element.Definition{
		{ID: "Air", Name: "Air"},
		{ID: "Fire", Name: "Fire"},
		{ID: "Earth", Name: "Earth"},
		{ID: "Water", Name: "Water"},
		{ID: "Energy", Name: "Energy"},
		{ID: "Steam", Name: "Steam"},
		{ID: "Lava", Name: "Lava"},
		{ID: "Mud", Name: "Mud"},
	}
	catalog, err := element.NewCatalog("<test>", defs)
	if err != nil {
		panic(err)
	}
	rules := []element.Rule{
		{Pair: element.MakePair("Air", "Fire"), Result: "Energy"},
		{Pair: element.MakePair("Water", "Fire"), Result: "Steam"},
		{Pair: element.MakePair("Earth", "Fire"), Result: "Lava"},
		{Pair: element.MakePair("Earth", "Water"), Result: "Mud"},
	}
	table, err := element.NewTable("<test>", catalog, rules)
	if err != nil {
		panic(err)
	}
	base := make([]string, len(parameter.BaseElements))
	copy(base, parameter.BaseElements)
	return &element.Config{Catalog: catalog, Table: table, Base: base}
}

// NewTestWorld creates a strict world on a mock clock at TestEpoch
func NewTestWorld() (*World, *MockTimeProvider) {
	clock := NewMockTimeProvider(TestEpoch)
	w := NewWorld(NewTestConfig(), Options{Clock: clock, Strict: true})
	return w, clock
}
