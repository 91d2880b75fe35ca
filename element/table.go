package element

import (
	"sort"
	"strings"
)

// PairSeparator joins the two ids of a combination key, e.g. "Air+Fire"
const PairSeparator = "+"

// Pair is an unordered pair of element ids in canonical form (A <= B)
type Pair struct {
	A, B string
}

// MakePair canonicalizes an unordered pair
func MakePair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

func (p Pair) String() string {
	return p.A + PairSeparator + p.B
}

// Rule maps an unordered pair to its result
type Rule struct {
	Pair   Pair
	Result string
}

// Table is an immutable unordered-pair lookup built once at startup
type Table struct {
	rules map[Pair]string
}

// NewTable validates rules against the catalog
// Every referenced id must be defined; one pair may not map to two results
func NewTable(source string, catalog *Catalog, rules []Rule) (*Table, error) {
	t := &Table{rules: make(map[Pair]string, len(rules))}

	for _, r := range rules {
		field := "combinations[" + r.Pair.String() + "]"
		for _, id := range []string{r.Pair.A, r.Pair.B, r.Result} {
			if !catalog.Has(id) {
				return nil, configErrorf(source, field, "undefined element %q", id)
			}
		}

		pair := MakePair(r.Pair.A, r.Pair.B)
		if prev, exists := t.rules[pair]; exists && prev != r.Result {
			return nil, configErrorf(source, field, "conflicting results %q and %q", prev, r.Result)
		}
		t.rules[pair] = r.Result
	}
	return t, nil
}

// Lookup returns the result of combining a and b
// Symmetric: Lookup(a, b) == Lookup(b, a)
func (t *Table) Lookup(a, b string) (string, bool) {
	result, ok := t.rules[MakePair(a, b)]
	return result, ok
}

// Len returns the number of distinct rules
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns all rules sorted by pair
func (t *Table) Rules() []Rule {
	out := make([]Rule, 0, len(t.rules))
	for p, r := range t.rules {
		out = append(out, Rule{Pair: p, Result: r})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pair.A != out[j].Pair.A {
			return out[i].Pair.A < out[j].Pair.A
		}
		return out[i].Pair.B < out[j].Pair.B
	})
	return out
}

// Recipes returns the sorted pairs producing result
func (t *Table) Recipes(result string) []Pair {
	var out []Pair
	for _, r := range t.Rules() {
		if r.Result == result {
			out = append(out, r.Pair)
		}
	}
	return out
}

// splitPairKey splits "a+b" into two defined ids
// Ids containing the separator are resolved by trying every split point
func splitPairKey(key string, catalog *Catalog) (Pair, bool) {
	var fallback Pair
	found := false
	for i := 0; i < len(key); i++ {
		if !strings.HasPrefix(key[i:], PairSeparator) {
			continue
		}
		a := strings.TrimSpace(key[:i])
		b := strings.TrimSpace(key[i+len(PairSeparator):])
		if a == "" || b == "" {
			continue
		}
		if catalog.Has(a) && catalog.Has(b) {
			return Pair{A: a, B: b}, true
		}
		if !found {
			fallback = Pair{A: a, B: b}
			found = true
		}
	}
	return fallback, found
}
