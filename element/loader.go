package element

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the validated static game data
type Config struct {
	Catalog *Catalog
	Table   *Table
	Base    []string // Initially unlocked ids, in panel order
}

// Format selects the document decoder
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// document mirrors the on-disk layout
// "image" is the legacy asset key, "asset" wins when both are set
type document struct {
	Base         []string          `yaml:"base" json:"base"`
	Elements     []definitionDoc   `yaml:"elements" json:"elements"`
	Combinations map[string]string `yaml:"combinations" json:"combinations"`
	Recipes      []recipeDoc       `yaml:"recipes" json:"recipes"`
}

type definitionDoc struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Asset string `yaml:"asset" json:"asset"`
	Image string `yaml:"image" json:"image"`
}

type recipeDoc struct {
	Inputs []string `yaml:"inputs" json:"inputs"`
	Result string   `yaml:"result" json:"result"`
}

// LoadFile reads and validates an element document
// .json files use the JSON decoder, everything else YAML
func LoadFile(path string, defaultBase []string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Reason: "cannot read file", Err: err}
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	return Parse(data, format, path, defaultBase)
}

// Parse decodes and validates an element document
// defaultBase is used when the document has no base list
func Parse(data []byte, format Format, source string, defaultBase []string) (*Config, error) {
	if source == "" {
		source = "<memory>"
	}

	var doc document
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &ConfigError{Source: source, Reason: "malformed document", Err: err}
	}

	return build(source, &doc, defaultBase)
}

func build(source string, doc *document, defaultBase []string) (*Config, error) {
	defs := make([]Definition, 0, len(doc.Elements))
	for i, ed := range doc.Elements {
		name := strings.TrimSpace(ed.Name)
		id := strings.TrimSpace(ed.ID)
		if name == "" && id == "" {
			return nil, configErrorf(source, fieldIndex("elements", i), "missing name")
		}
		if id == "" {
			id = name
		}
		asset := ed.Asset
		if asset == "" {
			asset = ed.Image
		}
		defs = append(defs, Definition{ID: id, Name: name, Asset: asset})
	}

	catalog, err := NewCatalog(source, defs)
	if err != nil {
		return nil, err
	}

	rules, err := collectRules(source, doc, catalog)
	if err != nil {
		return nil, err
	}

	table, err := NewTable(source, catalog, rules)
	if err != nil {
		return nil, err
	}

	base := doc.Base
	if len(base) == 0 {
		base = defaultBase
	}
	seen := make(map[string]bool, len(base))
	baseOut := make([]string, 0, len(base))
	for i, id := range base {
		id = strings.TrimSpace(id)
		if !catalog.Has(id) {
			return nil, configErrorf(source, fieldIndex("base", i), "undefined element %q", id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		baseOut = append(baseOut, id)
	}

	return &Config{Catalog: catalog, Table: table, Base: baseOut}, nil
}

// collectRules merges the "a+b" map and the recipe list
// Map keys are sorted so that error reports are stable
func collectRules(source string, doc *document, catalog *Catalog) ([]Rule, error) {
	keys := make([]string, 0, len(doc.Combinations))
	for k := range doc.Combinations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rules := make([]Rule, 0, len(keys)+len(doc.Recipes))
	for _, key := range keys {
		pair, ok := splitPairKey(key, catalog)
		if !ok {
			return nil, configErrorf(source, "combinations["+key+"]", "key must have the form %q", "a"+PairSeparator+"b")
		}
		result := strings.TrimSpace(doc.Combinations[key])
		if result == "" {
			return nil, configErrorf(source, "combinations["+key+"]", "missing result")
		}
		rules = append(rules, Rule{Pair: pair, Result: result})
	}

	for i, r := range doc.Recipes {
		field := fieldIndex("recipes", i)
		if len(r.Inputs) != 2 {
			return nil, configErrorf(source, field, "expected 2 inputs, got %d", len(r.Inputs))
		}
		a := strings.TrimSpace(r.Inputs[0])
		b := strings.TrimSpace(r.Inputs[1])
		result := strings.TrimSpace(r.Result)
		if a == "" || b == "" || result == "" {
			return nil, configErrorf(source, field, "inputs and result are required")
		}
		rules = append(rules, Rule{Pair: Pair{A: a, B: b}, Result: result})
	}

	return rules, nil
}

func fieldIndex(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// Summary returns a one-line description for logs
func (c *Config) Summary() string {
	return fmt.Sprintf("%d elements, %d combinations, %d base", c.Catalog.Len(), c.Table.Len(), len(c.Base))
}
