package element

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var defaultBase = []string{"Air", "Fire", "Earth", "Water"}

const sampleYAML = `
elements:
  - {name: Air, image: air.png}
  - {name: Fire, image: fire.png}
  - {name: Earth, image: earth.png}
  - {name: Water, image: water.png}
  - {id: energy, name: Energy, asset: energy.txt}
  - {name: Steam}
combinations:
  "Air+Fire": energy
recipes:
  - inputs: [Water, Fire]
    result: Steam
`

func TestParseYAML(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML), FormatYAML, "", defaultBase)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Catalog.Len() != 6 {
		t.Errorf("Expected 6 elements, got %d", cfg.Catalog.Len())
	}
	if cfg.Table.Len() != 2 {
		t.Errorf("Expected 2 rules, got %d", cfg.Table.Len())
	}

	def, ok := cfg.Catalog.Get("energy")
	if !ok {
		t.Fatal("Expected element with explicit id")
	}
	if def.Name != "Energy" || def.Asset != "energy.txt" {
		t.Errorf("Expected name Energy asset energy.txt, got %+v", def)
	}

	air, _ := cfg.Catalog.Get("Air")
	if air.Asset != "air.png" {
		t.Errorf("Expected legacy image key to be used as asset, got %q", air.Asset)
	}

	if r, ok := cfg.Table.Lookup("Fire", "Water"); !ok || r != "Steam" {
		t.Errorf("Expected recipe Fire+Water=Steam, got %q (ok=%v)", r, ok)
	}

	if len(cfg.Base) != 4 || cfg.Base[0] != "Air" {
		t.Errorf("Expected default base, got %v", cfg.Base)
	}
}

func TestParseJSONLegacyLayout(t *testing.T) {
	data := []byte(`{
	"elements": [
		{"name": "Воздух", "image": "air.png"},
		{"name": "Огонь", "image": "fire.png"},
		{"name": "Энергия", "image": "energy.png"}
	],
	"combinations": {"Воздух+Огонь": "Энергия"}
}`)
	cfg, err := Parse(data, FormatJSON, "elements.json", []string{"Воздух", "Огонь"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r, ok := cfg.Table.Lookup("Огонь", "Воздух"); !ok || r != "Энергия" {
		t.Errorf("Expected reversed lookup to resolve, got %q (ok=%v)", r, ok)
	}
}

func TestParseDocumentBase(t *testing.T) {
	data := []byte("base: [Fire]\nelements:\n  - {name: Air}\n  - {name: Fire}\n")
	cfg, err := Parse(data, FormatYAML, "", defaultBase)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(cfg.Base) != 1 || cfg.Base[0] != "Fire" {
		t.Errorf("Expected document base [Fire], got %v", cfg.Base)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "elements: [\n"},
		{"no elements", "combinations: {}\n"},
		{"missing name", "elements:\n  - {image: x.png}\n"},
		{"duplicate id", "elements:\n  - {name: Air}\n  - {name: Air}\n"},
		{"undefined in combination", "elements:\n  - {name: Air}\n  - {name: Fire}\ncombinations:\n  \"Air+Fire\": Energy\n"},
		{"bad key", "elements:\n  - {name: Air}\ncombinations:\n  \"AirAir\": Air\n"},
		{"empty result", "elements:\n  - {name: Air}\ncombinations:\n  \"Air+Air\": \"\"\n"},
		{"recipe arity", "elements:\n  - {name: Air}\nrecipes:\n  - {inputs: [Air], result: Air}\n"},
		{"undefined base", "base: [Ether]\nelements:\n  - {name: Air}\n"},
		{"default base undefined", "elements:\n  - {name: Air}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatYAML, "test.yaml", defaultBase)
			if err == nil {
				t.Fatal("Expected config error, got nil")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected *ConfigError, got %T: %v", err, err)
			}
			if cfgErr.Source != "test.yaml" {
				t.Errorf("Expected source test.yaml, got %q", cfgErr.Source)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "elements.yaml")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	cfg, err := LoadFile(yamlPath, defaultBase)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Summary() != "6 elements, 2 combinations, 4 base" {
		t.Errorf("Unexpected summary %q", cfg.Summary())
	}

	jsonPath := filepath.Join(dir, "elements.json")
	if err := os.WriteFile(jsonPath, []byte(`{"elements":[{"name":"Air"}],"base":["Air"]}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadFile(jsonPath, nil); err != nil {
		t.Errorf("Expected JSON file to load, got %v", err)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"), defaultBase)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected missing file to be a config error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped not-exist error, got %v", err)
	}
}
