package element

// Definition is a static element description, immutable for the process lifetime
type Definition struct {
	ID    string // Unique identifier, used in combination rules
	Name  string // Display name
	Asset string // Asset reference passed to the icon resolver, may be empty
}

// Catalog is the ordered list of element definitions
// Order is the panel order
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// NewCatalog builds a catalog, rejecting empty and duplicate identifiers
func NewCatalog(source string, defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, configErrorf(source, "elements", "at least one element is required")
	}

	c := &Catalog{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		if d.ID == "" {
			return nil, configErrorf(source, fieldIndex("elements", i), "missing identifier")
		}
		if _, exists := c.index[d.ID]; exists {
			return nil, configErrorf(source, fieldIndex("elements", i), "duplicate identifier %q", d.ID)
		}
		if d.Name == "" {
			d.Name = d.ID
		}
		c.index[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c, nil
}

// Get returns the definition for id
func (c *Catalog) Get(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// Has reports whether id is defined
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Index returns the panel position of id, -1 if undefined
func (c *Catalog) Index(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// All returns a copy of the definitions in catalog order
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Len returns the number of definitions
func (c *Catalog) Len() int {
	return len(c.defs)
}
