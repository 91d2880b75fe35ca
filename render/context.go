package render

import (
	"github.com/lixenwraith/alchemy/asset"
	"github.com/lixenwraith/alchemy/element"
	"github.com/lixenwraith/alchemy/engine"
	"github.com/lixenwraith/alchemy/status"
)

// IconSource maps element ids to their icon and display name
type IconSource interface {
	Icon(id string) *asset.Icon
	Name(id string) string
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot *engine.Snapshot
	View     Viewport
	Icons    IconSource
	Status   *status.Registry

	Muted bool
	Debug bool
}

// CatalogIcons resolves icons for catalog elements
type CatalogIcons struct {
	Catalog  *element.Catalog
	Resolver *asset.Resolver
}

// Icon returns the resolved icon, a placeholder for unknown ids
func (c CatalogIcons) Icon(id string) *asset.Icon {
	def, ok := c.Catalog.Get(id)
	if !ok {
		return asset.Placeholder(id, asset.ErrAssetMissing)
	}
	return c.Resolver.Resolve(def)
}

// Name returns the display name, id when unknown
func (c CatalogIcons) Name(id string) string {
	if def, ok := c.Catalog.Get(id); ok {
		return def.Name
	}
	return id
}

// IconFunc adapts the resolver for animation subject snapshots
func (c CatalogIcons) IconFunc() engine.IconFunc {
	return func(def element.Definition) any {
		return c.Resolver.Resolve(def)
	}
}
