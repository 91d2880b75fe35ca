package asset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/alchemy/element"
)

// Resolver loads element icons from an asset directory and caches them by element id
// A text sibling (name.txt) of an image reference wins, so configs written for
// image files still render native glyphs in the terminal
type Resolver struct {
	dir string

	mu    sync.Mutex
	cache map[string]*Icon
}

// NewResolver creates a resolver rooted at dir
func NewResolver(dir string) *Resolver {
	return &Resolver{
		dir:   dir,
		cache: make(map[string]*Icon),
	}
}

// Dir returns the asset root
func (r *Resolver) Dir() string {
	return r.dir
}

// Resolve returns the icon for def; never fails, unresolvable assets yield a placeholder
func (r *Resolver) Resolve(def element.Definition) *Icon {
	r.mu.Lock()
	defer r.mu.Unlock()

	if icon, ok := r.cache[def.ID]; ok {
		return icon
	}
	icon := r.load(def)
	r.cache[def.ID] = icon
	return icon
}

// Preload resolves every catalog element, returning the placeholders
func (r *Resolver) Preload(catalog *element.Catalog) []*Icon {
	var missing []*Icon
	for _, def := range catalog.All() {
		if icon := r.Resolve(def); icon.Missing {
			missing = append(missing, icon)
		}
	}
	return missing
}

func (r *Resolver) load(def element.Definition) *Icon {
	if def.Asset == "" {
		return &Icon{Glyph: NameGlyph(def.Name), Color: NameColor(def.Name)}
	}

	path := filepath.Join(r.dir, def.Asset)
	ext := strings.ToLower(filepath.Ext(path))

	if ext != ".txt" {
		sibling := strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
		if data, err := os.ReadFile(sibling); err == nil {
			return parseText(def, data)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Placeholder(def.Name, fmt.Errorf("%w: %s", ErrAssetMissing, path))
		}
		return Placeholder(def.Name, fmt.Errorf("%w: %s: %v", ErrAssetMissing, path, err))
	}

	switch ext {
	case ".txt":
		return parseText(def, data)
	case ".png", ".jpg", ".jpeg":
		return decodeImage(def, path, data)
	default:
		return Placeholder(def.Name, fmt.Errorf("%w: unsupported asset type %q", ErrAssetMissing, ext))
	}
}

// parseText reads a glyph file: first non-empty line is the glyph, an optional next line "#rrggbb" the color
func parseText(def element.Definition, data []byte) *Icon {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
		if len(lines) == 2 {
			break
		}
	}

	if len(lines) == 0 {
		return Placeholder(def.Name, fmt.Errorf("%w: empty glyph file for %s", ErrAssetMissing, def.ID))
	}

	icon := &Icon{Glyph: truncateRunes(lines[0], GlyphMaxRunes), Color: NameColor(def.Name)}
	if len(lines) > 1 && strings.HasPrefix(lines[1], "#") {
		if c := tcell.GetColor(lines[1]); c != tcell.ColorDefault {
			icon.Color = c
		}
	}
	return icon
}

// decodeImage tints the name glyph with the average opaque color of the image
func decodeImage(def element.Definition, path string, data []byte) *Icon {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Placeholder(def.Name, fmt.Errorf("%w: decode %s: %v", ErrAssetMissing, path, err))
	}
	return &Icon{Glyph: NameGlyph(def.Name), Color: averageColor(img, def.Name)}
}

// averageColor samples at most 64x64 points, weighting by alpha
func averageColor(img image.Image, name string) tcell.Color {
	b := img.Bounds()
	if b.Empty() {
		return NameColor(name)
	}

	stepX := max(1, b.Dx()/64)
	stepY := max(1, b.Dy()/64)

	var sr, sg, sb, sa uint64
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			// Premultiplied 16-bit channels
			r, g, bl, a := img.At(x, y).RGBA()
			sr += uint64(r)
			sg += uint64(g)
			sb += uint64(bl)
			sa += uint64(a)
		}
	}
	if sa == 0 {
		return NameColor(name)
	}

	// Un-premultiply: sum(c*a)/sum(a) scaled to 8 bits
	return tcell.NewRGBColor(
		int32(sr*255/sa),
		int32(sg*255/sa),
		int32(sb*255/sa),
	)
}
