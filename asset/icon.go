package asset

import (
	"errors"
	"hash/fnv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrAssetMissing marks an icon replaced by a placeholder
var ErrAssetMissing = errors.New("asset missing")

// GlyphMaxRunes bounds the glyph drawn inside an element box
const GlyphMaxRunes = 3

// Icon is the terminal rendition of an element image
type Icon struct {
	Glyph   string
	Color   tcell.Color
	Missing bool  // Placeholder substituted for an unresolvable asset
	Err     error // Cause when Missing, wraps ErrAssetMissing or a decode error
}

// PlaceholderColor tints icons whose asset could not be loaded
var PlaceholderColor = tcell.NewRGBColor(128, 128, 128)

// palette is cycled by name hash for elements without a color of their own
var palette = []tcell.Color{
	tcell.NewRGBColor(125, 207, 255),
	tcell.NewRGBColor(255, 158, 100),
	tcell.NewRGBColor(158, 206, 106),
	tcell.NewRGBColor(122, 162, 247),
	tcell.NewRGBColor(224, 175, 104),
	tcell.NewRGBColor(187, 154, 247),
	tcell.NewRGBColor(247, 118, 142),
	tcell.NewRGBColor(115, 218, 202),
}

// NameColor picks a stable palette color for name
func NameColor(name string) tcell.Color {
	h := fnv.New32a()
	h.Write([]byte(name))
	return palette[h.Sum32()%uint32(len(palette))]
}

// NameGlyph abbreviates name to a short glyph
func NameGlyph(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	return truncateRunes(name, 2)
}

// Placeholder builds the substitute icon for name
func Placeholder(name string, cause error) *Icon {
	return &Icon{
		Glyph:   NameGlyph(name),
		Color:   PlaceholderColor,
		Missing: true,
		Err:     cause,
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
