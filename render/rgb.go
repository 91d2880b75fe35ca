package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color used by the compositor
type RGB struct {
	R, G, B uint8
}

// FromTcell converts a tcell color; non-RGB colors map to fallback
func FromTcell(c tcell.Color, fallback RGB) RGB {
	r, g, b := c.TrueColor().RGB()
	if r < 0 {
		return fallback
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Tcell converts to a true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend is linear alpha blending of src over c
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Grayscale converts RGB to grayscale using Rec. 601 luma coefficients
// Integer math: (R*299 + G*587 + B*114) / 1000
func Grayscale(c RGB) RGB {
	gray := uint8((int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000)
	return RGB{R: gray, G: gray, B: gray}
}

// Luma returns perceived brightness 0-255
func Luma(c RGB) int {
	return int(Grayscale(c).R)
}

// Contrast picks dark or light text for legibility on bg
func Contrast(bg RGB) RGB {
	if Luma(bg) > 140 {
		return RgbTextDark
	}
	return RgbTextLight
}
