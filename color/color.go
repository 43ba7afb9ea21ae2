// Package color maps 24-bit RGB values onto the Launchpad's fixed palette.
//
// Matching happens in CIE Lab space: the palette is sparse and unevenly
// spaced, and plain RGB distance picks visibly wrong entries near saturated
// colors.
package color

import (
	"fmt"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Size is the number of entries in the device palette.
const Size = 128

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lab is a color in CIE L*a*b* space (D65 white point).
type Lab struct {
	L, A, B float64
}

// ToLab treats the channels as linear RGB in [0,1] and converts them to Lab.
func ToLab(c RGB) Lab {
	x, y, z := colorful.LinearRgbToXyz(toFloat(c.R), toFloat(c.G), toFloat(c.B))
	l, a, b := colorful.XyzToLab(x, y, z)
	return Lab{L: l, A: a, B: b}
}

func toFloat(v uint8) float64 {
	return float64(v) / 255
}

// DistanceSq is the squared Euclidean distance between two Lab colors.
func (c Lab) DistanceSq(o Lab) float64 {
	dl, da, db := c.L-o.L, c.A-o.A, c.B-o.B
	return dl*dl + da*da + db*db
}

// Palette is an indexed color table.
type Palette []RGB

// Default returns a copy of the device palette.
func Default() Palette {
	p := make(Palette, Size)
	copy(p, defaultTable[:])
	return p
}

// Nearest returns the index of the entry closest to c. On ties the lowest
// index wins. An empty palette returns 0.
func (p Palette) Nearest(c RGB) int {
	return nearest(ToLab(c), p.labs())
}

// Index returns the color at i, clamped to the table bounds.
func (p Palette) Index(i int) RGB {
	if len(p) == 0 {
		return RGB{}
	}
	if i < 0 {
		return p[0]
	}
	if i >= len(p) {
		return p[len(p)-1]
	}
	return p[i]
}

func (p Palette) labs() []Lab {
	labs := make([]Lab, len(p))
	for i, c := range p {
		labs[i] = ToLab(c)
	}
	return labs
}

var (
	defaultLabsOnce sync.Once
	defaultLabs     []Lab
)

// NearestIndex returns the raw color code of the device palette entry
// perceptually closest to c.
func NearestIndex(c RGB) uint8 {
	defaultLabsOnce.Do(func() {
		defaultLabs = Palette(defaultTable[:]).labs()
	})
	return uint8(nearest(ToLab(c), defaultLabs))
}

func nearest(target Lab, labs []Lab) int {
	best := 0
	bestDist := -1.0
	for i, lab := range labs {
		// strict < keeps the earliest of equally distant entries
		if d := target.DistanceSq(lab); bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// At returns the device palette color for a raw color code. Codes above 127
// wrap into the table.
func At(code uint8) RGB {
	return defaultTable[code%Size]
}
