// Package colormap maps scalar intensities to colors.
//
// Maps are built from a handful of anchor colors interpolated in RGB and
// quantized into a 256-entry lookup table. A "_r" suffix reverses any map.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of lookup table entries per map.
const Size = 256

var ErrUnknown = errors.New("colormap: unknown colormap")

// Bad is used for NaN samples.
var Bad = color.RGBA{R: 255, G: 255, B: 255, A: 255}

var anchors = map[string][]string{
	"viridis":  {"#440154", "#482475", "#414487", "#355f8d", "#2a788e", "#21918c", "#22a884", "#44bf70", "#7ad151", "#bddf26", "#fde725"},
	"plasma":   {"#0d0887", "#41049d", "#6a00a8", "#8f0da4", "#b12a90", "#cc4778", "#e16462", "#f2844b", "#fca636", "#fcce25", "#f0f921"},
	"inferno":  {"#000004", "#160b39", "#420a68", "#6a176e", "#932667", "#bc3754", "#dd513a", "#f37819", "#fca50a", "#f6d746", "#fcffa4"},
	"magma":    {"#000004", "#140e36", "#3b0f70", "#641a80", "#8c2981", "#b73779", "#de4968", "#f7705c", "#fe9f6d", "#fecf92", "#fcfdbf"},
	"gray":     {"#000000", "#ffffff"},
	"RdBu":     {"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7", "#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061"},
	"coolwarm": {"#3b4cc0", "#6788ee", "#9abbff", "#c9d7f0", "#edd1c2", "#f7a889", "#e26952", "#b40426"},
	"seismic":  {"#00004c", "#0000ff", "#ffffff", "#ff0000", "#800000"},
}

// Map is a quantized colormap.
type Map struct {
	name string
	lut  [Size]color.RGBA
}

// Get returns the named colormap.
func Get(name string) (*Map, error) {
	base, reversed := strings.CutSuffix(name, "_r")
	hexes, ok := anchors[base]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}

	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("colormap %s: %w", name, err)
		}
		stops[i] = c
	}
	if reversed {
		for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
			stops[i], stops[j] = stops[j], stops[i]
		}
	}

	m := &Map{name: name}
	segments := float64(len(stops) - 1)
	for i := 0; i < Size; i++ {
		pos := float64(i) / float64(Size-1) * segments
		k := int(pos)
		if k >= len(stops)-1 {
			k = len(stops) - 2
		}
		c := stops[k].BlendRgb(stops[k+1], pos-float64(k)).Clamped()
		r, g, b := c.RGB255()
		m.lut[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return m, nil
}

// Names lists the base colormap names in sorted order.
func Names() []string {
	names := make([]string, 0, len(anchors))
	for name := range anchors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Map) Name() string { return m.name }

// At maps t in [0, 1] to a color; values outside are clamped.
func (m *Map) At(t float64) color.RGBA {
	if math.IsNaN(t) {
		return Bad
	}
	idx := int(t * Size)
	if idx < 0 {
		idx = 0
	}
	if idx >= Size {
		idx = Size - 1
	}
	return m.lut[idx]
}

// Normalize maps v from [vmin, vmax] onto the map. A degenerate range
// maps everything to the low end.
func (m *Map) Normalize(v, vmin, vmax float64) color.RGBA {
	if math.IsNaN(v) {
		return Bad
	}
	if vmax <= vmin {
		return m.lut[0]
	}
	return m.At((v - vmin) / (vmax - vmin))
}
