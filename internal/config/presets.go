package config

import "sort"

// Presets are named video settings. Zero fields keep the base value.
var Presets = map[string]VideoConfig{
	"preview": {
		FigWidth: 3.2, FigHeight: 2.4, DPI: 60,
	},
	"default": {
		Colormap: "viridis", Order: "F", Scale: 1.0,
		FigWidth: 6.4, FigHeight: 4.8, DPI: 100,
	},
	"hd": {
		FigWidth: 12.8, FigHeight: 7.2, DPI: 150,
	},
	"diverging": {
		Colormap: "RdBu_r", Scale: 0.8,
	},
	"print": {
		Colormap: "gray", FigWidth: 6, FigHeight: 6, DPI: 200,
	},
}

func GetPreset(name string) *VideoConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply overlays the non-zero fields of p onto v.
func (v *VideoConfig) Apply(p VideoConfig) {
	if p.Colormap != "" {
		v.Colormap = p.Colormap
	}
	if p.Order != "" {
		v.Order = p.Order
	}
	if p.Scale != 0 {
		v.Scale = p.Scale
	}
	if p.FigWidth != 0 {
		v.FigWidth = p.FigWidth
	}
	if p.FigHeight != 0 {
		v.FigHeight = p.FigHeight
	}
	if p.DPI != 0 {
		v.DPI = p.DPI
	}
	if p.Codec != "" {
		v.Codec = p.Codec
	}
}
