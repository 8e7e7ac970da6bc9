package export

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/proxvid/internal/colormap"
)

// FrameToSVG renders a frame as a grid of cells, each cellSize units wide,
// colored through cmap on [vmin, vmax].
func FrameToSVG(frame mat.Matrix, cmap *colormap.Map, vmin, vmax, cellSize float64) string {
	if frame == nil || cmap == nil {
		return ""
	}
	rows, cols := frame.Dims()
	if rows == 0 || cols == 0 {
		return ""
	}

	width := float64(cols) * cellSize
	height := float64(rows) * cellSize

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" shape-rendering="crispEdges">
`, width, height, width, height))

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			c := cmap.Normalize(frame.At(i, j), vmin, vmax)
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%02x%02x%02x"/>
`, float64(j)*cellSize, float64(i)*cellSize, cellSize, cellSize, c.R, c.G, c.B))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
