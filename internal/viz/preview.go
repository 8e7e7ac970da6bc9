package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/proxvid/internal/colormap"
)

// Heatmap renders a frame with upper half-block characters, two grid rows
// per terminal line: the foreground carries the upper row and the
// background the lower one.
func Heatmap(frame mat.Matrix, cmap *colormap.Map, vmin, vmax float64) string {
	rows, cols := frame.Dims()
	var b strings.Builder
	for i := 0; i < rows; i += 2 {
		for j := 0; j < cols; j++ {
			top := cmap.Normalize(frame.At(i, j), vmin, vmax)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(top.R, top.G, top.B)))
			if i+1 < rows {
				bottom := cmap.Normalize(frame.At(i+1, j), vmin, vmax)
				style = style.Background(lipgloss.Color(hex(bottom.R, bottom.G, bottom.B)))
			}
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
