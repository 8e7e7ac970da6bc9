package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/proxvid/internal/colormap"
)

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}

// WriteSVG writes a frame rendered by FrameToSVG to path.
func WriteSVG(path string, frame mat.Matrix, cmap *colormap.Map, vmin, vmax, cellSize float64) error {
	svg := FrameToSVG(frame, cmap, vmin, vmax, cellSize)
	if svg == "" {
		return fmt.Errorf("export: empty frame")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

// IsSVG reports whether path names an SVG file.
func IsSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}
