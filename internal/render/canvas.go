package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/proxvid/internal/colormap"
)

const (
	DefaultFigWidth  = 6.4
	DefaultFigHeight = 4.8
	DefaultDPI       = 100
)

// Axes box as fractions of the figure (left, bottom, right, top).
var axesBox = [4]float64{0.125, 0.11, 0.9, 0.88}

// Figure describes the output raster in physical terms.
type Figure struct {
	Width, Height float64 // inches; zero means default
	DPI           int     // zero means default
}

// PixelSize returns the raster size, rounded down to even dimensions
// (required by yuv420p encoders) and never smaller than 2x2.
func (f Figure) PixelSize() (int, int) {
	w, h, dpi := f.Width, f.Height, f.DPI
	if w <= 0 {
		w = DefaultFigWidth
	}
	if h <= 0 {
		h = DefaultFigHeight
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	pw := int(math.Round(w*float64(dpi))) &^ 1
	ph := int(math.Round(h*float64(dpi))) &^ 1
	return max(pw, 2), max(ph, 2)
}

var bufPool sync.Pool

// Canvas is a reusable drawing surface for one frame at a time.
type Canvas struct {
	img  *image.RGBA
	grid *image.RGBA
}

// NewCanvas acquires a canvas for the given figure.
func NewCanvas(fig Figure) *Canvas {
	w, h := fig.PixelSize()
	rect := image.Rect(0, 0, w, h)
	if v, ok := bufPool.Get().(*image.RGBA); ok && v.Rect.Eq(rect) {
		return &Canvas{img: v}
	}
	return &Canvas{img: image.NewRGBA(rect)}
}

// Image returns the current frame. It is only valid until Close.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// Close releases the canvas buffers. Calling Close twice is a no-op.
func (c *Canvas) Close() error {
	if c.img != nil {
		bufPool.Put(c.img)
		c.img = nil
	}
	c.grid = nil
	return nil
}

// Draw clears the canvas and draws frame through cmap on [vmin, vmax].
func (c *Canvas) Draw(frame mat.Matrix, cmap *colormap.Map, vmin, vmax float64) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(color.White), image.Point{}, draw.Src)

	rows, cols := frame.Dims()
	gridRect := image.Rect(0, 0, cols, rows)
	if c.grid == nil || !c.grid.Rect.Eq(gridRect) {
		c.grid = image.NewRGBA(gridRect)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			c.grid.SetRGBA(j, i, cmap.Normalize(frame.At(i, j), vmin, vmax))
		}
	}

	xdraw.NearestNeighbor.Scale(c.img, c.axesRect(cols, rows), c.grid, gridRect, xdraw.Src, nil)
}

// axesRect fits a gw-by-gh grid into the axes box with equal aspect.
func (c *Canvas) axesRect(gw, gh int) image.Rectangle {
	w, h := float64(c.img.Rect.Dx()), float64(c.img.Rect.Dy())
	x0, x1 := axesBox[0]*w, axesBox[2]*w
	y0, y1 := (1-axesBox[3])*h, (1-axesBox[1])*h
	bw, bh := x1-x0, y1-y0

	s := math.Min(bw/float64(gw), bh/float64(gh))
	dw, dh := s*float64(gw), s*float64(gh)
	left := x0 + (bw-dw)/2
	top := y0 + (bh-dh)/2

	r := image.Rect(int(math.Round(left)), int(math.Round(top)), int(math.Round(left+dw)), int(math.Round(top+dh)))
	if r.Dx() < 1 {
		r.Max.X = r.Min.X + 1
	}
	if r.Dy() < 1 {
		r.Max.Y = r.Min.Y + 1
	}
	return r
}
