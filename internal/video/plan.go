package video

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/proxvid/internal/colormap"
	"github.com/san-kum/proxvid/internal/render"
)

// Plan holds everything needed to produce any frame of a clip.
type Plan struct {
	data     *mat.Dense
	nx, ny   int
	order    render.Order
	cmap     *colormap.Map
	figure   render.Figure
	Duration float64
	FPS      float64
	VMax     float64
}

// NewPlan validates X and derives frame rate and color range. Only the
// real part of X is kept.
func NewPlan(X mat.CMatrix, T float64, nx, ny int, opts ...Option) (*Plan, error) {
	re, err := realPart(X)
	if err != nil {
		return nil, err
	}
	return newPlan(re, T, nx, ny, opts)
}

// NewPlanReal is NewPlan for real matrices.
func NewPlanReal(X mat.Matrix, T float64, nx, ny int, opts ...Option) (*Plan, error) {
	if isNilMatrix(X) {
		return nil, ErrInvalidMatrix
	}
	if r, c := X.Dims(); r == 0 || c == 0 {
		return nil, ErrInvalidMatrix
	}
	return newPlan(mat.DenseCopyOf(X), T, nx, ny, opts)
}

func newPlan(data *mat.Dense, T float64, nx, ny int, opts []Option) (*Plan, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols := data.Dims()
	fps := float64(cols) / T
	if !(T > 0) || math.IsInf(fps, 0) || math.IsNaN(fps) || fps <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidDuration, T)
	}
	if nx <= 0 || ny <= 0 || nx*ny != rows {
		return nil, fmt.Errorf("%w of size %d into shape (%d,%d)", render.ErrShapeMismatch, rows, nx, ny)
	}
	cmap, err := colormap.Get(o.cmap)
	if err != nil {
		return nil, err
	}

	return &Plan{
		data:     data,
		nx:       nx,
		ny:       ny,
		order:    o.order,
		cmap:     cmap,
		figure:   o.figure,
		Duration: T,
		FPS:      fps,
		VMax:     o.scale * maxAbs(data),
	}, nil
}

// Frames is the number of frames in the clip, one per column.
func (p *Plan) Frames() int {
	_, cols := p.data.Dims()
	return cols
}

// Times returns the playback time of each frame.
func (p *Plan) Times() []float64 {
	n := p.Frames()
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / p.FPS
	}
	return times
}

// IndexAt returns the column shown at playback time t: floor(fps*t),
// clamped to the valid column range. Products within 1e-9 of an integer
// snap to it so that IndexAt(Times()[i]) == i.
func (p *Plan) IndexAt(t float64) int {
	x := p.FPS * t
	if r := math.Round(x); math.Abs(x-r) < 1e-9 {
		x = r
	}
	idx := int(math.Floor(x))
	if idx < 0 {
		return 0
	}
	if last := p.Frames() - 1; idx > last {
		return last
	}
	return idx
}

// Frame returns column idx reshaped to nx-by-ny.
func (p *Plan) Frame(idx int) (*mat.Dense, error) {
	col := mat.Col(nil, idx, p.data)
	return render.Reshape(col, p.nx, p.ny, p.order)
}

// FrameAt returns the frame shown at playback time t.
func (p *Plan) FrameAt(t float64) (*mat.Dense, error) {
	return p.Frame(p.IndexAt(t))
}

// Render draws column idx onto c.
func (p *Plan) Render(c *render.Canvas, idx int) error {
	frame, err := p.Frame(idx)
	if err != nil {
		return err
	}
	c.Draw(frame, p.cmap, -p.VMax, p.VMax)
	return nil
}

// Figure reports the frame geometry the plan renders at.
func (p *Plan) Figure() render.Figure { return p.figure }

func (p *Plan) Colormap() *colormap.Map { return p.cmap }

// maxAbs returns max |v| over m; NaN propagates.
func maxAbs(m *mat.Dense) float64 {
	rows, cols := m.Dims()
	v := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v = math.Max(v, math.Abs(m.At(i, j)))
		}
	}
	return v
}

func realPart(X mat.CMatrix) (*mat.Dense, error) {
	if isNilMatrix(X) {
		return nil, ErrInvalidMatrix
	}
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrInvalidMatrix
	}
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, real(X.At(i, j)))
		}
	}
	return out, nil
}

func isNilMatrix(X any) bool {
	switch m := X.(type) {
	case nil:
		return true
	case *mat.Dense:
		return m == nil
	case *mat.CDense:
		return m == nil
	}
	return false
}
