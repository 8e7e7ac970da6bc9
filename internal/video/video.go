package video

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/proxvid/internal/encoder"
	"github.com/san-kum/proxvid/internal/render"
)

// Result describes a written clip.
type Result struct {
	Path   string
	FPS    float64
	Frames int
	VMax   float64
	Width  int
	Height int
}

// MakeVideo2D renders each column of X as one frame of {filename}.mp4,
// lasting T seconds. nx*ny must equal the number of rows of X.
func MakeVideo2D(ctx context.Context, X mat.CMatrix, T float64, nx, ny int, filename string, opts ...Option) (*Result, error) {
	plan, err := NewPlan(X, T, nx, ny, opts...)
	if err != nil {
		return nil, err
	}
	return Write(ctx, plan, filename, opts...)
}

// MakeVideo2DReal is MakeVideo2D for real matrices.
func MakeVideo2DReal(ctx context.Context, X mat.Matrix, T float64, nx, ny int, filename string, opts ...Option) (*Result, error) {
	plan, err := NewPlanReal(X, T, nx, ny, opts...)
	if err != nil {
		return nil, err
	}
	return Write(ctx, plan, filename, opts...)
}

// Write encodes every frame of plan into {filename}.mp4.
func Write(ctx context.Context, plan *Plan, filename string, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	enc := o.encoder
	if enc == nil {
		binary, err := encoder.Resolve(o.ffmpeg)
		if err != nil {
			return nil, err
		}
		enc = encoder.New(binary, encoder.WithLogger(o.logger))
	}

	canvas := render.NewCanvas(plan.Figure())
	defer canvas.Close()

	bounds := canvas.Bounds()
	output := filename + ".mp4"
	log := o.logger.With().Str("output", output).Logger()
	log.Debug().
		Int("frames", plan.Frames()).
		Float64("fps", plan.FPS).
		Float64("vmax", plan.VMax).
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Msg("rendering video")

	session, err := enc.Start(ctx, output, bounds.Dx(), bounds.Dy(), plan.FPS)
	if err != nil {
		return nil, err
	}
	for i := 0; i < plan.Frames(); i++ {
		if err := plan.Render(canvas, i); err != nil {
			session.Abort()
			return nil, fmt.Errorf("render frame %d: %w", i, err)
		}
		if err := session.WriteFrame(canvas.Image()); err != nil {
			session.Abort()
			return nil, fmt.Errorf("encode frame %d: %w", i, err)
		}
	}
	if err := session.Close(); err != nil {
		session.Abort()
		return nil, err
	}

	log.Debug().Int("frames", session.Frames()).Msg("video written")
	return &Result{
		Path:   output,
		FPS:    plan.FPS,
		Frames: session.Frames(),
		VMax:   plan.VMax,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
