package video

import (
	"github.com/rs/zerolog"

	"github.com/san-kum/proxvid/internal/encoder"
	"github.com/san-kum/proxvid/internal/render"
)

const (
	DefaultScale    = 1.0
	DefaultColormap = "viridis"
)

type options struct {
	scale   float64
	order   render.Order
	cmap    string
	figure  render.Figure
	encoder *encoder.Encoder
	ffmpeg  string
	logger  zerolog.Logger
}

func defaultOptions() options {
	return options{
		scale:  DefaultScale,
		order:  render.ColumnMajor,
		cmap:   DefaultColormap,
		logger: zerolog.Nop(),
	}
}

// Option configures a render.
type Option func(*options)

// WithScale multiplies the color range; values beyond it saturate.
func WithScale(scale float64) Option {
	return func(o *options) { o.scale = scale }
}

// WithOrder selects how columns are laid out into frames.
func WithOrder(order render.Order) Option {
	return func(o *options) { o.order = order }
}

// WithColormap selects a colormap by name.
func WithColormap(name string) Option {
	return func(o *options) {
		if name != "" {
			o.cmap = name
		}
	}
}

// WithFigSize sets the frame size in inches.
func WithFigSize(width, height float64) Option {
	return func(o *options) {
		o.figure.Width = width
		o.figure.Height = height
	}
}

// WithDPI sets the frame resolution in dots per inch.
func WithDPI(dpi int) Option {
	return func(o *options) { o.figure.DPI = dpi }
}

// WithEncoder supplies a configured encoder. It takes precedence over WithFFmpeg.
func WithEncoder(enc *encoder.Encoder) Option {
	return func(o *options) { o.encoder = enc }
}

// WithFFmpeg sets the ffmpeg executable path.
func WithFFmpeg(path string) Option {
	return func(o *options) { o.ffmpeg = path }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}
