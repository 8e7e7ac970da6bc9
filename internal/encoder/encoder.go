package encoder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

var commandContext = exec.CommandContext

var ErrClosed = errors.New("encoder: session already closed")

const (
	DefaultCodec       = "libx264"
	DefaultPixelFormat = "yuv420p"
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithCodec overrides the output video codec.
func WithCodec(codec string) Option {
	return func(e *Encoder) {
		if codec != "" {
			e.codec = codec
		}
	}
}

// WithPixelFormat overrides the output pixel format.
func WithPixelFormat(pixFmt string) Option {
	return func(e *Encoder) {
		if pixFmt != "" {
			e.pixFmt = pixFmt
		}
	}
}

// WithLogger attaches a logger for process lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Encoder) {
		e.logger = logger
	}
}

// Encoder starts ffmpeg sessions.
type Encoder struct {
	binary string
	codec  string
	pixFmt string
	logger zerolog.Logger
}

// New returns an encoder running the given ffmpeg binary.
func New(binary string, opts ...Option) *Encoder {
	e := &Encoder{
		binary: binary,
		codec:  DefaultCodec,
		pixFmt: DefaultPixelFormat,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Encoder) Binary() string { return e.binary }

// Args returns the ffmpeg arguments for a rawvideo rgb24 stream.
func (e *Encoder) Args(output string, width, height int, fps float64) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", strconv.FormatFloat(fps, 'f', -1, 64),
		"-i", "-",
		"-an",
		"-c:v", e.codec,
		"-pix_fmt", e.pixFmt,
		output,
	}
}

// Start launches ffmpeg writing to output. Cancelling ctx kills the process.
func (e *Encoder) Start(ctx context.Context, output string, width, height int, fps float64) (*Session, error) {
	if strings.TrimSpace(e.binary) == "" {
		return nil, ErrNotFound
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("encoder: invalid frame size %dx%d", width, height)
	}

	cmd := commandContext(ctx, e.binary, e.Args(output, width, height, fps)...) //nolint:gosec
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdin: %w", err)
	}
	s := &Session{
		cmd:    cmd,
		stdin:  stdin,
		output: output,
		width:  width,
		height: height,
		buf:    make([]byte, width*height*3),
		logger: e.logger,
	}
	cmd.Stderr = &s.stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}
	e.logger.Debug().
		Str("binary", e.binary).
		Str("output", output).
		Int("width", width).
		Int("height", height).
		Float64("fps", fps).
		Msg("ffmpeg started")
	return s, nil
}

// Session is one running ffmpeg process.
type Session struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	output string
	width  int
	height int
	buf    []byte
	frames int
	done   bool
	waited bool
	logger zerolog.Logger
}

// Frames reports how many frames were written.
func (s *Session) Frames() int { return s.frames }

// WriteFrame sends one frame. Its bounds must match the session size.
func (s *Session) WriteFrame(img image.Image) error {
	if s.done {
		return ErrClosed
	}
	b := img.Bounds()
	if b.Dx() != s.width || b.Dy() != s.height {
		return fmt.Errorf("encoder: frame is %dx%d, session expects %dx%d", b.Dx(), b.Dy(), s.width, s.height)
	}
	packRGB(s.buf, img)
	if _, err := s.stdin.Write(s.buf); err != nil {
		return s.failure("write frame", err)
	}
	s.frames++
	return nil
}

// Close flushes the stream and waits for ffmpeg to finish.
func (s *Session) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	closeErr := s.stdin.Close()
	waitErr := s.cmd.Wait()
	s.waited = true
	if waitErr != nil {
		return s.failure("ffmpeg", waitErr)
	}
	if closeErr != nil {
		return s.failure("close stdin", closeErr)
	}
	s.logger.Debug().Str("output", s.output).Int("frames", s.frames).Msg("ffmpeg finished")
	return nil
}

// Abort kills ffmpeg if it is still running and removes the output file.
// It is meant for error paths, including after a failed Close.
func (s *Session) Abort() {
	s.done = true
	if !s.waited {
		_ = s.stdin.Close()
		if s.cmd.Process != nil {
			_ = s.cmd.Process.Kill()
		}
		_ = s.cmd.Wait()
		s.waited = true
	}
	if err := os.Remove(s.output); err != nil && !os.IsNotExist(err) {
		s.logger.Debug().Err(err).Str("output", s.output).Msg("remove partial output")
	}
}

func (s *Session) failure(op string, err error) error {
	if msg := strings.TrimSpace(s.stderr.String()); msg != "" {
		return fmt.Errorf("%s: %w: %s", op, err, msg)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// packRGB writes img into buf as packed rgb24.
func packRGB(buf []byte, img image.Image) {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok {
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := rgba.Pix[rgba.PixOffset(b.Min.X, y):]
			for x := 0; x < b.Dx(); x++ {
				buf[i] = row[4*x]
				buf[i+1] = row[4*x+1]
				buf[i+2] = row[4*x+2]
				i += 3
			}
		}
		return
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			buf[i] = uint8(r >> 8)
			buf[i+1] = uint8(g >> 8)
			buf[i+2] = uint8(bl >> 8)
			i += 3
		}
	}
}
