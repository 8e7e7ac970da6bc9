package encoder

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const captureScript = `#!/bin/sh
for a; do last=$a; done
printf '%s\n' "$@" > "$(dirname "$last")/args.txt"
cat > "$last"
`

const failingScript = `#!/bin/sh
cat > /dev/null
echo "Unknown encoder" >&2
exit 1
`

func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
}

func TestCheckExplicit(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	stub := writeStub(t, dir, "ffmpeg", captureScript)
	t.Setenv(EnvFFmpeg, "")
	t.Setenv(EnvImageIOFFmpeg, "")

	status := Check(stub)
	if !status.Available {
		t.Fatalf("expected available, got detail %q", status.Detail)
	}
	if status.Command != stub || status.Source != "flag" {
		t.Errorf("unexpected status %#v", status)
	}
}

func TestCheckEnvOrder(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	primary := writeStub(t, dir, "ffmpeg-primary", captureScript)
	fallback := writeStub(t, dir, "ffmpeg-fallback", captureScript)

	t.Setenv(EnvFFmpeg, primary)
	t.Setenv(EnvImageIOFFmpeg, fallback)
	if got := Check(""); got.Command != primary || got.Source != EnvFFmpeg {
		t.Errorf("expected %s from %s, got %#v", primary, EnvFFmpeg, got)
	}

	t.Setenv(EnvFFmpeg, "")
	if got := Check(""); got.Command != fallback || got.Source != EnvImageIOFFmpeg {
		t.Errorf("expected %s from %s, got %#v", fallback, EnvImageIOFFmpeg, got)
	}
}

func TestCheckPathFallback(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	stub := writeStub(t, dir, "ffmpeg", captureScript)
	t.Setenv(EnvFFmpeg, "")
	t.Setenv(EnvImageIOFFmpeg, "")
	t.Setenv("PATH", dir)

	status := Check("")
	if !status.Available || status.Command != stub {
		t.Fatalf("expected PATH lookup to find %s, got %#v", stub, status)
	}
}

func TestResolveMissing(t *testing.T) {
	t.Setenv(EnvFFmpeg, "")
	t.Setenv(EnvImageIOFFmpeg, "")
	t.Setenv("PATH", t.TempDir())

	_, err := Resolve(filepath.Join(t.TempDir(), "nope", "ffmpeg"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_, err = Resolve("")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from PATH lookup, got %v", err)
	}
}

func TestCheckNotExecutable(t *testing.T) {
	skipOnWindows(t)
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	status := Check(path)
	if status.Available || !strings.Contains(status.Detail, "not executable") {
		t.Errorf("expected not executable, got %#v", status)
	}
}

func TestArgs(t *testing.T) {
	e := New("ffmpeg", WithCodec("libx265"))
	args := strings.Join(e.Args("out.mp4", 640, 480, 0.5), " ")
	for _, want := range []string{"-s 640x480", "-r 0.5", "-c:v libx265", "-pix_fmt yuv420p", "-f rawvideo"} {
		if !strings.Contains(args, want) {
			t.Errorf("args %q missing %q", args, want)
		}
	}
	if !strings.HasSuffix(args, "out.mp4") {
		t.Errorf("output must be last, got %q", args)
	}
}

func TestSessionWritesFrames(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	stub := writeStub(t, dir, "ffmpeg", captureScript)
	out := filepath.Join(dir, "clip.mp4")

	s, err := New(stub).Start(context.Background(), out, 4, 2, 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	for i := 0; i < 3; i++ {
		if err := s.WriteFrame(img); err != nil {
			t.Fatalf("write frame %d: %v", i, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if s.Frames() != 3 {
		t.Errorf("expected 3 frames, got %d", s.Frames())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 3*4*2*3 {
		t.Fatalf("expected %d bytes, got %d", 3*4*2*3, len(data))
	}
	if data[0] != 10 || data[1] != 20 || data[2] != 30 {
		t.Errorf("unexpected first pixel %v", data[:3])
	}
	if err := s.WriteFrame(img); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed after close, got %v", err)
	}
}

func TestSessionRejectsWrongSize(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	stub := writeStub(t, dir, "ffmpeg", captureScript)

	s, err := New(stub).Start(context.Background(), filepath.Join(dir, "clip.mp4"), 4, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Abort()
	if err := s.WriteFrame(image.NewRGBA(image.Rect(0, 0, 2, 2))); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestSessionFailureIncludesStderr(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	stub := writeStub(t, dir, "ffmpeg", failingScript)
	out := filepath.Join(dir, "clip.mp4")

	s, err := New(stub).Start(context.Background(), out, 2, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	_ = s.WriteFrame(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	err = s.Close()
	if err == nil || !strings.Contains(err.Error(), "Unknown encoder") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
	if err := os.WriteFile(out, []byte("partial"), 0o644); err != nil {
		t.Fatal(err)
	}
	s.Abort()
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("expected partial output to be removed")
	}
}

func TestStartWithoutBinary(t *testing.T) {
	_, err := New("").Start(context.Background(), "x.mp4", 2, 2, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
