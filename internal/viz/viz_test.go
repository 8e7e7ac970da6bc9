package viz

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/proxvid/internal/colormap"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(10, 10)

	if !c.IsSet(0, 0) || !c.IsSet(3, 3) {
		t.Error("expected dots to be set")
	}
	if c.IsSet(1, 0) {
		t.Error("unexpected dot")
	}
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected U+2801, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected U+2880, got %U", c.Grid[0][1])
	}
}

func TestSupportMask(t *testing.T) {
	frame := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 0,
		0, 0,
		0, -2,
	})
	c := SupportMask(frame, 0)
	if c.Width != 1 || c.Height != 1 {
		t.Fatalf("expected 1x1 cells, got %dx%d", c.Width, c.Height)
	}
	if !c.IsSet(0, 0) || !c.IsSet(1, 3) || c.IsSet(1, 0) {
		t.Errorf("unexpected mask %q", c.String())
	}
	if strings.Count(c.String(), "\n") != 1 {
		t.Errorf("expected one line, got %q", c.String())
	}
}

func TestHeatmapLines(t *testing.T) {
	cmap, _ := colormap.Get("viridis")
	frame := mat.NewDense(3, 4, nil)
	out := Heatmap(frame, cmap, -1, 1)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("expected 2 lines for 3 rows, got %d", n)
	}
	if n := strings.Count(out, "▀"); n != 8 {
		t.Errorf("expected 8 cells, got %d", n)
	}
}

func TestSparklineChart(t *testing.T) {
	if got := SparklineChart(nil, 4); got != "────" {
		t.Errorf("expected placeholder, got %q", got)
	}
	out := SparklineChart([]float64{0, 0.5, 1}, 3)
	if n := len([]rune(stripANSI(out))); n != 3 {
		t.Errorf("expected 3 glyphs, got %d in %q", n, out)
	}
}

func TestSummary(t *testing.T) {
	out := Summary("video", []Metric{{"fps", "24"}, {"frames", "120"}})
	for _, want := range []string{"video", "fps", "frames", "120"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			inEsc = true
		case inEsc && (r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
