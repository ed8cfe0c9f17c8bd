package raster

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	black = colorful.Color{}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func approx(a, b colorful.Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestFillCircle(t *testing.T) {
	c := New(20, 20)
	c.FillCircle(10, 10, 3, white, 1)

	if !approx(c.At(10, 10), white) {
		t.Errorf("center = %v, want white", c.At(10, 10))
	}
	if !approx(c.At(0, 0), black) {
		t.Errorf("corner = %v, want black", c.At(0, 0))
	}
	if !approx(c.At(15, 10), black) {
		t.Errorf("outside radius = %v, want black", c.At(15, 10))
	}
}

func TestFillCircleAlpha(t *testing.T) {
	c := New(4, 4)
	c.FillCircle(2, 2, 1.5, white, 0.6)

	got := c.At(2, 2)
	if math.Abs(got.R-0.6) > 1e-9 {
		t.Errorf("blended R = %.3f, want 0.6", got.R)
	}
}

func TestFillCircleTinyRadius(t *testing.T) {
	c := New(4, 4)
	// 圆心靠近像素角落，半径 0.2 覆盖不到任何像素中心
	c.FillCircle(1.05, 1.05, 0.2, white, 1)

	got := c.At(1, 1)
	want := math.Pi * 0.04
	if math.Abs(got.R-want) > 1e-9 {
		t.Errorf("tiny circle R = %.4f, want %.4f", got.R, want)
	}
}

func TestFillCircleClipped(t *testing.T) {
	c := New(5, 5)
	c.FillCircle(-1, -1, 3, white, 1)
	c.FillCircle(100, 100, 3, white, 1)

	if !approx(c.At(0, 0), white) {
		t.Error("clipped circle should still cover the corner")
	}
	if !approx(c.At(4, 4), black) {
		t.Error("far circle should not touch the canvas")
	}
}

func TestFillPolygon(t *testing.T) {
	c := New(10, 10)
	square := []Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}}
	c.FillPolygon(square, white, 1)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 8 && y >= 2 && y < 8
			got := approx(c.At(x, y), white)
			if got != inside {
				t.Fatalf("pixel (%d,%d) filled = %v, want %v", x, y, got, inside)
			}
		}
	}
}

func TestGlowFalloff(t *testing.T) {
	c := New(21, 21)
	c.Glow(10.5, 10.5, 8, white, 1)

	center := c.At(10, 10).R
	mid := c.At(14, 10).R
	edge := c.At(20, 10).R
	if !(center > mid && mid > edge) {
		t.Errorf("glow not decreasing: center %.3f mid %.3f edge %.3f", center, mid, edge)
	}
	if edge != 0 {
		t.Errorf("outside glow radius = %.3f, want 0", edge)
	}
}

func TestResizeClears(t *testing.T) {
	c := New(3, 3)
	c.Fill(white)
	c.Resize(2, 2)
	if len(c.Pix) != 4 || !approx(c.At(1, 1), black) {
		t.Errorf("resize should clear pixels, got %v", c.Pix)
	}
}
