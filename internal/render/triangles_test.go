package render

import (
	"image/color"
	"testing"

	"dmscreen/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

func TestColorScale(t *testing.T) {
	r, g, b, a := colorScale(color.RGBA{R: 255, G: 0, B: 51, A: 255})
	if r != 1 || g != 0 || a != 1 {
		t.Fatalf("scale = %v %v %v %v", r, g, b, a)
	}
	if b < 0.19 || b > 0.21 {
		t.Fatalf("blue scale = %v, want 0.2", b)
	}
}

func TestBatchesSplitOnTriangleBoundaries(t *testing.T) {
	tris := make([]scene.Triangle, 10)
	for i := range tris {
		tris[i] = scene.Triangle{
			Points: [3]mgl64.Vec2{{float64(i), 0}, {float64(i), 1}, {float64(i) + 1, 0}},
			Color:  color.RGBA{R: 255, A: 255},
		}
	}
	got := batches(tris, 8)
	if len(got) != 5 {
		t.Fatalf("batches = %d, want 5", len(got))
	}
	total := 0
	for _, b := range got {
		if len(b)%3 != 0 || len(b) > 8 {
			t.Fatalf("batch of %d vertices", len(b))
		}
		total += len(b)
	}
	if total != 30 {
		t.Fatalf("vertices = %d, want 30", total)
	}
	if got[4][5].x != 10 {
		t.Fatalf("last vertex x = %v, want 10", got[4][5].x)
	}
}

func TestBatchesEmpty(t *testing.T) {
	if got := batches(nil, maxBatchVertices); len(got) != 0 {
		t.Fatalf("batches of nothing = %d", len(got))
	}
}
