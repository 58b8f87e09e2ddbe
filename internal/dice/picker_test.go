package dice

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// place moves a die to (x, 1, z) and syncs its mesh. On the 600x400 test
// canvas a world point (x, z) sits at pixel (300+20x, 200+20z).
func place(d *Die, x, z float64) {
	d.Body.Position = mgl64.Vec3{x, 1, z}
	d.Mesh.SetPose(d.Body.Pose())
}

func TestPickFindsDieUnderPointer(t *testing.T) {
	tr := newTestTray(t, 1)
	if _, ok := tr.Pick(300, 200); ok {
		t.Fatalf("pick on empty tray returned a die")
	}
	a := tr.SpawnType(D20)
	b := tr.SpawnType(D6)
	place(a, -5, 0)
	place(b, 5, 0)

	if d, ok := tr.Pick(200, 200); !ok || d != a {
		t.Fatalf("pick left = %v, %v; want die %d", d, ok, a.ID)
	}
	if d, ok := tr.Pick(400, 200); !ok || d != b {
		t.Fatalf("pick right = %v, %v; want die %d", d, ok, b.ID)
	}
	if _, ok := tr.Pick(300, 100); ok {
		t.Fatalf("pick over empty floor returned a die")
	}
}

func TestHoverHighlightsOneDie(t *testing.T) {
	tr := newTestTray(t, 1)
	a := tr.SpawnType(D20)
	b := tr.SpawnType(D20)
	place(a, -5, 0)
	place(b, 5, 0)
	velocity := a.Body.Velocity

	tr.Hover(200, 200)
	if tr.Hovered() != a {
		t.Fatalf("hovered = %v, want die %d", tr.Hovered(), a.ID)
	}
	if a.Mesh.Scale != highlightScale || a.Mesh.Emissive != highlightTint {
		t.Fatalf("hovered die not highlighted: scale %v emissive %v", a.Mesh.Scale, a.Mesh.Emissive)
	}

	tr.Hover(400, 200)
	if tr.Hovered() != b {
		t.Fatalf("hovered = %v, want die %d", tr.Hovered(), b.ID)
	}
	if a.Mesh.Scale != 1 || a.Mesh.Emissive != noTint {
		t.Fatalf("previous die still highlighted")
	}
	if b.Mesh.Scale != highlightScale {
		t.Fatalf("new die not highlighted")
	}

	tr.Hover(300, 100)
	if tr.Hovered() != nil {
		t.Fatalf("hover over nothing kept %v", tr.Hovered())
	}
	if b.Mesh.Scale != 1 || b.Mesh.Emissive != noTint {
		t.Fatalf("die still highlighted after pointer left")
	}
	if a.Body.Velocity != velocity || a.Body.Position != (mgl64.Vec3{-5, 1, 0}) {
		t.Fatalf("hover touched physics state")
	}
}

func TestClickRemovesDie(t *testing.T) {
	tr := newTestTray(t, 1)
	a := tr.SpawnType(D20)
	b := tr.SpawnType(D20)
	place(a, -5, 0)
	place(b, 5, 0)

	tr.Hover(200, 200)
	if !tr.Click(200, 200) {
		t.Fatalf("click on die reported no removal")
	}
	checkCounts(t, tr, 1)
	if tr.Hovered() != nil {
		t.Fatalf("removed die is still hovered")
	}
	if tr.Click(300, 100) {
		t.Fatalf("click on empty floor removed something")
	}
	if tr.Dice()[0] != b {
		t.Fatalf("wrong die removed")
	}
}

func TestPickRespectsViewportOffset(t *testing.T) {
	tr := newTestTray(t, 1)
	a := tr.SpawnType(D20)
	place(a, 0, 0)
	vp := tr.Viewport()
	vp.X = 240
	tr.SetViewport(vp)

	if _, ok := tr.Pick(100, 200); ok {
		t.Fatalf("pick outside the offset canvas returned a die")
	}
	if d, ok := tr.Pick(540, 200); !ok || d != a {
		t.Fatalf("pick at offset centre = %v, %v", d, ok)
	}
}
