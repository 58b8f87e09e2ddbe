package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCollideNormalPointsFromAToB(t *testing.T) {
	ball := NewBody(1, Sphere(1))
	ball.Position = mgl64.Vec3{0, 0.5, 0}
	ground := floor(nil)

	cs := collide(nil, ball, ground)
	if len(cs) != 1 {
		t.Fatalf("sphere/plane contacts = %d, want 1", len(cs))
	}
	if !cs[0].normal.ApproxEqual(mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("normal = %v, want (0,-1,0)", cs[0].normal)
	}
	if math.Abs(cs[0].depth-0.5) > 1e-9 {
		t.Fatalf("depth = %f, want 0.5", cs[0].depth)
	}

	swapped := collide(nil, ground, ball)
	if len(swapped) != 1 {
		t.Fatalf("plane/sphere contacts = %d, want 1", len(swapped))
	}
	if swapped[0].a != ground || !swapped[0].normal.ApproxEqual(mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("swapped contact a=%v normal=%v, want ground and (0,1,0)", swapped[0].a.Shape.Kind, swapped[0].normal)
	}
}

func TestBoxPlaneReportsPenetratingCorners(t *testing.T) {
	cube := NewBody(1, Box(mgl64.Vec3{0.5, 0.5, 0.5}))
	cube.Position = mgl64.Vec3{0, 0.4, 0}

	cs := collide(nil, cube, floor(nil))
	if len(cs) != 4 {
		t.Fatalf("box/plane contacts = %d, want 4 bottom corners", len(cs))
	}
	for _, c := range cs {
		if math.Abs(c.depth-0.1) > 1e-9 {
			t.Fatalf("corner depth = %f, want 0.1", c.depth)
		}
		if math.Abs(c.share-0.25) > 1e-9 {
			t.Fatalf("share = %f, want 0.25", c.share)
		}
	}
}

func TestSphereBoxOutsideAndInside(t *testing.T) {
	wall := NewBody(0, Box(mgl64.Vec3{1, 1, 1}))

	ball := NewBody(1, Sphere(0.5))
	ball.Position = mgl64.Vec3{1.3, 0, 0}
	cs := collide(nil, ball, wall)
	if len(cs) != 1 {
		t.Fatalf("contacts = %d, want 1", len(cs))
	}
	if !cs[0].normal.ApproxEqual(mgl64.Vec3{-1, 0, 0}) {
		t.Fatalf("normal = %v, want (-1,0,0)", cs[0].normal)
	}
	if math.Abs(cs[0].depth-0.2) > 1e-9 {
		t.Fatalf("depth = %f, want 0.2", cs[0].depth)
	}

	ball.Position = mgl64.Vec3{0, 0.8, 0}
	cs = collide(nil, ball, wall)
	if len(cs) != 1 {
		t.Fatalf("inside contacts = %d, want 1", len(cs))
	}
	if !cs[0].normal.ApproxEqual(mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("inside normal = %v, want (0,-1,0)", cs[0].normal)
	}
}

func TestBoxBoxCornerInside(t *testing.T) {
	wall := NewBody(0, Box(mgl64.Vec3{6, 10, 6}))
	wall.Position = mgl64.Vec3{0, 10, -11}

	cube := NewBody(1, Box(mgl64.Vec3{0.5, 0.5, 0.5}))
	cube.Position = mgl64.Vec3{0, 2, -4.6}

	cs := collide(nil, cube, wall)
	if len(cs) != 4 {
		t.Fatalf("contacts = %d, want the 4 corners on the wall side", len(cs))
	}
	for _, c := range cs {
		if !c.normal.ApproxEqual(mgl64.Vec3{0, 0, -1}) {
			t.Fatalf("normal = %v, want (0,0,-1)", c.normal)
		}
	}
}

func TestSeparatedBodiesProduceNoContacts(t *testing.T) {
	a := NewBody(1, Sphere(0.5))
	b := NewBody(1, Box(mgl64.Vec3{0.5, 0.5, 0.5}))
	b.Position = mgl64.Vec3{3, 0, 0}
	if cs := collide(nil, a, b); len(cs) != 0 {
		t.Fatalf("contacts = %d, want 0", len(cs))
	}
}

func TestSphereBuriedInWallLeavesThroughEntryFace(t *testing.T) {
	// Inner face at z=-10, bottom face at y=0.
	wall := NewBody(0, Box(mgl64.Vec3{6, 10, 6}))
	wall.Position = mgl64.Vec3{0, 10, -16}

	ball := NewBody(1, Sphere(1.5))
	ball.prev = mgl64.Vec3{0, 0.1, -9.5}
	ball.Position = mgl64.Vec3{0, 0.1, -12.4}

	cs := collide(nil, ball, wall)
	if len(cs) != 1 {
		t.Fatalf("contacts = %d, want 1", len(cs))
	}
	if !cs[0].normal.ApproxEqual(mgl64.Vec3{0, 0, -1}) {
		t.Fatalf("normal = %v, want (0,0,-1) back through the inner face", cs[0].normal)
	}
	if math.Abs(cs[0].depth-3.9) > 1e-9 {
		t.Fatalf("depth = %f, want 3.9", cs[0].depth)
	}
	if !ball.buried {
		t.Fatalf("ball not marked as buried")
	}
}
