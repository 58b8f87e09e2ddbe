package dice

import (
	"bytes"
	"errors"
	"io"
	"log"
	"math"
	"strings"
	"testing"

	"dmscreen/internal/core"
	"dmscreen/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

const boundaryBodies = 6

func newTestTray(t *testing.T, seed int64) *Tray {
	t.Helper()
	tr, err := New(Config{
		Canvas: core.Size{W: 600, H: 400},
		Seed:   seed,
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("new tray: %v", err)
	}
	return tr
}

func checkCounts(t *testing.T, tr *Tray, want int) {
	t.Helper()
	if tr.Len() != want {
		t.Fatalf("registry has %d dice, want %d", tr.Len(), want)
	}
	if got := tr.World().DynamicCount(); got != want {
		t.Fatalf("world has %d dynamic bodies, want %d", got, want)
	}
	if got := tr.World().Len(); got != want+boundaryBodies {
		t.Fatalf("world has %d bodies, want %d", got, want+boundaryBodies)
	}
	if got := tr.Scene().Len(); got != want {
		t.Fatalf("scene has %d meshes, want %d", got, want)
	}
}

func TestNewRejectsEmptyCanvas(t *testing.T) {
	_, err := New(Config{Canvas: core.Size{W: 0, H: 400}})
	if !errors.Is(err, ErrInvalidCanvas) {
		t.Fatalf("err = %v, want ErrInvalidCanvas", err)
	}
}

func TestSpawnKeepsWorldSceneAndRegistryInStep(t *testing.T) {
	tr := newTestTray(t, 1)
	checkCounts(t, tr, 0)

	for i, name := range []string{"d4", "d6", "D8", " d10 ", "d12", "d20", "d100"} {
		d, err := tr.Spawn(name)
		if err != nil {
			t.Fatalf("spawn %q: %v", name, err)
		}
		if !tr.World().Has(d.Body) || !tr.Scene().Has(d.Mesh) {
			t.Fatalf("spawned %s missing from world or scene", d.Type)
		}
		checkCounts(t, tr, i+1)
	}
}

func TestSpawnPlacement(t *testing.T) {
	tr := newTestTray(t, 9)
	for i := 0; i < 50; i++ {
		d := tr.SpawnType(D20)
		p := d.Body.Position
		if p.Y() != spawnHeight {
			t.Fatalf("spawn height = %v, want %v", p.Y(), spawnHeight)
		}
		if math.Abs(p.X()) > 1 || math.Abs(p.Z()) > 1 {
			t.Fatalf("spawn %v outside the [-1, 1] window", p)
		}
		if d.Body.Mass() != dieMass {
			t.Fatalf("mass = %v, want %v", d.Body.Mass(), dieMass)
		}
		if d.Color.A != 255 {
			t.Fatalf("die colour %v is not opaque", d.Color)
		}
		if d.Mesh.Position != p {
			t.Fatalf("mesh at %v, body at %v", d.Mesh.Position, p)
		}
	}
}

func TestSpawnUnknownTypeLogsAndLeavesStateAlone(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Canvas: core.Size{W: 600, H: 400}, Seed: 1, Logger: log.New(&buf, "", 0)})
	if err != nil {
		t.Fatalf("new tray: %v", err)
	}
	tr.SpawnType(D6)

	d, err := tr.Spawn("d13")
	if !errors.Is(err, ErrUnknownDieType) {
		t.Fatalf("err = %v, want ErrUnknownDieType", err)
	}
	if d != nil {
		t.Fatalf("unknown type returned a die")
	}
	if !strings.Contains(buf.String(), "warning") || !strings.Contains(buf.String(), "d13") {
		t.Fatalf("log %q missing warning for d13", buf.String())
	}
	checkCounts(t, tr, 1)
}

func TestRemoveIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Canvas: core.Size{W: 600, H: 400}, Seed: 1, Logger: log.New(&buf, "", 0)})
	if err != nil {
		t.Fatalf("new tray: %v", err)
	}
	a := tr.SpawnType(D6)
	b := tr.SpawnType(D20)

	if !tr.Remove(a) {
		t.Fatalf("first remove reported false")
	}
	if tr.Remove(a) {
		t.Fatalf("second remove reported true")
	}
	if tr.Remove(nil) {
		t.Fatalf("remove of nil reported true")
	}
	checkCounts(t, tr, 1)
	if tr.Dice()[0] != b {
		t.Fatalf("wrong die left in registry")
	}
	if !strings.Contains(buf.String(), "removed die 1") {
		t.Fatalf("log %q missing removal line", buf.String())
	}
}

func TestClearRemovesEverything(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Canvas: core.Size{W: 600, H: 400}, Seed: 1, Logger: log.New(&buf, "", 0)})
	if err != nil {
		t.Fatalf("new tray: %v", err)
	}
	for _, typ := range Types() {
		tr.SpawnType(typ)
	}
	tr.Roll()
	settle(tr)
	if !tr.Result().Shown {
		t.Fatalf("result not shown after settle")
	}

	tr.Clear()
	checkCounts(t, tr, 0)
	if tr.Result().Shown {
		t.Fatalf("result still shown after clear")
	}
	if tr.Hovered() != nil {
		t.Fatalf("hover survived clear")
	}
	if !strings.Contains(buf.String(), "all dice and results cleared") {
		t.Fatalf("log %q missing clear line", buf.String())
	}
}

func TestTickSyncsMeshesToBodies(t *testing.T) {
	tr := newTestTray(t, 5)
	d := tr.SpawnType(D8)
	start := d.Body.Position
	for i := 0; i < 10; i++ {
		tr.Tick()
	}
	if d.Body.Position == start {
		t.Fatalf("die did not fall")
	}
	if d.Mesh.Position != d.Body.Position || d.Mesh.Orientation != d.Body.Orientation {
		t.Fatalf("mesh pose %v/%v does not match body %v/%v",
			d.Mesh.Position, d.Mesh.Orientation, d.Body.Position, d.Body.Orientation)
	}
}

func TestDiceStayInsideTray(t *testing.T) {
	tr := newTestTray(t, 11)
	for i := 0; i < 3; i++ {
		for _, typ := range Types() {
			tr.SpawnType(typ)
		}
	}
	b := tr.Bounds()
	const margin = 0.5
	for round := 0; round < 3; round++ {
		tr.Roll()
		for i := 0; i < 180; i++ {
			tr.Tick()
			for _, d := range tr.Dice() {
				p := d.Body.Position
				if math.Abs(p.X()) > b.HalfWidth+margin || math.Abs(p.Z()) > b.HalfDepth+margin ||
					p.Y() < -margin || p.Y() > b.Height+margin {
					t.Fatalf("round %d tick %d: %s escaped to %v", round, i, d.Label(), p)
				}
			}
		}
	}
}

func TestBuildBoundariesDeterministic(t *testing.T) {
	ground := physics.NewMaterial("ground")
	a, err := BuildBoundaries(core.Size{W: 800, H: 500}, ground)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := BuildBoundaries(core.Size{W: 800, H: 500}, ground)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ab, bb := a.Bodies(), b.Bodies()
	if len(ab) != boundaryBodies || len(bb) != boundaryBodies {
		t.Fatalf("bodies = %d/%d, want %d", len(ab), len(bb), boundaryBodies)
	}
	for i := range ab {
		if ab[i].Position != bb[i].Position || ab[i].Orientation != bb[i].Orientation || ab[i].Shape != bb[i].Shape {
			t.Fatalf("boundary %d differs between builds", i)
		}
		if !ab[i].Static() {
			t.Fatalf("boundary %d is not static", i)
		}
		if ab[i].Material != ground {
			t.Fatalf("boundary %d has material %v, want ground", i, ab[i].Material)
		}
	}
}

func TestBoundaryLayout(t *testing.T) {
	b, err := BuildBoundaries(core.Size{W: 600, H: 400}, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if b.HalfWidth != 15 || b.HalfDepth != 10 {
		t.Fatalf("footprint = %vx%v, want 15x10", b.HalfWidth, b.HalfDepth)
	}
	up := b.Floor.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
	if !up.ApproxEqualThreshold(mgl64.Vec3{0, 1, 0}, 1e-9) {
		t.Fatalf("floor normal = %v, want +Y", up)
	}
	down := b.Ceiling.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
	if !down.ApproxEqualThreshold(mgl64.Vec3{0, -1, 0}, 1e-9) {
		t.Fatalf("ceiling normal = %v, want -Y", down)
	}
	north := b.Walls[0]
	inner := north.Position.Z() + north.Shape.HalfExtents.Z()
	if math.Abs(inner-(-b.HalfDepth)) > 1e-9 {
		t.Fatalf("north wall inner face at z=%v, want %v", inner, -b.HalfDepth)
	}
	east := b.Walls[3]
	inner = east.Position.X() - east.Shape.HalfExtents.X()
	if math.Abs(inner-b.HalfWidth) > 1e-9 {
		t.Fatalf("east wall inner face at x=%v, want %v", inner, b.HalfWidth)
	}
}

func TestParseType(t *testing.T) {
	cases := map[string]Type{"d4": D4, "D6": D6, " d20": D20, "d100": D100}
	for in, want := range cases {
		got, err := ParseType(in)
		if err != nil || got != want {
			t.Fatalf("ParseType(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "d13", "20", "dd6"} {
		if _, err := ParseType(in); !errors.Is(err, ErrUnknownDieType) {
			t.Fatalf("ParseType(%q) err = %v, want ErrUnknownDieType", in, err)
		}
	}
}

func TestDenseSpawnStaysInsideTray(t *testing.T) {
	for _, seed := range []int64{4, 23} {
		tr := newTestTray(t, seed)
		for i := 0; i < 4; i++ {
			for _, typ := range Types() {
				tr.SpawnType(typ)
			}
		}
		b := tr.Bounds()
		for round := 0; round < 3; round++ {
			tr.Roll()
			for i := 0; i < 180; i++ {
				tr.Tick()
			}
			for _, d := range tr.Dice() {
				if !b.Contains(d.Body.Position) {
					t.Fatalf("seed %d round %d: %s left the tray at %v", seed, round, d.Label(), d.Body.Position)
				}
			}
		}
	}
}
