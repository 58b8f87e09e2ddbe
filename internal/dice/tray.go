// Package dice runs the dice tray: a rigid-body world and a mirrored scene
// kept in lock-step, a registry of active dice, pointer picking and the roll
// resolver. All state is owned by a Tray and must be used from one goroutine.
package dice

import (
	"image/color"
	"log"
	"math"
	"time"

	"dmscreen/internal/core"
	"dmscreen/internal/physics"
	"dmscreen/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	gravity        = -9.81
	dieMass        = 3.0
	linearDamping  = 0.4
	angularDamping = 0.5
	dieFriction    = 0.7
	dieRestitution = 0.1

	spawnHeight = 2.0
	// spawnJitter is the width of the horizontal spawn window around the
	// tray centre.
	spawnJitter = 2.0

	// SettleDelay is how long dice tumble before the result is shown.
	SettleDelay = 1500 * time.Millisecond

	// ticksPerSecond fixes the simulation rate. Every Tick advances physics
	// and the scheduler by one 1/60 s step whatever the display cadence.
	ticksPerSecond = 60
	physicsStep    = 1.0 / ticksPerSecond
)

// Config controls tray construction.
type Config struct {
	// Canvas is the pixel size of the drawing surface.
	Canvas core.Size
	// Seed drives die colours, spawn jitter, roll impulses and results.
	Seed int64
	// Logger receives warnings and activity lines. Defaults to log.Default().
	Logger *log.Logger
}

// Die is one active die: a physics body, its visual proxy and its type.
type Die struct {
	ID    int
	Type  Type
	Body  *physics.Body
	Mesh  *scene.Mesh
	Color color.RGBA
}

// Tray owns the world, the scene and the registry of dice.
type Tray struct {
	world  *physics.World
	scene  *scene.Scene
	bounds Bounds

	dieMaterial    *physics.Material
	groundMaterial *physics.Material

	dice    []*Die
	nextID  int
	hovered *Die

	viewport scene.Viewport
	rng      *core.RNG
	sched    *core.Scheduler
	logger   *log.Logger

	result     Result
	settle     core.Task
	generation uint64
}

// New builds a tray with its boundaries in place and no dice.
func New(cfg Config) (*Tray, error) {
	die := physics.NewMaterial("die")
	ground := physics.NewMaterial("ground")
	bounds, err := BuildBoundaries(cfg.Canvas, ground)
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld(mgl64.Vec3{0, gravity, 0})
	world.AddContactMaterial(physics.ContactMaterial{
		A:           die,
		B:           ground,
		Friction:    dieFriction,
		Restitution: dieRestitution,
	})
	for _, b := range bounds.Bodies() {
		world.AddBody(b)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Tray{
		world:          world,
		scene:          scene.New(scene.NewTopDownCamera(cfg.Canvas.Aspect())),
		bounds:         bounds,
		dieMaterial:    die,
		groundMaterial: ground,
		viewport:       scene.Viewport{W: float64(cfg.Canvas.W), H: float64(cfg.Canvas.H)},
		rng:            core.NewRNG(cfg.Seed),
		sched:          core.NewScheduler(ticksPerSecond),
		logger:         logger,
	}, nil
}

// World exposes the physics world.
func (t *Tray) World() *physics.World { return t.world }

// Scene exposes the render scene.
func (t *Tray) Scene() *scene.Scene { return t.scene }

// Bounds reports the static enclosure.
func (t *Tray) Bounds() Bounds { return t.bounds }

// Now reports the simulated time elapsed since construction.
func (t *Tray) Now() time.Duration { return t.sched.Now() }

// Viewport reports where the canvas sits on screen.
func (t *Tray) Viewport() scene.Viewport { return t.viewport }

// SetViewport moves the canvas rectangle used to map pointer positions.
func (t *Tray) SetViewport(vp scene.Viewport) { t.viewport = vp }

// Dice returns the registry in insertion order.
func (t *Tray) Dice() []*Die {
	return append([]*Die(nil), t.dice...)
}

// Len reports the number of active dice.
func (t *Tray) Len() int { return len(t.dice) }

// Spawn parses name and drops a new die of that type into the tray. Unknown
// names are logged and rejected without touching any state.
func (t *Tray) Spawn(name string) (*Die, error) {
	typ, err := ParseType(name)
	if err != nil {
		t.logger.Printf("[dice] warning: %v", err)
		return nil, err
	}
	return t.SpawnType(typ), nil
}

// SpawnType drops a new die of a known type into the tray.
func (t *Tray) SpawnType(typ Type) *Die {
	if !typ.Valid() {
		t.logger.Printf("[dice] warning: %v: %v", ErrUnknownDieType, typ)
		return nil
	}
	body := physics.NewBody(dieMass, typ.Collider())
	body.Material = t.dieMaterial
	body.LinearDamping = linearDamping
	body.AngularDamping = angularDamping
	body.Position = mgl64.Vec3{
		t.rng.Centered(spawnJitter),
		spawnHeight,
		t.rng.Centered(spawnJitter),
	}

	c := t.randomColor()
	mesh := scene.NewMesh(typ.Geometry(), c)
	mesh.SetPose(body.Pose())

	t.nextID++
	d := &Die{ID: t.nextID, Type: typ, Body: body, Mesh: mesh, Color: c}
	t.world.AddBody(body)
	t.scene.Add(mesh)
	t.dice = append(t.dice, d)
	return d
}

// Remove takes a die out of the world, the scene and the registry. Removing a
// die that is not present is a no-op and reports false.
func (t *Tray) Remove(d *Die) bool {
	i := t.index(d)
	if i < 0 {
		return false
	}
	t.world.RemoveBody(d.Body)
	t.scene.Remove(d.Mesh)
	t.dice = append(t.dice[:i], t.dice[i+1:]...)
	if t.hovered == d {
		t.hovered = nil
	}
	t.logger.Printf("[dice] removed die %d (%s)", d.ID, d.Type)
	return true
}

// Clear removes every die, hides the result and drops any pending roll.
func (t *Tray) Clear() {
	for _, d := range t.Dice() {
		t.Remove(d)
	}
	t.cancelSettle()
	t.result = Result{}
	t.logger.Printf("[dice] all dice and results cleared")
}

// Tick advances the tray by one fixed step: physics first, then every mesh
// takes its body's pose, then deferred work due by the new time runs.
func (t *Tray) Tick() {
	t.world.Step(physicsStep)
	for _, d := range t.dice {
		d.Mesh.SetPose(d.Body.Pose())
	}
	t.sched.Tick()
}

func (t *Tray) index(d *Die) int {
	if d == nil {
		return -1
	}
	for i, other := range t.dice {
		if other == d {
			return i
		}
	}
	return -1
}

func (t *Tray) dieForMesh(m *scene.Mesh) *Die {
	for _, d := range t.dice {
		if d.Mesh == m {
			return d
		}
	}
	return nil
}

// randomColor picks a saturated colour with a random hue.
func (t *Tray) randomColor() color.RGBA {
	return hsv(t.rng.Float64()*360, t.rng.Between(0.55, 0.85), t.rng.Between(0.75, 1))
}

func hsv(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(f float64) uint8 { return uint8(math.Round((f + m) * 255)) }
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 255}
}
