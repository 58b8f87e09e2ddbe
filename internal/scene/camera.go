package scene

import "github.com/go-gl/mathgl/mgl64"

// Camera is an orthographic camera. ViewSize is the visible height in world
// units; the visible width follows from Aspect.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	ViewSize float64
	Aspect   float64
	Near     float64
	Far      float64
}

// NewTopDownCamera returns the dice-tray camera: 15 units above the origin,
// looking straight down with world -Z at the top of the screen.
func NewTopDownCamera(aspect float64) *Camera {
	return &Camera{
		Position: mgl64.Vec3{0, 15, 0},
		Target:   mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 0, -1},
		ViewSize: 20,
		Aspect:   aspect,
		Near:     -100,
		Far:      100,
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the orthographic projection matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	halfH := c.ViewSize / 2
	halfW := halfH * c.Aspect
	return mgl64.Ortho(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Forward is the unit viewing direction.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Ray casts from the near plane through the given normalized device
// coordinates.
func (c *Camera) Ray(ndc mgl64.Vec2) Ray {
	inv := c.ViewProjection().Inv()
	near := mgl64.TransformCoordinate(mgl64.Vec3{ndc.X(), ndc.Y(), -1}, inv)
	far := mgl64.TransformCoordinate(mgl64.Vec3{ndc.X(), ndc.Y(), 1}, inv)
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// Viewport is the on-screen rectangle the scene is drawn into, in device
// pixels.
type Viewport struct {
	X, Y, W, H float64
}

// NDC maps a device pixel to normalized device coordinates. It reports false
// for a degenerate viewport.
func (v Viewport) NDC(px, py float64) (mgl64.Vec2, bool) {
	if v.W <= 0 || v.H <= 0 {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{
		(px-v.X)/v.W*2 - 1,
		-(py-v.Y)/v.H*2 + 1,
	}, true
}

// ToScreen maps normalized device coordinates back to device pixels.
func (v Viewport) ToScreen(ndc mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		v.X + (ndc.X()+1)/2*v.W,
		v.Y + (1-ndc.Y())/2*v.H,
	}
}

// Contains reports whether the pixel lies inside the viewport.
func (v Viewport) Contains(px, py float64) bool {
	return px >= v.X && px < v.X+v.W && py >= v.Y && py < v.Y+v.H
}

// ScreenPoint projects a world point to device pixels inside vp.
func (c *Camera) ScreenPoint(vp Viewport, p mgl64.Vec3) mgl64.Vec2 {
	ndc := mgl64.TransformCoordinate(p, c.ViewProjection())
	return vp.ToScreen(mgl64.Vec2{ndc.X(), ndc.Y()})
}
