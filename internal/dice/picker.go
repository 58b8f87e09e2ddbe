package dice

import "image/color"

const highlightScale = 1.2

var (
	highlightTint = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	noTint        = color.RGBA{A: 0xff}
)

// Pick returns the die under a device pixel, if the nearest object hit by the
// pointer ray is one.
func (t *Tray) Pick(px, py float64) (*Die, bool) {
	hit, ok := t.scene.PickAt(t.viewport, px, py)
	if !ok {
		return nil, false
	}
	d := t.dieForMesh(hit.Mesh)
	return d, d != nil
}

// Hovered reports the highlighted die, or nil.
func (t *Tray) Hovered() *Die { return t.hovered }

// Hover moves the highlight to the die under the pointer, or clears it when
// the pointer is over no die.
func (t *Tray) Hover(px, py float64) {
	d, ok := t.Pick(px, py)
	if !ok {
		t.setHovered(nil)
		return
	}
	if d != t.hovered {
		t.setHovered(d)
	}
}

// Click removes the die under the pointer. It reports whether a die was
// removed.
func (t *Tray) Click(px, py float64) bool {
	d, ok := t.Pick(px, py)
	if !ok {
		return false
	}
	return t.Remove(d)
}

func (t *Tray) setHovered(d *Die) {
	if t.hovered != nil {
		t.hovered.Mesh.Scale = 1
		t.hovered.Mesh.Emissive = noTint
	}
	t.hovered = d
	if d != nil {
		d.Mesh.Scale = highlightScale
		d.Mesh.Emissive = highlightTint
	}
}

// Unhover drops any highlight.
func (t *Tray) Unhover() { t.setHovered(nil) }
