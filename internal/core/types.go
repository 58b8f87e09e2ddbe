package core

// Size describes pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}

// Aspect reports width over height, or 0 for an empty size.
func (s Size) Aspect() float64 {
	if s.H == 0 {
		return 0
	}
	return float64(s.W) / float64(s.H)
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }
