// Package physics implements a small rigid-body world for tabletop dice.
//
// Bodies carry one collision shape (sphere, box or plane). Zero-mass bodies
// are static: they collide but never move. Step integrates gravity, resolves
// contacts with sequential impulses using the friction and restitution of the
// touching materials, applies per-body damping and advances positions and
// orientations by a fixed timestep.
package physics
