package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is an indexed triangle mesh in model space. Faces wind
// counter-clockwise when seen from outside.
type Geometry struct {
	Name     string
	Vertices []mgl64.Vec3
	Faces    [][3]int
	radius   float64
}

// Radius is the distance from the origin to the farthest vertex.
func (g *Geometry) Radius() float64 { return g.radius }

func newGeometry(name string, verts []mgl64.Vec3, faces [][3]int) *Geometry {
	g := &Geometry{Name: name, Vertices: verts, Faces: faces}
	for _, v := range verts {
		g.radius = math.Max(g.radius, v.Len())
	}
	g.orientOutward()
	return g
}

// orientOutward flips faces of a convex, origin-centred solid so every normal
// points away from the centre.
func (g *Geometry) orientOutward() {
	for i, f := range g.Faces {
		a, b, c := g.Vertices[f[0]], g.Vertices[f[1]], g.Vertices[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c)
		if n.Dot(centroid) < 0 {
			g.Faces[i] = [3]int{f[0], f[2], f[1]}
		}
	}
}

// polyhedron projects the unit vertices onto a sphere of the given radius.
func polyhedron(name string, radius float64, verts []mgl64.Vec3, flat []int) *Geometry {
	out := make([]mgl64.Vec3, len(verts))
	for i, v := range verts {
		out[i] = v.Normalize().Mul(radius)
	}
	faces := make([][3]int, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		faces = append(faces, [3]int{flat[i], flat[i+1], flat[i+2]})
	}
	return newGeometry(name, out, faces)
}

// Tetrahedron returns a regular tetrahedron inscribed in a sphere of radius r.
func Tetrahedron(r float64) *Geometry {
	return polyhedron("tetrahedron", r,
		[]mgl64.Vec3{{1, 1, 1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1}},
		[]int{2, 1, 0, 0, 3, 2, 1, 3, 0, 2, 3, 1},
	)
}

// Cube returns an axis-aligned cube with the given edge length.
func Cube(edge float64) *Geometry {
	h := edge / 2
	verts := []mgl64.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2},
		{4, 5, 6}, {4, 6, 7},
		{0, 1, 5}, {0, 5, 4},
		{3, 7, 6}, {3, 6, 2},
		{0, 4, 7}, {0, 7, 3},
		{1, 2, 6}, {1, 6, 5},
	}
	return newGeometry("cube", verts, faces)
}

// Octahedron returns a regular octahedron inscribed in a sphere of radius r.
func Octahedron(r float64) *Geometry {
	return polyhedron("octahedron", r,
		[]mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}},
		[]int{0, 2, 4, 0, 4, 3, 0, 3, 5, 0, 5, 2, 1, 2, 5, 1, 5, 3, 1, 3, 4, 1, 4, 2},
	)
}

// Dodecahedron returns a regular dodecahedron inscribed in a sphere of radius r.
func Dodecahedron(r float64) *Geometry {
	t := (1 + math.Sqrt(5)) / 2
	s := 1 / t
	return polyhedron("dodecahedron", r,
		[]mgl64.Vec3{
			{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
			{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
			{0, -s, -t}, {0, -s, t}, {0, s, -t}, {0, s, t},
			{-s, -t, 0}, {-s, t, 0}, {s, -t, 0}, {s, t, 0},
			{-t, 0, -s}, {t, 0, -s}, {-t, 0, s}, {t, 0, s},
		},
		[]int{
			3, 11, 7, 3, 7, 15, 3, 15, 13,
			7, 19, 17, 7, 17, 6, 7, 6, 15,
			17, 4, 8, 17, 8, 10, 17, 10, 6,
			8, 0, 16, 8, 16, 2, 8, 2, 10,
			0, 12, 1, 0, 1, 18, 0, 18, 16,
			6, 10, 2, 6, 2, 13, 6, 13, 15,
			2, 16, 18, 2, 18, 3, 2, 3, 13,
			18, 1, 9, 18, 9, 11, 18, 11, 3,
			4, 14, 12, 4, 12, 0, 4, 0, 8,
			11, 9, 5, 11, 5, 19, 11, 19, 7,
			19, 5, 14, 19, 14, 4, 19, 4, 17,
			1, 12, 14, 1, 14, 5, 1, 5, 9,
		},
	)
}

// Icosahedron returns a regular icosahedron inscribed in a sphere of radius r.
func Icosahedron(r float64) *Geometry {
	t := (1 + math.Sqrt(5)) / 2
	return polyhedron("icosahedron", r,
		[]mgl64.Vec3{
			{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
			{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
			{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
		},
		[]int{
			0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
			1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
			3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
			4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
		},
	)
}

// UVSphere returns a latitude/longitude sphere of radius r.
func UVSphere(r float64, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	var verts []mgl64.Vec3
	grid := make([][]int, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		row := make([]int, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi
			theta := v * math.Pi
			verts = append(verts, mgl64.Vec3{
				-r * math.Cos(phi) * math.Sin(theta),
				r * math.Cos(theta),
				r * math.Sin(phi) * math.Sin(theta),
			})
			row[ix] = len(verts) - 1
		}
		grid[iy] = row
	}
	var faces [][3]int
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				faces = append(faces, [3]int{a, b, d})
			}
			if iy != heightSegments-1 {
				faces = append(faces, [3]int{b, c, d})
			}
		}
	}
	return newGeometry("sphere", verts, faces)
}
