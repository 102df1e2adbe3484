package scene

import (
	gomath "math"
)

// Vertex is the interleaved vertex layout uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
	Radius   float32 // bounding sphere radius around the local origin
}

// NewSphereGeometry builds a UV sphere centered at the origin.
// widthSegments runs around the equator, heightSegments from pole to pole.
// U wraps around the sphere and V goes from 1 at the north pole to 0 at the south.
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	g := &Geometry{
		Vertices: make([]Vertex, 0, (widthSegments+1)*(heightSegments+1)),
		Indices:  make([]uint32, 0, widthSegments*heightSegments*6),
		Radius:   radius,
	}

	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)

		// Center the pole texels on their segment
		uOffset := 0.0
		if iy == 0 {
			uOffset = 0.5 / float64(widthSegments)
		} else if iy == heightSegments {
			uOffset = -0.5 / float64(widthSegments)
		}

		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)

			sinV := gomath.Sin(v * gomath.Pi)
			nx := -gomath.Cos(u*2*gomath.Pi) * sinV
			ny := gomath.Cos(v * gomath.Pi)
			nz := gomath.Sin(u*2*gomath.Pi) * sinV

			row[ix] = uint32(len(g.Vertices))
			g.Vertices = append(g.Vertices, Vertex{
				Position: [3]float32{radius * float32(nx), radius * float32(ny), radius * float32(nz)},
				Normal:   [3]float32{float32(nx), float32(ny), float32(nz)},
				TexCoord: [2]float32{float32(u + uOffset), float32(1 - v)},
			})
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			// Pole rows collapse to a single triangle per segment
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}

	return g
}

// TriangleCount returns the number of triangles in the index list.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}
