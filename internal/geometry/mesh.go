package geometry

import "math"

// surfaceThetaMax truncates the parametric surface before the far tail,
// where the Wilkin shell flares toward infinity.
const surfaceThetaMax = 0.85 * math.Pi

// Mesh is a triangulated surface sample: flat position/normal/parametric
// arrays indexed by the triangle list, two triangles per grid cell.
type Mesh struct {
	Positions []Vec3
	Normals   []Vec3
	// UVs holds the (theta, phi) grid coordinates of each vertex,
	// normalized to [0,1] in both directions.
	UVs     [][2]float64
	Indices []int
}

// SurfaceSample builds a triangulated Wilkin shell for a grid of
// theta in (0, surfaceThetaMax] x phi in [0, 2pi). Normals are the radial
// direction approximation (sin t cos p, sin t sin p, -cos t), not the true
// gradient normal of R(theta); the shading difference is accepted and the
// choice is load-bearing for downstream renderers.
func SurfaceSample(r0 float64, nTheta, nPhi int) Mesh {
	if nTheta < 2 {
		nTheta = 2
	}
	if nPhi < 3 {
		nPhi = 3
	}

	m := Mesh{
		Positions: make([]Vec3, 0, (nTheta+1)*nPhi),
		Normals:   make([]Vec3, 0, (nTheta+1)*nPhi),
		UVs:       make([][2]float64, 0, (nTheta+1)*nPhi),
		Indices:   make([]int, 0, nTheta*nPhi*6),
	}

	for i := 0; i <= nTheta; i++ {
		ft := float64(i) / float64(nTheta)
		theta := ft * surfaceThetaMax
		if theta < thetaEps {
			theta = thetaEps
		}
		r := ShockRadius(theta, r0)
		st, ct := math.Sin(theta), math.Cos(theta)

		for j := 0; j < nPhi; j++ {
			fp := float64(j) / float64(nPhi)
			phi := fp * 2.0 * math.Pi
			sp, cp := math.Sin(phi), math.Cos(phi)

			m.Positions = append(m.Positions, Vec3{r * st * cp, r * st * sp, r * ct})
			m.Normals = append(m.Normals, Vec3{st * cp, st * sp, -ct})
			m.UVs = append(m.UVs, [2]float64{ft, fp})
		}
	}

	// Two triangles per cell, wrapping phi at the seam.
	for i := 0; i < nTheta; i++ {
		for j := 0; j < nPhi; j++ {
			a := i*nPhi + j
			b := i*nPhi + (j+1)%nPhi
			c := (i+1)*nPhi + j
			d := (i+1)*nPhi + (j+1)%nPhi
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}

	return m
}
