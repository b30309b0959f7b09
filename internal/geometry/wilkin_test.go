package geometry_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bowshock/internal/geometry"
)

var _ = Describe("ShockRadius", func() {
	const r0 = 1.2

	It("returns the standoff radius at the apex", func() {
		Expect(geometry.ShockRadius(0, r0)).To(Equal(r0))
		Expect(geometry.ShockRadius(1e-9, r0)).To(Equal(r0))
	})

	It("approaches the standoff radius from above near the apex", func() {
		Expect(geometry.ShockRadius(0.01, r0)).To(BeNumerically("~", r0, 1e-3))
	})

	It("is positive and increasing away from the apex", func() {
		prev := r0
		for theta := 0.1; theta < math.Pi; theta += 0.1 {
			r := geometry.ShockRadius(theta, r0)
			Expect(r).To(BeNumerically(">", 0))
			Expect(r).To(BeNumerically(">=", prev))
			prev = r
		}
	})

	It("stays finite at the far-tail clamp", func() {
		r := geometry.ShockRadius(math.Pi, r0)
		Expect(math.IsNaN(r)).To(BeFalse())
		Expect(math.IsInf(r, 0)).To(BeFalse())
		Expect(r).To(BeNumerically(">", 0))
	})

	It("scales linearly with the standoff radius", func() {
		Expect(geometry.ShockRadius(1.0, 2*r0)).To(BeNumerically("~", 2*geometry.ShockRadius(1.0, r0), 1e-12))
	})
})

var _ = Describe("StandoffRadius", func() {
	It("is exactly two thirds of the curvature radius", func() {
		Expect(geometry.StandoffRadius(1.8)).To(Equal(1.2))
		Expect(geometry.StandoffRadius(3.0)).To(Equal(2.0))
	})
})

var _ = Describe("ParabolicApprox", func() {
	It("matches sqrt(2 Rc dr) and ignores the sign of dr", func() {
		Expect(geometry.ParabolicApprox(0.5, 1.8)).To(BeNumerically("~", math.Sqrt(1.8), 1e-12))
		Expect(geometry.ParabolicApprox(-0.5, 1.8)).To(Equal(geometry.ParabolicApprox(0.5, 1.8)))
	})

	It("tracks the exact shape near the apex", func() {
		// Near theta=0 the Wilkin shell is parabolic with curvature
		// radius Rc = (3/2) R0.
		const r0, rc = 1.2, 1.8
		theta := 0.05
		r := geometry.ShockRadius(theta, r0)
		x := r * math.Sin(theta)
		dr := r0 - r*math.Cos(theta)
		Expect(geometry.ParabolicApprox(dr, rc)).To(BeNumerically("~", x, x*0.1))
	})
})

var _ = Describe("InsideShock", func() {
	const r0 = 1.2

	It("treats the origin as inside", func() {
		Expect(geometry.InsideShock(geometry.Vec3{}, r0)).To(BeTrue())
	})

	It("keeps points just behind the apex inside", func() {
		Expect(geometry.InsideShock(geometry.Vec3{Z: 0.9 * r0}, r0)).To(BeTrue())
	})

	It("excludes points beyond the apex", func() {
		Expect(geometry.InsideShock(geometry.Vec3{Z: 1.1 * r0}, r0)).To(BeFalse())
	})

	It("excludes points far off to the side near the nose", func() {
		Expect(geometry.InsideShock(geometry.Vec3{X: 5 * r0, Z: 0.5 * r0}, r0)).To(BeFalse())
	})

	It("keeps points deep in the wake inside the flaring shell", func() {
		Expect(geometry.InsideShock(geometry.Vec3{X: 0.5 * r0, Z: -3 * r0}, r0)).To(BeTrue())
	})
})

var _ = Describe("SurfaceSample", func() {
	const r0 = 1.2

	It("produces the expected grid and triangle counts", func() {
		m := geometry.SurfaceSample(r0, 8, 6)
		Expect(m.Positions).To(HaveLen(9 * 6))
		Expect(m.Normals).To(HaveLen(len(m.Positions)))
		Expect(m.UVs).To(HaveLen(len(m.Positions)))
		Expect(m.Indices).To(HaveLen(8 * 6 * 6))
	})

	It("keeps every triangle index in range", func() {
		m := geometry.SurfaceSample(r0, 8, 6)
		for _, idx := range m.Indices {
			Expect(idx).To(BeNumerically(">=", 0))
			Expect(idx).To(BeNumerically("<", len(m.Positions)))
		}
	})

	It("produces unit-length radial normals", func() {
		m := geometry.SurfaceSample(r0, 8, 6)
		for _, n := range m.Normals {
			Expect(n.Norm()).To(BeNumerically("~", 1.0, 1e-9))
		}
	})

	It("places the first ring at the apex radius", func() {
		m := geometry.SurfaceSample(r0, 16, 8)
		Expect(m.Positions[0].Norm()).To(BeNumerically("~", r0, 1e-3))
	})

	It("keeps parametric coordinates in [0,1]", func() {
		m := geometry.SurfaceSample(r0, 8, 6)
		for _, uv := range m.UVs {
			Expect(uv[0]).To(And(BeNumerically(">=", 0.0), BeNumerically("<=", 1.0)))
			Expect(uv[1]).To(And(BeNumerically(">=", 0.0), BeNumerically("<", 1.0)))
		}
	})
})
