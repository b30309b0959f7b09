// Package geometry implements the Wilkin (1996) thin-shell bow-shock
// shape and the derived surface geometry.
//
//   - [ShockRadius]: closed-form shell radius R(theta)
//   - [StandoffRadius]: R0 = (2/3) Rc, the one authoritative derivation
//   - [SurfaceSample]: triangulated shell for 3D rendering
//   - [InsideShock]: point-in-shell test in the BH rest frame
//   - [ParabolicApprox]: cheap near-apex radius for collision checks
//
// Conventions: the BH sits at the origin and moves along +Z; theta is
// the polar angle from the direction of motion, so the apex is at
// (0, 0, R0) and the wake opens toward -Z.
package geometry
