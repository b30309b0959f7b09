package viz

import (
	"math"
	"strings"

	"github.com/san-kum/bowshock/internal/geometry"
)

// Braille patterns: 2x4 sub-pixels per character cell, unicode offset
// 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type canvas struct {
	width, height int
	grid          [][]rune
}

func newCanvas(w, h int) *canvas {
	c := &canvas{width: w, height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

// set marks a sub-pixel; the canvas is (width*2) x (height*4) sub-pixels.
func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.width || row >= c.height {
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *canvas) String() string {
	var sb strings.Builder
	for _, row := range c.grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// shellProfile draws the meridional cross-section of the Wilkin shell:
// z along the direction of motion (up), both limbs of the shell, and
// the BH marked at the origin.
func shellProfile(r0 float64, w, h int) string {
	c := newCanvas(w, h)
	px, py := w*2, h*4

	// World bounds sized so the apex and the truncated tail both fit.
	zMax := r0 * 1.4
	zMin := -r0 * 4.0
	xMax := r0 * 3.0

	toPx := func(x, z float64) (int, int) {
		sx := int((x + xMax) / (2 * xMax) * float64(px-1))
		sy := int((zMax - z) / (zMax - zMin) * float64(py-1))
		return sx, sy
	}

	const steps = 400
	for i := 0; i <= steps; i++ {
		theta := 0.85 * math.Pi * float64(i) / float64(steps)
		r := geometry.ShockRadius(theta, r0)
		x := r * math.Sin(theta)
		z := r * math.Cos(theta)
		if z < zMin || x > xMax {
			continue
		}
		sx, sy := toPx(x, z)
		c.set(sx, sy)
		sx, sy = toPx(-x, z)
		c.set(sx, sy)
	}

	// BH marker at the origin.
	bx, by := toPx(0, 0)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c.set(bx+dx, by+dy)
		}
	}

	return c.String()
}
