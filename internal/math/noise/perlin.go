package noise

import "math"

// gradients3D holds the twelve cube-edge directions; the last four repeat so a
// 4-bit hash indexes the table without a modulo.
var gradients3D = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {-1, 1, 0}, {0, -1, 1}, {0, -1, -1},
}

// Perlin is seeded gradient noise on the integer lattice
type Perlin struct {
	seed int64
}

// NewPerlin creates a Perlin field for the given seed
func NewPerlin(seed int64) *Perlin {
	return &Perlin{seed: seed}
}

// Eval3 generates 3D Perlin noise. The result is zero on lattice points and
// stays within roughly [-1, 1].
func (p *Perlin) Eval3(x, y, z float64) float64 {
	// Get grid points
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	ix, iy, iz := int(x0), int(y0), int(z0)
	seed := int(p.seed)

	// Offsets inside the cell
	fx := x - x0
	fy := y - y0
	fz := z - z0

	// Smooth interpolation factors
	sx := smoothstep(fx)
	sy := smoothstep(fy)
	sz := smoothstep(fz)

	corner := func(dx, dy, dz int) float64 {
		g := gradients3D[hash(ix+dx, iy+dy, iz+dz, seed)&15]
		return dot3D(g[0], g[1], g[2], fx-float64(dx), fy-float64(dy), fz-float64(dz))
	}

	// Interpolate along x
	v00 := lerp(corner(0, 0, 0), corner(1, 0, 0), sx)
	v10 := lerp(corner(0, 1, 0), corner(1, 1, 0), sx)
	v01 := lerp(corner(0, 0, 1), corner(1, 0, 1), sx)
	v11 := lerp(corner(0, 1, 1), corner(1, 1, 1), sx)

	// Interpolate along y, then z
	return lerp(lerp(v00, v10, sy), lerp(v01, v11, sy), sz)
}

// hash combines the coordinates and seed to create a unique hash
func hash(x, y, z, seed int) int {
	h := seed + x*374761393 + y*668265263 + z*1440662683
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

func dot3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	return x1*x2 + y1*y2 + z1*z2
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// smoothstep is Perlin's quintic fade: 6t^5 - 15t^4 + 10t^3
func smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}
