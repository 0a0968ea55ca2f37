package material

import (
	"math"
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates smooth lattice noise from a table of random floats indexed
// through per-axis permutations.
type Perlin struct {
	randomFloats []float64
	permX        []int
	permY        []int
	permZ        []int
}

// NewPerlin creates a Perlin noise generator using the given random source
func NewPerlin(random *rand.Rand) *Perlin {
	randomFloats := make([]float64, perlinPointCount)
	for i := range randomFloats {
		randomFloats[i] = random.Float64()
	}

	return &Perlin{
		randomFloats: randomFloats,
		permX:        perlinPermutation(random),
		permY:        perlinPermutation(random),
		permZ:        perlinPermutation(random),
	}
}

func perlinPermutation(random *rand.Rand) []int {
	perm := make([]int, perlinPointCount)
	for i := range perm {
		perm[i] = i
	}
	random.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Noise returns smooth noise in [0,1] at the given point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)
	// Hermitian smoothing
	u = u * u * (3 - 2*u)
	v = v * v * (3 - 2*v)
	w = w * w * (3 - 2*w)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randomFloats[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

// Turbulence sums successive octaves of noise with halving weight
func (p *Perlin) Turbulence(point core.Vec3) float64 {
	const depth = 7

	accum := 0.0
	weight := 1.0
	temp := point
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

func trilinearInterp(c [2][2][2]float64, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) * c[i][j][k]
			}
		}
	}
	return accum
}

// Noise is a marble-like procedural texture driven by Perlin turbulence.
type Noise struct {
	perlin *Perlin
	Scale  float64
}

// NewNoise creates a noise texture with the given frequency scale
func NewNoise(scale float64, random *rand.Rand) *Noise {
	return &Noise{perlin: NewPerlin(random), Scale: scale}
}

// ColorAt implements the Texture interface
func (n *Noise) ColorAt(u, v float64, point core.Vec3) core.Vec3 {
	value := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.perlin.Turbulence(point)))
	return core.NewVec3(1, 1, 1).Multiply(value)
}
