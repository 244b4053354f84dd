package ports

// RandomSource is the subset of *math/rand/v2.Rand used by the generator.
type RandomSource interface {
	Uint32() uint32
	IntN(n int) int
	Float64() float64
}
