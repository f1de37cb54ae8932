package ndarr

import "math/rand"

// Shuffle permutes the hyperplanes of x along the given axis in place,
// using the caller-provided random source. Only positions along the axis
// move; the layout within each hyperplane is preserved. This is the one
// in-place operation in the package.
func Shuffle(x *Array, axis int, rng *rand.Rand) error {
	it, err := x.Fibers(axis)
	if err != nil {
		return err
	}
	n := it.Len()
	// Fisher-Yates over axis positions, swapping whole hyperplanes.
	for j := n - 1; j > 0; j-- {
		l := rng.Intn(j + 1)
		if l == j {
			continue
		}
		for k := 0; k < it.Count(); k++ {
			vj, vl := it.AtPos(k, j), it.AtPos(k, l)
			it.SetAt(k, j, vl)
			it.SetAt(k, l, vj)
		}
	}

	return nil
}
