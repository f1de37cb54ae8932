package ndarr

import "math"

// Push forward-fills missing values (NaN) along the axis with the most
// recent finite value, provided that value is at most maxGap positions old.
// Values older than maxGap are not carried. The input is left untouched;
// a filled copy is returned.
//
// Example (maxGap=2):
//
//	[1 NaN NaN NaN 5]  →  [1 1 1 NaN 5]
func Push(x *Array, maxGap int, axis int) (*Array, error) {
	it, err := x.Fibers(axis)
	if err != nil {
		return nil, err
	}
	out := x.Clone()
	ot, _ := out.Fibers(axis)
	buf := make([]float64, it.Len())
	for k := 0; k < it.Count(); k++ {
		it.Gather(k, buf)
		recent := math.NaN()
		age := -1 // position of the most recent finite value, -1 = none
		for j, v := range buf {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				recent, age = v, j

				continue
			}
			// Non-finite slots take the recent value, or NaN once it
			// has aged past maxGap.
			if age >= 0 && j-age <= maxGap {
				buf[j] = recent
			} else {
				buf[j] = math.NaN()
			}
		}
		ot.Scatter(k, buf)
	}

	return out, nil
}
