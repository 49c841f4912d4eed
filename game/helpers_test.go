package game

import "math"

const epsilon = 1e-9

// scriptedRandom returns queued values in order, then lo
type scriptedRandom struct {
	values []int
	calls  [][2]int
}

func newScriptedRandom(values ...int) *scriptedRandom {
	return &scriptedRandom{values: values}
}

func (r *scriptedRandom) IntRange(lo, hi int) int {
	r.calls = append(r.calls, [2]int{lo, hi})
	if len(r.values) == 0 {
		return lo
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
