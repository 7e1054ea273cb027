// Package shapes provides a small set of concrete primitives that implement
// geometry.Primitive. They are used by the command line tools, the tests and
// the benchmarks.
package shapes

// Hits closer to the ray origin than this are discarded so that rays spawned
// from a surface do not report that surface again.
const hitEpsilon = 1e-10

func isZero(v float64) bool {
	return v > -hitEpsilon && v < hitEpsilon
}

// Accept a hit distance if it lies in (0, maxDistance].
func inRange(t, maxDistance float64) bool {
	return t > hitEpsilon && t-maxDistance <= hitEpsilon
}
