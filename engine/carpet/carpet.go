// package carpet generates the cube layout of a 3D Menger-style carpet.
// Each recursion level splits a square region into a 3x3 grid, raises a cube
// out of the plane at the center cell, and recurses into the eight remaining
// cells. The generator is pure: the same inputs always produce the same
// placements in the same order.
package carpet

import "iter"

// Placement describes a single cube emitted by the generator.
// X and Y locate the cube center on the carpet plane, Z lifts it so the cube
// rests on the plane, and Size is the cube edge length in world units.
type Placement struct {
	X, Y, Z float32
	Size    float32
}

// Generate returns a lazy iterator over every cube placement for a carpet
// region. Placements are yielded in a deterministic cell order (x-major over
// the 3x3 grid, recursing depth-first), so two iterations with identical
// arguments produce identical sequences.
//
// An iterations value below 1 is treated as 1.
//
// Parameters:
//   - ox, oy: origin (minimum corner) of the region on the carpet plane
//   - size: edge length of the square region
//   - iterations: recursion depth; depth 1 emits a single center cube
//
// Returns:
//   - iter.Seq[Placement]: lazy sequence of cube placements
func Generate(ox, oy, size float32, iterations int) iter.Seq[Placement] {
	if iterations < 1 {
		iterations = 1
	}
	return func(yield func(Placement) bool) {
		emit(ox, oy, size, iterations, yield)
	}
}

// Count returns the number of placements Generate yields for a recursion
// depth: sum of 8^k for k in [0, iterations). An iterations value below 1 is
// treated as 1.
//
// Parameters:
//   - iterations: recursion depth
//
// Returns:
//   - int: total cube count for that depth
func Count(iterations int) int {
	if iterations < 1 {
		iterations = 1
	}
	total := 0
	pow := 1
	for k := 0; k < iterations; k++ {
		total += pow
		pow *= 8
	}
	return total
}

// emit walks one recursion level, yielding the center cube and descending
// into the eight surrounding cells. Returns false once a consumer stops the
// iteration so callers can unwind without visiting further cells.
func emit(ox, oy, size float32, iterations int, yield func(Placement) bool) bool {
	newSize := size / 3.0
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if x == 1 && y == 1 {
				p := Placement{
					X:    ox + newSize + newSize/2.0,
					Y:    oy + newSize + newSize/2.0,
					Z:    newSize / 2.0,
					Size: newSize,
				}
				if !yield(p) {
					return false
				}
			} else if iterations > 1 {
				if !emit(ox+float32(x)*newSize, oy+float32(y)*newSize, newSize, iterations-1, yield) {
					return false
				}
			}
		}
	}
	return true
}
