package gosiebsp

import "iter"

// edges walks the closed vertex loop, yielding each vertex with its successor.
// The last vertex is paired with the first.
func edges(vertices []Vector3) iter.Seq2[Vector3, Vector3] {
	return func(yield func(Vector3, Vector3) bool) {
		n := len(vertices)
		for i := 0; i < n; i++ {
			if !yield(vertices[i], vertices[(i+1)%n]) {
				return
			}
		}
	}
}
