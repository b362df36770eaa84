package geom3

import "iter"

// Transform lazily applies m to every element of seq.
func Transform[T interface{ Transform(Mat4) T }](seq iter.Seq[T], m Mat4) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(m)) {
				break
			}
		}
	}
}
