package geom3

// Box3 is an axis-aligned box.
type Box3 struct {
	Min Point
	Max Point
}

// NewBox3FromPoints returns the box with the extents of p0 and p1, ensuring
// that its size is non-negative.
func NewBox3FromPoints(p0, p1 Point) Box3 {
	return Box3{Min: p0, Max: p1}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that Min is
// less than or equal to Max on every axis.
func (b Box3) Abs() Box3 {
	return Box3{
		Min: Point{
			X: min(b.Min.X, b.Max.X),
			Y: min(b.Min.Y, b.Max.Y),
			Z: min(b.Min.Z, b.Max.Z),
		},
		Max: Point{
			X: max(b.Min.X, b.Max.X),
			Y: max(b.Min.Y, b.Max.Y),
			Z: max(b.Min.Z, b.Max.Z),
		},
	}
}

// Size returns the extent of the box along each axis, defined as Max − Min.
// Components may be negative.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Box3) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether pt lies inside b or on its boundary. A box built
// from points contains all of them, even when it is flat along an axis.
func (b Box3) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if both sizes are non-negative.
func (b Box3) Union(o Box3) Box3 {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// UnionPoint computes the union with one point.
//
// This method includes the faces of zero-volume boxes. Thus, a succession of
// UnionPoint operations on a series of points yields their enclosing box.
func (b Box3) UnionPoint(pt Point) Box3 {
	return Box3{
		Min: Point{
			X: min(b.Min.X, pt.X),
			Y: min(b.Min.Y, pt.Y),
			Z: min(b.Min.Z, pt.Z),
		},
		Max: Point{
			X: max(b.Max.X, pt.X),
			Y: max(b.Max.Y, pt.Y),
			Z: max(b.Max.Z, pt.Z),
		},
	}
}

func (b Box3) Translate(v Vec3) Box3 {
	return Box3{
		Min: b.Min.Translate(v),
		Max: b.Max.Translate(v),
	}
}

func (b Box3) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b Box3) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}
