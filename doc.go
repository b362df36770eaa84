// Package geom3 provides vectors, points, 4x4 homogeneous transforms, and a
// simple polygonal [Shape] for 3D graphics applications.
//
// All values are float32, matching what graphics APIs consume.
//
// # Vectors and points
//
// [Vec3] describes a direction and [Point] a position. The two are kept apart
// on purpose: a point can be translated by a vector, and subtracting two points
// yields a vector, but points can't be added to each other.
//
// # Transforms
//
// [Mat4] is a 4x4 matrix acting on points as column vectors. [Mat4.Mul]
// composes transforms so that the right operand takes effect first, and
// [Mat4.Then] offers the same in reading order. Named transforms are created
// with [Scale], [RotateX], [RotateY], [RotateZ], [Translate], and
// [Perspective]. Rotation angles are in radians; only Perspective's field of
// view is in degrees.
//
// [Mat4.Apply] performs the perspective divide when the resulting w is
// nonzero, so the same function serves affine and projective transforms.
//
// # Shapes
//
// [Shape] owns a list of vertices, their centroid, and a number of index
// groups, for example an outline and a triangulation. Transforms are applied to
// shapes in place with [Shape.Transform], by copy with [Shape.Transformed], or
// about the shape's center with [Shape.RotateAboutCenter] and
// [Shape.ScaleAboutCenter]. [Shape.Vertices] and [Shape.Indices] export the
// data as flat slices, ready to be copied into vertex and index buffers.
//
// [RegularPolygon] and [Disc] construct common shapes.
package geom3
