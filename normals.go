package trimesh

import "github.com/ungerik/go3d/float64/vec3"

// Computes a triangle's face normal from its corner positions, in index
// order. The result is the raw cross product of the two edge vectors: its
// direction follows the triangle's winding (counter-clockwise winding seen
// from the normal's side) and its magnitude is twice the triangle's area,
// so summing face normals weights them by area. A degenerate triangle
// yields the zero vector.
//
// **params**
// + the three corner positions, in index order
//
// **returns**
// + the non-normalized face normal
func FaceNormal(a, b, c *vec3.T) vec3.T {
	e1 := vec3.Sub(b, a)
	e2 := vec3.Sub(c, a)
	return vec3.Cross(&e1, &e2)
}

// Replaces the normal sequence with one normal per vertex derived from
// triangle geometry: each triangle's face normal is accumulated into its
// three corner slots, then every accumulator is normalized to unit length.
// Sharp features are smoothed; faces contribute in proportion to their area.
//
// A vertex referenced by no triangle, or whose accumulated contributions
// cancel out (degenerate or opposing triangles), keeps the zero vector as
// an undefined normal rather than producing NaN components.
//
// The mesh must validate: any existing structural error (attribute length
// mismatch, dangling indices, out-of-range index) is returned unchanged and
// the normal sequence is left untouched.
func (this *TriMesh) RecalculateNormals() error {
	if err := this.Validate(); err != nil {
		return err
	}

	normals := make([]vec3.T, len(this.positions))
	for i := 0; i+2 < len(this.indices); i += 3 {
		i0, i1, i2 := this.indices[i], this.indices[i+1], this.indices[i+2]
		n := FaceNormal(&this.positions[i0], &this.positions[i1], &this.positions[i2])

		normals[i0].Add(&n)
		normals[i1].Add(&n)
		normals[i2].Add(&n)
	}

	for i := range normals {
		normals[i].Normalize()
	}

	this.normals = normals
	return nil
}
