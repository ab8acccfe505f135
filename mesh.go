// Package trimesh provides an indexed triangle-mesh container: per-vertex
// attribute sequences (position, normal, color, texture coordinate), a flat
// triangle index sequence, and the derived-data computations built on them
// (axis-aligned bounding boxes, vertex normal synthesis).
//
// A mesh is a single-ownership mutable value. It is built up synchronously
// with Append* calls and consumed with queries and derived-data calls; no
// internal locking exists. Once construction is complete, any number of
// goroutines may read a mesh concurrently, but all mutation (appends, Clear,
// SetTexCoords, RecalculateNormals) must be serialized by the caller.
package trimesh

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/float64/vec4"
)

// Vec is the set of position types a mesh can be instantiated over.
type Vec interface {
	vec2.T | vec3.T
}

// Mesh is the dimension-independent core shared by TriMesh and TriMesh2d:
// parallel attribute sequences indexed by vertex insertion order, plus a flat
// index sequence grouped in triples per triangle.
//
// The container does not enforce attribute alignment at append time; an
// attribute is considered populated when its sequence is non-empty, and
// consumers that need alignment run Validate first.
type Mesh[V Vec] struct {
	positions  []V
	colorsRgb  []vec3.T
	colorsRgba []vec4.T
	texCoords  []vec2.T
	indices    []uint32
}

// Appends a single position.
func (this *Mesh[V]) AppendVertex(p V) {
	this.positions = append(this.positions, p)
}

// Appends many positions at once.
func (this *Mesh[V]) AppendVertices(ps []V) {
	this.positions = append(this.positions, ps...)
}

// Appends a single RGB color. Colors and vertices are associated by index,
// so keep the color count equal to the vertex count before relying on it.
func (this *Mesh[V]) AppendColorRgb(c vec3.T) {
	this.colorsRgb = append(this.colorsRgb, c)
}

func (this *Mesh[V]) AppendColorsRgb(cs []vec3.T) {
	this.colorsRgb = append(this.colorsRgb, cs...)
}

// Appends a single RGBA color.
func (this *Mesh[V]) AppendColorRgba(c vec4.T) {
	this.colorsRgba = append(this.colorsRgba, c)
}

func (this *Mesh[V]) AppendColorsRgba(cs []vec4.T) {
	this.colorsRgba = append(this.colorsRgba, cs...)
}

// Appends a single texture coordinate.
func (this *Mesh[V]) AppendTexCoord(t vec2.T) {
	this.texCoords = append(this.texCoords, t)
}

func (this *Mesh[V]) AppendTexCoords(ts []vec2.T) {
	this.texCoords = append(this.texCoords, ts...)
}

// Replaces the whole texture-coordinate sequence. The input is copied, so
// the caller keeps ownership of its slice.
func (this *Mesh[V]) SetTexCoords(ts []vec2.T) {
	this.texCoords = append([]vec2.T(nil), ts...)
}

// Appends a triangle as three raw index values. Bounds are not checked here;
// indices may reference vertices that have not been appended yet. The first
// dereference (TriangleVertices, Validate, normal or bounds computation over
// indices) reports out-of-range values.
func (this *Mesh[V]) AppendTriangle(i0, i1, i2 uint32) {
	this.indices = append(this.indices, i0, i1, i2)
}

// Appends raw index values. The caller keeps len(idx) a multiple of three
// for the values to carry triangle semantics; Validate reports a dangling
// remainder.
func (this *Mesh[V]) AppendIndices(idx []uint32) {
	this.indices = append(this.indices, idx...)
}

// Empties every sequence, returning the mesh to its initial state.
func (this *Mesh[V]) Clear() {
	this.positions = nil
	this.colorsRgb = nil
	this.colorsRgba = nil
	this.texCoords = nil
	this.indices = nil
}

func (this *Mesh[V]) NumVertices() int {
	return len(this.positions)
}

func (this *Mesh[V]) NumIndices() int {
	return len(this.indices)
}

// Number of whole triangles in the index sequence. Integer division: a
// trailing one or two indices not forming a full triangle are not counted
// here. Validate surfaces such a remainder as an error.
func (this *Mesh[V]) NumTriangles() int {
	return len(this.indices) / 3
}

func (this *Mesh[V]) HasColorsRgb() bool {
	return len(this.colorsRgb) > 0
}

func (this *Mesh[V]) HasColorsRgba() bool {
	return len(this.colorsRgba) > 0
}

func (this *Mesh[V]) HasTexCoords() bool {
	return len(this.texCoords) > 0
}

// Positions returns the position sequence. The returned slice is a view of
// the mesh's internal storage and must not be mutated; all the sequence
// accessors below share this contract.
func (this *Mesh[V]) Positions() []V {
	return this.positions
}

func (this *Mesh[V]) ColorsRgb() []vec3.T {
	return this.colorsRgb
}

func (this *Mesh[V]) ColorsRgba() []vec4.T {
	return this.colorsRgba
}

func (this *Mesh[V]) TexCoords() []vec2.T {
	return this.texCoords
}

func (this *Mesh[V]) Indices() []uint32 {
	return this.indices
}

// Fetches the three positions of logical triangle idx by dereferencing the
// index triple at idx*3..idx*3+2.
//
// **params**
// + index of the triangle
//
// **returns**
// + the three vertex positions, in index order
// + ErrTriangleRange if idx does not name a whole triangle, ErrIndexRange
//   if a referenced index is outside the vertex sequence
func (this *Mesh[V]) TriangleVertices(idx int) (a, b, c V, err error) {
	if idx < 0 || idx >= this.NumTriangles() {
		err = ErrTriangleRange
		return
	}

	numVerts := uint32(len(this.positions))
	i0, i1, i2 := this.indices[idx*3], this.indices[idx*3+1], this.indices[idx*3+2]
	if i0 >= numVerts || i1 >= numVerts || i2 >= numVerts {
		err = ErrIndexRange
		return
	}

	return this.positions[i0], this.positions[i1], this.positions[i2], nil
}

// Checks the structural invariants the append calls do not enforce: every
// populated attribute sequence has one element per vertex, the index count
// is a multiple of three, and every index value references an existing
// vertex. Derived-data computation and mesh serialization run behind this
// check.
func (this *Mesh[V]) Validate() error {
	if err := attribLength("color (RGB)", len(this.colorsRgb), len(this.positions)); err != nil {
		return err
	}
	if err := attribLength("color (RGBA)", len(this.colorsRgba), len(this.positions)); err != nil {
		return err
	}
	if err := attribLength("texture coordinate", len(this.texCoords), len(this.positions)); err != nil {
		return err
	}

	if len(this.indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrDanglingIndices, len(this.indices))
	}

	numVerts := uint32(len(this.positions))
	for i, idx := range this.indices {
		if idx >= numVerts {
			return fmt.Errorf("%w: index %d at position %d, %d vertices", ErrIndexRange, idx, i, numVerts)
		}
	}

	return nil
}
