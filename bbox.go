package trimesh

import (
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// BoundingBox is a running component-wise min/max over 3D points. The zero
// value is the empty box, ready to use; the empty state is explicit rather
// than a min > max sentinel.
type BoundingBox struct {
	Min, Max vec3.T

	initialized bool
}

// Expands the bounding box to contain a point, initializing it to the
// degenerate box [point, point] if it was empty.
//
// **params**
// + the point
//
// **returns**
// + this BoundingBox for chaining
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		copy(this.Min[:], point[:])
		copy(this.Max[:], point[:])
		this.initialized = true

		return this
	}

	for i, val := range point[:] {
		if val > this.Max[i] {
			this.Max[i] = val
		}
		if val < this.Min[i] {
			this.Min[i] = val
		}
	}

	return this
}

// Adds an array of points to the bounding box
//
// **params**
// + an array of points
//
// **returns**
// + this BoundingBox for chaining
func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

// Clears the bounding box back to the empty state. Call Add or AddRange to
// initialize again.
func (this *BoundingBox) Clear() *BoundingBox {
	this.initialized = false
	return this
}

// Reports whether the box contains no points at all. A box holding a single
// point is not empty; it is the degenerate box [point, point].
func (this *BoundingBox) Empty() bool {
	return !this.initialized
}

// Center of the box, or the zero vector for the empty box.
func (this *BoundingBox) Center() vec3.T {
	if !this.initialized {
		return vec3.Zero
	}

	center := vec3.Add(&this.Min, &this.Max)
	return *center.Scale(0.5)
}

// Size of the box along each axis, or the zero vector for the empty box.
func (this *BoundingBox) Size() vec3.T {
	if !this.initialized {
		return vec3.Zero
	}

	return vec3.Sub(&this.Max, &this.Min)
}

// Box converts to the collaborator box value type. The empty box converts
// to the zero Box.
func (this *BoundingBox) Box() vec3.Box {
	return vec3.Box{Min: this.Min, Max: this.Max}
}

// BoundingRect is the 2D counterpart of BoundingBox.
type BoundingRect struct {
	Min, Max vec2.T

	initialized bool
}

// Expands the bounding rectangle to contain a point.
//
// **params**
// + the point
//
// **returns**
// + this BoundingRect for chaining
func (this *BoundingRect) Add(point *vec2.T) *BoundingRect {
	if !this.initialized {
		copy(this.Min[:], point[:])
		copy(this.Max[:], point[:])
		this.initialized = true

		return this
	}

	for i, val := range point[:] {
		if val > this.Max[i] {
			this.Max[i] = val
		}
		if val < this.Min[i] {
			this.Min[i] = val
		}
	}

	return this
}

// Adds an array of points to the bounding rectangle
//
// **params**
// + an array of points
//
// **returns**
// + this BoundingRect for chaining
func (this *BoundingRect) AddRange(points []vec2.T) *BoundingRect {
	for i := range points {
		this.Add(&points[i])
	}

	return this
}

// Clears the bounding rectangle back to the empty state.
func (this *BoundingRect) Clear() *BoundingRect {
	this.initialized = false
	return this
}

func (this *BoundingRect) Empty() bool {
	return !this.initialized
}

// Center of the rectangle, or the zero vector for the empty rectangle.
func (this *BoundingRect) Center() vec2.T {
	if !this.initialized {
		return vec2.Zero
	}

	center := vec2.Add(&this.Min, &this.Max)
	return *center.Scale(0.5)
}

// Size of the rectangle along each axis, or the zero vector for the empty
// rectangle.
func (this *BoundingRect) Size() vec2.T {
	if !this.initialized {
		return vec2.Zero
	}

	return vec2.Sub(&this.Max, &this.Min)
}

// Rect converts to the collaborator rectangle value type.
func (this *BoundingRect) Rect() vec2.Rect {
	return vec2.Rect{Min: this.Min, Max: this.Max}
}

// Computes the minimal axis-aligned box enclosing all vertex positions.
// For a mesh with no vertices the result is the empty box (Empty reports
// true, Center and Size are zero).
func (this *TriMesh) CalcBoundingBox() BoundingBox {
	bb := BoundingBox{}
	bb.AddRange(this.positions)
	return bb
}

// Computes the axis-aligned box of the transformed point cloud: every
// position is run through mat before accumulating. This is not the same box
// as transforming CalcBoundingBox's result, which in general is larger.
//
// **params**
// + the affine transform to apply to each position
//
// **returns**
// + the bounding box of the transformed positions
func (this *TriMesh) CalcBoundingBoxTransformed(mat *mat4.T) BoundingBox {
	bb := BoundingBox{}
	for i := range this.positions {
		pt := mat.MulVec3(&this.positions[i])
		bb.Add(&pt)
	}

	return bb
}

// Computes the minimal axis-aligned rectangle enclosing all vertex
// positions, or the empty rectangle for a mesh with no vertices.
func (this *TriMesh2d) CalcBoundingBox() BoundingRect {
	br := BoundingRect{}
	br.AddRange(this.positions)
	return br
}
