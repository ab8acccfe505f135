package trimesh

import (
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// TriMesh is the 3D mesh: the shared core over vec3 positions plus a normal
// sequence. Normals are optional like every other attribute; HasNormals
// reports presence and RecalculateNormals synthesizes them from triangle
// geometry.
//
// Example, a colored quad from two triangles:
//
//	var mesh trimesh.TriMesh
//	mesh.AppendVertex(vec3.T{0, 0, 0})
//	mesh.AppendColorRgb(vec3.T{1, 0, 0})
//	mesh.AppendVertex(vec3.T{1, 0, 0})
//	mesh.AppendColorRgb(vec3.T{0, 1, 0})
//	mesh.AppendVertex(vec3.T{1, 1, 0})
//	mesh.AppendColorRgb(vec3.T{0, 0, 1})
//	mesh.AppendVertex(vec3.T{0, 1, 0})
//	mesh.AppendColorRgb(vec3.T{1, 1, 1})
//	mesh.AppendTriangle(0, 1, 2)
//	mesh.AppendTriangle(0, 2, 3)
type TriMesh struct {
	Mesh[vec3.T]

	normals []vec3.T
}

// Appends a single normal. Normals and vertices are associated by index.
func (this *TriMesh) AppendNormal(n vec3.T) {
	this.normals = append(this.normals, n)
}

func (this *TriMesh) AppendNormals(ns []vec3.T) {
	this.normals = append(this.normals, ns...)
}

func (this *TriMesh) HasNormals() bool {
	return len(this.normals) > 0
}

// Normals returns the normal sequence as a read-only view.
func (this *TriMesh) Normals() []vec3.T {
	return this.normals
}

// Empties every sequence, including normals.
func (this *TriMesh) Clear() {
	this.Mesh.Clear()
	this.normals = nil
}

// Validate extends the core checks with the normal sequence.
func (this *TriMesh) Validate() error {
	if err := attribLength("normal", len(this.normals), this.NumVertices()); err != nil {
		return err
	}
	return this.Mesh.Validate()
}

// TriMesh2d is the 2D mesh: the shared core over vec2 positions. It has no
// normal sequence; a face normal is not well defined in-plane.
type TriMesh2d struct {
	Mesh[vec2.T]
}
