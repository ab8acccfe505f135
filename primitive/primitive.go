// Package primitive constructs simple triangle meshes: quads, boxes and
// tessellated planes. The constructors produce counter-clockwise winding
// seen from the outside, so the face normals of every primitive point
// outward and RecalculateNormals reproduces the stored normals.
package primitive

import (
	"github.com/TimGroeneboom/trimesh"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Builds a quad from four corner positions in counter-clockwise order, as
// two triangles sharing the a-c diagonal.
func Quad(a, b, c, d vec3.T) *trimesh.TriMesh {
	mesh := new(trimesh.TriMesh)
	mesh.AppendVertices([]vec3.T{a, b, c, d})
	mesh.AppendTriangle(0, 1, 2)
	mesh.AppendTriangle(0, 2, 3)
	return mesh
}

// Builds a quad with one RGB color per corner.
func ColoredQuad(corners, colors [4]vec3.T) *trimesh.TriMesh {
	mesh := Quad(corners[0], corners[1], corners[2], corners[3])
	mesh.AppendColorsRgb(colors[:])
	return mesh
}

// Builds an axis-aligned box of the given edge lengths, centered on the
// origin. Corner vertices are duplicated per face so each face keeps its
// own flat normal and texture coordinates: 24 vertices, 12 triangles.
//
// **params**
// + edge length along each axis
//
// **returns**
// + the box mesh, with normals and texture coordinates populated
func Box(size vec3.T) *trimesh.TriMesh {
	mesh := new(trimesh.TriMesh)

	half := size
	half.Scale(0.5)

	for axis := 0; axis < 3; axis++ {
		for _, sign := range [2]float64{1, -1} {
			uAxis, vAxis := (axis+1)%3, (axis+2)%3

			var normal vec3.T
			normal[axis] = sign

			base := uint32(mesh.NumVertices())
			for _, uv := range [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
				var p vec3.T
				p[axis] = sign * half[axis]
				p[uAxis] = uv[0] * half[uAxis]
				p[vAxis] = uv[1] * half[vAxis]

				mesh.AppendVertex(p)
				mesh.AppendNormal(normal)
				mesh.AppendTexCoord(vec2.T{(uv[0] + 1) / 2, (uv[1] + 1) / 2})
			}

			// corner order is counter-clockwise seen along +normal;
			// mirror it for the negative face
			if sign > 0 {
				mesh.AppendTriangle(base, base+1, base+2)
				mesh.AppendTriangle(base, base+2, base+3)
			} else {
				mesh.AppendTriangle(base, base+3, base+2)
				mesh.AppendTriangle(base, base+2, base+1)
			}
		}
	}

	return mesh
}

// Builds a grid-tessellated plane in the XZ plane, centered on the origin,
// with +Y normals. Division counts below 1 are clamped to 1.
//
// **params**
// + extent along the X axis
// + extent along the Z axis
// + number of divisions along each axis
//
// **returns**
// + the plane mesh, with normals and texture coordinates populated
func Plane(width, depth float64, divsX, divsZ int) *trimesh.TriMesh {
	if divsX < 1 {
		divsX = 1
	}
	if divsZ < 1 {
		divsZ = 1
	}

	spanX := width / float64(divsX)
	spanZ := depth / float64(divsZ)

	mesh := new(trimesh.TriMesh)
	for i := 0; i <= divsX; i++ {
		for j := 0; j <= divsZ; j++ {
			x := float64(i)*spanX - width/2
			z := float64(j)*spanZ - depth/2

			mesh.AppendVertex(vec3.T{x, 0, z})
			mesh.AppendNormal(vec3.T{0, 1, 0})
			mesh.AppendTexCoord(vec2.T{float64(i) / float64(divsX), float64(j) / float64(divsZ)})
		}
	}

	for i := 0; i < divsX; i++ {
		for j := 0; j < divsZ; j++ {
			a := uint32(i*(divsZ+1) + j)
			b := a + 1
			c := a + uint32(divsZ) + 1
			d := c + 1

			mesh.AppendTriangle(a, b, d)
			mesh.AppendTriangle(a, d, c)
		}
	}

	return mesh
}
