package trimesh

import (
	"errors"
	"math"
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func TestFaceNormalWinding(t *testing.T) {
	a := vec3.T{0, 0, 0}
	b := vec3.T{1, 0, 0}
	c := vec3.T{0, 1, 0}

	n := FaceNormal(&a, &b, &c)
	if !vecApproxEqual(&n, &vec3.T{0, 0, 1}) {
		t.Errorf("counter-clockwise face normal = %v, want +Z", n)
	}

	n = FaceNormal(&a, &c, &b)
	if !vecApproxEqual(&n, &vec3.T{0, 0, -1}) {
		t.Errorf("clockwise face normal = %v, want -Z", n)
	}
}

func TestRecalculateNormalsSingleTriangle(t *testing.T) {
	var mesh TriMesh
	mesh.AppendVertices([]vec3.T{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}})
	mesh.AppendTriangle(0, 1, 2)

	if err := mesh.RecalculateNormals(); err != nil {
		t.Fatalf("RecalculateNormals: %v", err)
	}

	normals := mesh.Normals()
	if len(normals) != mesh.NumVertices() {
		t.Fatalf("len(normals) = %d, want %d", len(normals), mesh.NumVertices())
	}
	want := vec3.T{0, 0, 1}
	for i := range normals {
		if !vecApproxEqual(&normals[i], &want) {
			t.Errorf("normal[%d] = %v, want %v", i, normals[i], want)
		}
	}
}

func TestRecalculateNormalsCoplanar(t *testing.T) {
	// Two coplanar triangles of different area with consistent winding;
	// every vertex normal is the plane normal regardless of weighting.
	var mesh TriMesh
	mesh.AppendVertices([]vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {-3, 4, 0}})
	mesh.AppendTriangle(0, 1, 2)
	mesh.AppendTriangle(0, 2, 3)

	if err := mesh.RecalculateNormals(); err != nil {
		t.Fatalf("RecalculateNormals: %v", err)
	}

	want := vec3.T{0, 0, 1}
	for i, n := range mesh.Normals() {
		if !vecApproxEqual(&n, &want) {
			t.Errorf("normal[%d] = %v, want %v", i, n, want)
		}
	}
}

func TestRecalculateNormalsSharedEdge(t *testing.T) {
	// A tent: two equal-area faces sharing the edge v0-v1, tilted out of
	// plane. The shared vertices average the two face normals; the apexes
	// keep their single face's direction.
	var mesh TriMesh
	mesh.AppendVertices([]vec3.T{
		{0, 0, 0},
		{2, 0, 0},
		{1, 1, 1},
		{1, -1, 1},
	})
	mesh.AppendTriangle(0, 1, 2)
	mesh.AppendTriangle(1, 0, 3)

	if err := mesh.RecalculateNormals(); err != nil {
		t.Fatalf("RecalculateNormals: %v", err)
	}

	normals := mesh.Normals()
	inv := 1 / math.Sqrt2
	wantShared := vec3.T{0, 0, 1}
	wantApex0 := vec3.T{0, -inv, inv}
	wantApex1 := vec3.T{0, inv, inv}

	if !vecApproxEqual(&normals[0], &wantShared) || !vecApproxEqual(&normals[1], &wantShared) {
		t.Errorf("shared-edge normals = %v, %v, want %v", normals[0], normals[1], wantShared)
	}
	if !vecApproxEqual(&normals[2], &wantApex0) {
		t.Errorf("apex normal = %v, want %v", normals[2], wantApex0)
	}
	if !vecApproxEqual(&normals[3], &wantApex1) {
		t.Errorf("apex normal = %v, want %v", normals[3], wantApex1)
	}
}

func TestRecalculateNormalsDegenerate(t *testing.T) {
	// Collinear triangle plus an unreferenced vertex: all normals stay the
	// zero vector, no NaN components.
	var mesh TriMesh
	mesh.AppendVertices([]vec3.T{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {5, 5, 5}})
	mesh.AppendTriangle(0, 1, 2)

	if err := mesh.RecalculateNormals(); err != nil {
		t.Fatalf("RecalculateNormals: %v", err)
	}

	for i, n := range mesh.Normals() {
		if n != vec3.Zero {
			t.Errorf("normal[%d] = %v, want zero vector", i, n)
		}
	}
}

func TestRecalculateNormalsOverwrites(t *testing.T) {
	var mesh TriMesh
	mesh.AppendVertices([]vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	mesh.AppendNormals([]vec3.T{{1, 0, 0}, {1, 0, 0}, {1, 0, 0}})
	mesh.AppendTriangle(0, 1, 2)

	if err := mesh.RecalculateNormals(); err != nil {
		t.Fatalf("RecalculateNormals: %v", err)
	}

	want := vec3.T{0, 0, 1}
	for i, n := range mesh.Normals() {
		if !vecApproxEqual(&n, &want) {
			t.Errorf("normal[%d] = %v, want %v", i, n, want)
		}
	}
}

func TestRecalculateNormalsInvalidMesh(t *testing.T) {
	var mesh TriMesh
	mesh.AppendVertices([]vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	mesh.AppendTriangle(0, 1, 7)

	if err := mesh.RecalculateNormals(); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("RecalculateNormals error = %v, want ErrIndexRange", err)
	}
	if mesh.HasNormals() {
		t.Error("failed recalculation left normals behind")
	}
}
