package trimesh

import (
	"errors"
	"testing"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/float64/vec4"
)

func quadMesh() *TriMesh {
	mesh := new(TriMesh)
	mesh.AppendVertices([]vec3.T{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	})
	mesh.AppendTriangle(0, 1, 2)
	mesh.AppendTriangle(0, 2, 3)
	return mesh
}

func TestEmptyMesh(t *testing.T) {
	var mesh TriMesh

	if n := mesh.NumVertices(); n != 0 {
		t.Errorf("NumVertices = %d, want 0", n)
	}
	if n := mesh.NumIndices(); n != 0 {
		t.Errorf("NumIndices = %d, want 0", n)
	}
	if n := mesh.NumTriangles(); n != 0 {
		t.Errorf("NumTriangles = %d, want 0", n)
	}
	if mesh.HasNormals() || mesh.HasColorsRgb() || mesh.HasColorsRgba() || mesh.HasTexCoords() {
		t.Error("empty mesh reports a populated attribute")
	}
	if err := mesh.Validate(); err != nil {
		t.Errorf("Validate on empty mesh: %v", err)
	}
}

func TestAppendVerticesOnly(t *testing.T) {
	var mesh TriMesh
	for i := 0; i < 7; i++ {
		mesh.AppendVertex(vec3.T{float64(i), 0, 0})
	}

	if n := mesh.NumVertices(); n != 7 {
		t.Fatalf("NumVertices = %d, want 7", n)
	}
	if mesh.HasNormals() || mesh.HasColorsRgb() || mesh.HasColorsRgba() || mesh.HasTexCoords() {
		t.Error("mesh with only positions reports a populated attribute")
	}
}

func TestAppendTriangle(t *testing.T) {
	mesh := quadMesh()

	if n := mesh.NumTriangles(); n != 2 {
		t.Fatalf("NumTriangles = %d, want 2", n)
	}

	a, b, c, err := mesh.TriangleVertices(0)
	if err != nil {
		t.Fatalf("TriangleVertices(0): %v", err)
	}
	want := [3]vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	if a != want[0] || b != want[1] || c != want[2] {
		t.Errorf("TriangleVertices(0) = %v %v %v, want %v", a, b, c, want)
	}
}

func TestTriangleVerticesRange(t *testing.T) {
	mesh := quadMesh()

	if _, _, _, err := mesh.TriangleVertices(2); !errors.Is(err, ErrTriangleRange) {
		t.Errorf("TriangleVertices(2) error = %v, want ErrTriangleRange", err)
	}
	if _, _, _, err := mesh.TriangleVertices(-1); !errors.Is(err, ErrTriangleRange) {
		t.Errorf("TriangleVertices(-1) error = %v, want ErrTriangleRange", err)
	}

	mesh.AppendTriangle(0, 1, 99)
	if _, _, _, err := mesh.TriangleVertices(2); !errors.Is(err, ErrIndexRange) {
		t.Errorf("dangling reference error = %v, want ErrIndexRange", err)
	}
}

func TestNumTrianglesTruncates(t *testing.T) {
	var mesh TriMesh
	mesh.AppendVertices([]vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	mesh.AppendIndices([]uint32{0, 1, 2, 0})

	if n := mesh.NumTriangles(); n != 1 {
		t.Errorf("NumTriangles = %d, want 1", n)
	}
	if err := mesh.Validate(); !errors.Is(err, ErrDanglingIndices) {
		t.Errorf("Validate error = %v, want ErrDanglingIndices", err)
	}
}

func TestClear(t *testing.T) {
	mesh := quadMesh()
	mesh.AppendNormals([]vec3.T{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}})
	mesh.AppendColorRgb(vec3.T{1, 0, 0})
	mesh.AppendColorRgba(vec4.T{1, 0, 0, 1})
	mesh.AppendTexCoord(vec2.T{0.5, 0.5})

	mesh.Clear()

	if mesh.NumVertices() != 0 || mesh.NumIndices() != 0 {
		t.Error("Clear left vertices or indices behind")
	}
	if mesh.HasNormals() || mesh.HasColorsRgb() || mesh.HasColorsRgba() || mesh.HasTexCoords() {
		t.Error("Clear left an attribute populated")
	}
	if err := mesh.Validate(); err != nil {
		t.Errorf("Validate after Clear: %v", err)
	}
}

func TestValidateAttribLength(t *testing.T) {
	mesh := quadMesh()
	mesh.AppendColorRgb(vec3.T{1, 0, 0}) // one color, four vertices

	if err := mesh.Validate(); !errors.Is(err, ErrAttribLength) {
		t.Errorf("Validate error = %v, want ErrAttribLength", err)
	}
}

func TestValidateNormalLength(t *testing.T) {
	mesh := quadMesh()
	mesh.AppendNormal(vec3.T{0, 0, 1})

	if err := mesh.Validate(); !errors.Is(err, ErrAttribLength) {
		t.Errorf("Validate error = %v, want ErrAttribLength", err)
	}
}

func TestValidateIndexRange(t *testing.T) {
	mesh := quadMesh()
	mesh.AppendTriangle(1, 2, 4)

	if err := mesh.Validate(); !errors.Is(err, ErrIndexRange) {
		t.Errorf("Validate error = %v, want ErrIndexRange", err)
	}
}

func TestSetTexCoordsCopies(t *testing.T) {
	var mesh TriMesh
	mesh.AppendVertex(vec3.T{0, 0, 0})

	ts := []vec2.T{{0.25, 0.75}}
	mesh.SetTexCoords(ts)
	ts[0] = vec2.T{9, 9}

	if got := mesh.TexCoords()[0]; got != (vec2.T{0.25, 0.75}) {
		t.Errorf("SetTexCoords aliased its input: got %v", got)
	}
}

func TestTriMesh2d(t *testing.T) {
	var mesh TriMesh2d
	mesh.AppendVertices([]vec2.T{{0, 0}, {2, 0}, {2, 1}})
	mesh.AppendTriangle(0, 1, 2)

	if n := mesh.NumTriangles(); n != 1 {
		t.Fatalf("NumTriangles = %d, want 1", n)
	}
	a, b, c, err := mesh.TriangleVertices(0)
	if err != nil {
		t.Fatalf("TriangleVertices(0): %v", err)
	}
	if a != (vec2.T{0, 0}) || b != (vec2.T{2, 0}) || c != (vec2.T{2, 1}) {
		t.Errorf("TriangleVertices(0) = %v %v %v", a, b, c)
	}
}
