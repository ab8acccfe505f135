package trimesh

import (
	"errors"
	"fmt"
)

var (
	// ErrTriangleRange reports a triangle index outside 0..NumTriangles-1.
	ErrTriangleRange = errors.New("trimesh: triangle index out of range")

	// ErrIndexRange reports an index value referencing a vertex position
	// beyond the current vertex count.
	ErrIndexRange = errors.New("trimesh: vertex index out of range")

	// ErrAttribLength reports a populated attribute sequence whose length
	// disagrees with the vertex count.
	ErrAttribLength = errors.New("trimesh: attribute length does not match vertex count")

	// ErrDanglingIndices reports an index sequence whose length is not a
	// multiple of three.
	ErrDanglingIndices = errors.New("trimesh: index count is not a multiple of three")
)

func attribLength(name string, attrLen, numVerts int) error {
	if attrLen != 0 && attrLen != numVerts {
		return fmt.Errorf("%w: %d %s elements, %d vertices", ErrAttribLength, attrLen, name, numVerts)
	}
	return nil
}
