package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/TimGroeneboom/trimesh"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/float64/vec4"
)

var byteorder = binary.LittleEndian

var datMagic = [4]byte{'T', 'M', 'S', 'H'}

const datVersion = 1

// Upper bound on any count a .dat header may declare. Keeps a corrupt or
// hostile header from driving allocation instead of failing as a format
// error.
const maxDatCount = 1 << 26

// Arrays are read this many elements at a time, so a header declaring far
// more data than the file holds fails on the first missing chunk instead
// of allocating the declared size up front.
const datChunkElems = 4096

// The fixed-size block that opens every .dat file, written little-endian:
// magic, version, then one count per sequence. The raw component arrays
// follow in field order, positions through indices.
type datHeader struct {
	Magic         [4]byte
	Version       uint32
	NumVertices   uint32
	NumNormals    uint32
	NumColorsRgb  uint32
	NumColorsRgba uint32
	NumTexCoords  uint32
	NumIndices    uint32
}

// Reads a mesh from the compact binary format written by EncodeDat. The
// header's declared counts are checked against each other (attribute counts
// must be zero or equal to the vertex count, the index count a multiple of
// three) and every index value against the vertex count, so a lying or
// truncated file is reported as a format error rather than producing a
// structurally broken mesh.
//
// **params**
// + the source to read from
//
// **returns**
// + the decoded mesh
// + a format error (wrapping ErrFormat) on malformed input
func DecodeDat(r io.Reader) (*trimesh.TriMesh, error) {
	var hdr datHeader
	if err := binary.Read(r, byteorder, &hdr); err != nil {
		return nil, fmt.Errorf("%w: truncated header: %v", ErrFormat, err)
	}

	if hdr.Magic != datMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, hdr.Magic[:])
	}
	if hdr.Version != datVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, hdr.Version)
	}
	if err := checkDatCounts(&hdr); err != nil {
		return nil, err
	}

	mesh := new(trimesh.TriMesh)

	positions, err := readDatArray[vec3.T](r, hdr.NumVertices, "positions")
	if err != nil {
		return nil, err
	}
	mesh.AppendVertices(positions)

	if hdr.NumNormals > 0 {
		normals, err := readDatArray[vec3.T](r, hdr.NumNormals, "normals")
		if err != nil {
			return nil, err
		}
		mesh.AppendNormals(normals)
	}
	if hdr.NumColorsRgb > 0 {
		colors, err := readDatArray[vec3.T](r, hdr.NumColorsRgb, "RGB colors")
		if err != nil {
			return nil, err
		}
		mesh.AppendColorsRgb(colors)
	}
	if hdr.NumColorsRgba > 0 {
		colors, err := readDatArray[vec4.T](r, hdr.NumColorsRgba, "RGBA colors")
		if err != nil {
			return nil, err
		}
		mesh.AppendColorsRgba(colors)
	}
	if hdr.NumTexCoords > 0 {
		texCoords, err := readDatArray[vec2.T](r, hdr.NumTexCoords, "texture coordinates")
		if err != nil {
			return nil, err
		}
		mesh.AppendTexCoords(texCoords)
	}

	indices, err := readDatArray[uint32](r, hdr.NumIndices, "indices")
	if err != nil {
		return nil, err
	}
	for i, idx := range indices {
		if idx >= hdr.NumVertices {
			return nil, fmt.Errorf("%w: index %d at position %d, %d vertices declared",
				ErrFormat, idx, i, hdr.NumVertices)
		}
	}
	mesh.AppendIndices(indices)

	return mesh, nil
}

func checkDatCounts(hdr *datHeader) error {
	counts := [...]struct {
		name string
		n    uint32
	}{
		{"vertex", hdr.NumVertices},
		{"normal", hdr.NumNormals},
		{"RGB color", hdr.NumColorsRgb},
		{"RGBA color", hdr.NumColorsRgba},
		{"texture coordinate", hdr.NumTexCoords},
		{"index", hdr.NumIndices},
	}
	for _, c := range counts {
		if c.n > maxDatCount {
			return fmt.Errorf("%w: implausible %s count %d", ErrFormat, c.name, c.n)
		}
	}

	for _, c := range counts[1:5] {
		if c.n != 0 && c.n != hdr.NumVertices {
			return fmt.Errorf("%w: %d %ss for %d vertices", ErrFormat, c.n, c.name, hdr.NumVertices)
		}
	}
	if hdr.NumIndices%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of three", ErrFormat, hdr.NumIndices)
	}

	return nil
}

func readDatArray[E any](r io.Reader, count uint32, name string) ([]E, error) {
	first := count
	if first > datChunkElems {
		first = datChunkElems
	}

	out := make([]E, 0, first)
	for count > 0 {
		n := count
		if n > datChunkElems {
			n = datChunkElems
		}

		chunk := make([]E, n)
		if err := binary.Read(r, byteorder, chunk); err != nil {
			return nil, fmt.Errorf("%w: truncated %s: %v", ErrFormat, name, err)
		}
		out = append(out, chunk...)
		count -= n
	}

	return out, nil
}

// Writes the mesh in the compact binary format: the header followed by the
// raw little-endian component arrays. Every populated sequence is written
// with full float64 precision, so DecodeDat reproduces it bit for bit.
//
// The mesh must validate first; a structural error is returned unchanged.
func EncodeDat(w io.Writer, mesh *trimesh.TriMesh) error {
	if err := mesh.Validate(); err != nil {
		return err
	}

	hdr := datHeader{
		Magic:         datMagic,
		Version:       datVersion,
		NumVertices:   uint32(mesh.NumVertices()),
		NumNormals:    uint32(len(mesh.Normals())),
		NumColorsRgb:  uint32(len(mesh.ColorsRgb())),
		NumColorsRgba: uint32(len(mesh.ColorsRgba())),
		NumTexCoords:  uint32(len(mesh.TexCoords())),
		NumIndices:    uint32(mesh.NumIndices()),
	}
	if err := binary.Write(w, byteorder, &hdr); err != nil {
		return err
	}

	for _, data := range []any{
		mesh.Positions(),
		mesh.Normals(),
		mesh.ColorsRgb(),
		mesh.ColorsRgba(),
		mesh.TexCoords(),
		mesh.Indices(),
	} {
		if err := binary.Write(w, byteorder, data); err != nil {
			return err
		}
	}

	return nil
}
