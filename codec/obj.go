package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TimGroeneboom/trimesh"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// A face corner as written in an OBJ file: indices into the position,
// texture-coordinate and normal sequences, zero-based after parsing, -1
// when the corner omits the slot.
type objCorner struct {
	v, vt, vn int
}

// Reads a mesh from the plain-text OBJ polygon format. Vertex positions
// (`v`), texture coordinates (`vt`), normals (`vn`) and faces (`f`) are
// parsed; comments and unknown keywords are skipped. Faces accept the
// `v`, `v/vt`, `v//vn` and `v/vt/vn` corner forms, negative (relative)
// indices, and polygons with more than three corners, which are fan
// triangulated.
//
// Files whose corners index every sequence uniformly, as EncodeObj writes
// them, keep their vertex order and count exactly. Files with divergent
// index spaces are rebuilt into a unified vertex set, duplicating vertices
// where attribute combinations differ.
//
// **params**
// + the source to read from
//
// **returns**
// + the decoded mesh
// + a format error (wrapping ErrFormat) on malformed input
func DecodeObj(r io.Reader) (*trimesh.TriMesh, error) {
	var (
		positions []vec3.T
		texCoords []vec2.T
		normals   []vec3.T
		corners   []objCorner
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		ident, val := fields[0], fields[1:]
		switch ident {
		case "v":
			p, err := parseFloats3(val)
			if err != nil {
				return nil, objError(lineNum, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseFloats3(val)
			if err != nil {
				return nil, objError(lineNum, err)
			}
			normals = append(normals, n)
		case "vt":
			if len(val) < 2 {
				return nil, objError(lineNum, fmt.Errorf("texture coordinate needs 2 components, got %d", len(val)))
			}
			u, err0 := strconv.ParseFloat(val[0], 64)
			v, err1 := strconv.ParseFloat(val[1], 64)
			if err0 != nil || err1 != nil {
				return nil, objError(lineNum, fmt.Errorf("bad texture coordinate %q", strings.Join(val, " ")))
			}
			texCoords = append(texCoords, vec2.T{u, v})
		case "f":
			if len(val) < 3 {
				return nil, objError(lineNum, fmt.Errorf("face needs at least 3 corners, got %d", len(val)))
			}
			face := make([]objCorner, len(val))
			for i, s := range val {
				corner, err := parseCorner(s, len(positions), len(texCoords), len(normals))
				if err != nil {
					return nil, objError(lineNum, err)
				}
				face[i] = corner
			}
			// fan triangulation for polygons beyond triangles
			for i := 2; i < len(face); i++ {
				corners = append(corners, face[0], face[i-1], face[i])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	// a file without faces has no index spaces to diverge; the corner
	// rebuild would discard every position
	if len(corners) == 0 || unifiedIndices(corners, len(positions), len(texCoords), len(normals)) {
		return buildUnified(positions, texCoords, normals, corners), nil
	}
	return buildDeduped(positions, texCoords, normals, corners), nil
}

func objError(line int, err error) error {
	return fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
}

func parseFloats3(val []string) (vec3.T, error) {
	var out vec3.T
	if len(val) < 3 {
		return out, fmt.Errorf("need 3 components, got %d", len(val))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(val[i], 64)
		if err != nil {
			return out, fmt.Errorf("bad component %q", val[i])
		}
		out[i] = f
	}
	return out, nil
}

// Parses one face corner. OBJ indices are 1-based; negative values count
// back from the end of the respective sequence. Out-of-range references
// are an error: OBJ faces may only reference already-declared elements.
func parseCorner(s string, numPos, numTex, numNorm int) (objCorner, error) {
	corner := objCorner{v: -1, vt: -1, vn: -1}
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return corner, fmt.Errorf("bad face corner %q", s)
	}

	var err error
	if corner.v, err = parseIndex(parts[0], numPos); err != nil {
		return corner, fmt.Errorf("face corner %q: %v", s, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if corner.vt, err = parseIndex(parts[1], numTex); err != nil {
			return corner, fmt.Errorf("face corner %q: %v", s, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if corner.vn, err = parseIndex(parts[2], numNorm); err != nil {
			return corner, fmt.Errorf("face corner %q: %v", s, err)
		}
	}

	return corner, nil
}

func parseIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return -1, fmt.Errorf("bad index %q", s)
	}

	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx += count
	default:
		return -1, fmt.Errorf("index 0 is not valid")
	}

	if idx < 0 || idx >= count {
		return -1, fmt.Errorf("index %s out of range, %d declared", s, count)
	}
	return idx, nil
}

// Reports whether every corner uses the same index for every slot it
// names, and every present attribute sequence is aligned with the
// positions. Such files map 1:1 onto the mesh's parallel sequences.
func unifiedIndices(corners []objCorner, numPos, numTex, numNorm int) bool {
	if numTex != 0 && numTex != numPos {
		return false
	}
	if numNorm != 0 && numNorm != numPos {
		return false
	}

	for _, c := range corners {
		if c.vt >= 0 && c.vt != c.v {
			return false
		}
		if c.vn >= 0 && c.vn != c.v {
			return false
		}
	}
	return true
}

func buildUnified(positions []vec3.T, texCoords []vec2.T, normals []vec3.T, corners []objCorner) *trimesh.TriMesh {
	mesh := new(trimesh.TriMesh)
	mesh.AppendVertices(positions)

	// an attribute sequence that does not align with the positions cannot
	// be attached per vertex; a face-less file may declare one, and it is
	// dropped rather than failing the whole decode
	if len(normals) == len(positions) {
		mesh.AppendNormals(normals)
	}
	if len(texCoords) == len(positions) {
		mesh.AppendTexCoords(texCoords)
	}

	indices := make([]uint32, len(corners))
	for i, c := range corners {
		indices[i] = uint32(c.v)
	}
	mesh.AppendIndices(indices)
	return mesh
}

// Rebuilds a unified vertex set for files whose position, texture and
// normal index spaces diverge: each distinct (v, vt, vn) combination
// becomes one mesh vertex.
func buildDeduped(positions []vec3.T, texCoords []vec2.T, normals []vec3.T, corners []objCorner) *trimesh.TriMesh {
	mesh := new(trimesh.TriMesh)

	hasTex := false
	hasNorm := false
	for _, c := range corners {
		if c.vt >= 0 {
			hasTex = true
		}
		if c.vn >= 0 {
			hasNorm = true
		}
	}

	seen := make(map[objCorner]uint32)
	indices := make([]uint32, 0, len(corners))
	for _, c := range corners {
		idx, ok := seen[c]
		if !ok {
			idx = uint32(mesh.NumVertices())
			seen[c] = idx

			mesh.AppendVertex(positions[c.v])
			if hasTex {
				t := vec2.Zero
				if c.vt >= 0 {
					t = texCoords[c.vt]
				}
				mesh.AppendTexCoord(t)
			}
			if hasNorm {
				n := vec3.Zero
				if c.vn >= 0 {
					n = normals[c.vn]
				}
				mesh.AppendNormal(n)
			}
		}
		indices = append(indices, idx)
	}
	mesh.AppendIndices(indices)

	return mesh
}

// Writes the mesh in the plain-text OBJ polygon format: one `v` line per
// position, `vt`/`vn` lines when the attribute is populated, and one
// unified 1-based `f` record per logical triangle. RGB and RGBA colors
// have no OBJ representation and are not written; use the binary format
// for a lossless round trip.
//
// The mesh must validate first; a structural error is returned unchanged.
func EncodeObj(w io.Writer, mesh *trimesh.TriMesh) error {
	if err := mesh.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, p := range mesh.Positions() {
		fmt.Fprintf(bw, "v %v %v %v\n", p[0], p[1], p[2])
	}
	for _, t := range mesh.TexCoords() {
		fmt.Fprintf(bw, "vt %v %v\n", t[0], t[1])
	}
	for _, n := range mesh.Normals() {
		fmt.Fprintf(bw, "vn %v %v %v\n", n[0], n[1], n[2])
	}

	hasTex, hasNorm := mesh.HasTexCoords(), mesh.HasNormals()
	indices := mesh.Indices()
	for i := 0; i+2 < len(indices); i += 3 {
		fmt.Fprint(bw, "f")
		for _, idx := range indices[i : i+3] {
			fmt.Fprintf(bw, " %s", objCornerRef(idx+1, hasTex, hasNorm))
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

func objCornerRef(idx uint32, hasTex, hasNorm bool) string {
	switch {
	case hasTex && hasNorm:
		return fmt.Sprintf("%d/%d/%d", idx, idx, idx)
	case hasTex:
		return fmt.Sprintf("%d/%d", idx, idx)
	case hasNorm:
		return fmt.Sprintf("%d//%d", idx, idx)
	}
	return strconv.FormatUint(uint64(idx), 10)
}
