// Package codec reads and writes trimesh.TriMesh values in two on-disk
// formats: the plain-text OBJ polygon format and a compact binary format
// (extension .dat). OBJ is interchange-friendly but drops vertex colors;
// the binary format round-trips every populated attribute sequence bit
// for bit.
//
// Parse failures wrap ErrFormat, keeping them distinct from the structural
// errors of package trimesh.
package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/TimGroeneboom/trimesh"
)

var (
	// ErrFormat reports malformed input encountered while decoding.
	ErrFormat = errors.New("codec: malformed mesh file")

	// ErrUnknownExtension reports a file path whose extension names no
	// supported format.
	ErrUnknownExtension = errors.New("codec: unknown mesh file extension")
)

// Decodes a mesh from r in the format named by ext (".obj" or ".dat",
// case-insensitive).
func Decode(r io.Reader, ext string) (*trimesh.TriMesh, error) {
	switch strings.ToLower(ext) {
	case ".obj":
		return DecodeObj(r)
	case ".dat":
		return DecodeDat(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
}

// Encodes mesh to w in the format named by ext.
func Encode(w io.Writer, mesh *trimesh.TriMesh, ext string) error {
	switch strings.ToLower(ext) {
	case ".obj":
		return EncodeObj(w, mesh)
	case ".dat":
		return EncodeDat(w, mesh)
	}
	return fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
}

// Reads the file at path into mesh, selecting the format by extension.
// The file is decoded into a fresh mesh first and assigned into mesh only
// on success, so a failed read leaves the destination untouched.
func ReadFile(path string, mesh *trimesh.TriMesh) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoded, err := Decode(file, filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	*mesh = *decoded
	return nil
}

// Writes mesh to the file at path, selecting the format by extension.
func WriteFile(path string, mesh *trimesh.TriMesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(file, mesh, filepath.Ext(path)); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return file.Close()
}
