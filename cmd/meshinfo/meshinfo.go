// meshinfo reads a mesh file and prints a summary of its contents.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/TimGroeneboom/trimesh"
	"github.com/TimGroeneboom/trimesh/codec"
)

type MeshInfo struct {
	meshFilename  string
	optionVerbose bool
}

var meshInfo MeshInfo

func init() {
	flag.BoolVar(&meshInfo.optionVerbose, "verbose", false, "also dump the triangle list")
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: meshinfo [-verbose] file")
	}
	meshInfo.meshFilename = flag.Arg(0)

	var mesh trimesh.TriMesh
	if err := codec.ReadFile(meshInfo.meshFilename, &mesh); err != nil {
		log.Fatal(err)
	}

	fmt.Println("File: " + meshInfo.meshFilename)
	fmt.Printf("Vertex count   : %d\n", mesh.NumVertices())
	fmt.Printf("Index count    : %d (%d triangles)\n", mesh.NumIndices(), mesh.NumTriangles())
	fmt.Printf("Normals        : %v\n", mesh.HasNormals())
	fmt.Printf("Colors (RGB)   : %v\n", mesh.HasColorsRgb())
	fmt.Printf("Colors (RGBA)  : %v\n", mesh.HasColorsRgba())
	fmt.Printf("Tex coords     : %v\n", mesh.HasTexCoords())

	if err := mesh.Validate(); err != nil {
		fmt.Printf("Structure      : %v\n", err)
	} else {
		fmt.Println("Structure      : ok")
	}

	bb := mesh.CalcBoundingBox()
	if bb.Empty() {
		fmt.Println("Bounding box   : empty")
	} else {
		fmt.Printf("Bounding box   : min %v max %v\n", bb.Min, bb.Max)
		fmt.Printf("                 center %v size %v\n", bb.Center(), bb.Size())
	}

	if meshInfo.optionVerbose {
		for i := 0; i < mesh.NumTriangles(); i++ {
			a, b, c, err := mesh.TriangleVertices(i)
			if err != nil {
				fmt.Printf("  triangle %d: %v\n", i, err)
				continue
			}
			fmt.Printf("  triangle %d: %v %v %v\n", i, a, b, c)
		}
	}
}
