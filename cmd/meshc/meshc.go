// meshc converts mesh files between the supported formats, selected by
// file extension (.obj, .dat):
//
//	meshc -output cube.dat cube.obj
//
// With -manifest, meshc instead runs a batch of conversion jobs listed in
// a YAML file:
//
//	jobs:
//	  - input: assets/cube.obj
//	    output: build/cube.dat
//	    recalculate_normals: true
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/TimGroeneboom/trimesh"
	"github.com/TimGroeneboom/trimesh/codec"
	"gopkg.in/yaml.v3"
)

type Meshc struct {
	outFilename      string
	manifestFilename string
	optionNormals    bool
	optionVerbose    bool
}

var meshc Meshc

func init() {
	flag.StringVar(&meshc.outFilename, "output", "a.dat", "output file")
	flag.StringVar(&meshc.manifestFilename, "manifest", "", "run the conversion jobs listed in this YAML file")
	flag.BoolVar(&meshc.optionNormals, "normals", false, "recalculate vertex normals before writing")
	flag.BoolVar(&meshc.optionVerbose, "verbose", false, "display additional information")
}

// Job is one conversion in a manifest file.
type Job struct {
	Input              string `yaml:"input"`
	Output             string `yaml:"output"`
	RecalculateNormals bool   `yaml:"recalculate_normals,omitempty"`
}

type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

func main() {
	flag.Parse()

	if meshc.manifestFilename != "" {
		runManifest(meshc.manifestFilename)
		return
	}

	if flag.NArg() != 1 {
		log.Fatal("usage: meshc [-output file] [-normals] input, or meshc -manifest jobs.yaml")
	}
	convert(Job{
		Input:              flag.Arg(0),
		Output:             meshc.outFilename,
		RecalculateNormals: meshc.optionNormals,
	})
}

func runManifest(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		log.Fatal(err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		log.Fatalf("%s: %v", filename, err)
	}
	if len(manifest.Jobs) == 0 {
		log.Fatalf("%s: no jobs", filename)
	}

	for _, job := range manifest.Jobs {
		convert(job)
	}
}

func convert(job Job) {
	var mesh trimesh.TriMesh
	if err := codec.ReadFile(job.Input, &mesh); err != nil {
		log.Fatal(err)
	}

	if job.RecalculateNormals {
		if err := mesh.RecalculateNormals(); err != nil {
			log.Fatalf("%s: %v", job.Input, err)
		}
	}

	if err := codec.WriteFile(job.Output, &mesh); err != nil {
		log.Fatal(err)
	}

	if meshc.optionVerbose {
		fmt.Printf("%s -> %s: %d vertices, %d triangles\n",
			job.Input, job.Output, mesh.NumVertices(), mesh.NumTriangles())
	}
}
