package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roomforge/geo/floorplan"
)

// geometryOptions is the optional YAML options file accepted by every
// subcommand. Zero values fall back to package defaults, so a partial file
// only overrides what it names.
type geometryOptions struct {
	Epsilon      float64 `yaml:"epsilon"`
	KeyPrecision int     `yaml:"key_precision"`

	Mesh struct {
		AdvancedTriangulation *bool `yaml:"advanced_triangulation"`
		HandleHoles           *bool `yaml:"handle_holes"`
		GenerateUVs           *bool `yaml:"generate_uvs"`
		OptimizeGeometry      *bool `yaml:"optimize_geometry"`
	} `yaml:"mesh"`
}

var optionsFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&optionsFile, "options", "", "YAML options file (tolerances, mesh toggles)")
}

func loadOptions() (floorplan.TraceOptions, floorplan.MeshOptions, error) {
	traceOpts := floorplan.DefaultTraceOptions()
	meshOpts := floorplan.DefaultMeshOptions()
	if optionsFile == "" {
		return traceOpts, meshOpts, nil
	}

	data, err := os.ReadFile(optionsFile)
	if err != nil {
		return traceOpts, meshOpts, fmt.Errorf("reading options file: %w", err)
	}
	var opts geometryOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return traceOpts, meshOpts, fmt.Errorf("parsing options file: %w", err)
	}

	if opts.Epsilon > 0 {
		traceOpts.Epsilon = opts.Epsilon
	}
	if opts.KeyPrecision > 0 {
		traceOpts.KeyPrecision = opts.KeyPrecision
	}
	if v := opts.Mesh.AdvancedTriangulation; v != nil {
		meshOpts.UseAdvancedTriangulation = *v
	}
	if v := opts.Mesh.HandleHoles; v != nil {
		meshOpts.HandleHoles = *v
	}
	if v := opts.Mesh.GenerateUVs; v != nil {
		meshOpts.GenerateUVs = *v
	}
	if v := opts.Mesh.OptimizeGeometry; v != nil {
		meshOpts.OptimizeGeometry = *v
	}
	return traceOpts, meshOpts, nil
}

func readWalls(path string) ([]floorplan.Wall, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return floorplan.DecodeWalls(f)
}
