package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roomforge/geo/floorplan"
)

var (
	meshOutput string
	meshFormat string
)

var meshCmd = &cobra.Command{
	Use:   "mesh {walls.json}",
	Short: "Build a floor mesh from a wall list",
	Long: `Runs the full geometry pipeline (trace, nesting, triangulation) and
writes the resulting floor mesh as JSON buffers or a Wavefront OBJ file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		walls, err := readWalls(args[0])
		if err != nil {
			return err
		}
		traceOpts, meshOpts, err := loadOptions()
		if err != nil {
			return err
		}

		rooms := floorplan.TraceRoomsWithOptions(walls, traceOpts)
		groups := floorplan.ResolveNesting(rooms)
		mesh := floorplan.BuildFloorMesh(groups, meshOpts)

		out := os.Stdout
		if meshOutput != "" {
			f, err := os.Create(meshOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		switch meshFormat {
		case "json":
			return writeMeshJSON(out, mesh)
		case "obj":
			return writeMeshOBJ(out, mesh)
		default:
			return fmt.Errorf("unknown mesh format %q (want json or obj)", meshFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(meshCmd)
	meshCmd.Flags().StringVarP(&meshOutput, "output", "o", "", "Output file (default stdout)")
	meshCmd.Flags().StringVarP(&meshFormat, "format", "f", "json", "Output format (json/obj)")
}

func writeMeshJSON(w io.Writer, mesh *floorplan.FloorMesh) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mesh)
}

// writeMeshOBJ emits the mesh as a Wavefront OBJ: positions, texture
// coordinates, the constant up normal, and one face per triangle.
func writeMeshOBJ(w io.Writer, mesh *floorplan.FloorMesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "o floor")
	for i := 0; i+2 < len(mesh.Positions); i += 3 {
		fmt.Fprintf(bw, "v %g %g %g\n", mesh.Positions[i], mesh.Positions[i+1], mesh.Positions[i+2])
	}
	for i := 0; i+1 < len(mesh.UVs); i += 2 {
		fmt.Fprintf(bw, "vt %g %g\n", mesh.UVs[i], mesh.UVs[i+1])
	}
	hasUV := len(mesh.UVs) > 0
	hasNormal := len(mesh.Normals) > 0
	if hasNormal {
		fmt.Fprintln(bw, "vn 0 1 0")
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		switch {
		case hasUV && hasNormal:
			fmt.Fprintf(bw, "f %d/%d/1 %d/%d/1 %d/%d/1\n", a, a, b, b, c, c)
		case hasUV:
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
		case hasNormal:
			fmt.Fprintf(bw, "f %d//1 %d//1 %d//1\n", a, b, c)
		default:
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}
	return bw.Flush()
}
