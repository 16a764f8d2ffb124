package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roomforge/geo/floorplan"
)

var traceCmd = &cobra.Command{
	Use:   "trace {walls.json}",
	Short: "Trace closed room boundaries from a wall list",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		walls, err := readWalls(args[0])
		if err != nil {
			return err
		}
		traceOpts, _, err := loadOptions()
		if err != nil {
			return err
		}

		rooms := floorplan.TraceRoomsWithOptions(walls, traceOpts)
		if len(rooms) == 0 {
			fmt.Println("no rooms traced")
			return nil
		}
		relations := floorplan.ComputeRoomNesting(rooms)
		for i, r := range rooms {
			winding := "cw"
			if r.IsCounterClockwise() {
				winding = "ccw"
			}
			var status string
			if r.Valid {
				status = "valid"
			} else if r.Closed {
				status = "closed, self-intersecting"
			} else {
				status = "open"
			}
			fmt.Printf("room %d: %d vertices, area %.3f m², perimeter %.3f m, %s, %s",
				i, len(r.Vertices), r.Area(), r.Perimeter(), winding, status)
			if relations[i].IsHole() {
				fmt.Printf(", hole of room %d", relations[i].ParentID)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
