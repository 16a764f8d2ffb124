package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roomforge/geo/floorplan"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics {walls.json}",
	Short: "Report room shape metrics and validation errors",
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

		m := floorplan.CalculateRoomMetricsWithOptions(walls, traceOpts)
		fmt.Printf("walls:               %d\n", m.WallCount)
		fmt.Printf("perimeter:           %.3f m\n", m.Perimeter)
		fmt.Printf("average wall length: %.3f m\n", m.AverageWallLength)
		if m.IsValid {
			fmt.Printf("area:                %.3f m²\n", m.Area)
			fmt.Printf("usable area:         %.3f m²\n", m.UsableArea)
			fmt.Printf("rectangularity:      %.3f\n", m.Rectangularity)
			fmt.Printf("convexity:           %.3f\n", m.Convexity)
			fmt.Printf("compactness:         %.3f\n", m.Compactness)
			fmt.Printf("wall/floor ratio:    %.3f\n", m.WallToFloorRatio)
			return nil
		}
		fmt.Println("room is not valid:")
		for _, e := range m.ValidationErrors {
			fmt.Printf("  - %s\n", e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
