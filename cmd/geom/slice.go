package main

import (
	"fmt"
	"os"

	"github.com/modelkit/geom/pkg/analysis"
	"github.com/modelkit/geom/pkg/geometry"
	"github.com/modelkit/geom/pkg/mesh"
	"github.com/spf13/cobra"
)

var sliceElevation float64

var sliceCmd = &cobra.Command{
	Use:   "slice [file]",
	Short: "Slice a triangulated point set by a horizontal plane",
	Long: `Triangulate the given points, slice the mesh at the requested
elevation, and report the resulting cross-section curves.`,
	Args: cobra.ExactArgs(1),
	Run:  runSlice,
}

func init() {
	rootCmd.AddCommand(sliceCmd)

	sliceCmd.Flags().Float64VarP(&sliceElevation, "elevation", "z", 0.0, "Z elevation of the slicing plane")
	sliceCmd.MarkFlagRequired("elevation")
}

func runSlice(cmd *cobra.Command, args []string) {
	points, err := loadPoints(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading points file: %v\n", err)
		os.Exit(1)
	}

	tol := geometry.DefaultTol()
	m := mesh.DelaunayTriangulationXY(points, tol)
	sections := analysis.AnalyzeSections(m, sliceElevation, tol)

	fmt.Println("Plane Slice")
	fmt.Println("===========")
	fmt.Printf("Elevation: %.6f\n", sliceElevation)
	fmt.Printf("Cross-section curves: %d\n\n", len(sections))

	for i, s := range sections {
		state := "open"
		if s.Closed {
			state = "closed"
		}
		fmt.Printf("Curve %d: length %.6f units (%s)\n", i, s.Length, state)
	}
}
