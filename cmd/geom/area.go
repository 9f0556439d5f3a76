package main

import (
	"fmt"
	"os"

	"github.com/modelkit/geom/pkg/analysis"
	"github.com/modelkit/geom/pkg/curve"
	"github.com/modelkit/geom/pkg/geometry"
	"github.com/spf13/cobra"
)

var areaCmd = &cobra.Command{
	Use:   "area [file]",
	Short: "Measure the area enclosed by a polygon",
	Long: `Treat the points in the given file as the vertices of a closed
polygon and report its enclosed area and centroid.`,
	Args: cobra.ExactArgs(1),
	Run:  runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)
}

func runArea(cmd *cobra.Command, args []string) {
	points, err := loadPoints(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading points file: %v\n", err)
		os.Exit(1)
	}
	if len(points) < 3 {
		fmt.Fprintln(os.Stderr, "Error: a polygon needs at least 3 points")
		os.Exit(1)
	}

	tol := geometry.DefaultTol()
	boundary := curve.NewPolyLine(points...)
	area, centroid, ok := curve.EnclosedArea(boundary, nil, nil, tol)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: polygon encloses no area")
		os.Exit(1)
	}

	fmt.Println("Enclosed Area")
	fmt.Println("=============")
	fmt.Printf("Vertices: %d\n", len(points))
	fmt.Printf("Perimeter: %.6f units\n", perimeter(points))
	fmt.Printf("Area: %.6f square units\n", area)
	fmt.Printf("Centroid: %s\n", analysis.FormatVector(centroid))
}

func perimeter(points []geometry.Vector) float64 {
	total := 0.0
	for i := range points {
		total += points[i].DistanceTo(points[(i+1)%len(points)])
	}
	return total
}
