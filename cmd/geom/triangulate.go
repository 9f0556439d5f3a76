package main

import (
	"fmt"
	"os"

	"github.com/modelkit/geom/pkg/analysis"
	"github.com/modelkit/geom/pkg/geometry"
	"github.com/modelkit/geom/pkg/mesh"
	"github.com/spf13/cobra"
)

var triangulateVerbose bool

var triangulateCmd = &cobra.Command{
	Use:   "triangulate [file]",
	Short: "Delaunay-triangulate a point set",
	Long: `Build a Delaunay triangulation of the points in the given file,
projected onto the XY plane, and print the resulting faces.`,
	Args: cobra.ExactArgs(1),
	Run:  runTriangulate,
}

func init() {
	rootCmd.AddCommand(triangulateCmd)

	triangulateCmd.Flags().BoolVarP(&triangulateVerbose, "verbose", "v", false, "Print vertex coordinates for each face")
}

func runTriangulate(cmd *cobra.Command, args []string) {
	points, err := loadPoints(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading points file: %v\n", err)
		os.Exit(1)
	}

	m := mesh.DelaunayTriangulationXY(points, geometry.DefaultTol())

	fmt.Println("Delaunay Triangulation")
	fmt.Println("======================")
	fmt.Printf("Input points: %d\n", len(points))
	fmt.Printf("Faces: %d\n", len(m.Faces))
	fmt.Printf("Total area: %.6f square units\n\n", m.Area())

	for i, f := range m.Faces {
		fmt.Printf("Face %d: [%d %d %d]\n", i, f[0], f[1], f[2])
		if triangulateVerbose {
			for _, v := range m.FaceVertices(f) {
				fmt.Printf("  %s\n", analysis.FormatVector(v))
			}
		}
	}
}
