package main

import (
	"fmt"
	"os"

	"github.com/modelkit/geom/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geom",
	Short: "A CLI tool for geometric queries on point sets and meshes",
	Long: `geom is a command-line tool for computational geometry queries.
It triangulates planar point sets, slices meshes by horizontal planes,
and measures areas, perimeters, and edge statistics.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
