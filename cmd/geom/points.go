package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/modelkit/geom/pkg/geometry"
)

// loadPoints reads a whitespace-separated point file. Each line holds
// "x y z" (z optional, defaults to 0); blank lines and lines starting
// with '#' are skipped.
func loadPoints(filename string) ([]geometry.Vector, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var points []geometry.Vector
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("line %d: expected 2 or 3 coordinates, got %d", lineNo, len(fields))
		}
		coords := make([]float64, 3)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid coordinate %q", lineNo, field)
			}
			coords[i] = v
		}
		points = append(points, geometry.NewVector(coords[0], coords[1], coords[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
