package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/modelkit/geom/pkg/geometry"
	"github.com/modelkit/geom/pkg/mesh"
)

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	Start  geometry.Vector
	End    geometry.Vector
	Length float64
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector
	SurfaceArea   float64
	VertexCount   int
	FaceCount     int
	TriCount      int
	QuadCount     int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeMesh performs comprehensive analysis on a mesh
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: m.BoundingBox(),
		SurfaceArea: m.Area(),
		VertexCount: len(m.Vertices),
		FaceCount:   len(m.Faces),
		AllEdges:    make([]EdgeInfo, 0),
	}

	result.Dimensions = result.BoundingBox.Size()

	for _, f := range m.Faces {
		if f.IsQuad() {
			result.QuadCount++
		} else if f.IsTri() {
			result.TriCount++
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, e := range m.UniqueEdges() {
		start := m.Vertices[e.A]
		end := m.Vertices[e.B]
		length := start.DistanceTo(end)

		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Start:  start,
			End:    end,
			Length: length,
		})

		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindNearestVertex finds the mesh vertex nearest to a given point
func FindNearestVertex(m *mesh.Mesh, point geometry.Vector) (geometry.Vector, float64) {
	nearest := geometry.Unset()
	minDistance := math.MaxFloat64

	for _, v := range m.Vertices {
		distance := point.DistanceTo(v)
		if distance < minDistance {
			minDistance = distance
			nearest = v
		}
	}

	return nearest, minDistance
}

// SectionInfo describes one cross-section curve at a slicing elevation
type SectionInfo struct {
	Elevation float64
	Length    float64
	Closed    bool
}

// AnalyzeSections slices the mesh at the given elevation and measures
// every resulting cross-section curve
func AnalyzeSections(m *mesh.Mesh, z float64, tol geometry.Tol) []SectionInfo {
	var sections []SectionInfo
	for _, c := range m.IntersectPlaneCurves(z, tol) {
		sections = append(sections, SectionInfo{
			Elevation: z,
			Length:    c.Length(),
			Closed:    c.Closed(tol),
		})
	}
	return sections
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
