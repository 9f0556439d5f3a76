package geometry

import "math"

// BoundingBox is an axis-aligned box accumulated from points.
type BoundingBox struct {
	Min Vector
	Max Vector
}

// NewBoundingBox returns an empty box ready to be extended.
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: NewVector(inf, inf, inf),
		Max: NewVector(-inf, -inf, -inf),
	}
}

// BoundingBoxOf returns the box around a set of points.
func BoundingBoxOf(points []Vector) BoundingBox {
	bbox := NewBoundingBox()
	for _, p := range points {
		bbox.Extend(p)
	}
	return bbox
}

// Extend grows the box to include p.
func (b *BoundingBox) Extend(p Vector) {
	b.Min = NewVector(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z))
	b.Max = NewVector(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z))
}

// IsEmpty reports whether the box has never been extended.
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the extents of the box along each axis.
func (b BoundingBox) Size() Vector {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Vector {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Diagonal returns the length of the box diagonal.
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Magnitude()
}

// Volume returns the enclosed volume.
func (b BoundingBox) Volume() float64 {
	s := b.Size()
	return s.X * s.Y * s.Z
}
