// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import "github.com/geowkb/geowkb/pkg/geo/geopb"

// pointSequence is the shared payload of LineString and CircularString:
// an ordered sequence of points that must all share the sequence's
// hasZ/hasM.
type pointSequence struct {
	hasZ, hasM bool
	points     []*Point
}

func newPointSequence(hasZ, hasM bool) pointSequence {
	return pointSequence{hasZ: hasZ, hasM: hasM}
}

// AddPoint appends p, enforcing dimension consistency.
func (s *pointSequence) AddPoint(p *Point) error {
	if p.HasZ() != s.hasZ || p.HasM() != s.hasM {
		return dimensionMismatch(s.hasZ, s.hasM, p.HasZ(), p.HasM())
	}
	s.points = append(s.points, p)
	return nil
}

// NumPoints returns the number of points in the sequence.
func (s *pointSequence) NumPoints() int { return len(s.points) }

// PointN returns the i'th point (0-indexed).
func (s *pointSequence) PointN(i int) *Point { return s.points[i] }

func (s *pointSequence) HasZ() bool    { return s.hasZ }
func (s *pointSequence) HasM() bool    { return s.hasM }
func (s *pointSequence) IsEmpty() bool { return len(s.points) == 0 }

func (s *pointSequence) equalPoints(o *pointSequence) bool {
	if len(s.points) != len(o.points) {
		return false
	}
	for i, p := range s.points {
		if !p.Equal(o.points[i]) {
			return false
		}
	}
	return true
}

// LineString is an ordered sequence of points.
type LineString struct{ pointSequence }

var _ Geometry = (*LineString)(nil)

// NewLineString builds an empty LineString with the given dimensionality.
func NewLineString(hasZ, hasM bool) *LineString {
	return &LineString{pointSequence: newPointSequence(hasZ, hasM)}
}

// Shape implements Geometry.
func (l *LineString) Shape() geopb.ShapeType { return geopb.LineString }

// Equal implements Geometry.
func (l *LineString) Equal(other Geometry) bool {
	o, ok := other.(*LineString)
	if !ok || !sameKind(l, o) {
		return false
	}
	return l.equalPoints(&o.pointSequence)
}

// CircularString is an ordered sequence of points interpreted as a chain
// of circular arcs (every three points describe one arc).
type CircularString struct{ pointSequence }

var _ Geometry = (*CircularString)(nil)

// NewCircularString builds an empty CircularString with the given
// dimensionality.
func NewCircularString(hasZ, hasM bool) *CircularString {
	return &CircularString{pointSequence: newPointSequence(hasZ, hasM)}
}

// Shape implements Geometry.
func (c *CircularString) Shape() geopb.ShapeType { return geopb.CircularString }

// Equal implements Geometry.
func (c *CircularString) Equal(other Geometry) bool {
	o, ok := other.(*CircularString)
	if !ok || !sameKind(c, o) {
		return false
	}
	return c.equalPoints(&o.pointSequence)
}
