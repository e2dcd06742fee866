// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import "github.com/geowkb/geowkb/pkg/geo/geopb"

// MultiPoint is an ordered sequence of points, each written and read as
// an independent child record.
type MultiPoint struct {
	hasZ, hasM bool
	points     []*Point
}

var _ Geometry = (*MultiPoint)(nil)

// NewMultiPoint builds an empty MultiPoint with the given dimensionality.
func NewMultiPoint(hasZ, hasM bool) *MultiPoint {
	return &MultiPoint{hasZ: hasZ, hasM: hasM}
}

// AddPoint appends p, enforcing dimension consistency.
func (m *MultiPoint) AddPoint(p *Point) error {
	if p.HasZ() != m.hasZ || p.HasM() != m.hasM {
		return dimensionMismatch(m.hasZ, m.hasM, p.HasZ(), p.HasM())
	}
	m.points = append(m.points, p)
	return nil
}

// NumGeometries returns the number of points.
func (m *MultiPoint) NumGeometries() int { return len(m.points) }

// GeometryN returns the i'th point (0-indexed).
func (m *MultiPoint) GeometryN(i int) *Point { return m.points[i] }

// Shape implements Geometry.
func (m *MultiPoint) Shape() geopb.ShapeType { return geopb.MultiPoint }

// HasZ implements Geometry.
func (m *MultiPoint) HasZ() bool { return m.hasZ }

// HasM implements Geometry.
func (m *MultiPoint) HasM() bool { return m.hasM }

// IsEmpty implements Geometry.
func (m *MultiPoint) IsEmpty() bool { return len(m.points) == 0 }

// Equal implements Geometry.
func (m *MultiPoint) Equal(other Geometry) bool {
	o, ok := other.(*MultiPoint)
	if !ok || !sameKind(m, o) || len(m.points) != len(o.points) {
		return false
	}
	for i, p := range m.points {
		if !p.Equal(o.points[i]) {
			return false
		}
	}
	return true
}

// MultiLineString is an ordered sequence of LineStrings, each written and
// read as an independent child record.
type MultiLineString struct {
	hasZ, hasM bool
	lines      []*LineString
}

var _ Geometry = (*MultiLineString)(nil)

// NewMultiLineString builds an empty MultiLineString with the given
// dimensionality.
func NewMultiLineString(hasZ, hasM bool) *MultiLineString {
	return &MultiLineString{hasZ: hasZ, hasM: hasM}
}

// AddLineString appends l, enforcing dimension consistency.
func (m *MultiLineString) AddLineString(l *LineString) error {
	if l.HasZ() != m.hasZ || l.HasM() != m.hasM {
		return dimensionMismatch(m.hasZ, m.hasM, l.HasZ(), l.HasM())
	}
	m.lines = append(m.lines, l)
	return nil
}

// NumGeometries returns the number of lines.
func (m *MultiLineString) NumGeometries() int { return len(m.lines) }

// GeometryN returns the i'th line (0-indexed).
func (m *MultiLineString) GeometryN(i int) *LineString { return m.lines[i] }

// Shape implements Geometry.
func (m *MultiLineString) Shape() geopb.ShapeType { return geopb.MultiLineString }

// HasZ implements Geometry.
func (m *MultiLineString) HasZ() bool { return m.hasZ }

// HasM implements Geometry.
func (m *MultiLineString) HasM() bool { return m.hasM }

// IsEmpty implements Geometry.
func (m *MultiLineString) IsEmpty() bool { return len(m.lines) == 0 }

// Equal implements Geometry.
func (m *MultiLineString) Equal(other Geometry) bool {
	o, ok := other.(*MultiLineString)
	if !ok || !sameKind(m, o) || len(m.lines) != len(o.lines) {
		return false
	}
	for i, l := range m.lines {
		if !l.Equal(o.lines[i]) {
			return false
		}
	}
	return true
}

// MultiPolygon is an ordered sequence of Polygons, each written and read
// as an independent child record.
type MultiPolygon struct {
	hasZ, hasM bool
	polygons   []*Polygon
}

var _ Geometry = (*MultiPolygon)(nil)

// NewMultiPolygon builds an empty MultiPolygon with the given
// dimensionality.
func NewMultiPolygon(hasZ, hasM bool) *MultiPolygon {
	return &MultiPolygon{hasZ: hasZ, hasM: hasM}
}

// AddPolygon appends p, enforcing dimension consistency.
func (m *MultiPolygon) AddPolygon(p *Polygon) error {
	if p.HasZ() != m.hasZ || p.HasM() != m.hasM {
		return dimensionMismatch(m.hasZ, m.hasM, p.HasZ(), p.HasM())
	}
	m.polygons = append(m.polygons, p)
	return nil
}

// NumGeometries returns the number of polygons.
func (m *MultiPolygon) NumGeometries() int { return len(m.polygons) }

// GeometryN returns the i'th polygon (0-indexed).
func (m *MultiPolygon) GeometryN(i int) *Polygon { return m.polygons[i] }

// Shape implements Geometry.
func (m *MultiPolygon) Shape() geopb.ShapeType { return geopb.MultiPolygon }

// HasZ implements Geometry.
func (m *MultiPolygon) HasZ() bool { return m.hasZ }

// HasM implements Geometry.
func (m *MultiPolygon) HasM() bool { return m.hasM }

// IsEmpty implements Geometry.
func (m *MultiPolygon) IsEmpty() bool { return len(m.polygons) == 0 }

// Equal implements Geometry.
func (m *MultiPolygon) Equal(other Geometry) bool {
	o, ok := other.(*MultiPolygon)
	if !ok || !sameKind(m, o) || len(m.polygons) != len(o.polygons) {
		return false
	}
	for i, p := range m.polygons {
		if !p.Equal(o.polygons[i]) {
			return false
		}
	}
	return true
}
