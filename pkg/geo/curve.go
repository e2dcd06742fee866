// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import "github.com/geowkb/geowkb/pkg/geo/geopb"

// isCurve reports whether g is one of the concrete shapes the abstract
// CURVE tag covers: LineString or CircularString.
func isCurve(g Geometry) bool {
	switch g.Shape() {
	case geopb.LineString, geopb.CircularString:
		return true
	default:
		return false
	}
}

// isCurvePolygonRing reports whether g is a shape CurvePolygon may use as
// a ring: LineString, CircularString, or CompoundCurve.
func isCurvePolygonRing(g Geometry) bool {
	if isCurve(g) {
		return true
	}
	return g.Shape() == geopb.CompoundCurve
}

// CompoundCurve is an ordered sequence of LineString or CircularString
// segments, each written and read as an independent child record.
type CompoundCurve struct {
	hasZ, hasM bool
	segments   []Geometry
}

var _ Geometry = (*CompoundCurve)(nil)

// NewCompoundCurve builds an empty CompoundCurve with the given
// dimensionality.
func NewCompoundCurve(hasZ, hasM bool) *CompoundCurve {
	return &CompoundCurve{hasZ: hasZ, hasM: hasM}
}

// AddSegment appends seg, which must be a *LineString or *CircularString
// sharing the curve's dimensionality.
func (c *CompoundCurve) AddSegment(seg Geometry) error {
	if !isCurve(seg) {
		return invalidChildType("CompoundCurve", seg)
	}
	if seg.HasZ() != c.hasZ || seg.HasM() != c.hasM {
		return dimensionMismatch(c.hasZ, c.hasM, seg.HasZ(), seg.HasM())
	}
	c.segments = append(c.segments, seg)
	return nil
}

// NumGeometries returns the number of segments.
func (c *CompoundCurve) NumGeometries() int { return len(c.segments) }

// GeometryN returns the i'th segment (0-indexed).
func (c *CompoundCurve) GeometryN(i int) Geometry { return c.segments[i] }

// Shape implements Geometry.
func (c *CompoundCurve) Shape() geopb.ShapeType { return geopb.CompoundCurve }

// HasZ implements Geometry.
func (c *CompoundCurve) HasZ() bool { return c.hasZ }

// HasM implements Geometry.
func (c *CompoundCurve) HasM() bool { return c.hasM }

// IsEmpty implements Geometry.
func (c *CompoundCurve) IsEmpty() bool { return len(c.segments) == 0 }

// Equal implements Geometry.
func (c *CompoundCurve) Equal(other Geometry) bool {
	o, ok := other.(*CompoundCurve)
	if !ok || !sameKind(c, o) || len(c.segments) != len(o.segments) {
		return false
	}
	for i, s := range c.segments {
		if !s.Equal(o.segments[i]) {
			return false
		}
	}
	return true
}

// CurvePolygon is an ordered sequence of curve rings (LineString,
// CircularString, or CompoundCurve), exterior first.
type CurvePolygon struct {
	hasZ, hasM bool
	rings      []Geometry
}

var _ Geometry = (*CurvePolygon)(nil)

// NewCurvePolygon builds an empty CurvePolygon with the given
// dimensionality.
func NewCurvePolygon(hasZ, hasM bool) *CurvePolygon {
	return &CurvePolygon{hasZ: hasZ, hasM: hasM}
}

// AddRing appends ring, which must be a *LineString, *CircularString, or
// *CompoundCurve sharing the polygon's dimensionality.
func (c *CurvePolygon) AddRing(ring Geometry) error {
	if !isCurvePolygonRing(ring) {
		return invalidChildType("CurvePolygon", ring)
	}
	if ring.HasZ() != c.hasZ || ring.HasM() != c.hasM {
		return dimensionMismatch(c.hasZ, c.hasM, ring.HasZ(), ring.HasM())
	}
	c.rings = append(c.rings, ring)
	return nil
}

// NumRings returns the number of rings.
func (c *CurvePolygon) NumRings() int { return len(c.rings) }

// RingN returns the i'th ring (0-indexed, 0 is the exterior ring).
func (c *CurvePolygon) RingN(i int) Geometry { return c.rings[i] }

// Shape implements Geometry.
func (c *CurvePolygon) Shape() geopb.ShapeType { return geopb.CurvePolygon }

// HasZ implements Geometry.
func (c *CurvePolygon) HasZ() bool { return c.hasZ }

// HasM implements Geometry.
func (c *CurvePolygon) HasM() bool { return c.hasM }

// IsEmpty implements Geometry.
func (c *CurvePolygon) IsEmpty() bool { return len(c.rings) == 0 }

// Equal implements Geometry.
func (c *CurvePolygon) Equal(other Geometry) bool {
	o, ok := other.(*CurvePolygon)
	if !ok || !sameKind(c, o) || len(c.rings) != len(o.rings) {
		return false
	}
	for i, r := range c.rings {
		if !r.Equal(o.rings[i]) {
			return false
		}
	}
	return true
}
