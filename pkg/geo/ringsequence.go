// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import "github.com/geowkb/geowkb/pkg/geo/geopb"

// ringSequence is the shared payload of Polygon and Triangle: an ordered
// sequence of LineString rings, exterior first.
type ringSequence struct {
	hasZ, hasM bool
	rings      []*LineString
}

func newRingSequence(hasZ, hasM bool) ringSequence {
	return ringSequence{hasZ: hasZ, hasM: hasM}
}

// AddRing appends ring, enforcing dimension consistency. Ring closure is
// not validated; that belongs to a separate geometry-validation
// component.
func (s *ringSequence) AddRing(ring *LineString) error {
	if ring.HasZ() != s.hasZ || ring.HasM() != s.hasM {
		return dimensionMismatch(s.hasZ, s.hasM, ring.HasZ(), ring.HasM())
	}
	s.rings = append(s.rings, ring)
	return nil
}

// NumRings returns the number of rings.
func (s *ringSequence) NumRings() int { return len(s.rings) }

// RingN returns the i'th ring (0-indexed, 0 is the exterior ring).
func (s *ringSequence) RingN(i int) *LineString { return s.rings[i] }

func (s *ringSequence) HasZ() bool    { return s.hasZ }
func (s *ringSequence) HasM() bool    { return s.hasM }
func (s *ringSequence) IsEmpty() bool { return len(s.rings) == 0 }

func (s *ringSequence) equalRings(o *ringSequence) bool {
	if len(s.rings) != len(o.rings) {
		return false
	}
	for i, r := range s.rings {
		if !r.Equal(o.rings[i]) {
			return false
		}
	}
	return true
}

// Polygon is an ordered sequence of LineString rings, exterior first.
type Polygon struct{ ringSequence }

var _ Geometry = (*Polygon)(nil)

// NewPolygon builds an empty Polygon with the given dimensionality.
func NewPolygon(hasZ, hasM bool) *Polygon {
	return &Polygon{ringSequence: newRingSequence(hasZ, hasM)}
}

// Shape implements Geometry.
func (p *Polygon) Shape() geopb.ShapeType { return geopb.Polygon }

// Equal implements Geometry.
func (p *Polygon) Equal(other Geometry) bool {
	o, ok := other.(*Polygon)
	if !ok || !sameKind(p, o) {
		return false
	}
	return p.equalRings(&o.ringSequence)
}

// Triangle is structurally identical to Polygon: an ordered sequence of
// rings, used as the element type of TIN.
type Triangle struct{ ringSequence }

var _ Geometry = (*Triangle)(nil)

// NewTriangle builds an empty Triangle with the given dimensionality.
func NewTriangle(hasZ, hasM bool) *Triangle {
	return &Triangle{ringSequence: newRingSequence(hasZ, hasM)}
}

// Shape implements Geometry.
func (t *Triangle) Shape() geopb.ShapeType { return geopb.Triangle }

// Equal implements Geometry.
func (t *Triangle) Equal(other Geometry) bool {
	o, ok := other.(*Triangle)
	if !ok || !sameKind(t, o) {
		return false
	}
	return t.equalRings(&o.ringSequence)
}
