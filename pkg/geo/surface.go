// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import "github.com/geowkb/geowkb/pkg/geo/geopb"

// PolyhedralSurface is an ordered sequence of Polygons, each a face of
// the surface.
type PolyhedralSurface struct {
	hasZ, hasM bool
	faces      []*Polygon
}

var _ Geometry = (*PolyhedralSurface)(nil)

// NewPolyhedralSurface builds an empty PolyhedralSurface with the given
// dimensionality.
func NewPolyhedralSurface(hasZ, hasM bool) *PolyhedralSurface {
	return &PolyhedralSurface{hasZ: hasZ, hasM: hasM}
}

// AddPolygon appends face, enforcing dimension consistency.
func (s *PolyhedralSurface) AddPolygon(face *Polygon) error {
	if face.HasZ() != s.hasZ || face.HasM() != s.hasM {
		return dimensionMismatch(s.hasZ, s.hasM, face.HasZ(), face.HasM())
	}
	s.faces = append(s.faces, face)
	return nil
}

// NumGeometries returns the number of faces.
func (s *PolyhedralSurface) NumGeometries() int { return len(s.faces) }

// GeometryN returns the i'th face (0-indexed).
func (s *PolyhedralSurface) GeometryN(i int) *Polygon { return s.faces[i] }

// Shape implements Geometry.
func (s *PolyhedralSurface) Shape() geopb.ShapeType { return geopb.PolyhedralSurface }

// HasZ implements Geometry.
func (s *PolyhedralSurface) HasZ() bool { return s.hasZ }

// HasM implements Geometry.
func (s *PolyhedralSurface) HasM() bool { return s.hasM }

// IsEmpty implements Geometry.
func (s *PolyhedralSurface) IsEmpty() bool { return len(s.faces) == 0 }

// Equal implements Geometry.
func (s *PolyhedralSurface) Equal(other Geometry) bool {
	o, ok := other.(*PolyhedralSurface)
	if !ok || !sameKind(s, o) || len(s.faces) != len(o.faces) {
		return false
	}
	for i, f := range s.faces {
		if !f.Equal(o.faces[i]) {
			return false
		}
	}
	return true
}

// TIN is an ordered sequence of Triangles forming a triangulated
// irregular network.
type TIN struct {
	hasZ, hasM bool
	triangles  []*Triangle
}

var _ Geometry = (*TIN)(nil)

// NewTIN builds an empty TIN with the given dimensionality.
func NewTIN(hasZ, hasM bool) *TIN {
	return &TIN{hasZ: hasZ, hasM: hasM}
}

// AddTriangle appends t, enforcing dimension consistency.
func (n *TIN) AddTriangle(t *Triangle) error {
	if t.HasZ() != n.hasZ || t.HasM() != n.hasM {
		return dimensionMismatch(n.hasZ, n.hasM, t.HasZ(), t.HasM())
	}
	n.triangles = append(n.triangles, t)
	return nil
}

// NumGeometries returns the number of triangles.
func (n *TIN) NumGeometries() int { return len(n.triangles) }

// GeometryN returns the i'th triangle (0-indexed).
func (n *TIN) GeometryN(i int) *Triangle { return n.triangles[i] }

// Shape implements Geometry.
func (n *TIN) Shape() geopb.ShapeType { return geopb.TIN }

// HasZ implements Geometry.
func (n *TIN) HasZ() bool { return n.hasZ }

// HasM implements Geometry.
func (n *TIN) HasM() bool { return n.hasM }

// IsEmpty implements Geometry.
func (n *TIN) IsEmpty() bool { return len(n.triangles) == 0 }

// Equal implements Geometry.
func (n *TIN) Equal(other Geometry) bool {
	o, ok := other.(*TIN)
	if !ok || !sameKind(n, o) || len(n.triangles) != len(o.triangles) {
		return false
	}
	for i, t := range n.triangles {
		if !t.Equal(o.triangles[i]) {
			return false
		}
	}
	return true
}
