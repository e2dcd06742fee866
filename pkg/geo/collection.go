// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import (
	"github.com/cockroachdb/errors"
	"github.com/geowkb/geowkb/pkg/geo/geopb"
)

// GeometryCollection is an ordered sequence of arbitrary geometries, each
// written and read as an independent child record.
//
// A collection whose children are all curves (LineString, CircularString,
// CompoundCurve) logically is a MultiCurve; one whose children are all
// Polygon or CurvePolygon logically is a MultiSurface. IsMultiCurve and
// IsMultiSurface expose those predicates without ever changing the
// collection's own stored Shape, which is always GeometryCollection. Use
// ExtendedGeometryCollection to serialize under the abstract code.
type GeometryCollection struct {
	hasZ, hasM bool
	geometries []Geometry
}

var _ Geometry = (*GeometryCollection)(nil)

// NewGeometryCollection builds an empty GeometryCollection with the given
// dimensionality.
func NewGeometryCollection(hasZ, hasM bool) *GeometryCollection {
	return &GeometryCollection{hasZ: hasZ, hasM: hasM}
}

// AddGeometry appends g, enforcing dimension consistency. Any concrete
// shape is permitted, including nested GeometryCollections.
func (c *GeometryCollection) AddGeometry(g Geometry) error {
	if g.HasZ() != c.hasZ || g.HasM() != c.hasM {
		return dimensionMismatch(c.hasZ, c.hasM, g.HasZ(), g.HasM())
	}
	c.geometries = append(c.geometries, g)
	return nil
}

// NumGeometries returns the number of children.
func (c *GeometryCollection) NumGeometries() int { return len(c.geometries) }

// GeometryN returns the i'th child (0-indexed).
func (c *GeometryCollection) GeometryN(i int) Geometry { return c.geometries[i] }

// Shape implements Geometry. Always returns geopb.GeometryCollection;
// see IsMultiCurve/IsMultiSurface for the abstract predicates.
func (c *GeometryCollection) Shape() geopb.ShapeType { return geopb.GeometryCollection }

// HasZ implements Geometry.
func (c *GeometryCollection) HasZ() bool { return c.hasZ }

// HasM implements Geometry.
func (c *GeometryCollection) HasM() bool { return c.hasM }

// IsEmpty implements Geometry.
func (c *GeometryCollection) IsEmpty() bool { return len(c.geometries) == 0 }

// IsMultiCurve reports whether every child is a curve (LineString,
// CircularString, or CompoundCurve). A collection with no children is
// not a MultiCurve.
func (c *GeometryCollection) IsMultiCurve() bool {
	if len(c.geometries) == 0 {
		return false
	}
	for _, g := range c.geometries {
		if !isCurve(g) && g.Shape() != geopb.CompoundCurve {
			return false
		}
	}
	return true
}

// IsMultiSurface reports whether every child is a Polygon or
// CurvePolygon. A collection with no children is not a MultiSurface.
func (c *GeometryCollection) IsMultiSurface() bool {
	if len(c.geometries) == 0 {
		return false
	}
	for _, g := range c.geometries {
		if g.Shape() != geopb.Polygon && g.Shape() != geopb.CurvePolygon {
			return false
		}
	}
	return true
}

// Equal implements Geometry.
func (c *GeometryCollection) Equal(other Geometry) bool {
	o, ok := other.(*GeometryCollection)
	if !ok || !sameKind(c, o) || len(c.geometries) != len(o.geometries) {
		return false
	}
	for i, g := range c.geometries {
		if !g.Equal(o.geometries[i]) {
			return false
		}
	}
	return true
}

// ExtendedGeometryCollection is a thin wrapper that re-emits a
// GeometryCollection's children under the non-standard MULTICURVE or
// MULTISURFACE wire code instead of GEOMETRYCOLLECTION. It holds no
// independent state: Shape reports the abstract kind, everything else
// delegates to the wrapped collection.
type ExtendedGeometryCollection struct {
	inner *GeometryCollection
	kind  geopb.ShapeType // geopb.MultiCurve or geopb.MultiSurface
}

var _ Geometry = (*ExtendedGeometryCollection)(nil)

// NewExtendedGeometryCollection wraps inner for serialization under kind,
// which must be geopb.MultiCurve or geopb.MultiSurface and must match
// what inner's children actually are.
func NewExtendedGeometryCollection(
	inner *GeometryCollection, kind geopb.ShapeType,
) (*ExtendedGeometryCollection, error) {
	switch kind {
	case geopb.MultiCurve:
		if !inner.IsMultiCurve() {
			return nil, errors.Newf("geo: collection is not a MultiCurve")
		}
	case geopb.MultiSurface:
		if !inner.IsMultiSurface() {
			return nil, errors.Newf("geo: collection is not a MultiSurface")
		}
	default:
		return nil, errors.Newf("geo: %s is not an extended collection kind", kind)
	}
	return &ExtendedGeometryCollection{inner: inner, kind: kind}, nil
}

// Inner returns the wrapped collection.
func (e *ExtendedGeometryCollection) Inner() *GeometryCollection { return e.inner }

// Shape implements Geometry, returning the abstract MultiCurve or
// MultiSurface code.
func (e *ExtendedGeometryCollection) Shape() geopb.ShapeType { return e.kind }

// HasZ implements Geometry.
func (e *ExtendedGeometryCollection) HasZ() bool { return e.inner.HasZ() }

// HasM implements Geometry.
func (e *ExtendedGeometryCollection) HasM() bool { return e.inner.HasM() }

// IsEmpty implements Geometry.
func (e *ExtendedGeometryCollection) IsEmpty() bool { return e.inner.IsEmpty() }

// NumGeometries returns the number of children.
func (e *ExtendedGeometryCollection) NumGeometries() int { return e.inner.NumGeometries() }

// GeometryN returns the i'th child (0-indexed).
func (e *ExtendedGeometryCollection) GeometryN(i int) Geometry { return e.inner.GeometryN(i) }

// Equal implements Geometry.
func (e *ExtendedGeometryCollection) Equal(other Geometry) bool {
	o, ok := other.(*ExtendedGeometryCollection)
	if !ok || e.kind != o.kind {
		return false
	}
	return e.inner.Equal(o.inner)
}
