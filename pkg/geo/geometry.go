// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

// Package geo contains the tagged geometry hierarchy that the WKB codec
// (pkg/geo/wkb) reads into and writes out of: Point, LineString,
// CircularString, Polygon, Triangle, CompoundCurve, CurvePolygon,
// MultiPoint, MultiLineString, MultiPolygon, PolyhedralSurface, TIN, and
// GeometryCollection, each carrying Z/M dimensionality flags.
//
// The package exposes only structural queries (counts, indexed access,
// dimensionality, envelope); geometric analysis beyond envelope
// computation — simplicity validation, topological predicates, ring
// closure — is out of scope and lives elsewhere.
package geo

import "github.com/geowkb/geowkb/pkg/geo/geopb"

// Geometry is implemented by every concrete geometry value. The stored
// tag returned by Shape is concrete for every shape in this package:
// GEOMETRY, CURVE, and SURFACE never appear here. MULTICURVE and
// MULTISURFACE appear only as the Shape of an ExtendedGeometryCollection
// (the write-side wrapper), at the wire layer
// (geopb.CodeForExtendedCollection), or as structural predicates
// (GeometryCollection.IsMultiCurve/IsMultiSurface).
type Geometry interface {
	// Shape returns the geometry's concrete type tag.
	Shape() geopb.ShapeType
	// HasZ reports whether every coordinate reachable from this geometry
	// carries a Z ordinate.
	HasZ() bool
	// HasM reports whether every coordinate reachable from this geometry
	// carries an M ordinate.
	HasM() bool
	// IsEmpty reports whether this geometry has no reachable coordinates.
	IsEmpty() bool
	// Equal reports whether other is structurally identical: same shape,
	// dimensionality, and children in the same order. Coordinate
	// comparison is bit-exact (NaN compares equal to the same NaN), so
	// that read(write(G)) ≡ G holds even through the point filter.
	Equal(other Geometry) bool
}

// sameKind reports whether a and b have the same shape and
// dimensionality. It does not compare Go types; every Equal
// implementation type-asserts other first and then calls sameKind.
func sameKind(a, b Geometry) bool {
	return a.Shape() == b.Shape() && a.HasZ() == b.HasZ() && a.HasM() == b.HasM()
}
