// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geopb

import (
	"github.com/cockroachdb/errors"
	"github.com/geowkb/geowkb/pkg/geo/geoerror"
)

// CodeFor returns the 32-bit WKB type code for a (shape, hasZ, hasM)
// triple using the additive ISO SQL/MM scheme: code = base + 1000*Z +
// 2000*M. shape must be a concrete, storable shape; MultiCurve and
// MultiSurface are only reachable through CodeForExtendedCollection.
func CodeFor(shape ShapeType, hasZ, hasM bool) (uint32, error) {
	if shape == MultiCurve || shape == MultiSurface {
		return 0, errors.AssertionFailedf(
			"geopb: %s is not a storable shape; use CodeForExtendedCollection", shape)
	}
	return codeFor(shape, hasZ, hasM)
}

// CodeForExtendedCollection returns the wire code for a GeometryCollection
// re-emitted under the abstract MultiCurve or MultiSurface code, the
// non-standard "extended geometry collection" flavor. shape must be
// MultiCurve or MultiSurface.
func CodeForExtendedCollection(shape ShapeType, hasZ, hasM bool) (uint32, error) {
	if shape != MultiCurve && shape != MultiSurface {
		return 0, errors.AssertionFailedf(
			"geopb: %s is not an extended collection code", shape)
	}
	return codeFor(shape, hasZ, hasM)
}

func codeFor(shape ShapeType, hasZ, hasM bool) (uint32, error) {
	if !validBaseShapes[shape] {
		return 0, geoerror.UnknownTypeCodef("geopb: %d is not a known shape type", shape)
	}
	code := uint32(shape)
	if hasZ {
		code += zOffset
	}
	if hasM {
		code += mOffset
	}
	return code, nil
}

// ShapeFromCode decodes a 32-bit WKB type code into its (shape, hasZ,
// hasM) triple. A code whose stripped base is outside the enumerated set
// returns ErrUnknownTypeCode. Codes decoding to MultiCurve or MultiSurface
// are valid here — the reader materializes such a record as a
// GeometryCollection (see pkg/geo's ExtendedGeometryCollection).
func ShapeFromCode(code uint32) (shape ShapeType, hasZ, hasM bool, err error) {
	base := code
	if base >= mOffset {
		hasM = true
		base -= mOffset
	}
	if base >= zOffset {
		hasZ = true
		base -= zOffset
	}
	shape = ShapeType(base)
	if !validBaseShapes[shape] {
		return Unknown, false, false, geoerror.UnknownTypeCodef(
			"geopb: unknown type code %#x (base %d)", code, base)
	}
	return shape, hasZ, hasM, nil
}
