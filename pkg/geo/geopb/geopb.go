// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

// Package geopb contains the wire-level types shared by the WKB codec:
// byte order codes and the geometry type code scheme defined by OGC SFS
// 1.2.1 / ISO 19125, including the ISO SQL/MM additive Z/M offsets and the
// non-standard extended-collection codes.
package geopb

// ByteOrder is the WKB byte-order marker written as the first byte of
// every record.
type ByteOrder uint8

// The two WKB byte orders. These are the only valid values; any other
// byte read as a byte-order marker is malformed.
const (
	BigEndian    ByteOrder = 0x00
	LittleEndian ByteOrder = 0x01
)

// String implements fmt.Stringer.
func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return "InvalidByteOrder"
	}
}

// Valid reports whether o is one of the two defined byte orders.
func (o ByteOrder) Valid() bool {
	return o == BigEndian || o == LittleEndian
}

// ShapeType is the tag identifying a geometry's concrete kind. It is the
// base code used in the wire type code before the Z/M offsets are added.
type ShapeType uint32

// The closed set of shape tags. Unknown (code 0, the abstract Geometry
// tag), Curve, Surface, MultiCurve, and MultiSurface are abstract: no
// concrete geo.Geometry value reports them from Shape. MultiCurve and
// MultiSurface appear as wire codes and as the Shape of the
// geo.ExtendedGeometryCollection write wrapper.
const (
	Unknown            ShapeType = 0
	Point              ShapeType = 1
	LineString         ShapeType = 2
	Polygon            ShapeType = 3
	MultiPoint         ShapeType = 4
	MultiLineString    ShapeType = 5
	MultiPolygon       ShapeType = 6
	GeometryCollection ShapeType = 7
	CircularString     ShapeType = 8
	CompoundCurve      ShapeType = 9
	CurvePolygon       ShapeType = 10
	MultiCurve         ShapeType = 11
	MultiSurface       ShapeType = 12
	Curve              ShapeType = 13
	Surface            ShapeType = 14
	PolyhedralSurface  ShapeType = 15
	TIN                ShapeType = 16
	Triangle           ShapeType = 17
)

// String implements fmt.Stringer.
func (s ShapeType) String() string {
	switch s {
	case Unknown:
		return "Unknown"
	case Point:
		return "Point"
	case LineString:
		return "LineString"
	case Polygon:
		return "Polygon"
	case MultiPoint:
		return "MultiPoint"
	case MultiLineString:
		return "MultiLineString"
	case MultiPolygon:
		return "MultiPolygon"
	case GeometryCollection:
		return "GeometryCollection"
	case CircularString:
		return "CircularString"
	case CompoundCurve:
		return "CompoundCurve"
	case CurvePolygon:
		return "CurvePolygon"
	case MultiCurve:
		return "MultiCurve"
	case MultiSurface:
		return "MultiSurface"
	case Curve:
		return "Curve"
	case Surface:
		return "Surface"
	case PolyhedralSurface:
		return "PolyhedralSurface"
	case TIN:
		return "TIN"
	case Triangle:
		return "Triangle"
	default:
		return "InvalidShapeType"
	}
}

// zOffset and mOffset are the ISO SQL/MM additive offsets marking the
// presence of the Z and M ordinates respectively in a wire type code.
const (
	zOffset uint32 = 1000
	mOffset uint32 = 2000
)

// validBaseShapes is the set of base codes ShapeFromCode and codeFor accept.
// MultiCurve and MultiSurface are only valid through
// CodeForExtendedCollection / when decoding, never as a stored geo.Geometry
// tag.
var validBaseShapes = map[ShapeType]bool{
	Point:              true,
	LineString:         true,
	Polygon:            true,
	MultiPoint:         true,
	MultiLineString:    true,
	MultiPolygon:       true,
	GeometryCollection: true,
	CircularString:     true,
	CompoundCurve:      true,
	CurvePolygon:       true,
	MultiCurve:         true,
	MultiSurface:       true,
	PolyhedralSurface:  true,
	TIN:                true,
	Triangle:           true,
}
