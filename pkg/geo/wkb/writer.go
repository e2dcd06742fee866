// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package wkb

import (
	"github.com/cockroachdb/errors"

	"github.com/geowkb/geowkb/pkg/geo"
	"github.com/geowkb/geowkb/pkg/geo/geopb"
)

// WriteGeometry encodes g as a single WKB record under order, recursing
// into every child record under the same order (§4.4's "the writer uses
// one byte order for the whole tree it emits" guarantee; a reader is
// never bothered by this, since each record is self-describing).
func WriteGeometry(g geo.Geometry, order geopb.ByteOrder) ([]byte, error) {
	w := NewByteWriter(order)
	if err := writeRecord(w, g); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// CodeFor returns the wire type code WriteGeometry would emit for g,
// without encoding it. Mainly useful for tests and tooling that want to
// assert on the code independent of the rest of the payload.
func CodeFor(g geo.Geometry) (uint32, error) {
	return codeForWrite(g)
}

func codeForWrite(g geo.Geometry) (uint32, error) {
	if ext, ok := g.(*geo.ExtendedGeometryCollection); ok {
		return geopb.CodeForExtendedCollection(ext.Shape(), ext.HasZ(), ext.HasM())
	}
	return geopb.CodeFor(g.Shape(), g.HasZ(), g.HasM())
}

func writeRecord(w *ByteWriter, g geo.Geometry) error {
	w.WriteByteOrder()
	code, err := codeForWrite(g)
	if err != nil {
		return err
	}
	w.WriteUInt32(code)
	return writePayload(w, g)
}

func writePointTuple(w *ByteWriter, p *geo.Point) {
	w.WriteDouble(p.X())
	w.WriteDouble(p.Y())
	if p.HasZ() {
		w.WriteDouble(p.Z())
	}
	if p.HasM() {
		w.WriteDouble(p.M())
	}
}

// pointSeq is satisfied by *geo.LineString and *geo.CircularString via
// their embedded pointSequence's promoted methods.
type pointSeq interface {
	NumPoints() int
	PointN(i int) *geo.Point
}

func writePoints(w *ByteWriter, seq pointSeq) {
	w.WriteUInt32(uint32(seq.NumPoints()))
	for i := 0; i < seq.NumPoints(); i++ {
		writePointTuple(w, seq.PointN(i))
	}
}

// ringSeq is satisfied by *geo.Polygon and *geo.Triangle via their
// embedded ringSequence's promoted methods.
type ringSeq interface {
	NumRings() int
	RingN(i int) *geo.LineString
}

func writeRings(w *ByteWriter, seq ringSeq) {
	w.WriteUInt32(uint32(seq.NumRings()))
	for i := 0; i < seq.NumRings(); i++ {
		writePoints(w, seq.RingN(i))
	}
}

func writeChildren(w *ByteWriter, n int, get func(int) geo.Geometry) error {
	w.WriteUInt32(uint32(n))
	for i := 0; i < n; i++ {
		if err := writeRecord(w, get(i)); err != nil {
			return err
		}
	}
	return nil
}

func writePayload(w *ByteWriter, g geo.Geometry) error {
	switch t := g.(type) {
	case *geo.Point:
		writePointTuple(w, t)
		return nil
	case *geo.LineString:
		writePoints(w, t)
		return nil
	case *geo.CircularString:
		writePoints(w, t)
		return nil
	case *geo.Polygon:
		writeRings(w, t)
		return nil
	case *geo.Triangle:
		writeRings(w, t)
		return nil
	case *geo.MultiPoint:
		return writeChildren(w, t.NumGeometries(), func(i int) geo.Geometry { return t.GeometryN(i) })
	case *geo.MultiLineString:
		return writeChildren(w, t.NumGeometries(), func(i int) geo.Geometry { return t.GeometryN(i) })
	case *geo.MultiPolygon:
		return writeChildren(w, t.NumGeometries(), func(i int) geo.Geometry { return t.GeometryN(i) })
	case *geo.PolyhedralSurface:
		return writeChildren(w, t.NumGeometries(), func(i int) geo.Geometry { return t.GeometryN(i) })
	case *geo.TIN:
		return writeChildren(w, t.NumGeometries(), func(i int) geo.Geometry { return t.GeometryN(i) })
	case *geo.CompoundCurve:
		return writeChildren(w, t.NumGeometries(), t.GeometryN)
	case *geo.CurvePolygon:
		return writeChildren(w, t.NumRings(), t.RingN)
	case *geo.GeometryCollection:
		return writeChildren(w, t.NumGeometries(), t.GeometryN)
	case *geo.ExtendedGeometryCollection:
		return writeChildren(w, t.NumGeometries(), t.GeometryN)
	default:
		return errors.AssertionFailedf("wkb: unhandled geometry type %T", g)
	}
}
