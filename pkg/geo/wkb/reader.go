// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package wkb

import (
	"github.com/geowkb/geowkb/pkg/geo"
	"github.com/geowkb/geowkb/pkg/geo/geoerror"
	"github.com/geowkb/geowkb/pkg/geo/geopb"
)

// maxNestingDepth caps recursive descent so adversarial input can't
// exhaust the stack. It is not configurable today; a future caller that
// needs a different limit can add a ReadGeometryWithDepth variant.
const maxNestingDepth = 64

// ReadGeometry decodes one WKB record from buf. defaultOrder is only
// consulted to interpret the outermost byte-order marker byte, which is
// endian-independent anyway since it is a single byte; every record,
// including nested child records, declares and is read under its own
// byte order (§4.4's core invariant). If filter is non-nil, points
// failing it are dropped; if dropping empties buf's geometry entirely,
// ReadGeometry returns (nil, nil).
func ReadGeometry(buf []byte, defaultOrder geopb.ByteOrder, filter *PointFilter) (geo.Geometry, error) {
	r := NewByteReader(buf, defaultOrder)
	return readRecord(r, filter, 0)
}

func readRecord(r *ByteReader, filter *PointFilter, depth int) (geo.Geometry, error) {
	if depth > maxNestingDepth {
		return nil, geoerror.Truncatedf("wkb: max nesting depth %d exceeded", maxNestingDepth)
	}
	order, err := r.ReadByteOrder()
	if err != nil {
		return nil, err
	}
	r.SetByteOrder(order)
	code, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	shape, hasZ, hasM, err := geopb.ShapeFromCode(code)
	if err != nil {
		return nil, err
	}
	return readPayload(r, shape, hasZ, hasM, filter, depth)
}

func readPayload(
	r *ByteReader, shape geopb.ShapeType, hasZ, hasM bool, filter *PointFilter, depth int,
) (geo.Geometry, error) {
	switch shape {
	case geopb.Point:
		p, ok, err := readPointTuple(r, hasZ, hasM, filter)
		if err != nil || !ok {
			return nil, err
		}
		return p, nil
	case geopb.LineString:
		return readLineString(r, hasZ, hasM, filter)
	case geopb.CircularString:
		return readCircularString(r, hasZ, hasM, filter)
	case geopb.Polygon:
		return readPolygon(r, hasZ, hasM, filter)
	case geopb.Triangle:
		return readTriangle(r, hasZ, hasM, filter)
	case geopb.MultiPoint:
		return readMultiPoint(r, hasZ, hasM, filter, depth)
	case geopb.MultiLineString:
		return readMultiLineString(r, hasZ, hasM, filter, depth)
	case geopb.MultiPolygon:
		return readMultiPolygon(r, hasZ, hasM, filter, depth)
	case geopb.CompoundCurve:
		return readCompoundCurve(r, hasZ, hasM, filter, depth)
	case geopb.CurvePolygon:
		return readCurvePolygon(r, hasZ, hasM, filter, depth)
	case geopb.PolyhedralSurface:
		return readPolyhedralSurface(r, hasZ, hasM, filter, depth)
	case geopb.TIN:
		return readTIN(r, hasZ, hasM, filter, depth)
	case geopb.GeometryCollection, geopb.MultiCurve, geopb.MultiSurface:
		// §4.3: a MultiCurve/MultiSurface code always materializes a plain
		// GeometryCollection; the abstract identity survives only as the
		// IsMultiCurve/IsMultiSurface predicate over its children.
		return readGeometryCollection(r, hasZ, hasM, filter, depth)
	default:
		return nil, geoerror.UnknownTypeCodef("wkb: unhandled shape %s", shape)
	}
}

// readPointTuple reads one bare coordinate tuple (no record header) and
// applies filter. ok is false when the point was dropped by the filter.
func readPointTuple(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter,
) (p *geo.Point, ok bool, err error) {
	x, err := r.ReadDouble()
	if err != nil {
		return nil, false, err
	}
	y, err := r.ReadDouble()
	if err != nil {
		return nil, false, err
	}
	var z, m float64
	if hasZ {
		if z, err = r.ReadDouble(); err != nil {
			return nil, false, err
		}
	}
	if hasM {
		if m, err = r.ReadDouble(); err != nil {
			return nil, false, err
		}
	}
	if filter != nil && !filter.Accept(x, y, hasZ, z, hasM, m) {
		return nil, false, nil
	}
	switch {
	case hasZ && hasM:
		return geo.NewPointZM(x, y, z, m), true, nil
	case hasZ:
		return geo.NewPointZ(x, y, z), true, nil
	case hasM:
		return geo.NewPointM(x, y, m), true, nil
	default:
		return geo.NewPoint2D(x, y), true, nil
	}
}

// readPointTuples reads the uint32 count header followed by that many
// bare coordinate tuples, returning only the ones the filter accepted
// alongside the original declared count (needed to tell "filter emptied
// a non-empty sequence" apart from "the sequence was empty on the wire").
func readPointTuples(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter,
) (points []*geo.Point, declared uint32, err error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, 0, err
	}
	points = make([]*geo.Point, 0, n)
	for i := uint32(0); i < n; i++ {
		p, ok, err := readPointTuple(r, hasZ, hasM, filter)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			points = append(points, p)
		}
	}
	return points, n, nil
}

// droppedByFilter reports whether a declared-non-empty sequence ended up
// with no surviving elements, the condition under which §4.5 says to
// drop the enclosing container and propagate upward.
func droppedByFilter(declared uint32, built int) bool {
	return declared > 0 && built == 0
}

func readLineString(r *ByteReader, hasZ, hasM bool, filter *PointFilter) (geo.Geometry, error) {
	points, declared, err := readPointTuples(r, hasZ, hasM, filter)
	if err != nil {
		return nil, err
	}
	if droppedByFilter(declared, len(points)) {
		return nil, nil
	}
	ls := geo.NewLineString(hasZ, hasM)
	for _, p := range points {
		_ = ls.AddPoint(p)
	}
	return ls, nil
}

func readCircularString(r *ByteReader, hasZ, hasM bool, filter *PointFilter) (geo.Geometry, error) {
	points, declared, err := readPointTuples(r, hasZ, hasM, filter)
	if err != nil {
		return nil, err
	}
	if droppedByFilter(declared, len(points)) {
		return nil, nil
	}
	cs := geo.NewCircularString(hasZ, hasM)
	for _, p := range points {
		_ = cs.AddPoint(p)
	}
	return cs, nil
}

func readRings(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter,
) (rings []*geo.LineString, declared uint32, err error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, 0, err
	}
	rings = make([]*geo.LineString, 0, n)
	for i := uint32(0); i < n; i++ {
		points, ringDeclared, err := readPointTuples(r, hasZ, hasM, filter)
		if err != nil {
			return nil, 0, err
		}
		if droppedByFilter(ringDeclared, len(points)) {
			continue
		}
		ring := geo.NewLineString(hasZ, hasM)
		for _, p := range points {
			_ = ring.AddPoint(p)
		}
		rings = append(rings, ring)
	}
	return rings, n, nil
}

func readPolygon(r *ByteReader, hasZ, hasM bool, filter *PointFilter) (geo.Geometry, error) {
	rings, declared, err := readRings(r, hasZ, hasM, filter)
	if err != nil {
		return nil, err
	}
	if droppedByFilter(declared, len(rings)) {
		return nil, nil
	}
	poly := geo.NewPolygon(hasZ, hasM)
	for _, ring := range rings {
		_ = poly.AddRing(ring)
	}
	return poly, nil
}

func readTriangle(r *ByteReader, hasZ, hasM bool, filter *PointFilter) (geo.Geometry, error) {
	rings, declared, err := readRings(r, hasZ, hasM, filter)
	if err != nil {
		return nil, err
	}
	if droppedByFilter(declared, len(rings)) {
		return nil, nil
	}
	t := geo.NewTriangle(hasZ, hasM)
	for _, ring := range rings {
		_ = t.AddRing(ring)
	}
	return t, nil
}

func readMultiPoint(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter, depth int,
) (geo.Geometry, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	mp := geo.NewMultiPoint(hasZ, hasM)
	built := 0
	for i := uint32(0); i < n; i++ {
		child, err := readRecord(r, filter, depth+1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		p, ok := child.(*geo.Point)
		if !ok {
			return nil, geoerror.InvalidChildTypef("wkb: MultiPoint child must be Point, got %s", child.Shape())
		}
		if err := mp.AddPoint(p); err != nil {
			return nil, err
		}
		built++
	}
	if droppedByFilter(n, built) {
		return nil, nil
	}
	return mp, nil
}

func readMultiLineString(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter, depth int,
) (geo.Geometry, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	ml := geo.NewMultiLineString(hasZ, hasM)
	built := 0
	for i := uint32(0); i < n; i++ {
		child, err := readRecord(r, filter, depth+1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		ls, ok := child.(*geo.LineString)
		if !ok {
			return nil, geoerror.InvalidChildTypef("wkb: MultiLineString child must be LineString, got %s", child.Shape())
		}
		if err := ml.AddLineString(ls); err != nil {
			return nil, err
		}
		built++
	}
	if droppedByFilter(n, built) {
		return nil, nil
	}
	return ml, nil
}

func readMultiPolygon(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter, depth int,
) (geo.Geometry, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	mp := geo.NewMultiPolygon(hasZ, hasM)
	built := 0
	for i := uint32(0); i < n; i++ {
		child, err := readRecord(r, filter, depth+1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		poly, ok := child.(*geo.Polygon)
		if !ok {
			return nil, geoerror.InvalidChildTypef("wkb: MultiPolygon child must be Polygon, got %s", child.Shape())
		}
		if err := mp.AddPolygon(poly); err != nil {
			return nil, err
		}
		built++
	}
	if droppedByFilter(n, built) {
		return nil, nil
	}
	return mp, nil
}

func readPolyhedralSurface(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter, depth int,
) (geo.Geometry, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	ps := geo.NewPolyhedralSurface(hasZ, hasM)
	built := 0
	for i := uint32(0); i < n; i++ {
		child, err := readRecord(r, filter, depth+1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		poly, ok := child.(*geo.Polygon)
		if !ok {
			return nil, geoerror.InvalidChildTypef("wkb: PolyhedralSurface child must be Polygon, got %s", child.Shape())
		}
		if err := ps.AddPolygon(poly); err != nil {
			return nil, err
		}
		built++
	}
	if droppedByFilter(n, built) {
		return nil, nil
	}
	return ps, nil
}

func readTIN(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter, depth int,
) (geo.Geometry, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	tin := geo.NewTIN(hasZ, hasM)
	built := 0
	for i := uint32(0); i < n; i++ {
		child, err := readRecord(r, filter, depth+1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		tri, ok := child.(*geo.Triangle)
		if !ok {
			return nil, geoerror.InvalidChildTypef("wkb: TIN child must be Triangle, got %s", child.Shape())
		}
		if err := tin.AddTriangle(tri); err != nil {
			return nil, err
		}
		built++
	}
	if droppedByFilter(n, built) {
		return nil, nil
	}
	return tin, nil
}

func readCompoundCurve(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter, depth int,
) (geo.Geometry, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	cc := geo.NewCompoundCurve(hasZ, hasM)
	built := 0
	for i := uint32(0); i < n; i++ {
		child, err := readRecord(r, filter, depth+1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		if child.Shape() != geopb.LineString && child.Shape() != geopb.CircularString {
			return nil, geoerror.InvalidChildTypef(
				"wkb: CompoundCurve child must be LineString or CircularString, got %s", child.Shape())
		}
		if err := cc.AddSegment(child); err != nil {
			return nil, err
		}
		built++
	}
	if droppedByFilter(n, built) {
		return nil, nil
	}
	return cc, nil
}

func readCurvePolygon(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter, depth int,
) (geo.Geometry, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	cp := geo.NewCurvePolygon(hasZ, hasM)
	built := 0
	for i := uint32(0); i < n; i++ {
		child, err := readRecord(r, filter, depth+1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		switch child.Shape() {
		case geopb.LineString, geopb.CircularString, geopb.CompoundCurve:
		default:
			return nil, geoerror.InvalidChildTypef(
				"wkb: CurvePolygon ring must be LineString, CircularString, or CompoundCurve, got %s", child.Shape())
		}
		if err := cp.AddRing(child); err != nil {
			return nil, err
		}
		built++
	}
	if droppedByFilter(n, built) {
		return nil, nil
	}
	return cp, nil
}

func readGeometryCollection(
	r *ByteReader, hasZ, hasM bool, filter *PointFilter, depth int,
) (geo.Geometry, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	gc := geo.NewGeometryCollection(hasZ, hasM)
	built := 0
	for i := uint32(0); i < n; i++ {
		child, err := readRecord(r, filter, depth+1)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		if err := gc.AddGeometry(child); err != nil {
			return nil, err
		}
		built++
	}
	if droppedByFilter(n, built) {
		return nil, nil
	}
	return gc, nil
}
