// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

// Package geoconv bridges pkg/geo's tagged geometry hierarchy to
// github.com/twpayne/go-geom's geom.T, for callers that want to hand a
// decoded geometry to code written against the wider go-geom ecosystem
// (its WKT, GeoJSON, and KML encoders in particular). It is a pure
// in-memory conversion; it never touches the WKB wire format itself,
// that is pkg/geo/wkb's job.
//
// go-geom has no equivalent of CircularString, CompoundCurve,
// CurvePolygon, Triangle, PolyhedralSurface, or TIN, so ToGeomT rejects
// them rather than silently flattening their curved or solid structure
// into something go-geom can represent.
package geoconv

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"

	"github.com/geowkb/geowkb/pkg/geo"
)

func layoutFor(hasZ, hasM bool) geom.Layout {
	switch {
	case hasZ && hasM:
		return geom.XYZM
	case hasZ:
		return geom.XYZ
	case hasM:
		return geom.XYM
	default:
		return geom.XY
	}
}

func dimsFromLayout(layout geom.Layout) (hasZ, hasM bool) {
	switch layout {
	case geom.XYZ:
		return true, false
	case geom.XYM:
		return false, true
	case geom.XYZM:
		return true, true
	default:
		return false, false
	}
}

func pointCoords(p *geo.Point) geom.Coord {
	coords := geom.Coord{p.X(), p.Y()}
	if p.HasZ() {
		coords = append(coords, p.Z())
	}
	if p.HasM() {
		coords = append(coords, p.M())
	}
	return coords
}

func lineCoords(seq pointSeq) []geom.Coord {
	coords := make([]geom.Coord, seq.NumPoints())
	for i := range coords {
		coords[i] = pointCoords(seq.PointN(i))
	}
	return coords
}

// pointSeq matches the promoted methods of *geo.LineString and
// *geo.CircularString; only the former is ever passed in here.
type pointSeq interface {
	NumPoints() int
	PointN(i int) *geo.Point
}

func ringCoords(seq ringSeq) [][]geom.Coord {
	coords := make([][]geom.Coord, seq.NumRings())
	for i := range coords {
		coords[i] = lineCoords(seq.RingN(i))
	}
	return coords
}

type ringSeq interface {
	NumRings() int
	RingN(i int) *geo.LineString
}

func pointFromCoords(coords geom.Coord, hasZ, hasM bool) *geo.Point {
	x, y := coords[0], coords[1]
	idx := 2
	var z, m float64
	if hasZ {
		z = coords[idx]
		idx++
	}
	if hasM {
		m = coords[idx]
	}
	switch {
	case hasZ && hasM:
		return geo.NewPointZM(x, y, z, m)
	case hasZ:
		return geo.NewPointZ(x, y, z)
	case hasM:
		return geo.NewPointM(x, y, m)
	default:
		return geo.NewPoint2D(x, y)
	}
}

func lineStringFromCoords(coords []geom.Coord, hasZ, hasM bool) (*geo.LineString, error) {
	ls := geo.NewLineString(hasZ, hasM)
	for _, c := range coords {
		if err := ls.AddPoint(pointFromCoords(c, hasZ, hasM)); err != nil {
			return nil, err
		}
	}
	return ls, nil
}

func polygonFromCoords(rings [][]geom.Coord, hasZ, hasM bool) (*geo.Polygon, error) {
	poly := geo.NewPolygon(hasZ, hasM)
	for _, ring := range rings {
		ls, err := lineStringFromCoords(ring, hasZ, hasM)
		if err != nil {
			return nil, err
		}
		if err := poly.AddRing(ls); err != nil {
			return nil, err
		}
	}
	return poly, nil
}

// ToGeomT converts g into a go-geom geom.T, returning an error for any
// shape go-geom has no equivalent for.
func ToGeomT(g geo.Geometry) (geom.T, error) {
	switch t := g.(type) {
	case *geo.Point:
		return geom.NewPoint(layoutFor(t.HasZ(), t.HasM())).SetCoords(pointCoords(t))
	case *geo.LineString:
		return geom.NewLineString(layoutFor(t.HasZ(), t.HasM())).SetCoords(lineCoords(t))
	case *geo.Polygon:
		return geom.NewPolygon(layoutFor(t.HasZ(), t.HasM())).SetCoords(ringCoords(t))
	case *geo.MultiPoint:
		coords := make([]geom.Coord, t.NumGeometries())
		for i := range coords {
			coords[i] = pointCoords(t.GeometryN(i))
		}
		return geom.NewMultiPoint(layoutFor(t.HasZ(), t.HasM())).SetCoords(coords)
	case *geo.MultiLineString:
		coords := make([][]geom.Coord, t.NumGeometries())
		for i := range coords {
			coords[i] = lineCoords(t.GeometryN(i))
		}
		return geom.NewMultiLineString(layoutFor(t.HasZ(), t.HasM())).SetCoords(coords)
	case *geo.MultiPolygon:
		coords := make([][][]geom.Coord, t.NumGeometries())
		for i := range coords {
			coords[i] = ringCoords(t.GeometryN(i))
		}
		return geom.NewMultiPolygon(layoutFor(t.HasZ(), t.HasM())).SetCoords(coords)
	case *geo.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for i := 0; i < t.NumGeometries(); i++ {
			child, err := ToGeomT(t.GeometryN(i))
			if err != nil {
				return nil, err
			}
			if err := gc.Push(child); err != nil {
				return nil, err
			}
		}
		return gc, nil
	default:
		return nil, errors.Newf("geoconv: %s has no go-geom equivalent", g.Shape())
	}
}

// FromGeomT converts a go-geom geom.T back into pkg/geo's hierarchy.
func FromGeomT(t geom.T) (geo.Geometry, error) {
	switch t := t.(type) {
	case *geom.Point:
		hasZ, hasM := dimsFromLayout(t.Layout())
		return pointFromCoords(t.Coords(), hasZ, hasM), nil
	case *geom.LineString:
		hasZ, hasM := dimsFromLayout(t.Layout())
		return lineStringFromCoords(t.Coords(), hasZ, hasM)
	case *geom.Polygon:
		hasZ, hasM := dimsFromLayout(t.Layout())
		return polygonFromCoords(t.Coords(), hasZ, hasM)
	case *geom.MultiPoint:
		hasZ, hasM := dimsFromLayout(t.Layout())
		mp := geo.NewMultiPoint(hasZ, hasM)
		for _, c := range t.Coords() {
			if err := mp.AddPoint(pointFromCoords(c, hasZ, hasM)); err != nil {
				return nil, err
			}
		}
		return mp, nil
	case *geom.MultiLineString:
		hasZ, hasM := dimsFromLayout(t.Layout())
		ml := geo.NewMultiLineString(hasZ, hasM)
		for _, line := range t.Coords() {
			ls, err := lineStringFromCoords(line, hasZ, hasM)
			if err != nil {
				return nil, err
			}
			if err := ml.AddLineString(ls); err != nil {
				return nil, err
			}
		}
		return ml, nil
	case *geom.MultiPolygon:
		hasZ, hasM := dimsFromLayout(t.Layout())
		mp := geo.NewMultiPolygon(hasZ, hasM)
		for _, rings := range t.Coords() {
			poly, err := polygonFromCoords(rings, hasZ, hasM)
			if err != nil {
				return nil, err
			}
			if err := mp.AddPolygon(poly); err != nil {
				return nil, err
			}
		}
		return mp, nil
	case *geom.GeometryCollection:
		children := make([]geo.Geometry, 0, t.NumGeoms())
		for i := 0; i < t.NumGeoms(); i++ {
			child, err := FromGeomT(t.Geom(i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		hasZ, hasM := false, false
		if len(children) > 0 {
			hasZ, hasM = children[0].HasZ(), children[0].HasM()
		}
		gc := geo.NewGeometryCollection(hasZ, hasM)
		for _, child := range children {
			if err := gc.AddGeometry(child); err != nil {
				return nil, err
			}
		}
		return gc, nil
	default:
		return nil, errors.Newf("geoconv: unsupported go-geom type %T", t)
	}
}
