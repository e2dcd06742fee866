// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package main

import (
	"fmt"
	"strings"

	"github.com/geowkb/geowkb/pkg/geo"
)

// dumpGeometry renders g as an indented tree, mainly so a human staring
// at a test fixture can sanity-check what got decoded.
func dumpGeometry(g geo.Geometry, depth int) string {
	indent := strings.Repeat("  ", depth)
	dims := dimsString(g)

	switch t := g.(type) {
	case *geo.Point:
		return fmt.Sprintf("%sPoint%s(%v, %v, z=%v, m=%v)", indent, dims, t.X(), t.Y(), t.Z(), t.M())
	case *geo.LineString:
		return dumpPoints(indent, t.Shape(), dims, t)
	case *geo.CircularString:
		return dumpPoints(indent, t.Shape(), dims, t)
	case *geo.Polygon:
		return dumpRings(indent, depth, t.Shape(), dims, t)
	case *geo.Triangle:
		return dumpRings(indent, depth, t.Shape(), dims, t)
	case *geo.MultiPoint:
		children := make([]geo.Geometry, t.NumGeometries())
		for i := range children {
			children[i] = t.GeometryN(i)
		}
		return dumpGeometries(indent, depth, t.Shape(), dims, children)
	case *geo.MultiLineString:
		children := make([]geo.Geometry, t.NumGeometries())
		for i := range children {
			children[i] = t.GeometryN(i)
		}
		return dumpGeometries(indent, depth, t.Shape(), dims, children)
	case *geo.MultiPolygon:
		children := make([]geo.Geometry, t.NumGeometries())
		for i := range children {
			children[i] = t.GeometryN(i)
		}
		return dumpGeometries(indent, depth, t.Shape(), dims, children)
	case *geo.PolyhedralSurface:
		children := make([]geo.Geometry, t.NumGeometries())
		for i := range children {
			children[i] = t.GeometryN(i)
		}
		return dumpGeometries(indent, depth, t.Shape(), dims, children)
	case *geo.TIN:
		children := make([]geo.Geometry, t.NumGeometries())
		for i := range children {
			children[i] = t.GeometryN(i)
		}
		return dumpGeometries(indent, depth, t.Shape(), dims, children)
	case *geo.CompoundCurve:
		children := make([]geo.Geometry, t.NumGeometries())
		for i := range children {
			children[i] = t.GeometryN(i)
		}
		return dumpGeometries(indent, depth, t.Shape(), dims, children)
	case *geo.CurvePolygon:
		children := make([]geo.Geometry, t.NumRings())
		for i := range children {
			children[i] = t.RingN(i)
		}
		return dumpGeometries(indent, depth, t.Shape(), dims, children)
	case *geo.GeometryCollection:
		children := make([]geo.Geometry, t.NumGeometries())
		for i := range children {
			children[i] = t.GeometryN(i)
		}
		return dumpGeometries(indent, depth, t.Shape(), dims, children)
	case *geo.ExtendedGeometryCollection:
		children := make([]geo.Geometry, t.NumGeometries())
		for i := range children {
			children[i] = t.GeometryN(i)
		}
		return dumpGeometries(indent, depth, t.Shape(), dims, children) + " (extended)"
	default:
		return fmt.Sprintf("%s%s%s", indent, g.Shape(), dims)
	}
}

func dimsString(g geo.Geometry) string {
	switch {
	case g.HasZ() && g.HasM():
		return " ZM"
	case g.HasZ():
		return " Z"
	case g.HasM():
		return " M"
	default:
		return ""
	}
}

type pointSeq interface {
	NumPoints() int
	PointN(i int) *geo.Point
}

func dumpPoints(indent string, shape fmt.Stringer, dims string, seq pointSeq) string {
	var b strings.Builder
	for i := 0; i < seq.NumPoints(); i++ {
		p := seq.PointN(i)
		fmt.Fprintf(&b, "%s  (%v, %v, z=%v, m=%v)\n", indent, p.X(), p.Y(), p.Z(), p.M())
	}
	return fmt.Sprintf("%s%s%s [\n%s%s]", indent, shape, dims, b.String(), indent)
}

type ringSeq interface {
	NumRings() int
	RingN(i int) *geo.LineString
}

func dumpRings(indent string, depth int, shape fmt.Stringer, dims string, seq ringSeq) string {
	lines := make([]string, seq.NumRings())
	for i := range lines {
		lines[i] = dumpGeometry(seq.RingN(i), depth+1)
	}
	return fmt.Sprintf("%s%s%s {\n%s\n%s}", indent, shape, dims, strings.Join(lines, "\n"), indent)
}

func dumpGeometries(indent string, depth int, shape fmt.Stringer, dims string, children []geo.Geometry) string {
	lines := make([]string, len(children))
	for i, child := range children {
		lines[i] = dumpGeometry(child, depth+1)
	}
	return fmt.Sprintf("%s%s%s {\n%s\n%s}", indent, shape, dims, strings.Join(lines, "\n"), indent)
}
