// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// addOrdinate folds v into iv via r1.Interval's own AddPoint, skipping NaN
// so that a non-finite coordinate on one axis never moves the bound of
// another (§4.7).
func addOrdinate(iv r1.Interval, v float64) r1.Interval {
	if math.IsNaN(v) {
		return iv
	}
	return iv.AddPoint(v)
}

// Envelope is the axis-aligned minimum bounding box over all coordinates
// reachable from a geometry. It is never stored on a Geometry; it is
// always derived by EnvelopeOf.
type Envelope struct {
	hasZ, hasM bool

	// Planar is the X/Y bounding rectangle, folded with golang/geo's r2
	// planar primitive rather than a hand-rolled pair of floats.
	Planar r2.Rect
	// Z and M are only meaningful when hasZ/hasM are set.
	Z, M r1.Interval
}

// HasZ reports whether the envelope carries a Z extent.
func (e *Envelope) HasZ() bool { return e.hasZ }

// HasM reports whether the envelope carries an M extent.
func (e *Envelope) HasM() bool { return e.hasM }

// Equal reports whether two envelopes have identical defined bounds and
// matching hasZ/hasM flags.
func (e *Envelope) Equal(o *Envelope) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.hasZ != o.hasZ || e.hasM != o.hasM {
		return false
	}
	if !intervalEqual(e.Planar.X, o.Planar.X) || !intervalEqual(e.Planar.Y, o.Planar.Y) {
		return false
	}
	if e.hasZ && !intervalEqual(e.Z, o.Z) {
		return false
	}
	if e.hasM && !intervalEqual(e.M, o.M) {
		return false
	}
	return true
}

func intervalEqual(a, b r1.Interval) bool {
	return a.Equal(b)
}

// envelopeFold accumulates the bounding r2.Rect and the Z/M r1.Intervals
// via their own AddPoint methods, one axis at a time so that a NaN
// coordinate never moves the bound of another axis (§4.7).
type envelopeFold struct {
	planar r2.Rect
	z, m   r1.Interval
	seen   bool
}

func newEnvelopeFold() envelopeFold {
	return envelopeFold{
		planar: r2.EmptyRect(),
		z:      r1.EmptyInterval(),
		m:      r1.EmptyInterval(),
	}
}

func (f *envelopeFold) addPoint(p *Point) {
	f.seen = true
	f.planar.X = addOrdinate(f.planar.X, p.X())
	f.planar.Y = addOrdinate(f.planar.Y, p.Y())
	if p.HasZ() {
		f.z = addOrdinate(f.z, p.Z())
	}
	if p.HasM() {
		f.m = addOrdinate(f.m, p.M())
	}
}

// EnvelopeOf folds over every coordinate reachable from g and returns the
// resulting envelope. It returns nil for a geometry with no points.
// hasZ/hasM on the result are inherited from g's own dimensionality, not
// re-derived per coordinate.
func EnvelopeOf(g Geometry) *Envelope {
	fold := newEnvelopeFold()
	foldGeometry(g, &fold)
	if !fold.seen {
		return nil
	}
	e := &Envelope{
		hasZ:   g.HasZ(),
		hasM:   g.HasM(),
		Planar: fold.planar,
	}
	if e.hasZ {
		e.Z = fold.z
	}
	if e.hasM {
		e.M = fold.m
	}
	return e
}

func foldGeometry(g Geometry, fold *envelopeFold) {
	switch t := g.(type) {
	case *Point:
		fold.addPoint(t)
	case *LineString:
		foldPoints(t.points, fold)
	case *CircularString:
		foldPoints(t.points, fold)
	case *Polygon:
		for _, r := range t.rings {
			foldPoints(r.points, fold)
		}
	case *Triangle:
		for _, r := range t.rings {
			foldPoints(r.points, fold)
		}
	case *CompoundCurve:
		for _, seg := range t.segments {
			foldGeometry(seg, fold)
		}
	case *CurvePolygon:
		for _, r := range t.rings {
			foldGeometry(r, fold)
		}
	case *MultiPoint:
		foldPoints(t.points, fold)
	case *MultiLineString:
		for _, l := range t.lines {
			foldPoints(l.points, fold)
		}
	case *MultiPolygon:
		for _, p := range t.polygons {
			for _, r := range p.rings {
				foldPoints(r.points, fold)
			}
		}
	case *PolyhedralSurface:
		for _, f := range t.faces {
			for _, r := range f.rings {
				foldPoints(r.points, fold)
			}
		}
	case *TIN:
		for _, tr := range t.triangles {
			for _, r := range tr.rings {
				foldPoints(r.points, fold)
			}
		}
	case *GeometryCollection:
		for _, child := range t.geometries {
			foldGeometry(child, fold)
		}
	case *ExtendedGeometryCollection:
		foldGeometry(t.inner, fold)
	}
}

func foldPoints(points []*Point, fold *envelopeFold) {
	for _, p := range points {
		fold.addPoint(p)
	}
}
