// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import (
	"math"

	"github.com/geowkb/geowkb/pkg/geo/geopb"
)

// Point is a single coordinate: x, y, and optionally z and/or m.
type Point struct {
	hasZ, hasM bool
	x, y, z, m float64
}

var _ Geometry = (*Point)(nil)

// NewPoint2D builds a 2D point.
func NewPoint2D(x, y float64) *Point {
	return &Point{x: x, y: y}
}

// NewPointZ builds a point carrying a Z ordinate.
func NewPointZ(x, y, z float64) *Point {
	return &Point{hasZ: true, x: x, y: y, z: z}
}

// NewPointM builds a point carrying an M ordinate.
func NewPointM(x, y, m float64) *Point {
	return &Point{hasM: true, x: x, y: y, m: m}
}

// NewPointZM builds a point carrying both Z and M ordinates.
func NewPointZM(x, y, z, m float64) *Point {
	return &Point{hasZ: true, hasM: true, x: x, y: y, z: z, m: m}
}

// X returns the point's x ordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the point's y ordinate.
func (p *Point) Y() float64 { return p.y }

// Z returns the point's z ordinate. The result is meaningless if HasZ is
// false.
func (p *Point) Z() float64 { return p.z }

// M returns the point's m ordinate. The result is meaningless if HasM is
// false.
func (p *Point) M() float64 { return p.m }

// Shape implements Geometry.
func (p *Point) Shape() geopb.ShapeType { return geopb.Point }

// HasZ implements Geometry.
func (p *Point) HasZ() bool { return p.hasZ }

// HasM implements Geometry.
func (p *Point) HasM() bool { return p.hasM }

// IsEmpty implements Geometry. A Point always carries exactly one
// coordinate, so it is never empty.
func (p *Point) IsEmpty() bool { return false }

// Equal implements Geometry.
func (p *Point) Equal(other Geometry) bool {
	o, ok := other.(*Point)
	if !ok || !sameKind(p, o) {
		return false
	}
	if !bitEqual(p.x, o.x) || !bitEqual(p.y, o.y) {
		return false
	}
	if p.hasZ && !bitEqual(p.z, o.z) {
		return false
	}
	if p.hasM && !bitEqual(p.m, o.m) {
		return false
	}
	return true
}

// bitEqual compares two float64s by their raw bits, so that two NaNs
// produced by the same encode/decode round trip compare equal even
// though NaN != NaN under IEEE-754 equality.
func bitEqual(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
