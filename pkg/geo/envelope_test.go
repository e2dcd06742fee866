// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelopeOfPoint(t *testing.T) {
	e := EnvelopeOf(NewPoint2D(3, 4))
	require.NotNil(t, e)
	require.Equal(t, 3.0, e.Planar.X.Lo)
	require.Equal(t, 3.0, e.Planar.X.Hi)
	require.Equal(t, 4.0, e.Planar.Y.Lo)
	require.Equal(t, 4.0, e.Planar.Y.Hi)
	require.False(t, e.HasZ())
	require.False(t, e.HasM())
}

func TestEnvelopeOfLineString(t *testing.T) {
	ls := NewLineString(false, false)
	require.NoError(t, ls.AddPoint(NewPoint2D(0, 5)))
	require.NoError(t, ls.AddPoint(NewPoint2D(10, -5)))

	e := EnvelopeOf(ls)
	require.NotNil(t, e)
	require.Equal(t, 0.0, e.Planar.X.Lo)
	require.Equal(t, 10.0, e.Planar.X.Hi)
	require.Equal(t, -5.0, e.Planar.Y.Lo)
	require.Equal(t, 5.0, e.Planar.Y.Hi)
}

func TestEnvelopeOfEmptyGeometryIsNil(t *testing.T) {
	require.Nil(t, EnvelopeOf(NewLineString(false, false)))
	require.Nil(t, EnvelopeOf(NewGeometryCollection(false, false)))
}

func TestEnvelopeSkipsNaN(t *testing.T) {
	ls := NewLineString(false, false)
	require.NoError(t, ls.AddPoint(NewPoint2D(math.NaN(), 1)))
	require.NoError(t, ls.AddPoint(NewPoint2D(2, math.NaN())))

	e := EnvelopeOf(ls)
	require.NotNil(t, e)
	require.Equal(t, 2.0, e.Planar.X.Lo)
	require.Equal(t, 2.0, e.Planar.X.Hi)
	require.Equal(t, 1.0, e.Planar.Y.Lo)
	require.Equal(t, 1.0, e.Planar.Y.Hi)
}

func TestEnvelopeOfZM(t *testing.T) {
	ls := NewLineString(true, true)
	require.NoError(t, ls.AddPoint(NewPointZM(0, 0, 1, 10)))
	require.NoError(t, ls.AddPoint(NewPointZM(1, 1, 5, 20)))

	e := EnvelopeOf(ls)
	require.NotNil(t, e)
	require.True(t, e.HasZ())
	require.True(t, e.HasM())
	require.Equal(t, 1.0, e.Z.Lo)
	require.Equal(t, 5.0, e.Z.Hi)
	require.Equal(t, 10.0, e.M.Lo)
	require.Equal(t, 20.0, e.M.Hi)
}

func TestEnvelopeOfNestedCollection(t *testing.T) {
	gc := NewGeometryCollection(false, false)
	require.NoError(t, gc.AddGeometry(NewPoint2D(-1, -1)))
	require.NoError(t, gc.AddGeometry(NewPoint2D(1, 1)))

	e := EnvelopeOf(gc)
	require.NotNil(t, e)
	require.Equal(t, -1.0, e.Planar.X.Lo)
	require.Equal(t, 1.0, e.Planar.X.Hi)
}

func TestEnvelopeEqual(t *testing.T) {
	a := EnvelopeOf(NewPoint2D(1, 2))
	b := EnvelopeOf(NewPoint2D(1, 2))
	require.True(t, a.Equal(b))

	c := EnvelopeOf(NewPoint2D(9, 9))
	require.False(t, a.Equal(c))

	var nilEnv *Envelope
	require.True(t, nilEnv.Equal(nil))
	require.False(t, a.Equal(nil))
}
