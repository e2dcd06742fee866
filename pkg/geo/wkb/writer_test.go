// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package wkb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geowkb/geowkb/pkg/geo"
	"github.com/geowkb/geowkb/pkg/geo/geopb"
)

func TestWriteGeometryByteOrderMarker(t *testing.T) {
	p := geo.NewPoint2D(1, 2)

	little, err := WriteGeometry(p, geopb.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, byte(0x01), little[0])

	big, err := WriteGeometry(p, geopb.BigEndian)
	require.NoError(t, err)
	require.Equal(t, byte(0x00), big[0])
}

func TestWriteGeometryCodeForMatchesDimensionality(t *testing.T) {
	p2d := geo.NewPoint2D(0, 0)
	code, err := CodeFor(p2d)
	require.NoError(t, err)
	require.Equal(t, uint32(1), code)

	pzm := geo.NewPointZM(0, 0, 0, 0)
	code, err = CodeFor(pzm)
	require.NoError(t, err)
	require.Equal(t, uint32(3001), code)
}

func TestWriteGeometryExtendedCollectionUsesMultiCurveCode(t *testing.T) {
	seg := geo.NewLineString(false, false)
	require.NoError(t, seg.AddPoint(geo.NewPoint2D(0, 0)))
	require.NoError(t, seg.AddPoint(geo.NewPoint2D(1, 1)))
	gc := geo.NewGeometryCollection(false, false)
	require.NoError(t, gc.AddGeometry(seg))
	require.True(t, gc.IsMultiCurve())

	ext, err := geo.NewExtendedGeometryCollection(gc, geopb.MultiCurve)
	require.NoError(t, err)

	code, err := CodeFor(ext)
	require.NoError(t, err)
	require.Equal(t, uint32(geopb.MultiCurve), code)

	buf, err := WriteGeometry(ext, geopb.LittleEndian)
	require.NoError(t, err)
	r := NewByteReader(buf, geopb.LittleEndian)
	_, err = r.ReadByteOrder()
	require.NoError(t, err)
	gotCode, err := r.ReadUInt32()
	require.NoError(t, err)
	require.Equal(t, uint32(geopb.MultiCurve), gotCode)
}

func TestWriteGeometryEmptyContainers(t *testing.T) {
	for _, g := range []geo.Geometry{
		geo.NewLineString(false, false),
		geo.NewPolygon(false, false),
		geo.NewMultiPoint(false, false),
		geo.NewGeometryCollection(false, false),
	} {
		buf, err := WriteGeometry(g, geopb.LittleEndian)
		require.NoError(t, err)
		got, err := ReadGeometry(buf, geopb.LittleEndian, nil)
		require.NoError(t, err)
		require.True(t, got.IsEmpty())
	}
}

func TestWriteGeometryNestedChildrenShareWriterOrder(t *testing.T) {
	inner := geo.NewLineString(false, false)
	require.NoError(t, inner.AddPoint(geo.NewPoint2D(1, 2)))
	require.NoError(t, inner.AddPoint(geo.NewPoint2D(3, 4)))
	ml := geo.NewMultiLineString(false, false)
	require.NoError(t, ml.AddLineString(inner))

	buf, err := WriteGeometry(ml, geopb.BigEndian)
	require.NoError(t, err)

	// Every record's byte-order marker byte must match the writer's
	// chosen order: 0x00 for the outer record and every nested child.
	r := NewByteReader(buf, geopb.BigEndian)
	order, err := r.ReadByteOrder()
	require.NoError(t, err)
	require.Equal(t, geopb.BigEndian, order)
	_, err = r.ReadUInt32() // type code
	require.NoError(t, err)
	_, err = r.ReadUInt32() // child count
	require.NoError(t, err)
	childOrder, err := r.ReadByteOrder()
	require.NoError(t, err)
	require.Equal(t, geopb.BigEndian, childOrder)
}
