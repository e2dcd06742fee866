// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package wkb

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/geowkb/geowkb/pkg/geo"
	"github.com/geowkb/geowkb/pkg/geo/geoerror"
	"github.com/geowkb/geowkb/pkg/geo/geopb"
)

func TestReadGeometryMalformedByteOrder(t *testing.T) {
	_, err := ReadGeometry([]byte{0x07}, geopb.LittleEndian, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, geoerror.ErrMalformedHeader))
}

func TestReadGeometryUnknownTypeCode(t *testing.T) {
	w := NewByteWriter(geopb.LittleEndian)
	w.WriteByteOrder()
	w.WriteUInt32(999999)
	_, err := ReadGeometry(w.Bytes(), geopb.LittleEndian, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, geoerror.ErrUnknownTypeCode))
}

func TestReadGeometryTruncated(t *testing.T) {
	ls := geo.NewLineString(false, false)
	require.NoError(t, ls.AddPoint(geo.NewPoint2D(1, 2)))
	require.NoError(t, ls.AddPoint(geo.NewPoint2D(3, 4)))
	buf, err := WriteGeometry(ls, geopb.LittleEndian)
	require.NoError(t, err)

	_, err = ReadGeometry(buf[:len(buf)-3], geopb.LittleEndian, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, geoerror.ErrTruncated))
}

func TestReadGeometryMultiPointRejectsNonPointChild(t *testing.T) {
	ls := geo.NewLineString(false, false)
	require.NoError(t, ls.AddPoint(geo.NewPoint2D(0, 0)))
	require.NoError(t, ls.AddPoint(geo.NewPoint2D(1, 1)))

	w := NewByteWriter(geopb.LittleEndian)
	w.WriteByteOrder()
	w.WriteUInt32(uint32(geopb.MultiPoint))
	w.WriteUInt32(1)
	require.NoError(t, writeRecord(w, ls))

	_, err := ReadGeometry(w.Bytes(), geopb.LittleEndian, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, geoerror.ErrInvalidChildType))
}

func TestReadGeometryCompoundCurveRejectsPolygonChild(t *testing.T) {
	ring := geo.NewLineString(false, false)
	require.NoError(t, ring.AddPoint(geo.NewPoint2D(0, 0)))
	require.NoError(t, ring.AddPoint(geo.NewPoint2D(1, 0)))
	require.NoError(t, ring.AddPoint(geo.NewPoint2D(0, 1)))
	require.NoError(t, ring.AddPoint(geo.NewPoint2D(0, 0)))
	poly := geo.NewPolygon(false, false)
	require.NoError(t, poly.AddRing(ring))

	w := NewByteWriter(geopb.LittleEndian)
	w.WriteByteOrder()
	w.WriteUInt32(uint32(geopb.CompoundCurve))
	w.WriteUInt32(1)
	require.NoError(t, writeRecord(w, poly))

	_, err := ReadGeometry(w.Bytes(), geopb.LittleEndian, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, geoerror.ErrInvalidChildType))
}

func TestReadGeometryMaxNestingDepthExceeded(t *testing.T) {
	w := NewByteWriter(geopb.LittleEndian)
	for i := 0; i <= maxNestingDepth+1; i++ {
		w.WriteByteOrder()
		w.WriteUInt32(uint32(geopb.MultiLineString))
		w.WriteUInt32(1)
	}
	// maxNestingDepth+2 headers are written; the depth guard trips when the
	// record at depth maxNestingDepth+1 is reached, before its header is
	// read, so the missing innermost payload is never reached.
	_, err := ReadGeometry(w.Bytes(), geopb.LittleEndian, nil)
	require.Error(t, err)
}

func TestReadGeometryPerRecordByteOrderIndependence(t *testing.T) {
	// Outer record big-endian, inner child little-endian: the reader
	// must switch orders mid-stream purely from each record's own byte.
	inner := geo.NewPoint2D(7, 8)
	w := NewByteWriter(geopb.BigEndian)
	w.WriteByteOrder()
	w.WriteUInt32(uint32(geopb.MultiPoint))
	w.WriteUInt32(1)

	childW := NewByteWriter(geopb.LittleEndian)
	require.NoError(t, writeRecord(childW, inner))
	w.buf = append(w.buf, childW.Bytes()...)

	got, err := ReadGeometry(w.Bytes(), geopb.BigEndian, nil)
	require.NoError(t, err)
	mp, ok := got.(*geo.MultiPoint)
	require.True(t, ok)
	require.Equal(t, 1, mp.NumGeometries())
	require.True(t, inner.Equal(mp.GeometryN(0)))
}

func TestReadGeometryEmptyContainerNotFilteredIsNotNil(t *testing.T) {
	ls := geo.NewLineString(false, false)
	buf, err := WriteGeometry(ls, geopb.LittleEndian)
	require.NoError(t, err)

	got, err := ReadGeometry(buf, geopb.LittleEndian, nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.IsEmpty())
}
