// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

// Package wkb implements the Well-Known Binary codec (OGC SFS 1.2.1 /
// ISO 19125): recursive tree reader and writer, the geometry type code
// scheme, and a read-time point finite filter. The codec is strictly
// synchronous and holds no state beyond the buffer it was given; two
// goroutines may encode or decode independent geometries concurrently
// without coordination.
package wkb

import (
	"encoding/binary"
	"math"

	"github.com/geowkb/geowkb/pkg/geo/geoerror"
	"github.com/geowkb/geowkb/pkg/geo/geopb"
)

// ByteReader is a cursor-backed binary reader over an immutable byte
// buffer. It carries a default byte order, which a record header can
// override for the remainder of that record via SetByteOrder.
type ByteReader struct {
	buf   []byte
	pos   int
	order geopb.ByteOrder
}

// NewByteReader wraps buf, reading multibyte values in order until
// SetByteOrder changes it.
func NewByteReader(buf []byte, order geopb.ByteOrder) *ByteReader {
	return &ByteReader{buf: buf, order: order}
}

// ByteOrder returns the order currently used for multibyte reads.
func (r *ByteReader) ByteOrder() geopb.ByteOrder { return r.order }

// SetByteOrder changes the order used for subsequent multibyte reads.
func (r *ByteReader) SetByteOrder(order geopb.ByteOrder) { r.order = order }

// Remaining returns the number of unread bytes.
func (r *ByteReader) Remaining() int { return len(r.buf) - r.pos }

func (r *ByteReader) require(n int) error {
	if r.Remaining() < n {
		return geoerror.Truncatedf(
			"wkb: need %d bytes, have %d at offset %d", n, r.Remaining(), r.pos)
	}
	return nil
}

func (r *ByteReader) binaryOrder() binary.ByteOrder {
	if r.order == geopb.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ReadByte reads one byte. Endianness is irrelevant for a single byte.
func (r *ByteReader) ReadByte() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadByteOrder reads the WKB byte-order marker byte and validates it,
// returning geoerror.ErrMalformedHeader for any value other than 0x00 or
// 0x01.
func (r *ByteReader) ReadByteOrder() (geopb.ByteOrder, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, geoerror.MalformedHeaderf("wkb: %s", err)
	}
	order := geopb.ByteOrder(b)
	if !order.Valid() {
		return 0, geoerror.MalformedHeaderf("wkb: invalid byte-order marker %#x", b)
	}
	return order, nil
}

// ReadUInt32 reads an unsigned 32-bit integer honoring the current byte
// order.
func (r *ByteReader) ReadUInt32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := r.binaryOrder().Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// ReadInt32 reads a signed 32-bit integer honoring the current byte
// order.
func (r *ByteReader) ReadInt32() (int32, error) {
	v, err := r.ReadUInt32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadDouble reads an IEEE-754 binary64 honoring the current byte order.
func (r *ByteReader) ReadDouble() (float64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	bits := r.binaryOrder().Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return math.Float64frombits(bits), nil
}
