// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package wkb

import (
	"encoding/binary"
	"math"

	"github.com/geowkb/geowkb/pkg/geo/geopb"
)

// ByteWriter is a growable binary writer under a fixed byte order chosen
// by the caller at construction.
type ByteWriter struct {
	buf   []byte
	order geopb.ByteOrder
}

// NewByteWriter returns a writer that encodes every multibyte value
// using order.
func NewByteWriter(order geopb.ByteOrder) *ByteWriter {
	return &ByteWriter{order: order}
}

// ByteOrder returns the order this writer encodes with.
func (w *ByteWriter) ByteOrder() geopb.ByteOrder { return w.order }

func (w *ByteWriter) binaryOrder() binary.ByteOrder {
	if w.order == geopb.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// WriteByte appends a single byte.
func (w *ByteWriter) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

// WriteByteOrder appends this writer's byte-order marker byte.
func (w *ByteWriter) WriteByteOrder() {
	w.WriteByte(byte(w.order))
}

// WriteUInt32 appends an unsigned 32-bit integer in this writer's byte
// order.
func (w *ByteWriter) WriteUInt32(v uint32) {
	var tmp [4]byte
	w.binaryOrder().PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteInt32 appends a signed 32-bit integer in this writer's byte order.
func (w *ByteWriter) WriteInt32(v int32) {
	w.WriteUInt32(uint32(v))
}

// WriteDouble appends an IEEE-754 binary64 in this writer's byte order.
func (w *ByteWriter) WriteDouble(v float64) {
	var tmp [8]byte
	w.binaryOrder().PutUint64(tmp[:], math.Float64bits(v))
	w.buf = append(w.buf, tmp[:]...)
}

// Bytes returns the accumulated output.
func (w *ByteWriter) Bytes() []byte { return w.buf }
