// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

// Package geoerror defines the closed set of error kinds the WKB codec can
// return. Callers distinguish them with errors.Is; the filter's drop-to-nil
// behavior and malformed coordinates (NaN, ±Inf) are deliberately not part
// of this set — they are not errors.
package geoerror

import "github.com/cockroachdb/errors"

// The closed set of error kinds the codec can surface.
var (
	// ErrMalformedHeader is returned when a byte-order byte is not 0x00 or
	// 0x01, or the buffer ends before the byte-order byte. A buffer that
	// ends inside the type code yields ErrTruncated instead.
	ErrMalformedHeader = errors.New("geowkb: malformed header")

	// ErrUnknownTypeCode is returned when a decoded base type code is
	// outside the enumerated ShapeType set.
	ErrUnknownTypeCode = errors.New("geowkb: unknown type code")

	// ErrTruncated is returned when a read would advance past the end of
	// the input buffer.
	ErrTruncated = errors.New("geowkb: truncated input")

	// ErrInvalidChildType is returned when a typed container receives a
	// child whose decoded tag is not permitted for that container.
	ErrInvalidChildType = errors.New("geowkb: invalid child type")

	// ErrDimensionMismatch is returned by pkg/geo's Add* builder methods
	// when a child disagrees on hasZ/hasM with its container, and so by
	// the reader when a decoded child record disagrees with its parent.
	// The writer does not check dimensions.
	ErrDimensionMismatch = errors.New("geowkb: dimension mismatch")
)

// Truncatedf wraps ErrTruncated with additional context.
func Truncatedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrTruncated, format, args...)
}

// MalformedHeaderf wraps ErrMalformedHeader with additional context.
func MalformedHeaderf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedHeader, format, args...)
}

// UnknownTypeCodef wraps ErrUnknownTypeCode with additional context.
func UnknownTypeCodef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnknownTypeCode, format, args...)
}

// InvalidChildTypef wraps ErrInvalidChildType with additional context.
func InvalidChildTypef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidChildType, format, args...)
}

// DimensionMismatchf wraps ErrDimensionMismatch with additional context.
func DimensionMismatchf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDimensionMismatch, format, args...)
}
