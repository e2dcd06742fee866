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

func TestPointEqual(t *testing.T) {
	testCases := []struct {
		desc  string
		a, b  *Point
		equal bool
	}{
		{"same 2D point", NewPoint2D(1, 2), NewPoint2D(1, 2), true},
		{"different x", NewPoint2D(1, 2), NewPoint2D(3, 2), false},
		{"2D vs Z differ in dimensionality", NewPoint2D(1, 2), NewPointZ(1, 2, 3), false},
		{"same ZM point", NewPointZM(1, 2, 3, 4), NewPointZM(1, 2, 3, 4), true},
		{"ZM differs only in m", NewPointZM(1, 2, 3, 4), NewPointZM(1, 2, 3, 5), false},
		{"NaN compares equal to itself", NewPoint2D(math.NaN(), 0), NewPoint2D(math.NaN(), 0), true},
		{"+Inf vs -Inf differ", NewPoint2D(math.Inf(1), 0), NewPoint2D(math.Inf(-1), 0), false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.equal, tc.a.Equal(tc.b))
		})
	}
}

func TestPointIsEmptyAlwaysFalse(t *testing.T) {
	require.False(t, NewPoint2D(0, 0).IsEmpty())
	require.False(t, NewPointZM(0, 0, 0, 0).IsEmpty())
}

func TestPointAccessors(t *testing.T) {
	p := NewPointZM(1, 2, 3, 4)
	require.Equal(t, 1.0, p.X())
	require.Equal(t, 2.0, p.Y())
	require.Equal(t, 3.0, p.Z())
	require.Equal(t, 4.0, p.M())
	require.True(t, p.HasZ())
	require.True(t, p.HasM())
	require.Equal(t, "Point", p.Shape().String())
}
