// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package wkb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointFilterAccept(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	testCases := []struct {
		desc   string
		filter *PointFilter
		x, y   float64
		accept bool
	}{
		{"nil filter accepts everything", nil, nan, inf, true},
		{"finite rejects NaN", &PointFilter{Kind: Finite}, nan, 0, false},
		{"finite rejects infinite", &PointFilter{Kind: Finite}, inf, 0, false},
		{"finite accepts finite", &PointFilter{Kind: Finite}, 1, 2, true},
		{"finite-and-nan accepts NaN", &PointFilter{Kind: FiniteAndNaN}, nan, 0, true},
		{"finite-and-nan rejects infinite", &PointFilter{Kind: FiniteAndNaN}, inf, 0, false},
		{"finite-and-infinite accepts infinite", &PointFilter{Kind: FiniteAndInfinite}, inf, 0, true},
		{"finite-and-infinite rejects NaN", &PointFilter{Kind: FiniteAndInfinite}, nan, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.accept, tc.filter.Accept(tc.x, tc.y, false, 0, false, 0))
		})
	}
}

func TestPointFilterZMOnlyTestedWhenConfigured(t *testing.T) {
	f := &PointFilter{Kind: Finite}
	// Z is non-finite but FilterZ is false, so it's ignored.
	require.True(t, f.Accept(0, 0, true, math.NaN(), false, 0))

	f.FilterZ = true
	require.False(t, f.Accept(0, 0, true, math.NaN(), false, 0))

	// M absent: not tested even with FilterM set.
	f2 := &PointFilter{Kind: Finite, FilterM: true}
	require.True(t, f2.Accept(0, 0, false, 0, false, math.NaN()))
}
