// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package geo

import "github.com/geowkb/geowkb/pkg/geo/geoerror"

func dimensionMismatch(wantZ, wantM, gotZ, gotM bool) error {
	return geoerror.DimensionMismatchf(
		"geo: expected hasZ=%t hasM=%t, got hasZ=%t hasM=%t", wantZ, wantM, gotZ, gotM)
}

func invalidChildType(container string, child Geometry) error {
	return geoerror.InvalidChildTypef("geo: %s cannot contain a %s child", container, child.Shape())
}
