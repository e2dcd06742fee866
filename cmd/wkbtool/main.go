// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

// Command wkbtool decodes and encodes Well-Known Binary geometries from
// the command line. It is fixture-adjacent tooling for exercising the
// codec in pkg/geo/wkb, not a general-purpose GIS client.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
