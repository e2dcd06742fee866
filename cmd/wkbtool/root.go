// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wkbtool",
	Short: "Inspect and build Well-Known Binary geometries",
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
}
