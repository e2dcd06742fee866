// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geowkb/geowkb/pkg/geo"
	"github.com/geowkb/geowkb/pkg/geo/wkb"
)

var encodeFlags struct {
	order string
	x, y  float64
	z, m  float64
	hasZ  bool
	hasM  bool
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a single point as WKB hex",
	Args:  cobra.NoArgs,
	RunE:  runEncode,
}

func init() {
	f := encodeCmd.Flags()
	f.StringVar(&encodeFlags.order, "order", "little", "byte order to encode with: big|little")
	f.Float64Var(&encodeFlags.x, "x", 0, "x ordinate")
	f.Float64Var(&encodeFlags.y, "y", 0, "y ordinate")
	f.Float64Var(&encodeFlags.z, "z", 0, "z ordinate, requires --has-z")
	f.Float64Var(&encodeFlags.m, "m", 0, "m ordinate, requires --has-m")
	f.BoolVar(&encodeFlags.hasZ, "has-z", false, "include the z ordinate")
	f.BoolVar(&encodeFlags.hasM, "has-m", false, "include the m ordinate")
}

func runEncode(cmd *cobra.Command, args []string) error {
	order, err := parseByteOrder(encodeFlags.order)
	if err != nil {
		return err
	}
	var p *geo.Point
	switch {
	case encodeFlags.hasZ && encodeFlags.hasM:
		p = geo.NewPointZM(encodeFlags.x, encodeFlags.y, encodeFlags.z, encodeFlags.m)
	case encodeFlags.hasZ:
		p = geo.NewPointZ(encodeFlags.x, encodeFlags.y, encodeFlags.z)
	case encodeFlags.hasM:
		p = geo.NewPointM(encodeFlags.x, encodeFlags.y, encodeFlags.m)
	default:
		p = geo.NewPoint2D(encodeFlags.x, encodeFlags.y)
	}
	buf, err := wkb.WriteGeometry(p, order)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
	return nil
}
