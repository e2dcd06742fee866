// Copyright 2024 The GeoWKB Authors.
//
// Use of this software is governed by the Apache License, Version 2.0.
// See the LICENSE file for details.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/geowkb/geowkb/pkg/geo/geopb"
	"github.com/geowkb/geowkb/pkg/geo/wkb"
)

var decodeFlags struct {
	hexInput string
	file     string
	order    string
	filter   string
	filterZ  bool
	filterM  bool
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a WKB record and print its structure",
	Args:  cobra.NoArgs,
	RunE:  runDecode,
}

func init() {
	f := decodeCmd.Flags()
	f.StringVar(&decodeFlags.hexInput, "hex", "", "hex-encoded WKB record")
	f.StringVar(&decodeFlags.file, "file", "", "path to a file containing raw WKB bytes")
	f.StringVar(&decodeFlags.order, "order", "little", "default byte order for the outer marker byte: big|little")
	f.StringVar(&decodeFlags.filter, "filter", "", "point finite filter: finite|finite-nan|finite-inf (default: no filter)")
	f.BoolVar(&decodeFlags.filterZ, "filter-z", false, "also apply the filter to the Z ordinate")
	f.BoolVar(&decodeFlags.filterM, "filter-m", false, "also apply the filter to the M ordinate")
}

func runDecode(cmd *cobra.Command, args []string) error {
	buf, err := readDecodeInput()
	if err != nil {
		return err
	}
	order, err := parseByteOrder(decodeFlags.order)
	if err != nil {
		return err
	}
	filter, err := parsePointFilter(decodeFlags.filter, decodeFlags.filterZ, decodeFlags.filterM)
	if err != nil {
		return err
	}
	g, err := wkb.ReadGeometry(buf, order, filter)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	if g == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "<filtered: nothing survived>")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), dumpGeometry(g, 0))
	return nil
}

func readDecodeInput() ([]byte, error) {
	switch {
	case decodeFlags.hexInput != "":
		buf, err := hex.DecodeString(strings.TrimSpace(decodeFlags.hexInput))
		if err != nil {
			return nil, errors.Wrap(err, "decoding --hex")
		}
		return buf, nil
	case decodeFlags.file != "":
		buf, err := os.ReadFile(decodeFlags.file)
		if err != nil {
			return nil, errors.Wrap(err, "reading --file")
		}
		return buf, nil
	default:
		return nil, errors.New("one of --hex or --file is required")
	}
}

func parseByteOrder(s string) (geopb.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "big":
		return geopb.BigEndian, nil
	case "little":
		return geopb.LittleEndian, nil
	default:
		return 0, errors.Newf("unknown --order %q, want big or little", s)
	}
}

func parsePointFilter(kind string, filterZ, filterM bool) (*wkb.PointFilter, error) {
	if kind == "" {
		return nil, nil
	}
	var fk wkb.FilterKind
	switch kind {
	case "finite":
		fk = wkb.Finite
	case "finite-nan":
		fk = wkb.FiniteAndNaN
	case "finite-inf":
		fk = wkb.FiniteAndInfinite
	default:
		return nil, errors.Newf("unknown --filter %q, want finite, finite-nan, or finite-inf", kind)
	}
	return &wkb.PointFilter{Kind: fk, FilterZ: filterZ, FilterM: filterM}, nil
}
