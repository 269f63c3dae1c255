// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/sciplot/core/plot"
	"github.com/spf13/cobra"
)

func newTicksCommand() *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "ticks MIN MAX SIZE",
		Short: "Print the ticks of a data range laid out over SIZE pixels",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var vals [3]float64
			for i, a := range args {
				f, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("ticks: argument %d: %w", i+1, err)
				}
				vals[i] = f
			}
			ts, err := plot.ComputeTicks(vals[0], vals[1], vals[2])
			if err != nil {
				return err
			}
			return printTicks(cmd.OutOrStdout(), ts, decimals)
		},
	}
	cmd.Flags().IntVar(&decimals, "decimals", 3, "decimals of the SI formatted values")
	return cmd
}

// ANSI colors of the printed tick table.
const (
	warnColor    = "3"
	valueColor   = "4"
	successColor = "2"
	titleColor   = "6"
)

// printTicks writes one line per tick, followed by the spacing and prefix.
// Colors are only used when w is a color terminal.
func printTicks(w io.Writer, ts plot.TickSet, decimals int) error {
	out := termenv.NewOutput(w)
	color := func(clr, str string) string {
		return out.String(str).Foreground(out.Color(clr)).String()
	}
	if ts.IsEmpty() {
		fmt.Fprintln(w, color(warnColor, "no ticks: empty range"))
		return nil
	}
	fmt.Fprintln(w, out.String(fmt.Sprintf("%d ticks", ts.Len())).Foreground(out.Color(titleColor)).Bold())
	for i, lbl := range ts.Labels() {
		si, err := plot.FormatSI(ts.Values[i], decimals)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-12s %-14s %s\n", lbl, color(valueColor, si), strconv.FormatFloat(ts.Values[i], 'g', -1, 64))
	}
	fmt.Fprintf(w, "%s %g\n", color(successColor, "spacing:"), ts.Spacing)
	fmt.Fprintf(w, "%s %q (scale %g)\n", color(successColor, "prefix:"), ts.SIPrefix, ts.SIScale)
	return nil
}
