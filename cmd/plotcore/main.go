// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotcore exercises the plotting engine from the command line:
// tick computation, scripted interaction replay and an interactive
// window.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/core/base/logx"
	"github.com/sciplot/core/config"
	"github.com/sciplot/core/interact"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// settings are the loaded settings, set before any command runs.
var settings *config.Settings

func main() {
	var (
		vv, v, q  bool
		files     []string
		mode      string
		zoomRatio float64
	)

	var rootCmd = &cobra.Command{
		Use:     "plotcore",
		Short:   "plotcore - interactive scientific plotting engine",
		Long:    `plotcore computes axis ticks, replays scripted pointer sequences against the 2D and 3D cameras, and opens an interactive plot window.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()

			s, err := config.New(files...)
			if err != nil {
				return err
			}
			var patch config.Settings
			if cmd.Flags().Changed("mode") {
				if err := patch.Interact.Mode.SetString(mode); err != nil {
					return err
				}
				// ZoomMode is the zero value, which Overlay ignores
				s.Interact.Mode = patch.Interact.Mode
			}
			if cmd.Flags().Changed("zoom-ratio") {
				patch.Interact.ZoomRatio = zoomRatio
			}
			if err := config.Overlay(s, &patch); err != nil {
				return err
			}
			settings = s
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "very verbose: debug logging")
	pf.BoolVarP(&v, "verbose", "v", false, "verbose: info logging")
	pf.BoolVarP(&q, "quiet", "q", false, "quiet: errors only")
	pf.StringSliceVar(&files, "settings", nil, "settings files (.toml or .yaml), applied in order")
	pf.StringVar(&mode, "mode", interact.ZoomMode.String(), "interaction mode: ZoomMode, MeasureMode or EditMode")
	pf.Float64Var(&zoomRatio, "zoom-ratio", 0.999, "zoom ratio base per wheel delta unit")

	rootCmd.AddCommand(newTicksCommand())
	rootCmd.AddCommand(newReplayCommand())
	rootCmd.AddCommand(newViewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
