// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sciplot/core/camera"
	"github.com/sciplot/core/config"
	"github.com/sciplot/core/events"
	"github.com/sciplot/core/gpu"
	"github.com/sciplot/core/gpu/headless"
	"github.com/sciplot/core/interact"
	"github.com/sciplot/core/scene"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// script is a scripted pointer sequence, read from a YAML file.
type script struct {

	// Size is the screen size in pixels.
	Size []float64 `yaml:"size"`

	// RangeX and RangeY are the initial data ranges of a 2D camera.
	RangeX []float64 `yaml:"range_x"`
	RangeY []float64 `yaml:"range_y"`

	Events []*events.Mouse `yaml:"events"`
}

func newReplayCommand() *cobra.Command {
	var in3D bool

	cmd := &cobra.Command{
		Use:   "replay FILE.yaml",
		Short: "Replay a scripted pointer sequence and print the camera state",
		Long: `Reads a YAML script with the screen size, the initial ranges and a list of
pointer events, dispatches the events in order against a 2D (or, with --3d,
a 3D) camera on a headless device, and prints the final camera state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := readScript(args[0])
			if err != nil {
				return err
			}
			st, err := replay(settings, sc, in3D)
			if err != nil {
				return err
			}
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(st)
		},
	}
	cmd.Flags().BoolVar(&in3D, "3d", false, "use a 3D orbit camera")
	return cmd
}

// readScript reads a script, rejecting unknown keys.
func readScript(filename string) (*script, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeScript(f)
}

func decodeScript(r io.Reader) (*script, error) {
	sc := &script{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if len(sc.Size) != 2 {
		return nil, fmt.Errorf("replay: size must have 2 values, got %d", len(sc.Size))
	}
	return sc, nil
}

// replay runs the script and returns the final camera state,
// a [camera.State2D] or a [camera.State3D].
func replay(s *config.Settings, sc *script, in3D bool) (any, error) {
	var cam camera.Camera
	if in3D {
		c3 := camera.NewCamera3D(s.Camera3D)
		c3.SetScreenSize(sc.Size[0], sc.Size[1])
		cam = c3
	} else {
		c2 := camera.NewCamera2D(s.Camera2D)
		if len(sc.RangeX) == 2 && len(sc.RangeY) == 2 {
			if err := c2.SetRange([2]float64{sc.RangeX[0], sc.RangeX[1]}, [2]float64{sc.RangeY[0], sc.RangeY[1]}); err != nil {
				return nil, err
			}
		}
		c2.SetScreenSize(sc.Size[0], sc.Size[1])
		cam = c2
	}
	dev := headless.NewDevice()
	ctx := scene.NewContext(dev, gpu.Builtin(), cam, s.Scene)
	defer ctx.Release()
	d, err := interact.NewDispatcher(ctx, s.Interact)
	if err != nil {
		return nil, err
	}
	if err := d.Replay(sc.Events...); err != nil {
		return nil, err
	}
	slog.Info("replay: done", "events", len(sc.Events), "frames", ctx.Frames(), "draws", len(dev.Draws))
	switch c := cam.(type) {
	case *camera.Camera2D:
		return c.State(), nil
	case *camera.Camera3D:
		return c.State(), nil
	}
	return nil, nil
}
