// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the 2D and 3D camera models of the plotting
// engine: view state (ranges, orbit angles, distance), the view and
// projection matricies derived from it, and the pan / zoom / orbit
// operations driven by pointer input.
//
// Camera state is only ever changed through camera methods, which keep
// related fields consistent and notify registered observers of the
// parameters that changed.
package camera

//go:generate core generate

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrNonFinite is returned (wrapped) when a NaN or infinite value is
// passed to a camera setter.
var ErrNonFinite = errors.New("camera: non-finite value")

// Camera is the interface shared by [Camera2D] and [Camera3D] that the
// render context needs: matricies, viewport and change notification.
type Camera interface {
	// ViewMatrix returns the current view matrix.
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the current projection matrix.
	ProjectionMatrix() mgl64.Mat4

	// Viewport returns the screen size in pixels.
	Viewport() (w, h float64)

	// Position returns the camera position in world coordinates.
	Position() mgl64.Vec3

	// Observe returns the observer table of the camera.
	Observe() *Observers
}

// Params enumerates the camera parameters that observers can watch.
type Params int32 //enums:enum

const (
	RangeX Params = iota
	RangeY
	ScreenSize
	Margins
	MousePos
	Distance
	Azimuth
	Elevation
	Center
	FOV
	Mode
	Clip
)

// Modes are the 3D projection modes.
type Modes int32 //enums:enum -accept-lower

const (
	// Perspective is a standard perspective projection using the field of view.
	Perspective Modes = iota

	// Orthographic is a parallel projection whose extent tracks the distance,
	// so that zooming still changes the apparent scale.
	Orthographic
)

func checkFinite(fun string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("camera.%s: %w: %v", fun, ErrNonFinite, v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
