// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

//go:generate core generate

// Modes are the interaction modes of a [Dispatcher]. Each mode is a
// complete set of bound handlers, swapped as a whole by [Dispatcher.SetMode].
type Modes int32 //enums:enum

const (
	// ZoomMode pans (2D) or orbits (3D) with the left button, draws a
	// zoom box (2D) or moves the center (3D) with the right button,
	// and zooms with the wheel.
	ZoomMode Modes = iota

	// MeasureMode measures the distance between the press and release
	// points of a left drag. The right button pans or orbits.
	MeasureMode

	// EditMode selects the node under the pointer on a left press.
	// The right button pans or orbits.
	EditMode
)

// States are the states of the drag state machine.
// Every release returns to Idle.
type States int32 //enums:enum

const (
	Idle States = iota
	Panning
	BoxSelecting
	Orbiting
	Measuring
)
