// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import "github.com/sciplot/core/scene"

// Settings are the user-level options of a [Dispatcher].
type Settings struct {

	// Mode is the initial interaction mode.
	Mode Modes `default:"ZoomMode" toml:"mode" yaml:"mode"`

	// ZoomRatio is the zoom ratio base per wheel delta unit.
	ZoomRatio float64 `default:"0.999" toml:"zoom_ratio" yaml:"zoom_ratio"`

	// WheelStep is the wheel delta of one scroll step.
	WheelStep float64 `default:"120" toml:"wheel_step" yaml:"wheel_step"`

	// Pointer is the style of the pointer overlay.
	Pointer scene.PointerStyles `default:"Crosshair" toml:"pointer" yaml:"pointer"`

	// Hover picks the node under the pointer on every move.
	Hover bool `default:"true" toml:"hover" yaml:"hover"`
}

// Defaults sets the default values.
func (s *Settings) Defaults() {
	s.Mode = ZoomMode
	s.ZoomRatio = 0.999
	s.WheelStep = 120
	s.Pointer = scene.Crosshair
	s.Hover = true
}
