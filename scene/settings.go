// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "image/color"

// Settings are the user settings of a [Context].
type Settings struct {

	// Background is the color the frame is cleared to.
	Background color.RGBA `toml:"background" yaml:"background"`

	// PickRadius is the distance in pixels within which lines are picked.
	PickRadius float64 `toml:"pick_radius" yaml:"pick_radius" default:"5" min:"0"`
}

// Defaults sets the default settings: a white background.
func (s *Settings) Defaults() {
	s.Background = color.RGBA{255, 255, 255, 255}
	s.PickRadius = 5
}
