// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "log/slog"

// Axis represents one data dimension laid out over a number of pixels.
// It owns the current [TickSet] for that dimension and recomputes it
// only when the range or pixel size actually changes, replacing the
// whole set at once so that readers never see a partially updated one.
type Axis struct {
	// Name is used for logging.
	Name string

	min, max float64
	sizePx   float64
	ticks    TickSet
	valid    bool
}

// NewAxis returns a new axis with the given name and initial range and size.
func NewAxis(name string, min, max, sizePx float64) (*Axis, error) {
	ax := &Axis{Name: name}
	if err := ax.Set(min, max, sizePx); err != nil {
		return nil, err
	}
	return ax, nil
}

// Range returns the current range of the axis.
func (ax *Axis) Range() (min, max float64) {
	return ax.min, ax.max
}

// Size returns the current pixel size of the axis.
func (ax *Axis) Size() float64 {
	return ax.sizePx
}

// Set sets the range and pixel size, recomputing the ticks if either changed.
// On error the previous ticks are retained.
func (ax *Axis) Set(min, max, sizePx float64) error {
	if ax.valid && min == ax.min && max == ax.max && sizePx == ax.sizePx {
		return nil
	}
	ts, err := ComputeTicks(min, max, sizePx)
	if err != nil {
		return err
	}
	ax.min, ax.max, ax.sizePx = min, max, sizePx
	ax.ticks = ts
	ax.valid = true
	slog.Debug("plot.Axis: ticks updated", "axis", ax.Name, "n", ts.Len(), "spacing", ts.Spacing)
	return nil
}

// SetRange sets the range, keeping the pixel size.
func (ax *Axis) SetRange(min, max float64) error {
	return ax.Set(min, max, ax.sizePx)
}

// SetSize sets the pixel size, keeping the range.
func (ax *Axis) SetSize(sizePx float64) error {
	return ax.Set(ax.min, ax.max, sizePx)
}

// Ticks returns the current tick set. The returned value must be
// treated as read-only; it is replaced, never modified, on update.
func (ax *Axis) Ticks() TickSet {
	return ax.ticks
}

// ToPixels maps a data value to a pixel offset along the axis,
// with 0 at min. It returns 0 for a degenerate range.
func (ax *Axis) ToPixels(v float64) float64 {
	w := ax.max - ax.min
	if w == 0 {
		return 0
	}
	return (v - ax.min) / w * ax.sizePx
}
