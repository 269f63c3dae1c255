// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "math"

// DataSource is a plotted series. The engine only reads it
// to compute auto-range bounds and to build vertex data;
// it never owns or mutates the data.
type DataSource interface {
	// DrawBounds returns the bounding box of the drawable data.
	// ok is false if there is nothing to draw.
	DrawBounds() (min, max [2]float64, ok bool)

	// Data returns the x and y values of the series.
	Data() (xs, ys []float64)
}

// XY is a simple [DataSource] backed by two slices of equal length.
type XY struct {
	X, Y []float64
}

// NewXY returns a new XY source from the given slices.
func NewXY(xs, ys []float64) *XY {
	return &XY{X: xs, Y: ys}
}

func (d *XY) Data() (xs, ys []float64) {
	return d.X, d.Y
}

// DrawBounds skips non-finite points.
func (d *XY) DrawBounds() (min, max [2]float64, ok bool) {
	n := min2(len(d.X), len(d.Y))
	min = [2]float64{math.Inf(1), math.Inf(1)}
	max = [2]float64{math.Inf(-1), math.Inf(-1)}
	for i := range n {
		x, y := d.X[i], d.Y[i]
		if !isFinite(x) || !isFinite(y) {
			continue
		}
		min[0] = math.Min(min[0], x)
		min[1] = math.Min(min[1], y)
		max[0] = math.Max(max[0], x)
		max[1] = math.Max(max[1], y)
		ok = true
	}
	return
}

// Range is a closed interval of data values.
type Range struct {
	Min, Max float64
}

// Width returns Max - Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// Center returns the midpoint of the range.
func (r Range) Center() float64 { return 0.5 * (r.Min + r.Max) }

// NonDegenerate returns the range widened so that Min < Max:
// equal endpoints at zero are widened by 0.5 on each side,
// other equal endpoints by 5% of their magnitude.
func (r Range) NonDegenerate() Range {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	if r.Min != r.Max {
		return r
	}
	d := 0.5
	if r.Min != 0 {
		d = math.Abs(r.Min) * 0.05
	}
	return Range{r.Min - d, r.Max + d}
}

// Pad returns the range extended by the given fraction of its width on each side.
func (r Range) Pad(frac float64) Range {
	d := r.Width() * frac
	return Range{r.Min - d, r.Max + d}
}

// AutoRange returns the combined x and y ranges of all sources, padded
// by the given fraction of their width and guaranteed non-degenerate.
// ok is false if no source has any drawable data, in which case
// the unit range is returned for both axes.
func AutoRange(padding float64, sources ...DataSource) (x, y Range, ok bool) {
	x = Range{math.Inf(1), math.Inf(-1)}
	y = x
	for _, src := range sources {
		if src == nil {
			continue
		}
		mn, mx, has := src.DrawBounds()
		if !has {
			continue
		}
		ok = true
		x.Min = math.Min(x.Min, mn[0])
		x.Max = math.Max(x.Max, mx[0])
		y.Min = math.Min(y.Min, mn[1])
		y.Max = math.Max(y.Max, mx[1])
	}
	if !ok {
		return Range{0, 1}, Range{0, 1}, false
	}
	x = x.Pad(padding).NonDegenerate()
	y = y.Pad(padding).NonDegenerate()
	return x, y, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}
