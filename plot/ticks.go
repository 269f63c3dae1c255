// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"strconv"
)

// niceMultipliers are the candidate spacing multipliers, applied to the
// power of ten just below the optimal spacing. They produce the 1-2-5
// family of human readable spacings.
var niceMultipliers = []float64{1, 2, 5, 10, 20, 50, 100}

// minTickCount is the lower bound on the number of ticks targeted
// for any axis, regardless of its pixel size.
const minTickCount = 6

// TickSet is the result of a tick computation for one axis.
// It is never modified in place: a new TickSet replaces the
// old one whenever the range or pixel size changes.
type TickSet struct {
	// Values are the tick positions, in ascending order.
	Values []float64

	// Spacing is the distance between adjacent ticks.
	Spacing float64

	// SIScale is the multiplier that brings the axis magnitude into [1, 1000).
	SIScale float64

	// SIPrefix is the metric prefix corresponding to SIScale.
	SIPrefix string
}

// IsEmpty returns true if there are no ticks.
func (ts TickSet) IsEmpty() bool {
	return len(ts.Values) == 0
}

// Len returns the number of ticks.
func (ts TickSet) Len() int {
	return len(ts.Values)
}

// ComputeTicks returns the ticks for the given data range
// laid out over sizePx pixels. The range may be given in either order.
// An empty TickSet is returned for dMin == dMax. Non-finite
// inputs return an error wrapping [ErrNonFinite].
func ComputeTicks(dMin, dMax, sizePx float64) (TickSet, error) {
	if err := checkFinite("ComputeTicks", dMin, dMax, sizePx); err != nil {
		return TickSet{}, err
	}
	if dMin > dMax {
		dMin, dMax = dMax, dMin
	}
	if dMin == dMax {
		return TickSet{SIScale: 1}, nil
	}
	rng := dMax - dMin
	target := math.Max(minTickCount, math.Log(math.Max(sizePx, 1e-8)))
	spacing := NiceSpacing(rng / target)
	if spacing == 0 || math.IsInf(rng/spacing, 0) {
		return TickSet{SIScale: 1}, nil
	}

	ts := TickSet{Spacing: spacing}
	tol := spacing * 0.01
	first := math.Ceil((dMin - tol) / spacing)
	n := int(math.Floor((dMax+tol)/spacing)-first) + 1
	if n < 0 {
		n = 0
	}
	ts.Values = make([]float64, 0, n)
	for i := range n {
		v := (first + float64(i)) * spacing
		if math.Abs(v) < spacing*1e-9 {
			v = 0 // avoid -0 and rounding residue at the origin
		}
		// spacings below the float resolution of the range
		// round adjacent ticks to the same value
		if len(ts.Values) > 0 && v <= ts.Values[len(ts.Values)-1] {
			continue
		}
		ts.Values = append(ts.Values, v)
	}

	mag := math.Max(math.Abs(dMin), math.Abs(dMax))
	scale, prefix, err := SIScale(mag)
	if err != nil {
		return TickSet{}, err
	}
	ts.SIScale = scale
	ts.SIPrefix = prefix
	return ts, nil
}

// NiceSpacing returns the largest spacing from the 1-2-5 family
// that does not exceed the given optimal spacing.
// It returns 0 for non-positive input.
func NiceSpacing(optimal float64) float64 {
	if !(optimal > 0) || math.IsInf(optimal, 0) {
		return 0
	}
	p10 := math.Pow(10, math.Floor(math.Log10(optimal)))
	if p10 > optimal {
		p10 /= 10
	}
	best := p10
	for _, m := range niceMultipliers {
		c := m * p10
		if c <= optimal*(1+1e-12) {
			best = c
		}
	}
	return best
}

// IsNiceSpacing reports whether the spacing is one of
// {1, 2, 5} times an integer power of ten, within floating point tolerance.
func IsNiceSpacing(spacing float64) bool {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return false
	}
	p10 := math.Pow(10, math.Floor(math.Log10(spacing)))
	r := spacing / p10
	for _, m := range niceMultipliers {
		if math.Abs(r-m) <= 1e-9*m {
			return true
		}
	}
	// rounding in Log10 can put spacing just under a power of ten
	return math.Abs(r-10) <= 1e-9
}

// Labels returns the tick values formatted for display, divided
// by the SI scale so that they pair with [TickSet.SIPrefix].
// The number of decimals is the minimum that distinguishes
// adjacent ticks at the current spacing.
func (ts TickSet) Labels() []string {
	if ts.IsEmpty() {
		return nil
	}
	scale := ts.SIScale
	if scale == 0 {
		scale = 1
	}
	decimals := max(0, int(math.Ceil(-math.Log10(ts.Spacing*scale)-1e-9)))
	lbls := make([]string, len(ts.Values))
	for i, v := range ts.Values {
		lbls[i] = strconv.FormatFloat(v*scale, 'f', decimals, 64)
	}
	return lbls
}

// String returns a compact summary, mainly for debugging and the command line tool.
func (ts TickSet) String() string {
	return fmt.Sprintf("TickSet{N: %d, Spacing: %g, Scale: %g, Prefix: %q}", len(ts.Values), ts.Spacing, ts.SIScale, ts.SIPrefix)
}
