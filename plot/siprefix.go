// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"strconv"

	"cogentcore.org/core/base/errors"
)

// ErrNonFinite is returned (wrapped) when a NaN or infinite value
// is passed to a tick or SI scale computation. It always indicates
// a caller bug: a wrong scale would corrupt every downstream label.
var ErrNonFinite = errors.New("plot: non-finite value")

// siPrefixes are the metric prefixes from 1e-27 (ronto) to 1e27 (ronna).
var siPrefixes = [19]string{"r", "y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y", "R"}

// siPowers are the magnitudes at which each prefix starts.
var siPowers = [19]float64{1e-27, 1e-24, 1e-21, 1e-18, 1e-15, 1e-12, 1e-9, 1e-6, 1e-3, 1, 1e3, 1e6, 1e9, 1e12, 1e15, 1e18, 1e21, 1e24, 1e27}

// siScales are the reciprocals of siPowers, as literals so that
// each is the nearest float to the exact power.
var siScales = [19]float64{1e27, 1e24, 1e21, 1e18, 1e15, 1e12, 1e9, 1e6, 1e3, 1, 1e-3, 1e-6, 1e-9, 1e-12, 1e-15, 1e-18, 1e-21, 1e-24, 1e-27}

// siZero is the magnitude below which a value is treated as zero.
const siZero = 1e-25

// SIScale returns the scale factor and metric prefix for displaying x:
// x*scale has a magnitude in [1, 1000) whenever |x| is within the range
// covered by the prefix table. Magnitudes below 1e-25 return a scale of 1
// and no prefix. NaN or Inf return an error wrapping [ErrNonFinite].
func SIScale(x float64) (scale float64, prefix string, err error) {
	if err := checkFinite("SIScale", x); err != nil {
		return 0, "", err
	}
	ax := math.Abs(x)
	if ax < siZero {
		return 1, "", nil
	}
	i := 0
	for k, p := range siPowers {
		if ax >= p {
			i = k
		}
	}
	scale = siScales[i]
	// the product can round to just outside [1, 1000) at a prefix
	// boundary; move the scale by an ulp until it does not
	for ax*scale < 1 {
		scale = math.Nextafter(scale, math.Inf(1))
	}
	if i < len(siPowers)-1 {
		for ax*scale >= 1000 {
			scale = math.Nextafter(scale, 0)
		}
	}
	return scale, siPrefixes[i], nil
}

// MustSIScale is like [SIScale] but panics on non-finite input.
// It is intended for use where a non-finite value can only be a programming error.
func MustSIScale(x float64) (float64, string) {
	scale, prefix, err := SIScale(x)
	if err != nil {
		panic(err)
	}
	return scale, prefix
}

// FormatSI formats x with its SI prefix using the given number of
// decimals, e.g. FormatSI(1500, 1) = "1.5 k". A space always separates
// the number from the prefix when there is one.
func FormatSI(x float64, decimals int) (string, error) {
	scale, prefix, err := SIScale(x)
	if err != nil {
		return "", err
	}
	s := strconv.FormatFloat(x*scale, 'f', decimals, 64)
	if prefix == "" {
		return s, nil
	}
	return s + " " + prefix, nil
}

// checkFinite returns an error naming fun for the first non-finite value.
func checkFinite(fun string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("plot.%s: %w: %v", fun, ErrNonFinite, v)
		}
	}
	return nil
}
