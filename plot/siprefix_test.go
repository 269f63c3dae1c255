// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIScale(t *testing.T) {
	scale, prefix, err := SIScale(1500)
	require.NoError(t, err)
	assert.InDelta(t, 1e-3, scale, 1e-18)
	assert.Equal(t, "k", prefix)

	scale, prefix, err = SIScale(-0.0042)
	require.NoError(t, err)
	assert.InDelta(t, 1e3, scale, 1e-9)
	assert.Equal(t, "m", prefix)

	scale, prefix, err = SIScale(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, "", prefix)

	scale, prefix, err = SIScale(1e-26)
	require.NoError(t, err)
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, "", prefix)
}

func TestSIScaleRoundTrip(t *testing.T) {
	for e := -24.75; e <= 26; e += 0.25 {
		for _, sign := range []float64{1, -1} {
			v := sign * math.Pow(10, e)
			scale, _, err := SIScale(v)
			require.NoError(t, err)
			m := math.Abs(v * scale)
			assert.GreaterOrEqual(t, m, 1.0, "value %g", v)
			assert.Less(t, m, 1000.0, "value %g", v)
		}
	}
	// exact powers of 1000 land on 1, not 1000
	for _, v := range []float64{1e-24, 1e-21, 1e-3, 1e3, 1e6, 1e9, 1e21, 1e24} {
		scale, _, err := SIScale(v)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v*scale, 1.0, "value %g", v)
		assert.Less(t, v*scale, 1000.0, "value %g", v)
	}
}

func TestSIScaleBoundaries(t *testing.T) {
	for e := -24; e <= 26; e++ {
		for _, mant := range []float64{1, 2, 5, 7.7, 9.99} {
			for _, sign := range []float64{1, -1} {
				v := sign * mant * math.Pow(10, float64(e))
				for _, x := range []float64{v, math.Nextafter(v, 0), math.Nextafter(v, 2*v)} {
					scale, _, err := SIScale(x)
					require.NoError(t, err)
					m := math.Abs(x * scale)
					assert.True(t, m >= 1 && m < 1000, "value %g scaled to %g", x, m)
				}
			}
		}
	}
	for _, v := range []float64{1e21, -1e21} {
		scale, prefix, err := SIScale(v)
		require.NoError(t, err)
		assert.Equal(t, "Z", prefix)
		assert.Equal(t, 1.0, math.Abs(v*scale))
	}
	s, err := FormatSI(1e24, 0)
	require.NoError(t, err)
	assert.Equal(t, "1 Y", s)
}

func TestSIScaleNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, _, err := SIScale(v)
		assert.ErrorIs(t, err, ErrNonFinite)
	}
	assert.Panics(t, func() { MustSIScale(math.NaN()) })
	assert.NotPanics(t, func() { MustSIScale(12) })
}

func TestFormatSI(t *testing.T) {
	s, err := FormatSI(1500, 1)
	require.NoError(t, err)
	assert.Equal(t, "1.5 k", s)

	s, err = FormatSI(12, 0)
	require.NoError(t, err)
	assert.Equal(t, "12", s)

	s, err = FormatSI(2.5e-6, 2)
	require.NoError(t, err)
	assert.Equal(t, "2.50 µ", s)

	_, err = FormatSI(math.Inf(1), 1)
	assert.ErrorIs(t, err, ErrNonFinite)
}
