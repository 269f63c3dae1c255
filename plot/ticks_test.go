// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTicks(t *testing.T) {
	ts, err := ComputeTicks(0, 10, 500)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ts.Spacing)
	want := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if diff := cmp.Diff(want, ts.Values, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("ticks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1.0, ts.SIScale)
	assert.Equal(t, "", ts.SIPrefix)

	// reversed order gives the same result
	rev, err := ComputeTicks(10, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, ts, rev)
}

func TestComputeTicksDegenerate(t *testing.T) {
	ts, err := ComputeTicks(3, 3, 500)
	require.NoError(t, err)
	assert.True(t, ts.IsEmpty())
	assert.Nil(t, ts.Labels())
}

func TestComputeTicksNonFinite(t *testing.T) {
	_, err := ComputeTicks(math.NaN(), 1, 100)
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = ComputeTicks(0, math.Inf(1), 100)
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = ComputeTicks(0, 1, math.Inf(-1))
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestComputeTicksProperties(t *testing.T) {
	cases := []struct{ min, max, size float64 }{
		{0, 1, 100},
		{-3.7, 12.2, 800},
		{1e-9, 3e-9, 300},
		{-5e7, 5e7, 1200},
		{0.1, 0.3, 50},
		{123456, 123457, 400},
		{-1, 1, 0},
		{-0.002, 0.0035, 2000},
	}
	for _, c := range cases {
		ts, err := ComputeTicks(c.min, c.max, c.size)
		require.NoError(t, err)
		require.False(t, ts.IsEmpty(), "%v", c)
		assert.True(t, IsNiceSpacing(ts.Spacing), "spacing %g for %v", ts.Spacing, c)
		for i := 1; i < ts.Len(); i++ {
			assert.Greater(t, ts.Values[i]-ts.Values[i-1], ts.Spacing*0.01, "%v", c)
		}
		tol := ts.Spacing * 0.01
		assert.GreaterOrEqual(t, ts.Values[0], c.min-tol)
		assert.LessOrEqual(t, ts.Values[ts.Len()-1], c.max+tol)

		again, err := ComputeTicks(c.min, c.max, c.size)
		require.NoError(t, err)
		assert.Equal(t, ts, again, "ticks must be deterministic")
	}
}

func TestComputeTicksBelowResolution(t *testing.T) {
	cases := []struct{ min, max float64 }{
		{1e18, math.Nextafter(1e18, math.Inf(1))},
		{3e18, 3e18 + 2048},
		{7.7e18, 7.7e18 + 4096},
		{-7.7e18 - 4096, -7.7e18},
	}
	for _, c := range cases {
		ts, err := ComputeTicks(c.min, c.max, 500)
		require.NoError(t, err)
		require.False(t, ts.IsEmpty(), "%v", c)
		for i := 1; i < ts.Len(); i++ {
			assert.Greater(t, ts.Values[i], ts.Values[i-1], "ticks of %v must be strictly ascending", c)
		}
		assert.Len(t, ts.Labels(), ts.Len())
	}
}

func TestNiceSpacing(t *testing.T) {
	assert.Equal(t, 0.0, NiceSpacing(0))
	assert.Equal(t, 0.0, NiceSpacing(-1))
	tolassert.EqualTol(t, 1, NiceSpacing(1.6666), 1e-12)
	tolassert.EqualTol(t, 2, NiceSpacing(4.9), 1e-12)
	tolassert.EqualTol(t, 5, NiceSpacing(9.99), 1e-12)
	tolassert.EqualTol(t, 0.02, NiceSpacing(0.04), 1e-15)
	tolassert.EqualTol(t, 1000, NiceSpacing(1000), 1e-9)
}

func TestLabels(t *testing.T) {
	ts, err := ComputeTicks(0, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.0", "0.1", "0.2", "0.3", "0.4", "0.5", "0.6", "0.7", "0.8", "0.9", "1.0"}, ts.Labels())

	ts, err = ComputeTicks(0, 5000, 500)
	require.NoError(t, err)
	assert.Equal(t, "k", ts.SIPrefix)
	assert.Equal(t, "5.0", ts.Labels()[ts.Len()-1])
}

func TestAxis(t *testing.T) {
	ax, err := NewAxis("x", 0, 10, 500)
	require.NoError(t, err)
	first := ax.Ticks()
	assert.Equal(t, 11, first.Len())
	assert.Equal(t, 11, ax.Ticks().Len())
	assert.False(t, ax.Ticks().IsEmpty())
	assert.Equal(t, "10", ax.Ticks().Labels()[10])

	// no change keeps the same set
	require.NoError(t, ax.Set(0, 10, 500))
	assert.Equal(t, first, ax.Ticks())

	require.NoError(t, ax.SetRange(0, 100))
	assert.Equal(t, 10.0, ax.Ticks().Spacing)
	// the old set is not mutated
	assert.Equal(t, 1.0, first.Spacing)

	err = ax.SetRange(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrNonFinite)
	mn, mx := ax.Range()
	assert.Equal(t, 0.0, mn)
	assert.Equal(t, 100.0, mx)
	assert.Equal(t, 250.0, ax.ToPixels(50))
}

func TestAutoRange(t *testing.T) {
	a := NewXY([]float64{0, 1, 2}, []float64{5, 5, 5})
	b := NewXY([]float64{-4, math.NaN()}, []float64{1, 2})
	x, y, ok := AutoRange(0, a, b)
	assert.True(t, ok)
	assert.Equal(t, Range{-4, 2}, x)
	assert.Equal(t, Range{1, 5}, y)

	flat := NewXY([]float64{3}, []float64{0})
	x, y, ok = AutoRange(0.1, flat)
	assert.True(t, ok)
	tolassert.EqualTol(t, 2.85, x.Min, 1e-12)
	tolassert.EqualTol(t, 3.15, x.Max, 1e-12)
	assert.Equal(t, Range{-0.5, 0.5}, y)

	_, _, ok = AutoRange(0.1, nil, NewXY(nil, nil))
	assert.False(t, ok)
}
