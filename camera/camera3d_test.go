// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"math"
	"math/rand/v2"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera3D() *Camera3D {
	var s Settings3D
	s.Defaults()
	cm := NewCamera3D(s)
	cm.SetScreenSize(800, 600)
	return cm
}

func TestPosition3D(t *testing.T) {
	cm := newTestCamera3D()
	require.NoError(t, cm.SetAngles(0, 90))
	require.NoError(t, cm.SetDistance(5))
	p := cm.Position()
	tolassert.EqualTol(t, 5, p[0], 1e-12)
	tolassert.EqualTol(t, 0, p[1], 1e-12)
	tolassert.EqualTol(t, 0, p[2], 1e-12)

	require.NoError(t, cm.SetCenter(mgl64.Vec3{1, 2, 3}))
	p = cm.Position()
	tolassert.EqualTol(t, 6, p[0], 1e-12)
	tolassert.EqualTol(t, 3, p[2], 1e-12)

	// the view matrix puts the center straight ahead
	c := cm.ViewMatrix().Mul4x1(mgl64.Vec4{1, 2, 3, 1})
	tolassert.EqualTol(t, 0, c[0], 1e-12)
	tolassert.EqualTol(t, 0, c[1], 1e-12)
	tolassert.EqualTol(t, -5, c[2], 1e-12)
}

func TestZoom3DRounding(t *testing.T) {
	cm := newTestCamera3D()
	cm.Zoom(0.999, 1)
	assert.Equal(t, 9.99, cm.State().Distance)
	for range 1000 {
		cm.Zoom(0.999, 1)
		d := cm.State().Distance
		assert.Equal(t, math.Round(d*1e4)/1e4, d)
	}
	cm.Zoom(1e-20, 1)
	assert.Equal(t, minDistance, cm.State().Distance)
	cm.Zoom(math.NaN(), 1)
	assert.Equal(t, minDistance, cm.State().Distance)
}

func TestElevationClamp(t *testing.T) {
	cm := newTestCamera3D()
	rng := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		cm.Pan(rng.Float64()*4000-2000, rng.Float64()*4000-2000)
		el := cm.State().Elevation
		assert.GreaterOrEqual(t, el, MinElevation)
		assert.LessOrEqual(t, el, MaxElevation)
	}
	cm.Pan(0, -1e6)
	assert.Equal(t, MaxElevation, cm.State().Elevation)
	cm.Pan(0, 1e6)
	assert.Equal(t, MinElevation, cm.State().Elevation)

	// the view matrix stays finite at the clamp limit
	m := cm.ViewMatrix()
	for _, v := range m {
		assert.False(t, math.IsNaN(v))
	}
}

func TestPan3DZeroScreen(t *testing.T) {
	var s Settings3D
	s.Defaults()
	cm := NewCamera3D(s)
	before := cm.State()
	cm.Pan(100, 100)
	assert.Equal(t, before, cm.State())
	assert.Equal(t, 1.0, cm.Aspect())
}

func TestBasis(t *testing.T) {
	cm := newTestCamera3D()
	require.NoError(t, cm.SetAngles(0, 90))
	x, y := cm.Basis()
	// looking along -x with z up: x basis is -y (screen left), y basis is -x (forward)
	tolassert.EqualTol(t, -1, x[1], 1e-12)
	tolassert.EqualTol(t, -1, y[0], 1e-12)
	tolassert.EqualTol(t, 0, x.Dot(WorldUp), 1e-12)
	tolassert.EqualTol(t, 0, y.Dot(WorldUp), 1e-12)

	// the fallback basis at a pole is consistent with the regular one
	cm.state.Elevation = 0
	xp, _ := cm.Basis()
	tolassert.EqualTol(t, -1, xp[1], 1e-12)
	for _, v := range cm.ViewMatrix() {
		assert.False(t, math.IsNaN(v))
	}
}

func TestMoveDragSpeedInvariance(t *testing.T) {
	move := func(dist, width float64) float64 {
		cm := newTestCamera3D()
		require.NoError(t, cm.SetDistance(dist))
		cm.MoveXY(30, 0, width)
		return cm.State().Center.Len()
	}
	// doubling the distance and the viewport width gives the same translation
	tolassert.EqualTol(t, move(10, 800), move(20, 1600), 1e-12)

	// the translation relative to the visible extent is independent of distance
	for _, d := range []float64{1, 10, 250} {
		cm := newTestCamera3D()
		require.NoError(t, cm.SetDistance(d))
		cm.MoveXY(40, 0, 800)
		visible := 2 * d * math.Tan(mgl64.DegToRad(cm.State().FOV)/2)
		tolassert.EqualTol(t, 40.0/800, cm.State().Center.Len()/visible, 1e-12)
	}

	cm := newTestCamera3D()
	cm.MoveXY(10, 10, 0)
	assert.Equal(t, mgl64.Vec3{}, cm.State().Center)
}

func TestMoveXZ(t *testing.T) {
	cm := newTestCamera3D()
	cm.MoveXZ(0, 80, 800)
	c := cm.State().Center
	tolassert.EqualTol(t, 0, c[0], 1e-12)
	tolassert.EqualTol(t, 0, c[1], 1e-12)
	assert.Greater(t, c[2], 0.0)
}

func TestProjection3D(t *testing.T) {
	cm := newTestCamera3D()
	persp := cm.ProjectionMatrix()
	cm.SetMode(Orthographic)
	ortho := cm.ProjectionMatrix()
	assert.NotEqual(t, persp, ortho)

	// orthographic extent tracks the distance
	cm.Zoom(0.5, 1)
	assert.NotEqual(t, ortho, cm.ProjectionMatrix())
	tolassert.EqualTol(t, ortho[0]*2, cm.ProjectionMatrix()[0], 1e-9)
}

func TestModesText(t *testing.T) {
	var m Modes
	require.NoError(t, m.SetString("orthographic"))
	assert.Equal(t, Orthographic, m)
	require.NoError(t, m.SetString("Perspective"))
	assert.Equal(t, Perspective, m)
	assert.Error(t, m.SetString("Fisheye"))
	assert.Equal(t, "Orthographic", Orthographic.String())
	assert.Len(t, ParamsValues(), int(ParamsN))
	assert.Equal(t, "Clip", Clip.String())
}

func TestSetters3D(t *testing.T) {
	cm := newTestCamera3D()
	assert.ErrorIs(t, cm.SetDistance(math.NaN()), ErrNonFinite)
	assert.Error(t, cm.SetDistance(-1))
	assert.Error(t, cm.SetFOV(180))
	assert.ErrorIs(t, cm.SetCenter(mgl64.Vec3{math.Inf(1), 0, 0}), ErrNonFinite)
	require.NoError(t, cm.SetAngles(-90, 500))
	assert.Equal(t, 270.0, cm.State().Azimuth)
	assert.Equal(t, MaxElevation, cm.State().Elevation)
}

func TestSaveRestore3D(t *testing.T) {
	cm := newTestCamera3D()
	cm.Save("home")
	cm.Orbit(30, 10)
	cm.Zoom(0.5, 1)
	n := 0
	cm.Observe().OnChange(func(Params) { n++ }, Distance, Azimuth, Elevation)
	require.NoError(t, cm.Restore("home"))
	assert.Equal(t, 1, n)
	assert.Equal(t, 10.0, cm.State().Distance)
	assert.Equal(t, 45.0, cm.State().Azimuth)
}

func TestSpace3D(t *testing.T) {
	cm := newTestCamera3D()
	sp := NewSpace3D(cm, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	for _, ax := range sp.Axes {
		assert.Greater(t, ax.Size(), 0.0)
		assert.False(t, ax.Ticks().IsEmpty())
	}
	before := sp.Axes[0].Size()
	cm.Zoom(0.5, 1)
	assert.Greater(t, sp.Axes[0].Size(), before, "zooming in makes the axis longer on screen")
}
