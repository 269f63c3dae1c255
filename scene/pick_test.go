// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/camera"
	"github.com/sciplot/core/gpu"
	"github.com/sciplot/core/gpu/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayAt(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	r, ok := ctx.RayAt(250, 250)
	require.True(t, ok)
	tolassert.EqualTol(t, 5, r.Origin[0], 1e-9)
	tolassert.EqualTol(t, 5, r.Origin[1], 1e-9)
	tolassert.EqualTol(t, -1, r.Dir[2], 1e-12)

	// screen y grows down, data y grows up
	r, ok = ctx.RayAt(0, 0)
	require.True(t, ok)
	tolassert.EqualTol(t, 0, r.Origin[0], 1e-9)
	tolassert.EqualTol(t, 10, r.Origin[1], 1e-9)
}

func TestPickTieBreak(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	a := NewLine(horizontal(5))
	b := NewLine(horizontal(5))
	ha := ctx.Insert(a)
	ctx.Insert(b)
	require.NoError(t, ctx.Render())

	hit, ok := ctx.Pick(250, 252)
	require.True(t, ok)
	assert.Same(t, a, hit.Node, "equal distance: first registered wins")
	assert.Equal(t, ha, hit.Handle)
	tolassert.EqualTol(t, 0, hit.Point[2], 1e-9)

	// re-registering a puts it after b
	require.NoError(t, ctx.Remove(ha))
	ctx.Insert(a)
	hit, ok = ctx.Pick(250, 252)
	require.True(t, ok)
	assert.Same(t, b, hit.Node)

	// hidden nodes are not picked
	b.SetVisible(false)
	hit, ok = ctx.Pick(250, 252)
	require.True(t, ok)
	assert.Same(t, a, hit.Node)
}

func TestPickRadius(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	ctx.Insert(NewLine(horizontal(5)))
	require.NoError(t, ctx.Render())
	_, ok := ctx.Pick(250, 270)
	assert.False(t, ok)
	_, ok = ctx.Pick(250, 254)
	assert.True(t, ok)

	// overlays are not pickable
	ctx.Insert(NewPointer(Crosshair))
	_, ok = ctx.Pick(250, 100)
	assert.False(t, ok)
}

func quad(z float32) *Mesh {
	pos := []float32{-1, -1, z, 1, -1, z, 1, 1, z, -1, 1, z}
	return NewMesh(pos, nil, []uint32{0, 1, 2, 0, 2, 3})
}

func TestPickClosest3D(t *testing.T) {
	var cs camera.Settings3D
	cs.Defaults()
	cam := camera.NewCamera3D(cs)
	cam.SetScreenSize(400, 400)
	require.NoError(t, cam.SetAngles(0, 1))
	var s Settings
	s.Defaults()
	ctx := NewContext(headless.NewDevice(), gpu.Builtin(), cam, s)

	far := quad(0)
	near := quad(1)
	ctx.Insert(far)
	ctx.Insert(near)
	hit, ok := ctx.Pick(200, 200)
	require.True(t, ok)
	assert.Same(t, near, hit.Node, "the closest hit wins regardless of order")
	tolassert.EqualTol(t, 1, hit.Point[2], 1e-6)

	// a ray through the corner misses
	_, ok = ctx.Pick(2, 2)
	assert.False(t, ok)
}

func TestRayTriangle(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0.2, 0.2, 5}, Dir: mgl64.Vec3{0, 0, -1}}
	a, b, c := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}
	d, ok := rayTriangle(r, a, b, c)
	require.True(t, ok)
	tolassert.EqualTol(t, 5, d, 1e-12)
	// back face is hit too
	d, ok = rayTriangle(r, a, c, b)
	require.True(t, ok)
	tolassert.EqualTol(t, 5, d, 1e-12)

	r.Origin = mgl64.Vec3{0.8, 0.8, 5}
	_, ok = rayTriangle(r, a, b, c)
	assert.False(t, ok)

	// behind the origin
	r.Origin = mgl64.Vec3{0.2, 0.2, -5}
	_, ok = rayTriangle(r, a, b, c)
	assert.False(t, ok)
}
