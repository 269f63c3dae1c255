// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/camera"
	"github.com/sciplot/core/gpu"
	"github.com/sciplot/core/gpu/headless"
	"github.com/sciplot/core/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*Context, *camera.Camera2D, *headless.Device) {
	var cs camera.Settings2D
	cs.Defaults()
	cam := camera.NewCamera2D(cs)
	require.NoError(t, cam.SetRange([2]float64{0, 10}, [2]float64{0, 10}))
	cam.SetScreenSize(500, 500)
	var s Settings
	s.Defaults()
	dv := headless.NewDevice()
	return NewContext(dv, gpu.Builtin(), cam, s), cam, dv
}

func horizontal(y float64) *plot.XY {
	return plot.NewXY([]float64{0, 10}, []float64{y, y})
}

func TestLazyInit(t *testing.T) {
	ctx, _, dv := newTestContext(t)
	ln := NewLine(horizontal(5))
	ctx.Insert(ln)
	assert.True(t, ln.IsDirty())
	assert.Zero(t, dv.Creates, "no GPU work before the first paint")

	ln.SetProperties(Params{ParamColor: color.RGBA{255, 0, 0, 255}})
	assert.Zero(t, dv.Creates)

	rendered, err := ctx.DoUpdate()
	require.NoError(t, err)
	assert.True(t, rendered)
	assert.Equal(t, 1, dv.Creates)
	assert.Equal(t, 1, dv.Compiles)
	require.Len(t, dv.Draws, 1)
	assert.Equal(t, 2, dv.Draws[0].Count)
	assert.Equal(t, gpu.LineStrip, dv.Draws[0].Primitive)
	assert.False(t, ln.IsDirty())
	assert.Equal(t, 1, ctx.Frames())

	col, ok := dv.UniformOf("flat", "u_color")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0, 0, 1}, col)
}

func TestBufferReuseAcrossFrames(t *testing.T) {
	ctx, _, dv := newTestContext(t)
	ln := NewLine(horizontal(5))
	ctx.Insert(ln)
	require.NoError(t, ctx.Render())
	id := ln.Buffers().Get(VertexBuffer).ID()

	ln.SetData(horizontal(7))
	require.NoError(t, ctx.Render())
	assert.Equal(t, id, ln.Buffers().Get(VertexBuffer).ID())
	assert.Equal(t, 1, dv.Creates)
	assert.Equal(t, 1, dv.Writes)
	assert.Equal(t, 2, ln.Builds())

	// a frame without changes does not rebuild
	require.NoError(t, ctx.Render())
	assert.Equal(t, 2, ln.Builds())
	assert.Equal(t, 1, dv.Writes)
}

func TestZeroViewport(t *testing.T) {
	var cs camera.Settings2D
	cs.Defaults()
	cam := camera.NewCamera2D(cs)
	var s Settings
	s.Defaults()
	dv := headless.NewDevice()
	ctx := NewContext(dv, gpu.Builtin(), cam, s)
	ctx.Insert(NewLine(horizontal(0.5)))

	rendered, err := ctx.DoUpdate()
	require.NoError(t, err)
	assert.False(t, rendered)
	assert.Zero(t, ctx.Frames())
	assert.Zero(t, dv.Clears)
	assert.Empty(t, dv.Draws)
	assert.True(t, ctx.NeedsRender)
	_, ok := ctx.Pick(0, 0)
	assert.False(t, ok)

	cam.SetScreenSize(200, 100)
	rendered, err = ctx.DoUpdate()
	require.NoError(t, err)
	assert.True(t, rendered)
	assert.Equal(t, [4]int{0, 0, 200, 100}, dv.ViewportRect)
}

func TestDrawOrder(t *testing.T) {
	ctx, _, dv := newTestContext(t)
	pt := NewPointer(Crosshair)
	a := NewLine(horizontal(1))
	ax, err := plot.NewAxis("x", 0, 10, 500)
	require.NoError(t, err)
	al := NewAxisLines(ax, 0, mgl64.Vec3{}, mgl64.Vec3{0, -0.1, 0})
	b := NewLine(horizontal(2))
	for _, n := range []Node{pt, a, al, b} {
		ctx.Insert(n)
	}
	order := ctx.DrawOrder()
	assert.Equal(t, []Node{a, b, al, pt}, order)

	require.NoError(t, ctx.Render())
	require.Len(t, dv.Draws, 4)
	assert.Equal(t, pt.vao, dv.Draws[3].VertexArray)

	// hidden nodes are not drawn
	pt.SetVisible(false)
	assert.Equal(t, []Node{a, b, al}, ctx.DrawOrder())

	// depth is a parameter, not insertion order
	a.SetProperties(Params{ParamDepth: 60.0})
	assert.Equal(t, []Node{b, al, a}, ctx.DrawOrder())
}

func TestUniformBroadcast(t *testing.T) {
	ctx, cam, dv := newTestContext(t)
	ctx.Insert(NewLine(horizontal(5)))
	ctx.Insert(NewMesh([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, nil, []uint32{0, 1, 2}))
	require.NoError(t, ctx.Render())

	proj := mat4f(cam.ProjectionMatrix())
	for _, sh := range []string{"flat", "lit"} {
		v, ok := dv.UniformOf(sh, "u_proj")
		require.True(t, ok, sh)
		assert.Equal(t, proj[:], v)
	}
	_, ok := dv.UniformOf("lit", "u_light_dir")
	assert.True(t, ok)
	_, ok = dv.UniformOf("flat", "u_light_dir")
	assert.False(t, ok, "programs without the uniform are skipped")

	// camera changes reach the programs on the next frame
	cam.Pan(50, 0)
	assert.True(t, ctx.NeedsRender)
	_, err := ctx.DoUpdate()
	require.NoError(t, err)
	v, _ := dv.UniformOf("flat", "u_proj")
	proj = mat4f(cam.ProjectionMatrix())
	assert.Equal(t, proj[:], v)
}

func TestOneRenderPerChangeSet(t *testing.T) {
	ctx, cam, _ := newTestContext(t)
	a := NewLine(horizontal(1))
	b := NewLine(horizontal(2))
	require.NoError(t, ctx.Update(func() {
		ctx.Insert(a)
		ctx.Insert(b)
	}))
	assert.Equal(t, 1, ctx.Frames())

	require.NoError(t, ctx.Update(func() {
		a.SetProperties(Params{ParamColor: color.RGBA{0, 255, 0, 255}})
		b.SetData(horizontal(3))
		cam.Pan(10, 10)
		cam.Zoom(0.999, 120)
		require.NoError(t, ctx.Update(func() {
			b.SetProperties(Params{ParamZ: 1.0})
		}))
	}))
	assert.Equal(t, 2, ctx.Frames())

	rendered, err := ctx.DoUpdate()
	require.NoError(t, err)
	assert.False(t, rendered)

	// an empty change-set does not render
	require.NoError(t, ctx.Update(func() {}))
	assert.Equal(t, 2, ctx.Frames())

	// setting a parameter to its current value is not a change
	a.SetProperties(Params{ParamColor: color.RGBA{0, 255, 0, 255}})
	assert.False(t, ctx.NeedsRender)
}

func TestUpdatePanicDoesNotBlockRenders(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	assert.Panics(t, func() {
		ctx.Update(func() {
			ctx.Insert(NewLine(horizontal(1)))
			panic("bad change")
		})
	})
	assert.True(t, ctx.NeedsRender)
	rendered, err := ctx.DoUpdate()
	require.NoError(t, err)
	assert.True(t, rendered, "a panicking change-set must not leave the context inside an update")
	assert.Equal(t, 1, ctx.Frames())
}

func TestEmptyNodeBuildsOnce(t *testing.T) {
	ctx, cam, _ := newTestContext(t)
	ln := NewLine(plot.NewXY(nil, nil))
	ctx.Insert(ln)
	for range 3 {
		require.NoError(t, ctx.Render())
	}
	assert.Equal(t, 1, ln.Builds())
	assert.False(t, ln.IsDirty())

	cam.Pan(5, 0)
	_, err := ctx.DoUpdate()
	require.NoError(t, err)
	assert.Equal(t, 1, ln.Builds(), "a camera change does not rebuild nodes")

	ln.SetData(horizontal(2))
	require.NoError(t, ctx.Render())
	assert.Equal(t, 2, ln.Builds())
}

func TestHandles(t *testing.T) {
	ctx, _, dv := newTestContext(t)
	a := NewLine(horizontal(1))
	b := NewLine(horizontal(2))
	ha := ctx.Insert(a)
	hb := ctx.Insert(b)
	assert.True(t, ha.IsValid())
	assert.False(t, Handle{}.IsValid())
	n, err := ctx.Node(ha)
	require.NoError(t, err)
	assert.Same(t, a, n)
	require.NoError(t, ctx.Render())
	assert.Len(t, dv.Buffers, 2)

	require.NoError(t, ctx.Remove(ha))
	assert.Len(t, dv.Buffers, 1, "removing a node releases its buffers")
	assert.Equal(t, 1, ctx.Len())
	_, err = ctx.Node(ha)
	assert.ErrorIs(t, err, ErrStaleHandle)
	assert.ErrorIs(t, ctx.Remove(ha), ErrStaleHandle)
	_, err = ctx.Node(Handle{})
	assert.ErrorIs(t, err, ErrStaleHandle)

	// the slot is reused with a new generation, and the new node
	// comes after the existing ones in registration order
	c := NewLine(horizontal(3))
	hc := ctx.Insert(c)
	assert.NotEqual(t, ha, hc)
	_, err = ctx.Node(ha)
	assert.ErrorIs(t, err, ErrStaleHandle)
	assert.Equal(t, []Node{b, c}, ctx.Nodes())
	_ = hb
}

func TestRelease(t *testing.T) {
	ctx, _, dv := newTestContext(t)
	ln := NewLine(horizontal(5))
	ctx.Insert(ln)
	require.NoError(t, ctx.Render())
	ctx.Release()
	assert.Empty(t, dv.Buffers)
	assert.Empty(t, dv.Programs)
	assert.Empty(t, dv.Arrays)
	assert.True(t, ctx.NeedsRender)

	rendered, err := ctx.DoUpdate()
	require.NoError(t, err)
	assert.True(t, rendered)
	assert.Len(t, dv.Buffers, 1)
	assert.Equal(t, 2, dv.Compiles)
}

func TestShaderError(t *testing.T) {
	ctx, _, dv := newTestContext(t)
	dv.FailCompile = "flat"
	ln := NewLine(horizontal(5))
	ctx.Insert(ln)
	m := NewMesh([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, nil, []uint32{0, 1, 2})
	ctx.Insert(m)
	err := ctx.Render()
	assert.Error(t, err)
	assert.Len(t, dv.Draws, 1, "other nodes are still drawn")
}
