// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"testing"

	"github.com/sciplot/core/gpu"
	"github.com/sciplot/core/gpu/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferReuse(t *testing.T) {
	dv := headless.NewDevice()
	b := gpu.NewBuffer(dv, "vertex", gpu.VertexBuffer, gpu.DynamicDraw)
	assert.Zero(t, b.ID())

	require.NoError(t, gpu.SetBufferFrom(b, []float32{1, 2, 3, 4, 5, 6}))
	id := b.ID()
	assert.NotZero(t, id)
	assert.Equal(t, 24, b.AllocSize())
	assert.Equal(t, 6, b.Count())

	// same element count: rewritten in place, same handle
	require.NoError(t, gpu.SetBufferFrom(b, []float32{6, 5, 4, 3, 2, 1}))
	assert.Equal(t, id, b.ID())
	assert.Equal(t, 1, dv.Creates)
	assert.Equal(t, 1, dv.Writes)
	assert.Equal(t, gpu.ToBytes([]float32{6, 5, 4, 3, 2, 1}), dv.Buffers[id].Data)

	// smaller data that fits: still in place
	require.NoError(t, gpu.SetBufferFrom(b, []float32{1, 2, 3}))
	assert.Equal(t, id, b.ID())
	assert.Equal(t, 24, b.AllocSize())
	assert.Equal(t, 12, b.Size())
	assert.Equal(t, 3, b.Count())

	// growing reallocates
	require.NoError(t, gpu.SetBufferFrom(b, make([]float32, 12)))
	assert.NotEqual(t, id, b.ID())
	assert.Equal(t, 2, dv.Creates)
	assert.Equal(t, 1, dv.Releases)
	assert.Len(t, dv.Buffers, 1)
}

func TestBufferShrinkReallocates(t *testing.T) {
	dv := headless.NewDevice()
	b := gpu.NewBuffer(dv, "vertex", gpu.VertexBuffer, gpu.StaticDraw)
	require.NoError(t, gpu.SetBufferFrom(b, make([]float32, 100)))
	id := b.ID()
	require.NoError(t, gpu.SetBufferFrom(b, make([]float32, 25)))
	assert.Equal(t, id, b.ID(), "a quarter of the capacity still fits")
	require.NoError(t, gpu.SetBufferFrom(b, make([]float32, 24)))
	assert.NotEqual(t, id, b.ID())
	assert.Equal(t, 96, b.AllocSize())
}

func TestBufferIdentityChange(t *testing.T) {
	dv := headless.NewDevice()
	bs := gpu.NewBuffers(dv)
	require.NoError(t, bs.Set("index", gpu.IndexBuffer, gpu.StaticDraw, gpu.ToBytes([]uint32{0, 1, 2})))
	id := bs.Get("index").ID()

	require.NoError(t, bs.Set("index", gpu.IndexBuffer, gpu.StaticDraw, gpu.ToBytes([]uint32{2, 1, 0})))
	assert.Equal(t, id, bs.Get("index").ID())

	require.NoError(t, bs.Set("index", gpu.IndexBuffer, gpu.DynamicDraw, gpu.ToBytes([]uint32{2, 1, 0})))
	assert.NotEqual(t, id, bs.Get("index").ID())
	assert.Equal(t, gpu.DynamicDraw, dv.Buffers[bs.Get("index").ID()].Usage)
}

func TestBuffers(t *testing.T) {
	dv := headless.NewDevice()
	bs := gpu.NewBuffers(dv)
	assert.False(t, bs.Allocated())
	bs.Ensure("vertex", gpu.VertexBuffer, gpu.StaticDraw)
	bs.Ensure("index", gpu.IndexBuffer, gpu.StaticDraw)
	assert.Equal(t, []string{"vertex", "index"}, bs.Names())
	assert.False(t, bs.Allocated())

	require.NoError(t, gpu.SetBufferFrom(bs.Get("vertex"), []float32{0, 0, 0}))
	require.NoError(t, gpu.SetBufferFrom(bs.Get("index"), []uint32{0}))
	assert.True(t, bs.Allocated())

	bs.Delete("index")
	assert.Equal(t, 1, bs.Len())
	assert.Nil(t, bs.Get("index"))

	bs.Release()
	assert.Zero(t, bs.Len())
	assert.Empty(t, dv.Buffers)
}

func TestBufferEmptyAndReleased(t *testing.T) {
	dv := headless.NewDevice()
	b := gpu.NewBuffer(dv, "vertex", gpu.VertexBuffer, gpu.StaticDraw)
	require.NoError(t, gpu.SetBufferFrom[float32](b, nil))
	assert.Zero(t, dv.Creates)

	require.NoError(t, gpu.SetBufferFrom(b, []float32{1}))
	b.Release()
	assert.Zero(t, b.ID())
	require.NoError(t, gpu.SetBufferFrom(b, []float32{1}))
	assert.NotZero(t, b.ID(), "a released buffer reallocates on the next write")

	var orphan gpu.Buffer
	assert.ErrorIs(t, orphan.SetFromBytes([]byte{1}), gpu.ErrReleased)
}
