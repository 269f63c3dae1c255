// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sciplot/core/gpu"
	"github.com/sciplot/core/gpu/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinShaders(t *testing.T) {
	mp := gpu.Builtin()
	assert.Equal(t, []string{"flat", "lit"}, mp.Names())
	set, err := mp.Source("lit")
	require.NoError(t, err)
	assert.Contains(t, set.Fragment, "u_light_dir")
	assert.Empty(t, set.Geometry)

	_, err = mp.Source("volume")
	assert.ErrorIs(t, err, gpu.ErrNoShader)
}

func TestProgramCache(t *testing.T) {
	dv := headless.NewDevice()
	pc := gpu.NewProgramCache(dv, gpu.Builtin())

	line, err := pc.Program("line", "flat")
	require.NoError(t, err)
	again, err := pc.Program("line", "flat")
	require.NoError(t, err)
	assert.Same(t, line, again)
	assert.Equal(t, 1, dv.Compiles)

	// a different node kind gets its own program
	mesh, err := pc.Program("mesh", "lit")
	require.NoError(t, err)
	assert.NotEqual(t, line.ID, mesh.ID)
	assert.Equal(t, 2, pc.Len())

	_, err = pc.Program("volume", "volume")
	assert.ErrorIs(t, err, gpu.ErrNoShader)
	assert.Equal(t, 2, pc.Len())
}

func TestUniformBroadcast(t *testing.T) {
	dv := headless.NewDevice()
	pc := gpu.NewProgramCache(dv, gpu.Builtin())
	line, err := pc.Program("line", "flat")
	require.NoError(t, err)
	mesh, err := pc.Program("mesh", "lit")
	require.NoError(t, err)

	proj := make([]float32, 16)
	proj[0] = 2
	assert.Equal(t, 2, pc.SetUniform("u_proj", proj))
	assert.Equal(t, proj, dv.Programs[line.ID].Uniforms["u_proj"])
	assert.Equal(t, proj, dv.Programs[mesh.ID].Uniforms["u_proj"])

	// only the lit program declares the light, the flat one is skipped silently
	assert.Equal(t, 1, pc.SetUniform("u_light_dir", []float32{0, 0, -1}))
	_, has := dv.Programs[line.ID].Uniforms["u_light_dir"]
	assert.False(t, has)

	// programs compiled later get the last broadcast values
	pc.SetUniforms(map[string][]float32{"u_ambient": {0.2}, "u_view": proj})
	box, err := pc.Program("box", "flat")
	require.NoError(t, err)
	assert.Equal(t, proj, dv.Programs[box.ID].Uniforms["u_proj"])
	assert.Equal(t, proj, dv.Programs[box.ID].Uniforms["u_view"])
	v, ok := pc.Uniform("u_ambient")
	assert.True(t, ok)
	assert.Equal(t, []float32{0.2}, v)
}

func TestInvalidate(t *testing.T) {
	dv := headless.NewDevice()
	pc := gpu.NewProgramCache(dv, gpu.Builtin())
	_, err := pc.Program("line", "flat")
	require.NoError(t, err)
	_, err = pc.Program("box", "flat")
	require.NoError(t, err)
	_, err = pc.Program("mesh", "lit")
	require.NoError(t, err)

	assert.Equal(t, 2, pc.Invalidate("flat"))
	assert.Equal(t, 1, pc.Len())
	assert.Len(t, dv.Programs, 1)

	_, err = pc.Program("line", "flat")
	require.NoError(t, err)
	assert.Equal(t, 4, dv.Compiles)

	pc.Release()
	assert.Zero(t, pc.Len())
	assert.Empty(t, dv.Programs)
}

func TestDirProvider(t *testing.T) {
	dir := t.TempDir()
	write := func(fn, src string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fn), []byte(src), 0o644))
	}
	write("dots.vert", "uniform mat4 u_proj;\nvoid main() {}\n")
	write("dots.frag", "uniform vec4 u_color;\nvoid main() {}\n")

	dp, err := gpu.NewDirProvider(dir)
	require.NoError(t, err)
	_, err = gpu.NewDirProvider(filepath.Join(dir, "dots.vert"))
	assert.Error(t, err)

	dv := headless.NewDevice()
	pc := gpu.NewProgramCache(dv, dp)
	_, err = pc.Program("points", "dots")
	require.NoError(t, err)
	_, err = dp.Source("missing")
	assert.ErrorIs(t, err, gpu.ErrNoShader)

	require.NoError(t, dp.Watch())
	defer dp.Close()
	write("dots.frag", "uniform vec4 u_color;\nuniform float u_size;\nvoid main() {}\n")

	assert.Eventually(t, func() bool {
		pc.Poll()
		return pc.Len() == 0
	}, 5*time.Second, 10*time.Millisecond)

	pr, err := pc.Program("points", "dots")
	require.NoError(t, err)
	assert.True(t, dv.HasUniform(pr.ID, "u_size"), "recompiled from the new source")
}
