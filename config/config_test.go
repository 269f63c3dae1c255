// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/sciplot/core/camera"
	"github.com/sciplot/core/interact"
	"github.com/sciplot/core/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	assert.Equal(t, TOML, FormatOf("a/settings.toml"))
	assert.Equal(t, YAML, FormatOf("settings.YAML"))
	assert.Equal(t, YAML, FormatOf("settings.yml"))
	assert.Equal(t, UnknownFormat, FormatOf("settings.json"))
}

func TestSaveOpen(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml"} {
		fn := filepath.Join(t.TempDir(), "settings"+ext)
		s := &Settings{}
		s.Defaults()
		s.Camera3D.Mode = camera.Orthographic
		s.Interact.Mode = interact.MeasureMode
		s.Interact.Pointer = scene.Cross
		s.Scene.Background = color.RGBA{10, 20, 30, 255}
		require.NoError(t, Save(s, fn), ext)

		got := &Settings{}
		require.NoError(t, Open(got, fn), ext)
		assert.Equal(t, s, got, ext)
	}
}

func TestPartialFile(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	require.NoError(t, os.WriteFile(base, []byte("[interact]\nzoom_ratio = 0.99\nmode = \"EditMode\"\n"), 0666))
	user := filepath.Join(dir, "user.yaml")
	require.NoError(t, os.WriteFile(user, []byte("camera3d:\n  fov: 45\ninteract:\n  zoom_ratio: 0.995\n"), 0666))

	s, err := New(base, user)
	require.NoError(t, err)
	assert.Equal(t, 0.995, s.Interact.ZoomRatio, "later files override")
	assert.Equal(t, interact.EditMode, s.Interact.Mode)
	assert.Equal(t, 45.0, s.Camera3D.FOV)
	assert.Equal(t, 120.0, s.Interact.WheelStep, "absent values keep their defaults")
	assert.Equal(t, 10.0, s.Camera3D.Distance)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	s := &Settings{}
	fn := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(fn, []byte("{}"), 0666))
	assert.ErrorIs(t, Open(s, fn), ErrUnknownFormat)
	assert.ErrorIs(t, Save(s, fn), ErrUnknownFormat)

	fn = filepath.Join(dir, "typo.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[scene]\npick_radus = 3\n"), 0666))
	assert.Error(t, Open(s, fn), "unknown keys are an error")

	assert.Error(t, Open(s, filepath.Join(dir, "missing.toml")))
}

func TestOverlay(t *testing.T) {
	s := &Settings{}
	s.Defaults()
	var patch Settings
	patch.Interact.ZoomRatio = 0.9
	patch.Scene.Background = color.RGBA{0, 0, 0, 255}
	patch.Camera2D.NaturalMove = false
	require.NoError(t, Overlay(s, &patch))

	assert.Equal(t, 0.9, s.Interact.ZoomRatio)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, s.Scene.Background)
	assert.Equal(t, 120.0, s.Interact.WheelStep)
	assert.Equal(t, 5.0, s.Scene.PickRadius)
	assert.True(t, s.Camera2D.NaturalMove, "false does not override")
}
