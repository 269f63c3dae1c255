// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads and writes the settings of the plotting
// engine as TOML or YAML files.
package config

//go:generate core generate

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"github.com/sciplot/core/camera"
	"github.com/sciplot/core/interact"
	"github.com/sciplot/core/scene"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a settings file whose extension is
// not a known format.
var ErrUnknownFormat = errors.New("config: unknown settings file format")

// Settings are the settings of every component of the engine.
type Settings struct {
	Camera2D camera.Settings2D `toml:"camera2d" yaml:"camera2d"`
	Camera3D camera.Settings3D `toml:"camera3d" yaml:"camera3d"`
	Scene    scene.Settings    `toml:"scene" yaml:"scene"`
	Interact interact.Settings `toml:"interact" yaml:"interact"`
}

// Defaults sets the default values of every component.
func (s *Settings) Defaults() {
	s.Camera2D.Defaults()
	s.Camera3D.Defaults()
	s.Scene.Defaults()
	s.Interact.Defaults()
}

// Formats are the settings file formats.
type Formats int32 //enums:enum

const (
	UnknownFormat Formats = iota
	TOML
	YAML
)

// FormatOf returns the format of the file from its extension.
func FormatOf(filename string) Formats {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML
	case ".yaml", ".yml":
		return YAML
	}
	return UnknownFormat
}

// New returns new settings with the default values,
// overridden by the given files in order.
func New(files ...string) (*Settings, error) {
	s := &Settings{}
	s.Defaults()
	return s, OpenFiles(s, files...)
}

// Open reads the settings from the given file. Values absent from
// the file are left unchanged, so a partial file overrides defaults.
// Unknown keys are an error.
func Open(s *Settings, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(s, f, FormatOf(filename)); err != nil {
		return errors.Log(fmt.Errorf("config.Open %q: %w", filename, err))
	}
	slog.Debug("config: opened settings", "file", filename)
	return nil
}

// OpenFiles reads the settings from each file in order, so that
// later files override earlier ones. It stops at the first error.
func OpenFiles(s *Settings, files ...string) error {
	for _, fn := range files {
		if err := Open(s, fn); err != nil {
			return err
		}
	}
	return nil
}

// Read reads the settings in the given format from r.
func Read(s *Settings, r io.Reader, format Formats) error {
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(s)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(s)
		if err == io.EOF {
			return nil
		}
		return err
	}
	return ErrUnknownFormat
}

// Save writes the settings to the given file, in the format given
// by its extension.
func Save(s *Settings, filename string) error {
	var b bytes.Buffer
	if err := Write(s, &b, FormatOf(filename)); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

// Write writes the settings in the given format to w.
func Write(s *Settings, w io.Writer, format Formats) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(s)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	return ErrUnknownFormat
}

// Overlay copies the non-zero values of src onto dst, component by
// component. Zero values, including false, do not override.
func Overlay(dst, src *Settings) error {
	opt := copier.Option{IgnoreEmpty: true}
	return errors.Join(
		copier.CopyWithOption(&dst.Camera2D, &src.Camera2D, opt),
		copier.CopyWithOption(&dst.Camera3D, &src.Camera3D, opt),
		copier.CopyWithOption(&dst.Scene, &src.Scene, opt),
		copier.CopyWithOption(&dst.Interact, &src.Interact, opt),
	)
}
