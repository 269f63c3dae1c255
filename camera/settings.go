// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

// Settings2D are the user-level options of a [Camera2D].
type Settings2D struct {

	// MoveFactor scales the pan displacement per pixel.
	MoveFactor float64 `default:"1" toml:"move_factor" yaml:"move_factor"`

	// NaturalMove makes the content follow the pointer while panning
	// (the range moves opposite to the drag).
	NaturalMove bool `default:"true" toml:"natural_move" yaml:"natural_move"`

	// ZoomFollowMouse zooms around the data point under the pointer
	// instead of the center of the current range.
	ZoomFollowMouse bool `default:"true" toml:"zoom_follow_mouse" yaml:"zoom_follow_mouse"`

	// ZNear and ZFar are the clip planes of the orthographic projection.
	ZNear float64 `default:"-1000" toml:"z_near" yaml:"z_near"`
	ZFar  float64 `default:"1000" toml:"z_far" yaml:"z_far"`
}

// Defaults sets the default values.
func (s *Settings2D) Defaults() {
	s.MoveFactor = 1
	s.NaturalMove = true
	s.ZoomFollowMouse = true
	s.ZNear = -1000
	s.ZFar = 1000
}

// Settings3D are the user-level options and initial pose of a [Camera3D].
type Settings3D struct {

	// Distance is the initial distance from the center.
	Distance float64 `default:"10" toml:"distance" yaml:"distance"`

	// Azimuth is the initial azimuth angle in degrees, around the z axis.
	Azimuth float64 `default:"45" toml:"azimuth" yaml:"azimuth"`

	// Elevation is the initial polar angle in degrees, measured from the +z axis.
	Elevation float64 `default:"60" toml:"elevation" yaml:"elevation"`

	// FOV is the vertical field of view in degrees.
	FOV float64 `default:"60" toml:"fov" yaml:"fov"`

	// ZNear and ZFar are the clip plane distances.
	ZNear float64 `default:"0.01" toml:"z_near" yaml:"z_near"`
	ZFar  float64 `default:"10000" toml:"z_far" yaml:"z_far"`

	// Mode is the projection mode.
	Mode Modes `default:"Perspective" toml:"mode" yaml:"mode"`

	// RotateSpeed is the rotation in degrees for a drag across the full viewport.
	RotateSpeed float64 `default:"180" toml:"rotate_speed" yaml:"rotate_speed"`

	// MoveFactor scales the center translation of MoveXY and MoveXZ.
	MoveFactor float64 `default:"1" toml:"move_factor" yaml:"move_factor"`
}

// Defaults sets the default values.
func (s *Settings3D) Defaults() {
	s.Distance = 10
	s.Azimuth = 45
	s.Elevation = 60
	s.FOV = 60
	s.ZNear = 0.01
	s.ZFar = 10000
	s.Mode = Perspective
	s.RotateSpeed = 180
	s.MoveFactor = 1
}
