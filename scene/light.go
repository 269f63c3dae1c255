// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Light is a directional light with an ambient term, used by the
// lit shader.
type Light struct {

	// Dir is the direction the light travels in, in world coordinates.
	Dir mgl64.Vec3

	// Color is the color of the light at full intensity.
	Color color.RGBA

	// Lumens is the brightness in normalized 0-1 units,
	// multiplied by the color.
	Lumens float64 `min:"0" step:"0.1"`

	// Ambient is the ambient light level in 0-1 units.
	Ambient float64 `min:"0" max:"1"`
}

// Defaults sets a white light from above and behind the default camera.
func (lt *Light) Defaults() {
	lt.Dir = mgl64.Vec3{-1, -1, -2}
	lt.Color = color.RGBA{255, 255, 255, 255}
	lt.Lumens = 1
	lt.Ambient = 0.25
}

// Uniforms returns the uniform values of the light.
func (lt *Light) Uniforms() map[string][]float32 {
	d := lt.Dir
	if d.Len() == 0 {
		d = mgl64.Vec3{0, 0, -1}
	}
	d = d.Normalize()
	s := float32(lt.Lumens) / 255
	return map[string][]float32{
		"u_light_dir":   {float32(d[0]), float32(d[1]), float32(d[2])},
		"u_light_color": {float32(lt.Color.R) * s, float32(lt.Color.G) * s, float32(lt.Color.B) * s},
		"u_ambient":     {float32(lt.Ambient)},
	}
}
