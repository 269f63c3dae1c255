// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Standard parameter names shared by all node kinds.
const (
	// ParamColor is the node color, a [color.RGBA].
	ParamColor = "color"

	// ParamDepth is the draw order depth, a float64. Larger draws later.
	ParamDepth = "depth"

	// ParamVisible is whether the node is drawn and picked, a bool.
	ParamVisible = "visible"

	// ParamWidth is the line width in pixels, a float64.
	ParamWidth = "width"

	// ParamZ is the z plane of 2D geometry, a float64.
	ParamZ = "z"
)

// Params are named node parameters. A Params value passed to
// [NodeBase.SetProperties] is a partial patch merged into the
// full parameters of the node.
type Params map[string]any

// Merge merges the patch into the parameters and returns the sorted
// names of the parameters whose values changed. Slice values are copied
// so that the caller can reuse its slices.
func (pr Params) Merge(patch Params) []string {
	var changed []string
	for k, v := range patch {
		if old, has := pr[k]; has && equalValue(old, v) {
			continue
		}
		pr[k] = cloneValue(v)
		changed = append(changed, k)
	}
	slices.Sort(changed)
	return changed
}

// Clone returns a copy of the parameters.
func (pr Params) Clone() Params {
	cp := make(Params, len(pr))
	for k, v := range pr {
		cp[k] = cloneValue(v)
	}
	return cp
}

// Names returns the sorted parameter names.
func (pr Params) Names() []string {
	return slices.Sorted(maps.Keys(pr))
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case []float64:
		return slices.Clone(x)
	case []float32:
		return slices.Clone(x)
	case []uint32:
		return slices.Clone(x)
	case []string:
		return slices.Clone(x)
	}
	return v
}

func equalValue(a, b any) bool {
	switch x := a.(type) {
	case []float64:
		y, ok := b.([]float64)
		return ok && slices.Equal(x, y)
	case []float32:
		y, ok := b.([]float32)
		return ok && slices.Equal(x, y)
	case []uint32:
		y, ok := b.([]uint32)
		return ok && slices.Equal(x, y)
	case []string:
		y, ok := b.([]string)
		return ok && slices.Equal(x, y)
	case float64, float32, int, bool, string, color.RGBA, mgl64.Vec3, mgl64.Mat4:
		return a == b
	}
	return false
}

// Float returns the named float parameter, or def.
// Integer values are converted.
func (pr Params) Float(name string, def float64) float64 {
	switch v := pr[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	}
	return def
}

// Bool returns the named bool parameter, or def.
func (pr Params) Bool(name string, def bool) bool {
	if v, ok := pr[name].(bool); ok {
		return v
	}
	return def
}

// Color returns the named color parameter, or def.
func (pr Params) Color(name string, def color.RGBA) color.RGBA {
	if v, ok := pr[name].(color.RGBA); ok {
		return v
	}
	return def
}

// Text returns the named string parameter, or def.
func (pr Params) Text(name string, def string) string {
	if v, ok := pr[name].(string); ok {
		return v
	}
	return def
}

// Vec3 returns the named vector parameter, or def.
func (pr Params) Vec3(name string, def mgl64.Vec3) mgl64.Vec3 {
	if v, ok := pr[name].(mgl64.Vec3); ok {
		return v
	}
	return def
}

// colorUniform returns the color as a normalized vec4 uniform value.
func colorUniform(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
