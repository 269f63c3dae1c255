// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/core/base/errors"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/plot"
)

// Space2D keeps the x and y [plot.Axis] of a [Camera2D] in sync with
// its ranges and plot size, so that ticks are recomputed exactly
// when one of those changes.
type Space2D struct {
	X, Y *plot.Axis

	cam *Camera2D

	// OnUpdate, if set, is called after the axes have been updated.
	OnUpdate func(sp *Space2D)
}

// NewSpace2D returns the space representation of the given camera
// and registers it as an observer of the relevant parameters.
func NewSpace2D(cam *Camera2D) *Space2D {
	sp := &Space2D{cam: cam, X: &plot.Axis{Name: "x"}, Y: &plot.Axis{Name: "y"}}
	sp.Update()
	cam.Observe().OnChange(func(Params) { sp.Update() }, RangeX, RangeY, ScreenSize, Margins)
	return sp
}

// Update recomputes the axes from the current camera state.
func (sp *Space2D) Update() {
	st := sp.cam.State()
	pw, ph := sp.cam.PlotSize()
	errors.Log(sp.X.Set(st.RangeX[0], st.RangeX[1], pw))
	errors.Log(sp.Y.Set(st.RangeY[0], st.RangeY[1], ph))
	if sp.OnUpdate != nil {
		sp.OnUpdate(sp)
	}
}

// Space3D keeps one [plot.Axis] per dimension of a data bounding box,
// using the on-screen length of each box edge through the current
// camera as the pixel size of that axis.
type Space3D struct {
	Axes [3]*plot.Axis

	// Min and Max are the corners of the bounding box.
	Min, Max mgl64.Vec3

	cam *Camera3D

	// OnUpdate, if set, is called after the axes have been updated.
	OnUpdate func(sp *Space3D)
}

// NewSpace3D returns the space representation of the given bounding
// box seen through the given camera, and registers it as an observer.
func NewSpace3D(cam *Camera3D, min, max mgl64.Vec3) *Space3D {
	sp := &Space3D{cam: cam, Min: min, Max: max}
	for i, nm := range []string{"x", "y", "z"} {
		sp.Axes[i] = &plot.Axis{Name: nm}
	}
	sp.Update()
	cam.Observe().OnAny(func(p Params) {
		if p != MousePos {
			sp.Update()
		}
	})
	return sp
}

// SetBounds sets the bounding box and updates the axes.
func (sp *Space3D) SetBounds(min, max mgl64.Vec3) {
	sp.Min, sp.Max = min, max
	sp.Update()
}

// Update recomputes the axes from the bounding box and camera.
func (sp *Space3D) Update() {
	for i := range 3 {
		a, b := sp.Min, sp.Min
		b[i] = sp.Max[i]
		px := sp.screenLength(a, b)
		errors.Log(sp.Axes[i].Set(sp.Min[i], sp.Max[i], px))
	}
	if sp.OnUpdate != nil {
		sp.OnUpdate(sp)
	}
}

// screenLength returns the distance in pixels between the projections
// of two world points, or 0 while the screen has no size or a point
// is behind the camera.
func (sp *Space3D) screenLength(a, b mgl64.Vec3) float64 {
	w, h := sp.cam.Viewport()
	if w == 0 || h == 0 {
		return 0
	}
	vp := sp.cam.ProjectionMatrix().Mul4(sp.cam.ViewMatrix())
	pa := vp.Mul4x1(a.Vec4(1))
	pb := vp.Mul4x1(b.Vec4(1))
	if pa[3] <= 0 || pb[3] <= 0 {
		return 0
	}
	dx := (pa[0]/pa[3] - pb[0]/pb[3]) * w / 2
	dy := (pa[1]/pa[3] - pb[1]/pb[3]) * h / 2
	return mgl64.Vec2{dx, dy}.Len()
}
