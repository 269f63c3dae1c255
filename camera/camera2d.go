// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/plot"
)

// State2D is the complete state of a [Camera2D]. It is returned by
// value; the camera itself is only changed through its methods.
type State2D struct {
	RangeX     [2]float64
	RangeY     [2]float64
	ScreenSize [2]float64

	// MarginsPx are the left, right, top and bottom margins in pixels
	// between the screen edge and the plot area.
	MarginsPx [4]float64

	MousePos [2]float64
	ZNear    float64
	ZFar     float64
}

// Camera2D is an orthographic camera over an x / y data range.
// The view matrix is always the identity; the projection is rebuilt
// from the current state on every call so that a range change is
// visible in the very next paint.
type Camera2D struct {
	Settings Settings2D

	state State2D
	obs   Observers
	saved map[string]State2D
}

// NewCamera2D returns a new 2D camera with the given settings,
// showing the unit square.
func NewCamera2D(s Settings2D) *Camera2D {
	cm := &Camera2D{Settings: s}
	cm.state.RangeX = [2]float64{0, 1}
	cm.state.RangeY = [2]float64{0, 1}
	cm.state.ZNear = s.ZNear
	cm.state.ZFar = s.ZFar
	if cm.state.ZNear == cm.state.ZFar {
		cm.state.ZNear, cm.state.ZFar = -1, 1
	}
	return cm
}

// State returns a copy of the current state.
func (cm *Camera2D) State() State2D {
	return cm.state
}

// Observe returns the observer table of the camera.
func (cm *Camera2D) Observe() *Observers {
	return &cm.obs
}

// Batch runs fun with change notifications deferred until it returns,
// so that a multi-field change is reported once.
func (cm *Camera2D) Batch(fun func()) {
	cm.obs.Batch(fun)
}

// SetRange sets both data ranges. Endpoints may be given in either
// order; equal endpoints are widened so that the range is never empty.
func (cm *Camera2D) SetRange(x, y [2]float64) error {
	if err := checkFinite("Camera2D.SetRange", x[0], x[1], y[0], y[1]); err != nil {
		return err
	}
	cm.state.RangeX = normRange(x)
	cm.state.RangeY = normRange(y)
	cm.obs.Notify(RangeX, RangeY)
	return nil
}

// SetRangeX sets the x data range.
func (cm *Camera2D) SetRangeX(min, max float64) error {
	return cm.SetRange([2]float64{min, max}, cm.state.RangeY)
}

// SetRangeY sets the y data range.
func (cm *Camera2D) SetRangeY(min, max float64) error {
	return cm.SetRange(cm.state.RangeX, [2]float64{min, max})
}

// AutoRange sets the ranges to cover all given data sources,
// padded by the given fraction. It does nothing if there is no data.
func (cm *Camera2D) AutoRange(padding float64, sources ...plot.DataSource) error {
	x, y, ok := plot.AutoRange(padding, sources...)
	if !ok {
		return nil
	}
	return cm.SetRange([2]float64{x.Min, x.Max}, [2]float64{y.Min, y.Max})
}

// SetScreenSize sets the size of the drawing surface in pixels.
// Negative sizes are treated as zero, meaning "not yet laid out".
func (cm *Camera2D) SetScreenSize(w, h float64) {
	sz := [2]float64{max(w, 0), max(h, 0)}
	if !isFinite(sz[0]) || !isFinite(sz[1]) || sz == cm.state.ScreenSize {
		return
	}
	cm.state.ScreenSize = sz
	cm.obs.Notify(ScreenSize)
}

// SetMargins sets the left, right, top and bottom plot margins in pixels.
func (cm *Camera2D) SetMargins(left, right, top, bottom float64) {
	m := [4]float64{max(left, 0), max(right, 0), max(top, 0), max(bottom, 0)}
	if m == cm.state.MarginsPx {
		return
	}
	cm.state.MarginsPx = m
	cm.obs.Notify(Margins)
}

// SetMousePos records the pointer position in screen pixels.
func (cm *Camera2D) SetMousePos(x, y float64) {
	cm.state.MousePos = [2]float64{x, y}
	cm.obs.Notify(MousePos)
}

// Viewport returns the screen size in pixels.
func (cm *Camera2D) Viewport() (w, h float64) {
	return cm.state.ScreenSize[0], cm.state.ScreenSize[1]
}

// PlotSize returns the size of the plot area: the screen minus the margins.
func (cm *Camera2D) PlotSize() (w, h float64) {
	st := &cm.state
	w = max(st.ScreenSize[0]-st.MarginsPx[0]-st.MarginsPx[1], 0)
	h = max(st.ScreenSize[1]-st.MarginsPx[2]-st.MarginsPx[3], 0)
	return
}

// ScreenToData maps a screen pixel position to data coordinates.
// ok is false while the plot area has no size.
func (cm *Camera2D) ScreenToData(x, y float64) (dx, dy float64, ok bool) {
	pw, ph := cm.PlotSize()
	if pw == 0 || ph == 0 {
		return 0, 0, false
	}
	st := &cm.state
	dx = st.RangeX[0] + (x-st.MarginsPx[0])/pw*(st.RangeX[1]-st.RangeX[0])
	dy = st.RangeY[1] - (y-st.MarginsPx[2])/ph*(st.RangeY[1]-st.RangeY[0])
	return dx, dy, true
}

// DataToScreen maps data coordinates to a screen pixel position.
// ok is false while the plot area has no size.
func (cm *Camera2D) DataToScreen(dx, dy float64) (x, y float64, ok bool) {
	pw, ph := cm.PlotSize()
	if pw == 0 || ph == 0 {
		return 0, 0, false
	}
	st := &cm.state
	x = st.MarginsPx[0] + (dx-st.RangeX[0])/(st.RangeX[1]-st.RangeX[0])*pw
	y = st.MarginsPx[2] + (st.RangeY[1]-dy)/(st.RangeY[1]-st.RangeY[0])*ph
	return x, y, true
}

// Zoom scales both ranges by ratioBase^delta. The pivot is the data
// point under the mouse when ZoomFollowMouse is set and the plot has
// a size, else the center of the range; the pivot stays fixed on
// screen. Results that would be empty or non-finite are ignored.
func (cm *Camera2D) Zoom(ratioBase, delta float64) {
	factor := math.Pow(ratioBase, delta)
	if !isFinite(factor) || factor <= 0 {
		return
	}
	st := &cm.state
	px := 0.5 * (st.RangeX[0] + st.RangeX[1])
	py := 0.5 * (st.RangeY[0] + st.RangeY[1])
	if cm.Settings.ZoomFollowMouse {
		if mx, my, ok := cm.ScreenToData(st.MousePos[0], st.MousePos[1]); ok {
			px, py = mx, my
		}
	}
	nx, okx := zoomRange(st.RangeX, px, factor)
	ny, oky := zoomRange(st.RangeY, py, factor)
	if !okx || !oky {
		slog.Debug("camera.Camera2D.Zoom: ignoring degenerate zoom", "factor", factor)
		return
	}
	st.RangeX, st.RangeY = nx, ny
	cm.obs.Notify(RangeX, RangeY)
}

// zoomRange scales r by factor around pivot p.
func zoomRange(r [2]float64, p, factor float64) ([2]float64, bool) {
	n := [2]float64{p - (p-r[0])*factor, p + (r[1]-p)*factor}
	if !isFinite(n[0]) || !isFinite(n[1]) || !(n[1] > n[0]) {
		return r, false
	}
	return n, true
}

// Pan shifts the ranges by the given screen pixel delta. Screen y grows
// downward while data y grows upward, so y is inverted relative to x.
// It does nothing until the screen has a size.
func (cm *Camera2D) Pan(dx, dy float64) {
	st := &cm.state
	if st.ScreenSize[0] == 0 || st.ScreenSize[1] == 0 {
		return
	}
	dir := 1.0
	if cm.Settings.NaturalMove {
		dir = -1
	}
	mf := cm.Settings.MoveFactor
	sx := dir * (st.RangeX[1] - st.RangeX[0]) * dx / st.ScreenSize[0] * mf
	sy := -dir * (st.RangeY[1] - st.RangeY[0]) * dy / st.ScreenSize[1] * mf
	if !isFinite(sx) || !isFinite(sy) {
		return
	}
	st.RangeX = [2]float64{st.RangeX[0] + sx, st.RangeX[1] + sx}
	st.RangeY = [2]float64{st.RangeY[0] + sy, st.RangeY[1] + sy}
	cm.obs.Notify(RangeX, RangeY)
}

// ZoomToBox sets the ranges to the data covered by the given screen
// rectangle, as drawn with a zoom box. Boxes smaller than a pixel in
// either direction are ignored.
func (cm *Camera2D) ZoomToBox(x0, y0, x1, y1 float64) bool {
	if math.Abs(x1-x0) < 1 || math.Abs(y1-y0) < 1 {
		return false
	}
	ax, ay, ok := cm.ScreenToData(x0, y0)
	if !ok {
		return false
	}
	bx, by, _ := cm.ScreenToData(x1, y1)
	return cm.SetRange([2]float64{ax, bx}, [2]float64{ay, by}) == nil
}

// ViewMatrix returns the identity: a 2D camera has no rotation.
func (cm *Camera2D) ViewMatrix() mgl64.Mat4 {
	return mgl64.Ident4()
}

// ProjectionMatrix returns the orthographic projection of the current
// ranges onto the full screen, extended by the margins so that the
// ranges fill exactly the plot area.
func (cm *Camera2D) ProjectionMatrix() mgl64.Mat4 {
	st := &cm.state
	l, r := st.RangeX[0], st.RangeX[1]
	b, t := st.RangeY[0], st.RangeY[1]
	if pw, ph := cm.PlotSize(); pw > 0 && ph > 0 {
		sx := (r - l) / pw
		sy := (t - b) / ph
		l -= st.MarginsPx[0] * sx
		r += st.MarginsPx[1] * sx
		t += st.MarginsPx[2] * sy
		b -= st.MarginsPx[3] * sy
	}
	return mgl64.Ortho(l, r, b, t, st.ZNear, st.ZFar)
}

// Position returns a point on the view axis at the near plane, used
// as the reference for pick distances.
func (cm *Camera2D) Position() mgl64.Vec3 {
	st := &cm.state
	return mgl64.Vec3{0.5 * (st.RangeX[0] + st.RangeX[1]), 0.5 * (st.RangeY[0] + st.RangeY[1]), -st.ZNear}
}

// Save saves the current view under the given name.
func (cm *Camera2D) Save(name string) {
	if cm.saved == nil {
		cm.saved = make(map[string]State2D)
	}
	cm.saved[name] = cm.state
}

// Restore restores the ranges of the view saved under the given name.
// The screen size and margins are kept, as they belong to the surface.
func (cm *Camera2D) Restore(name string) error {
	st, ok := cm.saved[name]
	if !ok {
		return fmt.Errorf("camera.Camera2D: saved view %q not found", name)
	}
	return cm.SetRange(st.RangeX, st.RangeY)
}

// normRange orders r and widens equal endpoints.
func normRange(r [2]float64) [2]float64 {
	nr := plot.Range{Min: r[0], Max: r[1]}.NonDegenerate()
	return [2]float64{nr.Min, nr.Max}
}
