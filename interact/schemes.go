// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"cogentcore.org/core/base/errors"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/events"
	"github.com/sciplot/core/scene"
)

var (
	left  = events.Mask(events.Left)
	right = events.Mask(events.Right, events.Middle)
	all   = events.ButtonMask(0)
)

// scheme returns the bindings of the given mode. Ids are prefixed with
// the mode name so that callers can tell them apart.
func (d *Dispatcher) scheme(m Modes) []Binding {
	id := func(nm string) string { return m.String() + "." + nm }
	bs := []Binding{
		{Type: events.MouseMove, ID: id("hover"), Buttons: all, Handler: d.hover},
		{Type: events.Scroll, ID: id("scroll"), Buttons: all, Handler: d.scroll},
	}
	switch m {
	case ZoomMode:
		bs = append(bs,
			Binding{Type: events.MouseDown, ID: id("press"), Buttons: left, Handler: d.startMove},
			Binding{Type: events.MouseDown, ID: id("press"), Buttons: right, Handler: d.startBox},
			Binding{Type: events.MouseDrag, ID: id("drag"), Buttons: all, Handler: d.drag},
			Binding{Type: events.MouseUp, ID: id("release"), Buttons: all, Handler: d.release},
		)
	case MeasureMode:
		bs = append(bs,
			Binding{Type: events.MouseDown, ID: id("press"), Buttons: left, Handler: d.startMeasure},
			Binding{Type: events.MouseDown, ID: id("press"), Buttons: right, Handler: d.startMove},
			Binding{Type: events.MouseDrag, ID: id("drag"), Buttons: all, Handler: d.drag},
			Binding{Type: events.MouseUp, ID: id("release"), Buttons: all, Handler: d.release},
		)
	case EditMode:
		bs = append(bs,
			Binding{Type: events.MouseDown, ID: id("select"), Buttons: left, Handler: d.selectNode},
			Binding{Type: events.MouseDown, ID: id("press"), Buttons: right, Handler: d.startMove},
			Binding{Type: events.MouseDrag, ID: id("drag"), Buttons: right, Handler: d.drag},
			Binding{Type: events.MouseUp, ID: id("release"), Buttons: all, Handler: d.release},
		)
	}
	return bs
}

// hover moves the pointer overlay to the picked point, or else to the
// point under the pointer, and reports the pick.
func (d *Dispatcher) hover(ev *events.Mouse) {
	x, y := float64(ev.Where.X), float64(ev.Where.Y)
	if d.cam2 != nil {
		d.cam2.SetMousePos(x, y)
	} else {
		d.cam3.SetMousePos(x, y)
	}
	var hit scene.Hit
	ok := false
	if d.Settings.Hover {
		hit, ok = d.ctx.Pick(x, y)
	}
	p, inside := hit.Point, ok
	if !ok {
		p, inside = d.pointAt(ev)
	}
	if inside {
		if d.cam2 != nil {
			st := d.cam2.State()
			d.Pointer.SetExtent(mgl64.Vec2{st.RangeX[0], st.RangeY[0]}, mgl64.Vec2{st.RangeX[1], st.RangeY[1]})
		}
		d.Pointer.SetPos(p)
	}
	d.Pointer.SetVisible(inside)
	if d.OnHover != nil && d.Settings.Hover {
		d.OnHover(hit, ok)
	}
}

// scroll zooms by the wheel delta.
func (d *Dispatcher) scroll(ev *events.Mouse) {
	delta := ev.Delta * d.Settings.WheelStep
	if d.cam2 != nil {
		d.cam2.Batch(func() {
			d.cam2.SetMousePos(float64(ev.Where.X), float64(ev.Where.Y))
			d.cam2.Zoom(d.Settings.ZoomRatio, delta)
		})
		return
	}
	d.cam3.Zoom(d.Settings.ZoomRatio, delta)
}

// startMove starts panning (2D), or orbiting with the left button and
// panning otherwise (3D).
func (d *Dispatcher) startMove(ev *events.Mouse) {
	if d.cam3 != nil && ev.Button == events.Left {
		d.state = Orbiting
		return
	}
	d.state = Panning
}

// startBox starts a zoom box (2D), or panning (3D).
func (d *Dispatcher) startBox(ev *events.Mouse) {
	if d.cam3 != nil {
		d.state = Panning
		return
	}
	d.state = BoxSelecting
	if p, ok := d.pointAt(ev); ok {
		d.Box.SetCorners(p.Vec2(), p.Vec2())
		d.Box.SetVisible(true)
	}
}

// startMeasure starts a measurement at the point under the pointer.
func (d *Dispatcher) startMeasure(ev *events.Mouse) {
	p, ok := d.pointAt(ev)
	if !ok {
		return
	}
	d.state = Measuring
	d.measure = p
	d.Measure.SetPoints(p, p)
	d.Measure.SetVisible(true)
}

// drag applies the delta from the previous sample in the current state.
func (d *Dispatcher) drag(ev *events.Mouse) {
	dp := ev.PrevDelta()
	dx, dy := float64(dp.X), float64(dp.Y)
	switch d.state {
	case Panning:
		if d.cam2 != nil {
			d.cam2.Pan(dx, dy)
			return
		}
		w, _ := d.cam3.Viewport()
		if ev.Mods.HasFlag(events.Shift) {
			d.cam3.MoveXZ(-dx, dy, w)
		} else {
			d.cam3.MoveXY(-dx, dy, w)
		}
	case Orbiting:
		d.cam3.Pan(dx, dy)
	case BoxSelecting:
		if p, ok := d.pointAt(ev); ok {
			d.Box.SetCorners(d.Box.From, p.Vec2())
		}
	case Measuring:
		if p, ok := d.pointAt(ev); ok {
			d.Measure.SetPoints(d.measure, p)
		}
	}
}

// release ends the current drag.
func (d *Dispatcher) release(ev *events.Mouse) {
	switch d.state {
	case BoxSelecting:
		d.Box.SetVisible(false)
		x0, y0, ok0 := d.cam2.ScreenToData(float64(ev.Start.X), float64(ev.Start.Y))
		x1, y1, ok1 := d.cam2.ScreenToData(float64(ev.Where.X), float64(ev.Where.Y))
		if !ok0 || !ok1 {
			return
		}
		if d.cam2.ZoomToBox(float64(ev.Start.X), float64(ev.Start.Y), float64(ev.Where.X), float64(ev.Where.Y)) && d.OnBox != nil {
			d.OnBox(x0, y0, x1, y1)
		}
	case Measuring:
		if p, ok := d.pointAt(ev); ok {
			d.Measure.SetPoints(d.measure, p)
		}
		if d.OnMeasure == nil {
			return
		}
		m := Measurement{From: d.Measure.From, To: d.Measure.To, Length: d.Measure.Length()}
		m.Label = errors.Log1(d.Measure.Label())
		d.OnMeasure(m)
	}
}

// selectNode picks the node under the pointer.
func (d *Dispatcher) selectNode(ev *events.Mouse) {
	hit, ok := d.ctx.Pick(float64(ev.Where.X), float64(ev.Where.Y))
	if d.OnSelect != nil {
		d.OnSelect(hit, ok)
	}
}

// pointAt returns the world point under the event position: the data
// point in 2D, and in 3D the picked point or else the point of the pick
// ray nearest the camera center.
func (d *Dispatcher) pointAt(ev *events.Mouse) (mgl64.Vec3, bool) {
	x, y := float64(ev.Where.X), float64(ev.Where.Y)
	if d.cam2 != nil {
		dx, dy, ok := d.cam2.ScreenToData(x, y)
		return mgl64.Vec3{dx, dy, 0}, ok
	}
	if hit, ok := d.ctx.Pick(x, y); ok {
		return hit.Point, true
	}
	r, ok := d.ctx.RayAt(x, y)
	if !ok {
		return mgl64.Vec3{}, false
	}
	c := d.cam3.State().Center
	return r.At(c.Sub(r.Origin).Dot(r.Dir)), true
}
