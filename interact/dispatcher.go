// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interact routes pointer events to camera moves and scene
// overlays through a table of bound handlers, with a drag state
// machine and interaction modes that swap the whole table at once.
package interact

import (
	"fmt"
	"image"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/camera"
	"github.com/sciplot/core/events"
	"github.com/sciplot/core/scene"
)

// Handler handles a pointer event. It can call SetHandled on the
// event to stop the remaining handlers.
type Handler func(ev *events.Mouse)

// Binding binds a handler to an event type and button mask under an id.
type Binding struct {
	Type    events.Types
	ID      string
	Buttons events.ButtonMask
	Handler Handler
}

// table is an immutable list of bindings, replaced as a whole.
type table struct {
	binds []Binding
}

// Measurement is the result of a measure drag, in world coordinates.
type Measurement struct {
	From, To mgl64.Vec3
	Length   float64

	// Label is the length formatted with an SI prefix.
	Label string
}

// Dispatcher turns pointer events into camera moves, overlay updates
// and picks. Events must be dispatched in arrival order from the render
// thread: drag deltas are relative to the previous processed sample.
// Bind and Unbind can be called from any goroutine; SetMode resets the
// overlays and must be called from the render thread.
type Dispatcher struct {
	Settings Settings

	// OnHover is called on pointer moves with the pick result.
	OnHover func(hit scene.Hit, ok bool)

	// OnMeasure is called at the end of a measure drag.
	OnMeasure func(m Measurement)

	// OnBox is called after a zoom box was applied, with the data
	// corners of the box.
	OnBox func(x0, y0, x1, y1 float64)

	// OnSelect is called on a press in EditMode with the pick result.
	OnSelect func(hit scene.Hit, ok bool)

	// Pointer, Box and Measure are the overlays, inserted in the context.
	Pointer *scene.Pointer
	Box     *scene.Box
	Measure *scene.Measure

	ctx  *scene.Context
	cam2 *camera.Camera2D
	cam3 *camera.Camera3D

	table atomic.Pointer[table]
	mu    sync.Mutex
	mode  Modes

	// modeIDs are the ids bound by the current mode.
	modeIDs []string

	state    States
	button   events.Buttons
	press    image.Point
	last     image.Point
	dragging bool
	measure  mgl64.Vec3
}

// NewDispatcher returns a dispatcher driving the camera of the context,
// which must be a [camera.Camera2D] or a [camera.Camera3D]. The overlays
// are inserted in the context and the handlers of Settings.Mode bound.
func NewDispatcher(ctx *scene.Context, s Settings) (*Dispatcher, error) {
	d := &Dispatcher{Settings: s, ctx: ctx}
	switch cam := ctx.Camera().(type) {
	case *camera.Camera2D:
		d.cam2 = cam
	case *camera.Camera3D:
		d.cam3 = cam
	default:
		return nil, fmt.Errorf("interact.NewDispatcher: unsupported camera %T", cam)
	}
	d.table.Store(&table{})
	d.Pointer = scene.NewPointer(s.Pointer)
	d.Box = scene.NewBox()
	d.Measure = scene.NewMeasure()
	d.Pointer.SetVisible(false)
	ctx.Insert(d.Pointer)
	ctx.Insert(d.Box)
	ctx.Insert(d.Measure)
	d.mode = -1
	d.SetMode(s.Mode)
	return d, nil
}

// Mode returns the current mode.
func (d *Dispatcher) Mode() Modes {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// State returns the state of the drag state machine.
func (d *Dispatcher) State() States { return d.state }

// Bind binds the handler to events of the given type whose button is
// in the mask, under the given id. Handlers are called in bind order.
func (d *Dispatcher) Bind(typ events.Types, id string, buttons events.ButtonMask, fun Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.swap(nil, []Binding{{Type: typ, ID: id, Buttons: buttons, Handler: fun}})
}

// Unbind removes every handler bound under the id and returns
// how many were removed.
func (d *Dispatcher) Unbind(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.swap([]string{id}, nil)
}

// Bound returns the number of handlers bound under the id.
func (d *Dispatcher) Bound(id string) int {
	n := 0
	for _, b := range d.table.Load().binds {
		if b.ID == id {
			n++
		}
	}
	return n
}

// Bindings returns a copy of the current bindings.
func (d *Dispatcher) Bindings() []Binding {
	return slices.Clone(d.table.Load().binds)
}

// swap stores a new table without the bindings of the given ids and
// with the added bindings, and returns the number removed.
// It must be called with mu held.
func (d *Dispatcher) swap(remove []string, add []Binding) int {
	old := d.table.Load().binds
	nt := &table{binds: make([]Binding, 0, len(old)+len(add))}
	for _, b := range old {
		if slices.Contains(remove, b.ID) {
			continue
		}
		nt.binds = append(nt.binds, b)
	}
	nt.binds = append(nt.binds, add...)
	d.table.Store(nt)
	return len(old) - (len(nt.binds) - len(add))
}

// SetMode unbinds every handler of the current mode and binds those of
// the new mode in one table swap. Any drag in progress is cancelled and
// the box and measure overlays are hidden. Handlers bound by the caller
// under other ids are kept.
func (d *Dispatcher) SetMode(m Modes) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m == d.mode {
		return
	}
	add := d.scheme(m)
	removed := d.swap(d.modeIDs, add)
	d.modeIDs = d.modeIDs[:0]
	for _, b := range add {
		if !slices.Contains(d.modeIDs, b.ID) {
			d.modeIDs = append(d.modeIDs, b.ID)
		}
	}
	slog.Debug("interact.Dispatcher: mode switched", "from", d.mode, "to", m, "unbound", removed, "bound", len(add))
	d.mode = m
	d.state = Idle
	d.dragging = false
	d.Box.SetVisible(false)
	d.Measure.SetVisible(false)
}

// Dispatch records the event in the drag state machine, setting its
// Prev and Start positions and drag flags, and calls the matching
// handlers in bind order. A release always returns to Idle.
func (d *Dispatcher) Dispatch(ev *events.Mouse) {
	switch ev.Typ {
	case events.MouseDown:
		d.button = ev.Button
		d.press = ev.Where
		d.last = ev.Where
		d.dragging = false
		ev.Prev, ev.Start = ev.Where, ev.Where
	case events.MouseDrag:
		ev.Prev, ev.Start = d.last, d.press
		if !d.dragging {
			ev.Flags.SetFlag(true, events.DragStart)
			d.dragging = true
		}
		d.last = ev.Where
	case events.MouseUp:
		ev.Prev, ev.Start = d.last, d.press
		if d.dragging {
			ev.Flags.SetFlag(true, events.DragFinish)
		}
		d.last = ev.Where
	case events.MouseMove, events.Scroll:
		ev.Prev = d.last
		d.last = ev.Where
	}
	for _, b := range d.table.Load().binds {
		if b.Type != ev.Typ || !b.Buttons.Has(ev.Button) {
			continue
		}
		b.Handler(ev)
		if ev.IsHandled() {
			break
		}
	}
	if ev.Typ == events.MouseUp {
		d.state = Idle
		d.dragging = false
		d.button = events.NoButton
	}
}

// Replay dispatches the events in order, rendering the context after
// each one, and returns the errors of the renders.
func (d *Dispatcher) Replay(evs ...*events.Mouse) error {
	var errs []error
	for _, ev := range evs {
		ev.ClearHandled()
		d.Dispatch(ev)
		if _, err := d.ctx.DoUpdate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
