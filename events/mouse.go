// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Buttons is a mouse button.
type Buttons int32 //enums:enum

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// ButtonMask is a set of buttons that a handler is bound to.
// The zero mask matches every button, including NoButton.
type ButtonMask uint8

// Mask returns the mask of the given buttons.
func Mask(buttons ...Buttons) ButtonMask {
	var m ButtonMask
	for _, b := range buttons {
		m |= 1 << b
	}
	return m
}

// Has returns whether the mask matches the button.
func (m ButtonMask) Has(b Buttons) bool {
	return m == 0 || m&(1<<b) != 0
}

// Modifiers are the keyboard modifiers held during a pointer event.
type Modifiers int64 //enums:bitflag

const (
	Shift Modifiers = iota
	Control
	Alt
	Meta
)

// Mods returns the modifier set with the given modifiers held.
func Mods(mods ...Modifiers) Modifiers {
	var md Modifiers
	for _, m := range mods {
		md.SetFlag(true, m)
	}
	return md
}

// DragFlags mark the boundary samples of a drag.
type DragFlags int64 //enums:bitflag

const (
	// DragStart is set on the first drag sample after a press.
	DragStart DragFlags = iota

	// DragFinish is set on the release that ends a drag.
	DragFinish
)

// Mouse is a pointer event. Positions are in screen pixels with
// y growing downward.
type Mouse struct {
	// Typ is the type of the event.
	Typ Types `yaml:"type"`

	// Button is the button pressed or released, or held during a drag.
	Button Buttons `yaml:"button,omitempty"`

	// Where is the position of the event.
	Where image.Point `yaml:"where"`

	// Prev is the position of the previous processed sample,
	// set by the dispatcher.
	Prev image.Point `yaml:"-"`

	// Start is where the button of a drag was pressed,
	// set by the dispatcher.
	Start image.Point `yaml:"-"`

	// Mods are the keyboard modifiers.
	Mods Modifiers `yaml:"mods,omitempty"`

	// Delta is the amount of scrolling, in wheel steps, for Scroll events.
	Delta float64 `yaml:"delta,omitempty"`

	// Flags mark the start and finish samples of a drag.
	Flags DragFlags `yaml:"-"`

	handled bool
}

// NewMouse returns a new MouseDown or MouseUp event.
func NewMouse(typ Types, but Buttons, where image.Point, mods Modifiers) *Mouse {
	return &Mouse{Typ: typ, Button: but, Where: where, Mods: mods}
}

// NewMouseMove returns a new MouseMove event.
func NewMouseMove(where image.Point, mods Modifiers) *Mouse {
	return &Mouse{Typ: MouseMove, Where: where, Mods: mods}
}

// NewMouseDrag returns a new MouseDrag event with the given button held.
func NewMouseDrag(but Buttons, where image.Point, mods Modifiers) *Mouse {
	return &Mouse{Typ: MouseDrag, Button: but, Where: where, Mods: mods}
}

// NewScroll returns a new Scroll event of delta wheel steps.
func NewScroll(where image.Point, delta float64, mods Modifiers) *Mouse {
	return &Mouse{Typ: Scroll, Where: where, Delta: delta, Mods: mods}
}

func (ev *Mouse) String() string {
	if ev.Typ == Scroll {
		return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v}", ev.Typ, ev.Delta, ev.Where, ev.Mods)
	}
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Typ, ev.Button, ev.Where, ev.Mods)
}

// Type returns the type of the event.
func (ev *Mouse) Type() Types { return ev.Typ }

// PrevDelta returns the movement since the previous processed sample.
func (ev *Mouse) PrevDelta() image.Point { return ev.Where.Sub(ev.Prev) }

// StartDelta returns the movement since the button was pressed.
func (ev *Mouse) StartDelta() image.Point { return ev.Where.Sub(ev.Start) }

// IsStart returns whether this is the first sample of a drag.
func (ev *Mouse) IsStart() bool { return ev.Flags.HasFlag(DragStart) }

// IsFinish returns whether this is the release that ends a drag.
func (ev *Mouse) IsFinish() bool { return ev.Flags.HasFlag(DragFinish) }

// SetHandled marks the event as handled: remaining handlers are not called.
func (ev *Mouse) SetHandled() { ev.handled = true }

// IsHandled returns whether the event has been handled.
func (ev *Mouse) IsHandled() bool { return ev.handled }

// ClearHandled resets the handled state, for replaying an event.
func (ev *Mouse) ClearHandled() { ev.handled = false }
