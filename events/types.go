// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer events delivered by the
// windowing layer to the interaction dispatcher.
package events

//go:generate core generate

// Types determines the type of pointer event, and is the level
// at which handlers are bound.
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// MouseMove is sent when the mouse is moving and no button is down.
	MouseMove

	// MouseDrag is sent when the mouse is moving and a button is down.
	// Start is where the button was pressed, and Prev is the previous
	// processed sample.
	MouseDrag

	// Scroll is for scroll wheel events. Delta holds the wheel steps.
	Scroll
)
