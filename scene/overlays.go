// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

//go:generate core generate

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/gpu"
	"github.com/sciplot/core/plot"
)

// PointerStyles are the styles of the [Pointer] overlay.
type PointerStyles int32 //enums:enum

const (
	// Crosshair draws a horizontal and a vertical line across the extent.
	Crosshair PointerStyles = iota

	// StickyLine draws a vertical line across the extent.
	StickyLine

	// Cross draws a small cross in a circle at the position.
	Cross
)

// circleSegments is the number of segments of the Cross circle.
const circleSegments = 16

// Pointer is the overlay marking the pointer position in data space.
// Its style is fixed when it is created.
type Pointer struct {
	NodeBase

	// Style is the pointer style.
	Style PointerStyles

	// Pos is the pointer position in world coordinates.
	Pos mgl64.Vec3

	// Min and Max are the extent of the Crosshair and StickyLine lines.
	Min, Max mgl64.Vec2

	// Size is the half size of the Cross marker in world units.
	Size float64
}

// NewPointer returns a new pointer overlay of the given style.
func NewPointer(style PointerStyles) *Pointer {
	pt := &Pointer{Style: style, Size: 1}
	pt.init("flat", DepthPointer, color.RGBA{220, 50, 47, 255})
	return pt
}

func (pt *Pointer) Kind() string { return "pointer" }

// SetPos moves the pointer and marks it dirty.
func (pt *Pointer) SetPos(p mgl64.Vec3) {
	if p == pt.Pos {
		return
	}
	pt.Pos = p
	pt.SetDirty()
}

// SetExtent sets the extent of the pointer lines and marks it dirty.
func (pt *Pointer) SetExtent(min, max mgl64.Vec2) {
	pt.Min, pt.Max = min, max
	pt.SetDirty()
}

func (pt *Pointer) Build(nb *NodeBase) (Draw, error) {
	var vtx []float32
	seg := func(x0, y0, x1, y1 float64) {
		z := float32(pt.Pos[2])
		vtx = append(vtx, float32(x0), float32(y0), z, float32(x1), float32(y1), z)
	}
	x, y := pt.Pos[0], pt.Pos[1]
	switch pt.Style {
	case Crosshair:
		seg(pt.Min[0], y, pt.Max[0], y)
		seg(x, pt.Min[1], x, pt.Max[1])
	case StickyLine:
		seg(x, pt.Min[1], x, pt.Max[1])
	case Cross:
		s := pt.Size
		seg(x-s, y-s, x+s, y+s)
		seg(x-s, y+s, x+s, y-s)
		r := float32(s)
		for i := range circleSegments {
			a0 := 2 * math32.Pi * float32(i) / circleSegments
			a1 := 2 * math32.Pi * float32(i+1) / circleSegments
			seg(x+float64(r*math32.Cos(a0)), y+float64(r*math32.Sin(a0)),
				x+float64(r*math32.Cos(a1)), y+float64(r*math32.Sin(a1)))
		}
	}
	if err := nb.setVertices(vtx); err != nil {
		return Draw{}, err
	}
	return Draw{Primitive: gpu.Lines, Layout: gpu.PosLayout, Count: len(vtx) / 3}, nil
}

// Box is the zoom box overlay: a rectangle between two corners.
type Box struct {
	NodeBase

	// From and To are opposite corners in world coordinates.
	From, To mgl64.Vec2
}

// NewBox returns a new hidden zoom box.
func NewBox() *Box {
	bx := &Box{}
	bx.init("flat", DepthBox, color.RGBA{100, 100, 100, 255})
	bx.params[ParamVisible] = false
	return bx
}

func (bx *Box) Kind() string { return "box" }

// SetCorners sets the corners and marks the box dirty.
func (bx *Box) SetCorners(from, to mgl64.Vec2) {
	bx.From, bx.To = from, to
	bx.SetDirty()
}

func (bx *Box) Build(nb *NodeBase) (Draw, error) {
	z := float32(nb.params.Float(ParamZ, 0))
	x0, y0 := float32(bx.From[0]), float32(bx.From[1])
	x1, y1 := float32(bx.To[0]), float32(bx.To[1])
	vtx := []float32{x0, y0, z, x1, y0, z, x1, y1, z, x0, y1, z, x0, y0, z}
	if err := nb.setVertices(vtx); err != nil {
		return Draw{}, err
	}
	return Draw{Primitive: gpu.LineStrip, Layout: gpu.PosLayout, Count: 5}, nil
}

// Measure is the measurement overlay: a segment between two points,
// with a label giving its formatted length.
type Measure struct {
	NodeBase

	// From and To are the end points in world coordinates.
	From, To mgl64.Vec3

	// Decimals is the number of decimals of the label.
	Decimals int
}

// NewMeasure returns a new hidden measurement overlay.
func NewMeasure() *Measure {
	ms := &Measure{Decimals: 3}
	ms.init("flat", DepthMeasure, color.RGBA{38, 139, 210, 255})
	ms.params[ParamVisible] = false
	return ms
}

func (ms *Measure) Kind() string { return "measure" }

// SetPoints sets the end points and marks the overlay dirty.
func (ms *Measure) SetPoints(from, to mgl64.Vec3) {
	ms.From, ms.To = from, to
	ms.SetDirty()
}

// Length returns the distance between the end points.
func (ms *Measure) Length() float64 {
	return ms.To.Sub(ms.From).Len()
}

// Label returns the length formatted with an SI prefix, e.g. "1.500 k".
func (ms *Measure) Label() (string, error) {
	return plot.FormatSI(ms.Length(), ms.Decimals)
}

func (ms *Measure) Build(nb *NodeBase) (Draw, error) {
	vtx := []float32{
		float32(ms.From[0]), float32(ms.From[1]), float32(ms.From[2]),
		float32(ms.To[0]), float32(ms.To[1]), float32(ms.To[2]),
	}
	if err := nb.setVertices(vtx); err != nil {
		return Draw{}, err
	}
	return Draw{Primitive: gpu.Lines, Layout: gpu.PosLayout, Count: 2}, nil
}
