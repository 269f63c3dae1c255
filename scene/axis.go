// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/gpu"
	"github.com/sciplot/core/plot"
)

// AxisLines draws the line, tick marks and optional grid lines of one
// [plot.Axis] along world dimension Dim. Call SetDirty after the axis
// ticks changed, e.g. from a camera space OnUpdate.
type AxisLines struct {
	NodeBase

	// Axis provides the range and ticks.
	Axis *plot.Axis

	// Dim is the world dimension of the axis: 0, 1 or 2.
	Dim int

	// Origin is the position of the axis line; its Dim component is ignored.
	Origin mgl64.Vec3

	// Tick is the vector of a tick mark from the axis line, in world units.
	Tick mgl64.Vec3

	// Grid is the vector of a grid line from the axis line; zero for none.
	Grid mgl64.Vec3
}

// Label is a tick label to be drawn at a world position.
type Label struct {
	Pos  mgl64.Vec3
	Text string
}

// NewAxisLines returns a new axis node for the given axis along dim.
func NewAxisLines(ax *plot.Axis, dim int, origin, tick mgl64.Vec3) *AxisLines {
	al := &AxisLines{Axis: ax, Dim: dim, Origin: origin, Tick: tick}
	al.init("flat", DepthAxis, color.RGBA{0, 0, 0, 255})
	return al
}

func (al *AxisLines) Kind() string { return "axis" }

// at returns the point of the axis line at data value v.
func (al *AxisLines) at(v float64) mgl64.Vec3 {
	p := al.Origin
	p[al.Dim] = v
	return p
}

func (al *AxisLines) Build(nb *NodeBase) (Draw, error) {
	var vtx []float32
	seg := func(a, b mgl64.Vec3) {
		vtx = append(vtx, float32(a[0]), float32(a[1]), float32(a[2]), float32(b[0]), float32(b[1]), float32(b[2]))
	}
	if al.Axis != nil {
		mn, mx := al.Axis.Range()
		seg(al.at(mn), al.at(mx))
		ts := al.Axis.Ticks()
		grid := al.Grid.Len() > 0
		for _, v := range ts.Values {
			p := al.at(v)
			seg(p, p.Add(al.Tick))
			if grid {
				seg(p, p.Add(al.Grid))
			}
		}
	}
	if err := nb.setVertices(vtx); err != nil {
		return Draw{}, err
	}
	return Draw{Primitive: gpu.Lines, Layout: gpu.PosLayout, Count: len(vtx) / 3}, nil
}

// Labels returns the tick labels, positioned beyond the tick marks,
// and the SI prefix that applies to all of them.
func (al *AxisLines) Labels() ([]Label, string) {
	if al.Axis == nil {
		return nil, ""
	}
	ts := al.Axis.Ticks()
	txt := ts.Labels()
	lbs := make([]Label, len(txt))
	off := al.Tick.Mul(2)
	for i, v := range ts.Values {
		lbs[i] = Label{Pos: al.at(v).Add(off), Text: txt[i]}
	}
	return lbs, ts.SIPrefix
}
