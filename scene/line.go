// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/gpu"
	"github.com/sciplot/core/plot"
)

// Line is a 2D data series drawn as a line strip on the z plane
// given by the [ParamZ] parameter. The data is read from a
// [plot.DataSource]; non-finite points are skipped.
type Line struct {
	NodeBase

	// Data is the plotted series. Call SetData to change it.
	Data plot.DataSource
}

// NewLine returns a new line drawing the given data.
func NewLine(data plot.DataSource) *Line {
	ln := &Line{Data: data}
	ln.init("flat", DepthData, color.RGBA{31, 119, 180, 255})
	ln.params[ParamWidth] = 1.0
	return ln
}

func (ln *Line) Kind() string { return "line" }

// SetData sets the plotted series and marks the line dirty.
func (ln *Line) SetData(data plot.DataSource) {
	ln.Data = data
	ln.SetDirty()
}

// points returns the finite points of the data in world coordinates.
func (ln *Line) points() []mgl64.Vec3 {
	if ln.Data == nil {
		return nil
	}
	xs, ys := ln.Data.Data()
	n := min(len(xs), len(ys))
	z := ln.params.Float(ParamZ, 0)
	pts := make([]mgl64.Vec3, 0, n)
	for i := range n {
		x, y := float32(xs[i]), float32(ys[i])
		if math32.IsNaN(x) || math32.IsNaN(y) || math32.IsInf(x, 0) || math32.IsInf(y, 0) {
			continue
		}
		pts = append(pts, mgl64.Vec3{xs[i], ys[i], z})
	}
	return pts
}

func (ln *Line) Build(nb *NodeBase) (Draw, error) {
	pts := ln.points()
	vtx := make([]float32, 0, 3*len(pts))
	for _, p := range pts {
		vtx = append(vtx, float32(p[0]), float32(p[1]), float32(p[2]))
	}
	if err := nb.setVertices(vtx); err != nil {
		return Draw{}, err
	}
	return Draw{Primitive: gpu.LineStrip, Layout: gpu.PosLayout, Count: len(pts)}, nil
}

// HitTest hits the line if a segment passes within the pick radius of
// the pick position on screen. The distance is that of the closest
// point of the segment along the pick ray.
func (ln *Line) HitTest(pq *PickQuery) (float64, bool) {
	return hitPolyline(pq, ln.points())
}

// hitPolyline tests the segments between consecutive points.
// A single point is tested as a zero length segment.
func hitPolyline(pq *PickQuery, pts []mgl64.Vec3) (float64, bool) {
	best := math.Inf(1)
	if len(pts) == 1 {
		pts = []mgl64.Vec3{pts[0], pts[0]}
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		ax, ay, oka := pq.ToScreen(a)
		bx, by, okb := pq.ToScreen(b)
		if !oka || !okb {
			continue
		}
		t, d := closestOnSegment(pq.X, pq.Y, ax, ay, bx, by)
		if d > pq.Radius {
			continue
		}
		p := a.Add(b.Sub(a).Mul(t))
		dist := p.Sub(pq.Ray.Origin).Dot(pq.Ray.Dir)
		if dist < best {
			best = dist
		}
	}
	return best, !math.IsInf(best, 1)
}

// closestOnSegment returns the parameter in [0,1] of the point of
// segment a-b closest to p, and the distance to it.
func closestOnSegment(px, py, ax, ay, bx, by float64) (t, d float64) {
	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	if l2 > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / l2
		t = max(0, min(1, t))
	}
	cx, cy := ax+t*dx-px, ay+t*dy-py
	return t, math.Hypot(cx, cy)
}
