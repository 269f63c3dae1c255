// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a pick ray in world coordinates. Dir has unit length.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// PickQuery is a pick at a screen position, passed to [HitTester]s.
type PickQuery struct {
	// Ray is the ray through the pixel, from the near plane.
	Ray Ray

	// X, Y is the screen position in pixels.
	X, Y float64

	// Radius is the pick radius in pixels for thin geometry.
	Radius float64

	// Width, Height is the viewport size.
	Width, Height float64

	// ViewProj is the combined view projection matrix.
	ViewProj mgl64.Mat4
}

// ToScreen projects a world point to screen pixels, with false if the
// point is behind the camera.
func (pq *PickQuery) ToScreen(p mgl64.Vec3) (x, y float64, ok bool) {
	c := pq.ViewProj.Mul4x1(p.Vec4(1))
	if c[3] <= 0 {
		return 0, 0, false
	}
	x = (c[0]/c[3] + 1) * 0.5 * pq.Width
	y = (1 - c[1]/c[3]) * 0.5 * pq.Height
	return x, y, true
}

// Hit is the result of a pick.
type Hit struct {
	Handle Handle
	Node   Node

	// Dist is the distance from the ray origin.
	Dist float64

	// Point is the hit point in world coordinates.
	Point mgl64.Vec3
}

// RayAt returns the pick ray through the given screen position, by
// unprojecting the points at the near and far planes through the
// inverse view projection matrix. It returns false for an empty
// viewport or a singular matrix.
func (ctx *Context) RayAt(x, y float64) (Ray, bool) {
	pq, ok := ctx.query(x, y)
	return pq.Ray, ok
}

func (ctx *Context) query(x, y float64) (*PickQuery, bool) {
	w, h, ok := ctx.viewport()
	if !ok {
		return &PickQuery{}, false
	}
	vp := ctx.cam.ProjectionMatrix().Mul4(ctx.cam.ViewMatrix())
	pq := &PickQuery{X: x, Y: y, Radius: ctx.Settings.PickRadius, Width: w, Height: h, ViewProj: vp}
	if vp.Det() == 0 {
		return pq, false
	}
	inv := vp.Inv()
	nx := 2*x/w - 1
	ny := 1 - 2*y/h
	near := unproject(inv, nx, ny, -1)
	far := unproject(inv, nx, ny, 1)
	d := far.Sub(near)
	if d.Len() == 0 || !finite3(near) || !finite3(d) {
		return pq, false
	}
	pq.Ray = Ray{Origin: near, Dir: d.Normalize()}
	return pq, true
}

func unproject(inv mgl64.Mat4, x, y, z float64) mgl64.Vec3 {
	p := inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	return p.Vec3().Mul(1 / p[3])
}

func finite3(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Pick returns the closest visible pickable node under the given screen
// position. Nodes are tested in registration order and a later node only
// wins if it is strictly closer, so the first registered of equally close
// nodes is picked.
func (ctx *Context) Pick(x, y float64) (Hit, bool) {
	pq, ok := ctx.query(x, y)
	if !ok {
		return Hit{}, false
	}
	best := Hit{Dist: math.Inf(1)}
	found := false
	for _, sl := range ctx.live() {
		nb := sl.node.AsNode()
		if !nb.Visible() {
			continue
		}
		ht, ok := sl.node.(HitTester)
		if !ok {
			continue
		}
		d, hit := ht.HitTest(pq)
		if !hit || !(d < best.Dist) {
			continue
		}
		best = Hit{Handle: nb.handle, Node: sl.node, Dist: d, Point: pq.Ray.At(d)}
		found = true
	}
	return best, found
}
