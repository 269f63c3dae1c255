// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the render context of the plotting engine:
// an arena of drawable nodes that own their GPU buffers, drawn in
// depth order through a shared program cache, with camera and light
// uniforms broadcast to every program once per frame, and picking of
// nodes under the pointer.
package scene

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/camera"
	"github.com/sciplot/core/gpu"
)

// ErrStaleHandle is returned for a handle to a node that was removed.
var ErrStaleHandle = errors.New("scene: stale node handle")

// Handle references a node in a [Context]. The zero Handle is invalid.
type Handle struct {
	index int32
	gen   uint32
}

// IsValid returns whether the handle was returned by [Context.Insert].
// It does not check that the node still exists.
func (h Handle) IsValid() bool { return h.gen != 0 }

func (h Handle) String() string {
	return fmt.Sprintf("Handle(%d:%d)", h.index, h.gen)
}

// slot is an arena entry.
type slot struct {
	node Node
	gen  uint32

	// seq is the insertion sequence, giving registration order.
	seq uint64
}

// Context owns the nodes of a scene and renders them through a
// [gpu.Device]. Nodes are referenced elsewhere only by [Handle];
// [Context.Insert] and [Context.Remove] are the only ways the set of
// nodes changes. A Context is used from a single render thread.
type Context struct {
	Settings Settings

	// Light is the scene light.
	Light Light

	cam      camera.Camera
	programs *gpu.ProgramCache

	slots []slot
	free  []int32
	seq   uint64

	// NeedsRender is set when anything affecting the image changed
	// since the last render.
	NeedsRender bool

	updating int
	frames   int
}

// NewContext returns a new context rendering on the given device with
// shaders from the given provider, through the given camera.
// Any camera change marks the context as needing a render.
func NewContext(dev gpu.Device, shaders gpu.ShaderProvider, cam camera.Camera, s Settings) *Context {
	ctx := &Context{Settings: s, cam: cam, programs: gpu.NewProgramCache(dev, shaders)}
	ctx.Light.Defaults()
	cam.Observe().OnAny(func(camera.Params) { ctx.SetNeedsRender() })
	ctx.NeedsRender = true
	return ctx
}

// Camera returns the camera of the context.
func (ctx *Context) Camera() camera.Camera { return ctx.cam }

// Programs returns the program cache.
func (ctx *Context) Programs() *gpu.ProgramCache { return ctx.programs }

// Frames returns the number of frames rendered.
func (ctx *Context) Frames() int { return ctx.frames }

// SetNeedsRender sets [Context.NeedsRender].
func (ctx *Context) SetNeedsRender() { ctx.NeedsRender = true }

// Insert adds the node to the context and returns its handle.
// The node is drawn from the next render on.
func (ctx *Context) Insert(n Node) Handle {
	nb := n.AsNode()
	nb.This = n
	nb.ctx = ctx
	if nb.buffers == nil {
		nb.buffers = gpu.NewBuffers(ctx.programs.Device())
	}
	if nb.params == nil {
		nb.params = Params{}
	}
	ctx.seq++
	var idx int32
	if nf := len(ctx.free); nf > 0 {
		idx = ctx.free[nf-1]
		ctx.free = ctx.free[:nf-1]
	} else {
		idx = int32(len(ctx.slots))
		ctx.slots = append(ctx.slots, slot{})
	}
	sl := &ctx.slots[idx]
	sl.gen++
	sl.node = n
	sl.seq = ctx.seq
	h := Handle{index: idx, gen: sl.gen}
	nb.handle = h
	nb.dirty = true
	ctx.SetNeedsRender()
	return h
}

// slot returns the live slot of the handle.
func (ctx *Context) slot(h Handle) (*slot, error) {
	if h.index < 0 || int(h.index) >= len(ctx.slots) {
		return nil, fmt.Errorf("scene: %v: %w", h, ErrStaleHandle)
	}
	sl := &ctx.slots[h.index]
	if sl.gen != h.gen || sl.node == nil {
		return nil, fmt.Errorf("scene: %v: %w", h, ErrStaleHandle)
	}
	return sl, nil
}

// Node returns the node of the handle.
func (ctx *Context) Node(h Handle) (Node, error) {
	sl, err := ctx.slot(h)
	if err != nil {
		return nil, err
	}
	return sl.node, nil
}

// Remove releases the GPU resources of the node and removes it.
// The handle, and any copy of it, is stale afterwards.
func (ctx *Context) Remove(h Handle) error {
	sl, err := ctx.slot(h)
	if err != nil {
		return err
	}
	nb := sl.node.AsNode()
	nb.release()
	nb.ctx = nil
	nb.handle = Handle{}
	sl.node = nil
	ctx.free = append(ctx.free, h.index)
	ctx.SetNeedsRender()
	return nil
}

// Len returns the number of nodes.
func (ctx *Context) Len() int {
	return len(ctx.slots) - len(ctx.free)
}

// Nodes returns the nodes in registration order.
func (ctx *Context) Nodes() []Node {
	sls := ctx.live()
	ns := make([]Node, len(sls))
	for i, sl := range sls {
		ns[i] = sl.node
	}
	return ns
}

// live returns the live slots in registration order.
func (ctx *Context) live() []*slot {
	sls := make([]*slot, 0, ctx.Len())
	for i := range ctx.slots {
		if ctx.slots[i].node != nil {
			sls = append(sls, &ctx.slots[i])
		}
	}
	slices.SortFunc(sls, func(a, b *slot) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return sls
}

// DrawOrder returns the visible nodes in the order they are drawn:
// ascending depth, and registration order within equal depth.
func (ctx *Context) DrawOrder() []Node {
	var ns []Node
	for _, sl := range ctx.live() {
		if sl.node.AsNode().Visible() {
			ns = append(ns, sl.node)
		}
	}
	slices.SortStableFunc(ns, func(a, b Node) int {
		da, db := a.AsNode().Depth(), b.AsNode().Depth()
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})
	return ns
}

// Update calls fun as one change-set: whatever it changes results in
// at most one render, done when the outermost Update returns.
func (ctx *Context) Update(fun func()) error {
	ctx.updating++
	func() {
		defer func() { ctx.updating-- }()
		fun()
	}()
	if ctx.updating > 0 {
		return nil
	}
	_, err := ctx.DoUpdate()
	return err
}

// DoUpdate renders if [Context.NeedsRender] is set, and returns whether
// a frame was rendered. It is called by the frame loop and by
// [Context.Update]. It does nothing within an Update.
func (ctx *Context) DoUpdate() (bool, error) {
	if !ctx.NeedsRender || ctx.updating > 0 {
		return false, nil
	}
	ok, err := ctx.render()
	if ok {
		ctx.NeedsRender = false
	}
	return ok, err
}

// Render renders a frame unconditionally, unless the viewport is empty.
func (ctx *Context) Render() error {
	ok, err := ctx.render()
	if ok {
		ctx.NeedsRender = false
	}
	return err
}

// viewport returns the viewport size, and false if it has no area.
func (ctx *Context) viewport() (w, h float64, ok bool) {
	w, h = ctx.cam.Viewport()
	if !(w >= 1 && h >= 1) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return w, h, false
	}
	return w, h, true
}

func (ctx *Context) render() (bool, error) {
	w, h, ok := ctx.viewport()
	if !ok {
		slog.Debug("scene: render skipped for empty viewport", "width", w, "height", h)
		return false, nil
	}
	ctx.programs.Poll()
	dev := ctx.programs.Device()
	dev.Viewport(0, 0, int(w), int(h))
	dev.Clear(ctx.Settings.Background)
	ctx.SetUniforms()
	var errs []error
	for _, n := range ctx.DrawOrder() {
		if err := n.AsNode().paint(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	ctx.frames++
	return true, errors.Log(errors.Join(errs...))
}

// SetUniforms broadcasts the camera and light uniforms to all programs.
func (ctx *Context) SetUniforms() {
	view := mat4f(ctx.cam.ViewMatrix())
	proj := mat4f(ctx.cam.ProjectionMatrix())
	pos := vec3f(ctx.cam.Position())
	vals := map[string][]float32{
		"u_view":       view[:],
		"u_proj":       proj[:],
		"u_camera_pos": pos[:],
	}
	for k, v := range ctx.Light.Uniforms() {
		vals[k] = v
	}
	ctx.programs.SetUniforms(vals)
}

// Release releases the GPU resources of all nodes and programs.
// Nodes stay in the context and are rebuilt on the next render.
func (ctx *Context) Release() {
	for _, sl := range ctx.live() {
		sl.node.AsNode().release()
	}
	ctx.programs.Release()
	ctx.NeedsRender = true
}

func mat4f(m mgl64.Mat4) mgl32.Mat4 {
	var f mgl32.Mat4
	for i, v := range m {
		f[i] = float32(v)
	}
	return f
}

func vec3f(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
