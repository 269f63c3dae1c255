// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sciplot/core/gpu"
)

// Default depths of the node kinds. Nodes are drawn in ascending depth,
// so overlays draw after data.
const (
	DepthData    = 0
	DepthAxis    = 50
	DepthBox     = 90
	DepthMeasure = 95
	DepthPointer = 100
)

// Node is a drawable element of a [Context].
type Node interface {
	// AsNode returns the [NodeBase] of the node.
	AsNode() *NodeBase

	// Kind returns the name of the node type, used with the shader
	// name to key the program cache.
	Kind() string

	// Build regenerates the vertex data of the node from its parameters,
	// writes it to the node buffers, and returns how to draw it.
	// It is only called when the node is dirty or its buffers are missing.
	Build(nb *NodeBase) (Draw, error)
}

// HitTester is implemented by nodes that can be picked.
type HitTester interface {
	// HitTest returns the distance from the ray origin to the closest
	// hit of the node along the pick ray, and whether there is a hit.
	HitTest(pq *PickQuery) (dist float64, ok bool)
}

// Draw describes the draw call of a node: its buffers are the node
// buffers named "vertex" and, if Indexed, "index".
type Draw struct {
	Primitive gpu.Primitives
	Layout    gpu.Layout
	Count     int
	Indexed   bool
}

// Buffer names used by the node kinds.
const (
	VertexBuffer = "vertex"
	IndexBuffer  = "index"
)

// NodeBase is the part common to all nodes: the parameters, the GPU
// buffers exclusively owned by the node, and the dirty flag.
// A node kind embeds NodeBase and implements [Node].
type NodeBase struct {
	// This is the node embedding this base, set on [Context.Insert].
	This Node

	// Name is an optional name for the node.
	Name string

	// Shader is the name of the shader set of the node.
	Shader string

	params Params
	ctx    *Context
	handle Handle

	buffers *gpu.Buffers
	vao     gpu.VertexArrayID
	draw    Draw

	// dirty is set when the parameters changed since the last build.
	dirty bool

	// built is set by a successful build and cleared on release.
	built bool

	// builds counts calls to Build, for tests.
	builds int
}

// init sets the defaults of a new node base.
func (nb *NodeBase) init(shader string, depth float64, c color.RGBA) {
	nb.Shader = shader
	nb.params = Params{ParamDepth: depth, ParamVisible: true, ParamColor: c}
	nb.dirty = true
}

func (nb *NodeBase) AsNode() *NodeBase { return nb }

// Handle returns the handle of the node in its context.
func (nb *NodeBase) Handle() Handle { return nb.handle }

// Params returns the current parameters. They must not be modified:
// use [NodeBase.SetProperties].
func (nb *NodeBase) Params() Params { return nb.params }

// Depth returns the draw order depth.
func (nb *NodeBase) Depth() float64 { return nb.params.Float(ParamDepth, DepthData) }

// Visible returns whether the node is drawn and picked.
func (nb *NodeBase) Visible() bool { return nb.params.Bool(ParamVisible, true) }

// Color returns the node color.
func (nb *NodeBase) Color() color.RGBA { return nb.params.Color(ParamColor, color.RGBA{A: 255}) }

// IsDirty returns whether the node needs to be rebuilt.
func (nb *NodeBase) IsDirty() bool { return nb.dirty }

// Builds returns the number of times the node was built.
func (nb *NodeBase) Builds() int { return nb.builds }

// Buffers returns the node buffers, nil until the node is in a context.
func (nb *NodeBase) Buffers() *gpu.Buffers { return nb.buffers }

// SetProperties merges the patch into the parameters. If anything
// changed, the node is marked dirty and the context needs a render.
// No GPU work is done until the next paint.
func (nb *NodeBase) SetProperties(patch Params) {
	if nb.params == nil {
		nb.params = Params{}
	}
	if len(nb.params.Merge(patch)) == 0 {
		return
	}
	nb.SetDirty()
}

// SetVisible sets the [ParamVisible] parameter.
func (nb *NodeBase) SetVisible(visible bool) {
	nb.SetProperties(Params{ParamVisible: visible})
}

// SetDirty marks the node as needing to be rebuilt on the next paint.
func (nb *NodeBase) SetDirty() {
	nb.dirty = true
	if nb.ctx != nil {
		nb.ctx.SetNeedsRender()
	}
}

// build rebuilds the node if it is dirty or its buffers are missing.
// A node that drew nothing has no buffers to miss.
func (nb *NodeBase) build() error {
	if !nb.dirty && nb.built && (nb.draw.Count == 0 || nb.buffers.Allocated()) {
		return nil
	}
	dr, err := nb.This.Build(nb)
	nb.builds++
	if err != nil {
		return err
	}
	nb.draw = dr
	nb.dirty = false
	nb.built = true
	return nil
}

// paint builds the node if needed and draws it.
func (nb *NodeBase) paint(ctx *Context) error {
	if err := nb.build(); err != nil {
		return fmt.Errorf("scene: build %s %q: %w", nb.This.Kind(), nb.Name, err)
	}
	if nb.draw.Count == 0 {
		return nil
	}
	pr, err := ctx.programs.Program(nb.This.Kind(), nb.Shader)
	if err != nil {
		return err
	}
	dev := ctx.programs.Device()
	if nb.vao == 0 {
		if nb.vao, err = dev.CreateVertexArray(); err != nil {
			return err
		}
	}
	ctx.programs.SetProgramUniform(pr, "u_color", colorUniform(nb.Color()))
	model := mgl32.Ident4()
	ctx.programs.SetProgramUniform(pr, "u_model", model[:])
	dc := gpu.DrawCall{
		Program:     pr.ID,
		VertexArray: nb.vao,
		Vertex:      nb.buffers.Get(VertexBuffer).ID(),
		Layout:      nb.draw.Layout,
		Primitive:   nb.draw.Primitive,
		Count:       nb.draw.Count,
	}
	if nb.draw.Indexed {
		dc.Index = nb.buffers.Get(IndexBuffer).ID()
	}
	return dev.Draw(dc)
}

// release frees the GPU resources of the node.
func (nb *NodeBase) release() {
	if nb.buffers != nil {
		nb.buffers.Release()
	}
	if nb.vao != 0 && nb.ctx != nil {
		nb.ctx.programs.Device().ReleaseVertexArray(nb.vao)
		nb.vao = 0
	}
	nb.dirty = true
	nb.built = false
	slog.Debug("scene: released node", "kind", nb.This.Kind(), "name", nb.Name)
}

// setVertices writes float32 vertex data to the vertex buffer.
func (nb *NodeBase) setVertices(vtx []float32) error {
	return gpu.SetBufferFrom(nb.buffers.Ensure(VertexBuffer, gpu.VertexBuffer, gpu.DynamicDraw), vtx)
}

// setIndices writes index data to the index buffer.
func (nb *NodeBase) setIndices(idx []uint32) error {
	return gpu.SetBufferFrom(nb.buffers.Ensure(IndexBuffer, gpu.IndexBuffer, gpu.StaticDraw), idx)
}
