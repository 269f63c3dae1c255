// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is the GPU resource layer of the plotting engine:
// buffer objects with a create-once / rewrite-in-place lifecycle,
// shader programs compiled once per (node kind, shader set) and cached,
// and uniform values broadcast to every program that declares them.
//
// All GPU access goes through the [Device] interface, implemented by
// the OpenGL backend in gpu/glgpu and by the recording device in
// gpu/headless that is used for testing.
package gpu

//go:generate core generate

import "image/color"

// BufferID identifies a GPU buffer object. Zero is never a valid buffer.
type BufferID uint32

// VertexArrayID identifies a vertex array object. Zero is never valid.
type VertexArrayID uint32

// ProgramID identifies a linked shader program. Zero is never valid.
type ProgramID uint32

// BufferTargets are the binding targets of a buffer.
type BufferTargets int32 //enums:enum

const (
	// VertexBuffer holds vertex attributes (VBO).
	VertexBuffer BufferTargets = iota

	// IndexBuffer holds element indexes (IBO).
	IndexBuffer

	// UniformBuffer holds a uniform block.
	UniformBuffer
)

// BufferUsages are the expected update frequencies of a buffer.
type BufferUsages int32 //enums:enum

const (
	StaticDraw BufferUsages = iota
	DynamicDraw
	StreamDraw
)

// Primitives are the primitive types of a draw call.
type Primitives int32 //enums:enum

const (
	Points Primitives = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
)

// Attrib describes one vertex attribute within an interleaved vertex buffer.
type Attrib struct {
	// Name is the attribute name in the vertex shader.
	Name string

	// Size is the number of float32 components.
	Size int

	// Offset is the offset in float32 units from the start of a vertex.
	Offset int
}

// Layout describes an interleaved float32 vertex buffer.
type Layout struct {
	// Stride is the number of float32 values per vertex.
	Stride int

	Attribs []Attrib
}

// PosLayout is the layout of a vertex buffer holding only 3D positions.
var PosLayout = Layout{Stride: 3, Attribs: []Attrib{{Name: "a_pos", Size: 3}}}

// PosNormLayout is the layout of interleaved 3D positions and normals.
var PosNormLayout = Layout{Stride: 6, Attribs: []Attrib{{Name: "a_pos", Size: 3}, {Name: "a_normal", Size: 3, Offset: 3}}}

// DrawCall is a single draw submitted to a [Device].
type DrawCall struct {
	Program     ProgramID
	VertexArray VertexArrayID
	Vertex      BufferID

	// Index is the index buffer; zero for a non-indexed draw.
	Index BufferID

	Layout    Layout
	Primitive Primitives

	// Count is the number of vertices, or indexes for an indexed draw.
	Count int
}

// ShaderSet is the source text of the stages of one shader program.
// Geometry is optional.
type ShaderSet struct {
	Name     string
	Vertex   string
	Fragment string
	Geometry string
}

// Device is the GPU abstraction used by the engine. Implementations
// are not safe for concurrent use; all calls happen on the render thread.
type Device interface {
	// CreateBuffer allocates a new buffer holding data.
	CreateBuffer(target BufferTargets, usage BufferUsages, data []byte) (BufferID, error)

	// WriteBuffer orphans the storage of an existing buffer, keeping its
	// capacity in bytes, and rewrites it from the start with data.
	WriteBuffer(id BufferID, target BufferTargets, usage BufferUsages, capacity int, data []byte) error

	// ReleaseBuffer frees the buffer.
	ReleaseBuffer(id BufferID)

	// CreateVertexArray allocates a vertex array object.
	CreateVertexArray() (VertexArrayID, error)

	// ReleaseVertexArray frees the vertex array object.
	ReleaseVertexArray(id VertexArrayID)

	// CompileProgram compiles and links the shader set.
	CompileProgram(set ShaderSet) (ProgramID, error)

	// ReleaseProgram frees the program.
	ReleaseProgram(id ProgramID)

	// HasUniform returns true if the program declares an active uniform of that name.
	HasUniform(prog ProgramID, name string) bool

	// SetUniform sets the values of a uniform; the number of values
	// selects the type (1-4 floats, mat3, mat4).
	SetUniform(prog ProgramID, name string, values []float32) error

	// Viewport sets the drawing rectangle in pixels.
	Viewport(x, y, w, h int)

	// Clear clears the color and depth buffers.
	Clear(c color.RGBA)

	// Draw issues the draw call.
	Draw(dc DrawCall) error
}
