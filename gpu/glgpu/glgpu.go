// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.Device] on OpenGL 4.1 core.
// All methods must be called on the thread that owns the current
// GL context, after [Init].
package glgpu

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/sciplot/core/gpu"
)

// Init initializes the GL function pointers for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("glgpu.Init: %w", err)
	}
	slog.Debug("glgpu: initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

// Device is the OpenGL [gpu.Device].
type Device struct {
	// uniforms caches uniform locations per program; -1 is not declared.
	uniforms map[gpu.ProgramID]map[string]int32
}

var _ gpu.Device = (*Device)(nil)

// NewDevice returns a new device and sets the default GL state:
// depth test and alpha blending.
func NewDevice() *Device {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return &Device{uniforms: make(map[gpu.ProgramID]map[string]int32)}
}

func glTarget(t gpu.BufferTargets) uint32 {
	switch t {
	case gpu.IndexBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	case gpu.UniformBuffer:
		return gl.UNIFORM_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func glUsage(u gpu.BufferUsages) uint32 {
	switch u {
	case gpu.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case gpu.StreamDraw:
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

func glPrimitive(p gpu.Primitives) uint32 {
	switch p {
	case gpu.Points:
		return gl.POINTS
	case gpu.Lines:
		return gl.LINES
	case gpu.LineStrip:
		return gl.LINE_STRIP
	case gpu.TriangleStrip:
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}

func (dv *Device) CreateBuffer(target gpu.BufferTargets, usage gpu.BufferUsages, data []byte) (gpu.BufferID, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glgpu.CreateBuffer: GenBuffers failed")
	}
	tg := glTarget(target)
	gl.BindBuffer(tg, id)
	gl.BufferData(tg, len(data), gl.Ptr(data), glUsage(usage))
	return gpu.BufferID(id), nil
}

func (dv *Device) WriteBuffer(id gpu.BufferID, target gpu.BufferTargets, usage gpu.BufferUsages, capacity int, data []byte) error {
	if len(data) > capacity {
		return fmt.Errorf("glgpu.WriteBuffer: %d bytes exceeds capacity %d", len(data), capacity)
	}
	tg := glTarget(target)
	gl.BindBuffer(tg, uint32(id))
	gl.BufferData(tg, capacity, nil, glUsage(usage))
	if len(data) > 0 {
		gl.BufferSubData(tg, 0, len(data), gl.Ptr(data))
	}
	return nil
}

func (dv *Device) ReleaseBuffer(id gpu.BufferID) {
	bid := uint32(id)
	gl.DeleteBuffers(1, &bid)
}

func (dv *Device) CreateVertexArray() (gpu.VertexArrayID, error) {
	var id uint32
	gl.GenVertexArrays(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("glgpu.CreateVertexArray: GenVertexArrays failed")
	}
	return gpu.VertexArrayID(id), nil
}

func (dv *Device) ReleaseVertexArray(id gpu.VertexArrayID) {
	vid := uint32(id)
	gl.DeleteVertexArrays(1, &vid)
}

func compileShader(kind uint32, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(sh, n, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func (dv *Device) CompileProgram(set gpu.ShaderSet) (gpu.ProgramID, error) {
	stages := []struct {
		kind uint32
		src  string
	}{{gl.VERTEX_SHADER, set.Vertex}, {gl.FRAGMENT_SHADER, set.Fragment}, {gl.GEOMETRY_SHADER, set.Geometry}}
	prog := gl.CreateProgram()
	var shs []uint32
	defer func() {
		for _, sh := range shs {
			gl.DeleteShader(sh)
		}
	}()
	for _, st := range stages {
		if st.src == "" {
			continue
		}
		sh, err := compileShader(st.kind, st.src)
		if err != nil {
			gl.DeleteProgram(prog)
			return 0, fmt.Errorf("glgpu: shader %q: %w", set.Name, err)
		}
		gl.AttachShader(prog, sh)
		shs = append(shs, sh)
	}
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		log := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prog, n, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("glgpu: shader %q: link error: %s", set.Name, strings.TrimRight(log, "\x00"))
	}
	dv.uniforms[gpu.ProgramID(prog)] = make(map[string]int32)
	return gpu.ProgramID(prog), nil
}

func (dv *Device) ReleaseProgram(id gpu.ProgramID) {
	gl.DeleteProgram(uint32(id))
	delete(dv.uniforms, id)
}

// location returns the cached uniform location, -1 if not active.
func (dv *Device) location(prog gpu.ProgramID, name string) int32 {
	locs, ok := dv.uniforms[prog]
	if !ok {
		return -1
	}
	if loc, ok := locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(uint32(prog), gl.Str(name+"\x00"))
	locs[name] = loc
	return loc
}

func (dv *Device) HasUniform(prog gpu.ProgramID, name string) bool {
	return dv.location(prog, name) >= 0
}

func (dv *Device) SetUniform(prog gpu.ProgramID, name string, v []float32) error {
	loc := dv.location(prog, name)
	if loc < 0 {
		return fmt.Errorf("glgpu.SetUniform: no active uniform %q", name)
	}
	if len(v) == 0 {
		return nil
	}
	gl.UseProgram(uint32(prog))
	switch len(v) {
	case 1:
		gl.Uniform1fv(loc, 1, &v[0])
	case 2:
		gl.Uniform2fv(loc, 1, &v[0])
	case 3:
		gl.Uniform3fv(loc, 1, &v[0])
	case 4:
		gl.Uniform4fv(loc, 1, &v[0])
	case 9:
		gl.UniformMatrix3fv(loc, 1, false, &v[0])
	case 16:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	default:
		gl.Uniform1fv(loc, int32(len(v)), &v[0])
	}
	return nil
}

func (dv *Device) Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (dv *Device) Clear(c color.RGBA) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (dv *Device) Draw(dc gpu.DrawCall) error {
	prog := uint32(dc.Program)
	gl.UseProgram(prog)
	gl.BindVertexArray(uint32(dc.VertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(dc.Vertex))
	for _, at := range dc.Layout.Attribs {
		loc := gl.GetAttribLocation(prog, gl.Str(at.Name+"\x00"))
		if loc < 0 {
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), int32(at.Size), gl.FLOAT, false, int32(dc.Layout.Stride*4), gl.PtrOffset(at.Offset*4))
	}
	mode := glPrimitive(dc.Primitive)
	if dc.Index != 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(dc.Index))
		gl.DrawElements(mode, int32(dc.Count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(mode, 0, int32(dc.Count))
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("glgpu.Draw: GL error 0x%x", code)
	}
	return nil
}
