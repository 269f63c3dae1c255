// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless provides a [gpu.Device] that keeps all resources in
// memory and records every operation, for testing and for running the
// engine without a window.
package headless

import (
	"fmt"
	"image/color"
	"regexp"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/sciplot/core/gpu"
)

// Buffer is the in-memory state of a buffer.
type Buffer struct {
	Target   gpu.BufferTargets
	Usage    gpu.BufferUsages
	Capacity int
	Data     []byte

	// Writes is the number of in-place rewrites.
	Writes int
}

// Program is the in-memory state of a program.
type Program struct {
	Set gpu.ShaderSet

	// Declared are the uniforms declared by the shader sources.
	Declared map[string]bool

	// Uniforms are the current uniform values.
	Uniforms map[string][]float32
}

// Device is a recording [gpu.Device].
type Device struct {
	Buffers  map[gpu.BufferID]*Buffer
	Programs map[gpu.ProgramID]*Program
	Arrays   map[gpu.VertexArrayID]bool

	// Counters of buffer operations since creation or [Device.Reset].
	Creates, Writes, Releases int

	// Compiles is the number of programs compiled.
	Compiles int

	// Draws are the draw calls issued.
	Draws []gpu.DrawCall

	// Clears is the number of clears, ClearColor the last clear color.
	Clears     int
	ClearColor color.RGBA

	// ViewportRect is the last viewport: x, y, w, h.
	ViewportRect [4]int

	// FailCompile, if set, makes CompileProgram fail for that shader name.
	FailCompile string

	nextID uint32
}

var _ gpu.Device = (*Device)(nil)

// NewDevice returns a new empty device.
func NewDevice() *Device {
	return &Device{
		Buffers:  make(map[gpu.BufferID]*Buffer),
		Programs: make(map[gpu.ProgramID]*Program),
		Arrays:   make(map[gpu.VertexArrayID]bool),
	}
}

// Reset clears the counters and recorded draws, keeping resources.
func (dv *Device) Reset() {
	dv.Creates, dv.Writes, dv.Releases, dv.Compiles, dv.Clears = 0, 0, 0, 0, 0
	dv.Draws = nil
}

func (dv *Device) newID() uint32 {
	dv.nextID++
	return dv.nextID
}

func (dv *Device) CreateBuffer(target gpu.BufferTargets, usage gpu.BufferUsages, data []byte) (gpu.BufferID, error) {
	id := gpu.BufferID(dv.newID())
	dv.Buffers[id] = &Buffer{Target: target, Usage: usage, Capacity: len(data), Data: slices.Clone(data)}
	dv.Creates++
	return id, nil
}

func (dv *Device) WriteBuffer(id gpu.BufferID, target gpu.BufferTargets, usage gpu.BufferUsages, capacity int, data []byte) error {
	b, ok := dv.Buffers[id]
	if !ok {
		return fmt.Errorf("headless.WriteBuffer: no buffer %d", id)
	}
	if len(data) > capacity {
		return fmt.Errorf("headless.WriteBuffer: %d bytes exceeds capacity %d", len(data), capacity)
	}
	b.Target, b.Usage, b.Capacity = target, usage, capacity
	b.Data = append(b.Data[:0], data...)
	b.Writes++
	dv.Writes++
	return nil
}

func (dv *Device) ReleaseBuffer(id gpu.BufferID) {
	if _, ok := dv.Buffers[id]; ok {
		delete(dv.Buffers, id)
		dv.Releases++
	}
}

func (dv *Device) CreateVertexArray() (gpu.VertexArrayID, error) {
	id := gpu.VertexArrayID(dv.newID())
	dv.Arrays[id] = true
	return id, nil
}

func (dv *Device) ReleaseVertexArray(id gpu.VertexArrayID) {
	delete(dv.Arrays, id)
}

// uniformDecl matches a uniform declaration, capturing its name.
var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)

func (dv *Device) CompileProgram(set gpu.ShaderSet) (gpu.ProgramID, error) {
	if set.Name == dv.FailCompile {
		return 0, errors.New("headless.CompileProgram: compile error in " + set.Name)
	}
	if set.Vertex == "" || set.Fragment == "" {
		return 0, fmt.Errorf("headless.CompileProgram: %q is missing a stage", set.Name)
	}
	pr := &Program{Set: set, Declared: make(map[string]bool), Uniforms: make(map[string][]float32)}
	for _, src := range []string{set.Vertex, set.Fragment, set.Geometry} {
		for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
			pr.Declared[m[1]] = true
		}
	}
	id := gpu.ProgramID(dv.newID())
	dv.Programs[id] = pr
	dv.Compiles++
	return id, nil
}

func (dv *Device) ReleaseProgram(id gpu.ProgramID) {
	delete(dv.Programs, id)
}

func (dv *Device) HasUniform(prog gpu.ProgramID, name string) bool {
	pr, ok := dv.Programs[prog]
	return ok && pr.Declared[name]
}

func (dv *Device) SetUniform(prog gpu.ProgramID, name string, values []float32) error {
	pr, ok := dv.Programs[prog]
	if !ok {
		return fmt.Errorf("headless.SetUniform: no program %d", prog)
	}
	if !pr.Declared[name] {
		return fmt.Errorf("headless.SetUniform: program %q has no uniform %q", pr.Set.Name, name)
	}
	pr.Uniforms[name] = slices.Clone(values)
	return nil
}

func (dv *Device) Viewport(x, y, w, h int) {
	dv.ViewportRect = [4]int{x, y, w, h}
}

func (dv *Device) Clear(c color.RGBA) {
	dv.Clears++
	dv.ClearColor = c
}

func (dv *Device) Draw(dc gpu.DrawCall) error {
	if _, ok := dv.Programs[dc.Program]; !ok {
		return fmt.Errorf("headless.Draw: no program %d", dc.Program)
	}
	if _, ok := dv.Buffers[dc.Vertex]; !ok {
		return fmt.Errorf("headless.Draw: no vertex buffer %d", dc.Vertex)
	}
	if dc.Index != 0 {
		if _, ok := dv.Buffers[dc.Index]; !ok {
			return fmt.Errorf("headless.Draw: no index buffer %d", dc.Index)
		}
	}
	dv.Draws = append(dv.Draws, dc)
	return nil
}

// UniformOf returns the current value of a uniform of the program
// compiled from the named shader set, for the first such program.
func (dv *Device) UniformOf(shader, name string) ([]float32, bool) {
	ids := make([]gpu.ProgramID, 0, len(dv.Programs))
	for id := range dv.Programs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		pr := dv.Programs[id]
		if pr.Set.Name != shader {
			continue
		}
		v, ok := pr.Uniforms[name]
		return v, ok
	}
	return nil, false
}
