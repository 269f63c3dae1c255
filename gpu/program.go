// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
)

// ProgramKey identifies a cached program: the node kind using it and
// the logical name of its shader set.
type ProgramKey struct {
	Kind   string
	Shader string
}

func (pk ProgramKey) String() string {
	return pk.Kind + "/" + pk.Shader
}

// Program is a compiled shader program in a [ProgramCache].
type Program struct {
	Key ProgramKey
	ID  ProgramID
}

// ProgramCache compiles each (node kind, shader set) program once and
// keeps it until it is invalidated or released. Uniform values set on
// the cache are broadcast to every program that declares them, and are
// applied to programs compiled later.
type ProgramCache struct {
	// Shaders provides the shader sources.
	Shaders ShaderProvider

	dev Device

	progs ordmap.Map[ProgramKey, *Program]

	// uniforms are the last values of each uniform, in order first set.
	uniforms ordmap.Map[string, []float32]
}

// NewProgramCache returns a new cache compiling programs on the given
// device from the given shader sources.
func NewProgramCache(dev Device, shaders ShaderProvider) *ProgramCache {
	return &ProgramCache{dev: dev, Shaders: shaders}
}

// Device returns the device of the cache.
func (pc *ProgramCache) Device() Device { return pc.dev }

// Len returns the number of compiled programs.
func (pc *ProgramCache) Len() int { return pc.progs.Len() }

// Program returns the program for the given node kind and shader set,
// compiling it if it is not cached yet.
func (pc *ProgramCache) Program(kind, shader string) (*Program, error) {
	key := ProgramKey{Kind: kind, Shader: shader}
	if pr, ok := pc.progs.ValueByKeyTry(key); ok {
		return pr, nil
	}
	if pc.Shaders == nil {
		return nil, fmt.Errorf("gpu.ProgramCache %s: %w", key, ErrNoShader)
	}
	set, err := pc.Shaders.Source(shader)
	if err != nil {
		return nil, err
	}
	id, err := pc.dev.CompileProgram(set)
	if err != nil {
		return nil, fmt.Errorf("gpu.ProgramCache %s: %w", key, err)
	}
	pr := &Program{Key: key, ID: id}
	pc.progs.Add(key, pr)
	slog.Debug("gpu.ProgramCache: compiled", "program", key.String(), "id", id)
	for _, kv := range pc.uniforms.Order {
		pc.setUniform(pr, kv.Key, kv.Value)
	}
	return pr, nil
}

// setUniform sets the uniform on the program if the program declares it.
func (pc *ProgramCache) setUniform(pr *Program, name string, vals []float32) bool {
	if !pc.dev.HasUniform(pr.ID, name) {
		return false
	}
	errors.Log(pc.dev.SetUniform(pr.ID, name, vals))
	return true
}

// SetUniform sets the named uniform on every cached program declaring
// it, and records the values for programs compiled later. It returns
// the number of programs that were set.
func (pc *ProgramCache) SetUniform(name string, vals []float32) int {
	pc.uniforms.Add(name, slices.Clone(vals))
	n := 0
	for _, kv := range pc.progs.Order {
		if pc.setUniform(kv.Value, name, vals) {
			n++
		}
	}
	return n
}

// SetUniforms calls [ProgramCache.SetUniform] for each of the given
// values, in sorted name order.
func (pc *ProgramCache) SetUniforms(vals map[string][]float32) {
	names := make([]string, 0, len(vals))
	for nm := range vals {
		names = append(names, nm)
	}
	slices.Sort(names)
	for _, nm := range names {
		pc.SetUniform(nm, vals[nm])
	}
}

// SetProgramUniform sets a uniform on a single program, for per-node
// values such as the model matrix and color. Missing uniforms are skipped.
func (pc *ProgramCache) SetProgramUniform(pr *Program, name string, vals []float32) {
	pc.setUniform(pr, name, vals)
}

// Uniform returns the last values broadcast for the named uniform.
func (pc *ProgramCache) Uniform(name string) ([]float32, bool) {
	return pc.uniforms.ValueByKeyTry(name)
}

// Invalidate releases every program compiled from the named shader set,
// so that it is recompiled from fresh source on next use. It returns
// the number of programs released.
func (pc *ProgramCache) Invalidate(shader string) int {
	var keys []ProgramKey
	for _, kv := range pc.progs.Order {
		if kv.Key.Shader == shader {
			keys = append(keys, kv.Key)
		}
	}
	for _, k := range keys {
		pr := pc.progs.ValueByKey(k)
		pc.dev.ReleaseProgram(pr.ID)
		pc.progs.DeleteKey(k)
		slog.Debug("gpu.ProgramCache: invalidated", "program", k.String())
	}
	return len(keys)
}

// Poll invalidates the programs of every shader set reported changed
// by the provider, if it is a [ChangeNotifier].
func (pc *ProgramCache) Poll() {
	cn, ok := pc.Shaders.(ChangeNotifier)
	if !ok {
		return
	}
	for _, nm := range cn.Changed() {
		pc.Invalidate(nm)
	}
}

// Release releases all programs.
func (pc *ProgramCache) Release() {
	for _, kv := range pc.progs.Order {
		pc.dev.ReleaseProgram(kv.Value.ID)
	}
	pc.progs.Reset()
}
