// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// ErrNoShader is returned (wrapped) for a shader name unknown to a provider.
var ErrNoShader = errors.New("gpu: no such shader")

// ShaderProvider supplies the source text of shader sets by logical name.
// The text is opaque to the engine.
type ShaderProvider interface {
	Source(name string) (ShaderSet, error)
}

// ChangeNotifier is implemented by providers whose sources can change
// after programs were compiled from them.
type ChangeNotifier interface {
	// Changed returns the names of the shader sets that changed since
	// the last call, and resets the list.
	Changed() []string
}

// Shader file extensions by stage.
const (
	VertexExt   = ".vert"
	FragmentExt = ".frag"
	GeometryExt = ".geom"
)

//go:embed shaders/*.vert shaders/*.frag
var builtinShaders embed.FS

// MapProvider is an in-memory [ShaderProvider].
type MapProvider struct {
	Sets map[string]ShaderSet
}

// NewMapProvider returns a new empty provider.
func NewMapProvider() *MapProvider {
	return &MapProvider{Sets: make(map[string]ShaderSet)}
}

// Builtin returns a provider holding the built-in shader sets:
// "flat" (uniform color) and "lit" (uniform color with one
// directional light).
func Builtin() *MapProvider {
	mp := NewMapProvider()
	errors.Log(mp.AddFS(builtinShaders, "shaders"))
	return mp
}

// Add adds or replaces the given set under its name.
func (mp *MapProvider) Add(set ShaderSet) {
	mp.Sets[set.Name] = set
}

// AddFS adds every shader set found in the given directory of fsys,
// named by file base name with the stage extension removed.
func (mp *MapProvider) AddFS(fsys fs.FS, dir string) error {
	ents, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, e := range ents {
		name, ok := setName(e.Name())
		if !ok {
			continue
		}
		if _, has := mp.Sets[name]; has {
			continue
		}
		set, err := readSet(func(fn string) ([]byte, error) {
			return fs.ReadFile(fsys, dir+"/"+fn)
		}, name)
		if err != nil {
			return err
		}
		mp.Add(set)
	}
	return nil
}

// Source returns the named set.
func (mp *MapProvider) Source(name string) (ShaderSet, error) {
	set, ok := mp.Sets[name]
	if !ok {
		return set, fmt.Errorf("gpu.MapProvider %q: %w", name, ErrNoShader)
	}
	return set, nil
}

// Names returns the sorted names of the shader sets.
func (mp *MapProvider) Names() []string {
	nms := make([]string, 0, len(mp.Sets))
	for nm := range mp.Sets {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}

// setName returns the shader set name of a stage file name.
func setName(fn string) (string, bool) {
	ext := filepath.Ext(fn)
	switch ext {
	case VertexExt, FragmentExt, GeometryExt:
		return strings.TrimSuffix(fn, ext), true
	}
	return "", false
}

// readSet reads the stages of the named set using the given file reader.
// The vertex and fragment stages are required.
func readSet(read func(fn string) ([]byte, error), name string) (ShaderSet, error) {
	set := ShaderSet{Name: name}
	vs, err := read(name + VertexExt)
	if err != nil {
		return set, fmt.Errorf("gpu: shader %q vertex stage: %w: %w", name, ErrNoShader, err)
	}
	frag, err := read(name + FragmentExt)
	if err != nil {
		return set, fmt.Errorf("gpu: shader %q fragment stage: %w: %w", name, ErrNoShader, err)
	}
	set.Vertex = string(vs)
	set.Fragment = string(frag)
	if gs, err := read(name + GeometryExt); err == nil {
		set.Geometry = string(gs)
	}
	return set, nil
}

// DirProvider reads shader sets from files name.vert, name.frag and
// optional name.geom in a directory. Sources are cached until the
// watcher reports a change to one of their files.
type DirProvider struct {
	// Dir is the shader directory.
	Dir string

	// Watcher watches Dir, nil until Watch is called.
	Watcher *fsnotify.Watcher

	mu      sync.Mutex
	cache   map[string]ShaderSet
	changed []string
	done    chan struct{}
}

// NewDirProvider returns a provider for the given directory, which must exist.
func NewDirProvider(dir string) (*DirProvider, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("gpu.NewDirProvider: %q is not a directory", dir)
	}
	return &DirProvider{Dir: dir, cache: make(map[string]ShaderSet)}, nil
}

// Source returns the named set, reading it from disk if not cached.
func (dp *DirProvider) Source(name string) (ShaderSet, error) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	if set, ok := dp.cache[name]; ok {
		return set, nil
	}
	set, err := readSet(func(fn string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dp.Dir, fn))
	}, name)
	if err != nil {
		return set, err
	}
	dp.cache[name] = set
	return set, nil
}

// Watch starts watching the directory for changes. It is safe to call
// multiple times.
func (dp *DirProvider) Watch() error {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	if dp.Watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(dp.Dir); err != nil {
		w.Close()
		return err
	}
	dp.Watcher = w
	dp.done = make(chan struct{})
	go dp.watch(w, dp.done)
	return nil
}

func (dp *DirProvider) watch(w *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				dp.invalidate(filepath.Base(ev.Name))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			slog.Error("gpu.DirProvider: watcher", "err", err)
		}
	}
}

// invalidate drops the cached set of the given file and queues its name.
func (dp *DirProvider) invalidate(fn string) {
	name, ok := setName(fn)
	if !ok {
		return
	}
	dp.mu.Lock()
	defer dp.mu.Unlock()
	delete(dp.cache, name)
	if !slices.Contains(dp.changed, name) {
		dp.changed = append(dp.changed, name)
		slog.Debug("gpu.DirProvider: shader changed", "name", name)
	}
}

// Changed returns the names of the sets whose files changed since the
// last call. It is called on the render thread.
func (dp *DirProvider) Changed() []string {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	ch := dp.changed
	dp.changed = nil
	return ch
}

// Close stops watching.
func (dp *DirProvider) Close() error {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	if dp.Watcher == nil {
		return nil
	}
	close(dp.done)
	err := dp.Watcher.Close()
	dp.Watcher = nil
	return err
}
