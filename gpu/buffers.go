// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/ordmap"
)

// Buffers is the ordered set of named buffers owned by one node.
type Buffers struct {
	dev Device

	// buffs holds the buffers in the order they were added.
	buffs ordmap.Map[string, *Buffer]
}

// NewBuffers returns a new empty set of buffers on the given device.
func NewBuffers(dev Device) *Buffers {
	return &Buffers{dev: dev}
}

// Len returns the number of buffers.
func (bs *Buffers) Len() int { return bs.buffs.Len() }

// Names returns the buffer names in order.
func (bs *Buffers) Names() []string { return bs.buffs.Keys() }

// Get returns the named buffer, or nil.
func (bs *Buffers) Get(name string) *Buffer {
	return bs.buffs.ValueByKey(name)
}

// Ensure returns the named buffer, adding it if needed, with the given
// target and usage. An existing buffer with a different target or
// usage is released so that it reallocates on the next write.
func (bs *Buffers) Ensure(name string, target BufferTargets, usage BufferUsages) *Buffer {
	if b, ok := bs.buffs.ValueByKeyTry(name); ok {
		b.SetIdentity(target, usage)
		return b
	}
	b := NewBuffer(bs.dev, name, target, usage)
	bs.buffs.Add(name, b)
	return b
}

// Set writes the given data to the named buffer, see [Buffers.Ensure]
// and [Buffer.SetFromBytes].
func (bs *Buffers) Set(name string, target BufferTargets, usage BufferUsages, data []byte) error {
	return bs.Ensure(name, target, usage).SetFromBytes(data)
}

// Allocated returns true if every buffer has GPU memory.
// An empty set is not allocated.
func (bs *Buffers) Allocated() bool {
	if bs.buffs.Len() == 0 {
		return false
	}
	for _, kv := range bs.buffs.Order {
		if kv.Value.ID() == 0 {
			return false
		}
	}
	return true
}

// Delete releases and removes the named buffer.
func (bs *Buffers) Delete(name string) {
	if b, ok := bs.buffs.ValueByKeyTry(name); ok {
		b.Release()
		bs.buffs.DeleteKey(name)
	}
}

// Release releases all buffers and empties the set.
func (bs *Buffers) Release() {
	for _, kv := range bs.buffs.Order {
		kv.Value.Release()
	}
	bs.buffs.Reset()
}
