// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"unsafe"

	"cogentcore.org/core/base/errors"
)

// ErrReleased is returned when writing to a buffer whose device is gone.
var ErrReleased = errors.New("gpu: buffer has no device")

// Buffer is a named GPU buffer owned by exactly one node. The GPU
// object is created lazily on the first write, rewritten in place
// while the data fits, and only reallocated when the data outgrows it,
// shrinks below a quarter of it, or the target or usage changes.
type Buffer struct {
	// Name is the logical buffer name within its owner, e.g. "vertex".
	Name string

	Target BufferTargets
	Usage  BufferUsages

	dev Device

	// id of the GPU buffer, zero until allocated.
	id BufferID

	// allocSize is the allocated size in bytes.
	allocSize int

	// size is the size in bytes of the current data.
	size int

	// count is the number of elements in the current data.
	count int
}

// NewBuffer returns a new buffer handle. No GPU memory is allocated
// until data is set.
func NewBuffer(dev Device, name string, target BufferTargets, usage BufferUsages) *Buffer {
	return &Buffer{Name: name, Target: target, Usage: usage, dev: dev}
}

// ID returns the GPU buffer id, zero if not allocated.
func (b *Buffer) ID() BufferID { return b.id }

// AllocSize returns the allocated size in bytes.
func (b *Buffer) AllocSize() int { return b.allocSize }

// Size returns the size in bytes of the current data.
func (b *Buffer) Size() int { return b.size }

// Count returns the number of elements last set with [SetBufferFrom].
func (b *Buffer) Count() int { return b.count }

// SetIdentity changes the target and usage. A change of either is a
// change of buffer identity, so the GPU buffer is released and
// reallocated on the next write.
func (b *Buffer) SetIdentity(target BufferTargets, usage BufferUsages) {
	if b.Target == target && b.Usage == usage {
		return
	}
	b.Release()
	b.Target = target
	b.Usage = usage
}

// needsAlloc returns true if data of nb bytes cannot be written in place.
func (b *Buffer) needsAlloc(nb int) bool {
	return b.id == 0 || nb > b.allocSize || nb*4 < b.allocSize
}

// SetFromBytes copies the given bytes to the GPU buffer, creating it if
// it does not exist yet, or if the data does not fit the current
// allocation, and otherwise rewriting the existing buffer in place.
func (b *Buffer) SetFromBytes(from []byte) error {
	if b.dev == nil {
		return fmt.Errorf("gpu.Buffer SetFromBytes %s: %w", b.Name, ErrReleased)
	}
	nb := len(from)
	b.size = nb
	if nb == 0 {
		return nil
	}
	if b.needsAlloc(nb) {
		b.releaseID()
		id, err := b.dev.CreateBuffer(b.Target, b.Usage, from)
		if errors.Log(err) != nil {
			return err
		}
		b.id = id
		b.allocSize = nb
		slog.Debug("gpu.Buffer: allocated", "name", b.Name, "id", id, "size", nb)
		return nil
	}
	return errors.Log(b.dev.WriteBuffer(b.id, b.Target, b.Usage, b.allocSize, from))
}

// SetBufferFrom copies the given values into the buffer, see
// [Buffer.SetFromBytes], and records the element count.
func SetBufferFrom[E any](b *Buffer, from []E) error {
	err := b.SetFromBytes(ToBytes(from))
	if err == nil {
		b.count = len(from)
	}
	return err
}

// releaseID frees the GPU buffer, keeping the handle usable.
func (b *Buffer) releaseID() {
	if b.id == 0 {
		return
	}
	b.dev.ReleaseBuffer(b.id)
	slog.Debug("gpu.Buffer: released", "name", b.Name, "id", b.id)
	b.id = 0
	b.allocSize = 0
}

// Release frees the GPU buffer. The handle remains usable:
// the next write allocates a new buffer.
func (b *Buffer) Release() {
	if b.dev == nil {
		return
	}
	b.releaseID()
	b.size = 0
	b.count = 0
}

// ToBytes returns the memory of the given slice as bytes, without copying.
func ToBytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	var e E
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(e)))
}
