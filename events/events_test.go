// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestButtonMask(t *testing.T) {
	m := Mask(Left, Right)
	assert.True(t, m.Has(Left))
	assert.True(t, m.Has(Right))
	assert.False(t, m.Has(Middle))
	assert.False(t, m.Has(NoButton))
	assert.True(t, ButtonMask(0).Has(NoButton), "the zero mask matches any button")
	assert.True(t, ButtonMask(0).Has(Middle))
}

func TestModifiers(t *testing.T) {
	md := Mods(Shift, Meta)
	assert.Equal(t, "Shift|Meta", md.String())
	assert.True(t, md.HasFlag(Meta))
	assert.False(t, md.HasFlag(Control))
	none := Mods()
	assert.False(t, none.HasFlag(Shift))

	var got Modifiers
	require.NoError(t, got.SetString("Control|Alt"))
	assert.Equal(t, Mods(Control, Alt), got)
	assert.Error(t, got.SetString("Hyper"))
}

func TestMouseDeltas(t *testing.T) {
	ev := NewMouseDrag(Left, image.Pt(30, 40), 0)
	ev.Prev = image.Pt(25, 42)
	ev.Start = image.Pt(10, 10)
	assert.Equal(t, image.Pt(5, -2), ev.PrevDelta())
	assert.Equal(t, image.Pt(20, 30), ev.StartDelta())
	assert.False(t, ev.IsStart())
	ev.Flags.SetFlag(true, DragStart)
	assert.True(t, ev.IsStart())
	assert.Equal(t, "MouseDrag{Button: Left, Pos: (30,40), Mods: }", ev.String())
}

func TestYAMLScript(t *testing.T) {
	src := `
- type: MouseDown
  button: Left
  where: {x: 10, y: 20}
- type: MouseDrag
  button: Left
  where: {x: 15, y: 20}
  mods: Shift
- type: Scroll
  where: {x: 15, y: 20}
  delta: -3
`
	var evs []*Mouse
	require.NoError(t, yaml.Unmarshal([]byte(src), &evs))
	require.Len(t, evs, 3)
	assert.Equal(t, NewMouse(MouseDown, Left, image.Pt(10, 20), 0), evs[0])
	assert.Equal(t, NewMouseDrag(Left, image.Pt(15, 20), Mods(Shift)), evs[1])
	assert.Equal(t, NewScroll(image.Pt(15, 20), -3, 0), evs[2])

	var tp Types
	assert.Error(t, tp.SetString("KeyDown"))
}

func TestQueueOrder(t *testing.T) {
	var q Queue[*Mouse]
	_, ok := q.Next()
	assert.False(t, ok)

	const senders, n = 4, 500
	var wg sync.WaitGroup
	for s := range senders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range n {
				q.Send(NewMouseDrag(Left, image.Pt(i, s), 0))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, senders*n, q.Len())

	// each sender's events arrive in the order sent
	next := make([]int, senders)
	got := q.Drain(func(ev *Mouse) {
		s := ev.Where.Y
		assert.Equal(t, next[s], ev.Where.X, "sender %d", s)
		next[s]++
	})
	assert.Equal(t, senders*n, got)
	assert.Zero(t, q.Len())
	_, ok = q.Next()
	assert.False(t, ok)
}

func TestQueueDrainIncludesNewEvents(t *testing.T) {
	var q Queue[int]
	q.Send(1)
	var got []int
	n := q.Drain(func(v int) {
		got = append(got, v)
		if v < 3 {
			q.Send(v + 1)
		}
	})
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3}, got)
}
