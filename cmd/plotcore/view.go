// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"runtime"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/camera"
	"github.com/sciplot/core/events"
	"github.com/sciplot/core/gpu"
	"github.com/sciplot/core/gpu/glgpu"
	"github.com/sciplot/core/interact"
	"github.com/sciplot/core/plot"
	"github.com/sciplot/core/scene"
	"github.com/spf13/cobra"
)

func init() {
	// glfw and GL calls must be made on the main thread
	runtime.LockOSThread()
}

func newViewCommand() *cobra.Command {
	var (
		width, height int
		shaderDir     string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window with an interactive demo plot",
		Long: `Opens a window with an OpenGL 4.1 context and renders a demo line plot
with axes. Left drag pans, right drag zooms to a box and the wheel zooms,
in the interaction mode selected with --mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return view(width, height, shaderDir)
		},
	}
	cmd.Flags().IntVar(&width, "width", 1024, "window width")
	cmd.Flags().IntVar(&height, "height", 768, "window height")
	cmd.Flags().StringVar(&shaderDir, "shaders", "", "directory of shader sources to use and watch instead of the builtin ones")
	return cmd
}

// view runs the window until it is closed.
func view(width, height int, shaderDir string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("view: glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(width, height, "plotcore", nil, nil)
	if err != nil {
		return fmt.Errorf("view: create window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := glgpu.Init(); err != nil {
		return err
	}

	var shaders gpu.ShaderProvider = gpu.Builtin()
	var dir *gpu.DirProvider
	if shaderDir != "" {
		dir, err = gpu.NewDirProvider(shaderDir)
		if err != nil {
			return err
		}
		if err := dir.Watch(); err != nil {
			return err
		}
		defer dir.Close()
		shaders = dir
	}

	cam := camera.NewCamera2D(settings.Camera2D)
	cam.SetMargins(60, 20, 20, 40)
	w, h := win.GetSize()
	cam.SetScreenSize(float64(w), float64(h))
	ctx := scene.NewContext(glgpu.NewDevice(), shaders, cam, settings.Scene)
	defer ctx.Release()

	data := demoData(500)
	errors.Log(cam.AutoRange(0.05, data))
	ctx.Insert(scene.NewLine(data))
	addAxes(ctx, cam)

	d, err := interact.NewDispatcher(ctx, settings.Interact)
	if err != nil {
		return err
	}
	d.OnMeasure = func(m interact.Measurement) {
		slog.Info("view: measured", "from", m.From, "to", m.To, "length", m.Label)
	}
	d.OnBox = func(x0, y0, x1, y1 float64) {
		slog.Info("view: zoomed to box", "x0", x0, "y0", y0, "x1", x1, "y1", y1)
	}

	var q events.Queue[*events.Mouse]
	bindWindow(win, &q)
	win.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		cam.SetScreenSize(float64(w), float64(h))
	})

	for !win.ShouldClose() {
		q.Drain(d.Dispatch)
		if dir != nil {
			// redraw continuously while shader sources are edited
			ctx.Programs().Poll()
			ctx.SetNeedsRender()
		}
		rendered, err := ctx.DoUpdate()
		if errors.Log(err) == nil && rendered {
			win.SwapBuffers()
		}
		glfw.WaitEventsTimeout(1.0 / 60)
	}
	return nil
}

// demoData returns a damped sine wave.
func demoData(n int) *plot.XY {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range n {
		x := 20 * float64(i) / float64(n-1)
		xs[i] = x
		ys[i] = 1000 * math.Exp(-x/8) * math.Sin(x)
	}
	return plot.NewXY(xs, ys)
}

// addAxes inserts x and y axis lines kept in sync with the camera.
func addAxes(ctx *scene.Context, cam *camera.Camera2D) {
	sp := camera.NewSpace2D(cam)
	xl := scene.NewAxisLines(sp.X, 0, mgl64.Vec3{}, mgl64.Vec3{})
	yl := scene.NewAxisLines(sp.Y, 1, mgl64.Vec3{}, mgl64.Vec3{})
	place := func(sp *camera.Space2D) {
		st := cam.State()
		sx := (st.RangeX[1] - st.RangeX[0]) / max(1, sp.X.Size())
		sy := (st.RangeY[1] - st.RangeY[0]) / max(1, sp.Y.Size())
		xl.Origin = mgl64.Vec3{0, st.RangeY[0], 0}
		xl.Tick = mgl64.Vec3{0, -6 * sy, 0}
		xl.Grid = mgl64.Vec3{0, st.RangeY[1] - st.RangeY[0], 0}
		yl.Origin = mgl64.Vec3{st.RangeX[0], 0, 0}
		yl.Tick = mgl64.Vec3{-6 * sx, 0, 0}
		yl.Grid = mgl64.Vec3{st.RangeX[1] - st.RangeX[0], 0, 0}
		xl.SetDirty()
		yl.SetDirty()
	}
	place(sp)
	sp.OnUpdate = place
	ctx.Insert(xl)
	ctx.Insert(yl)
}

// bindWindow sends the pointer events of the window to the queue.
// Cursor moves with a button held are sent as drags.
func bindWindow(win *glfw.Window, q *events.Queue[*events.Mouse]) {
	held := events.NoButton
	where := func() image.Point {
		x, y := win.GetCursorPos()
		return image.Pt(int(x), int(y))
	}
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		but := glfwButton(button)
		if but == events.NoButton {
			return
		}
		switch action {
		case glfw.Press:
			held = but
			q.Send(events.NewMouse(events.MouseDown, but, where(), glfwMods(mods)))
		case glfw.Release:
			if held == but {
				held = events.NoButton
			}
			q.Send(events.NewMouse(events.MouseUp, but, where(), glfwMods(mods)))
		}
	})
	win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		pt := image.Pt(int(x), int(y))
		mods := windowMods(w)
		if held != events.NoButton {
			q.Send(events.NewMouseDrag(held, pt, mods))
			return
		}
		q.Send(events.NewMouseMove(pt, mods))
	})
	win.SetScrollCallback(func(w *glfw.Window, _, yoff float64) {
		q.Send(events.NewScroll(where(), yoff, windowMods(w)))
	})
}

func glfwButton(b glfw.MouseButton) events.Buttons {
	switch b {
	case glfw.MouseButtonLeft:
		return events.Left
	case glfw.MouseButtonMiddle:
		return events.Middle
	case glfw.MouseButtonRight:
		return events.Right
	}
	return events.NoButton
}

func glfwMods(m glfw.ModifierKey) events.Modifiers {
	var mods events.Modifiers
	if m&glfw.ModShift != 0 {
		mods.SetFlag(true, events.Shift)
	}
	if m&glfw.ModControl != 0 {
		mods.SetFlag(true, events.Control)
	}
	if m&glfw.ModAlt != 0 {
		mods.SetFlag(true, events.Alt)
	}
	if m&glfw.ModSuper != 0 {
		mods.SetFlag(true, events.Meta)
	}
	return mods
}

// windowMods returns the modifiers currently held, for callbacks
// that do not report them.
func windowMods(w *glfw.Window) events.Modifiers {
	var m glfw.ModifierKey
	if w.GetKey(glfw.KeyLeftShift) == glfw.Press || w.GetKey(glfw.KeyRightShift) == glfw.Press {
		m |= glfw.ModShift
	}
	if w.GetKey(glfw.KeyLeftControl) == glfw.Press || w.GetKey(glfw.KeyRightControl) == glfw.Press {
		m |= glfw.ModControl
	}
	if w.GetKey(glfw.KeyLeftAlt) == glfw.Press || w.GetKey(glfw.KeyRightAlt) == glfw.Press {
		m |= glfw.ModAlt
	}
	if w.GetKey(glfw.KeyLeftSuper) == glfw.Press || w.GetKey(glfw.KeyRightSuper) == glfw.Press {
		m |= glfw.ModSuper
	}
	return glfwMods(m)
}
