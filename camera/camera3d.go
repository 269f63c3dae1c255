// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MinElevation and MaxElevation bound the polar angle so that the
	// camera never reaches a pole, where the up vector is undefined.
	MinElevation = 0.1
	MaxElevation = 179.9

	// minDistance is the smallest distance representable after rounding.
	minDistance = 1e-4
)

// WorldUp is the up direction of the 3D world.
var WorldUp = mgl64.Vec3{0, 0, 1}

// State3D is the complete state of a [Camera3D].
type State3D struct {
	Distance float64

	// Azimuth is the angle in degrees around the z axis.
	Azimuth float64

	// Elevation is the polar angle in degrees from the +z axis,
	// always within [MinElevation, MaxElevation].
	Elevation float64

	Center     mgl64.Vec3
	ScreenSize [2]float64
	MousePos   [2]float64
	ZNear      float64
	ZFar       float64

	// FOV is the vertical field of view in degrees.
	FOV  float64
	Mode Modes
}

// Camera3D is an orbit camera positioned at Distance from Center,
// in the direction given by the Azimuth and Elevation angles.
type Camera3D struct {
	Settings Settings3D

	state State3D
	obs   Observers
	saved map[string]State3D
}

// NewCamera3D returns a new orbit camera with the pose and options of the given settings.
func NewCamera3D(s Settings3D) *Camera3D {
	cm := &Camera3D{Settings: s}
	st := &cm.state
	st.Distance = s.Distance
	if !(st.Distance > 0) {
		st.Distance = 10
	}
	st.Azimuth = s.Azimuth
	st.Elevation = clampElevation(s.Elevation)
	st.FOV = s.FOV
	if !(st.FOV > 0 && st.FOV < 180) {
		st.FOV = 60
	}
	st.ZNear, st.ZFar = s.ZNear, s.ZFar
	if !(st.ZNear > 0) || st.ZFar <= st.ZNear {
		st.ZNear, st.ZFar = 0.01, 10000
	}
	st.Mode = s.Mode
	return cm
}

// State returns a copy of the current state.
func (cm *Camera3D) State() State3D {
	return cm.state
}

// Observe returns the observer table of the camera.
func (cm *Camera3D) Observe() *Observers {
	return &cm.obs
}

// Batch runs fun with change notifications deferred until it returns.
func (cm *Camera3D) Batch(fun func()) {
	cm.obs.Batch(fun)
}

// Position returns the camera position:
// center + distance * (cosθ·sinγ, sinθ·sinγ, cosγ).
func (cm *Camera3D) Position() mgl64.Vec3 {
	st := &cm.state
	th := mgl64.DegToRad(st.Azimuth)
	ga := mgl64.DegToRad(st.Elevation)
	off := mgl64.Vec3{math.Cos(th) * math.Sin(ga), math.Sin(th) * math.Sin(ga), math.Cos(ga)}
	return st.Center.Add(off.Mul(st.Distance))
}

// ViewDir returns the unit vector from the camera toward the center.
func (cm *Camera3D) ViewDir() mgl64.Vec3 {
	d := cm.state.Center.Sub(cm.Position())
	if d.Len() == 0 {
		return mgl64.Vec3{0, 0, -1}
	}
	return d.Normalize()
}

// Basis returns the camera-relative translation vectors:
// x = normalize(worldUp × viewDir), y = normalize(x × worldUp).
// When the view direction is parallel to the world up vector,
// x falls back to the direction implied by the azimuth alone.
func (cm *Camera3D) Basis() (x, y mgl64.Vec3) {
	x = WorldUp.Cross(cm.ViewDir())
	if x.Len() < 1e-12 {
		th := mgl64.DegToRad(cm.state.Azimuth)
		x = mgl64.Vec3{math.Sin(th), -math.Cos(th), 0}
	}
	x = x.Normalize()
	y = x.Cross(WorldUp).Normalize()
	return x, y
}

// SetCenter sets the point the camera looks at.
func (cm *Camera3D) SetCenter(c mgl64.Vec3) error {
	if err := checkFinite("Camera3D.SetCenter", c[0], c[1], c[2]); err != nil {
		return err
	}
	cm.state.Center = c
	cm.obs.Notify(Center)
	return nil
}

// SetDistance sets the distance from the center, which must be positive.
func (cm *Camera3D) SetDistance(d float64) error {
	if err := checkFinite("Camera3D.SetDistance", d); err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("camera.Camera3D.SetDistance: distance must be positive, got %v", d)
	}
	cm.state.Distance = roundDistance(d)
	cm.obs.Notify(Distance)
	return nil
}

// SetAngles sets the azimuth and elevation in degrees.
// The elevation is clamped to [MinElevation, MaxElevation].
func (cm *Camera3D) SetAngles(azimuth, elevation float64) error {
	if err := checkFinite("Camera3D.SetAngles", azimuth, elevation); err != nil {
		return err
	}
	cm.state.Azimuth = normAzimuth(azimuth)
	cm.state.Elevation = clampElevation(elevation)
	cm.obs.Notify(Azimuth, Elevation)
	return nil
}

// SetFOV sets the vertical field of view in degrees, within (0, 180).
func (cm *Camera3D) SetFOV(fov float64) error {
	if err := checkFinite("Camera3D.SetFOV", fov); err != nil {
		return err
	}
	if fov <= 0 || fov >= 180 {
		return fmt.Errorf("camera.Camera3D.SetFOV: fov must be within (0, 180), got %v", fov)
	}
	cm.state.FOV = fov
	cm.obs.Notify(FOV)
	return nil
}

// SetMode sets the projection mode.
func (cm *Camera3D) SetMode(m Modes) {
	if cm.state.Mode == m {
		return
	}
	cm.state.Mode = m
	cm.obs.Notify(Mode)
}

// SetScreenSize sets the size of the drawing surface in pixels.
func (cm *Camera3D) SetScreenSize(w, h float64) {
	sz := [2]float64{max(w, 0), max(h, 0)}
	if !isFinite(sz[0]) || !isFinite(sz[1]) || sz == cm.state.ScreenSize {
		return
	}
	cm.state.ScreenSize = sz
	cm.obs.Notify(ScreenSize)
}

// SetMousePos records the pointer position in screen pixels.
func (cm *Camera3D) SetMousePos(x, y float64) {
	cm.state.MousePos = [2]float64{x, y}
	cm.obs.Notify(MousePos)
}

// Viewport returns the screen size in pixels.
func (cm *Camera3D) Viewport() (w, h float64) {
	return cm.state.ScreenSize[0], cm.state.ScreenSize[1]
}

// Zoom scales the distance by ratio^delta, rounded to 4 decimals so
// that long sequences of small zoom steps do not accumulate drift.
func (cm *Camera3D) Zoom(ratio, delta float64) {
	factor := math.Pow(ratio, delta)
	d := cm.state.Distance * factor
	if !isFinite(d) || !(factor > 0) {
		return
	}
	cm.state.Distance = roundDistance(d)
	cm.obs.Notify(Distance)
}

// Orbit rotates the camera around the center by the given angles in degrees.
// The elevation is clamped to [MinElevation, MaxElevation].
func (cm *Camera3D) Orbit(dAzimuth, dElevation float64) {
	if !isFinite(dAzimuth) || !isFinite(dElevation) {
		return
	}
	st := &cm.state
	st.Azimuth = normAzimuth(st.Azimuth + dAzimuth)
	el := clampElevation(st.Elevation + dElevation)
	if el != st.Elevation {
		st.Elevation = el
		cm.obs.Notify(Azimuth, Elevation)
		return
	}
	cm.obs.Notify(Azimuth)
}

// Pan rotates the camera by a screen pixel delta: a drag across the full
// viewport rotates by Settings.RotateSpeed degrees. It does nothing
// until the screen has a size.
func (cm *Camera3D) Pan(dx, dy float64) {
	w, h := cm.Viewport()
	if w == 0 || h == 0 {
		return
	}
	rs := cm.Settings.RotateSpeed
	cm.Orbit(-rs*dx/w, -rs*dy/h)
}

// moveScale is the world distance per pixel at the center, so that a
// given pixel drag moves the same visual distance at any zoom level.
func (cm *Camera3D) moveScale(width float64) float64 {
	st := &cm.state
	return 2 * st.Distance * math.Tan(mgl64.DegToRad(st.FOV)/2) / width * cm.Settings.MoveFactor
}

// MoveXY translates the center in the horizontal plane along the
// camera-relative x and y basis vectors by a pixel delta,
// for a viewport of the given width.
func (cm *Camera3D) MoveXY(dx, dy, width float64) {
	if width <= 0 {
		return
	}
	s := cm.moveScale(width)
	x, y := cm.Basis()
	cm.translate(x.Mul(dx * s).Add(y.Mul(dy * s)))
}

// MoveXZ translates the center along the camera-relative x vector
// and the world up vector by a pixel delta, for a viewport of the given width.
func (cm *Camera3D) MoveXZ(dx, dy, width float64) {
	if width <= 0 {
		return
	}
	s := cm.moveScale(width)
	x, _ := cm.Basis()
	cm.translate(x.Mul(dx * s).Add(WorldUp.Mul(dy * s)))
}

func (cm *Camera3D) translate(d mgl64.Vec3) {
	if !isFinite(d[0]) || !isFinite(d[1]) || !isFinite(d[2]) {
		return
	}
	cm.state.Center = cm.state.Center.Add(d)
	cm.obs.Notify(Center)
}

// Up returns the up vector used for the view matrix.
func (cm *Camera3D) Up() mgl64.Vec3 {
	dir := cm.ViewDir()
	if WorldUp.Cross(dir).Len() < 1e-12 {
		// at a pole: use the horizontal direction the camera came from
		th := mgl64.DegToRad(cm.state.Azimuth)
		return mgl64.Vec3{-math.Cos(th), -math.Sin(th), 0}
	}
	return WorldUp
}

// ViewMatrix returns look-at(position, center, up).
func (cm *Camera3D) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(cm.Position(), cm.state.Center, cm.Up())
}

// Aspect returns width / height of the screen, or 1 while it has no size.
func (cm *Camera3D) Aspect() float64 {
	w, h := cm.Viewport()
	if w == 0 || h == 0 {
		return 1
	}
	return w / h
}

// ProjectionMatrix returns the perspective or orthographic projection.
// The orthographic half height is distance * tan(fov/2), so that it
// matches the perspective view at the center and tracks zoom.
func (cm *Camera3D) ProjectionMatrix() mgl64.Mat4 {
	st := &cm.state
	aspect := cm.Aspect()
	fov := mgl64.DegToRad(st.FOV)
	if st.Mode == Orthographic {
		hh := st.Distance * math.Tan(fov/2)
		hw := hh * aspect
		return mgl64.Ortho(-hw, hw, -hh, hh, st.ZNear, st.ZFar)
	}
	return mgl64.Perspective(fov, aspect, st.ZNear, st.ZFar)
}

// Save saves the current pose under the given name.
func (cm *Camera3D) Save(name string) {
	if cm.saved == nil {
		cm.saved = make(map[string]State3D)
	}
	cm.saved[name] = cm.state
}

// Restore restores the pose saved under the given name.
// The screen size is kept, as it belongs to the surface.
func (cm *Camera3D) Restore(name string) error {
	st, ok := cm.saved[name]
	if !ok {
		return fmt.Errorf("camera.Camera3D: saved view %q not found", name)
	}
	cm.Batch(func() {
		cm.state.Distance = st.Distance
		cm.state.Azimuth = st.Azimuth
		cm.state.Elevation = st.Elevation
		cm.state.Center = st.Center
		cm.state.FOV = st.FOV
		cm.state.Mode = st.Mode
		cm.obs.Notify(Distance, Azimuth, Elevation, Center, FOV, Mode)
	})
	slog.Debug("camera.Camera3D: restored view", "name", name)
	return nil
}

func clampElevation(el float64) float64 {
	if math.IsNaN(el) {
		return 90
	}
	return min(max(el, MinElevation), MaxElevation)
}

func normAzimuth(az float64) float64 {
	az = math.Mod(az, 360)
	if az < 0 {
		az += 360
	}
	return az
}

// roundDistance rounds to 4 decimal places, never below minDistance.
func roundDistance(d float64) float64 {
	return max(math.Round(d*1e4)/1e4, minDistance)
}
