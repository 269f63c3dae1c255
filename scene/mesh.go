// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sciplot/core/gpu"
)

// Mesh is an indexed triangle mesh with per-vertex normals,
// drawn with the lit shader.
type Mesh struct {
	NodeBase

	// Positions are the vertex positions, 3 values per vertex.
	Positions []float32

	// Normals are the vertex normals, 3 values per vertex.
	// If empty, normals are computed from the faces.
	Normals []float32

	// Indices are the triangle vertex indexes, 3 per triangle.
	Indices []uint32
}

// NewMesh returns a new mesh with the given geometry.
func NewMesh(positions, normals []float32, indices []uint32) *Mesh {
	ms := &Mesh{}
	ms.init("lit", DepthData, color.RGBA{200, 200, 200, 255})
	ms.Positions, ms.Normals, ms.Indices = positions, normals, indices
	return ms
}

func (ms *Mesh) Kind() string { return "mesh" }

// SetGeometry sets the mesh geometry and marks the mesh dirty.
func (ms *Mesh) SetGeometry(positions, normals []float32, indices []uint32) {
	ms.Positions, ms.Normals, ms.Indices = positions, normals, indices
	ms.SetDirty()
}

func (ms *Mesh) Build(nb *NodeBase) (Draw, error) {
	nv := len(ms.Positions) / 3
	for _, ix := range ms.Indices {
		if int(ix) >= nv {
			return Draw{}, fmt.Errorf("scene.Mesh: index %d out of range of %d vertices", ix, nv)
		}
	}
	norms := ms.Normals
	if len(norms) != len(ms.Positions) {
		norms = FaceNormals(ms.Positions, ms.Indices)
	}
	vtx := make([]float32, 0, 6*nv)
	for i := range nv {
		vtx = append(vtx, ms.Positions[3*i:3*i+3]...)
		vtx = append(vtx, norms[3*i:3*i+3]...)
	}
	if err := nb.setVertices(vtx); err != nil {
		return Draw{}, err
	}
	if err := nb.setIndices(ms.Indices); err != nil {
		return Draw{}, err
	}
	return Draw{Primitive: gpu.Triangles, Layout: gpu.PosNormLayout, Count: len(ms.Indices) / 3 * 3, Indexed: true}, nil
}

// FaceNormals returns vertex normals computed as the normalized sum of
// the normals of the faces sharing each vertex.
func FaceNormals(positions []float32, indices []uint32) []float32 {
	norms := make([]float32, len(positions))
	at := func(i uint32) (x, y, z float32) {
		return positions[3*i], positions[3*i+1], positions[3*i+2]
	}
	for t := 0; t+2 < len(indices); t += 3 {
		ax, ay, az := at(indices[t])
		bx, by, bz := at(indices[t+1])
		cx, cy, cz := at(indices[t+2])
		ux, uy, uz := bx-ax, by-ay, bz-az
		vx, vy, vz := cx-ax, cy-ay, cz-az
		nx, ny, nz := uy*vz-uz*vy, uz*vx-ux*vz, ux*vy-uy*vx
		for _, ix := range indices[t : t+3] {
			norms[3*ix] += nx
			norms[3*ix+1] += ny
			norms[3*ix+2] += nz
		}
	}
	for i := 0; i+2 < len(norms); i += 3 {
		l := math32.Sqrt(norms[i]*norms[i] + norms[i+1]*norms[i+1] + norms[i+2]*norms[i+2])
		if l > 0 {
			norms[i] /= l
			norms[i+1] /= l
			norms[i+2] /= l
		}
	}
	return norms
}

// HitTest intersects the pick ray with each triangle and returns the
// closest intersection.
func (ms *Mesh) HitTest(pq *PickQuery) (float64, bool) {
	nv := uint32(len(ms.Positions) / 3)
	vert := func(i uint32) mgl64.Vec3 {
		return mgl64.Vec3{float64(ms.Positions[3*i]), float64(ms.Positions[3*i+1]), float64(ms.Positions[3*i+2])}
	}
	best := math.Inf(1)
	for t := 0; t+2 < len(ms.Indices); t += 3 {
		i0, i1, i2 := ms.Indices[t], ms.Indices[t+1], ms.Indices[t+2]
		if i0 >= nv || i1 >= nv || i2 >= nv {
			continue
		}
		if d, ok := rayTriangle(pq.Ray, vert(i0), vert(i1), vert(i2)); ok && d < best {
			best = d
		}
	}
	return best, !math.IsInf(best, 1)
}

// rayTriangle is the Möller-Trumbore ray triangle intersection,
// hitting both faces.
func rayTriangle(r Ray, a, b, c mgl64.Vec3) (float64, bool) {
	const eps = 1e-12
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < eps {
		return 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
