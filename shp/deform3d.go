// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/la"
)

// Deform3D1 holds a first-order (affine) 3D deformation. The scalar fields
// and the 4x4 homogeneous warp matrix M always represent the same map:
//
//	[ 1+Ux    Uy    Uz    U ]
//	[   Vx  1+Vy    Vz    V ]
//	[   Wx    Wy  1+Wz    W ]
//	[    0     0     0    1 ]
type Deform3D1 struct {
	U, Ux, Uy, Uz float64     // x-displacement and its gradients
	V, Vx, Vy, Vz float64     // y-displacement and its gradients
	W, Wx, Wy, Wz float64     // z-displacement and its gradients
	M             [][]float64 // [4][4] homogeneous warp matrix
}

// NewDeform3D1 returns a new zero (identity-warp) deformation
func NewDeform3D1() (o *Deform3D1) {
	o = new(Deform3D1)
	o.M = la.MatAlloc(4, 4)
	o.Set(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	return
}

// Set loads the deformation scalars and rebuilds the warp matrix
func (o *Deform3D1) Set(u, ux, uy, uz, v, vx, vy, vz, w, wx, wy, wz float64) {
	o.U, o.Ux, o.Uy, o.Uz = u, ux, uy, uz
	o.V, o.Vx, o.Vy, o.Vz = v, vx, vy, vz
	o.W, o.Wx, o.Wy, o.Wz = w, wx, wy, wz
	o.M[0][0], o.M[0][1], o.M[0][2], o.M[0][3] = 1+ux, uy, uz, u
	o.M[1][0], o.M[1][1], o.M[1][2], o.M[1][3] = vx, 1+vy, vz, v
	o.M[2][0], o.M[2][1], o.M[2][2], o.M[2][3] = wx, wy, 1+wz, w
	o.M[3][0], o.M[3][1], o.M[3][2], o.M[3][3] = 0, 0, 0, 1
}

// Sync reads the deformation scalars back from the warp matrix
func (o *Deform3D1) Sync() {
	o.Ux, o.Uy, o.Uz, o.U = o.M[0][0]-1, o.M[0][1], o.M[0][2], o.M[0][3]
	o.Vx, o.Vy, o.Vz, o.V = o.M[1][0], o.M[1][1]-1, o.M[1][2], o.M[1][3]
	o.Wx, o.Wy, o.Wz, o.W = o.M[2][0], o.M[2][1], o.M[2][2]-1, o.M[2][3]
}

// Warp maps a subset-local point to target-local coordinates
func (o *Deform3D1) Warp(p Point3D) Point3D {
	return Point3D{
		o.M[0][0]*p.X + o.M[0][1]*p.Y + o.M[0][2]*p.Z + o.M[0][3],
		o.M[1][0]*p.X + o.M[1][1]*p.Y + o.M[1][2]*p.Z + o.M[1][3],
		o.M[2][0]*p.X + o.M[2][1]*p.Y + o.M[2][2]*p.Z + o.M[2][3],
	}
}

// InvCompose performs the inverse-compositional update
//
//	M ← M * inv(dp.M)
//
// and refreshes the scalar fields. wi and wc are [4][4] scratch matrices
func (o *Deform3D1) InvCompose(dp *Deform3D1, wi, wc [][]float64) (err error) {
	err = la.MatInvG(wi, dp.M, MINDET)
	if err != nil {
		return
	}
	la.MatMul(wc, 1, o.M, wi)
	la.MatCopy(o.M, 1, wc)
	o.Sync()
	return
}
