// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/la"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for warp matrices

// Deform2D1 holds a first-order (affine) 2D deformation. The scalar fields
// and the 3x3 homogeneous warp matrix M always represent the same map:
//
//	[ 1+Ux    Uy    U ]
//	[   Vx  1+Vy    V ]
//	[    0     0    1 ]
type Deform2D1 struct {
	U, Ux, Uy float64     // x-displacement and its gradients
	V, Vx, Vy float64     // y-displacement and its gradients
	M         [][]float64 // [3][3] homogeneous warp matrix
}

// NewDeform2D1 returns a new zero (identity-warp) deformation
func NewDeform2D1() (o *Deform2D1) {
	o = new(Deform2D1)
	o.M = la.MatAlloc(3, 3)
	o.Set(0, 0, 0, 0, 0, 0)
	return
}

// Set loads the deformation scalars and rebuilds the warp matrix
func (o *Deform2D1) Set(u, ux, uy, v, vx, vy float64) {
	o.U, o.Ux, o.Uy = u, ux, uy
	o.V, o.Vx, o.Vy = v, vx, vy
	o.M[0][0], o.M[0][1], o.M[0][2] = 1+ux, uy, u
	o.M[1][0], o.M[1][1], o.M[1][2] = vx, 1+vy, v
	o.M[2][0], o.M[2][1], o.M[2][2] = 0, 0, 1
}

// Sync reads the deformation scalars back from the warp matrix
func (o *Deform2D1) Sync() {
	o.Ux, o.Uy, o.U = o.M[0][0]-1, o.M[0][1], o.M[0][2]
	o.Vx, o.Vy, o.V = o.M[1][0], o.M[1][1]-1, o.M[1][2]
}

// Warp maps a subset-local point to target-local coordinates
func (o *Deform2D1) Warp(p Point2D) Point2D {
	return Point2D{
		o.M[0][0]*p.X + o.M[0][1]*p.Y + o.M[0][2],
		o.M[1][0]*p.X + o.M[1][1]*p.Y + o.M[1][2],
	}
}

// InvCompose performs the inverse-compositional update
//
//	M ← M * inv(dp.M)
//
// and refreshes the scalar fields. wi and wc are [3][3] scratch matrices
func (o *Deform2D1) InvCompose(dp *Deform2D1, wi, wc [][]float64) (err error) {
	_, err = la.MatInv(wi, dp.M, MINDET)
	if err != nil {
		return
	}
	la.MatMul(wc, 1, o.M, wi)
	la.MatCopy(o.M, 1, wc)
	o.Sync()
	return
}

// Deform2D2 holds a second-order (quadratic) 2D deformation. The 6x6 warp
// matrix acts on the monomial vector (x², x·y, y², x, y, 1) and is built so
// that composition by matrix multiplication equals composition of the
// underlying quadratic maps to second order
type Deform2D2 struct {
	U, Ux, Uy, Uxx, Uxy, Uyy float64     // x-displacement, gradients and curvatures
	V, Vx, Vy, Vxx, Vxy, Vyy float64     // y-displacement, gradients and curvatures
	M                        [][]float64 // [6][6] homogeneous warp matrix
}

// NewDeform2D2 returns a new zero (identity-warp) deformation
func NewDeform2D2() (o *Deform2D2) {
	o = new(Deform2D2)
	o.M = la.MatAlloc(6, 6)
	o.Set(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	return
}

// Set loads the deformation scalars and rebuilds the warp matrix
func (o *Deform2D2) Set(u, ux, uy, uxx, uxy, uyy, v, vx, vy, vxx, vxy, vyy float64) {
	o.U, o.Ux, o.Uy, o.Uxx, o.Uxy, o.Uyy = u, ux, uy, uxx, uxy, uyy
	o.V, o.Vx, o.Vy, o.Vxx, o.Vxy, o.Vyy = v, vx, vy, vxx, vxy, vyy

	// row x'²
	o.M[0][0] = (1 + ux) * (1 + ux)
	o.M[0][1] = 2 * (1 + ux) * uy
	o.M[0][2] = uy * uy
	o.M[0][3] = 2 * u * (1 + ux)
	o.M[0][4] = 2 * u * uy
	o.M[0][5] = u * u

	// row x'·y'
	o.M[1][0] = (1 + ux) * vx
	o.M[1][1] = (1+ux)*(1+vy) + uy*vx
	o.M[1][2] = uy * (1 + vy)
	o.M[1][3] = u*vx + v*(1+ux)
	o.M[1][4] = u*(1+vy) + v*uy
	o.M[1][5] = u * v

	// row y'²
	o.M[2][0] = vx * vx
	o.M[2][1] = 2 * vx * (1 + vy)
	o.M[2][2] = (1 + vy) * (1 + vy)
	o.M[2][3] = 2 * v * vx
	o.M[2][4] = 2 * v * (1 + vy)
	o.M[2][5] = v * v

	// row x'
	o.M[3][0] = uxx / 2.0
	o.M[3][1] = uxy
	o.M[3][2] = uyy / 2.0
	o.M[3][3] = 1 + ux
	o.M[3][4] = uy
	o.M[3][5] = u

	// row y'
	o.M[4][0] = vxx / 2.0
	o.M[4][1] = vxy
	o.M[4][2] = vyy / 2.0
	o.M[4][3] = vx
	o.M[4][4] = 1 + vy
	o.M[4][5] = v

	// row 1
	for j := 0; j < 5; j++ {
		o.M[5][j] = 0
	}
	o.M[5][5] = 1
}

// Sync reads the deformation scalars back from the warp matrix
func (o *Deform2D2) Sync() {
	o.Uxx, o.Uxy, o.Uyy = 2*o.M[3][0], o.M[3][1], 2*o.M[3][2]
	o.Ux, o.Uy, o.U = o.M[3][3]-1, o.M[3][4], o.M[3][5]
	o.Vxx, o.Vxy, o.Vyy = 2*o.M[4][0], o.M[4][1], 2*o.M[4][2]
	o.Vx, o.Vy, o.V = o.M[4][3], o.M[4][4]-1, o.M[4][5]
}

// Warp maps a subset-local point to target-local coordinates
func (o *Deform2D2) Warp(p Point2D) Point2D {
	xx, xy, yy := p.X*p.X, p.X*p.Y, p.Y*p.Y
	return Point2D{
		o.M[3][0]*xx + o.M[3][1]*xy + o.M[3][2]*yy + o.M[3][3]*p.X + o.M[3][4]*p.Y + o.M[3][5],
		o.M[4][0]*xx + o.M[4][1]*xy + o.M[4][2]*yy + o.M[4][3]*p.X + o.M[4][4]*p.Y + o.M[4][5],
	}
}

// InvCompose performs the inverse-compositional update
//
//	M ← M * inv(dp.M)
//
// and refreshes the scalar fields. wi and wc are [6][6] scratch matrices
func (o *Deform2D2) InvCompose(dp *Deform2D2, wi, wc [][]float64) (err error) {
	err = la.MatInvG(wi, dp.M, MINDET)
	if err != nil {
		return
	}
	la.MatMul(wc, 1, o.M, wi)
	la.MatCopy(o.M, 1, wc)
	o.Sync()
	return
}

// SetFirst loads first-order scalars only, zeroing the curvatures
func (o *Deform2D2) SetFirst(u, ux, uy, v, vx, vy float64) {
	o.Set(u, ux, uy, 0, 0, 0, v, vx, vy, 0, 0, 0)
}
