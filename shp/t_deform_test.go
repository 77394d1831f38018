// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_deform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test deform01. 2D order 1: round trip")

	vals := []float64{0.4, 0.01, -0.02, -0.7, 0.03, 0.005}
	p := NewDeform2D1()
	p.Set(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5])

	// destroy scalars and recover them from the matrix
	p.U, p.Ux, p.Uy, p.V, p.Vx, p.Vy = 0, 0, 0, 0, 0, 0
	p.Sync()
	chk.Vector(tst, "scalars", 1e-15, []float64{p.U, p.Ux, p.Uy, p.V, p.Vx, p.Vy}, vals)
}

func Test_deform02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test deform02. 2D order 1: warp and composition")

	p := NewDeform2D1()
	q := NewDeform2D1()
	p.Set(0.4, 0.01, -0.02, -0.7, 0.03, 0.005)
	q.Set(-0.1, 0.02, 0.01, 0.3, -0.015, 0.04)

	// compose by matrix product
	pq := NewDeform2D1()
	la.MatMul(pq.M, 1, p.M, q.M)
	pq.Sync()

	// p(q(x)) must equal (p∘q)(x)
	for _, x := range []Point2D{{0, 0}, {1, 2}, {-3.5, 0.25}, {10, -7}} {
		a := p.Warp(q.Warp(x))
		b := pq.Warp(x)
		chk.Scalar(tst, io.Sf("x=%v: wx", x), 1e-14, a.X, b.X)
		chk.Scalar(tst, io.Sf("x=%v: wy", x), 1e-14, a.Y, b.Y)
	}

	// inverse composition with itself gives the identity map
	wi := la.MatAlloc(3, 3)
	wc := la.MatAlloc(3, 3)
	dp := NewDeform2D1()
	dp.Set(0.4, 0.01, -0.02, -0.7, 0.03, 0.005)
	err := p.InvCompose(dp, wi, wc)
	if err != nil {
		tst.Errorf("InvCompose failed: %v\n", err)
		return
	}
	chk.Vector(tst, "identity", 1e-14, []float64{p.U, p.Ux, p.Uy, p.V, p.Vx, p.Vy}, []float64{0, 0, 0, 0, 0, 0})
}

func Test_deform03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test deform03. 2D order 2: round trip and composition")

	vals := []float64{0.4, 0.01, -0.02, 0.001, -0.002, 0.0005, -0.7, 0.03, 0.005, -0.0015, 0.0025, 0.001}
	p := NewDeform2D2()
	p.Set(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7], vals[8], vals[9], vals[10], vals[11])

	p.U, p.Ux, p.Uy, p.Uxx, p.Uxy, p.Uyy = 0, 0, 0, 0, 0, 0
	p.V, p.Vx, p.Vy, p.Vxx, p.Vxy, p.Vyy = 0, 0, 0, 0, 0, 0
	p.Sync()
	chk.Vector(tst, "scalars", 1e-15, []float64{
		p.U, p.Ux, p.Uy, p.Uxx, p.Uxy, p.Uyy,
		p.V, p.Vx, p.Vy, p.Vxx, p.Vxy, p.Vyy,
	}, vals)

	// quadratic p composed with affine q remains quadratic; the matrix
	// product must reproduce the composed map exactly
	q := NewDeform2D2()
	q.SetFirst(-0.1, 0.02, 0.01, 0.3, -0.015, 0.04)

	pq := NewDeform2D2()
	la.MatMul(pq.M, 1, p.M, q.M)
	pq.Sync()

	for _, x := range []Point2D{{0, 0}, {1, 2}, {-3.5, 0.25}, {4, -3}} {
		a := p.Warp(q.Warp(x))
		b := pq.Warp(x)
		chk.Scalar(tst, io.Sf("x=%v: wx", x), 1e-12, a.X, b.X)
		chk.Scalar(tst, io.Sf("x=%v: wy", x), 1e-12, a.Y, b.Y)
	}
}

func Test_deform04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test deform04. 3D order 1: round trip and composition")

	vals := []float64{0.4, 0.01, -0.02, 0.003, -0.7, 0.03, 0.005, -0.001, 0.2, -0.004, 0.002, 0.015}
	p := NewDeform3D1()
	p.Set(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7], vals[8], vals[9], vals[10], vals[11])

	p.U, p.Ux, p.Uy, p.Uz = 0, 0, 0, 0
	p.V, p.Vx, p.Vy, p.Vz = 0, 0, 0, 0
	p.W, p.Wx, p.Wy, p.Wz = 0, 0, 0, 0
	p.Sync()
	chk.Vector(tst, "scalars", 1e-15, []float64{
		p.U, p.Ux, p.Uy, p.Uz,
		p.V, p.Vx, p.Vy, p.Vz,
		p.W, p.Wx, p.Wy, p.Wz,
	}, vals)

	q := NewDeform3D1()
	q.Set(-0.1, 0.02, 0.01, -0.005, 0.3, -0.015, 0.04, 0.002, -0.25, 0.001, -0.003, 0.02)

	pq := NewDeform3D1()
	la.MatMul(pq.M, 1, p.M, q.M)
	pq.Sync()

	for _, x := range []Point3D{{0, 0, 0}, {1, 2, 3}, {-3.5, 0.25, -1}} {
		a := p.Warp(q.Warp(x))
		b := pq.Warp(x)
		chk.Scalar(tst, io.Sf("x=%v: wx", x), 1e-13, a.X, b.X)
		chk.Scalar(tst, io.Sf("x=%v: wy", x), 1e-13, a.Y, b.Y)
		chk.Scalar(tst, io.Sf("x=%v: wz", x), 1e-13, a.Z, b.Z)
	}

	// inverse composition with itself gives the identity map
	wi := la.MatAlloc(4, 4)
	wc := la.MatAlloc(4, 4)
	dp := NewDeform3D1()
	dp.Set(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7], vals[8], vals[9], vals[10], vals[11])
	err := p.InvCompose(dp, wi, wc)
	if err != nil {
		tst.Errorf("InvCompose failed: %v\n", err)
		return
	}
	chk.Vector(tst, "identity", 1e-13, []float64{p.U, p.V, p.W}, []float64{0, 0, 0})
}
