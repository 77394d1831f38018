// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_point01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test point01")

	a := Point2D{1.5, -2.25}
	b := Point2D{-0.5, 4.0}

	c := a.Add(b)
	chk.Scalar(tst, "add.x", 1e-17, c.X, 1.0)
	chk.Scalar(tst, "add.y", 1e-17, c.Y, 1.75)

	d := a.Sub(b)
	chk.Scalar(tst, "sub.x", 1e-17, d.X, 2.0)
	chk.Scalar(tst, "sub.y", 1e-17, d.Y, -6.25)

	e := a.Scale(2)
	chk.Scalar(tst, "scale.x", 1e-17, e.X, 3.0)
	chk.Scalar(tst, "scale.y", 1e-17, e.Y, -4.5)

	x, y := a.Int()
	chk.IntAssert(x, 1)
	chk.IntAssert(y, -2)
}

func Test_point02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test point02. 3D")

	a := Point3D{1.5, -2.25, 0.5}
	b := Point3D{-0.5, 4.0, 1.5}

	c := a.Add(b)
	chk.Vector(tst, "add", 1e-17, []float64{c.X, c.Y, c.Z}, []float64{1, 1.75, 2})

	d := a.Sub(b).Scale(0.5)
	chk.Vector(tst, "sub/scale", 1e-17, []float64{d.X, d.Y, d.Z}, []float64{1, -3.125, -0.5})

	x, y, z := a.Int()
	chk.IntAssert(x, 1)
	chk.IntAssert(y, -2)
	chk.IntAssert(z, 0)
}
