// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/godic/img"
	"github.com/cpmech/godic/inp"
	"github.com/cpmech/godic/shp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func testData() (dat *inp.Data) {
	dat = new(inp.Data)
	dat.SetDefault()
	return
}

func Test_fftcc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test fftcc01. integer translation on periodic texture")

	// period equal to the window size gives a unique peak and exact zncc
	ref := img.NewCosImage2D(256, 256, 32)
	tar := img.NewShiftedImage2D(ref, 3, -2)

	dat := testData()
	fcc := NewFFTCC2D(dat)
	fcc.SetImages(ref, tar)

	p := shp.NewPOI2D(128, 128)
	err := fcc.Compute(p)
	if err != nil {
		tst.Errorf("compute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "u", 1e-17, p.Def.U, 3)
	chk.Scalar(tst, "v", 1e-17, p.Def.V, -2)
	chk.Scalar(tst, "zncc", 1e-9, p.Res.ZNCC, 1)
}

func Test_fftcc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test fftcc02. speckle texture and nonzero initial guess")

	ref := img.NewSpeckleImage2D(256, 256, 3000, 1.8, 1234)
	tar := img.NewShiftedImage2D(ref, 13, 3)

	dat := testData()
	fcc := NewFFTCC2D(dat)
	fcc.SetImages(ref, tar)

	// the guess brings the target window within range of the true shift
	p := shp.NewPOI2D(128, 128)
	p.Def.SetFirst(10, 0, 0, 5, 0, 0)
	err := fcc.Compute(p)
	if err != nil {
		tst.Errorf("compute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "u", 1e-17, p.Def.U, 13)
	chk.Scalar(tst, "v", 1e-17, p.Def.V, 3)
	chk.Scalar(tst, "u0", 1e-17, p.Res.U0, 10)
	chk.Scalar(tst, "v0", 1e-17, p.Res.V0, 5)
	if p.Res.ZNCC < 0.7 {
		tst.Errorf("zncc too low: %g\n", p.Res.ZNCC)
	}
}

func Test_fftcc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test fftcc03. invalid POIs are marked and skipped")

	ref := img.NewSpeckleImage2D(128, 128, 800, 1.8, 99)
	tar := img.NewShiftedImage2D(ref, 1, 1)

	dat := testData()
	fcc := NewFFTCC2D(dat)
	fcc.SetImages(ref, tar)

	// 5 pixels from the edge with radius 16
	p := shp.NewPOI2D(5, 64)
	err := fcc.Compute(p)
	if err != nil {
		tst.Errorf("compute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "border zncc", 1e-17, p.Res.ZNCC, -1)
	chk.Scalar(tst, "border u", 1e-17, p.Def.U, 0)

	// NaN initial guess
	q := shp.NewPOI2D(64, 64)
	q.Def.SetFirst(math.NaN(), 0, 0, 0, 0, 0)
	err = fcc.Compute(q)
	if err != nil {
		tst.Errorf("compute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "nan zncc", 1e-17, q.Res.ZNCC, -1)

	// worker index outside the pool is a programmer error
	err = fcc.compute(shp.NewPOI2D(64, 64), dat.ThreadNumber)
	if err == nil {
		tst.Errorf("out-of-pool worker index must fail\n")
	}
}

func Test_fftcc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test fftcc04. batch equals serial")

	ref := img.NewSpeckleImage2D(200, 200, 2000, 1.8, 4321)
	tar := img.NewShiftedImage2D(ref, 4, -3)

	dat := testData()
	dat.ThreadNumber = 3
	fcc := NewFFTCC2D(dat)
	fcc.SetImages(ref, tar)

	serial := []*shp.POI2D{}
	batch := []*shp.POI2D{}
	for j := 60; j <= 140; j += 20 {
		for i := 60; i <= 140; i += 20 {
			serial = append(serial, shp.NewPOI2D(i, j))
			batch = append(batch, shp.NewPOI2D(i, j))
		}
	}
	for _, p := range serial {
		if err := fcc.Compute(p); err != nil {
			tst.Errorf("compute failed: %v\n", err)
			return
		}
	}
	if err := fcc.ComputeAll(batch); err != nil {
		tst.Errorf("batch failed: %v\n", err)
		return
	}
	for i := range serial {
		chk.Scalar(tst, io.Sf("poi%d u", i), 1e-17, batch[i].Def.U, serial[i].Def.U)
		chk.Scalar(tst, io.Sf("poi%d v", i), 1e-17, batch[i].Def.V, serial[i].Def.V)
		chk.Scalar(tst, io.Sf("poi%d zncc", i), 1e-17, batch[i].Res.ZNCC, serial[i].Res.ZNCC)
	}
}

func Test_fftcc05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test fftcc05. 3D integer translation on periodic texture")

	ref := img.NewCosImage3D(64, 64, 64, 16)
	tar := img.NewShiftedImage3D(ref, 2, -1, 3)

	dat := testData()
	dat.SubsetRadiusX, dat.SubsetRadiusY, dat.SubsetRadiusZ = 8, 8, 8
	fcc := NewFFTCC3D(dat)
	fcc.SetImages(ref, tar)

	p := shp.NewPOI3D(32, 32, 32)
	err := fcc.Compute(p)
	if err != nil {
		tst.Errorf("compute failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "u", 1e-17, p.Def.U, 2)
	chk.Scalar(tst, "v", 1e-17, p.Def.V, -1)
	chk.Scalar(tst, "w", 1e-17, p.Def.W, 3)
	chk.Scalar(tst, "zncc", 1e-9, p.Res.ZNCC, 1)
}
