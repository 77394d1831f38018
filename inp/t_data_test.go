// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
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

func Test_data01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test data01. defaults and validation")

	var dat Data
	dat.SetDefault()
	chk.IntAssert(dat.SubsetRadiusX, 16)
	chk.IntAssert(dat.SubsetRadiusY, 16)
	chk.IntAssert(dat.SubsetRadiusZ, 8)
	chk.Scalar(tst, "conv", 1e-17, dat.ConvCriterion, 0.001)
	chk.IntAssert(dat.StopCondition, 10)
	chk.IntAssert(dat.ThreadNumber, 1)
	chk.Scalar(tst, "halfpeak", 1e-17, dat.HalfPeakRatio, 0.5)
	if err := dat.Validate(); err != nil {
		tst.Errorf("defaults must validate: %v\n", err)
	}

	dat.SubsetRadiusX = 0
	if err := dat.Validate(); err == nil {
		tst.Errorf("zero radius must not validate\n")
	}
	dat.SubsetRadiusX = 16
	dat.HalfPeakRatio = 1.5
	if err := dat.Validate(); err == nil {
		tst.Errorf("ratio above one must not validate\n")
	}
}

func Test_data02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test data02. reading parameters from JSON")

	dirout := "/tmp/godic"
	os.MkdirAll(dirout, 0777)
	fn := dirout + "/pars.json"
	blob := `{
		"desc"     : "coarse pass",
		"rx"       : 20,
		"ry"       : 12,
		"conv"     : 0.0005,
		"nthreads" : 4
	}`
	if err := os.WriteFile(fn, []byte(blob), 0666); err != nil {
		tst.Errorf("cannot write test file: %v\n", err)
		return
	}

	dat := ReadData(fn)
	chk.IntAssert(dat.SubsetRadiusX, 20)
	chk.IntAssert(dat.SubsetRadiusY, 12)
	chk.IntAssert(dat.SubsetRadiusZ, 8) // default
	chk.Scalar(tst, "conv", 1e-17, dat.ConvCriterion, 0.0005)
	chk.IntAssert(dat.StopCondition, 10) // default
	chk.IntAssert(dat.ThreadNumber, 4)
	chk.Scalar(tst, "halfpeak", 1e-17, dat.HalfPeakRatio, 0.5) // default
}
