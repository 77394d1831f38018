// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icgn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/godic/corr"
	"github.com/cpmech/godic/img"
	"github.com/cpmech/godic/shp"
)

func Test_chain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test chain01. FFT-CC initial guess refined by ICGN")

	ref := img.NewSineImage2D(256, 256, 0, 0)
	tar := img.NewSineImage2D(256, 256, 3.4, -2.7)

	dat := testData()
	fcc := corr.NewFFTCC2D(dat)
	fcc.SetImages(ref, tar)
	icgn := NewICGN2D1(dat)
	icgn.SetImages(ref, tar)
	icgn.Prepare()

	p := shp.NewPOI2D(128, 128)
	if err := fcc.Compute(p); err != nil {
		tst.Errorf("fftcc failed: %v\n", err)
		return
	}
	io.Pforan("integer guess: u=%v v=%v zncc=%v\n", p.Def.U, p.Def.V, p.Res.ZNCC)

	// the integer estimate must land within one pixel of the nearest
	// integer shift (3, -3)
	if p.Def.U < 3-1 || p.Def.U > 3+1 || p.Def.V < -3-1 || p.Def.V > -3+1 {
		tst.Errorf("integer estimate too far: u=%g v=%g\n", p.Def.U, p.Def.V)
		return
	}

	if err := icgn.Compute(p); err != nil {
		tst.Errorf("icgn failed: %v\n", err)
		return
	}
	io.Pforan("refined: u=%v v=%v iter=%v\n", p.Def.U, p.Def.V, p.Res.Iteration)
	chk.Scalar(tst, "u", 0.01, p.Def.U, 3.4)
	chk.Scalar(tst, "v", 0.01, p.Def.V, -2.7)
}
