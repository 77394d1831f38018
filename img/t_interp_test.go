// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package img

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_interp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test interp01. node reproduction")

	image := NewSineImage2D(32, 28, 0, 0)
	bsp := NewBicubicBspline(image)
	for j := 4; j < 24; j++ {
		for i := 4; i < 28; i++ {
			chk.Scalar(tst, io.Sf("node(%d,%d)", i, j), 1e-6, bsp.Eval(float64(i), float64(j)), image.Pix[j][i])
		}
	}
}

func Test_interp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test interp02. linear fields are reproduced")

	image := NewRampImage2D(32, 32, 1.5, -0.75, 20)
	bsp := NewBicubicBspline(image)
	for _, p := range [][]float64{{10.25, 12.5}, {15.7, 16.3}, {8.01, 20.99}, {16, 16}} {
		x, y := p[0], p[1]
		chk.Scalar(tst, io.Sf("ramp(%g,%g)", x, y), 1e-6, bsp.Eval(x, y), 1.5*x-0.75*y+20)
	}
}

func Test_interp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test interp03. sub-pixel accuracy on band-limited texture")

	image := NewSineImage2D(64, 64, 0, 0)
	bsp := NewBicubicBspline(image)
	for j := 10; j < 54; j += 4 {
		for i := 10; i < 54; i += 4 {
			x, y := float64(i)+0.4, float64(j)+0.7
			chk.Scalar(tst, io.Sf("f(%g,%g)", x, y), 1e-3, bsp.Eval(x, y), SineTexture2D(x, y, 0, 0))
		}
	}
}

func Test_interp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test interp04. tricubic node reproduction and accuracy")

	image := NewSineImage3D(20, 20, 20, 0, 0, 0)
	bsp := NewTricubicBspline(image)

	for k := 4; k < 16; k += 2 {
		for j := 4; j < 16; j += 2 {
			for i := 4; i < 16; i += 2 {
				chk.Scalar(tst, io.Sf("node(%d,%d,%d)", i, j, k), 1e-6, bsp.Eval(float64(i), float64(j), float64(k)), image.Pix[k][j][i])
			}
		}
	}

	for _, p := range [][]float64{{8.4, 9.7, 10.2}, {6.25, 12.5, 7.75}} {
		x, y, z := p[0], p[1], p[2]
		chk.Scalar(tst, io.Sf("f(%g,%g,%g)", x, y, z), 5e-3, bsp.Eval(x, y, z), SineTexture3D(x, y, z, 0, 0, 0))
	}
}
