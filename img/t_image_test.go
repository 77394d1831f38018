// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package img

import (
	"math"
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

func Test_image01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test image01. subset fill and zero-mean norm")

	// 6x5 image with f = 1 + x + 10*y
	image := NewRampImage2D(6, 5, 1, 10, 1)
	chk.Scalar(tst, "value(2,3)", 1e-17, image.Value(2, 3), 24)

	sub := NewSubset2D(3, 2, 1, 1)
	sub.Fill(image)
	chk.Vector(tst, "row0", 1e-17, sub.V[0], []float64{13, 14, 15})
	chk.Vector(tst, "row1", 1e-17, sub.V[1], []float64{23, 24, 25})
	chk.Vector(tst, "row2", 1e-17, sub.V[2], []float64{33, 34, 35})

	norm := sub.ZeroMeanNorm()

	// sum must vanish after mean subtraction
	sum := 0.0
	ssq := 0.0
	for j := range sub.V {
		for i := range sub.V[j] {
			sum += sub.V[j][i]
			ssq += sub.V[j][i] * sub.V[j][i]
		}
	}
	chk.Scalar(tst, "sum", 1e-12, sum, 0)
	chk.Scalar(tst, "norm", 1e-13, norm, math.Sqrt(ssq))
	chk.Scalar(tst, "norm value", 1e-13, norm, math.Sqrt(606.0)) // 6*(1+100)+0
}

func Test_image02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test image02. 3D subset fill and zero-mean norm")

	image := NewImage3D(5, 5, 5)
	for k := 0; k < 5; k++ {
		for j := 0; j < 5; j++ {
			for i := 0; i < 5; i++ {
				image.Pix[k][j][i] = float64(i + 10*j + 100*k)
			}
		}
	}
	chk.Scalar(tst, "value(1,2,3)", 1e-17, image.Value(1, 2, 3), 123)

	sub := NewSubset3D(2, 2, 2, 1, 1, 1)
	sub.Fill(image)
	chk.Scalar(tst, "center", 1e-17, sub.V[1][1][1], 222)
	chk.Scalar(tst, "corner", 1e-17, sub.V[0][0][0], 111)

	norm := sub.ZeroMeanNorm()
	sum := 0.0
	for k := range sub.V {
		for j := range sub.V[k] {
			for i := range sub.V[k][j] {
				sum += sub.V[k][j][i]
			}
		}
	}
	chk.Scalar(tst, "sum", 1e-10, sum, 0)

	// per axis: 9 points at each of -1,0,1 offsets with steps 1, 10, 100
	chk.Scalar(tst, "norm value", 1e-12, norm, math.Sqrt(18.0*(1+100+10000)))
}
