// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package img

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// B-spline prefilter constants
const (
	bsplinePole = -0.267949192431123 // √3 - 2
	bsplineGain = 6.0                // (1-z)(1-1/z)
	bsplineTol  = 1.0e-12            // truncation tolerance for the causal init
)

// prefilter1d converts one line of samples into cubic B-spline
// coefficients in place, by the standard recursive deconvolution
// (causal/anticausal IIR pair with mirror boundaries)
func prefilter1d(c []float64) {
	n := len(c)
	if n == 1 {
		return
	}
	z := bsplinePole
	for i := 0; i < n; i++ {
		c[i] *= bsplineGain
	}

	// causal initialisation (truncated mirror sum)
	horizon := int(math.Ceil(math.Log(bsplineTol) / math.Log(math.Abs(z))))
	if horizon > n {
		horizon = n
	}
	zn := z
	sum := c[0]
	for k := 1; k < horizon; k++ {
		sum += zn * c[k]
		zn *= z
	}
	c[0] = sum

	// causal recursion
	for i := 1; i < n; i++ {
		c[i] += z * c[i-1]
	}

	// anticausal initialisation and recursion
	c[n-1] = (z / (z*z - 1)) * (c[n-1] + z*c[n-2])
	for i := n - 2; i >= 0; i-- {
		c[i] = z * (c[i+1] - c[i])
	}
}

// bsplineWeights returns the four cubic B-spline basis values for the
// fractional coordinate t ∈ [0,1)
func bsplineWeights(t float64, w *[4]float64) {
	s := 1 - t
	w[0] = s * s * s / 6.0
	w[1] = (4 - 6*t*t + 3*t*t*t) / 6.0
	w[2] = (1 + 3*t + 3*t*t - 3*t*t*t) / 6.0
	w[3] = t * t * t / 6.0
}

func clampIdx(i, n int) int {
	return utl.Imax(0, utl.Imin(i, n-1))
}

// BicubicBspline reconstructs an image at arbitrary real coordinates by
// cubic B-spline interpolation. The coefficient grid is computed once
// from the whole image; evaluation is a 4x4 weighted sum
type BicubicBspline struct {
	Width  int         // number of columns
	Height int         // number of rows
	C      [][]float64 // [Height][Width] B-spline coefficients
}

// NewBicubicBspline computes the coefficient grid of an image by
// separable recursive deconvolution along x then y
func NewBicubicBspline(image *Image2D) (o *BicubicBspline) {
	o = new(BicubicBspline)
	o.Width, o.Height = image.Width, image.Height
	o.C = la.MatAlloc(o.Height, o.Width)
	for j := 0; j < o.Height; j++ {
		copy(o.C[j], image.Pix[j])
		prefilter1d(o.C[j])
	}
	col := make([]float64, o.Height)
	for i := 0; i < o.Width; i++ {
		for j := 0; j < o.Height; j++ {
			col[j] = o.C[j][i]
		}
		prefilter1d(col)
		for j := 0; j < o.Height; j++ {
			o.C[j][i] = col[j]
		}
	}
	return
}

// Eval returns the interpolated value at real coordinates (x, y).
// Coordinates must be inside the image; coefficient indices are clamped
// at the borders
func (o *BicubicBspline) Eval(x, y float64) (res float64) {
	x0, y0 := math.Floor(x), math.Floor(y)
	var wx, wy [4]float64
	bsplineWeights(x-x0, &wx)
	bsplineWeights(y-y0, &wy)
	ix, iy := int(x0), int(y0)
	for j := 0; j < 4; j++ {
		cj := o.C[clampIdx(iy-1+j, o.Height)]
		sum := 0.0
		for i := 0; i < 4; i++ {
			sum += wx[i] * cj[clampIdx(ix-1+i, o.Width)]
		}
		res += wy[j] * sum
	}
	return
}

// TricubicBspline reconstructs a volume at arbitrary real coordinates by
// cubic B-spline interpolation (4x4x4 weighted sum)
type TricubicBspline struct {
	Width  int           // number of columns
	Height int           // number of rows
	Depth  int           // number of slices
	C      [][][]float64 // [Depth][Height][Width] B-spline coefficients
}

// NewTricubicBspline computes the coefficient block of a volume by
// separable recursive deconvolution along x, y then z
func NewTricubicBspline(image *Image3D) (o *TricubicBspline) {
	o = new(TricubicBspline)
	o.Width, o.Height, o.Depth = image.Width, image.Height, image.Depth
	o.C = make([][][]float64, o.Depth)
	for k := 0; k < o.Depth; k++ {
		o.C[k] = la.MatAlloc(o.Height, o.Width)
		for j := 0; j < o.Height; j++ {
			copy(o.C[k][j], image.Pix[k][j])
			prefilter1d(o.C[k][j])
		}
	}
	col := make([]float64, o.Height)
	for k := 0; k < o.Depth; k++ {
		for i := 0; i < o.Width; i++ {
			for j := 0; j < o.Height; j++ {
				col[j] = o.C[k][j][i]
			}
			prefilter1d(col)
			for j := 0; j < o.Height; j++ {
				o.C[k][j][i] = col[j]
			}
		}
	}
	pil := make([]float64, o.Depth)
	for j := 0; j < o.Height; j++ {
		for i := 0; i < o.Width; i++ {
			for k := 0; k < o.Depth; k++ {
				pil[k] = o.C[k][j][i]
			}
			prefilter1d(pil)
			for k := 0; k < o.Depth; k++ {
				o.C[k][j][i] = pil[k]
			}
		}
	}
	return
}

// Eval returns the interpolated value at real coordinates (x, y, z)
func (o *TricubicBspline) Eval(x, y, z float64) (res float64) {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	var wx, wy, wz [4]float64
	bsplineWeights(x-x0, &wx)
	bsplineWeights(y-y0, &wy)
	bsplineWeights(z-z0, &wz)
	ix, iy, iz := int(x0), int(y0), int(z0)
	for k := 0; k < 4; k++ {
		ck := o.C[clampIdx(iz-1+k, o.Depth)]
		sumk := 0.0
		for j := 0; j < 4; j++ {
			cj := ck[clampIdx(iy-1+j, o.Height)]
			sum := 0.0
			for i := 0; i < 4; i++ {
				sum += wx[i] * cj[clampIdx(ix-1+i, o.Width)]
			}
			sumk += wy[j] * sum
		}
		res += wz[k] * sumk
	}
	return
}
