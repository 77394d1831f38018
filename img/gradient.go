// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package img

import (
	"github.com/cpmech/gosl/la"
)

// Gradient2D holds 4th-order central-difference spatial gradients of an
// image. The two rows/columns nearest each border are left zero; the
// estimators reject POIs whose subsets reach them
type Gradient2D struct {
	Gx [][]float64 // [Height][Width] ∂I/∂x
	Gy [][]float64 // [Height][Width] ∂I/∂y
}

// NewGradient2D computes the gradients of the whole image with the
// five-point stencil (1, -8, 0, 8, -1)/12 along each axis
func NewGradient2D(image *Image2D) (o *Gradient2D) {
	o = new(Gradient2D)
	w, h := image.Width, image.Height
	o.Gx = la.MatAlloc(h, w)
	o.Gy = la.MatAlloc(h, w)
	for j := 2; j < h-2; j++ {
		row := image.Pix[j]
		for i := 2; i < w-2; i++ {
			o.Gx[j][i] = (row[i-2] - 8*row[i-1] + 8*row[i+1] - row[i+2]) / 12.0
			o.Gy[j][i] = (image.Pix[j-2][i] - 8*image.Pix[j-1][i] + 8*image.Pix[j+1][i] - image.Pix[j+2][i]) / 12.0
		}
	}
	return
}

// Gradient3D holds 4th-order central-difference spatial gradients of a
// volume
type Gradient3D struct {
	Gx [][][]float64 // [Depth][Height][Width] ∂I/∂x
	Gy [][][]float64 // [Depth][Height][Width] ∂I/∂y
	Gz [][][]float64 // [Depth][Height][Width] ∂I/∂z
}

// NewGradient3D computes the gradients of the whole volume
func NewGradient3D(image *Image3D) (o *Gradient3D) {
	o = new(Gradient3D)
	w, h, d := image.Width, image.Height, image.Depth
	alloc := func() (g [][][]float64) {
		g = make([][][]float64, d)
		for k := 0; k < d; k++ {
			g[k] = la.MatAlloc(h, w)
		}
		return
	}
	o.Gx, o.Gy, o.Gz = alloc(), alloc(), alloc()
	for k := 2; k < d-2; k++ {
		for j := 2; j < h-2; j++ {
			row := image.Pix[k][j]
			for i := 2; i < w-2; i++ {
				o.Gx[k][j][i] = (row[i-2] - 8*row[i-1] + 8*row[i+1] - row[i+2]) / 12.0
				o.Gy[k][j][i] = (image.Pix[k][j-2][i] - 8*image.Pix[k][j-1][i] + 8*image.Pix[k][j+1][i] - image.Pix[k][j+2][i]) / 12.0
				o.Gz[k][j][i] = (image.Pix[k-2][j][i] - 8*image.Pix[k-1][j][i] + 8*image.Pix[k+1][j][i] - image.Pix[k+2][j][i]) / 12.0
			}
		}
	}
	return
}
