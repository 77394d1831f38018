// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package img

import (
	"math"

	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/floats"
)

// Subset2D is a (2Ry+1)x(2Rx+1) neighborhood of pixel values around a
// center. V[j][i] holds the value at local offset (i-Rx, j-Ry).
// The full neighborhood must lie inside the image when filling;
// estimators reject border POIs beforehand
type Subset2D struct {
	Cx, Cy int         // center (pixel indices)
	Rx, Ry int         // radii
	V      [][]float64 // [2Ry+1][2Rx+1] values
}

// NewSubset2D allocates a subset with the given center and radii
func NewSubset2D(cx, cy, rx, ry int) (o *Subset2D) {
	o = new(Subset2D)
	o.Cx, o.Cy, o.Rx, o.Ry = cx, cy, rx, ry
	o.V = la.MatAlloc(2*ry+1, 2*rx+1)
	return
}

// Fill copies pixel values from an image around the center
func (o *Subset2D) Fill(image *Image2D) {
	for j := 0; j < 2*o.Ry+1; j++ {
		row := image.Pix[o.Cy-o.Ry+j]
		copy(o.V[j], row[o.Cx-o.Rx:o.Cx-o.Rx+2*o.Rx+1])
	}
}

// ZeroMeanNorm subtracts the mean value in place and returns the L2 norm
// of the mean-subtracted subset. After the call the subset sum is zero
// to roundoff
func (o *Subset2D) ZeroMeanNorm() (norm float64) {
	n := float64((2*o.Rx + 1) * (2*o.Ry + 1))
	sum := 0.0
	for j := range o.V {
		sum += floats.Sum(o.V[j])
	}
	mean := sum / n
	ssq := 0.0
	for j := range o.V {
		row := o.V[j]
		for i := range row {
			row[i] -= mean
			ssq += row[i] * row[i]
		}
	}
	return math.Sqrt(ssq)
}

// Subset3D is a (2Rz+1)x(2Ry+1)x(2Rx+1) neighborhood of voxel values
type Subset3D struct {
	Cx, Cy, Cz int           // center (voxel indices)
	Rx, Ry, Rz int           // radii
	V          [][][]float64 // [2Rz+1][2Ry+1][2Rx+1] values
}

// NewSubset3D allocates a subset with the given center and radii
func NewSubset3D(cx, cy, cz, rx, ry, rz int) (o *Subset3D) {
	o = new(Subset3D)
	o.Cx, o.Cy, o.Cz = cx, cy, cz
	o.Rx, o.Ry, o.Rz = rx, ry, rz
	o.V = make([][][]float64, 2*rz+1)
	for k := range o.V {
		o.V[k] = la.MatAlloc(2*ry+1, 2*rx+1)
	}
	return
}

// Fill copies voxel values from a volume around the center
func (o *Subset3D) Fill(image *Image3D) {
	for k := 0; k < 2*o.Rz+1; k++ {
		slice := image.Pix[o.Cz-o.Rz+k]
		for j := 0; j < 2*o.Ry+1; j++ {
			row := slice[o.Cy-o.Ry+j]
			copy(o.V[k][j], row[o.Cx-o.Rx:o.Cx-o.Rx+2*o.Rx+1])
		}
	}
}

// ZeroMeanNorm subtracts the mean value in place and returns the L2 norm
// of the mean-subtracted subset
func (o *Subset3D) ZeroMeanNorm() (norm float64) {
	n := float64((2*o.Rx + 1) * (2*o.Ry + 1) * (2*o.Rz + 1))
	sum := 0.0
	for k := range o.V {
		for j := range o.V[k] {
			sum += floats.Sum(o.V[k][j])
		}
	}
	mean := sum / n
	ssq := 0.0
	for k := range o.V {
		for j := range o.V[k] {
			row := o.V[k][j]
			for i := range row {
				row[i] -= mean
				ssq += row[i] * row[i]
			}
		}
	}
	return math.Sqrt(ssq)
}
