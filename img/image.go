// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package img implements image/volume views, subsets, gradients and
// B-spline interpolation for subset matching
package img

import (
	"github.com/cpmech/gosl/la"
)

// Image2D is a dense grid of float pixels addressed as Pix[y][x].
// It is a read-only view during a compute call; decoding files into
// pixel grids is the job of an external collaborator
type Image2D struct {
	Width  int         // number of columns
	Height int         // number of rows
	Pix    [][]float64 // [Height][Width] pixel values
}

// NewImage2D allocates a zeroed image
func NewImage2D(width, height int) (o *Image2D) {
	o = new(Image2D)
	o.Width, o.Height = width, height
	o.Pix = la.MatAlloc(height, width)
	return
}

// Value returns the pixel at row y, column x (unchecked)
func (o *Image2D) Value(y, x int) float64 { return o.Pix[y][x] }

// Image3D is a dense block of float voxels addressed as Pix[z][y][x]
type Image3D struct {
	Width  int           // number of columns
	Height int           // number of rows
	Depth  int           // number of slices
	Pix    [][][]float64 // [Depth][Height][Width] voxel values
}

// NewImage3D allocates a zeroed volume
func NewImage3D(width, height, depth int) (o *Image3D) {
	o = new(Image3D)
	o.Width, o.Height, o.Depth = width, height, depth
	o.Pix = make([][][]float64, depth)
	for k := 0; k < depth; k++ {
		o.Pix[k] = la.MatAlloc(height, width)
	}
	return
}

// Value returns the voxel at slice z, row y, column x (unchecked)
func (o *Image3D) Value(z, y, x int) float64 { return o.Pix[z][y][x] }
