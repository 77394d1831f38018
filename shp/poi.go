// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// Result2D holds per-POI diagnostics filled by the estimators
type Result2D struct {
	U0, V0      float64 // initial displacement guess
	ZNCC        float64 // final correlation; -1: invalid POI; -2: degenerate subset
	Iteration   int     // number of iterations used
	Convergence float64 // final increment norm
}

// Result3D holds per-POI diagnostics filled by the estimators
type Result3D struct {
	U0, V0, W0  float64 // initial displacement guess
	ZNCC        float64 // final correlation; -1: invalid POI; -2: degenerate subset
	Iteration   int     // number of iterations used
	Convergence float64 // final increment norm
}

// POI2D is a point of interest: an integer-valued center with the current
// deformation estimate (also the input initial guess) and result diagnostics.
// The deformation carries the full second-order vector; first-order
// estimators read and write the first-order components only
type POI2D struct {
	X, Y int        // center
	Def  *Deform2D2 // current deformation estimate / initial guess
	Res  Result2D   // diagnostics
}

// NewPOI2D returns a POI with zero (identity) deformation
func NewPOI2D(x, y int) *POI2D {
	return &POI2D{X: x, Y: y, Def: NewDeform2D2()}
}

// POI3D is a point of interest in a volume
type POI3D struct {
	X, Y, Z int        // center
	Def     *Deform3D1 // current deformation estimate / initial guess
	Res     Result3D   // diagnostics
}

// NewPOI3D returns a POI with zero (identity) deformation
func NewPOI3D(x, y, z int) *POI3D {
	return &POI3D{X: x, Y: y, Z: z, Def: NewDeform3D1()}
}
