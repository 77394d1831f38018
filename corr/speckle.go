// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/godic/shp"
)

// axisWidth scans a centered normalized correlation profile c (length n,
// peak at index r) outward from the center for the first crossing from
// above to below ratio on each side, interpolates the fractional
// crossings linearly and returns their distance
func axisWidth(c func(i int) float64, n, r int, ratio float64) (width float64, err error) {
	right, left := 0.0, 0.0
	found := false
	for i := r; i < n-1; i++ {
		a, b := c(i), c(i+1)
		if a >= ratio && b < ratio {
			right = float64(i-r) + (a-ratio)/(a-b)
			found = true
			break
		}
	}
	if !found {
		return 0, chk.Err("no crossing of ratio %g found right of the peak", ratio)
	}
	found = false
	for i := r; i > 0; i-- {
		a, b := c(i), c(i-1)
		if a >= ratio && b < ratio {
			left = float64(i-r) - (a-ratio)/(a-b)
			found = true
			break
		}
	}
	if !found {
		return 0, chk.Err("no crossing of ratio %g found left of the peak", ratio)
	}
	return right - left, nil
}

// SpeckleSize measures the width of the autocorrelation peak of the
// reference image around a POI, per axis, at the configured half-peak
// ratio. The result advises subset-radius selection; it is not used by
// the correlation loop
func (o *FFTCC2D) SpeckleSize(p *shp.POI2D) (wx, wy float64, err error) {

	// scratch (diagnostic runs on the first instance)
	plan, e := o.pool.Get(0)
	if e != nil {
		return 0, 0, e
	}
	nx, ny := plan.Nx, plan.Ny
	size := nx * ny

	// window must lie inside the reference
	if p.X-o.Rx < 0 || p.X+o.Rx > o.refImg.Width || p.Y-o.Ry < 0 || p.Y+o.Ry > o.refImg.Height {
		return 0, 0, chk.Err("window of POI (%d,%d) extends outside the reference image", p.X, p.Y)
	}

	// fill and zero-mean the reference window
	mean := 0.0
	for j := 0; j < ny; j++ {
		row := o.refImg.Pix[p.Y-o.Ry+j]
		for i := 0; i < nx; i++ {
			plan.Ref[j*nx+i] = row[p.X-o.Rx+i]
			mean += plan.Ref[j*nx+i]
		}
	}
	mean /= float64(size)
	norm := 0.0
	for k := 0; k < size; k++ {
		plan.Ref[k] -= mean
		norm += plan.Ref[k] * plan.Ref[k]
	}
	if math.Sqrt(norm) < MINNORM {
		return 0, 0, chk.Err("window of POI (%d,%d) has no texture", p.X, p.Y)
	}

	// autocorrelation: power spectrum of the reference with itself
	plan.Forward(plan.Ref, plan.RefS)
	for k := range plan.OutS {
		rr, ri := real(plan.RefS[k]), imag(plan.RefS[k])
		plan.OutS[k] = complex(rr*rr+ri*ri, 0)
	}
	plan.Inverse(plan.OutS, plan.Out)

	// normalized correlation with the peak reflected to the window center
	den := norm * float64(size)
	cx := func(i int) float64 { return plan.Out[(i-o.Rx+nx)%nx] / den }
	cy := func(j int) float64 { return plan.Out[((j-o.Ry+ny)%ny)*nx] / den }

	wx, err = axisWidth(cx, nx, o.Rx, o.HalfPeakRatio)
	if err != nil {
		return
	}
	wy, err = axisWidth(cy, ny, o.Ry, o.HalfPeakRatio)
	return
}

// SpeckleSize measures the width of the autocorrelation peak of the
// reference volume around a POI, per axis, at the configured half-peak
// ratio
func (o *FFTCC3D) SpeckleSize(p *shp.POI3D) (wx, wy, wz float64, err error) {

	// scratch (diagnostic runs on the first instance)
	plan, e := o.pool.Get(0)
	if e != nil {
		return 0, 0, 0, e
	}
	nx, ny, nz := plan.Nx, plan.Ny, plan.Nz
	size := nx * ny * nz

	// window must lie inside the reference
	if p.X-o.Rx < 0 || p.X+o.Rx > o.refImg.Width ||
		p.Y-o.Ry < 0 || p.Y+o.Ry > o.refImg.Height ||
		p.Z-o.Rz < 0 || p.Z+o.Rz > o.refImg.Depth {
		return 0, 0, 0, chk.Err("window of POI (%d,%d,%d) extends outside the reference volume", p.X, p.Y, p.Z)
	}

	// fill and zero-mean the reference window
	mean := 0.0
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			row := o.refImg.Pix[p.Z-o.Rz+k][p.Y-o.Ry+j]
			for i := 0; i < nx; i++ {
				plan.Ref[(k*ny+j)*nx+i] = row[p.X-o.Rx+i]
				mean += plan.Ref[(k*ny+j)*nx+i]
			}
		}
	}
	mean /= float64(size)
	norm := 0.0
	for k := 0; k < size; k++ {
		plan.Ref[k] -= mean
		norm += plan.Ref[k] * plan.Ref[k]
	}
	if math.Sqrt(norm) < MINNORM {
		return 0, 0, 0, chk.Err("window of POI (%d,%d,%d) has no texture", p.X, p.Y, p.Z)
	}

	// autocorrelation
	plan.Forward(plan.Ref, plan.RefS)
	for k := range plan.OutS {
		rr, ri := real(plan.RefS[k]), imag(plan.RefS[k])
		plan.OutS[k] = complex(rr*rr+ri*ri, 0)
	}
	plan.Inverse(plan.OutS, plan.Out)

	// normalized correlation with the peak reflected to the window center
	den := norm * float64(size)
	cx := func(i int) float64 { return plan.Out[(i-o.Rx+nx)%nx] / den }
	cy := func(j int) float64 { return plan.Out[((j-o.Ry+ny)%ny)*nx] / den }
	cz := func(k int) float64 { return plan.Out[((k-o.Rz+nz)%nz)*ny*nx] / den }

	wx, err = axisWidth(cx, nx, o.Rx, o.HalfPeakRatio)
	if err != nil {
		return
	}
	wy, err = axisWidth(cy, ny, o.Ry, o.HalfPeakRatio)
	if err != nil {
		return
	}
	wz, err = axisWidth(cz, nz, o.Rz, o.HalfPeakRatio)
	return
}
