// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corr

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/godic/img"
	"github.com/cpmech/godic/inp"
	"github.com/cpmech/godic/shp"
)

// FFTCC3D estimates integer-voxel displacements by normalized cross
// correlation in the frequency domain. Correlation windows are 2rx by
// 2ry by 2rz around each POI
type FFTCC3D struct {

	// parameters
	Rx, Ry, Rz    int     // subset radii
	Nthreads      int     // pool size and parallelism degree
	HalfPeakRatio float64 // threshold for the speckle-size diagnostic

	// volumes (read-only during compute)
	refImg, tarImg *img.Image3D

	// scratch
	pool *Pool3D
}

// NewFFTCC3D creates an estimator and its scratch pool
func NewFFTCC3D(dat *inp.Data) (o *FFTCC3D) {
	o = new(FFTCC3D)
	o.Rx, o.Ry, o.Rz = dat.SubsetRadiusX, dat.SubsetRadiusY, dat.SubsetRadiusZ
	o.Nthreads = dat.ThreadNumber
	o.HalfPeakRatio = dat.HalfPeakRatio
	o.pool = NewPool3D(o.Nthreads, o.Rx, o.Ry, o.Rz)
	return
}

// SetImages attaches the reference and target views
func (o *FFTCC3D) SetImages(ref, tar *img.Image3D) {
	o.refImg, o.tarImg = ref, tar
}

// Compute processes one POI using the first scratch instance
func (o *FFTCC3D) Compute(p *shp.POI3D) error {
	return o.compute(p, 0)
}

// ComputeAll processes a batch of POIs with Nthreads workers
func (o *FFTCC3D) ComputeAll(pois []*shp.POI3D) error {
	g := new(errgroup.Group)
	for w := 0; w < o.Nthreads; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < len(pois); i += o.Nthreads {
				if err := o.compute(pois[i], w); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// compute runs the FFT-CC algorithm for one POI on the scratch of one
// worker
func (o *FFTCC3D) compute(p *shp.POI3D, tid int) error {

	// scratch
	plan, err := o.pool.Get(tid)
	if err != nil {
		return err
	}
	nx, ny, nz := plan.Nx, plan.Ny, plan.Nz
	size := nx * ny * nz

	// initial guess (truncated)
	if math.IsNaN(p.Def.U) || math.IsNaN(p.Def.V) || math.IsNaN(p.Def.W) {
		p.Res.ZNCC = -1
		return nil
	}
	u0, v0, w0 := int(p.Def.U), int(p.Def.V), int(p.Def.W)

	// reject windows extending past any boundary
	if p.X-o.Rx < 0 || p.X+o.Rx > o.refImg.Width ||
		p.Y-o.Ry < 0 || p.Y+o.Ry > o.refImg.Height ||
		p.Z-o.Rz < 0 || p.Z+o.Rz > o.refImg.Depth {
		p.Res.ZNCC = -1
		return nil
	}
	tx, ty, tz := p.X+u0, p.Y+v0, p.Z+w0
	if tx-o.Rx < 0 || tx+o.Rx > o.tarImg.Width ||
		ty-o.Ry < 0 || ty+o.Ry > o.tarImg.Height ||
		tz-o.Rz < 0 || tz+o.Rz > o.tarImg.Depth {
		p.Res.ZNCC = -1
		return nil
	}
	p.Res.U0, p.Res.V0, p.Res.W0 = p.Def.U, p.Def.V, p.Def.W

	// fill windows and accumulate means
	refMean, tarMean := 0.0, 0.0
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			refRow := o.refImg.Pix[p.Z-o.Rz+k][p.Y-o.Ry+j]
			tarRow := o.tarImg.Pix[tz-o.Rz+k][ty-o.Ry+j]
			for i := 0; i < nx; i++ {
				r := refRow[p.X-o.Rx+i]
				t := tarRow[tx-o.Rx+i]
				plan.Ref[(k*ny+j)*nx+i] = r
				plan.Tar[(k*ny+j)*nx+i] = t
				refMean += r
				tarMean += t
			}
		}
	}
	refMean /= float64(size)
	tarMean /= float64(size)

	// subtract means and accumulate norms
	refNorm, tarNorm := 0.0, 0.0
	for k := 0; k < size; k++ {
		plan.Ref[k] -= refMean
		plan.Tar[k] -= tarMean
		refNorm += plan.Ref[k] * plan.Ref[k]
		tarNorm += plan.Tar[k] * plan.Tar[k]
	}
	if math.Sqrt(refNorm) < MINNORM || math.Sqrt(tarNorm) < MINNORM {
		p.Res.ZNCC = -2
		return nil
	}

	// cross-power spectrum: out = conj(REF) * TAR
	plan.Forward(plan.Ref, plan.RefS)
	plan.Forward(plan.Tar, plan.TarS)
	for k := range plan.OutS {
		rr, ri := real(plan.RefS[k]), imag(plan.RefS[k])
		tr, ti := real(plan.TarS[k]), imag(plan.TarS[k])
		plan.OutS[k] = complex(rr*tr+ri*ti, rr*ti-ri*tr)
	}
	plan.Inverse(plan.OutS, plan.Out)

	// integer peak and wrap-around decoding (row-major over w, v, u)
	kmax := floats.MaxIdx(plan.Out)
	du := kmax % nx
	dv := (kmax / nx) % ny
	dw := kmax / (nx * ny)
	if du >= o.Rx {
		du -= nx
	}
	if dv >= o.Ry {
		dv -= ny
	}
	if dw >= o.Rz {
		dw -= nz
	}

	// results
	u := float64(u0 + du)
	v := float64(v0 + dv)
	w := float64(w0 + dw)
	p.Def.Set(u, p.Def.Ux, p.Def.Uy, p.Def.Uz,
		v, p.Def.Vx, p.Def.Vy, p.Def.Vz,
		w, p.Def.Wx, p.Def.Wy, p.Def.Wz)
	p.Res.ZNCC = plan.Out[kmax] / (math.Sqrt(refNorm*tarNorm) * float64(size))
	return nil
}
