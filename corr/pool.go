// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package corr implements integer-pixel displacement estimation by
// FFT-accelerated normalized cross correlation
package corr

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTPlan2D holds the pre-planned transforms and buffers of one worker.
// The correlation window is even-sized: Nx=2rx by Ny=2ry. Real buffers
// are row-major; spectra use the Hermitian layout Ny x (Nx/2+1)
type FFTPlan2D struct {
	Nx, Ny int // window size
	Nc     int // spectrum row length: Nx/2+1

	// buffers
	Ref, Tar, Out    []float64    // [Ny*Nx] real data
	RefS, TarS, OutS []complex128 // [Ny*Nc] spectra

	// plans and column scratch
	rowPlan    *fourier.FFT      // real transform along x
	colPlan    *fourier.CmplxFFT // complex transform along y
	colA, colB []complex128      // [Ny] column gather/transform buffers
}

// NewFFTPlan2D allocates buffers and plans for a window of radii (rx, ry)
func NewFFTPlan2D(rx, ry int) (o *FFTPlan2D) {
	o = new(FFTPlan2D)
	o.Nx, o.Ny = 2*rx, 2*ry
	o.Nc = o.Nx/2 + 1
	n := o.Nx * o.Ny
	o.Ref = make([]float64, n)
	o.Tar = make([]float64, n)
	o.Out = make([]float64, n)
	m := o.Ny * o.Nc
	o.RefS = make([]complex128, m)
	o.TarS = make([]complex128, m)
	o.OutS = make([]complex128, m)
	o.rowPlan = fourier.NewFFT(o.Nx)
	o.colPlan = fourier.NewCmplxFFT(o.Ny)
	o.colA = make([]complex128, o.Ny)
	o.colB = make([]complex128, o.Ny)
	return
}

// Forward computes the unnormalized 2D spectrum of re into sp
func (o *FFTPlan2D) Forward(re []float64, sp []complex128) {
	for j := 0; j < o.Ny; j++ {
		o.rowPlan.Coefficients(sp[j*o.Nc:(j+1)*o.Nc], re[j*o.Nx:(j+1)*o.Nx])
	}
	for c := 0; c < o.Nc; c++ {
		for j := 0; j < o.Ny; j++ {
			o.colA[j] = sp[j*o.Nc+c]
		}
		o.colPlan.Coefficients(o.colB, o.colA)
		for j := 0; j < o.Ny; j++ {
			sp[j*o.Nc+c] = o.colB[j]
		}
	}
}

// Inverse computes the unnormalized 2D inverse transform of sp into re.
// A Forward followed by an Inverse multiplies the data by Nx*Ny
func (o *FFTPlan2D) Inverse(sp []complex128, re []float64) {
	for c := 0; c < o.Nc; c++ {
		for j := 0; j < o.Ny; j++ {
			o.colA[j] = sp[j*o.Nc+c]
		}
		o.colPlan.Sequence(o.colB, o.colA)
		for j := 0; j < o.Ny; j++ {
			sp[j*o.Nc+c] = o.colB[j]
		}
	}
	for j := 0; j < o.Ny; j++ {
		o.rowPlan.Sequence(re[j*o.Nx:(j+1)*o.Nx], sp[j*o.Nc:(j+1)*o.Nc])
	}
}

// FFTPlan3D is the volume counterpart of FFTPlan2D: window Nx=2rx,
// Ny=2ry, Nz=2rz; spectra Nz x Ny x (Nx/2+1)
type FFTPlan3D struct {
	Nx, Ny, Nz int // window size
	Nc         int // spectrum row length: Nx/2+1

	// buffers
	Ref, Tar, Out    []float64    // [Nz*Ny*Nx] real data
	RefS, TarS, OutS []complex128 // [Nz*Ny*Nc] spectra

	// plans and column scratch
	rowPlan      *fourier.FFT      // real transform along x
	colPlan      *fourier.CmplxFFT // complex transform along y
	pilPlan      *fourier.CmplxFFT // complex transform along z
	colA, colB   []complex128      // [Ny]
	pilA, pilB   []complex128      // [Nz]
}

// NewFFTPlan3D allocates buffers and plans for a window of radii (rx, ry, rz)
func NewFFTPlan3D(rx, ry, rz int) (o *FFTPlan3D) {
	o = new(FFTPlan3D)
	o.Nx, o.Ny, o.Nz = 2*rx, 2*ry, 2*rz
	o.Nc = o.Nx/2 + 1
	n := o.Nx * o.Ny * o.Nz
	o.Ref = make([]float64, n)
	o.Tar = make([]float64, n)
	o.Out = make([]float64, n)
	m := o.Nz * o.Ny * o.Nc
	o.RefS = make([]complex128, m)
	o.TarS = make([]complex128, m)
	o.OutS = make([]complex128, m)
	o.rowPlan = fourier.NewFFT(o.Nx)
	o.colPlan = fourier.NewCmplxFFT(o.Ny)
	o.pilPlan = fourier.NewCmplxFFT(o.Nz)
	o.colA = make([]complex128, o.Ny)
	o.colB = make([]complex128, o.Ny)
	o.pilA = make([]complex128, o.Nz)
	o.pilB = make([]complex128, o.Nz)
	return
}

// Forward computes the unnormalized 3D spectrum of re into sp
func (o *FFTPlan3D) Forward(re []float64, sp []complex128) {
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			o.rowPlan.Coefficients(sp[(k*o.Ny+j)*o.Nc:(k*o.Ny+j+1)*o.Nc], re[(k*o.Ny+j)*o.Nx:(k*o.Ny+j+1)*o.Nx])
		}
	}
	for k := 0; k < o.Nz; k++ {
		for c := 0; c < o.Nc; c++ {
			for j := 0; j < o.Ny; j++ {
				o.colA[j] = sp[(k*o.Ny+j)*o.Nc+c]
			}
			o.colPlan.Coefficients(o.colB, o.colA)
			for j := 0; j < o.Ny; j++ {
				sp[(k*o.Ny+j)*o.Nc+c] = o.colB[j]
			}
		}
	}
	for j := 0; j < o.Ny; j++ {
		for c := 0; c < o.Nc; c++ {
			for k := 0; k < o.Nz; k++ {
				o.pilA[k] = sp[(k*o.Ny+j)*o.Nc+c]
			}
			o.pilPlan.Coefficients(o.pilB, o.pilA)
			for k := 0; k < o.Nz; k++ {
				sp[(k*o.Ny+j)*o.Nc+c] = o.pilB[k]
			}
		}
	}
}

// Inverse computes the unnormalized 3D inverse transform of sp into re.
// A Forward followed by an Inverse multiplies the data by Nx*Ny*Nz
func (o *FFTPlan3D) Inverse(sp []complex128, re []float64) {
	for j := 0; j < o.Ny; j++ {
		for c := 0; c < o.Nc; c++ {
			for k := 0; k < o.Nz; k++ {
				o.pilA[k] = sp[(k*o.Ny+j)*o.Nc+c]
			}
			o.pilPlan.Sequence(o.pilB, o.pilA)
			for k := 0; k < o.Nz; k++ {
				sp[(k*o.Ny+j)*o.Nc+c] = o.pilB[k]
			}
		}
	}
	for k := 0; k < o.Nz; k++ {
		for c := 0; c < o.Nc; c++ {
			for j := 0; j < o.Ny; j++ {
				o.colA[j] = sp[(k*o.Ny+j)*o.Nc+c]
			}
			o.colPlan.Sequence(o.colB, o.colA)
			for j := 0; j < o.Ny; j++ {
				sp[(k*o.Ny+j)*o.Nc+c] = o.colB[j]
			}
		}
	}
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			o.rowPlan.Sequence(re[(k*o.Ny+j)*o.Nx:(k*o.Ny+j+1)*o.Nx], sp[(k*o.Ny+j)*o.Nc:(k*o.Ny+j+1)*o.Nc])
		}
	}
}

// Pool2D owns one FFTPlan2D per worker. Plans are created sequentially
// in the constructor; each worker borrows exactly one instance
type Pool2D struct {
	Plans []*FFTPlan2D
}

// NewPool2D creates nthreads plan instances for radii (rx, ry)
func NewPool2D(nthreads, rx, ry int) (o *Pool2D) {
	o = new(Pool2D)
	o.Plans = make([]*FFTPlan2D, nthreads)
	for i := 0; i < nthreads; i++ {
		o.Plans[i] = NewFFTPlan2D(rx, ry)
	}
	return
}

// Get returns the plan of one worker; a worker index outside the pool is
// a programmer error
func (o *Pool2D) Get(tid int) (*FFTPlan2D, error) {
	if tid < 0 || tid >= len(o.Plans) {
		return nil, chk.Err("worker index %d exceeds pool size %d", tid, len(o.Plans))
	}
	return o.Plans[tid], nil
}

// Pool3D owns one FFTPlan3D per worker
type Pool3D struct {
	Plans []*FFTPlan3D
}

// NewPool3D creates nthreads plan instances for radii (rx, ry, rz)
func NewPool3D(nthreads, rx, ry, rz int) (o *Pool3D) {
	o = new(Pool3D)
	o.Plans = make([]*FFTPlan3D, nthreads)
	for i := 0; i < nthreads; i++ {
		o.Plans[i] = NewFFTPlan3D(rx, ry, rz)
	}
	return
}

// Get returns the plan of one worker; a worker index outside the pool is
// a programmer error
func (o *Pool3D) Get(tid int) (*FFTPlan3D, error) {
	if tid < 0 || tid >= len(o.Plans) {
		return nil, chk.Err("worker index %d exceeds pool size %d", tid, len(o.Plans))
	}
	return o.Plans[tid], nil
}
