// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package icgn implements sub-pixel deformation refinement by
// inverse-compositional Gauss-Newton iteration
package icgn

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/godic/img"
	"github.com/cpmech/godic/inp"
	"github.com/cpmech/godic/shp"
)

// constants
const (
	MINNORM = 1.0e-12 // minimum zero-mean subset norm accepted as texture
	HESSTOL = 1.0e-14 // singularity tolerance for the Hessian inverse
)

// scratch2d1 is the per-worker workspace of ICGN2D1
type scratch2d1 struct {
	refSub *img.Subset2D  // reference subset
	tarSub *img.Subset2D  // warped target subset
	errIm  [][]float64    // [h][w] error image
	sd     [][][]float64  // [h][w][6] steepest-descent image
	hess   [][]float64    // [6][6] Gauss-Newton Hessian
	hinv   [][]float64    // [6][6] inverse Hessian
	numer  []float64      // [6] right-hand side
	dp     []float64      // [6] parameter increment
	cur    *shp.Deform2D1 // current deformation estimate
	inc    *shp.Deform2D1 // increment deformation
	wi, wc [][]float64    // [3][3] warp scratch
}

func newScratch2d1(rx, ry int) (s *scratch2d1) {
	s = new(scratch2d1)
	h, w := 2*ry+1, 2*rx+1
	s.refSub = img.NewSubset2D(0, 0, rx, ry)
	s.tarSub = img.NewSubset2D(0, 0, rx, ry)
	s.errIm = la.MatAlloc(h, w)
	s.sd = make([][][]float64, h)
	for j := 0; j < h; j++ {
		s.sd[j] = la.MatAlloc(w, 6)
	}
	s.hess = la.MatAlloc(6, 6)
	s.hinv = la.MatAlloc(6, 6)
	s.numer = make([]float64, 6)
	s.dp = make([]float64, 6)
	s.cur = shp.NewDeform2D1()
	s.inc = shp.NewDeform2D1()
	s.wi = la.MatAlloc(3, 3)
	s.wc = la.MatAlloc(3, 3)
	return
}

// ICGN2D1 refines POI deformations with a first-order shape function.
// The Hessian is assembled once per POI from reference data; increments
// are composed multiplicatively (inverse-compositional update)
type ICGN2D1 struct {

	// parameters
	Rx, Ry   int     // subset radii
	Conv     float64 // convergence threshold on the increment norm
	Stop     int     // maximum number of iterations
	Nthreads int     // scratch pool size and parallelism degree

	// images and derived data (read-only during compute)
	refImg, tarImg *img.Image2D
	grad           *img.Gradient2D
	interp         *img.BicubicBspline

	// scratch
	scratch []*scratch2d1
}

// NewICGN2D1 creates an estimator and its scratch pool
func NewICGN2D1(dat *inp.Data) (o *ICGN2D1) {
	o = new(ICGN2D1)
	o.Rx, o.Ry = dat.SubsetRadiusX, dat.SubsetRadiusY
	o.Conv, o.Stop = dat.ConvCriterion, dat.StopCondition
	o.Nthreads = dat.ThreadNumber
	o.scratch = make([]*scratch2d1, o.Nthreads)
	for i := 0; i < o.Nthreads; i++ {
		o.scratch[i] = newScratch2d1(o.Rx, o.Ry)
	}
	return
}

// SetImages attaches the reference and target views
func (o *ICGN2D1) SetImages(ref, tar *img.Image2D) {
	o.refImg, o.tarImg = ref, tar
}

// Prepare computes the reference gradients and the target interpolation
// coefficients; call once per new image pair
func (o *ICGN2D1) Prepare() {
	o.grad = img.NewGradient2D(o.refImg)
	o.interp = img.NewBicubicBspline(o.tarImg)
}

// SetConvergence adjusts the iteration control between batches
func (o *ICGN2D1) SetConvergence(conv float64, stop int) {
	o.Conv, o.Stop = conv, stop
}

// Compute refines one POI using the first scratch instance
func (o *ICGN2D1) Compute(p *shp.POI2D) error {
	return o.compute(p, 0)
}

// ComputeAll refines a batch of POIs with Nthreads workers. Per-POI data
// problems are recorded in the POI results; only programmer errors abort
// the batch
func (o *ICGN2D1) ComputeAll(pois []*shp.POI2D) error {
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

// validPOI2D rejects POIs whose subset (plus the gradient stencil band)
// leaves the image, and NaN initial guesses
func validPOI2D(p *shp.POI2D, rx, ry int, image *img.Image2D, guess []float64) bool {
	if p.X-rx < 2 || p.X+rx > image.Width-3 || p.Y-ry < 2 || p.Y+ry > image.Height-3 {
		return false
	}
	for _, g := range guess {
		if math.IsNaN(g) {
			return false
		}
	}
	return true
}

// compute runs the ICGN iteration for one POI on the scratch of one
// worker
func (o *ICGN2D1) compute(p *shp.POI2D, tid int) error {

	// scratch
	if tid < 0 || tid >= len(o.scratch) {
		return chk.Err("worker index %d exceeds pool size %d", tid, len(o.scratch))
	}
	s := o.scratch[tid]
	w, h := 2*o.Rx+1, 2*o.Ry+1

	// validation
	if !validPOI2D(p, o.Rx, o.Ry, o.refImg, []float64{p.Def.U, p.Def.Ux, p.Def.Uy, p.Def.V, p.Def.Vx, p.Def.Vy}) {
		p.Res.ZNCC = -1
		return nil
	}
	p.Res.U0, p.Res.V0 = p.Def.U, p.Def.V

	// reference subset and norm
	s.refSub.Cx, s.refSub.Cy = p.X, p.Y
	s.refSub.Fill(o.refImg)
	refNorm := s.refSub.ZeroMeanNorm()
	if refNorm < MINNORM {
		p.Res.ZNCC = -2
		return nil
	}

	// steepest-descent image and Hessian (reference side, once per POI)
	la.MatFill(s.hess, 0)
	for j := 0; j < h; j++ {
		y := float64(j - o.Ry)
		gj := p.Y - o.Ry + j
		for i := 0; i < w; i++ {
			x := float64(i - o.Rx)
			gi := p.X - o.Rx + i
			gx := o.grad.Gx[gj][gi]
			gy := o.grad.Gy[gj][gi]
			sd := s.sd[j][i]
			sd[0], sd[1], sd[2] = gx, gx*x, gx*y
			sd[3], sd[4], sd[5] = gy, gy*x, gy*y
			for a := 0; a < 6; a++ {
				for b := a; b < 6; b++ {
					s.hess[a][b] += sd[a] * sd[b]
				}
			}
		}
	}
	for a := 1; a < 6; a++ {
		for b := 0; b < a; b++ {
			s.hess[a][b] = s.hess[b][a]
		}
	}
	if err := la.MatInvG(s.hinv, s.hess, HESSTOL); err != nil {
		p.Res.ZNCC = -2
		return nil
	}

	// iterate
	s.cur.Set(p.Def.U, p.Def.Ux, p.Def.Uy, p.Def.V, p.Def.Vx, p.Def.Vy)
	rx2, ry2 := float64(o.Rx*o.Rx), float64(o.Ry*o.Ry)
	cx, cy := float64(p.X), float64(p.Y)
	iter := 0
	dpNorm, znssd := 0.0, 0.0
	for {
		iter++

		// sample the warped target subset
		for j := 0; j < h; j++ {
			y := float64(j - o.Ry)
			for i := 0; i < w; i++ {
				x := float64(i - o.Rx)
				q := s.cur.Warp(shp.Point2D{X: x, Y: y})
				s.tarSub.V[j][i] = o.interp.Eval(cx+q.X, cy+q.Y)
			}
		}
		tarNorm := s.tarSub.ZeroMeanNorm()
		if tarNorm < MINNORM {
			p.Res.ZNCC = -2
			return nil
		}

		// error image, ZNSSD and right-hand side
		ratio := refNorm / tarNorm
		la.VecFill(s.numer, 0)
		errSq := 0.0
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				e := s.tarSub.V[j][i]*ratio - s.refSub.V[j][i]
				s.errIm[j][i] = e
				errSq += e * e
				floats.AddScaled(s.numer, e, s.sd[j][i])
			}
		}
		znssd = errSq / (refNorm * refNorm)

		// increment and inverse-compositional update
		la.MatVecMul(s.dp, 1, s.hinv, s.numer)
		s.inc.Set(s.dp[0], s.dp[1], s.dp[2], s.dp[3], s.dp[4], s.dp[5])
		if err := s.cur.InvCompose(s.inc, s.wi, s.wc); err != nil {
			p.Res.ZNCC = -2
			return nil
		}

		// weighted convergence norm
		dpNorm = math.Sqrt(s.dp[0]*s.dp[0] + s.dp[3]*s.dp[3] +
			(s.dp[1]*s.dp[1]+s.dp[4]*s.dp[4])*rx2 +
			(s.dp[2]*s.dp[2]+s.dp[5]*s.dp[5])*ry2)
		if iter >= o.Stop || dpNorm < o.Conv {
			break
		}
	}

	// write back deformation and diagnostics
	p.Def.Set(s.cur.U, s.cur.Ux, s.cur.Uy, p.Def.Uxx, p.Def.Uxy, p.Def.Uyy,
		s.cur.V, s.cur.Vx, s.cur.Vy, p.Def.Vxx, p.Def.Vxy, p.Def.Vyy)
	p.Res.ZNCC = 0.5 * (2 - znssd)
	p.Res.Iteration = iter
	p.Res.Convergence = dpNorm
	return nil
}
