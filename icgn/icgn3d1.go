// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

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

// scratch3d1 is the per-worker workspace of ICGN3D1
type scratch3d1 struct {
	refSub *img.Subset3D   // reference subset
	tarSub *img.Subset3D   // warped target subset
	errIm  [][][]float64   // [d][h][w] error volume
	sd     [][][][]float64 // [d][h][w][12] steepest-descent image
	hess   [][]float64     // [12][12] Gauss-Newton Hessian
	hinv   [][]float64     // [12][12] inverse Hessian
	numer  []float64       // [12] right-hand side
	dp     []float64       // [12] parameter increment
	cur    *shp.Deform3D1  // current deformation estimate
	inc    *shp.Deform3D1  // increment deformation
	wi, wc [][]float64     // [4][4] warp scratch
}

func newScratch3d1(rx, ry, rz int) (s *scratch3d1) {
	s = new(scratch3d1)
	d, h, w := 2*rz+1, 2*ry+1, 2*rx+1
	s.refSub = img.NewSubset3D(0, 0, 0, rx, ry, rz)
	s.tarSub = img.NewSubset3D(0, 0, 0, rx, ry, rz)
	s.errIm = make([][][]float64, d)
	s.sd = make([][][][]float64, d)
	for k := 0; k < d; k++ {
		s.errIm[k] = la.MatAlloc(h, w)
		s.sd[k] = make([][][]float64, h)
		for j := 0; j < h; j++ {
			s.sd[k][j] = la.MatAlloc(w, 12)
		}
	}
	s.hess = la.MatAlloc(12, 12)
	s.hinv = la.MatAlloc(12, 12)
	s.numer = make([]float64, 12)
	s.dp = make([]float64, 12)
	s.cur = shp.NewDeform3D1()
	s.inc = shp.NewDeform3D1()
	s.wi = la.MatAlloc(4, 4)
	s.wc = la.MatAlloc(4, 4)
	return
}

// ICGN3D1 refines POI deformations in volumes with a first-order shape
// function
type ICGN3D1 struct {

	// parameters
	Rx, Ry, Rz int     // subset radii
	Conv       float64 // convergence threshold on the increment norm
	Stop       int     // maximum number of iterations
	Nthreads   int     // scratch pool size and parallelism degree

	// volumes and derived data (read-only during compute)
	refImg, tarImg *img.Image3D
	grad           *img.Gradient3D
	interp         *img.TricubicBspline

	// scratch
	scratch []*scratch3d1
}

// NewICGN3D1 creates an estimator and its scratch pool
func NewICGN3D1(dat *inp.Data) (o *ICGN3D1) {
	o = new(ICGN3D1)
	o.Rx, o.Ry, o.Rz = dat.SubsetRadiusX, dat.SubsetRadiusY, dat.SubsetRadiusZ
	o.Conv, o.Stop = dat.ConvCriterion, dat.StopCondition
	o.Nthreads = dat.ThreadNumber
	o.scratch = make([]*scratch3d1, o.Nthreads)
	for i := 0; i < o.Nthreads; i++ {
		o.scratch[i] = newScratch3d1(o.Rx, o.Ry, o.Rz)
	}
	return
}

// SetImages attaches the reference and target views
func (o *ICGN3D1) SetImages(ref, tar *img.Image3D) {
	o.refImg, o.tarImg = ref, tar
}

// Prepare computes the reference gradients and the target interpolation
// coefficients; call once per new volume pair
func (o *ICGN3D1) Prepare() {
	o.grad = img.NewGradient3D(o.refImg)
	o.interp = img.NewTricubicBspline(o.tarImg)
}

// SetConvergence adjusts the iteration control between batches
func (o *ICGN3D1) SetConvergence(conv float64, stop int) {
	o.Conv, o.Stop = conv, stop
}

// Compute refines one POI using the first scratch instance
func (o *ICGN3D1) Compute(p *shp.POI3D) error {
	return o.compute(p, 0)
}

// ComputeAll refines a batch of POIs with Nthreads workers
func (o *ICGN3D1) ComputeAll(pois []*shp.POI3D) error {
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

// compute runs the ICGN iteration for one POI on the scratch of one
// worker
func (o *ICGN3D1) compute(p *shp.POI3D, tid int) error {

	// scratch
	if tid < 0 || tid >= len(o.scratch) {
		return chk.Err("worker index %d exceeds pool size %d", tid, len(o.scratch))
	}
	s := o.scratch[tid]
	w, h, d := 2*o.Rx+1, 2*o.Ry+1, 2*o.Rz+1

	// validation
	if p.X-o.Rx < 2 || p.X+o.Rx > o.refImg.Width-3 ||
		p.Y-o.Ry < 2 || p.Y+o.Ry > o.refImg.Height-3 ||
		p.Z-o.Rz < 2 || p.Z+o.Rz > o.refImg.Depth-3 {
		p.Res.ZNCC = -1
		return nil
	}
	for _, g := range []float64{
		p.Def.U, p.Def.Ux, p.Def.Uy, p.Def.Uz,
		p.Def.V, p.Def.Vx, p.Def.Vy, p.Def.Vz,
		p.Def.W, p.Def.Wx, p.Def.Wy, p.Def.Wz,
	} {
		if math.IsNaN(g) {
			p.Res.ZNCC = -1
			return nil
		}
	}
	p.Res.U0, p.Res.V0, p.Res.W0 = p.Def.U, p.Def.V, p.Def.W

	// reference subset and norm
	s.refSub.Cx, s.refSub.Cy, s.refSub.Cz = p.X, p.Y, p.Z
	s.refSub.Fill(o.refImg)
	refNorm := s.refSub.ZeroMeanNorm()
	if refNorm < MINNORM {
		p.Res.ZNCC = -2
		return nil
	}

	// steepest-descent image and Hessian (reference side, once per POI)
	la.MatFill(s.hess, 0)
	for k := 0; k < d; k++ {
		z := float64(k - o.Rz)
		gk := p.Z - o.Rz + k
		for j := 0; j < h; j++ {
			y := float64(j - o.Ry)
			gj := p.Y - o.Ry + j
			for i := 0; i < w; i++ {
				x := float64(i - o.Rx)
				gi := p.X - o.Rx + i
				gx := o.grad.Gx[gk][gj][gi]
				gy := o.grad.Gy[gk][gj][gi]
				gz := o.grad.Gz[gk][gj][gi]
				sd := s.sd[k][j][i]
				sd[0], sd[1], sd[2], sd[3] = gx, gx*x, gx*y, gx*z
				sd[4], sd[5], sd[6], sd[7] = gy, gy*x, gy*y, gy*z
				sd[8], sd[9], sd[10], sd[11] = gz, gz*x, gz*y, gz*z
				for a := 0; a < 12; a++ {
					for b := a; b < 12; b++ {
						s.hess[a][b] += sd[a] * sd[b]
					}
				}
			}
		}
	}
	for a := 1; a < 12; a++ {
		for b := 0; b < a; b++ {
			s.hess[a][b] = s.hess[b][a]
		}
	}
	if err := la.MatInvG(s.hinv, s.hess, HESSTOL); err != nil {
		p.Res.ZNCC = -2
		return nil
	}

	// iterate
	s.cur.Set(p.Def.U, p.Def.Ux, p.Def.Uy, p.Def.Uz,
		p.Def.V, p.Def.Vx, p.Def.Vy, p.Def.Vz,
		p.Def.W, p.Def.Wx, p.Def.Wy, p.Def.Wz)
	cx, cy, cz := float64(p.X), float64(p.Y), float64(p.Z)
	iter := 0
	dpNorm, znssd := 0.0, 0.0
	for {
		iter++

		// sample the warped target subset
		for k := 0; k < d; k++ {
			z := float64(k - o.Rz)
			for j := 0; j < h; j++ {
				y := float64(j - o.Ry)
				for i := 0; i < w; i++ {
					x := float64(i - o.Rx)
					q := s.cur.Warp(shp.Point3D{X: x, Y: y, Z: z})
					s.tarSub.V[k][j][i] = o.interp.Eval(cx+q.X, cy+q.Y, cz+q.Z)
				}
			}
		}
		tarNorm := s.tarSub.ZeroMeanNorm()
		if tarNorm < MINNORM {
			p.Res.ZNCC = -2
			return nil
		}

		// error volume, ZNSSD and right-hand side
		ratio := refNorm / tarNorm
		la.VecFill(s.numer, 0)
		errSq := 0.0
		for k := 0; k < d; k++ {
			for j := 0; j < h; j++ {
				for i := 0; i < w; i++ {
					e := s.tarSub.V[k][j][i]*ratio - s.refSub.V[k][j][i]
					s.errIm[k][j][i] = e
					errSq += e * e
					floats.AddScaled(s.numer, e, s.sd[k][j][i])
				}
			}
		}
		znssd = errSq / (refNorm * refNorm)

		// increment and inverse-compositional update
		la.MatVecMul(s.dp, 1, s.hinv, s.numer)
		s.inc.Set(s.dp[0], s.dp[1], s.dp[2], s.dp[3],
			s.dp[4], s.dp[5], s.dp[6], s.dp[7],
			s.dp[8], s.dp[9], s.dp[10], s.dp[11])
		if err := s.cur.InvCompose(s.inc, s.wi, s.wc); err != nil {
			p.Res.ZNCC = -2
			return nil
		}

		// convergence norm over the translational components only
		dpNorm = math.Sqrt(s.dp[0]*s.dp[0] + s.dp[4]*s.dp[4] + s.dp[8]*s.dp[8])
		if iter >= o.Stop || dpNorm < o.Conv {
			break
		}
	}

	// write back deformation and diagnostics
	p.Def.Set(s.cur.U, s.cur.Ux, s.cur.Uy, s.cur.Uz,
		s.cur.V, s.cur.Vx, s.cur.Vy, s.cur.Vz,
		s.cur.W, s.cur.Wx, s.cur.Wy, s.cur.Wz)
	p.Res.ZNCC = 0.5 * (2 - znssd)
	p.Res.Iteration = iter
	p.Res.Convergence = dpNorm
	return nil
}
