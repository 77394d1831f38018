// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package img

import (
	"math"
	"math/rand"
)

// NewRampImage2D returns an image with constant gradient:
//
//	f(x,y) = a*x + b*y + c
func NewRampImage2D(width, height int, a, b, c float64) (o *Image2D) {
	o = NewImage2D(width, height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			o.Pix[j][i] = a*float64(i) + b*float64(j) + c
		}
	}
	return
}

// SineTexture2D evaluates a smooth band-limited texture at (x-tx, y-ty).
// The mixed term makes the field non-separable so that all first-order
// deformation parameters are observable
func SineTexture2D(x, y, tx, ty float64) float64 {
	x, y = x-tx, y-ty
	return 128 +
		40*math.Sin(0.31*x+0.5) +
		35*math.Cos(0.23*y+1.1) +
		25*math.Sin(0.17*x+0.13*y+0.3)
}

// NewSineImage2D returns an image sampling SineTexture2D shifted by (tx, ty)
func NewSineImage2D(width, height int, tx, ty float64) (o *Image2D) {
	o = NewImage2D(width, height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			o.Pix[j][i] = SineTexture2D(float64(i), float64(j), tx, ty)
		}
	}
	return
}

// NewCosImage2D returns a periodic texture with period T along both axes:
//
//	f(x,y) = 128 + 100*cos(2πx/T)*cos(2πy/T)
//
// Its circular autocorrelation over a window spanning whole periods is
// cos(2πd/T) along each axis
func NewCosImage2D(width, height int, period float64) (o *Image2D) {
	o = NewImage2D(width, height)
	w := 2 * math.Pi / period
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			o.Pix[j][i] = 128 + 100*math.Cos(w*float64(i))*math.Cos(w*float64(j))
		}
	}
	return
}

// NewShiftedImage2D returns tar with tar(x,y) = src(x-tx, y-ty) for
// integer (tx, ty); reads outside src are clamped to the border
func NewShiftedImage2D(src *Image2D, tx, ty int) (o *Image2D) {
	o = NewImage2D(src.Width, src.Height)
	for j := 0; j < src.Height; j++ {
		jj := clampIdx(j-ty, src.Height)
		for i := 0; i < src.Width; i++ {
			o.Pix[j][i] = src.Pix[jj][clampIdx(i-tx, src.Width)]
		}
	}
	return
}

// NewSpeckleImage2D returns a deterministic synthetic speckle pattern:
// ngrains Gaussian grains of width sigma at seeded random positions
func NewSpeckleImage2D(width, height, ngrains int, sigma float64, seed int64) (o *Image2D) {
	o = NewImage2D(width, height)
	rnd := rand.New(rand.NewSource(seed))
	half := int(3*sigma) + 1
	for g := 0; g < ngrains; g++ {
		xg := rnd.Float64() * float64(width-1)
		yg := rnd.Float64() * float64(height-1)
		amp := 100 + 55*rnd.Float64()
		for j := clampIdx(int(yg)-half, height); j <= clampIdx(int(yg)+half, height); j++ {
			for i := clampIdx(int(xg)-half, width); i <= clampIdx(int(xg)+half, width); i++ {
				dx, dy := float64(i)-xg, float64(j)-yg
				o.Pix[j][i] += amp * math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma))
			}
		}
	}
	return
}

// NewCosImage3D returns a periodic texture with period T along all axes:
//
//	f(x,y,z) = 128 + 100*cos(2πx/T)*cos(2πy/T)*cos(2πz/T)
func NewCosImage3D(width, height, depth int, period float64) (o *Image3D) {
	o = NewImage3D(width, height, depth)
	w := 2 * math.Pi / period
	for k := 0; k < depth; k++ {
		for j := 0; j < height; j++ {
			for i := 0; i < width; i++ {
				o.Pix[k][j][i] = 128 + 100*math.Cos(w*float64(i))*math.Cos(w*float64(j))*math.Cos(w*float64(k))
			}
		}
	}
	return
}

// SineTexture3D evaluates a smooth band-limited volume texture at
// (x-tx, y-ty, z-tz)
func SineTexture3D(x, y, z, tx, ty, tz float64) float64 {
	x, y, z = x-tx, y-ty, z-tz
	return 128 +
		35*math.Sin(0.29*x+0.5) +
		30*math.Cos(0.23*y+1.1) +
		25*math.Sin(0.26*z+0.8) +
		20*math.Sin(0.15*x+0.11*y+0.13*z+0.3)
}

// NewSineImage3D returns a volume sampling SineTexture3D shifted by
// (tx, ty, tz)
func NewSineImage3D(width, height, depth int, tx, ty, tz float64) (o *Image3D) {
	o = NewImage3D(width, height, depth)
	for k := 0; k < depth; k++ {
		for j := 0; j < height; j++ {
			for i := 0; i < width; i++ {
				o.Pix[k][j][i] = SineTexture3D(float64(i), float64(j), float64(k), tx, ty, tz)
			}
		}
	}
	return
}

// NewSpeckleImage3D returns a deterministic synthetic speckle volume
func NewSpeckleImage3D(width, height, depth, ngrains int, sigma float64, seed int64) (o *Image3D) {
	o = NewImage3D(width, height, depth)
	rnd := rand.New(rand.NewSource(seed))
	half := int(3*sigma) + 1
	for g := 0; g < ngrains; g++ {
		xg := rnd.Float64() * float64(width-1)
		yg := rnd.Float64() * float64(height-1)
		zg := rnd.Float64() * float64(depth-1)
		amp := 100 + 55*rnd.Float64()
		for k := clampIdx(int(zg)-half, depth); k <= clampIdx(int(zg)+half, depth); k++ {
			for j := clampIdx(int(yg)-half, height); j <= clampIdx(int(yg)+half, height); j++ {
				for i := clampIdx(int(xg)-half, width); i <= clampIdx(int(xg)+half, width); i++ {
					dx, dy, dz := float64(i)-xg, float64(j)-yg, float64(k)-zg
					o.Pix[k][j][i] += amp * math.Exp(-(dx*dx+dy*dy+dz*dz)/(2*sigma*sigma))
				}
			}
		}
	}
	return
}

// NewShiftedImage3D returns tar with tar(x,y,z) = src(x-tx, y-ty, z-tz)
// for integer shifts; reads outside src are clamped to the border
func NewShiftedImage3D(src *Image3D, tx, ty, tz int) (o *Image3D) {
	o = NewImage3D(src.Width, src.Height, src.Depth)
	for k := 0; k < src.Depth; k++ {
		kk := clampIdx(k-tz, src.Depth)
		for j := 0; j < src.Height; j++ {
			jj := clampIdx(j-ty, src.Height)
			for i := 0; i < src.Width; i++ {
				o.Pix[k][j][i] = src.Pix[kk][jj][clampIdx(i-tx, src.Width)]
			}
		}
	}
	return
}
