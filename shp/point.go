// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the shape functions of subset matching: points,
// deformation parameter vectors and their homogeneous warp matrices
package shp

// Point2D holds 2D coordinates. It is used both for integer pixel indices
// (after truncation) and for real-valued sub-pixel locations
type Point2D struct {
	X, Y float64
}

// Add returns o + p
func (o Point2D) Add(p Point2D) Point2D { return Point2D{o.X + p.X, o.Y + p.Y} }

// Sub returns o - p
func (o Point2D) Sub(p Point2D) Point2D { return Point2D{o.X - p.X, o.Y - p.Y} }

// Scale returns s * o
func (o Point2D) Scale(s float64) Point2D { return Point2D{s * o.X, s * o.Y} }

// Int returns the coordinates truncated to integers
func (o Point2D) Int() (x, y int) { return int(o.X), int(o.Y) }

// Point3D holds 3D coordinates
type Point3D struct {
	X, Y, Z float64
}

// Add returns o + p
func (o Point3D) Add(p Point3D) Point3D { return Point3D{o.X + p.X, o.Y + p.Y, o.Z + p.Z} }

// Sub returns o - p
func (o Point3D) Sub(p Point3D) Point3D { return Point3D{o.X - p.X, o.Y - p.Y, o.Z - p.Z} }

// Scale returns s * o
func (o Point3D) Scale(s float64) Point3D { return Point3D{s * o.X, s * o.Y, s * o.Z} }

// Int returns the coordinates truncated to integers
func (o Point3D) Int() (x, y, z int) { return int(o.X), int(o.Y), int(o.Z) }
