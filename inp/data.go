// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the correlation parameters read from a JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds the parameters recognised by the correlation estimators
type Data struct {

	// global information
	Desc string `json:"desc"` // description of analysis

	// subset window
	SubsetRadiusX int `json:"rx"` // subset radius along x
	SubsetRadiusY int `json:"ry"` // subset radius along y
	SubsetRadiusZ int `json:"rz"` // subset radius along z (volumes only)

	// iteration control
	ConvCriterion float64 `json:"conv"` // convergence threshold on the increment norm
	StopCondition int     `json:"stop"` // maximum number of iterations

	// resources
	ThreadNumber int `json:"nthreads"` // scratch pool size and parallelism degree

	// diagnostics
	HalfPeakRatio float64 `json:"halfpeak"` // threshold for the speckle-size diagnostic
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.SubsetRadiusX = 16
	o.SubsetRadiusY = 16
	o.SubsetRadiusZ = 8
	o.ConvCriterion = 0.001
	o.StopCondition = 10
	o.ThreadNumber = 1
	o.HalfPeakRatio = 0.5
}

// PostProcess fills zero fields with defaults after a JSON read
func (o *Data) PostProcess() {
	if o.SubsetRadiusX == 0 {
		o.SubsetRadiusX = 16
	}
	if o.SubsetRadiusY == 0 {
		o.SubsetRadiusY = 16
	}
	if o.SubsetRadiusZ == 0 {
		o.SubsetRadiusZ = 8
	}
	if o.ConvCriterion == 0 {
		o.ConvCriterion = 0.001
	}
	if o.StopCondition == 0 {
		o.StopCondition = 10
	}
	if o.ThreadNumber == 0 {
		o.ThreadNumber = 1
	}
	if o.HalfPeakRatio == 0 {
		o.HalfPeakRatio = 0.5
	}
}

// Validate returns an error for nonsensical parameters
func (o *Data) Validate() error {
	if o.SubsetRadiusX < 1 || o.SubsetRadiusY < 1 || o.SubsetRadiusZ < 1 {
		return chk.Err("subset radii must be positive: rx=%d ry=%d rz=%d", o.SubsetRadiusX, o.SubsetRadiusY, o.SubsetRadiusZ)
	}
	if o.ConvCriterion <= 0 {
		return chk.Err("convergence criterion must be positive: conv=%g", o.ConvCriterion)
	}
	if o.StopCondition < 1 {
		return chk.Err("maximum number of iterations must be positive: stop=%d", o.StopCondition)
	}
	if o.ThreadNumber < 1 {
		return chk.Err("thread number must be positive: nthreads=%d", o.ThreadNumber)
	}
	if o.HalfPeakRatio <= 0 || o.HalfPeakRatio >= 1 {
		return chk.Err("half-peak ratio must be within (0,1): halfpeak=%g", o.HalfPeakRatio)
	}
	return nil
}

// ReadData reads the correlation parameters from a JSON file.
// It panics on unreadable or invalid input
func ReadData(fnamepath string) (o *Data) {

	// new (zeroed) data; fields absent from the file get defaults in PostProcess
	o = new(Data)

	// read file
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("%v", err.Error())
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("%v", err.Error())
	}

	// derived data
	o.PostProcess()
	if err = o.Validate(); err != nil {
		chk.Panic("%v", err.Error())
	}
	return
}
