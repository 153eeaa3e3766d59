/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package phc

import (
	"time"
)

// SysoffResult is a result of PHC time measurement against system clock
type SysoffResult struct {
	Offset  time.Duration
	Delay   time.Duration
	SysTime time.Time
	PHCTime time.Time
}

// based on calculate_offset from ptp4l phc_ctl.c
func sysoffEstimateBasic(ts1, rt, ts2 time.Time) SysoffResult {
	interval := ts2.Sub(ts1)
	sysTime := ts1.Add(interval / 2)
	offset := ts2.Sub(rt) - (interval / 2)

	return SysoffResult{
		SysTime: sysTime,
		PHCTime: rt,
		Delay:   interval,
		Offset:  offset,
	}
}

// Offset reads PHC time between two system clock readings and estimates
// how far system clock is ahead of PHC
func (dev *Device) Offset() (SysoffResult, error) {
	ts1 := time.Now()
	ts, err := dev.Time()
	ts2 := time.Now()
	if err != nil {
		return SysoffResult{}, err
	}
	return sysoffEstimateBasic(ts1, ts.Time(), ts2), nil
}
