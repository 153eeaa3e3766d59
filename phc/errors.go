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
	"fmt"
)

// DeviceOpenError is returned when PHC device can't be opened
type DeviceOpenError struct {
	Path string
	Err  error
}

func (e *DeviceOpenError) Error() string {
	return fmt.Sprintf("opening device %q: %v", e.Path, e.Err)
}

func (e *DeviceOpenError) Unwrap() error { return e.Err }

// ClockReadError is returned when clock_gettime on PHC fails
type ClockReadError struct {
	Path    string
	ClockID int32
	Err     error
}

func (e *ClockReadError) Error() string {
	return fmt.Sprintf("reading time (clock_gettime) of %q (clock id %d): %v", e.Path, e.ClockID, e.Err)
}

func (e *ClockReadError) Unwrap() error { return e.Err }

// ClockAdjustError is returned when either read or write part of the adjustment fails
type ClockAdjustError struct {
	Path  string
	Op    string
	Delta string
	Err   error
}

func (e *ClockAdjustError) Error() string {
	return fmt.Sprintf("adjusting %q by %s failed on %s: %v", e.Path, e.Delta, e.Op, e.Err)
}

func (e *ClockAdjustError) Unwrap() error { return e.Err }

// PPSEnableError is returned when PTP_ENABLE_PPS or PTP_EXTTS_REQUEST ioctl fails
type PPSEnableError struct {
	Path    string
	Request string
	Channel uint32
	Enable  bool
	Err     error
}

func (e *PPSEnableError) Error() string {
	action := "enabling"
	if !e.Enable {
		action = "disabling"
	}
	return fmt.Sprintf("%s PPS (%s) on %q channel %d: %v", action, e.Request, e.Path, e.Channel, e.Err)
}

func (e *PPSEnableError) Unwrap() error { return e.Err }
