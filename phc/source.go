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
	"github.com/facebook/phcctl/clock"
)

//go:generate mockgen -source=source.go -destination=source_mock.go -package=phc

// ClockSource is the set of OS primitives PHC operations are built on.
// SysSource talks to the kernel, tests use MockClockSource.
type ClockSource interface {
	// Open opens the device for read/write and returns its file descriptor
	Open(path string) (uintptr, error)
	// Close releases the file descriptor
	Close(fd uintptr) error
	// ClockGettime is clock_gettime(2)
	ClockGettime(clockID int32) (clock.Timestamp, error)
	// ClockSettime is clock_settime(2)
	ClockSettime(clockID int32, ts clock.Timestamp) error
	// EnablePPS is PTP_ENABLE_PPS ioctl
	EnablePPS(fd uintptr, req *PPSRequest) error
	// ExttsRequest is PTP_EXTTS_REQUEST ioctl
	ExttsRequest(fd uintptr, req *PPSRequest) error
	// ClockGetcaps is PTP_CLOCK_GETCAPS ioctl
	ClockGetcaps(fd uintptr) (*Caps, error)
}
