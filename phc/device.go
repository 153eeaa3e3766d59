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
	"os"

	log "github.com/sirupsen/logrus"
)

// DefaultDevice is the PHC device used when none is given
const DefaultDevice = "/dev/ptp0"

// clockfd is the CLOCKFD tag from kernel's posix-timers.h
const clockfd = 3

// FDToClockID derives dynamic clock id from the file descriptor,
// same as FD_TO_CLOCKID macro in linux/posix-timers.h
func FDToClockID(fd uintptr) int32 {
	return int32((int(^fd) << 3) | clockfd)
}

// Device is an open PHC device.
// It is not safe for concurrent use.
type Device struct {
	path   string
	fd     uintptr
	src    ClockSource
	closed bool
}

// Open opens PHC device at path through src
func Open(src ClockSource, path string) (*Device, error) {
	fd, err := src.Open(path)
	if err != nil {
		return nil, &DeviceOpenError{Path: path, Err: err}
	}
	log.Debugf("opened %s, fd %d, clock id %d", path, fd, FDToClockID(fd))
	return &Device{path: path, fd: fd, src: src}, nil
}

// Path returns device path
func (dev *Device) Path() string {
	return dev.path
}

// Fd returns file descriptor of the device
func (dev *Device) Fd() uintptr {
	return dev.fd
}

// ClockID returns dynamic clock id of the device.
// It is only valid while the device is open.
func (dev *Device) ClockID() int32 {
	return FDToClockID(dev.fd)
}

// Close releases the device. Only the first call reaches the kernel.
func (dev *Device) Close() error {
	if dev.closed {
		return os.ErrClosed
	}
	dev.closed = true
	log.Debugf("closing %s", dev.path)
	return dev.src.Close(dev.fd)
}
