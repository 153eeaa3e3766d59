//go:build linux

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
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/facebook/phcctl/clock"
)

// ioctlPTPEnablePPS is PTP_ENABLE_PPS, _IOW('=', 4, int) in linux/ptp_clock.h
var ioctlPTPEnablePPS = uintptr(unix.PTP_ENABLE_PPS)

// SysSource is a ClockSource backed by real syscalls
type SysSource struct{}

// Open opens PHC device. O_CLOEXEC keeps the fd out of anything we exec.
func (SysSource) Open(path string) (uintptr, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return 0, err
	}
	return uintptr(fd), nil
}

// Close closes the file descriptor
func (SysSource) Close(fd uintptr) error {
	return unix.Close(int(fd))
}

// ClockGettime reads the clock
func (SysSource) ClockGettime(clockID int32) (clock.Timestamp, error) {
	return clock.Gettime(clockID)
}

// ClockSettime sets the clock
func (SysSource) ClockSettime(clockID int32, ts clock.Timestamp) error {
	return clock.Settime(clockID, ts)
}

// EnablePPS issues PTP_ENABLE_PPS ioctl with a pointer to the zeroed request as its argument
func (SysSource) EnablePPS(fd uintptr, req *PPSRequest) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, ioctlPTPEnablePPS, uintptr(unsafe.Pointer(req)))
	if errno != 0 {
		return errno
	}
	return nil
}

// ExttsRequest issues PTP_EXTTS_REQUEST2 ioctl. The kernel reads the whole struct.
func (SysSource) ExttsRequest(fd uintptr, req *PPSRequest) error {
	return unix.IoctlPtpExttsRequest(int(fd), req)
}

// ClockGetcaps issues PTP_CLOCK_GETCAPS2 ioctl
func (SysSource) ClockGetcaps(fd uintptr) (*Caps, error) {
	raw, err := unix.IoctlPtpClockGetcaps(int(fd))
	if err != nil {
		return nil, err
	}
	return capsFromRaw(raw), nil
}
