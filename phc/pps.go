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
	"golang.org/x/sys/unix"
)

// PPSRequest is struct ptp_extts_request from linux/ptp_clock.h
type PPSRequest = unix.PtpExttsRequest

// request flags from linux/ptp_clock.h
const (
	// PTPEnableFeature turns the feature on, no flag turns it off
	PTPEnableFeature = uint32(1 << 0)
	// PTPRisingEdge selects rising edge timestamps
	PTPRisingEdge = uint32(1 << 1)
	// PTPFallingEdge selects falling edge timestamps
	PTPFallingEdge = uint32(1 << 2)
)

// DefaultPPSChannel is the channel index put in the request
const DefaultPPSChannel = uint32(0)

// ioctl names used in logs and errors
const (
	ioctlEnablePPS    = "PTP_ENABLE_PPS"
	ioctlExttsRequest = "PTP_EXTTS_REQUEST"
)

// NewPPSRequest builds external timestamp request for the channel.
// Everything but Index and Flags stays zero, the kernel reads the whole struct.
func NewPPSRequest(channel uint32, enable bool) PPSRequest {
	req := PPSRequest{}
	req.Index = channel
	if enable {
		req.Flags = PTPEnableFeature
	}
	return req
}

// EnablePPS enables PPS event reporting of the PHC with PTP_ENABLE_PPS.
// The argument is a pointer to the zeroed request with the enable flag on the channel.
func (dev *Device) EnablePPS(channel uint32) error {
	if dev.closed {
		return &PPSEnableError{Path: dev.path, Request: ioctlEnablePPS, Channel: channel, Enable: true, Err: os.ErrClosed}
	}
	req := NewPPSRequest(channel, true)
	log.Debugf("%s on %s: index %d flags %#x", ioctlEnablePPS, dev.path, req.Index, req.Flags)
	if err := dev.src.EnablePPS(dev.fd, &req); err != nil {
		return &PPSEnableError{Path: dev.path, Request: ioctlEnablePPS, Channel: channel, Enable: true, Err: err}
	}
	return nil
}

// EnableExtTS arms external timestamping on the channel with PTP_EXTTS_REQUEST
func (dev *Device) EnableExtTS(channel uint32) error {
	return dev.setExtTS(channel, true)
}

// DisableExtTS disarms external timestamping on the channel
func (dev *Device) DisableExtTS(channel uint32) error {
	return dev.setExtTS(channel, false)
}

func (dev *Device) setExtTS(channel uint32, enable bool) error {
	if dev.closed {
		return &PPSEnableError{Path: dev.path, Request: ioctlExttsRequest, Channel: channel, Enable: enable, Err: os.ErrClosed}
	}
	req := NewPPSRequest(channel, enable)
	log.Debugf("%s on %s: index %d flags %#x", ioctlExttsRequest, dev.path, req.Index, req.Flags)
	if err := dev.src.ExttsRequest(dev.fd, &req); err != nil {
		return &PPSEnableError{Path: dev.path, Request: ioctlExttsRequest, Channel: channel, Enable: enable, Err: err}
	}
	return nil
}
