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
	"os"

	"golang.org/x/sys/unix"

	"github.com/facebook/phcctl/clock"
)

// Caps is what PTP_CLOCK_GETCAPS reports about the clock
type Caps struct {
	MaxAdjPPB         int32 // Maximum frequency adjustment in parts per billon.
	NAlarm            int32 // Number of programmable alarms.
	NExtTs            int32 // Number of external time stamp channels.
	NPerOut           int32 // Number of programmable periodic signals.
	PPS               bool  // Whether the clock supports a PPS callback.
	NPins             int32 // Number of input/output pins.
	CrossTimestamping bool  // Whether the clock supports precise system-device cross timestamps
	AdjustPhase       bool  // Whether the clock supports adjust phase
}

func capsFromRaw(raw *unix.PtpClockCaps) *Caps {
	return &Caps{
		MaxAdjPPB:         raw.Max_adj,
		NAlarm:            raw.N_alarm,
		NExtTs:            raw.N_ext_ts,
		NPerOut:           raw.N_per_out,
		PPS:               raw.Pps != 0,
		NPins:             raw.N_pins,
		CrossTimestamping: raw.Cross_timestamping != 0,
		AdjustPhase:       raw.Adjust_phase != 0,
	}
}

// MaxAdj returns maximum frequency adjustment in PPB, falling back to linuxptp default
func (caps *Caps) MaxAdj() float64 {
	if caps == nil || caps.MaxAdjPPB == 0 {
		return clock.DefaultMaxFreqPPB
	}
	return float64(caps.MaxAdjPPB)
}

// HasExtTsChannel checks if channel is within external timestamp channels of the clock
func (caps *Caps) HasExtTsChannel(channel uint32) bool {
	return caps != nil && int64(channel) < int64(caps.NExtTs)
}

// Caps returns capabilities of the PHC
func (dev *Device) Caps() (*Caps, error) {
	if dev.closed {
		return nil, fmt.Errorf("reading caps of %q: %w", dev.path, os.ErrClosed)
	}
	caps, err := dev.src.ClockGetcaps(dev.fd)
	if err != nil {
		return nil, fmt.Errorf("reading caps of %q: %w", dev.path, err)
	}
	return caps, nil
}
