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

package clock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// NsPerSec is the number of nanoseconds in a second
const NsPerSec = int64(time.Second)

// Timestamp is an absolute point on a clock timeline.
// Normalized timestamps always have 0 <= Nsec < NsPerSec.
type Timestamp struct {
	Sec  int64
	Nsec int64
}

// Delta is a relative adjustment. Nsec is allowed to be negative or exceed a second.
type Delta struct {
	Sec  int64
	Nsec int64
}

// FromTimespec converts unix.Timespec into normalized Timestamp
func FromTimespec(ts unix.Timespec) Timestamp {
	sec, nsec := ts.Unix()
	return Timestamp{Sec: sec, Nsec: nsec}.Normalize()
}

// FromTime converts time.Time into Timestamp
func FromTime(t time.Time) Timestamp {
	return Timestamp{Sec: t.Unix(), Nsec: int64(t.Nanosecond())}
}

// Timespec converts Timestamp into unix.Timespec suitable for clock_settime
func (t Timestamp) Timespec() unix.Timespec {
	n := t.Normalize()
	var ts unix.Timespec
	// this way we can have platform-dependent code isolated
	setTimespec(&ts, n.Sec, n.Nsec)
	return ts
}

// Time converts Timestamp into time.Time
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Sec, t.Nsec)
}

// Add adds delta to the timestamp and returns the normalized result.
// Fields are added as plain integers, there is no saturation.
func (t Timestamp) Add(d Delta) Timestamp {
	return Timestamp{Sec: t.Sec + d.Sec, Nsec: t.Nsec + d.Nsec}.Normalize()
}

// Normalize carries whole seconds out of Nsec so that 0 <= Nsec < NsPerSec
// while preserving Sec*NsPerSec + Nsec.
func (t Timestamp) Normalize() Timestamp {
	t.Sec += t.Nsec / NsPerSec
	t.Nsec %= NsPerSec
	if t.Nsec < 0 {
		t.Nsec += NsPerSec
		t.Sec--
	}
	return t
}

// String prints timestamp as seconds.nanoseconds
func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", t.Sec, t.Nsec)
}

// IsZero returns true if delta doesn't move the clock
func (d Delta) IsZero() bool {
	return d.Sec == 0 && d.Nsec == 0
}

// Duration converts delta into time.Duration. Deltas beyond ~292 years overflow.
func (d Delta) Duration() time.Duration {
	return time.Duration(d.Sec)*time.Second + time.Duration(d.Nsec)
}

// String prints delta in the sec/nsec form it was given
func (d Delta) String() string {
	return fmt.Sprintf("%+ds %+dns", d.Sec, d.Nsec)
}

// DeltaFromDuration splits duration into Delta
func DeltaFromDuration(d time.Duration) Delta {
	return Delta{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
}
