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

	"github.com/facebook/phcctl/clock"
)

// Time returns current time of the PHC
func (dev *Device) Time() (clock.Timestamp, error) {
	id := dev.ClockID()
	if dev.closed {
		return clock.Timestamp{}, &ClockReadError{Path: dev.path, ClockID: id, Err: os.ErrClosed}
	}
	ts, err := dev.src.ClockGettime(id)
	if err != nil {
		return clock.Timestamp{}, &ClockReadError{Path: dev.path, ClockID: id, Err: err}
	}
	return ts.Normalize(), nil
}

// Adjust reads PHC time, adds delta and writes the result back.
// It returns the written timestamp.
// There is no protection against another writer adjusting the same clock
// between the read and the write.
func (dev *Device) Adjust(delta clock.Delta) (clock.Timestamp, error) {
	cur, err := dev.Time()
	if err != nil {
		return clock.Timestamp{}, &ClockAdjustError{Path: dev.path, Op: "read", Delta: delta.String(), Err: err}
	}
	next := cur.Add(delta)
	log.Debugf("adjusting %s: %v %s -> %v", dev.path, cur, delta, next)
	if err := dev.src.ClockSettime(dev.ClockID(), next); err != nil {
		return clock.Timestamp{}, &ClockAdjustError{Path: dev.path, Op: "write", Delta: delta.String(), Err: err}
	}
	return next, nil
}
