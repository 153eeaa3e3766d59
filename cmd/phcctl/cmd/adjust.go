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

package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/phcctl/clock"
	"github.com/facebook/phcctl/phc"
	"github.com/facebook/phcctl/phcctl"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust [device]",
	Short: "Add signed delta to PHC time",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withDevice(cmd, args, func(cfg *phcctl.Config, dev *phc.Device) error {
			return adjustPHC(dev, cfg.Delta())
		})
		if err != nil {
			fail(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(adjustCmd)
	flags := adjustCmd.Flags()
	flags.Int64Var(&rootDeltaSecFlag, "delta-sec", 0, "seconds to add to PHC time")
	flags.Int64Var(&rootDeltaNsecFlag, "delta-nsec", 0, "nanoseconds to add to PHC time, may be negative or exceed a second")
}

func adjustPHC(dev *phc.Device, delta clock.Delta) error {
	if delta.IsZero() {
		log.Warning("Zero delta, nothing to do")
		return nil
	}
	ts, err := dev.Adjust(delta)
	if err != nil {
		return err
	}
	fmt.Printf("Adjusted the clock by %s (%v)\n", delta, delta.Duration())
	fmt.Printf("PHC clock set to: %v (%s)\n", ts, ts.Time().UTC())
	return nil
}
