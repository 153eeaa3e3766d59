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

	"github.com/spf13/cobra"

	"github.com/facebook/phcctl/clock"
	"github.com/facebook/phcctl/phc"
	"github.com/facebook/phcctl/phcctl"
)

var timeCmd = &cobra.Command{
	Use:   "time [device]",
	Short: "Print PHC time",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withDevice(cmd, args, func(_ *phcctl.Config, dev *phc.Device) error {
			return printTime(dev)
		})
		if err != nil {
			fail(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(timeCmd)
}

func printTime(dev *phc.Device) error {
	res, err := dev.Offset()
	if err != nil {
		return err
	}
	fmt.Printf("PHC clock: %v (%s)\n", clock.FromTime(res.PHCTime), res.PHCTime.UTC())
	fmt.Printf("SYS clock: %s\n", res.SysTime)
	fmt.Printf("Offset: %s\n", res.Offset)
	fmt.Printf("Delay: %s\n", res.Delay)
	fmt.Printf("Clock ID: %d\n", dev.ClockID())
	return nil
}
