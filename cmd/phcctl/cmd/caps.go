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
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/phcctl/clock"
	"github.com/facebook/phcctl/phc"
	"github.com/facebook/phcctl/phcctl"
)

var capsCmd = &cobra.Command{
	Use:   "caps [device]",
	Short: "Print PHC capabilities",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withDevice(cmd, args, func(_ *phcctl.Config, dev *phc.Device) error {
			return printCaps(dev)
		})
		if err != nil {
			fail(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(capsCmd)
}

func capsRows(caps *phc.Caps) [][]string {
	return [][]string{
		{"max frequency adjustment (PPB)", fmt.Sprintf("%.0f", caps.MaxAdj())},
		{"programmable alarms", fmt.Sprintf("%d", caps.NAlarm)},
		{"external timestamp channels", fmt.Sprintf("%d", caps.NExtTs)},
		{"periodic outputs", fmt.Sprintf("%d", caps.NPerOut)},
		{"pins", fmt.Sprintf("%d", caps.NPins)},
		{"PPS callback", fmt.Sprintf("%v", caps.PPS)},
		{"cross timestamping", fmt.Sprintf("%v", caps.CrossTimestamping)},
		{"adjust phase", fmt.Sprintf("%v", caps.AdjustPhase)},
	}
}

func printCaps(dev *phc.Device) error {
	caps, err := dev.Caps()
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("capability", "value")
	for _, row := range capsRows(caps) {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	if !caps.HasExtTsChannel(phc.DefaultPPSChannel) {
		log.Warningf("%s has no external timestamp channels, PPS can't be enabled", dev.Path())
	}

	// frequency is informational, PHC may not support clock_adjtime
	freq, _, err := clock.FrequencyPPB(dev.ClockID())
	if err != nil {
		log.Warningf("reading frequency of %s: %v", dev.Path(), err)
		return nil
	}
	fmt.Printf("Current frequency: %f PPB\n", freq)
	return nil
}
