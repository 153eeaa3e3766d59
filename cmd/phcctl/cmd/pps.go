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
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/facebook/phcctl/phc"
	"github.com/facebook/phcctl/phcctl"
)

// flags
var (
	ppsExtTSFlag   bool
	ppsDisableFlag bool
)

var errDisableNeedsExtTS = errors.New("--disable needs --extts, PTP_ENABLE_PPS can only turn PPS on")

var ppsCmd = &cobra.Command{
	Use:   "pps [device]",
	Short: "Enable PPS event reporting, or arm/disarm external timestamping with --extts",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withDevice(cmd, args, func(cfg *phcctl.Config, dev *phc.Device) error {
			return setPPS(cmd.OutOrStdout(), dev, cfg.PPSChannel, ppsExtTSFlag, !ppsDisableFlag)
		})
		if err != nil {
			fail(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(ppsCmd)
	flags := ppsCmd.Flags()
	flags.Uint32Var(&rootPPSChannelFlag, "channel", phc.DefaultPPSChannel, "channel index put in the request")
	flags.BoolVar(&ppsExtTSFlag, "extts", false, "use PTP_EXTTS_REQUEST external timestamping instead of PTP_ENABLE_PPS")
	flags.BoolVar(&ppsDisableFlag, "disable", false, "disarm external timestamping, needs --extts")
}

func setPPS(w io.Writer, dev *phc.Device, channel uint32, extts, enable bool) error {
	if !extts {
		if !enable {
			return errDisableNeedsExtTS
		}
		if err := dev.EnablePPS(channel); err != nil {
			return err
		}
		fmt.Fprintf(w, "PPS enabled on %s\n", dev.Path())
		return nil
	}
	if !enable {
		if err := dev.DisableExtTS(channel); err != nil {
			return err
		}
		fmt.Fprintf(w, "External timestamping disabled on %s channel %d\n", dev.Path(), channel)
		return nil
	}
	if err := dev.EnableExtTS(channel); err != nil {
		return err
	}
	fmt.Fprintf(w, "External timestamping enabled on %s channel %d\n", dev.Path(), channel)
	return nil
}
