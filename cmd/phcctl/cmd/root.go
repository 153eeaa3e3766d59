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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/phcctl/phc"
	"github.com/facebook/phcctl/phcctl"
)

// RootCmd is a main entry point. Without subcommand it runs the whole control sequence.
var RootCmd = &cobra.Command{
	Use:   "phcctl [device]",
	Short: "Read, adjust and enable PPS on PTP hardware clock",
	Args:  cobra.MaximumNArgs(1),
	Run:   runRootCmd,
}

// flags
var (
	rootVerboseFlag     bool
	rootConfigFlag      string
	rootDeltaSecFlag    int64
	rootDeltaNsecFlag   int64
	rootPPSChannelFlag  uint32
	rootNoPPSFlag       bool
	rootMetricsFileFlag string
)

// source is what all commands talk to the clock through
var source phc.ClockSource = phc.SysSource{}

func init() {
	pflags := RootCmd.PersistentFlags()
	pflags.BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	pflags.StringVarP(&rootConfigFlag, "config", "c", "", "path to YAML config")

	flags := RootCmd.Flags()
	flags.Int64Var(&rootDeltaSecFlag, "delta-sec", 0, "seconds to add to PHC time")
	flags.Int64Var(&rootDeltaNsecFlag, "delta-nsec", 0, "nanoseconds to add to PHC time, may be negative or exceed a second")
	flags.Uint32Var(&rootPPSChannelFlag, "pps-channel", phc.DefaultPPSChannel, "external timestamp channel to enable PPS on")
	flags.BoolVar(&rootNoPPSFlag, "no-pps", false, "don't enable PPS")
	flags.StringVar(&rootMetricsFileFlag, "metrics-textfile", "", "write metrics to this file in node_exporter textfile format")
}

// ConfigureVerbosity configures log verbosity based on parsed flags. Needs to be called by any subcommand.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

// loadConfig builds config from defaults, config file, changed flags and positional device
func loadConfig(cmd *cobra.Command, args []string) (*phcctl.Config, error) {
	cfg := phcctl.DefaultConfig()
	if rootConfigFlag != "" {
		var err error
		if cfg, err = phcctl.ReadConfig(rootConfigFlag); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("delta-sec") {
		cfg.DeltaSec = rootDeltaSecFlag
	}
	if flags.Changed("delta-nsec") {
		cfg.DeltaNsec = rootDeltaNsecFlag
	}
	if flags.Changed("pps-channel") || flags.Changed("channel") {
		cfg.PPSChannel = rootPPSChannelFlag
	}
	if flags.Changed("no-pps") {
		cfg.EnablePPS = !rootNoPPSFlag
	}
	if flags.Changed("metrics-textfile") {
		cfg.MetricsTextfile = rootMetricsFileFlag
	}
	if len(args) > 0 {
		cfg.Device = args[0]
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s\nNo device given, using %s\n", cmd.UseLine(), cfg.Device)
	}
	return cfg, cfg.Validate()
}

// withDevice opens the device from config, runs fn on it and closes it after fn returns.
// Config errors are fatal, everything else is returned for fail to report.
func withDevice(cmd *cobra.Command, args []string, fn func(cfg *phcctl.Config, dev *phc.Device) error) error {
	ConfigureVerbosity()
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		log.Fatal(err)
	}
	dev, err := phc.Open(source, cfg.Device)
	if err != nil {
		return err
	}
	defer closeDevice(dev)
	return fn(cfg, dev)
}

func closeDevice(dev *phc.Device) {
	if err := dev.Close(); err != nil {
		log.Errorf("closing %s: %v", dev.Path(), err)
	}
}

// fail reports the error and exits with the code the control sequence would use
func fail(err error) {
	log.Error(err)
	var openErr *phc.DeviceOpenError
	if errors.As(err, &openErr) {
		os.Exit(phcctl.ExitDeviceOpen)
	}
	os.Exit(phcctl.ExitStageFailure)
}

func runRootCmd(cmd *cobra.Command, args []string) {
	ConfigureVerbosity()
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		log.Fatal(err)
	}
	res := phcctl.NewRunner(cfg, source, os.Stdout).Run()
	os.Exit(res.ExitCode())
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
