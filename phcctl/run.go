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

package phcctl

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/facebook/phcctl/phc"
)

// Stage is a step of the control sequence
type Stage string

// Stages in the order they run
const (
	StageOpen   Stage = "open"
	StageRead   Stage = "read"
	StageAdjust Stage = "adjust"
	StagePPS    Stage = "pps"
	StageClose  Stage = "close"
)

// Exit codes
const (
	ExitOK = 0
	// 1 is what cobra usage errors exit with
	ExitDeviceOpen   = 2
	ExitStageFailure = 3
)

var (
	okString   = color.GreenString("[ OK ]")
	failString = color.RedString("[FAIL]")
	skipString = color.YellowString("[SKIP]")
)

// Result is the outcome of Run
type Result struct {
	Errors map[Stage]error
}

// Err returns error of the stage, nil if it passed or never ran
func (r *Result) Err(st Stage) error {
	return r.Errors[st]
}

// ExitCode maps stage failures to process exit code
func (r *Result) ExitCode() int {
	if r.Errors[StageOpen] != nil {
		return ExitDeviceOpen
	}
	if len(r.Errors) > 0 {
		return ExitStageFailure
	}
	return ExitOK
}

// Runner runs the control sequence against PHC
type Runner struct {
	Config *Config
	Source phc.ClockSource
	Stats  *Stats
	Out    io.Writer
}

// NewRunner creates a Runner with fresh Stats
func NewRunner(cfg *Config, src phc.ClockSource, out io.Writer) *Runner {
	return &Runner{Config: cfg, Source: src, Stats: NewStats(), Out: out}
}

func (r *Runner) report(st Stage, res *Result, err error, format string, args ...any) {
	r.Stats.ObserveStage(st, err)
	if err != nil {
		res.Errors[st] = err
		log.Errorf("%s: %v", st, err)
		fmt.Fprintf(r.Out, "%s %s: %v\n", failString, st, err)
		return
	}
	fmt.Fprintf(r.Out, "%s %s: %s\n", okString, st, fmt.Sprintf(format, args...))
}

func (r *Runner) skip(st Stage, reason string) {
	fmt.Fprintf(r.Out, "%s %s: %s\n", skipString, st, reason)
}

// Run opens the device, reads the clock, applies the delta and enables PPS.
// Failure to open the device stops the run, other stages are independent
// and run regardless of each other's failures.
func (r *Runner) Run() *Result {
	res := &Result{Errors: map[Stage]error{}}
	defer r.writeMetrics()

	dev, err := phc.Open(r.Source, r.Config.Device)
	r.report(StageOpen, res, err, "%s", r.Config.Device)
	if err != nil {
		return res
	}
	defer func() {
		r.report(StageClose, res, dev.Close(), "%s", r.Config.Device)
	}()

	ts, err := dev.Time()
	if err == nil {
		r.Stats.SetPHCTime(ts)
	}
	r.report(StageRead, res, err, "PHC time %v (%s)", ts, ts.Time().UTC())

	delta := r.Config.Delta()
	if delta.IsZero() {
		r.skip(StageAdjust, "no adjustment requested")
	} else {
		ts, err = dev.Adjust(delta)
		if err == nil {
			r.Stats.SetDelta(delta)
		}
		r.report(StageAdjust, res, err, "applied %s, PHC time set to %v", delta, ts)
	}

	if !r.Config.EnablePPS {
		r.skip(StagePPS, "disabled")
	} else {
		err = dev.EnablePPS(r.Config.PPSChannel)
		r.report(StagePPS, res, err, "PPS enabled (PTP_ENABLE_PPS, channel %d)", r.Config.PPSChannel)
	}
	return res
}

func (r *Runner) writeMetrics() {
	if r.Config.MetricsTextfile == "" {
		return
	}
	if err := r.Stats.WriteTextfile(r.Config.MetricsTextfile); err != nil {
		log.Errorf("writing metrics to %q: %v", r.Config.MetricsTextfile, err)
	}
}
