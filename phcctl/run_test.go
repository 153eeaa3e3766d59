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
	"bytes"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/facebook/phcctl/clock"
	"github.com/facebook/phcctl/phc"
)

const testFd = uintptr(3)

var testClockID = phc.FDToClockID(testFd)

func setupRunner(t *testing.T, cfg *Config) (*Runner, *phc.MockClockSource, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	src := phc.NewMockClockSource(ctrl)
	out := &bytes.Buffer{}
	return NewRunner(cfg, src, out), src, out
}

func testConfig() *Config {
	c := DefaultConfig()
	c.DeltaSec = 2
	c.DeltaNsec = 600000000
	return c
}

func TestRun(t *testing.T) {
	r, src, out := setupRunner(t, testConfig())
	gomock.InOrder(
		src.EXPECT().Open("/dev/ptp0").Return(testFd, nil),
		src.EXPECT().ClockGettime(testClockID).Return(clock.Timestamp{Sec: 1000, Nsec: 500000000}, nil),
		src.EXPECT().ClockGettime(testClockID).Return(clock.Timestamp{Sec: 1000, Nsec: 500000000}, nil),
		src.EXPECT().ClockSettime(testClockID, clock.Timestamp{Sec: 1003, Nsec: 100000000}).Return(nil),
		src.EXPECT().EnablePPS(testFd, &phc.PPSRequest{Index: 0, Flags: phc.PTPEnableFeature}).Return(nil),
		src.EXPECT().Close(testFd).Return(nil),
	)

	res := r.Run()
	require.Equal(t, ExitOK, res.ExitCode())
	require.Empty(t, res.Errors)

	printed := out.String()
	require.Contains(t, printed, "open: /dev/ptp0")
	require.Contains(t, printed, "read: PHC time 1000.500000000")
	require.Contains(t, printed, "adjust: applied +2s +600000000ns, PHC time set to 1003.100000000")
	require.Contains(t, printed, "pps: PPS enabled (PTP_ENABLE_PPS, channel 0)")
	require.Contains(t, printed, "close: /dev/ptp0")

	require.InDelta(t, 2.6, testutil.ToFloat64(r.Stats.delta), 0.000001)
	require.InDelta(t, 1000.5, testutil.ToFloat64(r.Stats.phcTime), 0.000001)
	require.InDelta(t, 1.0, testutil.ToFloat64(r.Stats.stages.WithLabelValues("adjust", "ok")), 0.000001)
}

func TestRunOpenFailure(t *testing.T) {
	r, src, out := setupRunner(t, testConfig())
	src.EXPECT().Open("/dev/ptp0").Return(uintptr(0), syscall.EACCES)

	res := r.Run()
	require.Equal(t, ExitDeviceOpen, res.ExitCode())
	var openErr *phc.DeviceOpenError
	require.ErrorAs(t, res.Err(StageOpen), &openErr)
	require.Len(t, res.Errors, 1)
	require.Contains(t, out.String(), "permission denied")
	require.NotContains(t, out.String(), "read:")
}

func TestRunAdjustWriteFailure(t *testing.T) {
	r, src, out := setupRunner(t, testConfig())
	gomock.InOrder(
		src.EXPECT().Open("/dev/ptp0").Return(testFd, nil),
		src.EXPECT().ClockGettime(testClockID).Return(clock.Timestamp{Sec: 1000, Nsec: 500000000}, nil).Times(2),
		src.EXPECT().ClockSettime(testClockID, gomock.Any()).Return(syscall.EPERM),
		// independent stages still run
		src.EXPECT().EnablePPS(testFd, gomock.Any()).Return(nil),
		src.EXPECT().Close(testFd).Return(nil).Times(1),
	)

	res := r.Run()
	require.Equal(t, ExitStageFailure, res.ExitCode())
	var adjErr *phc.ClockAdjustError
	require.ErrorAs(t, res.Err(StageAdjust), &adjErr)
	require.NoError(t, res.Err(StagePPS))
	require.NoError(t, res.Err(StageClose))
	require.Contains(t, out.String(), "operation not permitted")
	require.InDelta(t, 1.0, testutil.ToFloat64(r.Stats.stages.WithLabelValues("adjust", "fail")), 0.000001)
}

func TestRunReadFailure(t *testing.T) {
	r, src, _ := setupRunner(t, testConfig())
	gomock.InOrder(
		src.EXPECT().Open("/dev/ptp0").Return(testFd, nil),
		src.EXPECT().ClockGettime(testClockID).Return(clock.Timestamp{}, syscall.ENODEV).Times(2),
		src.EXPECT().EnablePPS(testFd, gomock.Any()).Return(syscall.EOPNOTSUPP),
		src.EXPECT().Close(testFd).Return(nil),
	)

	res := r.Run()
	require.Equal(t, ExitStageFailure, res.ExitCode())
	require.Error(t, res.Err(StageRead))
	require.Error(t, res.Err(StageAdjust))
	var ppsErr *phc.PPSEnableError
	require.ErrorAs(t, res.Err(StagePPS), &ppsErr)
}

func TestRunSkipsZeroDeltaAndPPS(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnablePPS = false
	r, src, out := setupRunner(t, cfg)
	gomock.InOrder(
		src.EXPECT().Open("/dev/ptp0").Return(testFd, nil),
		src.EXPECT().ClockGettime(testClockID).Return(clock.Timestamp{Sec: 1, Nsec: 2}, nil),
		src.EXPECT().Close(testFd).Return(nil),
	)

	res := r.Run()
	require.Equal(t, ExitOK, res.ExitCode())
	require.Contains(t, out.String(), "adjust: no adjustment requested")
	require.Contains(t, out.String(), "pps: disabled")
}

func TestRunWritesMetrics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnablePPS = false
	cfg.MetricsTextfile = filepath.Join(t.TempDir(), "phcctl.prom")
	r, src, _ := setupRunner(t, cfg)
	gomock.InOrder(
		src.EXPECT().Open("/dev/ptp0").Return(testFd, nil),
		src.EXPECT().ClockGettime(testClockID).Return(clock.Timestamp{Sec: 1, Nsec: 2}, nil),
		src.EXPECT().Close(testFd).Return(nil),
	)

	r.Run()
	data, err := os.ReadFile(cfg.MetricsTextfile)
	require.NoError(t, err)
	require.Contains(t, string(data), `phcctl_stage_total{result="ok",stage="read"} 1`)
	require.Contains(t, string(data), "phcctl_phc_time_seconds")
}
