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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/facebook/phcctl/clock"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "phcctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, `device: /dev/ptp2
delta_sec: -1
delta_nsec: 1500000000
enable_pps: false
pps_channel: 1
metrics_textfile: /var/lib/node_exporter/phcctl.prom
`)
	c, err := ReadConfig(path)
	require.NoError(t, err)
	want := &Config{
		Device:          "/dev/ptp2",
		DeltaSec:        -1,
		DeltaNsec:       1500000000,
		EnablePPS:       false,
		PPSChannel:      1,
		MetricsTextfile: "/var/lib/node_exporter/phcctl.prom",
	}
	require.Equal(t, want, c)
	require.Equal(t, clock.Delta{Sec: -1, Nsec: 1500000000}, c.Delta())
	require.NoError(t, c.Validate())
}

func TestReadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "delta_sec: 5\n")
	c, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/dev/ptp0", c.Device)
	require.True(t, c.EnablePPS)
	require.Equal(t, uint32(0), c.PPSChannel)
	require.Equal(t, int64(5), c.DeltaSec)
}

func TestReadConfigUnknownField(t *testing.T) {
	path := writeConfig(t, "devcie: /dev/ptp1\n")
	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	c.Device = ""
	require.Error(t, c.Validate())
}
