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
	"os"

	"gopkg.in/yaml.v2"

	"github.com/facebook/phcctl/clock"
	"github.com/facebook/phcctl/phc"
)

// Config specifies phcctl run options
type Config struct {
	Device          string `yaml:"device"`
	DeltaSec        int64  `yaml:"delta_sec"`
	DeltaNsec       int64  `yaml:"delta_nsec"`
	EnablePPS       bool   `yaml:"enable_pps"`
	PPSChannel      uint32 `yaml:"pps_channel"`
	MetricsTextfile string `yaml:"metrics_textfile"`
}

// DefaultConfig returns Config with default values
func DefaultConfig() *Config {
	return &Config{
		Device:     phc.DefaultDevice,
		EnablePPS:  true,
		PPSChannel: phc.DefaultPPSChannel,
	}
}

// ReadConfig reads config from the file on top of defaults
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	cData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.UnmarshalStrict(cData, c)
	if err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	return c, nil
}

// Validate checks the config is usable
func (c *Config) Validate() error {
	if c.Device == "" {
		return fmt.Errorf("device must be specified")
	}
	return nil
}

// Delta returns adjustment to apply to the clock
func (c *Config) Delta() clock.Delta {
	return clock.Delta{Sec: c.DeltaSec, Nsec: c.DeltaNsec}
}
