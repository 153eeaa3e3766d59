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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/facebook/phcctl/clock"
)

// Stats holds metrics of a single run
type Stats struct {
	registry *prometheus.Registry
	stages   *prometheus.CounterVec
	phcTime  prometheus.Gauge
	delta    prometheus.Gauge
}

// NewStats creates Stats with its own registry
func NewStats() *Stats {
	s := &Stats{
		registry: prometheus.NewRegistry(),
		stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "phcctl_stage_total",
			Help: "Stages of the control sequence by result",
		}, []string{"stage", "result"}),
		phcTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "phcctl_phc_time_seconds",
			Help: "Last PHC time read",
		}),
		delta: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "phcctl_adjust_delta_seconds",
			Help: "Last adjustment applied to PHC",
		}),
	}
	s.registry.MustRegister(s.stages, s.phcTime, s.delta)
	return s
}

// Registry returns the registry metrics are registered in
func (s *Stats) Registry() *prometheus.Registry {
	return s.registry
}

// ObserveStage counts stage outcome
func (s *Stats) ObserveStage(st Stage, err error) {
	result := "ok"
	if err != nil {
		result = "fail"
	}
	s.stages.WithLabelValues(string(st), result).Inc()
}

// SetPHCTime records last PHC time read
func (s *Stats) SetPHCTime(ts clock.Timestamp) {
	s.phcTime.Set(float64(ts.Sec) + float64(ts.Nsec)/float64(clock.NsPerSec))
}

// SetDelta records applied adjustment
func (s *Stats) SetDelta(d clock.Delta) {
	s.delta.Set(d.Duration().Seconds())
}

// WriteTextfile writes metrics in node_exporter textfile collector format
func (s *Stats) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, s.registry)
}
