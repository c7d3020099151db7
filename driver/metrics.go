// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus metrics of a [Driver].
type Metrics struct {
	Frames        prometheus.Counter
	NodesUpdated  prometheus.Counter
	NodesDrawn    prometheus.Counter
	FrameDuration prometheus.Histogram
}

// NewMetrics returns new [Metrics], registered with the given registerer
// if it is non-nil. It panics if the metrics are already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scene_frames_total",
			Help: "Total number of frames run",
		}),
		NodesUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scene_nodes_updated_total",
			Help: "Total number of node updates",
		}),
		NodesDrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scene_nodes_drawn_total",
			Help: "Total number of node draws",
		}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scene_frame_duration_seconds",
			Help:    "Duration of frames",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Frames, m.NodesUpdated, m.NodesDrawn, m.FrameDuration)
	}
	return m
}

func (m *Metrics) observe(fs FrameStats) {
	if m == nil {
		return
	}
	m.Frames.Inc()
	m.NodesUpdated.Add(float64(fs.Updated))
	m.NodesDrawn.Add(float64(fs.Drawn))
	m.FrameDuration.Observe(fs.Duration.Seconds())
}
