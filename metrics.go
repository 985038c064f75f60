package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// buildMetrics describes a single run. They are written out in the text
// exposition format for node_exporter's textfile collector.
type buildMetrics struct {
	registry  *prometheus.Registry
	pages     *prometheus.CounterVec
	posts     prometheus.Gauge
	duration  prometheus.Gauge
	lastBuild prometheus.Gauge
}

func newBuildMetrics() *buildMetrics {
	m := &buildMetrics{
		registry: prometheus.NewRegistry(),
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "anablog_pages_total",
			Help: "Pages seen during the build, by outcome.",
		}, []string{"outcome"}),
		posts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "anablog_posts",
			Help: "Posts listed in the writing index and feeds.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "anablog_build_duration_seconds",
			Help: "Wall time of the build.",
		}),
		lastBuild: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "anablog_last_build_timestamp_seconds",
			Help: "Unix time at which the last successful build finished.",
		}),
	}

	// Report every outcome, even those that did not happen.
	for _, o := range []outcome{updated, skipped, errored} {
		m.pages.WithLabelValues(o.String())
	}

	m.registry.MustRegister(m.pages, m.posts, m.duration, m.lastBuild)
	return m
}

func (m *buildMetrics) recordOutcome(o outcome) {
	m.pages.WithLabelValues(o.String()).Inc()
}

func (m *buildMetrics) finish(d time.Duration) {
	m.duration.Set(d.Seconds())
	m.lastBuild.SetToCurrentTime()
}

func (m *buildMetrics) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
