// Package metrics exposes Sequencer frame reports as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/LdDl/mot-lifecycle/mot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements mot.FrameObserver
type Collector struct {
	framesTotal      prometheus.Counter
	emptyFramesTotal prometheus.Counter
	matchesTotal     prometheus.Counter
	bornTotal        prometheus.Counter
	lostTotal        prometheus.Counter
	splitsTotal      prometheus.Counter
	matchCost        prometheus.Histogram
	activeTracks     prometheus.Gauge
}

// NewCollector creates collector and registers its metrics on reg
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		framesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Total number of processed frames",
		}),
		emptyFramesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_frames_total",
			Help:      "Total number of frames without detections",
		}),
		matchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Total number of track-detection matches",
		}),
		bornTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracks_born_total",
			Help:      "Total number of tracks created from unmatched detections",
		}),
		lostTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracks_lost_total",
			Help:      "Total number of tracks moved to the lost set",
		}),
		splitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "threshold_splits_total",
			Help:      "Total number of optimal pairs split by the distance threshold",
		}),
		matchCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_cost",
			Help:      "Cost of accepted matches",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 16),
		}),
		activeTracks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_tracks",
			Help:      "Current number of active tracks",
		}),
	}

	collectors := []prometheus.Collector{
		c.framesTotal,
		c.emptyFramesTotal,
		c.matchesTotal,
		c.bornTotal,
		c.lostTotal,
		c.splitsTotal,
		c.matchCost,
		c.activeTracks,
	}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveFrame records one frame report
func (c *Collector) ObserveFrame(report mot.FrameReport) {
	c.framesTotal.Inc()
	if report.NoDetections {
		c.emptyFramesTotal.Inc()
	}
	c.matchesTotal.Add(float64(len(report.Matched)))
	c.bornTotal.Add(float64(len(report.Born)))
	c.lostTotal.Add(float64(len(report.Lost)))
	c.splitsTotal.Add(float64(report.Splits))
	for _, match := range report.Matched {
		c.matchCost.Observe(match.Cost)
	}
	c.activeTracks.Set(float64(report.NumActive))
}

// Handler serves metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
