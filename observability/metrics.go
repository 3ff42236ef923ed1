package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "forum_feed"

// FeedCollector exposes FeedStats counters to a Prometheus registry.
// Values are read from the stats at scrape time.
type FeedCollector struct {
	stats *FeedStats

	builds           *prometheus.Desc
	cacheRequests    *prometheus.Desc
	danglingTopics   *prometheus.Desc
	danglingMessages *prometheus.Desc
	droppedBoundary  *prometheus.Desc
}

func NewFeedCollector(stats *FeedStats) *FeedCollector {
	return &FeedCollector{
		stats:            stats,
		builds:           prometheus.NewDesc(namespace+"_builds_total", "Feed pipeline executions.", nil, nil),
		cacheRequests:    prometheus.NewDesc(namespace+"_cache_requests_total", "Feed cache lookups by result.", []string{"result"}, nil),
		danglingTopics:   prometheus.NewDesc(namespace+"_dangling_topics_total", "Topics dropped because their thread was not loaded.", nil, nil),
		danglingMessages: prometheus.NewDesc(namespace+"_dangling_messages_total", "Topics whose message was missing from their thread.", nil, nil),
		droppedBoundary:  prometheus.NewDesc(namespace+"_dropped_boundaries_total", "Unread boundaries removed from the last position.", nil, nil),
	}
}

func (c *FeedCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.builds
	ch <- c.cacheRequests
	ch <- c.danglingTopics
	ch <- c.danglingMessages
	ch <- c.droppedBoundary
}

func (c *FeedCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats.GetLatest()
	ch <- prometheus.MustNewConstMetric(c.builds, prometheus.CounterValue, float64(s.Builds))
	ch <- prometheus.MustNewConstMetric(c.cacheRequests, prometheus.CounterValue, float64(s.CacheHits), "hit")
	ch <- prometheus.MustNewConstMetric(c.cacheRequests, prometheus.CounterValue, float64(s.CacheMisses), "miss")
	ch <- prometheus.MustNewConstMetric(c.danglingTopics, prometheus.CounterValue, float64(s.DanglingTopics))
	ch <- prometheus.MustNewConstMetric(c.danglingMessages, prometheus.CounterValue, float64(s.DanglingMessages))
	ch <- prometheus.MustNewConstMetric(c.droppedBoundary, prometheus.CounterValue, float64(s.DroppedBoundary))
}

// WriteTextfile dumps the feed counters in the node exporter textfile format.
func WriteTextfile(path string, stats *FeedStats) error {
	registry := prometheus.NewRegistry()
	if err := registry.Register(NewFeedCollector(stats)); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, registry)
}
