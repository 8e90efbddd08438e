package feeds

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors updated by a Store. A nil *Metrics disables
// instrumentation.
type Metrics struct {
	posts        prometheus.Counter
	evictedPosts prometheus.Counter
	follows      prometheus.Counter
	unfollows    prometheus.Counter
	feedRequests prometheus.Counter
	feedItems    prometheus.Histogram
	users        prometheus.Gauge
}

// NewMetrics registers the store collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		posts: factory.NewCounter(prometheus.CounterOpts{
			Name: "chirp_posts_total",
			Help: "Total number of posts created",
		}),
		evictedPosts: factory.NewCounter(prometheus.CounterOpts{
			Name: "chirp_evicted_posts_total",
			Help: "Total number of posts dropped by the per-user retention limit",
		}),
		follows: factory.NewCounter(prometheus.CounterOpts{
			Name: "chirp_follows_total",
			Help: "Total number of follow calls",
		}),
		unfollows: factory.NewCounter(prometheus.CounterOpts{
			Name: "chirp_unfollows_total",
			Help: "Total number of unfollow calls applied to existing users",
		}),
		feedRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "chirp_feed_requests_total",
			Help: "Total number of news feed requests",
		}),
		feedItems: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "chirp_feed_items",
			Help:    "Number of content ids returned per news feed request",
			Buckets: prometheus.LinearBuckets(0, 2, 11), // 0, 2, ..., 20
		}),
		users: factory.NewGauge(prometheus.GaugeOpts{
			Name: "chirp_users",
			Help: "Number of known users",
		}),
	}
}

func (m *Metrics) post(evicted int) {
	if m == nil {
		return
	}
	m.posts.Inc()
	if evicted > 0 {
		m.evictedPosts.Add(float64(evicted))
	}
}

func (m *Metrics) follow() {
	if m == nil {
		return
	}
	m.follows.Inc()
}

func (m *Metrics) unfollow() {
	if m == nil {
		return
	}
	m.unfollows.Inc()
}

func (m *Metrics) feed(items int) {
	if m == nil {
		return
	}
	m.feedRequests.Inc()
	m.feedItems.Observe(float64(items))
}

func (m *Metrics) setUsers(n int) {
	if m == nil {
		return
	}
	m.users.Set(float64(n))
}
