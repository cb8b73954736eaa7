package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "order_cache",
		Name:      "lookups_total",
		Help:      "Order cache lookups by driver and result (hit, miss, expired, error).",
	}, []string{"driver", "result"})

	cacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "order_cache",
		Name:      "evictions_total",
		Help:      "Entries evicted from the in-memory cache because of capacity.",
	})

	cacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "storefront",
		Subsystem: "order_cache",
		Name:      "entries",
		Help:      "Current number of entries in the in-memory cache.",
	})
)
