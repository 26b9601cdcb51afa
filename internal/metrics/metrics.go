package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	CasesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCasesOpened,
			Help: HelpTextCasesOpened,
		},
		[]string{LabelCase},
	)

	ItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsDropped,
			Help: HelpTextItemsDropped,
		},
		[]string{LabelRarity},
	)

	StatTrakDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStatTrakDropped,
			Help: HelpTextStatTrakDropped,
		},
	)

	TradeUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradeUps,
			Help: HelpTextTradeUps,
		},
		[]string{LabelRarity},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelRarity},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelRarity},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
		[]string{LabelSource},
	)

	CooldownHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCooldownHits,
			Help: HelpTextCooldownHits,
		},
		[]string{LabelCase},
	)
)
