// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型选择：
// - 计数用Counter：请求数、报名数、订阅数
// - 瞬时值用Gauge：正在处理的请求数
// - 分布用Histogram：请求耗时
//
// 使用方式：启动时调用InitMetrics()注册指标，
// 通过promhttp.Handler()暴露/metrics端点供Prometheus抓取。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTP请求指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时分布
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// CatalogSearchesTotal 目录搜索总数
	// 标签：kind（filter/search）
	CatalogSearchesTotal *prometheus.CounterVec

	// EventRegistrationsTotal 活动报名总数
	// 标签：result（registered/rejected/unregistered）
	EventRegistrationsTotal *prometheus.CounterVec

	// SubscriptionsTotal 新闻订阅总数
	// 标签：result（subscribed/reactivated/rejected/unsubscribed）
	SubscriptionsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，注册指标到默认Registry
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookhaven_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookhaven_http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookhaven_http_requests_in_progress",
			Help: "Number of HTTP requests currently being served",
		},
	)

	CatalogSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookhaven_catalog_searches_total",
			Help: "Total number of catalog list/search queries",
		},
		[]string{"kind"},
	)

	EventRegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookhaven_event_registrations_total",
			Help: "Total number of event registration attempts",
		},
		[]string{"result"},
	)

	SubscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookhaven_subscriptions_total",
			Help: "Total number of newsletter subscription attempts",
		},
		[]string{"result"},
	)
}
