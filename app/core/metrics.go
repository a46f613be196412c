package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/metrics"
)

type Metrics struct {
	apiResponseTime      *prometheus.HistogramVec
	apiErrorCounter      *prometheus.CounterVec
	journeyEventCounter  *prometheus.CounterVec
	tokenRetryCounter    *prometheus.CounterVec
	analyticsRefreshTime *prometheus.HistogramVec
	clientsGauge         *prometheus.GaugeVec
}

func NewMetrics(ns, system string) *Metrics {
	// setup metric
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:      metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:      metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		journeyEventCounter:  metrics.NewCounterVec("journey_event", []string{"page_type", "kind"}),
		tokenRetryCounter:    metrics.NewCounterVec("client_token_retry", nil),
		analyticsRefreshTime: metrics.NewHistogramVec("analytics_refresh_time", nil),
		clientsGauge:         metrics.NewGaugeVec("clients", []string{"status"}),
	}

	return m
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) JourneyEventInc(pageType, kind string) {
	m.journeyEventCounter.WithLabelValues(pageType, kind).Inc()
}

func (m *Metrics) TokenRetryInc() {
	m.tokenRetryCounter.WithLabelValues().Inc()
}

func (m *Metrics) AnalyticsRefreshTimer() *prometheus.Timer {
	return prometheus.NewTimer(m.analyticsRefreshTime.WithLabelValues())
}

func (m *Metrics) SetClientsGauge(status string, total int64) {
	m.clientsGauge.WithLabelValues(status).Set(float64(total))
}
