package prom

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paxelcool/ctrader-open-api-async/observability"
)

// NewRegistry returns a fresh Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Handler returns a Prometheus HTTP handler bound to the registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ClientObserver exports connection metrics to Prometheus.
type ClientObserver struct {
	connectedGauge  prometheus.Gauge
	disconnectTotal *prometheus.CounterVec
	callsTotal      *prometheus.CounterVec
	callLatency     prometheus.Histogram
	frameErrors     *prometheus.CounterVec
	heartbeatsTotal prometheus.Counter
	eventsTotal     *prometheus.CounterVec
	queueDepth      prometheus.Gauge
}

// NewClientObserver registers connection metrics on the registry.
func NewClientObserver(reg *prometheus.Registry) *ClientObserver {
	o := &ClientObserver{
		connectedGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ctrader_client_connected",
			Help: "1 while the TCP session is established.",
		}),
		disconnectTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ctrader_client_disconnects_total",
			Help: "Connection teardowns by reason.",
		}, []string{"reason"}),
		callsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ctrader_client_calls_total",
			Help: "Correlated request outcomes.",
		}, []string{"result"}),
		callLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ctrader_client_call_latency_seconds",
			Help:    "Correlated request latency.",
			Buckets: prometheus.DefBuckets,
		}),
		frameErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ctrader_client_frame_errors_total",
			Help: "Frame read/write errors.",
		}, []string{"direction"}),
		heartbeatsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ctrader_client_heartbeats_total",
			Help: "Heartbeats sent on write inactivity.",
		}),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ctrader_client_events_total",
			Help: "Uncorrelated server events by payload type.",
		}, []string{"payload_type"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ctrader_client_send_queue_depth",
			Help: "Messages waiting in the rate-limited send queue.",
		}),
	}
	reg.MustRegister(
		o.connectedGauge,
		o.disconnectTotal,
		o.callsTotal,
		o.callLatency,
		o.frameErrors,
		o.heartbeatsTotal,
		o.eventsTotal,
		o.queueDepth,
	)
	return o
}

func (o *ClientObserver) Connected() {
	o.connectedGauge.Set(1)
}

func (o *ClientObserver) Disconnected(reason observability.CloseReason) {
	o.connectedGauge.Set(0)
	o.disconnectTotal.WithLabelValues(string(reason)).Inc()
}

func (o *ClientObserver) Call(result observability.CallResult, d time.Duration) {
	o.callsTotal.WithLabelValues(string(result)).Inc()
	o.callLatency.Observe(d.Seconds())
}

func (o *ClientObserver) FrameError(direction observability.FrameDirection) {
	o.frameErrors.WithLabelValues(string(direction)).Inc()
}

func (o *ClientObserver) HeartbeatSent() {
	o.heartbeatsTotal.Inc()
}

func (o *ClientObserver) EventReceived(payloadType uint32) {
	o.eventsTotal.WithLabelValues(strconv.FormatUint(uint64(payloadType), 10)).Inc()
}

func (o *ClientObserver) SendQueueDepth(n int) {
	o.queueDepth.Set(float64(n))
}
