package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BusinessMetrics 定义业务监控指标
type BusinessMetrics struct {
	DescribeTotal     *prometheus.CounterVec
	BuildTotal        *prometheus.CounterVec
	ChainReadDuration *prometheus.HistogramVec
	ActiveProposals   prometheus.Gauge
}

// Business 在包加载时创建，Init 之前也可以安全调用 (只是不会被导出)
var Business = newBusinessMetrics()

func newBusinessMetrics() *BusinessMetrics {
	return &BusinessMetrics{
		DescribeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "action_describe_total",
			Help: "Number of DESCRIBE requests by result",
		}, []string{"result"}),
		BuildTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "action_build_total",
			Help: "Number of BUILD requests by result",
		}, []string{"result"}),
		ChainReadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "action_chain_read_duration_seconds",
			Help:    "Duration of contract reads",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		ActiveProposals: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "action_active_proposals",
			Help: "Number of active proposals seen by the last DESCRIBE",
		}),
	}
}

func (m *BusinessMetrics) register(r prometheus.Registerer) {
	r.MustRegister(m.DescribeTotal, m.BuildTotal, m.ChainReadDuration, m.ActiveProposals)
}

// ResultLabel 把 HTTP 状态码映射为 result 标签: ok / client_error / server_error
func ResultLabel(status int) string {
	switch {
	case status < 400:
		return "ok"
	case status < 500:
		return "client_error"
	default:
		return "server_error"
	}
}
