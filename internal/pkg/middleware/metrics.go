package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计每个路由的响应时间和访问次数，web 和 admin 两个 server 共用一份
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
	ignored    map[string]struct{}
}

func NewMetricsBuilder(namespace string) *MetricsBuilder {
	return newMetricsBuilder(prometheus.DefaultRegisterer, namespace)
}

func newMetricsBuilder(reg prometheus.Registerer, namespace string) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	summaryVec := factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		},
		labels,
	)

	counterVec := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		labels,
	)

	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
		ignored:    map[string]struct{}{},
	}
}

// IgnorePaths 这些路径不做统计，一般是健康检查
func (a *MetricsBuilder) IgnorePaths(paths ...string) *MetricsBuilder {
	for _, p := range paths {
		a.ignored[p] = struct{}{}
	}
	return a
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		// 没有匹配到路由时用原始路径，注意 404 会因此放大 label 基数
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		if _, ok := a.ignored[path]; ok {
			return
		}
		duration := time.Since(start).Seconds()
		method := ctx.Request.Method
		statusCode := strconv.Itoa(ctx.Writer.Status())

		a.summaryVec.WithLabelValues(method, path, statusCode).Observe(duration)
		a.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
