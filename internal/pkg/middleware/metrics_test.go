package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder_Build(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	mb := newMetricsBuilder(reg, "wpuf").IgnorePaths("/hello")

	server := gin.New()
	server.Use(mb.Build())
	server.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello")
	})
	server.GET("/feedback/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusNotFound)
	})

	for _, target := range []string{"/hello", "/feedback/1", "/feedback/2"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, float64(2),
		testutil.ToFloat64(mb.counterVec.WithLabelValues(http.MethodGet, "/feedback/:id", "404")))
	// 忽略的路径不会产生任何 label 组合
	assert.Equal(t, 1, testutil.CollectAndCount(mb.counterVec))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{"wpuf_http_requests_total", "wpuf_http_request_duration_seconds"}, names)
}
