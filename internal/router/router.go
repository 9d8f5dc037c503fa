package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/npohome/internal/handler"
	"github.com/npohome/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Options 控制路由的可选组件
type Options struct {
	Logger  zerolog.Logger
	Metrics *metrics.Collector
	// Gatherer 为 nil 时不注册 /metrics
	Gatherer prometheus.Gatherer
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(opts.Logger))
	r.Use(requestMetrics(opts.Metrics))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	r.GET("/healthz", healthz(api))

	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	// 公开页面，仅返回已发布的主页
	r.GET("/pages/:slug", api.ShowPublicPage)

	// 后台管理接口
	adminAPI := r.Group("/admin/api")
	{
		adminAPI.GET("/schema", api.GetSchema)
		adminAPI.POST("/blocks/:type/validate", api.ValidateBlock)

		adminAPI.GET("/pages", api.ListPages)
		adminAPI.POST("/pages", api.CreatePage)
		adminAPI.GET("/pages/:id", api.GetPage)
		adminAPI.PUT("/pages/:id", api.UpdatePage)
		adminAPI.DELETE("/pages/:id", api.DeletePage)
		adminAPI.GET("/pages/:id/view", api.GetPageView)
		adminAPI.GET("/pages/:id/streams/:stream", api.GetStream)
		adminAPI.PUT("/pages/:id/streams/:stream", api.UpdateStream)
	}

	return r
}

func healthz(api *handler.API) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := api.DB().DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := logger.Info()
		status := c.Writer.Status()
		switch {
		case status >= http.StatusInternalServerError:
			event = logger.Error()
		case status >= http.StatusBadRequest:
			event = logger.Warn()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

func requestMetrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
