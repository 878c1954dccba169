package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"spbu-monitor-backend/config"
	"spbu-monitor-backend/internal/export"
	"spbu-monitor-backend/internal/mw"
	"spbu-monitor-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, e *export.Exporter, cfg *config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestID())

	handler := NewHandler(s, e)

	rateLimiter := mw.RateLimiter(mw.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	caching := mw.Cache(cache.New(ttl, 2*ttl), ttl)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/stations", caching, handler.ListStations)
		api.GET("/stations/:id", caching, handler.GetStation)

		// PDFs carry a print timestamp and are never cached.
		api.GET("/stations/:id/export", handler.ExportStation)
		api.GET("/stations/:id/export/:tab", handler.ExportTab)
	}

	return r
}
