package handler

import (
	"github.com/npohome/internal/block"
	"github.com/npohome/internal/metrics"
	"github.com/npohome/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db      *gorm.DB
	pages   *service.HomePageService
	library *block.Library
	logger  zerolog.Logger
}

// NewAPI constructs a handler set with shared services. collector may be nil.
func NewAPI(gdb *gorm.DB, logger zerolog.Logger, collector *metrics.Collector) *API {
	return &API{
		db:      gdb,
		pages:   service.NewHomePageService(gdb, logger, collector),
		library: block.Default(),
		logger:  logger.With().Str("component", "http").Logger(),
	}
}

// DB exposes the underlying gorm instance for health checks.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Pages exposes the page service for tooling that shares the handler wiring.
func (a *API) Pages() *service.HomePageService {
	return a.pages
}
