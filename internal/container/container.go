package container

import (
	"fmt"
	"net/http"

	"go-coin-analyzer/internal/config"
	"go-coin-analyzer/internal/factory"
	"go-coin-analyzer/internal/logger"
	"go-coin-analyzer/internal/observer"
	"go-coin-analyzer/internal/service"
	"go-coin-analyzer/internal/transport"
	"go-coin-analyzer/internal/vision"
)

// Container holds all application dependencies
type Container struct {
	config  *config.Config
	client  vision.Client
	svc     service.CoinAnalysisService
	handler http.Handler
}

// NewContainer wires the dependency graph from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	factories := factory.NewComponentFactory()

	client, err := factories.VisionFactory.CreateClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}

	archiver, err := factories.StorageFactory.CreateArchiver(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create archiver: %w", err)
	}

	legendReader := factory.CreateLegendReader(cfg)

	events := observer.NewSubject()
	events.Subscribe(observer.NewLoggingObserver(logger.Logger))
	metrics := observer.NewMetricsObserver()
	events.Subscribe(metrics)

	svc := service.NewCoinAnalysisService(
		client, archiver, legendReader, events,
		cfg.UpstreamTimeout, cfg.ArchiveTimeout,
	)
	handler := transport.NewHandler(svc, client, metrics, cfg)

	return &Container{
		config:  cfg,
		client:  client,
		svc:     svc,
		handler: handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}
