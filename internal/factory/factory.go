package factory

import (
	"fmt"

	"go-coin-analyzer/internal/config"
	"go-coin-analyzer/internal/inscription"
	"go-coin-analyzer/internal/storage"
	"go-coin-analyzer/internal/vision"
)

// VisionFactory creates vision provider clients
type VisionFactory interface {
	CreateClient(cfg *config.Config) (vision.Client, error)
}

// StorageFactory creates image archivers
type StorageFactory interface {
	CreateArchiver(cfg *config.Config) (storage.Archiver, error)
}

type visionFactory struct{}

// NewVisionFactory creates a new vision provider factory
func NewVisionFactory() VisionFactory {
	return &visionFactory{}
}

// CreateClient creates the vision client selected by the configuration.
func (f *visionFactory) CreateClient(cfg *config.Config) (vision.Client, error) {
	switch cfg.Provider {
	case config.ProviderAzureOpenAI:
		return vision.NewAzureOpenAI(cfg.AzureOpenAIKey, cfg.AzureOpenAIEndpoint, cfg.AzureOpenAIDeployment), nil
	case config.ProviderGemini:
		return vision.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", cfg.Provider)
	}
}

type storageFactory struct{}

// NewStorageFactory creates a new storage factory
func NewStorageFactory() StorageFactory {
	return &storageFactory{}
}

// CreateArchiver creates a blob archiver when storage credentials are
// configured and a no-op archiver otherwise.
func (f *storageFactory) CreateArchiver(cfg *config.Config) (storage.Archiver, error) {
	if !cfg.ArchiveConfigured() {
		return storage.NewNoopArchiver(), nil
	}
	return storage.NewAzureArchiver(cfg.StorageAccount, cfg.StorageKey, cfg.StorageContainer)
}

// CreateLegendReader creates the coin-legend OCR reader, or a no-op reader
// when legend OCR is disabled.
func CreateLegendReader(cfg *config.Config) inscription.Reader {
	if cfg.LegendOCR {
		return inscription.NewTesseractReader()
	}
	return inscription.NewNoopReader()
}

// ComponentFactory combines all factories
type ComponentFactory struct {
	VisionFactory  VisionFactory
	StorageFactory StorageFactory
}

// NewComponentFactory creates a new component factory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{
		VisionFactory:  NewVisionFactory(),
		StorageFactory: NewStorageFactory(),
	}
}
