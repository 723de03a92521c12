package service

import (
	"github.com/afibcare/afibcare/internal/config"
	"github.com/afibcare/afibcare/internal/store"
)

// Services holds all service instances used by the application
type Services struct {
	Checkin *CheckinService
	History *HistoryService
	Export  *ExportService
	Demo    *DemoService
	Config  *ConfigService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	storePath, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(storePath, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(storePath, configPath string, cfg config.Config) *Services {
	return &Services{
		Checkin: NewCheckinService(storePath, cfg),
		History: NewHistoryService(storePath, cfg),
		Export:  NewExportService(storePath),
		Demo:    NewDemoService(storePath),
		Config:  NewConfigService(configPath, cfg),
	}
}
