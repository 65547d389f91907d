package api

import (
	"errors"
	"net/http"

	"github.com/omniwork/contracthub/internal/api/catalog"
	"github.com/omniwork/contracthub/internal/config"
	"github.com/omniwork/contracthub/internal/storage"
)

// Service represents the contract catalog API service
type Service struct {
	Config  *config.Config
	Storage storage.Driver
	catalog *catalog.Service
}

// Startup starts up the catalog API
func (service *Service) Startup(errs chan<- error) {
	catalogService := &catalog.Service{
		Config:  service.Config,
		Storage: service.Storage,
	}
	service.catalog = catalogService
	go func() {
		if err := catalogService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
}

// Shutdown shuts down the catalog API
func (service *Service) Shutdown() {
	if service.catalog != nil {
		service.catalog.Shutdown()
		service.catalog = nil
	}
}
