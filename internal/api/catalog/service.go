package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/omniwork/contracthub/internal/api/schema"
	"github.com/omniwork/contracthub/internal/config"
	"github.com/omniwork/contracthub/internal/storage"
	"github.com/rs/zerolog/log"
)

// Service represents the contract catalog API service
type Service struct {
	server *http.Server

	Config  *config.Config
	Storage storage.Driver

	writer *schema.Writer
}

// Startup starts up the catalog API
func (service *Service) Startup() error {
	server := &http.Server{
		Addr:    service.Config.ListenAddress,
		Handler: service.Router(),
	}
	service.server = server
	return server.ListenAndServe()
}

// Router assembles the catalog API HTTP handler.
// It is exposed separately from Startup so tests can exercise the endpoints without
// binding a listener.
func (service *Service) Router() http.Handler {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the catalog API experienced an unexpected error")
		},
	}

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{service.Config.AllowedOrigin},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	// Register the contract controller endpoints
	router.Get("/v1/contracts", service.EndpointGetContracts)
	router.Get("/v1/contracts/{id}", service.EndpointGetContract)
	router.Post("/v1/contracts", service.EndpointCreateContract)
	router.Patch("/v1/contracts/{id}", service.EndpointEditContract)
	router.Delete("/v1/contracts/{id}", service.EndpointDeleteContract)

	// Register the module controller endpoints
	router.Get("/v1/modules", service.EndpointGetModules)

	return router
}

// Shutdown shuts down the catalog API
func (service *Service) Shutdown() {
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}
