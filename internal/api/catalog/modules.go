package catalog

import (
	"net/http"

	"github.com/omniwork/contracthub/internal/api/schema"
)

// EndpointGetModules handles the 'GET /v1/modules' endpoint
func (service *Service) EndpointGetModules(writer http.ResponseWriter, request *http.Request) {
	modules, err := service.Storage.Contracts().Modules(request.Context())
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSON(writer, schema.OK(modules))
}
