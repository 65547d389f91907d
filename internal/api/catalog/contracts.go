package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/omniwork/contracthub/internal/api/schema"
	"github.com/omniwork/contracthub/internal/api/validation"
	"github.com/omniwork/contracthub/internal/contract"
)

var (
	errContractInvalidID = func(id string) *schema.Error {
		return &schema.Error{
			Code:    "catalog.contract.invalidID",
			Message: fmt.Sprintf("The given contract ID ('%s') is not a valid UUID.", id),
			Details: map[string]interface{}{
				"id": id,
			},
		}
	}
	errContractInvalid = func(reason error) *schema.Error {
		return &schema.Error{
			Code:    "catalog.contract.invalid",
			Message: "The given contract definition is invalid.",
			Details: map[string]interface{}{
				"reason": reason.Error(),
			},
		}
	}
	errContractDuplicateRoute = func(module, method, path string) *schema.Error {
		return &schema.Error{
			Code:    "catalog.contract.duplicateRoute",
			Message: fmt.Sprintf("A contract for the route '%s %s' is already registered in the '%s' module.", method, path, module),
			Details: map[string]interface{}{
				"module": module,
				"method": method,
				"path":   path,
			},
		}
	}
)

// EndpointGetContracts handles the 'GET /v1/contracts?page={number?:1}&limit={number?:20}&search={string?}&module={string?}&method={string?}&complete={boolean?}' endpoint
func (service *Service) EndpointGetContracts(writer http.ResponseWriter, request *http.Request) {
	params, validationErrs := validation.List(request, service.Config.DefaultPageSize, service.Config.MaxPageSize)
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	filter := new(contract.Filter)
	if params.Search != "" {
		filter.Search = &params.Search
	}
	if module, ok := params.Filters["module"]; ok {
		module = strings.ToLower(module)
		filter.Module = &module
	}
	if method, ok := params.Filters["method"]; ok {
		method = strings.ToUpper(method)
		filter.Method = &method
	}
	if _, ok := params.Filters["complete"]; ok {
		complete, validationErr := validation.QueryBool(request, "complete", false, false)
		if validationErr != nil {
			service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
			return
		}
		filter.Complete = &complete
	}

	contracts, n, err := service.Storage.Contracts().Get(request.Context(), filter, uint64(params.Page), uint64(params.Limit))
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	response, err := schema.BuildPaginatedResponse(contracts, params.Page, params.Limit, int64(n))
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSON(writer, response)
}

// EndpointGetContract handles the 'GET /v1/contracts/{id}' endpoint
func (service *Service) EndpointGetContract(writer http.ResponseWriter, request *http.Request) {
	raw := chi.URLParam(request, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errContractInvalidID(raw))
		return
	}

	obj, err := service.Storage.Contracts().GetByID(request.Context(), id)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	service.writer.WriteJSON(writer, schema.OK(obj))
}

type endpointCreateContractRequestPayload struct {
	Module   string           `json:"module" required:"true"`
	Method   string           `json:"method" required:"true"`
	Path     string           `json:"path" required:"true"`
	Summary  string           `json:"summary"`
	Entity   string           `json:"entity"`
	Request  []contract.Field `json:"request"`
	Response string           `json:"response" required:"true"`
	Complete bool             `json:"complete"`
}

// EndpointCreateContract handles the 'POST /v1/contracts' endpoint
func (service *Service) EndpointCreateContract(writer http.ResponseWriter, request *http.Request) {
	payload, validationErrs, err := validation.UnmarshalBody[endpointCreateContractRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	create := &contract.Create{
		Module:   payload.Module,
		Method:   payload.Method,
		Path:     payload.Path,
		Summary:  payload.Summary,
		Entity:   payload.Entity,
		Request:  payload.Request,
		Response: contract.Shape(payload.Response),
		Complete: payload.Complete,
	}
	if err := create.Validate(); err != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errContractInvalid(err))
		return
	}

	obj, err := service.Storage.Contracts().Create(request.Context(), create)
	if err != nil {
		if errors.Is(err, contract.ErrDuplicateRoute) {
			service.writer.WriteErrors(writer, http.StatusConflict, errContractDuplicateRoute(create.Module, create.Method, create.Path))
			return
		}
		service.writer.WriteInternalError(writer, err)
		return
	}

	service.writer.WriteJSONCode(writer, http.StatusCreated, schema.OK(obj))
}

type endpointEditContractRequestPayload struct {
	Summary  *string           `json:"summary"`
	Entity   *string           `json:"entity"`
	Request  *[]contract.Field `json:"request"`
	Response *string           `json:"response"`
	Complete *bool             `json:"complete"`
}

// EndpointEditContract handles the 'PATCH /v1/contracts/{id}' endpoint
func (service *Service) EndpointEditContract(writer http.ResponseWriter, request *http.Request) {
	raw := chi.URLParam(request, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errContractInvalidID(raw))
		return
	}

	// Retrieve the old contract
	obj, err := service.Storage.Contracts().GetByID(request.Context(), id)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	// Unmarshal and validate the request body
	payload, validationErrs, err := validation.UnmarshalBody[endpointEditContractRequestPayload](request)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if len(validationErrs) > 0 {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErrs...)
		return
	}

	// Construct the update action
	update := &contract.Update{
		Summary:  payload.Summary,
		Entity:   payload.Entity,
		Request:  payload.Request,
		Complete: payload.Complete,
	}
	if payload.Response != nil {
		shape := contract.Shape(*payload.Response)
		if !shape.Valid() {
			service.writer.WriteErrors(writer, http.StatusBadRequest, errContractInvalid(contract.ErrInvalidShape))
			return
		}
		update.Response = &shape
	}

	// Update the contract and return the new one
	newObj, err := service.Storage.Contracts().Update(request.Context(), obj.ID, update)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	service.writer.WriteJSON(writer, schema.OK(newObj))
}

// EndpointDeleteContract handles the 'DELETE /v1/contracts/{id}' endpoint
func (service *Service) EndpointDeleteContract(writer http.ResponseWriter, request *http.Request) {
	raw := chi.URLParam(request, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, errContractInvalidID(raw))
		return
	}

	obj, err := service.Storage.Contracts().GetByID(request.Context(), id)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if obj == nil {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
		return
	}

	if err := service.Storage.Contracts().Delete(request.Context(), obj.ID); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	service.writer.WriteJSON(writer, schema.Deleted())
}
