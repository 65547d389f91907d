// Package manufacturing mirrors the endpoint contracts of the backend's manufacturing
// module (work orders and bills of materials).
package manufacturing

import (
	"github.com/omniwork/contracthub/internal/api/schema"
	"github.com/omniwork/contracthub/internal/contract"
)

// WorkOrder represents a single manufacturing work order
type WorkOrder struct {
	ID        string `json:"id"`
	Number    string `json:"number"`
	ProductID string `json:"productId"`
	BOMID     string `json:"bomId,omitempty"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	DueAt     int64  `json:"dueAt,omitempty"`
}

// CreateWorkOrderRequest mirrors the request body of 'POST /v1/manufacturing/work-orders'
type CreateWorkOrderRequest struct {
	ProductID string `json:"productId" required:"true"`
	BOMID     string `json:"bomId"`
	Quantity  int    `json:"quantity" required:"true" min:"1"`
	DueAt     int64  `json:"dueAt"`
}

type (
	WorkOrderResponse       = schema.Response[*WorkOrder]
	WorkOrderListResponse   = schema.PaginatedResponse[*WorkOrder]
	WorkOrderDeleteResponse = schema.DeleteResponse
)

// Descriptors returns the endpoint contract descriptors of the manufacturing module
func Descriptors() []*contract.Create {
	return []*contract.Create{
		route("GET /v1/manufacturing/work-orders", "List work orders", contract.ShapeList, true),
		route("GET /v1/manufacturing/work-orders/:id", "Get a work order", contract.ShapeEntity, true),
		route("POST /v1/manufacturing/work-orders", "Create a work order", contract.ShapeEntity, true,
			contract.Field{Name: "productId", Type: contract.FieldString, Required: true},
			contract.Field{Name: "bomId", Type: contract.FieldString},
			contract.Field{Name: "quantity", Type: contract.FieldNumber, Required: true},
			contract.Field{Name: "dueAt", Type: contract.FieldDate},
		),
		route("POST /v1/manufacturing/work-orders/:id/start", "Start a work order", contract.ShapeEntity, true),
		route("POST /v1/manufacturing/work-orders/:id/complete", "Complete a work order", contract.ShapeEntity, false),
		route("DELETE /v1/manufacturing/work-orders/:id", "Cancel a work order", contract.ShapeDelete, true),
		route("GET /v1/manufacturing/boms", "List bills of materials", contract.ShapeList, false),
		route("GET /v1/manufacturing/job-cards", "List job cards", contract.ShapeList, false),
	}
}

func route(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	method, path := contract.MustRoute(raw)
	return &contract.Create{
		Module:   "manufacturing",
		Method:   method,
		Path:     path,
		Summary:  summary,
		Entity:   "WorkOrder",
		Request:  fields,
		Response: response,
		Complete: complete,
	}
}
