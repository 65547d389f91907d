// Package crm mirrors the endpoint contracts of the backend's CRM module
// (leads and deals).
package crm

import (
	"github.com/omniwork/contracthub/internal/api/schema"
	"github.com/omniwork/contracthub/internal/contract"
)

// Lead represents a single sales lead
type Lead struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Source  string `json:"source,omitempty"`
	Status  string `json:"status"`
	OwnerID string `json:"ownerId,omitempty"`
	Score   int    `json:"score"`
}

// Deal represents a single deal in a sales pipeline
type Deal struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	LeadID     string  `json:"leadId,omitempty"`
	PipelineID string  `json:"pipelineId"`
	Stage      string  `json:"stage"`
	Value      float64 `json:"value"`
	Currency   string  `json:"currency"`
	ClosedAt   int64   `json:"closedAt,omitempty"`
}

// CreateLeadRequest mirrors the request body of 'POST /v1/crm/leads'
type CreateLeadRequest struct {
	Name    string `json:"name" required:"true"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Source  string `json:"source"`
	OwnerID string `json:"ownerId"`
}

// MoveDealRequest mirrors the request body of 'PATCH /v1/crm/deals/:id/stage'
type MoveDealRequest struct {
	Stage string `json:"stage" required:"true"`
}

type (
	LeadResponse       = schema.Response[*Lead]
	LeadListResponse   = schema.PaginatedResponse[*Lead]
	LeadDeleteResponse = schema.DeleteResponse
	DealResponse       = schema.Response[*Deal]
	DealListResponse   = schema.PaginatedResponse[*Deal]
)

// Descriptors returns the endpoint contract descriptors of the CRM module
func Descriptors() []*contract.Create {
	return []*contract.Create{
		lead("GET /v1/crm/leads", "List leads", contract.ShapeList, true),
		lead("GET /v1/crm/leads/:id", "Get a lead", contract.ShapeEntity, true),
		lead("POST /v1/crm/leads", "Create a lead", contract.ShapeEntity, true,
			contract.Field{Name: "name", Type: contract.FieldString, Required: true},
			contract.Field{Name: "company", Type: contract.FieldString},
			contract.Field{Name: "email", Type: contract.FieldString},
			contract.Field{Name: "phone", Type: contract.FieldString},
			contract.Field{Name: "source", Type: contract.FieldString},
			contract.Field{Name: "ownerId", Type: contract.FieldString},
		),
		lead("DELETE /v1/crm/leads/:id", "Delete a lead", contract.ShapeDelete, true),
		lead("POST /v1/crm/leads/:id/convert", "Convert a lead into a deal", contract.ShapeEntity, false),
		deal("GET /v1/crm/deals", "List deals", contract.ShapeList, true),
		deal("PATCH /v1/crm/deals/:id/stage", "Move a deal to another pipeline stage", contract.ShapeEntity, true,
			contract.Field{Name: "stage", Type: contract.FieldString, Required: true},
		),
		deal("GET /v1/crm/pipelines", "List pipelines", contract.ShapeList, false),
		deal("GET /v1/crm/territories", "List territories", contract.ShapeList, false),
	}
}

func lead(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	return descriptor(raw, summary, "Lead", response, complete, fields)
}

func deal(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	return descriptor(raw, summary, "Deal", response, complete, fields)
}

func descriptor(raw, summary, entity string, response contract.Shape, complete bool, fields []contract.Field) *contract.Create {
	method, path := contract.MustRoute(raw)
	return &contract.Create{
		Module:   "crm",
		Method:   method,
		Path:     path,
		Summary:  summary,
		Entity:   entity,
		Request:  fields,
		Response: response,
		Complete: complete,
	}
}
