// Package support mirrors the endpoint contracts of the backend's support/ticketing module.
package support

import (
	"github.com/omniwork/contracthub/internal/api/schema"
	"github.com/omniwork/contracthub/internal/contract"
)

// Ticket represents a single support ticket
type Ticket struct {
	ID         string `json:"id"`
	Subject    string `json:"subject"`
	Body       string `json:"body,omitempty"`
	ClientID   string `json:"clientId"`
	AssigneeID string `json:"assigneeId,omitempty"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"createdAt"`
}

// CreateTicketRequest mirrors the request body of 'POST /v1/support/tickets'
type CreateTicketRequest struct {
	Subject  string `json:"subject" required:"true"`
	Body     string `json:"body"`
	ClientID string `json:"clientId" required:"true"`
	Priority string `json:"priority"`
}

// ReplyTicketRequest mirrors the request body of 'POST /v1/support/tickets/:id/replies'
type ReplyTicketRequest struct {
	Body     string `json:"body" required:"true"`
	Internal bool   `json:"internal"`
}

type (
	TicketResponse       = schema.Response[*Ticket]
	TicketListResponse   = schema.PaginatedResponse[*Ticket]
	TicketDeleteResponse = schema.DeleteResponse
)

// Descriptors returns the endpoint contract descriptors of the support module
func Descriptors() []*contract.Create {
	return []*contract.Create{
		route("GET /v1/support/tickets", "List tickets", contract.ShapeList, true),
		route("GET /v1/support/tickets/:id", "Get a ticket", contract.ShapeEntity, true),
		route("POST /v1/support/tickets", "Open a ticket", contract.ShapeEntity, true,
			contract.Field{Name: "subject", Type: contract.FieldString, Required: true},
			contract.Field{Name: "body", Type: contract.FieldString},
			contract.Field{Name: "clientId", Type: contract.FieldString, Required: true},
			contract.Field{Name: "priority", Type: contract.FieldString},
		),
		route("POST /v1/support/tickets/:id/replies", "Reply to a ticket", contract.ShapeEntity, true,
			contract.Field{Name: "body", Type: contract.FieldString, Required: true},
			contract.Field{Name: "internal", Type: contract.FieldBoolean},
		),
		route("POST /v1/support/tickets/:id/close", "Close a ticket", contract.ShapeEntity, true),
		route("DELETE /v1/support/tickets/:id", "Delete a ticket", contract.ShapeDelete, true),
		route("GET /v1/support/slas", "List SLA policies", contract.ShapeList, false),
	}
}

func route(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	method, path := contract.MustRoute(raw)
	return &contract.Create{
		Module:   "support",
		Method:   method,
		Path:     path,
		Summary:  summary,
		Entity:   "Ticket",
		Request:  fields,
		Response: response,
		Complete: complete,
	}
}
