// Package accounts mirrors the endpoint contracts of the backend's account module
// (chart of accounts).
package accounts

import (
	"github.com/omniwork/contracthub/internal/api/schema"
	"github.com/omniwork/contracthub/internal/contract"
)

// Account represents a single ledger account of a tenant
type Account struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
	ParentID string  `json:"parentId,omitempty"`
	Archived bool    `json:"archived"`
}

// ListAccountsParams mirrors the query parameters accepted by 'GET /v1/accounts'
type ListAccountsParams struct {
	Page     int64  `json:"page,omitempty"`
	Limit    int64  `json:"limit,omitempty"`
	Search   string `json:"search,omitempty"`
	Type     string `json:"type,omitempty"`
	Archived *bool  `json:"archived,omitempty"`
}

// CreateAccountRequest mirrors the request body of 'POST /v1/accounts'
type CreateAccountRequest struct {
	Name     string `json:"name" required:"true"`
	Code     string `json:"code" required:"true"`
	Type     string `json:"type" required:"true"`
	Currency string `json:"currency"`
	ParentID string `json:"parentId"`
}

// UpdateAccountRequest mirrors the request body of 'PATCH /v1/accounts/:id'
type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	Currency *string `json:"currency"`
	ParentID *string `json:"parentId"`
	Archived *bool   `json:"archived"`
}

type (
	AccountResponse       = schema.Response[*Account]
	AccountListResponse   = schema.PaginatedResponse[*Account]
	AccountDeleteResponse = schema.DeleteResponse
)

// Descriptors returns the endpoint contract descriptors of the account module
func Descriptors() []*contract.Create {
	return []*contract.Create{
		route("GET /v1/accounts", "List accounts", contract.ShapeList, true),
		route("GET /v1/accounts/:id", "Get an account", contract.ShapeEntity, true),
		route("POST /v1/accounts", "Create an account", contract.ShapeEntity, true,
			contract.Field{Name: "name", Type: contract.FieldString, Required: true},
			contract.Field{Name: "code", Type: contract.FieldString, Required: true},
			contract.Field{Name: "type", Type: contract.FieldString, Required: true},
			contract.Field{Name: "currency", Type: contract.FieldString},
			contract.Field{Name: "parentId", Type: contract.FieldString},
		),
		route("PATCH /v1/accounts/:id", "Update an account", contract.ShapeEntity, true,
			contract.Field{Name: "name", Type: contract.FieldString},
			contract.Field{Name: "currency", Type: contract.FieldString},
			contract.Field{Name: "parentId", Type: contract.FieldString},
			contract.Field{Name: "archived", Type: contract.FieldBoolean},
		),
		route("DELETE /v1/accounts/:id", "Delete an account", contract.ShapeDelete, true),
		route("POST /v1/accounts/:id/revaluate", "Revaluate an account's foreign currency balance", contract.ShapeEntity, false),
	}
}

func route(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	method, path := contract.MustRoute(raw)
	return &contract.Create{
		Module:   "accounts",
		Method:   method,
		Path:     path,
		Summary:  summary,
		Entity:   "Account",
		Request:  fields,
		Response: response,
		Complete: complete,
	}
}
