// Package assets mirrors the endpoint contracts of the backend's asset management module.
package assets

import (
	"github.com/omniwork/contracthub/internal/api/schema"
	"github.com/omniwork/contracthub/internal/contract"
)

// Asset represents a single tracked company asset
type Asset struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Tag          string  `json:"tag"`
	Category     string  `json:"category"`
	Location     string  `json:"location,omitempty"`
	AssigneeID   string  `json:"assigneeId,omitempty"`
	PurchaseCost float64 `json:"purchaseCost"`
	PurchasedAt  int64   `json:"purchasedAt"`
	Status       string  `json:"status"`
}

// ListAssetsParams mirrors the query parameters accepted by 'GET /v1/assets'
type ListAssetsParams struct {
	Page     int64  `json:"page,omitempty"`
	Limit    int64  `json:"limit,omitempty"`
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
}

// CreateAssetRequest mirrors the request body of 'POST /v1/assets'
type CreateAssetRequest struct {
	Name         string  `json:"name" required:"true"`
	Tag          string  `json:"tag" required:"true"`
	Category     string  `json:"category" required:"true"`
	Location     string  `json:"location"`
	PurchaseCost float64 `json:"purchaseCost"`
	PurchasedAt  int64   `json:"purchasedAt"`
}

// AssignAssetRequest mirrors the request body of 'POST /v1/assets/:id/assign'
type AssignAssetRequest struct {
	AssigneeID string `json:"assigneeId" required:"true"`
}

type (
	AssetResponse       = schema.Response[*Asset]
	AssetListResponse   = schema.PaginatedResponse[*Asset]
	AssetDeleteResponse = schema.DeleteResponse
)

// Descriptors returns the endpoint contract descriptors of the asset module
func Descriptors() []*contract.Create {
	return []*contract.Create{
		route("GET /v1/assets", "List assets", contract.ShapeList, true),
		route("GET /v1/assets/:id", "Get an asset", contract.ShapeEntity, true),
		route("POST /v1/assets", "Register an asset", contract.ShapeEntity, true,
			contract.Field{Name: "name", Type: contract.FieldString, Required: true},
			contract.Field{Name: "tag", Type: contract.FieldString, Required: true},
			contract.Field{Name: "category", Type: contract.FieldString, Required: true},
			contract.Field{Name: "location", Type: contract.FieldString},
			contract.Field{Name: "purchaseCost", Type: contract.FieldNumber},
			contract.Field{Name: "purchasedAt", Type: contract.FieldDate},
		),
		route("POST /v1/assets/:id/assign", "Assign an asset to an employee", contract.ShapeEntity, true,
			contract.Field{Name: "assigneeId", Type: contract.FieldString, Required: true},
		),
		route("DELETE /v1/assets/:id", "Retire an asset", contract.ShapeDelete, true),
		route("POST /v1/assets/:id/maintenance", "Schedule asset maintenance", contract.ShapeEntity, false),
		route("GET /v1/assets/:id/history", "List an asset's assignment history", contract.ShapeList, false),
	}
}

func route(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	method, path := contract.MustRoute(raw)
	return &contract.Create{
		Module:   "assets",
		Method:   method,
		Path:     path,
		Summary:  summary,
		Entity:   "Asset",
		Request:  fields,
		Response: response,
		Complete: complete,
	}
}
