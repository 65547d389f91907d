// Package finance mirrors the endpoint contracts of the backend's finance module
// (invoices and payments).
package finance

import (
	"github.com/omniwork/contracthub/internal/api/schema"
	"github.com/omniwork/contracthub/internal/contract"
)

// Invoice represents a single customer invoice
type Invoice struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	ClientID string  `json:"clientId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
	IssuedAt int64   `json:"issuedAt"`
	DueAt    int64   `json:"dueAt"`
	PaidAt   int64   `json:"paidAt,omitempty"`
}

// Payment represents a single recorded payment
type Payment struct {
	ID        string  `json:"id"`
	InvoiceID string  `json:"invoiceId"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference,omitempty"`
	PaidAt    int64   `json:"paidAt"`
}

// CreateInvoiceRequest mirrors the request body of 'POST /v1/finance/invoices'
type CreateInvoiceRequest struct {
	ClientID string  `json:"clientId" required:"true"`
	Amount   float64 `json:"amount" required:"true"`
	Currency string  `json:"currency"`
	DueAt    int64   `json:"dueAt"`
}

// RecordPaymentRequest mirrors the request body of 'POST /v1/finance/payments'
type RecordPaymentRequest struct {
	InvoiceID string  `json:"invoiceId" required:"true"`
	Amount    float64 `json:"amount" required:"true"`
	Method    string  `json:"method" required:"true"`
	Reference string  `json:"reference"`
}

type (
	InvoiceResponse       = schema.Response[*Invoice]
	InvoiceListResponse   = schema.PaginatedResponse[*Invoice]
	InvoiceDeleteResponse = schema.DeleteResponse
	PaymentResponse       = schema.Response[*Payment]
	PaymentListResponse   = schema.PaginatedResponse[*Payment]
)

// Descriptors returns the endpoint contract descriptors of the finance module
func Descriptors() []*contract.Create {
	return []*contract.Create{
		invoice("GET /v1/finance/invoices", "List invoices", contract.ShapeList, true),
		invoice("GET /v1/finance/invoices/:id", "Get an invoice", contract.ShapeEntity, true),
		invoice("POST /v1/finance/invoices", "Create an invoice", contract.ShapeEntity, true,
			contract.Field{Name: "clientId", Type: contract.FieldString, Required: true},
			contract.Field{Name: "amount", Type: contract.FieldNumber, Required: true},
			contract.Field{Name: "currency", Type: contract.FieldString},
			contract.Field{Name: "dueAt", Type: contract.FieldDate},
		),
		invoice("DELETE /v1/finance/invoices/:id", "Void an invoice", contract.ShapeDelete, true),
		invoice("POST /v1/finance/invoices/:id/send", "Send an invoice to its client", contract.ShapeNone, false),
		payment("GET /v1/finance/payments", "List payments", contract.ShapeList, true),
		payment("POST /v1/finance/payments", "Record a payment", contract.ShapeEntity, true,
			contract.Field{Name: "invoiceId", Type: contract.FieldString, Required: true},
			contract.Field{Name: "amount", Type: contract.FieldNumber, Required: true},
			contract.Field{Name: "method", Type: contract.FieldString, Required: true},
			contract.Field{Name: "reference", Type: contract.FieldString},
		),
		invoice("POST /v1/finance/revaluation", "Run a currency revaluation", contract.ShapeNone, false),
	}
}

func invoice(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	return descriptor(raw, summary, "Invoice", response, complete, fields)
}

func payment(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	return descriptor(raw, summary, "Payment", response, complete, fields)
}

func descriptor(raw, summary, entity string, response contract.Shape, complete bool, fields []contract.Field) *contract.Create {
	method, path := contract.MustRoute(raw)
	return &contract.Create{
		Module:   "finance",
		Method:   method,
		Path:     path,
		Summary:  summary,
		Entity:   entity,
		Request:  fields,
		Response: response,
		Complete: complete,
	}
}
