// Package hr mirrors the endpoint contracts of the backend's HR module
// (employees, attendance and leave management).
package hr

import (
	"github.com/omniwork/contracthub/internal/api/schema"
	"github.com/omniwork/contracthub/internal/contract"
)

// Employee represents a single employee record
type Employee struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	HiredAt    int64  `json:"hiredAt"`
	Active     bool   `json:"active"`
}

// LeaveRequest represents a single leave request of an employee
type LeaveRequest struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	From       int64  `json:"from"`
	To         int64  `json:"to"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

// CreateEmployeeRequest mirrors the request body of 'POST /v1/hr/employees'
type CreateEmployeeRequest struct {
	FirstName  string `json:"firstName" required:"true"`
	LastName   string `json:"lastName" required:"true"`
	Email      string `json:"email" required:"true"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HiredAt    int64  `json:"hiredAt"`
}

// CreateLeaveRequest mirrors the request body of 'POST /v1/hr/leave-requests'
type CreateLeaveRequest struct {
	EmployeeID string `json:"employeeId" required:"true"`
	Type       string `json:"type" required:"true"`
	From       int64  `json:"from" required:"true"`
	To         int64  `json:"to" required:"true"`
	Reason     string `json:"reason"`
}

type (
	EmployeeResponse         = schema.Response[*Employee]
	EmployeeListResponse     = schema.PaginatedResponse[*Employee]
	EmployeeDeleteResponse   = schema.DeleteResponse
	LeaveRequestResponse     = schema.Response[*LeaveRequest]
	LeaveRequestListResponse = schema.PaginatedResponse[*LeaveRequest]
)

// Descriptors returns the endpoint contract descriptors of the HR module
func Descriptors() []*contract.Create {
	return []*contract.Create{
		employee("GET /v1/hr/employees", "List employees", contract.ShapeList, true),
		employee("GET /v1/hr/employees/:id", "Get an employee", contract.ShapeEntity, true),
		employee("POST /v1/hr/employees", "Create an employee", contract.ShapeEntity, true,
			contract.Field{Name: "firstName", Type: contract.FieldString, Required: true},
			contract.Field{Name: "lastName", Type: contract.FieldString, Required: true},
			contract.Field{Name: "email", Type: contract.FieldString, Required: true},
			contract.Field{Name: "department", Type: contract.FieldString},
			contract.Field{Name: "position", Type: contract.FieldString},
			contract.Field{Name: "hiredAt", Type: contract.FieldDate},
		),
		employee("DELETE /v1/hr/employees/:id", "Offboard an employee", contract.ShapeDelete, true),
		leave("GET /v1/hr/leave-requests", "List leave requests", contract.ShapeList, true),
		leave("POST /v1/hr/leave-requests", "File a leave request", contract.ShapeEntity, true,
			contract.Field{Name: "employeeId", Type: contract.FieldString, Required: true},
			contract.Field{Name: "type", Type: contract.FieldString, Required: true},
			contract.Field{Name: "from", Type: contract.FieldDate, Required: true},
			contract.Field{Name: "to", Type: contract.FieldDate, Required: true},
			contract.Field{Name: "reason", Type: contract.FieldString},
		),
		leave("POST /v1/hr/leave-requests/:id/approve", "Approve a leave request", contract.ShapeEntity, false),
		employee("POST /v1/hr/attendance/check-in", "Record an attendance check-in", contract.ShapeNone, false),
		employee("GET /v1/hr/payroll/runs", "List payroll runs", contract.ShapeList, false),
	}
}

func employee(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	return descriptor(raw, summary, "Employee", response, complete, fields)
}

func leave(raw, summary string, response contract.Shape, complete bool, fields ...contract.Field) *contract.Create {
	return descriptor(raw, summary, "LeaveRequest", response, complete, fields)
}

func descriptor(raw, summary, entity string, response contract.Shape, complete bool, fields []contract.Field) *contract.Create {
	method, path := contract.MustRoute(raw)
	return &contract.Create{
		Module:   "hr",
		Method:   method,
		Path:     path,
		Summary:  summary,
		Entity:   entity,
		Request:  fields,
		Response: response,
		Complete: complete,
	}
}
