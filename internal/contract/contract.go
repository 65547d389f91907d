package contract

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoute    = errors.New("the route definition has to consist of an HTTP method and a path ('METHOD /path')")
	ErrInvalidMethod   = errors.New("the route method has to be one of GET, POST, PUT, PATCH or DELETE")
	ErrInvalidPath     = errors.New("the route path has to start with a slash")
	ErrInvalidShape    = errors.New("the response shape has to be one of 'entity', 'list', 'delete' or 'none'")
	ErrMissingModule   = errors.New("a module name is required")
	ErrInvalidField    = errors.New("every request field needs a name and a valid type")
	ErrDuplicateFields = errors.New("request field names have to be unique")
)

// Shape represents the response shape of an endpoint contract.
// Every endpoint responds with either a single-entity envelope, a paginated collection
// envelope, a delete acknowledgement or no body at all.
type Shape string

const (
	ShapeEntity Shape = "entity"
	ShapeList   Shape = "list"
	ShapeDelete Shape = "delete"
	ShapeNone   Shape = "none"
)

// Valid checks whether the shape is one of the known response shapes
func (shape Shape) Valid() bool {
	switch shape {
	case ShapeEntity, ShapeList, ShapeDelete, ShapeNone:
		return true
	}
	return false
}

// FieldType represents the JSON type of a single request body field
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldObject  FieldType = "object"
	FieldArray   FieldType = "array"
	FieldDate    FieldType = "date"
)

// Valid checks whether the field type is one of the known JSON types
func (fieldType FieldType) Valid() bool {
	switch fieldType {
	case FieldString, FieldNumber, FieldBoolean, FieldObject, FieldArray, FieldDate:
		return true
	}
	return false
}

// Field describes a single request body parameter of an endpoint contract
type Field struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
}

// Contract represents a single endpoint contract descriptor.
// A contract whose request field list still awaits synchronization with the backend's
// schema definitions is marked as incomplete rather than carrying an empty placeholder.
type Contract struct {
	ID       uuid.UUID `json:"id"`
	Module   string    `json:"module"`
	Method   string    `json:"method"`
	Path     string    `json:"path"`
	Summary  string    `json:"summary,omitempty"`
	Entity   string    `json:"entity,omitempty"`
	Request  []Field   `json:"request"`
	Response Shape     `json:"response"`
	Complete bool      `json:"complete"`
}

// Route returns the canonical route representation of the contract ('METHOD /path')
func (contract *Contract) Route() string {
	return contract.Method + " " + contract.Path
}

var allowedMethods = map[string]struct{}{
	"GET":    {},
	"POST":   {},
	"PUT":    {},
	"PATCH":  {},
	"DELETE": {},
}

// OfRoute parses a raw route definition ('METHOD /path') into its method and path parts.
// The method is case-insensitive and returned uppercased; path parameters keep their
// ':param' placeholder notation.
func OfRoute(raw string) (string, string, error) {
	method, path, ok := strings.Cut(strings.TrimSpace(raw), " ")
	if !ok {
		return "", "", ErrInvalidRoute
	}
	method = strings.ToUpper(method)
	path = strings.TrimSpace(path)
	if _, ok := allowedMethods[method]; !ok {
		return "", "", ErrInvalidMethod
	}
	if !strings.HasPrefix(path, "/") || strings.ContainsRune(path, ' ') {
		return "", "", ErrInvalidPath
	}
	return method, path, nil
}

// MustRoute parses a raw route definition and panics if it is invalid.
// It is intended for statically defined contract corpora.
func MustRoute(raw string) (string, string) {
	method, path, err := OfRoute(raw)
	if err != nil {
		panic(err)
	}
	return method, path
}
