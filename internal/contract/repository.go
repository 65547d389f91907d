package contract

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrDuplicateRoute is returned when a contract for the same (module, method, path)
// combination is already registered
var ErrDuplicateRoute = errors.New("a contract for this route is already registered")

// Repository defines the contract repository API
type Repository interface {
	// Get retrieves multiple contracts matching the given filter, ordered by module and path.
	// It also returns the total amount of contracts matching the filter before pagination.
	// The page is 1-based; if limit <= 0, a default limit value of 20 is used.
	Get(ctx context.Context, filter *Filter, page, limit uint64) ([]*Contract, uint64, error)

	// GetByID retrieves a contract by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Contract, error)

	// GetByRoute retrieves a contract by its unique (module, method, path) combination
	GetByRoute(ctx context.Context, module, method, path string) (*Contract, error)

	// Create registers a new contract.
	// ErrDuplicateRoute is returned if a contract for the same route is already registered.
	Create(ctx context.Context, create *Create) (*Contract, error)

	// Update updates an existing contract
	Update(ctx context.Context, id uuid.UUID, update *Update) (*Contract, error)

	// Delete deletes a contract by its ID
	Delete(ctx context.Context, id uuid.UUID) error

	// Modules summarizes all modules contracts are registered for, ordered by module name
	Modules(ctx context.Context) ([]*ModuleInfo, error)
}

// Filter is used to query contracts based on a filter
type Filter struct {
	Module   *string
	Method   *string
	Search   *string
	Complete *bool
}

// Create is used to register a new contract
type Create struct {
	Module   string
	Method   string
	Path     string
	Summary  string
	Entity   string
	Request  []Field
	Response Shape
	Complete bool
}

// Update is used to update an existing contract.
// The route itself (module, method, path) is immutable; register a new contract instead.
type Update struct {
	Summary  *string
	Entity   *string
	Request  *[]Field
	Response *Shape
	Complete *bool
}

// ModuleInfo summarizes the contracts registered for a single module
type ModuleInfo struct {
	Name      string `json:"name"`
	Contracts int    `json:"contracts"`
	Complete  int    `json:"complete"`
}

// Validate normalizes the creation payload and checks it for consistency
func (create *Create) Validate() error {
	create.Module = strings.ToLower(strings.TrimSpace(create.Module))
	if create.Module == "" {
		return ErrMissingModule
	}
	create.Method = strings.ToUpper(strings.TrimSpace(create.Method))
	if _, ok := allowedMethods[create.Method]; !ok {
		return ErrInvalidMethod
	}
	create.Path = strings.TrimSpace(create.Path)
	if !strings.HasPrefix(create.Path, "/") || strings.ContainsRune(create.Path, ' ') {
		return ErrInvalidPath
	}
	if !create.Response.Valid() {
		return ErrInvalidShape
	}

	seen := make(map[string]struct{}, len(create.Request))
	for _, field := range create.Request {
		if field.Name == "" || !field.Type.Valid() {
			return ErrInvalidField
		}
		if _, ok := seen[field.Name]; ok {
			return ErrDuplicateFields
		}
		seen[field.Name] = struct{}{}
	}
	return nil
}
