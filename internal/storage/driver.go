package storage

import (
	"context"

	"github.com/omniwork/contracthub/internal/contract"
)

// Driver represents a storage driver
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// Contracts provides a contract repository implementation
	Contracts() contract.Repository

	// Close closes the storage driver (i.e. closes a database connection)
	Close()
}
