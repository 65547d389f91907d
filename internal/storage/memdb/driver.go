// Package memdb provides an in-memory storage driver built using hashicorp/go-memdb.
// It is used in ephemeral deployments and tests where no PostgreSQL instance is available.
package memdb

import (
	"context"

	"github.com/hashicorp/go-memdb"
	"github.com/omniwork/contracthub/internal/contract"
	"github.com/omniwork/contracthub/internal/storage"
)

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"contracts": {
			Name: "contracts",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "ID"},
				},
				"route": {
					Name:         "route",
					Unique:       true,
					AllowMissing: false,
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "Module"},
							&memdb.StringFieldIndex{Field: "Method"},
							&memdb.StringFieldIndex{Field: "Path"},
						},
					},
				},
				"module": {
					Name:         "module",
					Unique:       false,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Module"},
				},
			},
		},
	},
}

// Driver represents the in-memory storage driver implementation
type Driver struct {
	db        *memdb.MemDB
	contracts *ContractRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty in-memory storage driver.
// Use Initialize to set up the underlying tables and repository implementations.
func New() *Driver {
	return &Driver{}
}

// Initialize sets up the in-memory tables and initializes the repository implementations
func (driver *Driver) Initialize(_ context.Context) error {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return err
	}
	driver.db = db
	driver.contracts = &ContractRepository{db: db}
	return nil
}

// Contracts provides the in-memory contract repository implementation
func (driver *Driver) Contracts() contract.Repository {
	return driver.contracts
}

// Close discards the repository implementations and the underlying tables
func (driver *Driver) Close() {
	driver.contracts = nil
	driver.db = nil
}
