package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/omniwork/contracthub/internal/contract"
	"github.com/omniwork/contracthub/internal/storage"
	"github.com/omniwork/contracthub/internal/ttlmap"
)

// Driver represents a storage driver implementation that wraps another one in order to implement in-memory caching
type Driver struct {
	underlying storage.Driver
	ttl        time.Duration
	contracts  *ContractRepository
}

var _ storage.Driver = (*Driver)(nil)

// New returns a new caching storage driver whose cached entries live for the given TTL
func New(underlying storage.Driver, ttl time.Duration) *Driver {
	return &Driver{
		underlying: underlying,
		ttl:        ttl,
	}
}

// Initialize initializes the caching repositories
func (driver *Driver) Initialize(_ context.Context) error {
	byID := ttlmap.New[uuid.UUID, *contract.Contract](driver.ttl)
	byID.ScheduleCleanup(10 * time.Second)
	driver.contracts = &ContractRepository{
		repo: driver.underlying.Contracts(),
		byID: byID,
	}
	return nil
}

// Contracts provides the caching contract repository implementation
func (driver *Driver) Contracts() contract.Repository {
	return driver.contracts
}

// Close closes the caching repositories and disposes their instances
func (driver *Driver) Close() {
	driver.contracts.byID.StopCleanup()
	driver.contracts = nil
}
