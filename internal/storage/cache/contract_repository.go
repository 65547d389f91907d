package cache

import (
	"context"

	"github.com/google/uuid"
	"github.com/omniwork/contracthub/internal/contract"
	"github.com/omniwork/contracthub/internal/ttlmap"
)

// ContractRepository implements the contract.Repository interface in order to implement caching.
// Only single-entity lookups are cached; list and aggregation queries always hit the
// underlying repository but prime the cache with their results.
type ContractRepository struct {
	repo contract.Repository
	byID *ttlmap.Map[uuid.UUID, *contract.Contract]
}

var _ contract.Repository = (*ContractRepository)(nil)

// Get retrieves multiple contracts matching the given filter
func (repo *ContractRepository) Get(ctx context.Context, filter *contract.Filter, page, limit uint64) ([]*contract.Contract, uint64, error) {
	contracts, n, err := repo.repo.Get(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	for _, obj := range contracts {
		repo.byID.Set(obj.ID, obj)
	}
	return contracts, n, nil
}

// GetByID retrieves a contract by its ID
func (repo *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	cached, ok := repo.byID.Lookup(id)
	if ok {
		return cached, nil
	}
	obj, err := repo.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.byID.Set(obj.ID, obj)
	}
	return obj, nil
}

// GetByRoute retrieves a contract by its unique (module, method, path) combination
func (repo *ContractRepository) GetByRoute(ctx context.Context, module, method, path string) (*contract.Contract, error) {
	obj, err := repo.repo.GetByRoute(ctx, module, method, path)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.byID.Set(obj.ID, obj)
	}
	return obj, nil
}

// Create registers a new contract
func (repo *ContractRepository) Create(ctx context.Context, create *contract.Create) (*contract.Contract, error) {
	obj, err := repo.repo.Create(ctx, create)
	if err != nil {
		return nil, err
	}
	repo.byID.Set(obj.ID, obj)
	return obj, nil
}

// Update updates an existing contract
func (repo *ContractRepository) Update(ctx context.Context, id uuid.UUID, update *contract.Update) (*contract.Contract, error) {
	obj, err := repo.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.byID.Set(obj.ID, obj)
	}
	return obj, nil
}

// Delete deletes a contract by its ID
func (repo *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.repo.Delete(ctx, id); err != nil {
		return err
	}
	repo.byID.Unset(id)
	return nil
}

// Modules summarizes all modules contracts are registered for
func (repo *ContractRepository) Modules(ctx context.Context) ([]*contract.ModuleInfo, error) {
	return repo.repo.Modules(ctx)
}
