package memdb

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/omniwork/contracthub/internal/contract"
)

// record is the shape stored in the memdb tables.
// go-memdb indexes plain string fields, so the identifying columns are kept flat next to
// the domain object itself.
type record struct {
	ID     string
	Module string
	Method string
	Path   string
	Obj    *contract.Contract
}

// ContractRepository implements the contract.Repository interface using hashicorp/go-memdb
type ContractRepository struct {
	db *memdb.MemDB
}

var _ contract.Repository = (*ContractRepository)(nil)

// Get retrieves multiple contracts matching the given filter, ordered by module and path
func (repo *ContractRepository) Get(_ context.Context, filter *contract.Filter, page, limit uint64) ([]*contract.Contract, uint64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	txn := repo.db.Txn(false)
	defer txn.Abort()

	var iterator memdb.ResultIterator
	var err error
	if filter != nil && filter.Module != nil {
		iterator, err = txn.Get("contracts", "module", *filter.Module)
	} else {
		iterator, err = txn.Get("contracts", "id")
	}
	if err != nil {
		return nil, 0, err
	}

	matching := []*contract.Contract{}
	for raw := iterator.Next(); raw != nil; raw = iterator.Next() {
		obj := raw.(*record).Obj
		if matchesFilter(obj, filter) {
			matching = append(matching, obj)
		}
	}

	sort.Slice(matching, func(i, j int) bool {
		left, right := matching[i], matching[j]
		if left.Module != right.Module {
			return left.Module < right.Module
		}
		if left.Path != right.Path {
			return left.Path < right.Path
		}
		return left.Method < right.Method
	})

	n := uint64(len(matching))
	offset := (page - 1) * limit
	if offset >= n {
		return []*contract.Contract{}, n, nil
	}
	end := offset + limit
	if end > n {
		end = n
	}
	return matching[offset:end], n, nil
}

// GetByID retrieves a contract by its ID
func (repo *ContractRepository) GetByID(_ context.Context, id uuid.UUID) (*contract.Contract, error) {
	txn := repo.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First("contracts", "id", id.String())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return raw.(*record).Obj, nil
}

// GetByRoute retrieves a contract by its unique (module, method, path) combination
func (repo *ContractRepository) GetByRoute(_ context.Context, module, method, path string) (*contract.Contract, error) {
	txn := repo.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First("contracts", "route", module, method, path)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return raw.(*record).Obj, nil
}

// Create registers a new contract
func (repo *ContractRepository) Create(_ context.Context, create *contract.Create) (*contract.Contract, error) {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First("contracts", "route", create.Module, create.Method, create.Path)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, contract.ErrDuplicateRoute
	}

	obj := &contract.Contract{
		ID:       uuid.New(),
		Module:   create.Module,
		Method:   create.Method,
		Path:     create.Path,
		Summary:  create.Summary,
		Entity:   create.Entity,
		Request:  create.Request,
		Response: create.Response,
		Complete: create.Complete,
	}
	if obj.Request == nil {
		obj.Request = []contract.Field{}
	}

	if err := txn.Insert("contracts", newRecord(obj)); err != nil {
		return nil, err
	}
	txn.Commit()

	return obj, nil
}

// Update updates an existing contract
func (repo *ContractRepository) Update(_ context.Context, id uuid.UUID, update *contract.Update) (*contract.Contract, error) {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First("contracts", "id", id.String())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	// Records are never mutated in place as readers may still hold them
	cpy := *raw.(*record).Obj
	obj := &cpy
	if update.Summary != nil {
		obj.Summary = *update.Summary
	}
	if update.Entity != nil {
		obj.Entity = *update.Entity
	}
	if update.Request != nil {
		obj.Request = *update.Request
	}
	if update.Response != nil {
		obj.Response = *update.Response
	}
	if update.Complete != nil {
		obj.Complete = *update.Complete
	}

	if err := txn.Insert("contracts", newRecord(obj)); err != nil {
		return nil, err
	}
	txn.Commit()

	return obj, nil
}

// Delete deletes a contract by its ID
func (repo *ContractRepository) Delete(_ context.Context, id uuid.UUID) error {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First("contracts", "id", id.String())
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	if err := txn.Delete("contracts", raw); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// Modules summarizes all modules contracts are registered for, ordered by module name
func (repo *ContractRepository) Modules(_ context.Context) ([]*contract.ModuleInfo, error) {
	txn := repo.db.Txn(false)
	defer txn.Abort()

	iterator, err := txn.Get("contracts", "id")
	if err != nil {
		return nil, err
	}

	byName := map[string]*contract.ModuleInfo{}
	for raw := iterator.Next(); raw != nil; raw = iterator.Next() {
		obj := raw.(*record).Obj
		info, ok := byName[obj.Module]
		if !ok {
			info = &contract.ModuleInfo{Name: obj.Module}
			byName[obj.Module] = info
		}
		info.Contracts++
		if obj.Complete {
			info.Complete++
		}
	}

	modules := make([]*contract.ModuleInfo, 0, len(byName))
	for _, info := range byName {
		modules = append(modules, info)
	}
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Name < modules[j].Name
	})
	return modules, nil
}

func newRecord(obj *contract.Contract) *record {
	return &record{
		ID:     obj.ID.String(),
		Module: obj.Module,
		Method: obj.Method,
		Path:   obj.Path,
		Obj:    obj,
	}
}

func matchesFilter(obj *contract.Contract, filter *contract.Filter) bool {
	if filter == nil {
		return true
	}
	if filter.Module != nil && obj.Module != *filter.Module {
		return false
	}
	if filter.Method != nil && obj.Method != *filter.Method {
		return false
	}
	if filter.Complete != nil && obj.Complete != *filter.Complete {
		return false
	}
	if filter.Search != nil && *filter.Search != "" {
		needle := strings.ToLower(*filter.Search)
		if !strings.Contains(strings.ToLower(obj.Path), needle) &&
			!strings.Contains(strings.ToLower(obj.Summary), needle) &&
			!strings.Contains(strings.ToLower(obj.Entity), needle) {
			return false
		}
	}
	return true
}
