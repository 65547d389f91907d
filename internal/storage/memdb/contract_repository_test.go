package memdb

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/omniwork/contracthub/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) contract.Repository {
	t.Helper()
	driver := New()
	require.NoError(t, driver.Initialize(context.Background()))
	return driver.Contracts()
}

func createTestContract(t *testing.T, repo contract.Repository, module, method, path string, complete bool) *contract.Contract {
	t.Helper()
	obj, err := repo.Create(context.Background(), &contract.Create{
		Module:   module,
		Method:   method,
		Path:     path,
		Entity:   "Thing",
		Response: contract.ShapeEntity,
		Complete: complete,
	})
	require.NoError(t, err)
	return obj
}

func TestContractRepositoryCreate(t *testing.T) {
	repo := newTestRepository(t)

	obj := createTestContract(t, repo, "crm", "GET", "/v1/crm/leads", true)
	assert.NotEqual(t, uuid.Nil, obj.ID)
	assert.NotNil(t, obj.Request)

	t.Run("rejects duplicate routes", func(t *testing.T) {
		_, err := repo.Create(context.Background(), &contract.Create{
			Module:   "crm",
			Method:   "GET",
			Path:     "/v1/crm/leads",
			Response: contract.ShapeList,
		})
		assert.ErrorIs(t, err, contract.ErrDuplicateRoute)
	})

	t.Run("allows the same path in another module", func(t *testing.T) {
		_, err := repo.Create(context.Background(), &contract.Create{
			Module:   "sales",
			Method:   "GET",
			Path:     "/v1/crm/leads",
			Response: contract.ShapeList,
		})
		assert.NoError(t, err)
	})
}

func TestContractRepositoryGetByID(t *testing.T) {
	repo := newTestRepository(t)
	obj := createTestContract(t, repo, "crm", "GET", "/v1/crm/leads", true)

	found, err := repo.GetByID(context.Background(), obj.ID)
	require.NoError(t, err)
	assert.Equal(t, obj, found)

	missing, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContractRepositoryGetByRoute(t *testing.T) {
	repo := newTestRepository(t)
	obj := createTestContract(t, repo, "crm", "GET", "/v1/crm/leads", true)

	found, err := repo.GetByRoute(context.Background(), "crm", "GET", "/v1/crm/leads")
	require.NoError(t, err)
	assert.Equal(t, obj.ID, found.ID)

	missing, err := repo.GetByRoute(context.Background(), "crm", "POST", "/v1/crm/leads")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContractRepositoryGet(t *testing.T) {
	repo := newTestRepository(t)
	createTestContract(t, repo, "crm", "GET", "/v1/crm/leads", true)
	createTestContract(t, repo, "crm", "POST", "/v1/crm/leads", false)
	createTestContract(t, repo, "assets", "GET", "/v1/assets", true)
	createTestContract(t, repo, "support", "GET", "/v1/support/tickets", true)

	t.Run("orders by module and path", func(t *testing.T) {
		contracts, n, err := repo.Get(context.Background(), nil, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), n)
		require.Len(t, contracts, 4)
		assert.Equal(t, "assets", contracts[0].Module)
		assert.Equal(t, "crm", contracts[1].Module)
		assert.Equal(t, "support", contracts[3].Module)
	})

	t.Run("paginates", func(t *testing.T) {
		contracts, n, err := repo.Get(context.Background(), nil, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), n)
		assert.Len(t, contracts, 1)

		contracts, n, err = repo.Get(context.Background(), nil, 5, 3)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), n)
		assert.Empty(t, contracts)
	})

	t.Run("filters by module", func(t *testing.T) {
		module := "crm"
		contracts, n, err := repo.Get(context.Background(), &contract.Filter{Module: &module}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), n)
		assert.Len(t, contracts, 2)
	})

	t.Run("filters by method", func(t *testing.T) {
		method := "POST"
		contracts, n, err := repo.Get(context.Background(), &contract.Filter{Method: &method}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), n)
		require.Len(t, contracts, 1)
		assert.Equal(t, "POST", contracts[0].Method)
	})

	t.Run("filters by completeness", func(t *testing.T) {
		complete := false
		_, n, err := repo.Get(context.Background(), &contract.Filter{Complete: &complete}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), n)
	})

	t.Run("searches case-insensitively", func(t *testing.T) {
		search := "TICKET"
		contracts, n, err := repo.Get(context.Background(), &contract.Filter{Search: &search}, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), n)
		require.Len(t, contracts, 1)
		assert.Equal(t, "support", contracts[0].Module)
	})
}

func TestContractRepositoryUpdate(t *testing.T) {
	repo := newTestRepository(t)
	obj := createTestContract(t, repo, "crm", "POST", "/v1/crm/leads", false)

	summary := "Create a lead"
	complete := true
	fields := []contract.Field{{Name: "name", Type: contract.FieldString, Required: true}}
	updated, err := repo.Update(context.Background(), obj.ID, &contract.Update{
		Summary:  &summary,
		Request:  &fields,
		Complete: &complete,
	})
	require.NoError(t, err)
	assert.Equal(t, "Create a lead", updated.Summary)
	assert.Equal(t, fields, updated.Request)
	assert.True(t, updated.Complete)

	// The previously returned object must not have been mutated in place
	assert.False(t, obj.Complete)

	t.Run("returns nil for an unknown contract", func(t *testing.T) {
		missing, err := repo.Update(context.Background(), uuid.New(), &contract.Update{Summary: &summary})
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestContractRepositoryDelete(t *testing.T) {
	repo := newTestRepository(t)
	obj := createTestContract(t, repo, "crm", "GET", "/v1/crm/leads", true)

	require.NoError(t, repo.Delete(context.Background(), obj.ID))

	found, err := repo.GetByID(context.Background(), obj.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	// Deleting an unknown contract is a no-op
	assert.NoError(t, repo.Delete(context.Background(), uuid.New()))
}

func TestContractRepositoryModules(t *testing.T) {
	repo := newTestRepository(t)
	createTestContract(t, repo, "crm", "GET", "/v1/crm/leads", true)
	createTestContract(t, repo, "crm", "POST", "/v1/crm/leads", false)
	createTestContract(t, repo, "assets", "GET", "/v1/assets", true)

	modules, err := repo.Modules(context.Background())
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, &contract.ModuleInfo{Name: "assets", Contracts: 1, Complete: 1}, modules[0])
	assert.Equal(t, &contract.ModuleInfo{Name: "crm", Contracts: 2, Complete: 1}, modules[1])
}
