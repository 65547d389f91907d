package cache

import (
	"context"
	"testing"
	"time"

	"github.com/omniwork/contracthub/internal/contract"
	"github.com/omniwork/contracthub/internal/storage/memdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T) (*Driver, *memdb.Driver) {
	t.Helper()
	underlying := memdb.New()
	require.NoError(t, underlying.Initialize(context.Background()))
	driver := New(underlying, time.Minute)
	require.NoError(t, driver.Initialize(context.Background()))
	t.Cleanup(driver.Close)
	return driver, underlying
}

func TestContractRepository_GetByID(t *testing.T) {
	driver, underlying := newTestDriver(t)
	repo := driver.Contracts()

	obj, err := repo.Create(context.Background(), &contract.Create{
		Module:   "crm",
		Method:   "GET",
		Path:     "/api/crm/leads",
		Response: contract.ShapeList,
	})
	require.NoError(t, err)

	t.Run("serves cached entries without hitting the underlying repository", func(t *testing.T) {
		require.NoError(t, underlying.Contracts().Delete(context.Background(), obj.ID))

		cached, err := repo.GetByID(context.Background(), obj.ID)
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.Equal(t, obj.ID, cached.ID)
	})

	t.Run("falls through to the underlying repository on a cache miss", func(t *testing.T) {
		restored, err := underlying.Contracts().Create(context.Background(), &contract.Create{
			Module:   "hr",
			Method:   "GET",
			Path:     "/api/hr/employees",
			Response: contract.ShapeList,
		})
		require.NoError(t, err)

		fetched, err := repo.GetByID(context.Background(), restored.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, restored.ID, fetched.ID)
	})
}

func TestContractRepository_Delete(t *testing.T) {
	driver, _ := newTestDriver(t)
	repo := driver.Contracts()

	obj, err := repo.Create(context.Background(), &contract.Create{
		Module:   "finance",
		Method:   "POST",
		Path:     "/api/finance/invoices",
		Response: contract.ShapeEntity,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), obj.ID))

	fetched, err := repo.GetByID(context.Background(), obj.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}
