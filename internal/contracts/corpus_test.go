package contracts

import (
	"context"
	"testing"

	"github.com/omniwork/contracthub/internal/storage/memdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	corpus := All()
	require.NotEmpty(t, corpus)

	t.Run("every descriptor is valid", func(t *testing.T) {
		for _, create := range corpus {
			assert.NoError(t, create.Validate(), "%s %s", create.Method, create.Path)
		}
	})

	t.Run("routes are unique", func(t *testing.T) {
		seen := map[string]struct{}{}
		for _, create := range corpus {
			route := create.Module + " " + create.Method + " " + create.Path
			_, duplicate := seen[route]
			assert.False(t, duplicate, route)
			seen[route] = struct{}{}
		}
	})

	t.Run("contains placeholders pending backend sync", func(t *testing.T) {
		incomplete := 0
		for _, create := range corpus {
			if !create.Complete {
				incomplete++
			}
		}
		assert.Positive(t, incomplete)
	})
}

func TestSeed(t *testing.T) {
	driver := memdb.New()
	require.NoError(t, driver.Initialize(context.Background()))
	repo := driver.Contracts()

	registered, err := Seed(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, len(All()), registered)

	_, n, err := repo.Get(context.Background(), nil, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(All())), n)

	t.Run("is idempotent", func(t *testing.T) {
		registered, err := Seed(context.Background(), repo)
		require.NoError(t, err)
		assert.Zero(t, registered)
	})
}
