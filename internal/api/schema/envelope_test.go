package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("wraps the payload", func(t *testing.T) {
		response := OK(&payload{Name: "test"})
		require.True(t, response.Success)
		require.NotNil(t, response.Data)
		assert.Equal(t, "test", response.Data.Name)
		assert.Nil(t, response.Error)
		assert.Empty(t, response.Message)
	})

	t.Run("attaches an optional message", func(t *testing.T) {
		response := OK(&payload{Name: "test"}, "created")
		assert.Equal(t, "created", response.Message)
	})

	t.Run("omits the error field in JSON", func(t *testing.T) {
		raw, err := json.Marshal(OK(&payload{Name: "test"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":{"name":"test"}}`, string(raw))
	})
}

func TestFail(t *testing.T) {
	desc := &Error{
		Code:    "generic.notFound",
		Message: "Resource not found.",
	}

	t.Run("wraps the error descriptor", func(t *testing.T) {
		response := Fail(desc)
		require.False(t, response.Success)
		require.NotNil(t, response.Error)
		assert.Equal(t, desc, response.Error)
		assert.Nil(t, response.Data)
	})

	t.Run("omits the data field in JSON", func(t *testing.T) {
		raw, err := json.Marshal(Fail(desc))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"error":{"code":"generic.notFound","message":"Resource not found."}}`, string(raw))
	})
}

func TestDeleted(t *testing.T) {
	response := Deleted()
	require.True(t, response.Success)
	assert.True(t, response.Data.Deleted)
	assert.Nil(t, response.Error)

	raw, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"deleted":true}}`, string(raw))
}

func TestCombine(t *testing.T) {
	first := &Error{Code: "a", Message: "a"}
	second := &Error{Code: "b", Message: "b"}

	t.Run("returns a single descriptor unchanged", func(t *testing.T) {
		assert.Same(t, first, Combine(first))
	})

	t.Run("folds multiple descriptors", func(t *testing.T) {
		combined := Combine(first, second)
		assert.Equal(t, "generic.multiple", combined.Code)
		assert.Equal(t, []*Error{first, second}, combined.Details["errors"])
	})
}
