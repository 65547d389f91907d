package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBodyPayload struct {
	Name  string `json:"name" required:"true"`
	Count *int   `json:"count" required:"true" min:"1" max:"10"`
	Note  string `json:"note"`
}

func TestUnmarshalBody(t *testing.T) {
	t.Run("decodes a valid body", func(t *testing.T) {
		request := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"test","count":5}`))
		payload, errs, err := UnmarshalBody[testBodyPayload](request)
		require.NoError(t, err)
		require.Empty(t, errs)
		assert.Equal(t, "test", payload.Name)
		require.NotNil(t, payload.Count)
		assert.Equal(t, 5, *payload.Count)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		request := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))
		_, errs, err := UnmarshalBody[testBodyPayload](request)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "validation.requestBody.invalidJSON", errs[0].Code)
	})

	t.Run("rejects a mistyped parameter", func(t *testing.T) {
		request := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"test","count":"five"}`))
		_, errs, err := UnmarshalBody[testBodyPayload](request)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "validation.requestBody.parameter.invalidType", errs[0].Code)
	})

	t.Run("flags missing required parameters", func(t *testing.T) {
		request := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
		_, errs, err := UnmarshalBody[testBodyPayload](request)
		require.NoError(t, err)
		require.Len(t, errs, 2)
		codes := []string{errs[0].Code, errs[1].Code}
		assert.Equal(t, []string{
			"validation.requestBody.parameter.missing",
			"validation.requestBody.parameter.missing",
		}, codes)
	})

	t.Run("flags out-of-range numbers", func(t *testing.T) {
		request := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"test","count":11}`))
		_, errs, err := UnmarshalBody[testBodyPayload](request)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "validation.requestBody.parameter.number.outOfRange", errs[0].Code)
		assert.Equal(t, "count", errs[0].Details["parameter"])
	})
}
