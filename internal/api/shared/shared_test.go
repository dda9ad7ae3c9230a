package shared_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasupy/todo-myapp/internal/api/shared"
)

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := shared.SetTraceID(context.Background())
	traceID := shared.GetTraceID(ctx)
	assert.NotEmpty(t, traceID)

	assert.Empty(t, shared.GetTraceID(context.Background()))
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req = req.WithContext(shared.SetTraceID(req.Context()))
	rec := httptest.NewRecorder()

	shared.RespondWithError(rec, req, http.StatusNotFound, "Not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"error":"Not found"`)
	assert.Contains(t, rec.Body.String(), `"trace_id"`)
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name" validate:"required"`
	}

	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"ok"}`))
	var p payload
	require.NoError(t, shared.DecodeJSON(req, &p))
	assert.NoError(t, shared.ValidateRequest(p))

	req = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}`))
	p = payload{}
	require.NoError(t, shared.DecodeJSON(req, &p))
	assert.Error(t, shared.ValidateRequest(p))
}
