package route_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/route"
	"github.com/dmitrymomot/routekit/core/state"
)

type ctxKey struct{}

func TestContextDelegatesToRequestContext(t *testing.T) {
	t.Parallel()

	base := context.WithValue(context.Background(), ctxKey{}, "value")
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(base)
	rec := httptest.NewRecorder()

	ctx := route.NewContext(rec, req)

	assert.Equal(t, "value", ctx.Value(ctxKey{}))
	assert.NoError(t, ctx.Err())

	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)

	select {
	case <-ctx.Done():
		t.Fatal("done channel must not be closed")
	default:
	}
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()

	base, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(base)
	ctx := route.NewContext(httptest.NewRecorder(), req)

	cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestContextAccessors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/widgets", nil)
	rec := httptest.NewRecorder()

	ctx := route.NewContext(rec, req)

	assert.Same(t, req, ctx.Request())
	assert.Equal(t, rec, ctx.ResponseWriter())

	require.NotNil(t, ctx.State())
	state.Put(ctx.State(), widgetID{ID: 1})
	assert.Same(t, ctx.State(), ctx.State())

	var _ handler.Context = ctx
}
