package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/route"
)

func TestFactoryFuncAdapter(t *testing.T) {
	t.Parallel()

	t.Run("produces a handler", func(t *testing.T) {
		t.Parallel()

		called := 0
		factory := handler.FactoryFunc[*route.Context](func() (handler.HandlerFunc[*route.Context], error) {
			called++
			return func(ctx *route.Context) handler.Response {
				return func(w http.ResponseWriter, r *http.Request) error {
					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}, nil
		})

		h, err := factory.NewHandler()
		require.NoError(t, err)
		require.NotNil(t, h)
		assert.Equal(t, 1, called)

		_, err = factory.NewHandler()
		require.NoError(t, err)
		assert.Equal(t, 2, called)
	})

	t.Run("propagates construction error", func(t *testing.T) {
		t.Parallel()

		errNoBuffers := errors.New("buffer pool exhausted")
		factory := handler.FactoryFunc[*route.Context](func() (handler.HandlerFunc[*route.Context], error) {
			return nil, errNoBuffers
		})

		h, err := factory.NewHandler()
		require.ErrorIs(t, err, errNoBuffers)
		assert.Nil(t, h)
	})
}

func TestMiddlewareComposition(t *testing.T) {
	t.Parallel()

	var order []string

	mw := func(name string) handler.Middleware[*route.Context] {
		return func(next handler.HandlerFunc[*route.Context]) handler.HandlerFunc[*route.Context] {
			return func(ctx *route.Context) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	h := handler.HandlerFunc[*route.Context](func(ctx *route.Context) handler.Response {
		order = append(order, "handler")
		return func(w http.ResponseWriter, r *http.Request) error { return nil }
	})

	wrapped := mw("outer")(mw("inner")(h))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	resp := wrapped(route.NewContext(rec, req))
	require.NotNil(t, resp)
	require.NoError(t, resp(rec, req))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
