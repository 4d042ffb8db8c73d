package route_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/dmitrymomot/routekit/core/extractor"
	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/route"
	"github.com/dmitrymomot/routekit/core/state"
)

func ExampleSingleRouteBuilder() {
	type WidgetID struct {
		ID int
	}

	widgetFromPath := func(segments []string) (WidgetID, error) {
		if len(segments) != 2 {
			return WidgetID{}, fmt.Errorf("%w: want /widgets/{id}", extractor.ErrPathExtraction)
		}
		id, err := strconv.Atoi(segments[1])
		if err != nil {
			return WidgetID{}, fmt.Errorf("%w: %v", extractor.ErrPathExtraction, err)
		}
		return WidgetID{ID: id}, nil
	}

	showWidget := func(ctx *route.Context) handler.Response {
		w := state.MustFrom[WidgetID](ctx.State())
		return func(rw http.ResponseWriter, r *http.Request) error {
			fmt.Println("widget", w.ID)
			return nil
		}
	}

	reg := route.NewRegistry[*route.Context]()
	b := reg.NewRoute("/widgets/{id}", "web")
	route.WithPathExtractor(b, widgetFromPath).To(showWidget)

	rt := reg.Routes()[0]
	req := httptest.NewRequest(http.MethodGet, "/widgets/42", nil)
	rec := httptest.NewRecorder()
	if err := rt.Dispatch(route.NewContext(rec, req)); err != nil {
		fmt.Println("dispatch:", err)
	}
	// Output: widget 42
}

func ExampleSingleRouteBuilder_toNewHandler() {
	newAuditedHandler := handler.FactoryFunc[*route.Context](func() (handler.HandlerFunc[*route.Context], error) {
		// Request-scoped buffer, exclusive to one dispatch.
		var lines []string
		return func(ctx *route.Context) handler.Response {
			lines = append(lines, ctx.Request().URL.Path)
			return func(w http.ResponseWriter, r *http.Request) error {
				fmt.Println("audited", len(lines), "request")
				return nil
			}
		}, nil
	})

	reg := route.NewRegistry[*route.Context]()
	reg.NewRoute("/audit", "web").ToNewHandler(newAuditedHandler)

	rt := reg.Routes()[0]
	req := httptest.NewRequest(http.MethodGet, "/audit", nil)
	if err := rt.Dispatch(route.NewContext(httptest.NewRecorder(), req)); err != nil {
		fmt.Println("dispatch:", err)
	}
	// Output: audited 1 request
}
