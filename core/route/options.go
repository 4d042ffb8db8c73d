package route

import (
	"log/slog"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Option configures a Registry during creation.
type Option[C handler.Context] func(*Registry[C])

// WithLogger sets a custom logger for the registry.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(reg *Registry[C]) {
		if logger != nil {
			reg.logger = logger
		}
	}
}
