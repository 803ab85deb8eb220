package hydrate

import (
	"log/slog"
	"reflect"

	"null-hydrator/options"
)

type Option func(h *Hydrator)

// Provider computes the default for one declared type.
type Provider func() (reflect.Value, error)

// WithPolicy replaces the policy flags (options.PolicyDefault unless set).
func WithPolicy(policy options.PolicyEnum) Option {
	return func(h *Hydrator) {
		h.policy = policy
	}
}

// WithClock sets the source of timestamp defaults.
func WithClock(clock Clock) Option {
	return func(h *Hydrator) {
		if clock != nil {
			h.clock = clock
		}
	}
}

// WithLogger sets the logger receiving per-field debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hydrator) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithSkip excludes fields by qualified name, e.g. "store.Order.Notes".
func WithSkip(names ...string) Option {
	return func(h *Hydrator) {
		for _, name := range names {
			h.skip[name] = struct{}{}
		}
	}
}

// WithProvider registers fn as the default for fields declared as T, and for
// the element of fields declared as *T. It takes precedence over the
// built-in categories, which makes otherwise unsupported interface types usable.
// A provided struct is hydrated like a constructed one; a nil result is a
// ConstructionError.
func WithProvider[T any](fn func() (T, error)) Option {
	rtype := reflect.TypeFor[T]()
	return func(h *Hydrator) {
		h.providers[rtype] = func() (reflect.Value, error) {
			v, err := fn()
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(&v).Elem(), nil
		}
	}
}
