package hydrate

import (
	"fmt"
	"log/slog"
	"reflect"

	"null-hydrator/options"
)

// Constructor is implemented by types that finish their own default
// construction. Construct is called on every instance the hydrator
// allocates, before its fields are hydrated.
type Constructor interface {
	Construct() error
}

// Hydrator replaces absent fields with defaults. It holds no per-call state
// and may be shared; a single object graph must not be hydrated concurrently.
type Hydrator struct {
	policy    options.PolicyEnum
	clock     Clock
	logger    *slog.Logger
	providers map[reflect.Type]Provider
	skip      map[string]struct{}
}

// New creates a Hydrator with options.PolicyDefault and the system clock.
func New(opts ...Option) *Hydrator {
	h := &Hydrator{
		policy:    options.PolicyDefault,
		clock:     SystemClock,
		logger:    slog.Default(),
		providers: make(map[reflect.Type]Provider),
		skip:      make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Policy returns the active policy flags.
func (h *Hydrator) Policy() options.PolicyEnum {
	return h.policy
}

// Hydrate fills every absent field of instance and returns it. A nil instance
// is replaced by a new zero T, which is then hydrated.
//
// Fields defaulted before an error stay defaulted.
func Hydrate[T any](instance *T, opts ...Option) (*T, error) {
	return HydrateWith(New(opts...), instance)
}

// MustHydrate is like Hydrate but panics on error.
func MustHydrate[T any](instance *T, opts ...Option) *T {
	instance, err := Hydrate(instance, opts...)
	if err != nil {
		panic(err)
	}

	return instance
}

// HydrateWith is Hydrate with a preconfigured Hydrator.
func HydrateWith[T any](h *Hydrator, instance *T) (*T, error) {
	rtype := reflect.TypeFor[T]()
	if rtype.Kind() != reflect.Struct {
		return instance, &UnsupportedTypeError{Type: rtype}
	}

	w := h.newWalker()
	if instance == nil {
		instance = new(T)
		if err := w.construct(reflect.ValueOf(instance), NewTypePath(typeName(rtype))); err != nil {
			return instance, err
		}
	}

	return instance, w.walkRoot(reflect.ValueOf(instance))
}

// Hydrate fills every absent field of the struct target points to.
func (h *Hydrator) Hydrate(target any) error {
	if target == nil {
		return ErrNilTarget
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("%w, got %s", ErrNotPointer, v.Type())
	}

	if v.IsNil() {
		return ErrNilTarget
	}

	if v.Elem().Kind() != reflect.Struct {
		return &UnsupportedTypeError{Type: v.Elem().Type()}
	}

	return h.newWalker().walkRoot(v)
}
