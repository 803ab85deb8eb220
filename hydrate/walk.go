package hydrate

import (
	"context"
	"log/slog"
	"reflect"
	"slices"
	"time"

	"null-hydrator/category"
	"null-hydrator/options"
)

// visitKey identifies a present pointer; the type disambiguates a struct
// from its first field, which share an address.
type visitKey struct {
	addr  uintptr
	rtype reflect.Type
}

// walker holds the state of one hydration call.
type walker struct {
	*Hydrator

	now     time.Time
	debug   bool
	visited map[visitKey]struct{}
	active  []reflect.Type // composite types on the current path
}

func (h *Hydrator) newWalker() *walker {
	now := h.clock.Now()
	if h.policy.Has(options.PolicyUTC) {
		now = now.UTC()
	}

	return &walker{
		Hydrator: h,
		now:      now,
		debug:    h.logger.Enabled(context.Background(), slog.LevelDebug),
		visited:  make(map[visitKey]struct{}),
	}
}

func (w *walker) walkRoot(ptr reflect.Value) error {
	w.visit(ptr)
	return w.walkStruct(ptr.Elem(), NewTypePath(typeName(ptr.Elem().Type())))
}

// walkStruct hydrates the properties of an addressable struct value.
func (w *walker) walkStruct(v reflect.Value, path *TypePath) error {
	rtype := v.Type()

	w.active = append(w.active, rtype)
	defer func() { w.active = w.active[:len(w.active)-1] }()

	for _, prop := range planFor(rtype).Properties {
		fieldPath := path.Field(prop.Name)

		if prop.Skip || w.skipped(rtype, prop.Name) {
			if w.debug {
				w.logger.Debug("property skipped", slog.String("path", fieldPath.String()))
			}
			continue
		}

		if err := w.walkSlot(v.Field(prop.Index), fieldPath); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) skipped(rtype reflect.Type, field string) bool {
	if len(w.skip) == 0 {
		return false
	}

	_, ok := w.skip[rtype.String()+"."+field]
	return ok
}

// walkSlot fills a settable slot when it is absent and descends into it otherwise.
func (w *walker) walkSlot(slot reflect.Value, path *TypePath) error {
	if !isAbsent(slot) {
		return w.descend(slot, path)
	}

	if !slot.CanSet() {
		return nil
	}

	def, ok, err := w.defaultFor(slot.Type(), path)
	if err != nil || !ok {
		return err
	}

	slot.Set(def)

	if w.debug {
		w.logger.Debug("property hydrated",
			slog.String("path", path.String()),
			slog.String("type", slot.Type().String()),
			slog.String("category", category.FromReflectType(slot.Type()).String()),
		)
	}

	return nil
}

// descend hydrates what is reachable from a present value.
func (w *walker) descend(v reflect.Value, path *TypePath) error {
	switch v.Kind() {
	default:
		return nil

	case reflect.Struct:
		if category.FromReflectType(v.Type()) != category.Composite ||
			!w.policy.Has(options.PolicyDescendPresent) || !v.CanAddr() {
			return nil
		}
		return w.walkStruct(v, path)

	case reflect.Ptr:
		if !w.visit(v) {
			return nil
		}
		return w.walkSlot(v.Elem(), path)

	case reflect.Interface:
		elem := v.Elem()
		if elem.Kind() != reflect.Ptr || elem.IsNil() {
			return nil
		}

		// a dynamic value starts a new type path
		active := w.active
		w.active = nil
		defer func() { w.active = active }()

		return w.descend(elem, path)

	case reflect.Slice, reflect.Array:
		if !w.policy.Has(options.PolicyDescendElements) || isScalar(v.Type().Elem()) {
			return nil
		}

		elemPath := path.Elem()
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if !elem.CanAddr() {
				return nil
			}
			if isAbsent(elem) {
				continue
			}
			if err := w.descend(elem, elemPath); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if !w.policy.Has(options.PolicyDescendElements) || isScalar(v.Type().Elem()) {
			return nil
		}
		return w.descendMap(v, path.Elem())
	}
}

// descendMap hydrates map values. Struct and array values are not
// addressable, so they are hydrated in a copy that is stored back.
func (w *walker) descendMap(m reflect.Value, path *TypePath) error {
	elemType := m.Type().Elem()

	for _, key := range m.MapKeys() {
		val := m.MapIndex(key)
		if isAbsent(val) {
			continue
		}

		switch elemType.Kind() {
		case reflect.Struct, reflect.Array:
			cp := reflect.New(elemType).Elem()
			cp.Set(val)
			if err := w.descend(cp, path); err != nil {
				return err
			}
			m.SetMapIndex(key, cp)

		default:
			if err := w.descend(val, path); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit records a present pointer and reports whether it is seen for the first time.
func (w *walker) visit(ptr reflect.Value) bool {
	key := visitKey{addr: ptr.Pointer(), rtype: ptr.Type()}
	if _, seen := w.visited[key]; seen {
		return false
	}

	w.visited[key] = struct{}{}
	return true
}

// defaultFor computes the default for an absent value of rtype. A false
// second result means the policy leaves the value absent.
func (w *walker) defaultFor(rtype reflect.Type, path *TypePath) (reflect.Value, bool, error) {
	if v, ok, err := w.provide(rtype, path); err != nil {
		return reflect.Value{}, false, err
	} else if ok {
		return w.fill(v, path)
	}

	switch rtype.Kind() {
	case reflect.Ptr:
		return w.defaultPointer(rtype, path)

	case reflect.Slice:
		return reflect.MakeSlice(rtype, 0, 0), true, nil

	case reflect.Map:
		return reflect.MakeMap(rtype), true, nil

	case reflect.Func:
		if category.IsIterator(rtype) {
			return emptyIterator(rtype), true, nil
		}

	case reflect.Chan:
		if rtype.ChanDir()&reflect.RecvDir != 0 {
			return closedChan(rtype), true, nil
		}
	}

	return w.unsupported(rtype, path)
}

// defaultPointer allocates the element of a pointer type and fills it
// according to the element's category.
func (w *walker) defaultPointer(rtype reflect.Type, path *TypePath) (reflect.Value, bool, error) {
	elemType := rtype.Elem()
	ptr := reflect.New(elemType)

	if v, ok, err := w.provide(elemType, path); err != nil {
		return reflect.Value{}, false, err
	} else if ok {
		ptr.Elem().Set(v)
		return w.fill(ptr, path)
	}

	if category.IsNilable(elemType.Kind()) {
		inner, ok, err := w.defaultFor(elemType, path)
		if err != nil || !ok {
			return reflect.Value{}, false, err
		}
		ptr.Elem().Set(inner)
		return ptr, true, nil
	}

	switch category.FromReflectType(elemType) {
	case category.Timestamp:
		ptr.Elem().Set(reflect.ValueOf(w.now).Convert(elemType))

	case category.Composite:
		if slices.Contains(w.active, elemType) {
			return w.cyclic(elemType, path)
		}

		if err := w.construct(ptr, path); err != nil {
			return reflect.Value{}, false, err
		}

		if err := w.walkStruct(ptr.Elem(), path); err != nil {
			return reflect.Value{}, false, err
		}

	case category.Text, category.Identifier, category.Value:
		// zero value is the default: "", uuid.Nil, 0, false

	default:
		return w.unsupported(elemType, path)
	}

	return ptr, true, nil
}

func (w *walker) provide(rtype reflect.Type, path *TypePath) (reflect.Value, bool, error) {
	provider, ok := w.providers[rtype]
	if !ok {
		return reflect.Value{}, false, nil
	}

	v, err := provider()
	if err != nil {
		return reflect.Value{}, false, &ConstructionError{Type: rtype, Path: path.String(), Err: err}
	}

	if isAbsent(v) {
		return reflect.Value{}, false, &ConstructionError{Type: rtype, Path: path.String(), Err: errNilProvided}
	}

	return v, true, nil
}

// fill hydrates a provided default the way a constructed one is hydrated.
func (w *walker) fill(v reflect.Value, path *TypePath) (reflect.Value, bool, error) {
	target := v
	if v.Kind() == reflect.Ptr {
		target = v.Elem()
	}

	if target.Kind() != reflect.Struct || category.FromReflectType(target.Type()) != category.Composite {
		if err := w.descend(v, path); err != nil {
			return reflect.Value{}, false, err
		}
		return v, true, nil
	}

	if slices.Contains(w.active, target.Type()) {
		return w.cyclic(target.Type(), path)
	}

	if v.Kind() == reflect.Ptr && !w.visit(v) {
		return v, true, nil
	}

	if err := w.walkStruct(target, path); err != nil {
		return reflect.Value{}, false, err
	}

	return v, true, nil
}

// construct runs the Constructor hook of a freshly allocated instance.
func (w *walker) construct(ptr reflect.Value, path *TypePath) error {
	c, ok := ptr.Interface().(Constructor)
	if !ok {
		return nil
	}

	if err := c.Construct(); err != nil {
		return &ConstructionError{Type: ptr.Type().Elem(), Path: path.String(), Err: err}
	}

	return nil
}

func (w *walker) cyclic(rtype reflect.Type, path *TypePath) (reflect.Value, bool, error) {
	if w.policy.Has(options.PolicyLeaveCycles) {
		w.logger.Warn("self-referential property left absent",
			slog.String("path", path.String()),
			slog.String("type", rtype.String()),
		)
		return reflect.Value{}, false, nil
	}

	chain := append(slices.Clone(w.active), rtype)
	return reflect.Value{}, false, &CyclicTypeError{Type: rtype, Path: path.String(), Chain: chain}
}

func (w *walker) unsupported(rtype reflect.Type, path *TypePath) (reflect.Value, bool, error) {
	if w.policy.Has(options.PolicySkipUnsupported) {
		w.logger.Warn("unsupported property left absent",
			slog.String("path", path.String()),
			slog.String("type", rtype.String()),
		)
		return reflect.Value{}, false, nil
	}

	return reflect.Value{}, false, &UnsupportedTypeError{Type: rtype, Path: path.String()}
}

func isAbsent(v reflect.Value) bool {
	return category.IsNilable(v.Kind()) && v.IsNil()
}

// isScalar reports whether values of rtype can hold nothing to hydrate.
func isScalar(rtype reflect.Type) bool {
	switch rtype.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
		return false
	default:
		return true
	}
}

func emptyIterator(rtype reflect.Type) reflect.Value {
	return reflect.MakeFunc(rtype, func([]reflect.Value) []reflect.Value {
		return nil
	})
}

func closedChan(rtype reflect.Type) reflect.Value {
	ch := reflect.MakeChan(reflect.ChanOf(reflect.BothDir, rtype.Elem()), 0)
	ch.Close()
	return ch.Convert(rtype)
}
