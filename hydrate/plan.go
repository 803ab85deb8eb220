package hydrate

import (
	"fmt"
	"reflect"
	"sync"

	"null-hydrator/category"
)

// TagName is the struct tag consulted for per-field settings.
// `hydrate:"-"` excludes a field from hydration.
const TagName = "hydrate"

// Property describes one hydratable field of a struct type.
type Property struct {
	Name     string        // Go field name
	Index    int           // Field index in the struct
	Type     reflect.Type  // Declared type
	Category category.Enum // Default-provider category of Type
	Optional bool          // Whether the field can be absent (nilable kind)
	Embedded bool          // Whether the field is embedded (anonymous)
	Skip     bool          // Excluded by tag
}

type structPlan struct {
	Type       reflect.Type
	Properties []Property
}

// plans caches property descriptors per struct type; they never change for a type.
var plans sync.Map // reflect.Type -> *structPlan

// Describe returns the property descriptors of a struct type, or of the
// struct a pointer type points to.
func Describe(rtype reflect.Type) ([]Property, error) {
	if rtype == nil {
		return nil, ErrNilTarget
	}

	_, base := category.PointerDepth(rtype)
	if base.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %s", ErrNotPointer, rtype)
	}

	props := planFor(base).Properties
	return append([]Property(nil), props...), nil
}

func planFor(rtype reflect.Type) *structPlan {
	if cached, ok := plans.Load(rtype); ok {
		return cached.(*structPlan)
	}

	actual, _ := plans.LoadOrStore(rtype, buildPlan(rtype))
	return actual.(*structPlan)
}

func buildPlan(rtype reflect.Type) *structPlan {
	plan := &structPlan{Type: rtype}

	for i := 0; i < rtype.NumField(); i++ {
		field := rtype.Field(i)

		// exported fields of an unexported embedded struct are still settable,
		// anything else unexported is not
		if !field.IsExported() && !(field.Anonymous && field.Type.Kind() == reflect.Struct) {
			continue
		}

		plan.Properties = append(plan.Properties, Property{
			Name:     field.Name,
			Index:    i,
			Type:     field.Type,
			Category: category.FromReflectType(field.Type),
			Optional: category.IsNilable(field.Type.Kind()),
			Embedded: field.Anonymous,
			Skip:     field.Tag.Get(TagName) == "-",
		})
	}

	return plan
}
