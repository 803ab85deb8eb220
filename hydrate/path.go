package hydrate

import (
	"reflect"
	"strings"
)

// TypePath builds a readable path string for a field.
// Examples:
//   - "Order" for the root struct
//   - "Order.Items" for a field
//   - "Order.Items[]" for the elements of a slice or map field
//   - "Order.Items[].Product" for a field within elements
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Elem appends an element indicator "[]" to the path.
func (p *TypePath) Elem() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"[]"}}
	}
	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = newParts[len(newParts)-1] + "[]"
	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// typeName is the root segment used for rtype's paths.
func typeName(rtype reflect.Type) string {
	if rtype.Name() != "" {
		return rtype.Name()
	}
	return rtype.String()
}
