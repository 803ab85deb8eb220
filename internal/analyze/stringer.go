package analyze

import (
	"go/types"
	"strings"

	"null-hydrator/hydrate"
)

// TypeStringer renders TypeInfo values for diagnostics.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a human-readable string representation of a TypeInfo.
// Named types in the analyzed packages print with their package name,
// e.g. "store.Order".
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	if t.IsNamed() {
		return t.ID.Qualified()
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + s.TypeString(t.ElemType)

	case TypeKindSlice:
		return "[]" + s.TypeString(t.ElemType)

	case TypeKindMap:
		return "map[" + s.TypeString(t.KeyType) + "]" + s.TypeString(t.ElemType)

	case TypeKindStruct:
		return "struct{...}"

	default:
		// arrays, channels, funcs, interfaces and basics print like the compiler does
		return types.TypeString(t.GoType, func(pkg *types.Package) string { return pkg.Name() })
	}
}

// FieldPath returns a path string for a field within a type.
// Example: Order, Items -> "Order.Items"
func (s *TypeStringer) FieldPath(typeName string, fieldNames ...string) string {
	path := hydrate.NewTypePath(typeName)
	for _, fn := range fieldNames {
		path = path.Field(fn)
	}
	return path.String()
}

// Describe lists the fields of a struct type with their kind and category,
// one per line.
func (s *TypeStringer) Describe(t *TypeInfo) string {
	var sb strings.Builder

	sb.WriteString(s.TypeString(t))
	sb.WriteString("\n")

	for _, f := range t.Fields {
		sb.WriteString("  ")
		sb.WriteString(f.Name)
		sb.WriteString(" ")
		sb.WriteString(s.TypeString(f.Type))
		sb.WriteString(" (")
		sb.WriteString(f.Type.Category.String())
		sb.WriteString(")\n")
	}

	return sb.String()
}
