package analyze

import (
	"go/types"
	"reflect"
	"slices"

	"null-hydrator/category"
	"null-hydrator/hydrate"
	"null-hydrator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "null-hydrator/store"
	Name    string // e.g., "DerivedCollectionObject"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Qualified returns the name as the reflect package prints it, e.g. "store.Order".
func (t TypeID) Qualified() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map from key type to element type
	TypeKindChan               // channel of another type
	TypeKindFunc               // function signature
	TypeKindInterface          // interface type
	TypeKindAlias              // named type wrapping a non-struct type
	TypeKindExternal           // opaque leaf type (time.Time, uuid.UUID)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindChan:
		return "chan"
	case TypeKindFunc:
		return "func"
	case TypeKindInterface:
		return "interface"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// IsNilable reports whether a field of this kind can be absent.
func (k TypeKind) IsNilable() bool {
	switch k {
	default:
		return false
	case TypeKindPointer, TypeKindSlice, TypeKindMap, TypeKindChan, TypeKindFunc, TypeKindInterface:
		return true
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID        // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind      // Kind of type
	Category   category.Enum // Default-provider category, pointers unwrapped
	Underlying *TypeInfo     // For named non-struct types, the underlying type
	KeyType    *TypeInfo     // For maps, the key type
	ElemType   *TypeInfo     // For pointers, slices, arrays, maps and channels, the element type
	Fields     []FieldInfo   // For structs, the list of fields
	GoType     types.Type    // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsGeneric reports whether t is a named type with type parameters.
func (t *TypeInfo) IsGeneric() bool {
	named, ok := t.GoType.(*types.Named)
	return ok && named.TypeParams().Len() > 0
}

// Resolve follows named non-struct types to the type they wrap.
func (t *TypeInfo) Resolve() *TypeInfo {
	for t != nil && t.Kind == TypeKindAlias && t.Underlying != nil {
		t = t.Underlying
	}

	return t
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// Skipped reports whether the field is excluded from hydration by its tag.
func (f *FieldInfo) Skipped() bool {
	return f.Tag.Get(hydrate.TagName) == "-"
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	return f.Tag.Get(key) != ""
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Structs returns the non-generic struct types of the loaded packages,
// ordered by package path and then by name.
func (g *TypeGraph) Structs() []*TypeInfo {
	paths := make([]string, 0, len(g.Packages))
	for path := range g.Packages {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	var out []*TypeInfo
	for _, path := range paths {
		for _, id := range g.Packages[path].Types {
			info := g.Types[id]
			if info == nil || info.Kind != TypeKindStruct || info.IsGeneric() {
				continue
			}
			out = append(out, info)
		}
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
