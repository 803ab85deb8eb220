package analyze

import (
	"go/types"

	"null-hydrator/category"
)

const (
	uuidPkgPath = "github.com/google/uuid"
	timePkgPath = "time"
)

// Classify returns the category of t after unwrapping every pointer layer.
// It mirrors category.FromReflectType for types known only statically.
func Classify(t types.Type) category.Enum {
	if t == nil {
		return category.Unsupported
	}

	for {
		ptr, ok := t.Underlying().(*types.Pointer)
		if !ok {
			break
		}
		t = ptr.Elem()
	}

	// text, identifier and timestamp come first: an identifier is also an array
	// and a timestamp is also a struct
	switch {
	case isString(t):
		return category.Text
	case IsIdentifier(t):
		return category.Identifier
	case IsTimestamp(t):
		return category.Timestamp
	}

	switch ut := t.Underlying().(type) {
	case *types.Slice:
		return category.Sequence

	case *types.Map:
		return category.Mapping

	case *types.Signature:
		if IsIterator(ut) {
			return category.Iterable
		}
		return category.Unsupported

	case *types.Chan:
		if ut.Dir() != types.SendOnly {
			return category.Iterable
		}
		return category.Unsupported

	case *types.Struct:
		return category.Composite

	case *types.Array:
		return category.Value

	case *types.Basic:
		if ut.Info()&(types.IsBoolean|types.IsNumeric) != 0 {
			return category.Value
		}
		return category.Unsupported

	default:
		return category.Unsupported
	}
}

func isString(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsString != 0
}

// IsIdentifier reports whether t is uuid.UUID or an array type convertible to it.
func IsIdentifier(t types.Type) bool {
	if isNamed(t, uuidPkgPath, "UUID") {
		return true
	}

	arr, ok := t.Underlying().(*types.Array)
	return ok && arr.Len() == 16 && types.Identical(arr.Elem(), types.Typ[types.Byte])
}

// IsTimestamp reports whether t is time.Time or a struct type convertible to it.
func IsTimestamp(t types.Type) bool {
	if isNamed(t, timePkgPath, "Time") {
		return true
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok || st.NumFields() != 3 {
		return false
	}

	for i, name := range []string{"wall", "ext", "loc"} {
		field := st.Field(i)
		if field.Name() != name || field.Pkg() == nil || field.Pkg().Path() != timePkgPath {
			return false
		}
	}

	return true
}

// IsIterator reports whether sig has the shape of iter.Seq[V] or iter.Seq2[K, V].
func IsIterator(sig *types.Signature) bool {
	if sig.Params().Len() != 1 || sig.Results().Len() != 0 || sig.Variadic() {
		return false
	}

	yield, ok := sig.Params().At(0).Type().Underlying().(*types.Signature)
	if !ok || yield.Results().Len() != 1 {
		return false
	}

	result, ok := yield.Results().At(0).Type().Underlying().(*types.Basic)
	if !ok || result.Info()&types.IsBoolean == 0 {
		return false
	}

	return yield.Params().Len() == 1 || yield.Params().Len() == 2
}

func isNamed(t types.Type, pkgPath, name string) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == pkgPath && obj.Name() == name
}
