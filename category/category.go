package category

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=Enum -output=enum_string.go

// Enum is the default-provider category of a declared field type.
// The constants are ordered by the priority in which a type is tested.
type Enum int

const (
	Unsupported Enum = iota // interfaces, plain funcs, send-only channels, unsafe pointers

	Text       // string and named string types
	Identifier // uuid.UUID and arrays convertible to it
	Timestamp  // time.Time and structs convertible to it
	Sequence   // slices
	Mapping    // maps
	Iterable   // iter.Seq / iter.Seq2 shaped funcs, receive-capable channels
	Composite  // any other struct
	Value      // bool, numbers, named enums, arrays

	// Total is a constant that represents the total number of categories defined
	Total = int(iota)
)

var (
	identifierType = reflect.TypeFor[uuid.UUID]()
	timestampType  = reflect.TypeFor[time.Time]()
)

// IsCollection reports whether the category defaults to an empty container.
func (e Enum) IsCollection() bool {
	switch e {
	default:
		return false
	case Sequence, Mapping, Iterable:
		return true
	}
}

// IsLeaf reports whether the category defaults to a value with no properties of its own.
func (e Enum) IsLeaf() bool {
	switch e {
	default:
		return false
	case Text, Identifier, Timestamp, Value:
		return true
	}
}

// FromReflectType classifies rtype after unwrapping every pointer layer.
// A nil type is Unsupported.
func FromReflectType(rtype reflect.Type) Enum {
	if rtype == nil {
		return Unsupported
	}

	_, rtype = PointerDepth(rtype)

	// text, identifier and timestamp come first: an identifier is also an array
	// and a timestamp is also a struct
	switch {
	case rtype.Kind() == reflect.String:
		return Text
	case IsIdentifier(rtype):
		return Identifier
	case IsTimestamp(rtype):
		return Timestamp
	}

	switch rtype.Kind() {
	default:
		return Unsupported

	case reflect.Slice:
		return Sequence

	case reflect.Map:
		return Mapping

	case reflect.Func:
		if IsIterator(rtype) {
			return Iterable
		}
		return Unsupported

	case reflect.Chan:
		if rtype.ChanDir()&reflect.RecvDir != 0 {
			return Iterable
		}
		return Unsupported

	case reflect.Struct:
		return Composite

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Array:
		return Value
	}
}

// IsIdentifier reports whether rtype is uuid.UUID or an array type convertible to it.
func IsIdentifier(rtype reflect.Type) bool {
	if rtype == identifierType {
		return true
	}

	return rtype.Kind() == reflect.Array && rtype.ConvertibleTo(identifierType)
}

// IsTimestamp reports whether rtype is time.Time or a struct type convertible to it.
func IsTimestamp(rtype reflect.Type) bool {
	if rtype == timestampType {
		return true
	}

	return rtype.Kind() == reflect.Struct && rtype.ConvertibleTo(timestampType)
}

// IsIterator reports whether rtype has the shape of iter.Seq[V] or iter.Seq2[K, V]:
//
//	func(yield func(V) bool)
//	func(yield func(K, V) bool)
func IsIterator(rtype reflect.Type) bool {
	if rtype.Kind() != reflect.Func || rtype.NumIn() != 1 || rtype.NumOut() != 0 || rtype.IsVariadic() {
		return false
	}

	yield := rtype.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return false
	}

	return yield.NumIn() == 1 || yield.NumIn() == 2
}

// IsNilable reports whether values of kind k can be absent.
func IsNilable(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return true
	}
}

// PointerDepth returns the pointer depth and the final base type.
func PointerDepth(rtype reflect.Type) (depth int, base reflect.Type) {
	base = rtype
	for base != nil && base.Kind() == reflect.Ptr {
		depth++
		base = base.Elem()
	}

	return depth, base
}
