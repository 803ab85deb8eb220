// Package analyze loads Go packages and checks their struct types for
// fields the hydrator cannot default.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of the loaded types, classifies every field with the
// same category rules the hydrator applies through reflection, and
// reports problems as diagnostics without running any code.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/pointer/slice/map/...) and category
//   - FieldInfo: describes field name, type, tags, and embedding
//   - Checker: reports unsupported, self-referential and skipped fields
package analyze
