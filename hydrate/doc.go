// Package hydrate fills absent fields of an object graph with type-appropriate
// defaults, in place, before the graph is persisted or displayed.
//
// A field is absent when it holds nil: a nil pointer, slice, map, func,
// channel or interface. Present values are never overwritten. Defaults are
// chosen by the field's declared type (see package category):
//   - Text: pointer to ""
//   - Identifier: pointer to uuid.Nil
//   - Timestamp: pointer to the hydration clock's "now"
//   - Sequence, Mapping: empty, non-nil slice or map
//   - Iterable: empty iterator func or closed channel
//   - Composite: freshly allocated struct, hydrated before it is assigned
//   - Value: pointer to the zero value of the underlying type
//
// Defaults registered with WithProvider replace the category rule and are
// hydrated the same way; a provider must not return nil.
//
// Hydration of self-referential types fails with a CyclicTypeError unless
// the policy leaves such fields absent. Only the declared types on the path
// from the nearest interface value count: a value reached through an
// interface starts a new path.
package hydrate
