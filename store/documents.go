// Package store holds the sample documents hydrated by the demo command.
// They are shaped like records returned by a document store that skips
// constructors: anything missing from the stored document stays nil.
package store

import (
	"time"

	"github.com/google/uuid"

	"null-hydrator/hydrate"
)

// TestEnum is a named integer stored by value.
type TestEnum int

const (
	First TestEnum = iota
	Second
)

// BaseDocument carries the fields shared by every tracked document.
type BaseDocument struct {
	RecordID *uuid.UUID `json:"record_id,omitempty"`
}

// EnsureTrackedState hydrates the base fields only. Documents embedding
// BaseDocument declare their own EnsureTrackedState so their fields are covered.
func (d *BaseDocument) EnsureTrackedState(opts ...hydrate.Option) error {
	_, err := hydrate.Hydrate(d, opts...)
	return err
}

type DeepObject struct {
	DeepList []string       `json:"deep_list,omitempty"`
	DeepDict map[string]int `json:"deep_dict,omitempty"`
}

type EmbeddedObject struct {
	EmbeddedList []string       `json:"embedded_list,omitempty"`
	EmbeddedDict map[string]int `json:"embedded_dict,omitempty"`
	Deep         *DeepObject    `json:"deep,omitempty"`
}

// NonDerivedCollectionObject does not embed BaseDocument.
type NonDerivedCollectionObject struct {
	OuterDict map[string]int  `json:"outer_dict,omitempty"`
	Embedded  *EmbeddedObject `json:"embedded,omitempty"`
}

func (o *NonDerivedCollectionObject) EnsureTrackedState(opts ...hydrate.Option) error {
	_, err := hydrate.Hydrate(o, opts...)
	return err
}

// DerivedCollectionObject embeds BaseDocument; RecordID is hydrated with the rest.
type DerivedCollectionObject struct {
	BaseDocument

	TestVal   *TestEnum       `json:"test_val,omitempty"`
	Name      *string         `json:"name,omitempty"`
	Age       *int            `json:"age,omitempty"`
	ID        *uuid.UUID      `json:"id,omitempty"`
	Time      *time.Time      `json:"time,omitempty"`
	OuterList []string        `json:"outer_list,omitempty"`
	OuterDict map[string]int  `json:"outer_dict,omitempty"`
	Embedded  *EmbeddedObject `json:"embedded,omitempty"`
}

func (o *DerivedCollectionObject) EnsureTrackedState(opts ...hydrate.Option) error {
	_, err := hydrate.Hydrate(o, opts...)
	return err
}

// Tracked is implemented by every document in this package.
type Tracked interface {
	EnsureTrackedState(opts ...hydrate.Option) error
}

var (
	_ Tracked = (*BaseDocument)(nil)
	_ Tracked = (*NonDerivedCollectionObject)(nil)
	_ Tracked = (*DerivedCollectionObject)(nil)
)
