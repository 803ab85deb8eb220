package main

import (
	"fmt"
	"io"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/scott-cotton/cli"

	"null-hydrator/category"
	"null-hydrator/hydrate"
	"null-hydrator/store"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: demo takes no arguments", cli.ErrUsage)
	}

	opts, err := cfg.hydrateOpts()
	if err != nil {
		return err
	}

	return runDemo(cc.Out, opts, cfg.Dump)
}

// runDemo loads two documents the way a store that skips constructors would,
// hydrates them and prints whether each property is still null.
func runDemo(w io.Writer, opts []hydrate.Option, dump bool) error {
	derived := &store.DerivedCollectionObject{}
	nonDerived := &store.NonDerivedCollectionObject{}

	// the store populates what it finds in the stored document
	derived.OuterList = []string{"Some value"}
	nonDerived.OuterDict = map[string]int{}

	docs := []store.Tracked{derived, nonDerived}
	for _, doc := range docs {
		if err := doc.EnsureTrackedState(opts...); err != nil {
			return err
		}
	}

	for _, doc := range docs {
		v := reflect.ValueOf(doc).Elem()
		fmt.Fprintln(w, v.Type().Name())

		if err := printNullness(w, v); err != nil {
			return err
		}

		if dump {
			dumper.Fdump(w, doc)
		}
	}

	return nil
}

// printNullness prints one line per property, promoting the properties of
// embedded structs.
func printNullness(w io.Writer, v reflect.Value) error {
	props, err := hydrate.Describe(v.Type())
	if err != nil {
		return err
	}

	for _, prop := range props {
		field := v.Field(prop.Index)
		if prop.Embedded && field.Kind() == reflect.Struct {
			if err := printNullness(w, field); err != nil {
				return err
			}
			continue
		}

		null := category.IsNilable(field.Kind()) && field.IsNil()
		fmt.Fprintf(w, "Property %s null: %t\n", prop.Name, null)
	}

	return nil
}
