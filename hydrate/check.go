package hydrate

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"null-hydrator/category"
	"null-hydrator/internal/diagnostic"
	"null-hydrator/options"
)

// Check walks the type graph of rtype as if every field were absent and
// reports the fields hydration would fail on, leave absent or skip.
// It needs no instance, so DTO shapes can be validated in tests.
func (h *Hydrator) Check(rtype reflect.Type) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	_, base := category.PointerDepth(rtype)
	if base == nil || base.Kind() != reflect.Struct {
		diags.AddError(diagnostic.CodeUnsupported, fmt.Sprintf("%v is not a struct", rtype), "", "")
		return diags
	}

	c := &checker{
		Hydrator: h,
		diags:    &diags,
		done:     make(map[reflect.Type]bool),
	}
	c.checkStruct(base, NewTypePath(typeName(base)))

	return diags
}

type checker struct {
	*Hydrator

	diags  *diagnostic.Diagnostics
	active []reflect.Type
	done   map[reflect.Type]bool
}

func (c *checker) checkStruct(rtype reflect.Type, path *TypePath) {
	if c.done[rtype] {
		return
	}

	c.done[rtype] = true
	c.active = append(c.active, rtype)
	defer func() { c.active = c.active[:len(c.active)-1] }()

	for _, prop := range planFor(rtype).Properties {
		fieldPath := path.Field(prop.Name)

		if prop.Skip || c.skippedField(rtype, prop.Name) {
			c.diags.AddInfo(diagnostic.CodeSkipped, "field is excluded from hydration", rtype.String(), fieldPath.String())
			continue
		}

		c.checkType(prop.Type, rtype, fieldPath)
	}
}

func (c *checker) skippedField(rtype reflect.Type, field string) bool {
	_, ok := c.skip[rtype.String()+"."+field]
	return ok
}

func (c *checker) checkType(rtype, owner reflect.Type, path *TypePath) {
	if _, ok := c.providers[rtype]; ok {
		c.checkProvided(rtype, owner, path)
		return
	}

	switch rtype.Kind() {
	case reflect.Ptr:
		elem := rtype.Elem()
		if _, ok := c.providers[elem]; ok {
			c.checkProvided(elem, owner, path)
			return
		}

		if category.IsNilable(elem.Kind()) {
			c.checkType(elem, owner, path)
			return
		}

		switch category.FromReflectType(elem) {
		case category.Composite:
			if slices.Contains(c.active, elem) {
				c.reportCycle(elem, owner, path)
				return
			}
			c.checkStruct(elem, path)

		case category.Unsupported:
			c.reportUnsupported(elem, owner, path)
		}

	case reflect.Struct:
		if category.FromReflectType(rtype) == category.Composite && c.policy.Has(options.PolicyDescendPresent) {
			c.checkStruct(rtype, path)
		}

	case reflect.Array:
		elem := rtype.Elem()
		if category.FromReflectType(elem) == category.Composite && elem.Kind() == reflect.Struct &&
			c.policy.Has(options.PolicyDescendElements) {
			c.checkStruct(elem, path.Elem())
		}

	case reflect.Func:
		if !category.IsIterator(rtype) {
			c.reportUnsupported(rtype, owner, path)
		}

	case reflect.Chan:
		if rtype.ChanDir()&reflect.RecvDir == 0 {
			c.reportUnsupported(rtype, owner, path)
		}

	case reflect.Interface, reflect.UnsafePointer:
		c.reportUnsupported(rtype, owner, path)
	}
}

// checkProvided follows a provided composite default, which is hydrated
// like a constructed one.
func (c *checker) checkProvided(rtype, owner reflect.Type, path *TypePath) {
	if rtype.Kind() == reflect.Ptr {
		rtype = rtype.Elem()
	}

	if rtype.Kind() != reflect.Struct || category.FromReflectType(rtype) != category.Composite {
		return
	}

	if slices.Contains(c.active, rtype) {
		c.reportCycle(rtype, owner, path)
		return
	}

	c.checkStruct(rtype, path)
}

func (c *checker) reportUnsupported(rtype, owner reflect.Type, path *TypePath) {
	msg := fmt.Sprintf("no default provider for %s", rtype)
	if c.policy.Has(options.PolicySkipUnsupported) {
		c.diags.AddWarning(diagnostic.CodeUnsupported, msg+", left absent", owner.String(), path.String())
		return
	}

	c.diags.AddError(diagnostic.CodeUnsupported, msg, owner.String(), path.String(),
		`exclude the field with hydrate:"-"`,
		"register a default with hydrate.WithProvider",
		"enable the skip_unsupported policy",
	)
}

func (c *checker) reportCycle(rtype, owner reflect.Type, path *TypePath) {
	names := make([]string, 0, len(c.active)+1)
	for _, t := range c.active {
		names = append(names, t.String())
	}
	names = append(names, rtype.String())

	msg := fmt.Sprintf("default for %s recurses into itself (%s)", rtype, strings.Join(names, " -> "))
	if c.policy.Has(options.PolicyLeaveCycles) {
		c.diags.AddWarning(diagnostic.CodeCycle, msg+", left absent", owner.String(), path.String())
		return
	}

	c.diags.AddError(diagnostic.CodeCycle, msg, owner.String(), path.String(),
		"enable the leave_cycles policy",
		`exclude the field with hydrate:"-"`,
	)
}
