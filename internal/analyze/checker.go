package analyze

import (
	"fmt"
	"slices"
	"strings"

	"null-hydrator/category"
	"null-hydrator/hydrate"
	"null-hydrator/internal/diagnostic"
	"null-hydrator/options"
)

// Checker reports, for statically loaded struct types, the fields the
// hydrator would fail on, leave absent or skip under a policy.
type Checker struct {
	policy   options.PolicyEnum
	skip     map[string]struct{}
	stringer *TypeStringer
}

// NewChecker creates a Checker for policy. Skip entries use the same
// "pkg.Type.Field" form as hydrate.WithSkip.
func NewChecker(policy options.PolicyEnum, skip ...string) *Checker {
	c := &Checker{
		policy:   policy,
		skip:     make(map[string]struct{}, len(skip)),
		stringer: NewTypeStringer(),
	}

	for _, name := range skip {
		c.skip[name] = struct{}{}
	}

	return c
}

// Check reports the fields of a single struct type as a hydration root.
func (c *Checker) Check(t *TypeInfo) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics
	c.newRun(&diags).checkRoot(t)

	return diags
}

// CheckGraph checks every struct type of the loaded packages. A struct
// reached from an earlier root is not reported again as a root itself.
func (c *Checker) CheckGraph(graph *TypeGraph) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	r := c.newRun(&diags)
	for _, t := range graph.Structs() {
		r.checkRoot(t)
	}

	return diags
}

type run struct {
	*Checker

	diags  *diagnostic.Diagnostics
	active []*TypeInfo
	done   map[*TypeInfo]bool
}

func (c *Checker) newRun(diags *diagnostic.Diagnostics) *run {
	return &run{
		Checker: c,
		diags:   diags,
		done:    make(map[*TypeInfo]bool),
	}
}

func (r *run) checkRoot(t *TypeInfo) {
	if t == nil || t.Kind != TypeKindStruct {
		r.diags.AddError(diagnostic.CodeUnsupported,
			fmt.Sprintf("%s is not a struct", r.stringer.TypeString(t)), "", "")
		return
	}

	r.checkStruct(t, hydrate.NewTypePath(t.ID.Name))
}

func (r *run) checkStruct(t *TypeInfo, path *hydrate.TypePath) {
	if r.done[t] {
		return
	}

	r.done[t] = true
	r.active = append(r.active, t)
	defer func() { r.active = r.active[:len(r.active)-1] }()

	owner := t.ID.Qualified()

	for i := range t.Fields {
		field := &t.Fields[i]
		fieldPath := path.Field(field.Name)

		if field.Skipped() || r.skipped(owner, field.Name) {
			r.diags.AddInfo(diagnostic.CodeSkipped, "field is excluded from hydration", owner, fieldPath.String())
			continue
		}

		r.checkType(field.Type, owner, fieldPath)
	}
}

func (r *run) skipped(owner, field string) bool {
	_, ok := r.skip[owner+"."+field]
	return ok
}

func (r *run) checkType(t *TypeInfo, owner string, path *hydrate.TypePath) {
	t = t.Resolve()

	switch t.Kind {
	case TypeKindPointer:
		elem := t.ElemType.Resolve()
		if elem.Kind.IsNilable() {
			r.checkType(elem, owner, path)
			return
		}

		switch elem.Category {
		case category.Composite:
			if slices.Contains(r.active, elem) {
				r.reportCycle(elem, owner, path)
				return
			}
			r.checkStruct(elem, path)

		case category.Unsupported:
			r.reportUnsupported(elem, owner, path)
		}

	case TypeKindStruct:
		if t.Category == category.Composite && r.policy.Has(options.PolicyDescendPresent) {
			r.checkStruct(t, path)
		}

	case TypeKindArray:
		elem := t.ElemType.Resolve()
		if elem.Kind == TypeKindStruct && elem.Category == category.Composite &&
			r.policy.Has(options.PolicyDescendElements) {
			r.checkStruct(elem, path.Elem())
		}

	case TypeKindFunc, TypeKindChan, TypeKindInterface:
		if t.Category == category.Unsupported {
			r.reportUnsupported(t, owner, path)
		}

	case TypeKindBasic:
		if t.Category == category.Unsupported {
			r.reportUnsupported(t, owner, path)
		}
	}
}

func (r *run) reportUnsupported(t *TypeInfo, owner string, path *hydrate.TypePath) {
	msg := fmt.Sprintf("no default provider for %s", r.stringer.TypeString(t))
	if r.policy.Has(options.PolicySkipUnsupported) {
		r.diags.AddWarning(diagnostic.CodeUnsupported, msg+", left absent", owner, path.String())
		return
	}

	r.diags.AddError(diagnostic.CodeUnsupported, msg, owner, path.String(),
		`exclude the field with hydrate:"-"`,
		"register a default with hydrate.WithProvider",
		"enable the skip_unsupported policy",
	)
}

func (r *run) reportCycle(t *TypeInfo, owner string, path *hydrate.TypePath) {
	names := make([]string, 0, len(r.active)+1)
	for _, a := range r.active {
		names = append(names, a.ID.Qualified())
	}
	names = append(names, t.ID.Qualified())

	msg := fmt.Sprintf("default for %s recurses into itself (%s)", t.ID.Qualified(), strings.Join(names, " -> "))
	if r.policy.Has(options.PolicyLeaveCycles) {
		r.diags.AddWarning(diagnostic.CodeCycle, msg+", left absent", owner, path.String())
		return
	}

	r.diags.AddError(diagnostic.CodeCycle, msg, owner, path.String(),
		"enable the leave_cycles policy",
		`exclude the field with hydrate:"-"`,
	)
}
