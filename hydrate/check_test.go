package hydrate

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"null-hydrator/internal/diagnostic"
	"null-hydrator/options"
)

func TestCheck_CleanType(t *testing.T) {
	diags := New().Check(reflect.TypeFor[*profile]())

	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
	assert.Empty(t, diags.Infos)
	assert.NoError(t, diags.Error())
}

func TestCheck_Unsupported(t *testing.T) {
	diags := New().Check(reflect.TypeFor[withMeta]())
	require.Len(t, diags.Errors, 3)

	for _, path := range []string{"withMeta.Meta", "withMeta.Hook", "withMeta.Sink"} {
		found := diags.Find(path)
		require.Len(t, found, 1, path)
		assert.Equal(t, diagnostic.CodeUnsupported, found[0].Code)
		assert.Equal(t, "hydrate.withMeta", found[0].TypeName)
		assert.NotEmpty(t, found[0].Suggestions)
	}

	skipping := New(WithPolicy(options.PolicyDefault | options.PolicySkipUnsupported)).
		Check(reflect.TypeFor[withMeta]())
	assert.True(t, skipping.IsValid())
	assert.Len(t, skipping.Warnings, 3)
}

func TestCheck_Provider(t *testing.T) {
	h := New(
		WithProvider(func() (any, error) { return map[string]string{}, nil }),
		WithProvider(func() (func() error, error) { return func() error { return nil }, nil }),
		WithProvider(func() (chan<- int, error) { return make(chan int), nil }),
	)

	diags := h.Check(reflect.TypeFor[withMeta]())
	assert.True(t, diags.IsValid())
}

func TestCheck_ProvidedComposites(t *testing.T) {
	h := New(WithProvider(func() (*node, error) { return &node{}, nil }))

	diags := h.Check(reflect.TypeFor[node]())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeCycle, diags.Errors[0].Code)
	assert.Equal(t, "node.Next", diags.Errors[0].FieldPath)

	h = New(WithProvider(func() (address, error) { return address{}, nil }))
	diags = h.Check(reflect.TypeFor[household]())
	assert.True(t, diags.IsValid())
}

func TestCheck_Cycles(t *testing.T) {
	diags := New().Check(reflect.TypeFor[node]())
	require.Len(t, diags.Errors, 1)

	d := diags.Errors[0]
	assert.Equal(t, diagnostic.CodeCycle, d.Code)
	assert.Equal(t, "node.Next", d.FieldPath)
	assert.Contains(t, d.Message, "hydrate.node -> hydrate.node")

	diags = New().Check(reflect.TypeFor[parent]())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "parent.Child.Parent", diags.Errors[0].FieldPath)

	leaving := New(WithPolicy(options.PolicyDefault | options.PolicyLeaveCycles)).Check(reflect.TypeFor[parent]())
	assert.True(t, leaving.IsValid())
	require.Len(t, leaving.Warnings, 1)
	assert.Equal(t, diagnostic.CodeCycle, leaving.Warnings[0].Code)
}

func TestCheck_SkippedFields(t *testing.T) {
	diags := New(WithSkip("hydrate.order.Extra")).Check(reflect.TypeFor[order]())

	assert.True(t, diags.IsValid(), diags.Error())
	require.Len(t, diags.Infos, 2)
	assert.Equal(t, "order.Extra", diags.Infos[0].FieldPath)
	assert.Equal(t, "order.Notes", diags.Infos[1].FieldPath)
	assert.Equal(t, diagnostic.CodeSkipped, diags.Infos[0].Code)
}

func TestCheck_NotStruct(t *testing.T) {
	diags := New().Check(reflect.TypeFor[[]string]())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnsupported, diags.Errors[0].Code)

	diags = New().Check(nil)
	assert.False(t, diags.IsValid())
}
