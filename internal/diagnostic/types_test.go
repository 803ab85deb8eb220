package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Severities(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeSkipped, "skipped by tag", "store.Order", "Order.Notes")
	d.AddWarning(CodeCycle, "self-referential pointer left absent", "store.Node", "Node.Next")
	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())

	d.AddError(CodeUnsupported, "interface type has no default", "store.Order", "Order.Meta", "tag the field with hydrate:\"-\"")
	require.True(t, d.HasErrors())
	assert.Equal(t, []string{`tag the field with hydrate:"-"`}, d.Errors[0].Suggestions)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[store.Order] Order.Meta: [H001] interface type has no default", err.Error())
}

func TestDiagnostics_AllOrdersBySeverityThenPath(t *testing.T) {
	var d Diagnostics
	d.AddInfo(CodeSkipped, "skipped", "", "A.Z")
	d.AddError(CodeUnsupported, "unsupported", "", "A.Y")
	d.AddError(CodeUnsupported, "unsupported", "", "A.B")
	d.AddWarning(CodeCycle, "cycle", "", "A.C")

	var paths []string
	for _, diag := range d.All() {
		paths = append(paths, diag.FieldPath)
	}

	assert.Equal(t, []string{"A.B", "A.Y", "A.C", "A.Z"}, paths)
	assert.Len(t, d.Find("A.Y"), 1)
	assert.Empty(t, d.Find("A.Q"))
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeUnsupported, "x", "", "A.X")
	b.AddWarning(CodeCycle, "y", "", "B.Y")
	b.AddInfo(CodeSkipped, "z", "", "B.Z")

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "A.B: [H003] skipped", Diagnostic{Code: CodeSkipped, Message: "skipped", FieldPath: "A.B"}.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
