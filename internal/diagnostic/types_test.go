package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("duplicate_message", "already exists", "message", "Trade")
	d.AddInfo("merged", "structure merged", "enum", "Side")
	assert.True(t, d.IsValid())

	d.AddError("missing_name", "name is required", "", "")
	assert.True(t, d.HasErrors())
	assert.Equal(t, 3, d.Len())
	require.EqualError(t, d.Error(), "[missing_name] name is required")

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, "[message] Trade: [duplicate_message] already exists", all[1].String())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning("w", "first", "", "")
	b.AddWarning("w", "second", "", "")
	b.AddError("e", "boom", "", "")

	a.Merge(b)
	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Errors, 1)
	assert.Equal(t, "warning", DiagnosticWarning.String())
}

func TestDiagnosticsString(t *testing.T) {
	var d Diagnostics
	assert.Empty(t, d.String())

	d.AddInfo("i", "note", "", "")
	d.AddError("e", "boom", "message", "Trade")

	assert.Equal(t, "error: [message] Trade: [e] boom\ninfo: [i] note", d.String())
}
