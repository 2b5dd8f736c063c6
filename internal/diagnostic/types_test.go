package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	require.NoError(t, d.Error())

	d.AddInfo("alias_target", "resolved at mapping time", "blog.Post", "Author")
	d.AddWarning("incomplete_one_to_many", "inverse key is not set", "blog.Post", "Comments")
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.Add(Diagnostic{
		Severity:   SeverityError,
		Code:       "unknown_property",
		Message:    "property \"Nane\" not found",
		Type:       "blog.Post",
		Property:   "Nane",
		Suggestion: "Name",
	})
	d.AddError("relation_cycle", "cycle Node -> Node", "", "")

	require.True(t, d.HasErrors())
	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.Warnings, 1)
	assert.EqualError(t, d.Error(),
		`[blog.Post] Nane: [unknown_property] property "Nane" not found (did you mean "Name"?); [relation_cycle] cycle Node -> Node`)

	var other Diagnostics
	other.Merge(d)
	assert.Len(t, other.Errors, 2)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
