package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "", "graph", "--role", "Doctor")
	require.NoError(t, err)

	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `"doctor" -> "What is your name?"`)
	assert.Contains(t, out, `"What is your medical speciality?" -> Done`)
	assert.NotContains(t, out, "birthday")
}

func TestGraphCommandDefaultsToPatient(t *testing.T) {
	out, err := execute(t, "", "graph")
	require.NoError(t, err)
	assert.Contains(t, out, `"patient" -> "What is your name?"`)
}

func TestStylesCommand(t *testing.T) {
	out, err := execute(t, "", "styles")
	require.NoError(t, err)

	for _, name := range []string{"function-list", "chained", "anonymous", "closures", "generic"} {
		assert.Contains(t, out, name)
	}
	assert.Equal(t, 4, strings.Count(out, "(default)"))
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "", "patient")
	require.Error(t, err)
}
