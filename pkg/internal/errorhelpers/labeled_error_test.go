package errorhelpers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelError(t *testing.T) {
	sentinel := errors.New("input closed")

	err := LabelError("chained", sentinel)
	require.Error(t, err)
	assert.Equal(t, "chained: input closed", err.Error())
	assert.ErrorIs(t, err, sentinel)

	wrapped := fmt.Errorf("running demo: %w", err)
	label, ok := LabelOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "chained", label)
}

func TestLabelErrorNil(t *testing.T) {
	assert.NoError(t, LabelError("chained", nil))

	_, ok := LabelOf(errors.New("plain"))
	assert.False(t, ok)
}
