package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyQuerySingleResult(t *testing.T) {
	t.Parallel()
	out, err := applyQuery(".a", map[string]any{"a": 1})
	require.NoError(t, err)
	// Numbers pass through JSON normalization, so they come back as float64.
	assert.Equal(t, float64(1), out)
}

func TestApplyQueryMultipleResults(t *testing.T) {
	t.Parallel()
	out, err := applyQuery(".[].a", []any{map[string]any{"a": 1}, map[string]any{"a": 2}})
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, out)
}

func TestApplyQueryNoResults(t *testing.T) {
	t.Parallel()
	out, err := applyQuery(".[] | select(.a > 10)", []any{map[string]any{"a": 1}})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestApplyQueryRuntimeError(t *testing.T) {
	t.Parallel()
	_, err := applyQuery(".a", []any{1})
	assert.Error(t, err)
}

func TestApplyQueryNormalizesTypedInput(t *testing.T) {
	t.Parallel()
	type row struct {
		Name string `json:"name"`
	}
	out, err := applyQuery(".name", row{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}
