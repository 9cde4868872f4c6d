package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPlainWhenColorNever(t *testing.T) {
	var buf bytes.Buffer
	u := NewWithWriter(&buf, ColorNever)
	u.Error("boom %d", 7)
	assert.Equal(t, "✗ boom 7\n", buf.String())
}

func TestNoColorEnvWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	u := NewWithWriter(&buf, ColorAlways)
	u.Success("done")
	assert.Equal(t, "✓ done\n", buf.String())
}

func TestWarning(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, ColorNever).Warning("careful")
	assert.Equal(t, "⚠ careful\n", buf.String())
}
