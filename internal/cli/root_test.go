package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flextcli/render"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderJSONInputAsCSV(t *testing.T) {
	t.Parallel()
	out, err := execute(t, `[{"name":"John","age":30},{"name":"Jane","age":25}]`, "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "age,name\n30,John\n25,Jane\n", out)
}

func TestRenderYAMLInputAsJSON(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "a: 1\nb: two\n", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1,\"b\":\"two\"}\n", out)
}

func TestQueryFilter(t *testing.T) {
	t.Parallel()
	out, err := execute(t, `{"results":[1,2,3],"total":3}`,
		"--query", ".results", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]\n", out)
}

func TestQueryScalarResultPlain(t *testing.T) {
	t.Parallel()
	out, err := execute(t, `[{"name":"John"}]`, "--query", ".[0].name", "--format", "plain")
	require.NoError(t, err)
	assert.Equal(t, "John", out)
}

func TestQueryInvalid(t *testing.T) {
	t.Parallel()
	_, err := execute(t, `{}`, "--query", ".[", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query")
}

func TestUnknownFormatFlag(t *testing.T) {
	t.Parallel()
	_, err := execute(t, `{}`, "--format", "bogus")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestFieldMismatchSurfaces(t *testing.T) {
	t.Parallel()
	_, err := execute(t, `[{"a":1},{"b":2}]`, "--format", "csv")
	assert.ErrorIs(t, err, render.ErrFieldMismatch)
}

func TestBadDelimiter(t *testing.T) {
	t.Parallel()
	_, err := execute(t, `[]`, "--format", "csv", "--delimiter", ";;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delimiter")
}

func TestBadBorder(t *testing.T) {
	t.Parallel()
	_, err := execute(t, `[]`, "--format", "table", "--border", "wavy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "border")
}

func TestTableBorderFlag(t *testing.T) {
	t.Parallel()
	out, err := execute(t, `["a"]`, "--format", "table", "--border", "ascii")
	require.NoError(t, err)
	assert.Equal(t, "+-------+\n| Value |\n+-------+\n| a     |\n+-------+\n", out)
}

func TestGoTemplateFormatFlag(t *testing.T) {
	t.Parallel()
	out, err := execute(t, `[{"name":"a"},{"name":"b"}]`, "--format", "go-template={{.name}}")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestInputFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o600))
	out, err := execute(t, "", "--input", path, "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", out)
}

func TestInputFileMissing(t *testing.T) {
	t.Parallel()
	_, err := execute(t, "", "--input", filepath.Join(t.TempDir(), "nope.json"), "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

func TestOutputFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.csv")
	_, err := execute(t, `[{"a":1}]`, "--format", "csv", "--output", path)
	require.NoError(t, err)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n1\n", string(raw))
}

func TestMalformedInput(t *testing.T) {
	t.Parallel()
	_, err := execute(t, "{not: [valid", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse input")
}

func TestEmptyInputRendersNull(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "", "--format", "json", "--indent", "0")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

func TestRejectsPositionalArgs(t *testing.T) {
	t.Parallel()
	_, err := execute(t, "", "extra")
	assert.Error(t, err)
}
