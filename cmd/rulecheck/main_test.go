package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

const testSchema = `
type: object
properties:
  id: {type: integer, required: true, min: 1}
  email: {type: string, transforms: [trim], format: email}
  tags:
    type: array
    items: {type: string}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeReports(t *testing.T, out string) []report {
	t.Helper()

	var reports []report
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var r report
		require.NoError(t, dec.Decode(&r))
		reports = append(reports, r)
	}
	return reports
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "schema.yaml", testSchema)
	good := writeFile(t, dir, "good.json", `{"id": "7", "email": " a@example.com ", "tags": ["x"]}`)
	bad := writeFile(t, dir, "bad.yaml", "email: nope\ntags: [1]\n")

	t.Run("valid document prints the converted value", func(t *testing.T) {
		out, _, err := execute(t, "validate", "--schema", schema, good)
		require.NoError(t, err)

		reports := decodeReports(t, out)
		require.Len(t, reports, 1)
		assert.Equal(t, "good.json", reports[0].Document)
		assert.True(t, reports[0].Valid)
		assert.Equal(t, map[string]any{
			"id":    float64(7),
			"email": "a@example.com",
			"tags":  []any{"x"},
		}, reports[0].Value)
	})

	t.Run("invalid document prints errors and fails", func(t *testing.T) {
		out, _, err := execute(t, "validate", "--schema", schema, good, bad)
		require.ErrorIs(t, err, errInvalidDocuments)

		reports := decodeReports(t, out)
		require.Len(t, reports, 2)
		assert.False(t, reports[1].Valid)
		assert.Equal(t, []string{"Value is required"}, reports[1].Errors.Get("id"))
		assert.Equal(t, []string{"must be a valid email address"}, reports[1].Errors.Get("email"))
		assert.Equal(t, []string{"Value is not a valid string"}, reports[1].Errors.Get("tags[0]"))
	})

	t.Run("quiet prints invalid documents only", func(t *testing.T) {
		out, _, err := execute(t, "validate", "-q", "-s", schema, good, bad)
		require.ErrorIs(t, err, errInvalidDocuments)

		reports := decodeReports(t, out)
		require.Len(t, reports, 1)
		assert.Equal(t, "bad.yaml", reports[0].Document)
	})

	t.Run("logs a summary", func(t *testing.T) {
		_, stderr, err := execute(t, "validate", "--log-format", "json", "--schema", schema, good)
		require.NoError(t, err)
		assert.Contains(t, stderr, `"msg":"documents checked"`)
		assert.Contains(t, stderr, `"component":"rulecheck"`)
	})

	t.Run("debug level logs each run with the document name", func(t *testing.T) {
		_, stderr, err := execute(t, "validate", "--log-level", "debug", "--log-format", "json", "--schema", schema, good)
		require.NoError(t, err)
		assert.Contains(t, stderr, `"msg":"validation finished"`)
		assert.Contains(t, stderr, `"document":"good.json"`)
	})

	t.Run("translated messages", func(t *testing.T) {
		locales := writeFile(t, dir, "locales.yaml", "de:\n  validation:\n    required: Wert ist erforderlich\n")

		out, _, err := execute(t, "validate", "--translations", locales, "--locale", "de", "--schema", schema, bad)
		require.ErrorIs(t, err, errInvalidDocuments)

		reports := decodeReports(t, out)
		require.Len(t, reports, 1)
		assert.Equal(t, []string{"Wert ist erforderlich"}, reports[0].Errors.Get("id"))
		assert.Equal(t, []string{"must be a valid email address"}, reports[0].Errors.Get("email"))
	})

	t.Run("missing translations file", func(t *testing.T) {
		_, _, err := execute(t, "validate", "--translations", filepath.Join(dir, "none.yaml"), "--schema", schema, good)
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("missing schema flag", func(t *testing.T) {
		_, _, err := execute(t, "validate", good)
		assert.Error(t, err)
	})

	t.Run("missing document", func(t *testing.T) {
		_, _, err := execute(t, "validate", "--schema", schema, filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad configuration", func(t *testing.T) {
		_, _, err := execute(t, "validate", "--log-level", "loud", "--schema", schema, good)
		assert.Error(t, err)

		_, _, err = execute(t, "validate", "--timeout=-1s", "--schema", schema, good)
		assert.ErrorIs(t, err, errInvalidTimeout)
	})
}

func TestCompileCommand(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.yaml", testSchema)
	broken := writeFile(t, dir, "broken.yaml", "type: decimal\n")

	out, _, err := execute(t, "compile", ok)
	require.NoError(t, err)
	assert.Equal(t, ok+": ok\n", out)

	_, stderr, err := execute(t, "compile", ok, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
	assert.Contains(t, stderr, "schema rejected")

	t.Run("identical schemas compile once", func(t *testing.T) {
		copied := writeFile(t, dir, "copy.yaml", testSchema)

		out, stderr, err := execute(t, "compile", ok, copied)
		require.NoError(t, err)
		assert.Equal(t, ok+": ok\n"+copied+": ok\n", out)
		assert.Contains(t, stderr, "total=2")
		assert.Contains(t, stderr, "distinct=1")
	})
}
