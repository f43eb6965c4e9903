package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbe-schema-generator/internal/schema"
)

const exampleManifest = "../../examples/market-data/manifest.yaml"

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true

	var out bytes.Buffer

	cmd := NewProgram("sbegen")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "absent.yaml"),
		"--dir", dir,
		"--log-level", "warn",
	}, args...))

	err := cmd.Execute()

	return out.String(), err
}

var initArgs = []string{
	"init", "MD",
	"--package", "com.example.md",
	"--semantic-version", "5.2",
	"--description", "market data",
	"--enx-namespace", "http://example.com/enx",
	"--str-namespace", "http://example.com/str",
	"--ext-namespace", "http://example.com/ext",
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "init", "MD", "--package", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--semantic-version")
	assert.Contains(t, err.Error(), "--enx-namespace")
	assert.NotContains(t, err.Error(), "--package")

	out, err := run(t, dir, initArgs...)
	require.NoError(t, err)
	assert.Contains(t, out, "created")
	assert.FileExists(t, filepath.Join(dir, "md_json_schema.json"))

	_, err = run(t, dir, initArgs...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, dir, append(initArgs, "--force")...)
	require.NoError(t, err)
}

func TestApplyThenInspect(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "apply", exampleManifest)
	require.NoError(t, err, out)
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "generated")

	xmlPath := filepath.Join(dir, "md_sbe_xml_schema.xml")
	data, err := os.ReadFile(xmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<sbe:message name="Trade" id="1">`)

	require.NoError(t, os.Remove(xmlPath))

	out, err = run(t, dir, "generate", "md")
	require.NoError(t, err, out)
	assert.FileExists(t, xmlPath)

	out, err = run(t, dir, "check", "md")
	require.NoError(t, err, out)
	assert.Contains(t, out, "ok")

	out, err = run(t, dir, "show", "md")
	require.NoError(t, err)
	assert.Contains(t, out, "enum TradeCondition (uint8): Regular, Cross, Auction")
	assert.Contains(t, out, "set SettlFlags (uint8): Cash, NextDay, Regular")
	assert.Contains(t, out, "message Trade (template 1): 6 fields, 1 groups, 4 columns")
	assert.Contains(t, out, `Trade document field {"column":"price","format":"decimal","scale":4}`)

	out, err = run(t, dir, "show", "md", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "Quote")
}

func TestApply_SkipGenerate(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "apply", exampleManifest, "--skip-generate")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "md_json_schema.json"))
	assert.NoFileExists(t, filepath.Join(dir, "md_sbe_xml_schema.xml"))
}

func TestExportThenApply(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "apply", exampleManifest, "--skip-generate")
	require.NoError(t, err)

	out, err := run(t, dir, "export", "md")
	require.NoError(t, err)
	assert.Contains(t, out, "schema: md")
	assert.Contains(t, out, "template_id: 2")

	path := filepath.Join(dir, "md.yaml")

	out, err = run(t, dir, "export", "md", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "exported")

	other := t.TempDir()

	out, err = run(t, other, "apply", path)
	require.NoError(t, err, out)

	want, err := os.ReadFile(filepath.Join(dir, "md_json_schema.json"))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(other, "md_json_schema.json"))
	require.NoError(t, err)

	assert.JSONEq(t, string(want), string(got))
}

func TestApply_InvalidManifest(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enums:\n  - encoding_type: char\n"), 0o644))

	out, err := run(t, dir, "apply", path)
	require.ErrorIs(t, err, errInvalidManifest)
	assert.Contains(t, out, "missing_schema_name")
	assert.NoFileExists(t, filepath.Join(dir, "_json_schema.json"))
}

func TestCheck_Collisions(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
schema: dup
header:
  namespaces: {sbe: a, enx: b, str: c, ext: d}
  package: p
  schema_id: 1
  semantic_version: "1"
  description: d
  byte_order: littleEndian
messages:
  - {name: A, template_id: 1}
`), 0o644))

	_, err := run(t, dir, "apply", path, "--skip-generate")
	require.NoError(t, err)

	st, err := schema.Open("dup", nil, schema.Config{Dir: dir})
	require.NoError(t, err)

	_, err = st.AddMessage("B", 1)
	require.NoError(t, err)

	out, err := run(t, dir, "check", "dup")
	require.ErrorIs(t, err, errIdentifierCollisions)
	assert.Contains(t, out, "duplicate_template_id")
}

func TestMissingSchema(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"generate", "check", "show", "export"} {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, dir, name, "nothing")
			require.ErrorIs(t, err, schema.ErrSchemaNotFound)
		})
	}
}
