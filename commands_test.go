package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := runCommand(t, "resolve", "-s", "testdata/src", "demo.Order", "String")
	require.NoError(t, err)

	for _, want := range []string{
		"demo.Order<java.lang.String>\n",
		"  extends java.lang.Object\n",
		"  field item: java.lang.String\n",
		"  field history: java.util.List<java.lang.String>\n",
		"  field parent: demo.Order<java.lang.String>\n",
		"  constructor Order(id long, item java.lang.String)\n",
		"  method item(): java.lang.String\n",
		"  method setNote(note java.lang.String): void\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestResolveCommandYAML(t *testing.T) {
	out, err := runCommand(t, "resolve", "--format", "yaml", "-s", "testdata/src", "demo.Pair<String, Integer>")
	require.NoError(t, err)

	var reports []TypeReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, "demo.Pair<java.lang.String, java.lang.Integer>", report.Type)
	require.Len(t, report.Fields, 2)
	assert.Equal(t, FieldReport{Name: "key", Type: "java.lang.String", Modifiers: "public final"}, report.Fields[0])
	require.Len(t, report.Constructors, 1)
	assert.Equal(t, "public demo.Pair(K,V)", report.Constructors[0].Declared)
	assert.Equal(t, []ParameterReport{
		{Name: "key", Type: "java.lang.String"},
		{Name: "value", Type: "java.lang.Integer"},
	}, report.Constructors[0].Parameters)
}

func TestResolveCommandErrors(t *testing.T) {
	_, err := runCommand(t, "resolve", "-s", "testdata/src", "demo.Order")
	assert.ErrorContains(t, err, "[T]")

	_, err = runCommand(t, "resolve", "--log-level", "loud", "demo.Order")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = runCommand(t, "resolve")
	assert.Error(t, err)
}

func TestClassesCommand(t *testing.T) {
	out, err := runCommand(t, "classes", "-s", "testdata/src")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"demo.Line",
		"demo.Order<T>",
		"demo.Pair<K, V extends java.lang.Number>",
	}, strings.Split(strings.TrimSpace(out), "\n"))

	all, err := runCommand(t, "classes", "--all")
	require.NoError(t, err)
	assert.Contains(t, all, "java.util.Map<K, V>\n")
}

func TestStructsCommand(t *testing.T) {
	out, err := runCommand(t, "structs", "-s", "testdata/src", "-p", "orders", "demo.Order<Long>")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "package orders\n"))
	assert.Contains(t, out, "type OrderLong struct {")

	_, err = runCommand(t, "structs", "-s", "testdata/src", "int[]")
	assert.ErrorContains(t, err, "not a class type")
}

func TestRunCommand(t *testing.T) {
	sources, err := filepath.Abs(filepath.Join("testdata", "src"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "genresolve.yaml")
	config := "sources: [" + sources + "]\n" + `
log_level: error
targets:
  - class: demo.Order
    arguments: [String]
  - class: demo.Pair
    bindings: {K: Long, V: Double}
`
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	out, err := runCommand(t, "run", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "demo.Order<java.lang.String>\n")
	assert.Contains(t, out, "demo.Pair<java.lang.Long, java.lang.Double>\n")
	assert.Contains(t, out, "\n\ndemo.Pair")

	out, err = runCommand(t, "run", "--format", "yaml", "-c", path)
	require.NoError(t, err)
	var reports []TypeReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	assert.Len(t, reports, 2)
}
