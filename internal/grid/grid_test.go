package grid

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "input.json", `{"bigger_than": {"a": "n", "b": 0.5}}`)

	formulas, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, formulas, 1)
	require.Equal(t, DefaultFormulaName, formulas[0].Name)

	root := formulas[0].Root
	require.True(t, root.Type().IsObjectType())
	require.Equal(t, 1, root.LengthInt())

	args := root.GetAttr("bigger_than")
	require.True(t, args.GetAttr("a").RawEquals(cty.StringVal("n")))
	require.True(t, args.GetAttr("b").Type().Equals(cty.Number))
}

func TestLoad_JSONInvalid(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "broken.json", `{"unterminated": `)
	_, err := Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoad_HCL(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "input.hcl", `
formula "integrality" {
  expr = { is_integer = { a = "n" } }
}

formula "positivity" {
  expr = { bigger_than = { a = "n", b = 0 } }
}
`)

	formulas, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, formulas, 2)

	// Declaration order is preserved.
	require.Equal(t, "integrality", formulas[0].Name)
	require.Equal(t, "positivity", formulas[1].Name)

	require.Equal(t, 1, formulas[0].Root.LengthInt())
	inner := formulas[0].Root.GetAttr("is_integer")
	require.True(t, inner.GetAttr("a").RawEquals(cty.StringVal("n")))
}

func TestLoad_HCLDuplicateNames(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "input.hcl", `
formula "same" {
  expr = { is_integer = { a = "n" } }
}

formula "same" {
  expr = { is_integer = { a = "m" } }
}
`)

	_, err := Load(context.Background(), path)
	require.ErrorContains(t, err, `duplicate formula name "same"`)
}

func TestLoad_HCLWithoutFormulas(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.hcl", "\n")
	_, err := Load(context.Background(), path)
	require.ErrorContains(t, err, "no formula blocks")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "input.yaml", "a: 1\n")
	_, err := Load(context.Background(), path)
	require.ErrorContains(t, err, "unsupported input extension")
}
