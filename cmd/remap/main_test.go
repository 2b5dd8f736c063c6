package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := run(append([]string{"--no-color"}, args...), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRecibos(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "recibos", "--ignore-case")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": 26166349`)
	assert.Contains(t, out, `"codigoMunicipio": "040"`)
	assert.Contains(t, out, `"principal": 143.88`)
	assert.Contains(t, out, "null\n]")

	out, _, err = execute(t, "recibos", "--format", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "recibos.Recibo")
	assert.Contains(t, out, "Nif: (string) (len=9) \"43227891N\"")
}

func TestRecibosInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rows.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"IDRECIBO": "7", "desglose.pagado": 1}]`), 0o600))

	out, _, err := execute(t, "recibos", "--input", path, "--ignore-case", "--conversions", "text_number,unsafe_number")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": 7`)
	assert.Contains(t, out, `"pagado": 1`)

	_, _, err = execute(t, "recibos", "--input", path, "--ignore-case", "--conversions", "safe_number")
	require.Error(t, err, "string ids need text_number")
}

func TestStore(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "store", "--workers", "4")
	require.NoError(t, err)
	assert.Contains(t, out, `"full_name": "Ada Lovelace"`)
	assert.Contains(t, out, `"status": "PAID"`)
	assert.Contains(t, out, `"sku": "KB-01"`)
}

func TestExportThenCheck(t *testing.T) {
	t.Parallel()

	for _, catalog := range []string{"recibos", "store", "warehouse"} {
		t.Run(catalog, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, "export", "--catalog", catalog)
			require.NoError(t, err)
			assert.Contains(t, out, "naming: identity")

			path := filepath.Join(t.TempDir(), catalog+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

			out, _, err = execute(t, "check", path, "--catalog", catalog)
			require.NoError(t, err)
			assert.Contains(t, out, "schemas ok")
		})
	}
}

func TestCheckReportsErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
schemas:
  - type: store.Ordr
    columns: [ID]
`), 0o600))

	_, stderr, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.Order")
	assert.Contains(t, stderr, "command failed")
}

func TestBadFlags(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "recibos", "--conversions", "datetim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "datetime"`)

	_, stderr, err := execute(t, "nope")
	require.Error(t, err)
	assert.Contains(t, stderr, "remap: error:")

	_, _, err = execute(t, "recibos", "--found", "sometimes")
	require.Error(t, err)
}
