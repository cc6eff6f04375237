package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValidTable(t *testing.T) {
	path := writeTable(t, `
units:
  - name: furlongs
    dimension: {length: 1}
    factor: 201.168
`)
	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unit table valid")
	assert.Contains(t, out, path)
}

func TestValidateValidTableJSON(t *testing.T) {
	path := writeTable(t, `
units:
  - name: furlongs
    dimension: {length: 1}
    factor: 201.168
`)
	out, err := execute(t, "--format", "json", "validate", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, path, data["file"])
}

func TestValidateInvalidTable(t *testing.T) {
	path := writeTable(t, `
units:
  - name: furlongs
    dimension: {length: 1}
`)
	out, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, ErrCodeInvalidTable)
}

func TestValidateMissingFile(t *testing.T) {
	out, err := execute(t, "validate", "no/such/table.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNotFound)
}
