package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/gridcheck/internal/errors"
)

func TestRunColumns_Tabular(t *testing.T) {
	path := writeGrid(t, "users.yaml", usersGrid)

	var buf bytes.Buffer
	require.NoError(t, runColumns(testContext(t), path, false, &buf))

	output := buf.String()
	assert.Contains(t, output, "BIND TO")
	assert.Contains(t, output, "required, regex, unique-email (advisory)")
	assert.Contains(t, output, "2 row(s)")
}

func TestRunColumns_Empty(t *testing.T) {
	path := writeGrid(t, "empty.yaml", "columns: []\n")

	var buf bytes.Buffer
	require.NoError(t, runColumns(testContext(t), path, false, &buf))
	assert.Equal(t, "No columns defined.\n", buf.String())
}

func TestRunColumns_JSON(t *testing.T) {
	path := writeGrid(t, "users.yaml", usersGrid)

	var buf bytes.Buffer
	require.NoError(t, runColumns(testContext(t), path, true, &buf))

	var columns []columnInfoJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &columns))
	require.Len(t, columns, 2)

	assert.Equal(t, "email", columns[0].BindTo)
	assert.Equal(t, "text", columns[0].Type)
	require.Len(t, columns[0].Validators, 3)
	assert.True(t, columns[0].Validators[2].IgnoreViolation)

	assert.Equal(t, 1, columns[1].Index)
	assert.Equal(t, "number", columns[1].Type)
}

func TestRunColumns_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := runColumns(testContext(t), "does-not-exist.yaml", false, &buf)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}
