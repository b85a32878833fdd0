package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tudu/internal/model"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "todos.json")
}

func TestLoadMissingFileCreatesIt(t *testing.T) {
	path := tempPath(t)

	todos, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, todos)

	// The file must exist afterwards.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestLoadMalformedContent(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{definitely not json"), 0o644))

	todos, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestLoadEmptyContent(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	todos, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestRoundTrip(t *testing.T) {
	path := tempPath(t)
	in := model.List{
		{ID: "a", Text: "one", Status: model.StatusDone},
		{ID: "b", Text: "two", Status: model.StatusIncomplete},
	}

	require.NoError(t, Save(path, in))
	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveIsIdempotent(t *testing.T) {
	path := tempPath(t)
	todos := model.List{{ID: "a", Text: "one", Status: model.StatusIncomplete}}

	require.NoError(t, Save(path, todos))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Save(path, todos))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSaveReplacesPriorContent(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, Save(path, model.List{
		{ID: "a", Text: "one", Status: model.StatusIncomplete},
		{ID: "b", Text: "two", Status: model.StatusIncomplete},
	}))
	require.NoError(t, Save(path, model.List{
		{ID: "c", Text: "three", Status: model.StatusIncomplete},
	}))

	out, err := Load(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].ID)
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, Save(path, nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(b))
}

func TestWireFormat(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, Save(path, model.List{
		{ID: "a", Text: "one", Status: model.StatusDone},
	}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]string
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "a", raw[0]["id"])
	assert.Equal(t, "one", raw[0]["todo"])
	assert.Equal(t, "Done", raw[0]["status"])
}
