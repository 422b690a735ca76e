package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSession_Missing(t *testing.T) {
	s, err := LoadSession(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.False(t, s.LoggedIn())
	assert.NoError(t, s.Clear())
}

func TestLoadSession_HalfWrittenIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"orphan"}`), 0o600))

	s, err := LoadSession(path)
	require.NoError(t, err)
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token)
}

func TestLoadSession_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := LoadSession(path)
	assert.Error(t, err)
}

func TestSession_SaveCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s, err := LoadSession(path)
	require.NoError(t, err)

	require.NoError(t, s.Save("tok", &User{ID: "u1"}))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
