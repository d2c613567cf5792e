package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDictionary_MissingFileFallsBack(t *testing.T) {
	d, err := LoadDictionary(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDictionary(), d)
}

func TestLoadDictionary_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yml")
	content := `
dictionary:
  missing_fields: "Missing:"
  illegal_email: "Email taken"
  account_created: "Created"
  reserved_usernames: [admin, root]
  status:
    success: "OK"
    failure: "Nope"
  error:
    internal: "Internal"
    username:
      too_long: "Too long"
      occupied: "Taken"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	d, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, "Missing:", d.MissingFields)
	assert.Equal(t, []string{"admin", "root"}, d.ReservedUsernames)
	assert.Equal(t, "OK", d.Status.Success)
	assert.Equal(t, "Too long", d.Error.Username.TooLong)
	assert.Equal(t, "Taken", d.Error.Username.Occupied)
}

func TestLoadDictionary_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yml")
	require.NoError(t, os.WriteFile(path, []byte("dictionary: ["), 0o644))

	_, err := LoadDictionary(path)
	assert.Error(t, err)
}

func TestLoadVariables_MissingFileFallsBack(t *testing.T) {
	v, err := LoadVariables(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultVariables(), v)
}

func TestLoadVariables_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variables.yml")
	require.NoError(t, os.WriteFile(path, []byte("variables:\n  username_len_min: 4\n  username_len_max: 12\n"), 0o644))

	v, err := LoadVariables(path)
	require.NoError(t, err)
	assert.Equal(t, 4, v.UsernameLenMin)
	assert.Equal(t, 12, v.UsernameLenMax)
}

func TestLoadVariables_RejectsInvertedBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variables.yml")
	require.NoError(t, os.WriteFile(path, []byte("variables:\n  username_len_min: 9\n  username_len_max: 3\n"), 0o644))

	_, err := LoadVariables(path)
	assert.Error(t, err)
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "SERVER_URL", "UPLOAD_DIR", "DATA_DIR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "data", cfg.DataDir)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SERVER_URL", "https://example.test")
	cfg := FromEnv()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://example.test", cfg.ServerURL)
}
