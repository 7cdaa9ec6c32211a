package plaza

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	d := Default()
	assert.Equal(t, "Norristown (Eastbound)", d.DisplayName("T331 E"))
	assert.Equal(t, "X999", d.DisplayName("X999"), "unknown codes pass through")
	assert.Equal(t, "—", d.DisplayName("—"))
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plazas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("T331 E: Renamed Plaza\nX100: Custom Exit\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Plaza", d.DisplayName("T331 E"))
	assert.Equal(t, "Custom Exit", d.DisplayName("X100"))
	assert.Equal(t, "Willow Grove (Eastbound)", d.DisplayName("T341 E"), "unrelated defaults survive the merge")
}

func TestLoadEmptyPath(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Norristown (Eastbound)", d.DisplayName("T331 E"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::not yaml::\n- ["), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
