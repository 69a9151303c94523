package places

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	m := Default()

	p, ok := Resolve(m, "beijing")
	require.True(t, ok)
	assert.InDelta(t, 39.9, p.Lat, 1e-9)

	// Case-insensitive lookup.
	_, ok = Resolve(m, "Quito")
	assert.True(t, ok)

	_, ok = Resolve(m, "atlantis")
	assert.False(t, ok)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.yaml")
	data := `places:
  - name: paris
    lat: 48.86
    lon: 2.35
  - name: Beijing
    lat: 40.0
    lon: 116.4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	m, err := Load(path)
	require.NoError(t, err)

	// New entry visible.
	p, ok := Resolve(m, "paris")
	require.True(t, ok)
	assert.InDelta(t, 48.86, p.Lat, 1e-9)

	// File entry overrides the built-in, name folded to lower case.
	p, ok = Resolve(m, "beijing")
	require.True(t, ok)
	assert.InDelta(t, 40.0, p.Lat, 1e-9)

	// Untouched defaults survive the merge.
	_, ok = Resolve(m, "longyearbyen")
	assert.True(t, ok)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("places:\n  - lat: 1.0\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err, "entry without a name")

	path2 := filepath.Join(t.TempDir(), "notyaml.yaml")
	require.NoError(t, os.WriteFile(path2, []byte("{not: [valid"), 0o644))
	_, err = Load(path2)
	assert.Error(t, err)
}
