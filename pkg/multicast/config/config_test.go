package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/multicast/pkg/multicast/config"
)

func TestDefault(t *testing.T) {
	s := config.Default()

	assert.Equal(t, 0, s.PoolSize)
	assert.Equal(t, "multicast", s.Observer.Name)
	assert.False(t, s.Observer.Metrics)
	assert.False(t, s.Observer.Tracing)
	assert.NoError(t, s.Validate())
}

func TestFromYAML(t *testing.T) {
	data := []byte(`
pool_size: 8
observer:
  name: orders
  metrics: true
  tracing: true
`)

	s, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, 8, s.PoolSize)
	assert.Equal(t, "orders", s.Observer.Name)
	assert.True(t, s.Observer.Metrics)
	assert.True(t, s.Observer.Tracing)
}

func TestFromYAML_PartialKeepsDefaults(t *testing.T) {
	s, err := config.FromYAML([]byte("pool_size: 2"))
	require.NoError(t, err)

	assert.Equal(t, 2, s.PoolSize)
	assert.Equal(t, "multicast", s.Observer.Name)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Run("malformed document", func(t *testing.T) {
		_, err := config.FromYAML([]byte("pool_size: [not an int"))
		assert.Error(t, err)
	})

	t.Run("negative pool size", func(t *testing.T) {
		_, err := config.FromYAML([]byte("pool_size: -1"))
		assert.Error(t, err)
	})
}

func TestFromJSON(t *testing.T) {
	data := []byte(`{"pool_size": 4, "observer": {"name": "audit", "metrics": true}}`)

	s, err := config.FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, 4, s.PoolSize)
	assert.Equal(t, "audit", s.Observer.Name)
	assert.True(t, s.Observer.Metrics)
	assert.False(t, s.Observer.Tracing)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pool_size: 6"), 0o600))

		s, err := config.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 6, s.PoolSize)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "settings.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"pool_size": 7}`), 0o600))

		s, err := config.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 7, s.PoolSize)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "settings.toml")
		require.NoError(t, os.WriteFile(path, []byte("pool_size = 1"), 0o600))

		_, err := config.FromFile(path)
		assert.ErrorContains(t, err, "unsupported settings file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	s := config.Default()
	s.PoolSize = -5
	assert.ErrorContains(t, s.Validate(), "pool_size")
}
