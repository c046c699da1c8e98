package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceccec/zeropoint/pkg/generator"
	"github.com/ceccec/zeropoint/pkg/identifier"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "PATTERN_LAYOUT", "MAX_BATCH"} {
		t.Setenv(k, "")
	}
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8095, cfg.Server.Port)
	assert.Equal(t, generator.LayoutCompat, cfg.Generator.Layout())
	assert.Equal(t, 1000, cfg.Generator.MaxBatch)
	assert.Equal(t, "info", cfg.Log.Level)

	ns, err := cfg.Generator.Namespace()
	require.NoError(t, err)
	assert.Equal(t, identifier.NamespaceURL, ns)
}

func TestFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := "generator:\n  pattern_layout: lossless\n  default_namespace: vortex\nlog:\n  pretty: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("PORT", "9100")
	t.Setenv("MAX_BATCH", "50")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Generator.MaxBatch)
	assert.Equal(t, generator.LayoutLossless, cfg.Generator.Layout())
	assert.True(t, cfg.Log.Pretty)

	ns, err := cfg.Generator.Namespace()
	require.NoError(t, err)
	assert.Equal(t, identifier.NamespaceVortex, ns)
}

func TestNamespaceLiteral(t *testing.T) {
	g := GeneratorConfig{DefaultNamespace: "6ba7b812-9dad-11d1-80b4-00c04fd430c8"}
	ns, err := g.Namespace()
	require.NoError(t, err)
	assert.Equal(t, identifier.NamespaceOID, ns)

	g.DefaultNamespace = "galaxy"
	_, err = g.Namespace()
	assert.ErrorIs(t, err, identifier.ErrMalformedIdentifier)
}

func TestInvalidMaxBatch(t *testing.T) {
	t.Setenv("MAX_BATCH", "0")
	_, err := LoadFrom(t.TempDir())
	assert.Error(t, err)
}
