package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinlin24/rr-test-suite/sched/testgen"
)

func writeDefaultsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGeneratorDefaults_OverlaysBase(t *testing.T) {
	// GIVEN a defaults file setting num and the burst range only
	path := writeDefaultsFile(t, "num: 8\nburst_range: 1-5\n")

	// WHEN it is loaded over the stock config
	cfg, err := loadGeneratorDefaults(path, testgen.Default())
	require.NoError(t, err)

	// THEN set fields override and unset fields keep their defaults
	assert.Equal(t, 8, cfg.N)
	assert.Equal(t, testgen.Range{Min: 1, Max: 5}, cfg.Burst)
	assert.Equal(t, testgen.Range{Min: 0, Max: 20}, cfg.Arrival)
}

func TestLoadGeneratorDefaults_UnknownKeyRejected(t *testing.T) {
	// GIVEN a defaults file with a typoed key
	path := writeDefaultsFile(t, "bursts_range: 1-5\n")

	// WHEN it is loaded
	_, err := loadGeneratorDefaults(path, testgen.Default())

	// THEN strict parsing reports the typo instead of ignoring it
	require.Error(t, err)
}

func TestLoadGeneratorDefaults_BadRange(t *testing.T) {
	path := writeDefaultsFile(t, "arrival_range: nope\n")
	_, err := loadGeneratorDefaults(path, testgen.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arrival_range")
}

func TestLoadGeneratorDefaults_MissingFile(t *testing.T) {
	_, err := loadGeneratorDefaults(filepath.Join(t.TempDir(), "nope.yaml"), testgen.Default())
	require.Error(t, err)
}
