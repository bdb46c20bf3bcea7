package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pproenca/skai-sub000/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skai.log")

	log, flush, err := logging.New(path)
	require.NoError(t, err)

	log.Info("installed skill", "name", "code-review")
	flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"installed skill"`)
	assert.Contains(t, string(data), `"code-review"`)
}

func TestNewAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skai.log")

	log, flush, err := logging.New(path)
	require.NoError(t, err)
	log.Info("first session")
	flush()

	log, flush, err = logging.New(path)
	require.NoError(t, err)
	log.Info("second session")
	flush()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first session")
	assert.Contains(t, string(data), "second session")
}

func TestNewBadPath(t *testing.T) {
	_, _, err := logging.New(filepath.Join(t.TempDir(), "missing", "skai.log"))
	assert.Error(t, err)
}

func TestVerbosityGate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skai.log")

	log, flush, err := logging.New(path)
	require.NoError(t, err)
	defer flush()

	assert.True(t, log.V(0).Enabled())
	assert.False(t, log.V(1).Enabled())
}

func TestNoop(t *testing.T) {
	assert.False(t, logging.Noop().Enabled())
}
