package check

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/backmassage/astrosave/internal/config"
	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/locate"
	"github.com/backmassage/astrosave/internal/logging"
)

// mockLogger records every line prefixed with its level.
type mockLogger struct{ lines []string }

func (m *mockLogger) add(level, format string, args ...interface{}) {
	m.lines = append(m.lines, level+" "+fmt.Sprintf(format, args...))
}
func (m *mockLogger) Info(f string, a ...interface{})    { m.add("INFO", f, a...) }
func (m *mockLogger) Success(f string, a ...interface{}) { m.add("SUCCESS", f, a...) }
func (m *mockLogger) Warn(f string, a ...interface{})    { m.add("WARN", f, a...) }
func (m *mockLogger) Error(f string, a ...interface{})   { m.add("ERROR", f, a...) }
func (m *mockLogger) Debug(f string, a ...interface{})   { m.add("DEBUG", f, a...) }

func (m *mockLogger) text() string { return strings.Join(m.lines, "\n") }

var _ Logger = (*logging.Logger)(nil)

func env(vars map[string]string) locate.LookupEnv {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestRunCheck_Found(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("/local", "Packages", "SystemEraSoftworks.Astroneer_x", "SystemAppData", "wgs", "A")
	text, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte("SAVE_1$2023.05.01-10.00.00"))
	require.NoError(t, err)
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "container.1"), text, 0o644))

	cfg := config.DefaultConfig()
	var log mockLogger
	ok := RunCheck(&cfg, fs, env(map[string]string{"LOCALAPPDATA": "/local"}), &log)

	assert.True(t, ok)
	out := log.text()
	assert.Contains(t, out, "SUCCESS LOCALAPPDATA: /local")
	assert.Contains(t, out, "INFO   "+dir+" (1 save(s), index 52 B)")
	assert.Contains(t, out, "DEBUG     SAVE_1 2023-05-01 10:00:00")
	assert.Contains(t, out, "WARN   no save root found")
	assert.Contains(t, out, "INFO Converter: none configured")
}

func TestRunCheck_NoEnvironment(t *testing.T) {
	cfg := config.DefaultConfig()
	var log mockLogger
	ok := RunCheck(&cfg, afero.NewMemMapFs(), env(nil), &log)

	assert.False(t, ok)
	assert.Contains(t, log.text(), "ERROR LOCALAPPDATA is not set")
	assert.Equal(t, 2, strings.Count(log.text(), "WARN   skipped:"))
}

func TestCheckDeps(t *testing.T) {
	withBase := env(map[string]string{"LOCALAPPDATA": "/local"})

	cfg := config.DefaultConfig()
	assert.NoError(t, CheckDeps(&cfg, withBase))

	err := CheckDeps(&cfg, env(nil))
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "LOCALAPPDATA", cfgErr.Variable)

	cfg.SaveFolder = "/saves/A"
	assert.ErrorIs(t, CheckDeps(&cfg, env(nil)), ErrConverterMissing)

	cfg.ConvertCmd = "astrosave-no-such-converter"
	assert.ErrorIs(t, CheckDeps(&cfg, env(nil)), ErrConverterNotFound)
}

func TestCheckDeps_ConverterOnPath(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not on PATH")
	}
	cfg := config.DefaultConfig()
	cfg.ConvertCmd = "true"
	assert.NoError(t, CheckDeps(&cfg, env(map[string]string{"LOCALAPPDATA": "/local"})))
}
