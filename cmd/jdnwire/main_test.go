package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdn-utils/jdnutils/pkg/config"
	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"
)

// testLogWriter routes log output through t.Log (t.Output requires Go 1.25).
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(tint.NewHandler(testLogWriter{t}, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
}

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func testProfiles(t *testing.T) *config.Profiles {
	t.Helper()
	path := writeTemp(t, "profiles.yaml", []byte(`
fields:
  user_id:
    name: "User ID"
    max_length: 5
    restricted: ";,"
`))
	p, err := config.LoadProfiles(path)
	require.NoError(t, err)
	return p
}

func TestNewLogger_Levels(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		verbosity int
		info      bool
		debug     bool
	}{
		{0, false, false},
		{1, true, false},
		{2, true, true},
		{5, true, true},
	}
	for _, tt := range tests {
		logger := newLogger(&bytes.Buffer{}, tt.verbosity)
		require.True(t, logger.Enabled(ctx, slog.LevelWarn))
		require.Equal(t, tt.info, logger.Enabled(ctx, slog.LevelInfo), "verbosity %d", tt.verbosity)
		require.Equal(t, tt.debug, logger.Enabled(ctx, slog.LevelDebug), "verbosity %d", tt.verbosity)
	}
}

func TestLoadProfiles_Default(t *testing.T) {
	cli := CLI{}
	p, err := cli.loadProfiles(testLogger(t))
	require.NoError(t, err)
	require.NotNil(t, p)

	label, c := p.Field("anything")
	require.Equal(t, "anything", label)
	require.Equal(t, 255, c.MaxLength)
}

func TestLoadProfiles_Missing(t *testing.T) {
	cli := CLI{Profiles: filepath.Join(t.TempDir(), "nope.yaml")}
	_, err := cli.loadProfiles(testLogger(t))
	require.Error(t, err)
}
