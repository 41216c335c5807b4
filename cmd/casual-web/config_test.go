package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, "")
	require.NoError(t, err)

	assert.False(t, cfg.Production())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, 255*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "casual-cli", cfg.CLI.Binary)
	assert.Equal(t, "./public", cfg.UI.PublicDir)
	assert.Equal(t, "../public/pdfs", cfg.UI.OutputDir)
	assert.Equal(t, "/pdfs", cfg.UI.PDFPrefix)
	assert.Equal(t, 10, cfg.UI.Retries)
	assert.Equal(t, time.Second, cfg.UI.Interval)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("CCLI_OUTPUT_DIR", "/srv/pdfs")
	t.Setenv("CASUAL_WEB_SERVER_ADDR", ":8080")

	cfg, err := loadConfig(nil, "")
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/srv/pdfs", cfg.UI.OutputDir)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadConfigFileAndFlags(t *testing.T) {
	file := filepath.Join(t.TempDir(), "casual-web.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
log_level = "debug"

[server]
addr = ":4000"

[ui]
retries = 3
interval = "250ms"
`), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", defaultAddr, "")
	require.NoError(t, flags.Parse([]string{"--addr", ":5000"}))

	cfg, err := loadConfig(flags, file)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":5000", cfg.Server.Addr, "flags win over the file")
	assert.Equal(t, 3, cfg.UI.Retries)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.Interval)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(nil, filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	t.Setenv("CASUAL_WEB_LOG_LEVEL", "loud")
	_, err = loadConfig(nil, "")
	assert.Error(t, err)
}

func TestDumpConfig(t *testing.T) {
	cfg, err := loadConfig(nil, "")
	require.NoError(t, err)

	b, err := dumpConfig(cfg)
	require.NoError(t, err)
	out := string(b)

	for _, want := range []string{"[server]", ":3000", "4m15s", "[cli]", "casual-cli", "[ui]", "/pdfs", "1s"} {
		assert.Contains(t, out, want)
	}

	// the dump reads back as the same configuration
	file := filepath.Join(t.TempDir(), "dump.toml")
	require.NoError(t, os.WriteFile(file, b, 0o644))
	again, err := loadConfig(nil, file)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &appConfig{LogLevel: "info"})

	logger.Debug("hidden")
	logger.Info("listening", "addr", ":3000")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "casual-web")
	assert.Contains(t, out, "listening")
	assert.Contains(t, out, ":3000")
}

func TestNewLoggerProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &appConfig{Env: "production", LogLevel: "info"})

	logger.Warn("cli failed", "command", "ls")

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "{"), line)
	assert.Contains(t, line, `"msg":"cli failed"`)
}
