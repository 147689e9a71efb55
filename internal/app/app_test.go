package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/amazingnumbers/internal/hcl_adapter"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbers.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewApp_Defaults(t *testing.T) {
	testApp, _, _ := SetupAppTest(t, &Config{LogLevel: "warn"})

	cfg := testApp.Config()
	assert.Equal(t, "Enter a request: ", cfg.Prompt)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	require.NotNil(t, cfg.Banner)
	assert.True(t, *cfg.Banner)
	assert.NotNil(t, testApp.Registry())
}

func TestNewApp_SettingsFile(t *testing.T) {
	path := writeSettings(t, `
prompt     = "> "
banner     = false
log_level  = "error"
log_format = "json"
`)

	// Flags beat the file: log_level stays debug.
	testApp, out, logs := SetupAppTest(t, &Config{ConfigPath: path, LogLevel: "debug"})

	cfg := testApp.Config()
	assert.Equal(t, "> ", cfg.Prompt)
	assert.False(t, *cfg.Banner)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	require.NoError(t, testApp.Run(context.Background(), strings.NewReader("0\n")))
	assert.Equal(t, "> Goodbye!\n", out.String())
	assert.Contains(t, logs.String(), `"msg":"App.Run method started."`)
}

func TestNewApp_PanicsOnBadSettings(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		message string
	}{
		{name: "unparsable file", content: `prompt = `, message: "failed to load configuration"},
		{name: "invalid log level", content: `log_level = "loud"`, message: "invalid configuration"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSettings(t, tc.content)
			defer func() {
				r := recover()
				require.NotNil(t, r, "NewApp should panic")
				err, ok := r.(error)
				require.True(t, ok)
				assert.Contains(t, err.Error(), tc.message)
			}()
			NewApp(&bytes.Buffer{}, &SafeBuffer{}, &Config{ConfigPath: path}, hcl_adapter.NewLoader())
		})
	}
}

func TestNewConfig_Validation(t *testing.T) {
	_, err := NewConfig(Config{LogFormat: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-format")

	_, err = NewConfig(Config{LogLevel: "trace"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-level")

	cfg, err := NewConfig(Config{LogLevel: "info", LogFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}
