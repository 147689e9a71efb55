package app

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/amazingnumbers/internal/hcl_adapter"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance with debug logging captured in a buffer.
func SetupAppTest(t *testing.T, appConfig *Config) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "debug"
	}
	testApp := NewApp(out, logBuffer, appConfig, hcl_adapter.NewLoader())

	t.Cleanup(func() {
		if os.Getenv("AMAZING_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}

// runSession feeds lines to a fresh app and returns everything it printed.
func runSession(t *testing.T, lines ...string) string {
	t.Helper()
	testApp, out, _ := SetupAppTest(t, &Config{})
	err := testApp.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"))
	require.NoError(t, err)
	return out.String()
}
