package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, Config{
		ServerEndpointAddr:  "127.0.0.1:50051",
		SessionDB:           "session.db",
		RequestTimeout:      10 * time.Second,
		OnlineCheckInterval: 3 * time.Second,
	}, c)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"from-file:1","session_db":"file.db"}`), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"ak", "-c", path, "-a", "from-flag:2"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "from-flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "file.db", cfg.SessionDB)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}
