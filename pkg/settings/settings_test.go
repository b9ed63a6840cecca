package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CITE_API_URL", "https://cite.example.com")

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://cite.example.com", s.APIURL)
	assert.Equal(t, "wss://cite.example.com", s.HubURL, "hub url derives from api url")
	assert.Equal(t, "", s.Area)
	assert.Equal(t, 60*time.Second, s.MaxReconnectDelay)
	assert.Equal(t, 5*time.Second, s.MaxReconnectJit)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cite.yaml")
	require.NoError(t, os.WriteFile(file, []byte(
		"api_url: http://localhost:4722\narea: Admin\nui_state_dir: /tmp/cite\n",
	), 0o600))

	s, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4722", s.APIURL)
	assert.Equal(t, "ws://localhost:4722", s.HubURL)
	assert.Equal(t, "Admin", s.Area)
	assert.Equal(t, "/tmp/cite", s.UIStateDir)
}

func TestLoadRequiresAPIURL(t *testing.T) {
	t.Setenv("CITE_API_URL", "")
	_, err := Load("")
	require.Error(t, err)
}

func TestExplicitHubURLWins(t *testing.T) {
	t.Setenv("CITE_API_URL", "https://cite.example.com")
	t.Setenv("CITE_HUB_URL", "wss://hub.example.com")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "wss://hub.example.com", s.HubURL)
}
