// Package settings loads runtime configuration from the environment and
// an optional config file.
package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds everything a client needs to talk to a CITE deployment.
type Settings struct {
	// APIURL is the REST endpoint base, e.g. https://cite.example.com.
	APIURL string `mapstructure:"api_url"`
	// HubURL is the websocket hub base, e.g. wss://cite.example.com.
	// Empty means derive from APIURL by swapping the scheme.
	HubURL string `mapstructure:"hub_url"`
	// Area selects the hub group to join: "" for the home area or
	// "Admin" for the administrative one.
	Area string `mapstructure:"area"`

	MaxReconnectDelay time.Duration `mapstructure:"max_reconnect_delay"`
	MinReconnectJit   time.Duration `mapstructure:"min_reconnect_jitter"`
	MaxReconnectJit   time.Duration `mapstructure:"max_reconnect_jitter"`

	// UIStateDir is where persisted interface preferences live.
	UIStateDir string `mapstructure:"ui_state_dir"`
}

// Load reads settings from CITE_* environment variables and, when file
// is non-empty, from that config file. File values lose to environment
// values.
func Load(file string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("cite")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees keys viper already knows about, so keys
	// without defaults must be bound explicitly for env-only loading.
	for _, key := range []string{"api_url", "hub_url"} {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	v.SetDefault("area", "")
	v.SetDefault("max_reconnect_delay", 60*time.Second)
	v.SetDefault("min_reconnect_jitter", 0*time.Second)
	v.SetDefault("max_reconnect_jitter", 5*time.Second)
	v.SetDefault("ui_state_dir", ".cite")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if s.APIURL == "" {
		return Settings{}, fmt.Errorf("api_url is required")
	}
	if s.HubURL == "" {
		s.HubURL = deriveHubURL(s.APIURL)
	}
	return s, nil
}

// deriveHubURL swaps http(s) for ws(s), leaving other schemes alone.
func deriveHubURL(apiURL string) string {
	switch {
	case strings.HasPrefix(apiURL, "https://"):
		return "wss://" + strings.TrimPrefix(apiURL, "https://")
	case strings.HasPrefix(apiURL, "http://"):
		return "ws://" + strings.TrimPrefix(apiURL, "http://")
	default:
		return apiURL
	}
}
