package tweetsnap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AuthConfig holds the two credential tokens injected into request
// headers and cookies.
type AuthConfig struct {
	AuthToken string `json:"auth_token"`
	CSRFToken string `json:"csrf_token"`
}

// EndpointURLs overrides the built-in GraphQL endpoint URLs.
type EndpointURLs struct {
	TweetDetail string `json:"tweet_detail"`
	TweetResult string `json:"tweet_result"`
}

// Config is the settings document for the client. Loaded once at startup
// and treated as read-only afterwards. The variable/feature/fieldToggle
// maps are opaque blobs passed through to the API; the only key the client
// touches is the per-shape tweet-ID injection key.
type Config struct {
	Auth         AuthConfig        `json:"auth"`
	Headers      map[string]string `json:"headers"`
	APIEndpoints EndpointURLs      `json:"api_endpoints"`

	TweetDetailVariables    map[string]any `json:"tweet_detail_variables"`
	TweetDetailFeatures     map[string]any `json:"tweet_detail_features"`
	TweetDetailFieldToggles map[string]any `json:"tweet_detail_field_toggles"`

	TweetResultVariables    map[string]any `json:"tweet_result_variables"`
	TweetResultFeatures     map[string]any `json:"tweet_result_features"`
	TweetResultFieldToggles map[string]any `json:"tweet_result_field_toggles"`

	// DefaultTweetID is used by the CLI when no tweet ID argument is given.
	DefaultTweetID string `json:"default_tweet_id"`

	// OutputDir is where raw responses and extracted records are written.
	OutputDir string `json:"output_dir"`
}

// LoadConfig reads the settings document from settingsDir/config.json,
// applies credential overrides from the environment, and fills defaults.
func LoadConfig(settingsDir string) (*Config, error) {
	path := filepath.Join(settingsDir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()
	cfg.defaults()
	return &cfg, nil
}

// applyEnv lets credential tokens come from the environment instead of
// the settings file.
func (cfg *Config) applyEnv() {
	if v := os.Getenv("TWITTER_AUTH_TOKEN"); v != "" {
		cfg.Auth.AuthToken = v
	}
	if v := os.Getenv("TWITTER_CSRF_TOKEN"); v != "" {
		cfg.Auth.CSRFToken = v
	}
}

// defaults fills missing config fields with the built-in endpoint table
// and templates, so a settings file carrying only auth tokens works.
func (cfg *Config) defaults() {
	if cfg.APIEndpoints.TweetDetail == "" {
		cfg.APIEndpoints.TweetDetail = Endpoints[ShapeTweetDetail].URL()
	}
	if cfg.APIEndpoints.TweetResult == "" {
		cfg.APIEndpoints.TweetResult = Endpoints[ShapeTweetResult].URL()
	}
	if cfg.TweetDetailVariables == nil {
		cfg.TweetDetailVariables = defaultVariables(ShapeTweetDetail)
	}
	if cfg.TweetDetailFeatures == nil {
		cfg.TweetDetailFeatures = Endpoints[ShapeTweetDetail].Features
	}
	if cfg.TweetDetailFieldToggles == nil {
		cfg.TweetDetailFieldToggles = defaultFieldToggles(ShapeTweetDetail)
	}
	if cfg.TweetResultVariables == nil {
		cfg.TweetResultVariables = defaultVariables(ShapeTweetResult)
	}
	if cfg.TweetResultFeatures == nil {
		cfg.TweetResultFeatures = Endpoints[ShapeTweetResult].Features
	}
	if cfg.TweetResultFieldToggles == nil {
		cfg.TweetResultFieldToggles = defaultFieldToggles(ShapeTweetResult)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
}

// shapeConfig returns the endpoint URL and request templates for a shape.
func (cfg *Config) shapeConfig(s Shape) (url string, variables, features, fieldToggles map[string]any) {
	if s == ShapeTweetResult {
		return cfg.APIEndpoints.TweetResult, cfg.TweetResultVariables, cfg.TweetResultFeatures, cfg.TweetResultFieldToggles
	}
	return cfg.APIEndpoints.TweetDetail, cfg.TweetDetailVariables, cfg.TweetDetailFeatures, cfg.TweetDetailFieldToggles
}
