package tweetsnap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig_MinimalDocument(t *testing.T) {
	dir := writeSettings(t, `{"auth": {"auth_token": "tok", "csrf_token": "csrf"}}`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "tok", cfg.Auth.AuthToken)
	require.Equal(t, "csrf", cfg.Auth.CSRFToken)

	// Defaults fill everything the document omitted.
	require.Equal(t, Endpoints[ShapeTweetDetail].URL(), cfg.APIEndpoints.TweetDetail)
	require.Equal(t, Endpoints[ShapeTweetResult].URL(), cfg.APIEndpoints.TweetResult)
	require.NotEmpty(t, cfg.TweetDetailVariables)
	require.NotEmpty(t, cfg.TweetDetailFeatures)
	require.NotEmpty(t, cfg.TweetResultVariables)
	require.Equal(t, "output", cfg.OutputDir)
}

func TestLoadConfig_DocumentOverridesDefaults(t *testing.T) {
	dir := writeSettings(t, `{
		"auth": {"auth_token": "tok", "csrf_token": "csrf"},
		"api_endpoints": {"tweet_detail": "https://proxy.example/TweetDetail"},
		"tweet_detail_variables": {"withVoice": false},
		"output_dir": "archive",
		"default_tweet_id": "42"
	}`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "https://proxy.example/TweetDetail", cfg.APIEndpoints.TweetDetail)
	require.Equal(t, map[string]any{"withVoice": false}, cfg.TweetDetailVariables)
	require.Equal(t, "archive", cfg.OutputDir)
	require.Equal(t, "42", cfg.DefaultTweetID)
	// Untouched sections still get defaults.
	require.Equal(t, Endpoints[ShapeTweetResult].URL(), cfg.APIEndpoints.TweetResult)
}

func TestLoadConfig_EnvOverridesCredentials(t *testing.T) {
	dir := writeSettings(t, `{"auth": {"auth_token": "file-tok", "csrf_token": "file-csrf"}}`)
	t.Setenv("TWITTER_AUTH_TOKEN", "env-tok")
	t.Setenv("TWITTER_CSRF_TOKEN", "env-csrf")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "env-tok", cfg.Auth.AuthToken)
	require.Equal(t, "env-csrf", cfg.Auth.CSRFToken)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := writeSettings(t, `{broken`)
	_, err := LoadConfig(dir)
	require.Error(t, err)
}

func TestShapeConfig(t *testing.T) {
	cfg := &Config{}
	cfg.defaults()

	url, vars, features, toggles := cfg.shapeConfig(ShapeTweetResult)
	require.Equal(t, cfg.APIEndpoints.TweetResult, url)
	require.Equal(t, cfg.TweetResultVariables, vars)
	require.Equal(t, cfg.TweetResultFeatures, features)
	require.Equal(t, cfg.TweetResultFieldToggles, toggles)

	url, vars, _, _ = cfg.shapeConfig(ShapeTweetDetail)
	require.Equal(t, cfg.APIEndpoints.TweetDetail, url)
	require.Equal(t, cfg.TweetDetailVariables, vars)
}

func TestShapeAccessors(t *testing.T) {
	require.Equal(t, "TweetDetail", ShapeTweetDetail.String())
	require.Equal(t, "TweetResultByRestId", ShapeTweetResult.String())
	require.Equal(t, "focalTweetId", ShapeTweetDetail.variableKey())
	require.Equal(t, "tweetId", ShapeTweetResult.variableKey())
	require.Equal(t, "tweet_detail", ShapeTweetDetail.filePrefix())
	require.Equal(t, "tweet_result", ShapeTweetResult.filePrefix())
}
