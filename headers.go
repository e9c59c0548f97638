package tweetsnap

import stealth "github.com/anatolykoptev/go-stealth"

// defaultUserAgent is the fallback User-Agent when the settings document
// does not supply one.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// requestHeaders returns the headers for a GraphQL read request: the base
// set required by Twitter's API, the opaque header blob from the settings
// document layered on top, and the credential tokens injected last so the
// blob can never clobber them.
func requestHeaders(cfg *Config) map[string]string {
	h := map[string]string{
		"authorization":             "Bearer " + BearerToken,
		"x-twitter-active-user":     "yes",
		"x-twitter-auth-type":       "OAuth2Session",
		"x-twitter-client-language": "en",
		"content-type":              "application/json",
		"user-agent":                defaultUserAgent,
		"accept":                    "*/*",
		"accept-language":           "en-US,en;q=0.9",
		"accept-encoding":           "gzip, deflate, br",
		"referer":                   "https://twitter.com/",
		"origin":                    "https://twitter.com",
		"sec-fetch-dest":            "empty",
		"sec-fetch-mode":            "cors",
		"sec-fetch-site":            "same-origin",
	}
	for k, v := range cfg.Headers {
		h[k] = v
	}
	h["x-csrf-token"] = cfg.Auth.CSRFToken
	h["cookie"] = "auth_token=" + cfg.Auth.AuthToken + "; ct0=" + cfg.Auth.CSRFToken
	if ch := stealth.ClientHintsHeaders(h["user-agent"]); ch != nil {
		for k, v := range ch {
			h[k] = v
		}
	}
	return h
}

// twitterHeaderOrder is the Twitter-specific header order for TLS fingerprint consistency.
var twitterHeaderOrder = []string{
	"authorization",
	"content-type",
	"x-csrf-token",
	"x-twitter-active-user",
	"x-twitter-client-language",
	"sec-ch-ua",
	"sec-ch-ua-mobile",
	"sec-ch-ua-platform",
	"sec-fetch-dest",
	"sec-fetch-mode",
	"sec-fetch-site",
	"cookie",
	"user-agent",
	"accept",
	"accept-language",
	"accept-encoding",
}
