package tweetsnap

import "fmt"

const twitterBase = "https://x.com/i/api/graphql"

// bearerTokens is the list of known Twitter web-app bearer tokens.
var bearerTokens = []string{
	"AAAAAAAAAAAAAAAAAAAAANRILgAAAAAAnNwIzUejRCOuH5E6I8xnZz4puTs%3D1Zv7ttfk8LF81IUq16cHjhLTvJu4FA33AGWWjCpTnA",
	"AAAAAAAAAAAAAAAAAAAAAFQODgEAAAAAVHTp76lzh3rFzcHbmHVvQxYYpTw%3DckAlMINMjmCwxUcaXbAN4XqJVdgMJaHqNOFgPMK0zN1qLqLQCF",
}

// BearerToken is the active bearer token (first in list).
var BearerToken = bearerTokens[0]

// Shape selects which of the two GraphQL read endpoints a response came from.
type Shape int

const (
	// ShapeTweetDetail is the conversation-thread endpoint. Richer payload
	// (view counts, thread context), always tried first.
	ShapeTweetDetail Shape = iota
	// ShapeTweetResult is the single-tweet-by-id endpoint, used as fallback.
	ShapeTweetResult
)

// String returns the GraphQL operation name for the shape.
func (s Shape) String() string {
	if s == ShapeTweetResult {
		return "TweetResultByRestId"
	}
	return "TweetDetail"
}

// variableKey is the query-variable key the tweet ID is injected under.
func (s Shape) variableKey() string {
	if s == ShapeTweetResult {
		return "tweetId"
	}
	return "focalTweetId"
}

// filePrefix keys persisted raw responses by shape.
func (s Shape) filePrefix() string {
	if s == ShapeTweetResult {
		return "tweet_result"
	}
	return "tweet_detail"
}

// Endpoint holds the operation ID, path template, and per-operation feature flags.
type Endpoint struct {
	ID       string
	Name     string
	Features map[string]any
}

// URL returns the full URL for this endpoint.
func (e Endpoint) URL() string {
	return fmt.Sprintf("%s/%s/%s", twitterBase, e.ID, e.Name)
}

// Endpoints maps shapes to their current GraphQL IDs and feature flags.
var Endpoints = map[Shape]Endpoint{
	ShapeTweetDetail: {ID: "_8aYOgEDz35BrBcBal1-_w", Name: "TweetDetail", Features: gqlFeatures()},
	ShapeTweetResult: {ID: "7xflPyRiUxGVbJd4uWmbfg", Name: "TweetResultByRestId", Features: gqlFeatures()},
}

// defaultVariables returns the baseline query-variable template for a shape.
// The tweet ID is injected under variableKey() at request time.
func defaultVariables(s Shape) map[string]any {
	if s == ShapeTweetResult {
		return map[string]any{
			"withCommunity":          false,
			"includePromotedContent": false,
			"withVoice":              false,
		}
	}
	return map[string]any{
		"with_rux_injections":                    false,
		"rankingMode":                            "Relevance",
		"includePromotedContent":                 true,
		"withCommunity":                          true,
		"withQuickPromoteEligibilityTweetFields": true,
		"withBirdwatchNotes":                     true,
		"withVoice":                              true,
	}
}

// defaultFieldToggles returns the baseline fieldToggles template for a shape.
func defaultFieldToggles(s Shape) map[string]any {
	if s == ShapeTweetResult {
		return map[string]any{
			"withArticleRichContentState": true,
			"withAuxiliaryUserLabels":     false,
		}
	}
	return map[string]any{
		"withArticleRichContentState": true,
		"withArticlePlainText":        false,
		"withGrokAnalyze":             false,
		"withDisallowedReplyControls": false,
	}
}

// gqlFeatures returns the canonical Twitter GraphQL feature flags.
func gqlFeatures() map[string]any {
	return map[string]any{
		"articles_preview_enabled":                                                false,
		"c9s_tweet_anatomy_moderator_badge_enabled":                               true,
		"communities_web_enable_tweet_community_results_fetch":                    true,
		"creator_subscriptions_quote_tweet_preview_enabled":                       false,
		"creator_subscriptions_tweet_preview_api_enabled":                         true,
		"freedom_of_speech_not_reach_fetch_enabled":                               true,
		"graphql_is_translatable_rweb_tweet_is_translatable_enabled":              true,
		"longform_notetweets_consumption_enabled":                                 true,
		"longform_notetweets_inline_media_enabled":                                true,
		"longform_notetweets_rich_text_read_enabled":                              true,
		"premium_content_api_read_enabled":                                        false,
		"profile_label_improvements_pcf_label_in_post_enabled":                    false,
		"responsive_web_edit_tweet_api_enabled":                                   true,
		"responsive_web_enhance_cards_enabled":                                    false,
		"responsive_web_graphql_exclude_directive_enabled":                        true,
		"responsive_web_graphql_skip_user_profile_image_extensions_enabled":       false,
		"responsive_web_graphql_timeline_navigation_enabled":                      true,
		"responsive_web_grok_analyze_button_fetch_trends_enabled":                 false,
		"responsive_web_grok_analyze_post_followups_enabled":                      false,
		"responsive_web_grok_image_annotation_enabled":                            false,
		"responsive_web_grok_share_attachment_enabled":                            false,
		"responsive_web_media_download_video_enabled":                             false,
		"responsive_web_twitter_article_tweet_consumption_enabled":                true,
		"rweb_tipjar_consumption_enabled":                                         true,
		"rweb_video_timestamps_enabled":                                           true,
		"standardized_nudges_misinfo":                                             true,
		"tweet_awards_web_tipping_enabled":                                        false,
		"tweet_with_visibility_results_prefer_gql_limited_actions_policy_enabled": true,
		"tweet_with_visibility_results_prefer_gql_media_interstitial_enabled":     false,
		"tweetypie_unmention_optimization_enabled":                                true,
		"verified_phone_label_enabled":                                            false,
		"view_counts_everywhere_api_enabled":                                      true,
	}
}
