// Package reddit is the forum API client behind the findme command.
//
// It authenticates with Reddit's app-only OAuth2 flow (client credentials)
// and exposes two reads:
//   - Subreddit: resolve a community and its display name.
//   - TopPosts: page through the top listing for a time window.
//
// All requests take a context. Transport failures and unexpected statuses are
// returned as RemoteUnavailable domain errors; 403/404 and non-subreddit
// payloads are NotFound. Nothing is retried.
package reddit
