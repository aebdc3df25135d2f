// Package main runs an in-memory stand-in for the Reddit and collection log
// APIs so the bot can be exercised locally without real credentials.
//
// HTTP API
//
//	POST /api/v1/access_token
//	    Client-credentials token exchange. Any basic-auth pair is accepted.
//
//	GET /r/{name}/about
//	    Subreddit metadata as a t5 thing, 404 for unknown names.
//
//	GET /r/{name}/top?t=month&limit=N&after=CURSOR
//	    Listing of seeded posts, paginated with "after" cursors.
//
//	GET /items/recent/{username}
//	    The seeded collection log items for {username}, most recent first.
//
// Behaviour
//
//   - Data comes from an embedded YAML seed, or from --seed.
//   - Reddit routes require the bearer token issued by the token route.
//   - An access log records method, path, status, bytes and duration.
//   - The default listen address is :8080.
//
// Point the bot at it with
//
//	CRINKBOT_REDDIT_API_URL=http://127.0.0.1:8080
//	CRINKBOT_REDDIT_TOKEN_URL=http://127.0.0.1:8080/api/v1/access_token
//	CRINKBOT_COLLECTION_LOG_URL=http://127.0.0.1:8080
package main
