package interfaces

import (
	"context"

	domaintypes "crinkbot/internal/domain/types"
)

// ForumClient queries the forum API (Reddit) for communities and listings.
type ForumClient interface {
	Subreddit(ctx context.Context, name string) (domaintypes.Subreddit, error)
	TopPosts(ctx context.Context, name, window string, limit int) ([]domaintypes.Post, error)
}

// RecordClient fetches remote collection-log records.
type RecordClient interface {
	Recent(ctx context.Context, username string) (domaintypes.CollectionItem, error)
}
