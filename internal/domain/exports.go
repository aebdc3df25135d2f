package domain

import (
	interfaces "crinkbot/internal/domain/interfaces"
	types "crinkbot/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID         = types.UserID
	ChannelID      = types.ChannelID
	ItemID         = types.ItemID
	Message        = types.Message
	Embed          = types.Embed
	EmbedField     = types.EmbedField
	Subreddit      = types.Subreddit
	Post           = types.Post
	CollectionItem = types.CollectionItem
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Replier        = interfaces.Replier
	Inbound        = interfaces.Inbound
	Transport      = interfaces.Transport
	MessageHandler = interfaces.MessageHandler
	ForumClient    = interfaces.ForumClient
	RecordClient   = interfaces.RecordClient
	IconStore      = interfaces.IconStore
)
