package types

// UserID is the transport's stable identifier for a message author.
type UserID string

// String returns the string form of the user identifier.
func (id UserID) String() string { return string(id) }

// ChannelID identifies the channel a message arrived on and replies go to.
type ChannelID string

// String returns the string form of the channel identifier.
func (id ChannelID) String() string { return string(id) }

// ItemID is the collection-log item identifier, also the icon dataset key.
type ItemID string

// String returns the string form of the item identifier.
func (id ItemID) String() string { return string(id) }
