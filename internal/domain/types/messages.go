package types

// Message is one inbound chat message as delivered by the transport.
type Message struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id,omitempty"`
	ChannelID  ChannelID `json:"channel_id"`
	AuthorID   UserID    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	// SelfID is the bot's own identity on the transport at delivery time.
	SelfID  UserID `json:"self_id"`
	Content string `json:"content"`
}

// FromSelf reports whether the bot authored the message.
func (m Message) FromSelf() bool {
	return m.SelfID != "" && m.AuthorID == m.SelfID
}

// EmbedField is a name/value row inside an Embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Embed is a rich reply card. ImageURL is optional.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	ImageURL    string       `json:"image_url,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}
