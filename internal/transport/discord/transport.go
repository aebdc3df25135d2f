package discord

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"crinkbot/internal/domain"
)

// Intents the bot needs to read guild and direct message text.
const Intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentMessageContent

// channelAPI is the subset of *discordgo.Session used to reply.
type channelAPI interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelFileSend(channelID, name string, r io.Reader, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Transport is a Discord gateway connection.
type Transport struct {
	session *discordgo.Session
	status  string
	log     *zap.Logger

	inbound chan domain.Inbound
	done    chan struct{}
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	remove  func()
}

// New creates a bot session for token. status is shown as the bot's game.
func New(log *zap.Logger, token, status string) (*Transport, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, domain.WrapError(domain.CodeFatalStartup, err, "create discord session")
	}
	s.Identify.Intents = Intents
	if log == nil {
		log = zap.NewNop()
	}
	return &Transport{
		session: s,
		status:  status,
		log:     log,
		inbound: make(chan domain.Inbound),
		done:    make(chan struct{}),
	}, nil
}

// Open connects to the gateway and sets the bot's status.
func (t *Transport) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.remove = t.session.AddHandler(t.onMessage)
	if err := t.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	if t.status != "" {
		if err := t.session.UpdateGameStatus(0, t.status); err != nil {
			t.log.Warn("set discord status", zap.Error(err))
		}
	}
	user := ""
	if t.session.State != nil && t.session.State.User != nil {
		user = t.session.State.User.Username
	}
	t.log.Info("discord connected", zap.String("user", user))
	return nil
}

// Inbound returns the message stream. It is closed by Close.
func (t *Transport) Inbound() <-chan domain.Inbound { return t.inbound }

// Close disconnects and closes the inbound stream. It is safe to call more
// than once.
func (t *Transport) Close() error {
	var err error
	t.once.Do(func() {
		close(t.done)
		if t.remove != nil {
			t.remove()
		}
		err = t.session.Close()

		t.mu.Lock()
		t.closed = true
		close(t.inbound)
		t.mu.Unlock()
	})
	return err
}

func (t *Transport) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	self := ""
	if s.State != nil && s.State.User != nil {
		self = s.State.User.ID
	}
	in, ok := toInbound(s, self, m)
	if !ok {
		return
	}
	t.deliver(in)
}

// deliver blocks until the dispatcher accepts in or the transport closes.
func (t *Transport) deliver(in domain.Inbound) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return
	}
	select {
	case t.inbound <- in:
	case <-t.done:
	}
}

func toInbound(api channelAPI, selfID string, m *discordgo.MessageCreate) (domain.Inbound, bool) {
	if m == nil || m.Message == nil || m.Author == nil {
		return domain.Inbound{}, false
	}
	msg := domain.Message{
		ID:         m.ID,
		ChannelID:  domain.ChannelID(m.ChannelID),
		AuthorID:   domain.UserID(m.Author.ID),
		AuthorName: m.Author.Username,
		SelfID:     domain.UserID(selfID),
		Content:    m.Content,
	}
	return domain.Inbound{
		Message: msg,
		Reply:   &channelReplier{api: api, channel: m.ChannelID},
	}, true
}

// channelReplier posts to one channel.
type channelReplier struct {
	api     channelAPI
	channel string
}

func (r *channelReplier) SendText(ctx context.Context, text string) error {
	_, err := r.api.ChannelMessageSend(r.channel, text, discordgo.WithContext(ctx))
	return err
}

func (r *channelReplier) SendEmbed(ctx context.Context, e domain.Embed) error {
	_, err := r.api.ChannelMessageSendEmbed(r.channel, toEmbed(e), discordgo.WithContext(ctx))
	return err
}

func (r *channelReplier) SendFile(ctx context.Context, name string, rd io.Reader) error {
	_, err := r.api.ChannelFileSend(r.channel, name, rd, discordgo.WithContext(ctx))
	return err
}

func toEmbed(e domain.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Color,
	}
	if e.ImageURL != "" {
		out.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
	}
	for _, f := range e.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return out
}

var (
	_ domain.Transport = (*Transport)(nil)
	_ domain.Replier   = (*channelReplier)(nil)
)
