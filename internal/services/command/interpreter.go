package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"crinkbot/internal/chart"
	"crinkbot/internal/domain"
	"crinkbot/internal/probability"
	"crinkbot/internal/store"
)

const (
	embedTitle       = "Crink Bot"
	embedDescription = "Crink's discord bot"
	embedColor       = 0x4B0082

	// forumWindow is the listing window findme samples from.
	forumWindow = "month"

	genericFailure = "Something went wrong handling that command."
)

// ChartRenderer renders a drop chance chart into a temporary file.
type ChartRenderer interface {
	RenderTemp(req probability.Request) (chart.Artifact, error)
}

// Option customises an Interpreter.
type Option func(*Interpreter)

// WithPicker replaces the uniform random choice used by findme. pick(n)
// must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(i *Interpreter) { i.pick = pick }
}

// WithCatalog replaces the embedded command catalog.
func WithCatalog(c Catalog) Option {
	return func(i *Interpreter) { i.catalog = c }
}

// Interpreter handles chat messages. It is safe for concurrent use.
type Interpreter struct {
	log     *zap.Logger
	forum   domain.ForumClient
	records domain.RecordClient
	icons   domain.IconStore
	charts  ChartRenderer
	catalog Catalog
	pick    func(n int) int

	mu     sync.Mutex
	counts map[domain.UserID]int
}

// New constructs an Interpreter over its collaborators.
func New(
	log *zap.Logger,
	forum domain.ForumClient,
	records domain.RecordClient,
	icons domain.IconStore,
	charts ChartRenderer,
	opts ...Option,
) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	i := &Interpreter{
		log:     log,
		forum:   forum,
		records: records,
		icons:   icons,
		charts:  charts,
		catalog: DefaultCatalog(),
		pick:    rand.IntN,
		counts:  make(map[domain.UserID]int),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Count returns how many findme messages user has sent since startup.
func (i *Interpreter) Count(user domain.UserID) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.counts[user]
}

func (i *Interpreter) increment(user domain.UserID) {
	i.mu.Lock()
	i.counts[user]++
	i.mu.Unlock()
}

// Handle parses msg and runs the matching command. Failures are reported
// on reply; nothing is returned to the caller.
func (i *Interpreter) Handle(ctx context.Context, msg domain.Message, reply domain.Replier) {
	if msg.FromSelf() {
		return
	}
	verb := LeadingVerb(msg.Content)
	if verb == VerbFindMe {
		i.increment(msg.AuthorID)
	}

	log := i.log.With(
		zap.String("request_id", msg.RequestID),
		zap.String("author", msg.AuthorID.String()),
		zap.String("channel", msg.ChannelID.String()),
	)

	intent, err := Parse(msg.Content)
	if err != nil {
		i.fail(ctx, log, verb, err, reply)
		return
	}
	if intent == nil {
		return
	}

	log = log.With(zap.String("intent", intent.Verb()))
	log.Debug("handling command")
	if err := i.run(ctx, log, intent, reply); err != nil {
		i.fail(ctx, log, intent.Verb(), err, reply)
		return
	}
	log.Debug("command done")
}

func (i *Interpreter) run(ctx context.Context, log *zap.Logger, intent Intent, reply domain.Replier) error {
	switch in := intent.(type) {
	case Help:
		return i.help(ctx, reply)
	case ForumScrape:
		return i.findMe(ctx, in, reply)
	case RemoteRecord:
		return i.lastItem(ctx, log, in, reply)
	case Probability:
		return i.dropChance(ctx, log, in, reply)
	default:
		return fmt.Errorf("unhandled intent %T", intent)
	}
}

func (i *Interpreter) help(ctx context.Context, reply domain.Replier) error {
	embed := domain.Embed{Title: embedTitle, Description: embedDescription, Color: embedColor}
	for _, s := range i.catalog {
		if !s.Listed {
			continue
		}
		embed.Fields = append(embed.Fields, domain.EmbedField{
			Name:  s.Usage,
			Value: s.Description,
		})
	}
	return sent(reply.SendEmbed(ctx, embed))
}

func (i *Interpreter) findMe(ctx context.Context, in ForumScrape, reply domain.Replier) error {
	sub, err := i.forum.Subreddit(ctx, in.Subreddit)
	if err != nil {
		return err
	}
	progress := fmt.Sprintf("...parsing the top %d posts from the %s subreddit for the past month...",
		in.Limit, sub.DisplayName)
	if err := reply.SendText(ctx, progress); err != nil {
		return sent(err)
	}

	posts, err := i.forum.TopPosts(ctx, sub.Name, forumWindow, in.Limit)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return domain.NewError(domain.CodeNotFound, "no posts found in r/%s for the past month", sub.DisplayName)
	}

	post := posts[i.pick(len(posts))]
	if post.IsImage() {
		return sent(reply.SendEmbed(ctx, domain.Embed{
			Title:    embedTitle,
			Color:    embedColor,
			ImageURL: post.URL,
		}))
	}
	return sent(reply.SendText(ctx, post.URL))
}

func (i *Interpreter) lastItem(ctx context.Context, log *zap.Logger, in RemoteRecord, reply domain.Replier) error {
	item, err := i.records.Recent(ctx, in.Username)
	if err != nil {
		return err
	}

	img, err := i.icons.Lookup(item.ID)
	switch {
	case err == nil:
		if err := reply.SendFile(ctx, store.IconFileName(item.ID, img), bytes.NewReader(img)); err != nil {
			return sent(err)
		}
	case domain.ErrorCode(err) == domain.CodeNotFound:
		log.Info("icon missing", zap.String("item", item.ID.String()))
		if err := reply.SendText(ctx, domain.ErrorMessage(err)); err != nil {
			return sent(err)
		}
	default:
		return err
	}

	summary := fmt.Sprintf("%s's last collection log slot obtained was %s on %s",
		in.Username, item.Name, item.ObtainedDate())
	return sent(reply.SendText(ctx, summary))
}

func (i *Interpreter) dropChance(ctx context.Context, log *zap.Logger, in Probability, reply domain.Replier) error {
	art, err := i.charts.RenderTemp(in.Request)
	if err != nil {
		return err
	}
	defer func() {
		if err := art.Remove(); err != nil {
			log.Warn("remove chart", zap.String("path", art.Path), zap.Error(err))
		}
	}()

	f, err := art.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	return sent(reply.SendFile(ctx, art.Name, f))
}

// replyError marks a failure to deliver a reply. It is logged, never
// answered with another reply.
type replyError struct{ err error }

func (e *replyError) Error() string { return "send reply: " + e.err.Error() }
func (e *replyError) Unwrap() error { return e.err }

func sent(err error) error {
	if err == nil {
		return nil
	}
	return &replyError{err: err}
}

// fail turns err into exactly one reply for the command named verb.
func (i *Interpreter) fail(ctx context.Context, log *zap.Logger, verb string, err error, reply domain.Replier) {
	var re *replyError
	if errors.As(err, &re) {
		log.Warn("reply failed", zap.Error(err))
		return
	}

	text := i.failureText(verb, err)
	switch domain.ErrorCode(err) {
	case domain.CodeInvalidArgument, domain.CodeNotFound:
		log.Info("command rejected", zap.Error(err))
	default:
		log.Error("command failed", zap.Error(err))
	}
	if sendErr := reply.SendText(ctx, text); sendErr != nil {
		log.Warn("reply failed", zap.Error(sendErr))
	}
}

func (i *Interpreter) failureText(verb string, err error) string {
	switch domain.ErrorCode(err) {
	case domain.CodeInvalidArgument:
		if hint := i.catalog.UsageHint(verb); hint != "" {
			return hint
		}
		return domain.ErrorMessage(err)
	case domain.CodeNotFound:
		return domain.ErrorMessage(err)
	case domain.CodeRemoteUnavailable:
		return fmt.Sprintf("Sorry, %s is unavailable right now.", serviceName(verb))
	default:
		return genericFailure
	}
}

func serviceName(verb string) string {
	switch verb {
	case VerbFindMe:
		return "Reddit"
	case VerbFetchLastItem:
		return "the collection log"
	default:
		return "that service"
	}
}

var _ domain.MessageHandler = (*Interpreter)(nil)
