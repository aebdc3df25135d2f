package command

import "crinkbot/internal/probability"

// Command verbs, matched case-insensitively against the first token.
const (
	VerbFindMe        = "findme"
	VerbFetchLastItem = "fetch_last_item"
	VerbDropChance    = "dropchance"
	VerbHelp          = "^help"
)

// Intent is the parsed form of a command. The concrete types are
// ForumScrape, RemoteRecord, Probability and Help.
type Intent interface {
	Verb() string
	isIntent()
}

// ForumScrape picks a random top post from a subreddit.
type ForumScrape struct {
	Subreddit string
	Limit     int
}

// RemoteRecord reports a player's most recent collection log item.
type RemoteRecord struct {
	Username string
}

// Probability plots a drop chance curve.
type Probability struct {
	probability.Request
}

// Help lists the available commands.
type Help struct{}

func (ForumScrape) Verb() string  { return VerbFindMe }
func (RemoteRecord) Verb() string { return VerbFetchLastItem }
func (Probability) Verb() string  { return VerbDropChance }
func (Help) Verb() string         { return VerbHelp }

func (ForumScrape) isIntent()  {}
func (RemoteRecord) isIntent() {}
func (Probability) isIntent()  {}
func (Help) isIntent()         {}
