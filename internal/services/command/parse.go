package command

import (
	"strconv"
	"strings"

	"crinkbot/internal/domain"
	"crinkbot/internal/probability"
)

const (
	// DefaultLimit applies when findme is given no limit.
	DefaultLimit = 100
	// MaxLimit caps how many posts findme will page through.
	MaxLimit = 1000
)

// LeadingVerb returns the lowercased first token of text.
func LeadingVerb(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// Parse maps text to an Intent. Text that is not a command yields a nil
// Intent and a nil error. Bad arguments yield an InvalidArgument error.
func Parse(text string) (Intent, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, nil
	}
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case VerbFindMe:
		return parseFindMe(args)
	case VerbFetchLastItem:
		name := strings.ToLower(strings.Join(args, " "))
		if name == "" {
			return nil, domain.NewError(domain.CodeInvalidArgument, "fetch_last_item needs a username")
		}
		return RemoteRecord{Username: name}, nil
	case VerbDropChance:
		return parseDropChance(args)
	case VerbHelp:
		if len(args) == 0 {
			return Help{}, nil
		}
	}
	return nil, nil
}

func parseFindMe(args []string) (Intent, error) {
	if len(args) == 0 {
		return nil, domain.NewError(domain.CodeInvalidArgument, "findme needs a subreddit")
	}
	in := ForumScrape{Subreddit: args[0], Limit: DefaultLimit}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return nil, domain.NewError(domain.CodeInvalidArgument, "findme limit must be a positive integer, got %q", args[1])
		}
		in.Limit = min(n, MaxLimit)
	}
	return in, nil
}

func parseDropChance(args []string) (Intent, error) {
	if len(args) < 2 {
		return nil, domain.NewError(domain.CodeInvalidArgument, "dropchance needs trials and odds")
	}
	trials, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, domain.NewError(domain.CodeInvalidArgument, "trials must be an integer, got %q", args[0])
	}
	odds, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, domain.NewError(domain.CodeInvalidArgument, "odds must be an integer, got %q", args[1])
	}
	req := probability.Request{Trials: trials, Odds: odds}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return Probability{Request: req}, nil
}
