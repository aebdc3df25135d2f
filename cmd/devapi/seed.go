package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedPost struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

type seedSubreddit struct {
	Name  string     `yaml:"name"`
	Posts []seedPost `yaml:"posts"`
}

type seedItem struct {
	ID         int    `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	ObtainedAt string `yaml:"obtainedAt" json:"obtainedAt"`
}

type seed struct {
	Subreddits []seedSubreddit       `yaml:"subreddits"`
	Players    map[string][]seedItem `yaml:"players"`
}

func parseSeed(data []byte) (seed, error) {
	var s seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return seed{}, fmt.Errorf("parse seed: %w", err)
	}
	players := make(map[string][]seedItem, len(s.Players))
	for name, items := range s.Players {
		players[strings.ToLower(name)] = items
	}
	s.Players = players
	return s, nil
}

func loadSeed(path string) (seed, error) {
	if path == "" {
		return parseSeed(defaultSeed)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return seed{}, err
	}
	return parseSeed(data)
}
