package command

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Spec describes one chat command.
type Spec struct {
	Name        string `yaml:"name"`
	Usage       string `yaml:"usage"`
	Example     string `yaml:"example"`
	Description string `yaml:"description"`
	Listed      bool   `yaml:"listed"`
}

// Catalog is the ordered list of known commands.
type Catalog []Spec

// ParseCatalog decodes a YAML command list.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse command catalog: %w", err)
	}
	for i, s := range c {
		if s.Name == "" || s.Example == "" {
			return nil, fmt.Errorf("parse command catalog: entry %d needs name and example", i)
		}
	}
	return c, nil
}

var builtin = mustCatalog(catalogYAML)

func mustCatalog(data []byte) Catalog {
	c, err := ParseCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the embedded command catalog.
func DefaultCatalog() Catalog {
	out := make(Catalog, len(builtin))
	copy(out, builtin)
	return out
}

// Lookup returns the entry named name.
func (c Catalog) Lookup(name string) (Spec, bool) {
	for _, s := range c {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// UsageHint is the reply sent when a command's arguments do not parse.
func (c Catalog) UsageHint(name string) string {
	s, ok := c.Lookup(name)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Example command usage: ```%s```", s.Example)
}
