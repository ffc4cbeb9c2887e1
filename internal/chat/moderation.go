package chat

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMask replaces each blacklisted term in relayed chat text.
const DefaultMask = "***"

// BlacklistSource supplies the current word blacklist. The admin subsystem
// owns the list; the engine only reads it, once per relayed message.
type BlacklistSource interface {
	Blacklist() []string
}

// StaticBlacklist is a fixed BlacklistSource, used by the moderation seed
// config and in tests.
type StaticBlacklist []string

func (s StaticBlacklist) Blacklist() []string { return s }

// MessageFilter masks blacklisted terms in chat text before relay. Matching
// is case-insensitive and unanchored: a term is masked wherever it occurs,
// including inside longer words. That mirrors the admin tooling's existing
// semantics; whole-word matching would silently change behavior.
type MessageFilter struct {
	source BlacklistSource
	mask   string
}

// NewMessageFilter creates a filter over source. An empty mask falls back to
// DefaultMask; a nil source disables filtering.
func NewMessageFilter(source BlacklistSource, mask string) *MessageFilter {
	if mask == "" {
		mask = DefaultMask
	}
	return &MessageFilter{source: source, mask: mask}
}

// Mask returns text with every occurrence of every blacklisted term replaced
// by the mask.
func (f *MessageFilter) Mask(text string) string {
	if f == nil || f.source == nil {
		return text
	}
	for _, word := range f.source.Blacklist() {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		text = maskAll(text, word, f.mask)
	}
	return text
}

func maskAll(text, word, mask string) string {
	lower := strings.ToLower(text)
	word = strings.ToLower(word)

	var b strings.Builder
	for {
		i := strings.Index(lower, word)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:i])
		b.WriteString(mask)
		text = text[i+len(word):]
		lower = lower[i+len(word):]
	}
}

// ParseBlacklist splits the admin-configured comma-separated list into terms,
// trimming whitespace and dropping empties.
func ParseBlacklist(s string) []string {
	var words []string
	for _, w := range strings.Split(s, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// ModerationConfig seeds the blacklist and mask from a YAML file before the
// admin subsystem has stored anything.
type ModerationConfig struct {
	Mask  string   `yaml:"mask"`
	Words []string `yaml:"words"`
}

// LoadModerationConfig reads a YAML file and returns the parsed config.
func LoadModerationConfig(path string) (*ModerationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read moderation config: %w", err)
	}
	var cfg ModerationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse moderation config: %w", err)
	}
	return &cfg, nil
}
