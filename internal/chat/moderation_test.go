package chat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMessageFilter_MasksCaseInsensitiveSubstrings(t *testing.T) {
	f := NewMessageFilter(StaticBlacklist{"bad"}, "")

	got := f.Mask("this is BAD and badly")
	want := "this is *** and ***ly"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMessageFilter_MultipleWords(t *testing.T) {
	f := NewMessageFilter(StaticBlacklist{"foo", "bar"}, "")

	got := f.Mask("foo met BAR at the foobar")
	want := "*** met *** at the ******"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestMessageFilter_CustomMask(t *testing.T) {
	f := NewMessageFilter(StaticBlacklist{"x"}, "[redacted]")
	if got := f.Mask("x marks"); got != "[redacted] marks" {
		t.Errorf("got %q", got)
	}
}

func TestMessageFilter_EmptyAndBlankTermsIgnored(t *testing.T) {
	f := NewMessageFilter(StaticBlacklist{"", "  "}, "")
	if got := f.Mask("unchanged"); got != "unchanged" {
		t.Errorf("got %q", got)
	}
}

func TestMessageFilter_NilFilterPassesThrough(t *testing.T) {
	var f *MessageFilter
	if got := f.Mask("hello"); got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestParseBlacklist(t *testing.T) {
	got := ParseBlacklist(" bad , worse,,  worst ")
	want := []string{"bad", "worse", "worst"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if ParseBlacklist("") != nil {
		t.Error("empty list should parse to nil")
	}
}

func TestLoadModerationConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moderation.yaml")
	data := "mask: \"###\"\nwords:\n  - bad\n  - worse\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadModerationConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Mask != "###" {
		t.Errorf("expected mask ###, got %q", cfg.Mask)
	}
	if len(cfg.Words) != 2 || cfg.Words[0] != "bad" {
		t.Errorf("unexpected words %v", cfg.Words)
	}
}

func TestLoadModerationConfig_MissingFile(t *testing.T) {
	if _, err := LoadModerationConfig("/nonexistent/moderation.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
