package cmd

import "testing"

type jqItem struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

func TestMatchesJqFilter(t *testing.T) {
	code, err := compileJqFilter(`.reason | contains("spam")`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if !matchesJqFilter(code, jqItem{Reason: "spam links"}) {
		t.Error("expected spam report to match")
	}
	if matchesJqFilter(code, jqItem{Reason: "rude"}) {
		t.Error("expected non-spam report not to match")
	}
}

func TestMatchesJqFilter_NilCodeMatchesAll(t *testing.T) {
	if !matchesJqFilter(nil, jqItem{Reason: "anything"}) {
		t.Error("nil filter should match everything")
	}
}

func TestMatchesJqFilter_NumericComparison(t *testing.T) {
	code, err := compileJqFilter(`.count > 3`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if !matchesJqFilter(code, jqItem{Count: 5}) {
		t.Error("expected count 5 to match > 3")
	}
	if matchesJqFilter(code, jqItem{Count: 1}) {
		t.Error("expected count 1 not to match > 3")
	}
}

func TestCompileJqFilter_Invalid(t *testing.T) {
	if _, err := compileJqFilter(`.[invalid`); err == nil {
		t.Error("expected parse error for invalid filter")
	}
}
