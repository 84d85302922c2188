package tui

import (
	"strings"
	"testing"

	"github.com/PortellaAlly/bestprice/internal/catalog"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("liquidificador turbo", 10)
	want := "liquidi..."
	if got != want {
		t.Errorf("truncateStr = %q, want %q", got, want)
	}
}

func TestClampLinesPadsShortNames(t *testing.T) {
	lines := clampLines("Mouse", 30, 2)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "Mouse" || lines[1] != "" {
		t.Errorf("lines = %q", lines)
	}
}

func TestClampLinesTruncatesLongNames(t *testing.T) {
	name := strings.Repeat("Mouse Gamer RGB Sem Fio ", 5)
	lines := clampLines(name, 20, 2)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasSuffix(lines[1], "...") {
		t.Errorf("second line should end with an ellipsis: %q", lines[1])
	}
}

func TestRenderCardCheapestBadge(t *testing.T) {
	p := catalog.Product{ID: 1, Name: "Mouse", Price: 30, Store: "Amazon", URL: "https://example.com"}

	with := renderCard(p, true, false, 50)
	if !strings.Contains(with, "Melhor Preço") {
		t.Error("cheapest card should carry the badge")
	}

	without := renderCard(p, false, false, 50)
	if strings.Contains(without, "Melhor Preço") {
		t.Error("non-cheapest card must not carry the badge")
	}
}

func TestRenderCardHistoryHint(t *testing.T) {
	withID := renderCard(catalog.Product{ID: 7, Name: "Mouse", Store: "Amazon"}, false, false, 50)
	if !strings.Contains(withID, "histórico") {
		t.Error("card with an id should offer the history action")
	}

	withoutID := renderCard(catalog.Product{Name: "Mouse", Store: "Amazon"}, false, false, 50)
	if strings.Contains(withoutID, "histórico") {
		t.Error("card without an id must not offer the history action")
	}
}

func TestRenderCardUnknownStore(t *testing.T) {
	out := renderCard(catalog.Product{Name: "Mouse", Store: "Loja Nova"}, false, false, 50)
	if !strings.Contains(out, "Loja Nova") {
		t.Error("unknown stores still get a badge, with the default style")
	}
}
