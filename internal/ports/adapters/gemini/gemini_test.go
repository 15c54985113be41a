package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseScript_StripsFencesAndTruncates(t *testing.T) {
	raw := "```json\n[\n" +
		`{"en": "Hello", "ur": "ہیلو"},` + "\n" +
		`{"en": "Water", "ur": "پانی"},` + "\n" +
		`{"en": "Bread", "ur": "روٹی"}` + "\n]\n```"

	segs, err := parseScript(raw, 2)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(segs))
	}
	if segs[0].EN != "Hello" || segs[1].EN != "Water" {
		t.Fatalf("unexpected segments: %+v", segs)
	}
}

func TestParseScript_SkipsMalformedEntries(t *testing.T) {
	raw := `[
		{"en": "Hello", "ur": "ہیلو"},
		{"en": "missing urdu"},
		{"ur": "صرف اردو"},
		{"en": "  ", "ur": "  "}
	]`
	segs, err := parseScript(raw, 10)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(segs) != 1 || segs[0].EN != "Hello" {
		t.Fatalf("expected only the complete pair, got %+v", segs)
	}
}

func TestParseScript_NothingUsable(t *testing.T) {
	if _, err := parseScript(`[{"en": "x"}]`, 3); err == nil {
		t.Fatal("expected error when no usable pairs remain")
	}
	if _, err := parseScript(`not json`, 3); err == nil {
		t.Fatal("expected error for non-JSON content")
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.0-flash") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text":
			"[{\"en\": \"Hi\", \"ur\": \"ہیلو\"}]"}]}}]}`))
	}))
	defer srv.Close()

	a := New("test-key", "")
	a.baseURL = srv.URL

	segs, err := a.Generate(context.Background(), "greetings", "beginner", 1, "words")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(segs) != 1 || segs[0].EN != "Hi" {
		t.Fatalf("unexpected segments: %+v", segs)
	}
}

func TestGenerate_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := New("test-key", "")
	a.baseURL = srv.URL

	_, err := a.Generate(context.Background(), "topic", "beginner", 1, "sentences")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestGenerate_RequiresKeyAndCount(t *testing.T) {
	a := New("", "")
	if _, err := a.Generate(context.Background(), "t", "beginner", 1, "words"); err == nil {
		t.Fatal("expected error without API key")
	}
	a = New("k", "")
	if _, err := a.Generate(context.Background(), "t", "beginner", 0, "words"); err == nil {
		t.Fatal("expected error for pairs <= 0")
	}
}
