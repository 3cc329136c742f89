package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "paychat/internal/platform/errors"
)

func TestSearch_FirstOrganicHit(t *testing.T) {
	t.Parallel()

	var gotKey, gotPath string
	var gotPayload searchPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		_, _ = w.Write([]byte(`{"organic":[
			{"snippet":"A taxa Selic está em 15% ao ano","link":"https://www.bcb.gov.br/controleinflacao/taxaselic"},
			{"snippet":"second","link":"https://example.com"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, APIKey: "test-key"})
	res, err := c.Search(context.Background(), SelicQuery)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Snippet != "A taxa Selic está em 15% ao ano" {
		t.Fatalf("snippet = %q", res.Snippet)
	}
	if res.Link != "https://www.bcb.gov.br/controleinflacao/taxaselic" {
		t.Fatalf("link = %q", res.Link)
	}
	if gotKey != "test-key" {
		t.Fatalf("X-API-KEY = %q", gotKey)
	}
	if gotPath != "/search" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotPayload.Q != SelicQuery || gotPayload.Num != 1 {
		t.Fatalf("payload = %+v", gotPayload)
	}
}

func TestSearch_MissingKey(t *testing.T) {
	t.Parallel()

	c := NewClient(Options{})
	if c.Configured() {
		t.Fatalf("Configured should be false without a key")
	}
	_, err := c.Search(context.Background(), SelicQuery)
	if !perr.IsCode(err, perr.ErrorCodeExternal) {
		t.Fatalf("err = %v, want external code", err)
	}
}

func TestSearch_UpstreamStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, APIKey: "k"})
	_, err := c.Search(context.Background(), SelicQuery)
	if !perr.IsCode(err, perr.ErrorCodeExternal) {
		t.Fatalf("err = %v, want external code", err)
	}
}

func TestSearch_NoOrganicResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"organic":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, APIKey: "k"})
	_, err := c.Search(context.Background(), SelicQuery)
	if err == nil {
		t.Fatalf("expected error for empty organic list")
	}
}
