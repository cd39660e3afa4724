package analysis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestEnricher(youtubeEndpoint string) *Enricher {
	e := NewEnricher(2*time.Second, "")
	e.youtubeEndpoint = youtubeEndpoint
	return e
}

func TestEnhanceWithOEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("missing format=json in oEmbed request: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"title":"Perfect Pasta Carbonara Recipe","author_name":"Chef Anna","description":"Weeknight dinner #pasta #cooking"}`))
	}))
	defer srv.Close()

	e := newTestEnricher(srv.URL)
	got := e.Enhance(context.Background(), EnhancedVideoData{
		URL:      "https://www.youtube.com/watch?v=abc12345",
		Platform: PlatformYouTube,
		VideoID:  "abc12345",
	})

	if got.OriginalTitle != "Perfect Pasta Carbonara Recipe" {
		t.Errorf("OriginalTitle = %q", got.OriginalTitle)
	}
	if got.CreatorName != "Chef Anna" {
		t.Errorf("CreatorName = %q", got.CreatorName)
	}
	// Title is long enough: no secondary synthesis.
	if got.EnhancedTitle != "" {
		t.Errorf("EnhancedTitle = %q, want empty", got.EnhancedTitle)
	}
	// Hashtags extracted from the description.
	if len(got.Hashtags) != 2 || got.Hashtags[0] != "pasta" || got.Hashtags[1] != "cooking" {
		t.Errorf("Hashtags = %v, want [pasta cooking]", got.Hashtags)
	}
}

func TestEnhanceShortTitleTriggersSecondary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title":"short","author_name":"Someone"}`))
	}))
	defer srv.Close()

	e := newTestEnricher(srv.URL)
	got := e.Enhance(context.Background(), EnhancedVideoData{
		URL:      "https://www.youtube.com/watch?v=abc12345",
		Platform: PlatformYouTube,
		VideoID:  "abc12345",
	})

	if got.OriginalTitle != "short" {
		t.Errorf("OriginalTitle = %q", got.OriginalTitle)
	}
	if got.EnhancedTitle == "" {
		t.Error("expected secondary enrichment for a title under 10 characters")
	}
	if len(got.SearchResults) == 0 {
		t.Error("expected synthesized search results")
	}
}

func TestEnhanceSurvivesFetchFailure(t *testing.T) {
	// A server that always errors stands in for an unreachable endpoint.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := newTestEnricher(srv.URL)
	got := e.Enhance(context.Background(), EnhancedVideoData{
		URL:      "https://www.youtube.com/watch?v=abc12345",
		Platform: PlatformYouTube,
		VideoID:  "abc12345",
	})

	if got.URL == "" || got.Platform == "" {
		t.Fatal("enhance must always echo url and platform")
	}
	if got.OriginalTitle != "" {
		t.Errorf("OriginalTitle = %q, want empty on fetch failure", got.OriginalTitle)
	}
	// No title at all: secondary synthesis must have run.
	if got.EnhancedTitle == "" || got.EnhancedDescription == "" {
		t.Error("expected synthesized title and description after fetch failure")
	}
}

func TestEnhanceConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed immediately: connections are refused

	e := newTestEnricher(srv.URL)
	got := e.Enhance(context.Background(), EnhancedVideoData{
		URL:      "https://www.youtube.com/watch?v=abc12345",
		Platform: PlatformYouTube,
		VideoID:  "abc12345",
	})

	if got.URL != "https://www.youtube.com/watch?v=abc12345" || got.Platform != PlatformYouTube {
		t.Fatal("enhance must always return at least the input")
	}
}

func TestEnhanceTikTokAlwaysSecondary(t *testing.T) {
	// TikTok has no oEmbed endpoint wired; secondary enrichment must run
	// regardless, and must not touch the network.
	e := NewEnricher(2*time.Second, "")
	got := e.Enhance(context.Background(), EnhancedVideoData{
		URL:      "https://tiktok.com/@user/video/998877",
		Platform: PlatformTikTok,
		VideoID:  "998877",
	})

	if got.EnhancedTitle == "" {
		t.Error("expected synthesized title for TikTok")
	}
	if got.EnhancedDescription != "Content from TikTok platform (ID: 998877)" {
		t.Errorf("EnhancedDescription = %q", got.EnhancedDescription)
	}
	found := false
	for _, tag := range got.Hashtags {
		if tag == "tiktok" {
			found = true
		}
	}
	if !found {
		t.Errorf("Hashtags = %v, want tiktok included", got.Hashtags)
	}
}
