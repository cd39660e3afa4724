package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	youtubeOEmbedURL   = "https://www.youtube.com/oembed"
	instagramOEmbedURL = "https://graph.facebook.com/v8.0/instagram_oembed"

	// Below this title length the oEmbed result is considered too weak to
	// classify on and secondary enrichment kicks in.
	minUsefulTitleLen = 10
)

// oEmbedResponse is the subset of the oEmbed payload the pipeline uses.
type oEmbedResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AuthorName  string `json:"author_name"`
}

// Enricher gathers best-effort metadata for a video URL. Every failure is
// swallowed: the worst case is the input echoed back.
type Enricher struct {
	client *http.Client

	// Endpoint overrides, settable in tests. Zero values mean the real
	// platform endpoints.
	youtubeEndpoint   string
	instagramEndpoint string
	instagramToken    string
}

// NewEnricher builds an enricher with a bounded HTTP client. Instagram
// oEmbed needs a Graph API token and stays disabled without one.
func NewEnricher(timeout time.Duration, instagramToken string) *Enricher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Enricher{
		client:            &http.Client{Timeout: timeout},
		youtubeEndpoint:   youtubeOEmbedURL,
		instagramEndpoint: instagramOEmbedURL,
		instagramToken:    instagramToken,
	}
}

// Enhance runs the enrichment stage: oEmbed fetch where supported,
// secondary synthesis when the signal is weak, hashtag extraction from any
// description found. It never returns an error.
func (e *Enricher) Enhance(ctx context.Context, basic EnhancedVideoData) EnhancedVideoData {
	enhanced := basic

	if oembed := e.fetchOEmbed(ctx, basic.URL); oembed != nil {
		enhanced.OriginalTitle = oembed.Title
		enhanced.OriginalDescription = oembed.Description
		enhanced.CreatorName = oembed.AuthorName
	}

	// TikTok has no usable oEmbed here; it always gets the secondary pass,
	// as does anything with a missing or too-short title.
	if basic.Platform == PlatformTikTok || len(enhanced.OriginalTitle) < minUsefulTitleLen {
		e.secondarySearch(&enhanced)
	}

	if enhanced.OriginalDescription != "" {
		enhanced.Hashtags = append(enhanced.Hashtags, ExtractHashtags(enhanced.OriginalDescription)...)
	}

	return enhanced
}

// fetchOEmbed queries the platform's oEmbed endpoint. Any error, timeout or
// non-2xx status is treated as "no metadata".
func (e *Enricher) fetchOEmbed(ctx context.Context, rawURL string) *oEmbedResponse {
	endpoint := e.oembedEndpoint(rawURL)
	if endpoint == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := e.client.Do(req)
	if err != nil {
		log.Printf("oEmbed fetch failed for %s: %v", rawURL, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("oEmbed fetch for %s returned status %d", rawURL, resp.StatusCode)
		return nil
	}

	var oembed oEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&oembed); err != nil {
		log.Printf("oEmbed decode failed for %s: %v", rawURL, err)
		return nil
	}
	return &oembed
}

func (e *Enricher) oembedEndpoint(rawURL string) string {
	switch {
	case strings.Contains(rawURL, "youtube.com") || strings.Contains(rawURL, "youtu.be"):
		return fmt.Sprintf("%s?url=%s&format=json", e.youtubeEndpoint, url.QueryEscape(rawURL))
	case strings.Contains(rawURL, "instagram.com") && e.instagramToken != "":
		return fmt.Sprintf("%s?url=%s&access_token=%s", e.instagramEndpoint, url.QueryEscape(rawURL), url.QueryEscape(e.instagramToken))
	default:
		return ""
	}
}

// secondarySearch stands in for a real search backend: it synthesizes a
// plausible title and description from platform and id, and seeds hashtags
// from URL path tokens.
func (e *Enricher) secondarySearch(enhanced *EnhancedVideoData) {
	enhanced.SearchResults = []string{
		fmt.Sprintf("%s video analysis", enhanced.Platform),
		fmt.Sprintf("Content from %s", enhanced.Platform),
		"Video metadata extraction",
	}
	enhanced.EnhancedTitle = SmartTitle(enhanced.URL, enhanced.Platform)

	desc := fmt.Sprintf("Content from %s platform", enhanced.Platform)
	if enhanced.VideoID != "" {
		desc += fmt.Sprintf(" (ID: %s)", enhanced.VideoID)
	}
	enhanced.EnhancedDescription = desc

	enhanced.Hashtags = append(enhanced.Hashtags, hashtagsFromURL(enhanced.URL)...)
}
