package analysis

import (
	"context"
	"errors"
	"testing"
)

// fakeChat implements ChatClient for testing
type fakeChat struct {
	response string
	textResp string
	err      error
}

func (f *fakeChat) Complete(ctx context.Context, system, user string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeChat) CompleteText(ctx context.Context, system, user string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.textResp, nil
}

func enrichedFixture() EnhancedVideoData {
	return EnhancedVideoData{
		URL:                 "https://www.youtube.com/watch?v=abc12345",
		Platform:            PlatformYouTube,
		VideoID:             "abc12345",
		OriginalTitle:       "Perfect Pasta Carbonara Recipe",
		OriginalDescription: "Weeknight dinner #pasta",
		CreatorName:         "Chef Anna",
		Hashtags:            []string{"pasta"},
	}
}

func TestClassifyAuthoritative(t *testing.T) {
	chat := &fakeChat{response: `{
		"title": "Pasta Carbonara",
		"description": "A weeknight carbonara recipe",
		"category": "Food & Cooking",
		"confidence": 0.95,
		"reasoning": "Recipe keywords in title and hashtags",
		"tags": ["pasta", "recipe"]
	}`}

	meta := NewClassifier(chat).Classify(context.Background(), enrichedFixture())

	if meta.Tier != TierAuthoritative {
		t.Errorf("Tier = %v, want %v", meta.Tier, TierAuthoritative)
	}
	if meta.Category != "Food & Cooking" {
		t.Errorf("Category = %q", meta.Category)
	}
	if meta.Confidence != 0.95 {
		t.Errorf("Confidence = %v", meta.Confidence)
	}
}

func TestClassifyServiceErrorFallsBack(t *testing.T) {
	chat := &fakeChat{err: errors.New("connection refused")}

	data := enrichedFixture()
	data.URL = "https://www.youtube.com/watch?v=best-recipe"
	meta := NewClassifier(chat).Classify(context.Background(), data)

	if meta.Tier != TierHeuristic {
		t.Errorf("Tier = %v, want %v", meta.Tier, TierHeuristic)
	}
	if meta.Category != "Food" {
		t.Errorf("Category = %q, want Food from URL keywords", meta.Category)
	}
	if meta.Confidence > 0.5 {
		t.Errorf("Confidence = %v, want <= 0.5 on fallback", meta.Confidence)
	}
	if meta.Reasoning == "" {
		t.Error("fallback must name its cause in Reasoning")
	}
	// Best enriched title survives.
	if meta.Title != "Perfect Pasta Carbonara Recipe" {
		t.Errorf("Title = %q", meta.Title)
	}
}

func TestClassifyServiceErrorPlatformDefault(t *testing.T) {
	chat := &fakeChat{err: errors.New("timeout")}

	data := EnhancedVideoData{
		URL:      "https://tiktok.com/@user/video/998877",
		Platform: PlatformTikTok,
		VideoID:  "998877",
	}
	meta := NewClassifier(chat).Classify(context.Background(), data)

	if meta.Tier != TierDefault {
		t.Errorf("Tier = %v, want %v", meta.Tier, TierDefault)
	}
	if meta.Category != "Entertainment" {
		t.Errorf("Category = %q, want platform default", meta.Category)
	}
	if meta.Title == "" || meta.Description == "" {
		t.Error("fallback metadata must be fully populated")
	}
}

func TestClassifyMalformedJSONFallsBack(t *testing.T) {
	chat := &fakeChat{response: "sorry, I cannot respond in JSON"}

	meta := NewClassifier(chat).Classify(context.Background(), enrichedFixture())

	if meta.Tier == TierAuthoritative {
		t.Error("malformed response must not produce an authoritative result")
	}
	if meta.Confidence > 0.5 {
		t.Errorf("Confidence = %v, want <= 0.5", meta.Confidence)
	}
	if meta.Category == "" {
		t.Error("Category must be non-empty")
	}
}

func TestClassifyMissingFieldsFilledIn(t *testing.T) {
	// The model answered but left everything blank.
	chat := &fakeChat{response: `{}`}

	meta := NewClassifier(chat).Classify(context.Background(), enrichedFixture())

	if meta.Title != "Perfect Pasta Carbonara Recipe" {
		t.Errorf("Title = %q, want enriched original", meta.Title)
	}
	if meta.Description != "Weeknight dinner #pasta" {
		t.Errorf("Description = %q", meta.Description)
	}
	if meta.Category == "" {
		t.Error("Category must fall back to a URL/platform guess")
	}
	if meta.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5 default", meta.Confidence)
	}
	if len(meta.Tags) == 0 {
		t.Error("Tags must be defaulted")
	}
}
