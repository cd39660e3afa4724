package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// Config carries everything the pipeline needs. It is built once at
// application startup and passed in; credentials come from the environment,
// never from source.
type Config struct {
	OpenAIKey      string
	Model          string
	InstagramToken string
	HTTPTimeout    time.Duration
}

// Analyzer composes the four pipeline stages. Each invocation is
// independent and stateless; two concurrent calls share nothing but the
// injected clients.
type Analyzer struct {
	enricher   *Enricher
	classifier *Classifier
}

// New builds an Analyzer from config, wiring the production OpenAI client.
func New(cfg Config) *Analyzer {
	return NewWithChat(cfg, NewOpenAIChat(cfg.OpenAIKey, cfg.Model))
}

// NewWithChat builds an Analyzer with an explicit ChatClient, used by
// tests and by callers that bring their own client.
func NewWithChat(cfg Config, chat ChatClient) *Analyzer {
	return &Analyzer{
		enricher:   NewEnricher(cfg.HTTPTimeout, cfg.InstagramToken),
		classifier: NewClassifier(chat),
	}
}

// AnalyzeURL runs the full pipeline: detect, extract, enrich, classify.
// Stage transitions are unconditional; every stage produces a best-effort
// result and the next always runs. The terminal result is never nil-like:
// category, title and confidence are always populated.
func (a *Analyzer) AnalyzeURL(ctx context.Context, rawURL string) VideoMetadata {
	step := func(s Stage) { log.Printf("analysis %s: %s", rawURL, s) }

	step(StageDetecting)
	platform := DetectPlatform(rawURL)

	step(StageExtracting)
	videoID := ExtractVideoID(rawURL, platform)

	step(StageEnriching)
	enhanced := a.enricher.Enhance(ctx, EnhancedVideoData{
		URL:      rawURL,
		Platform: platform,
		VideoID:  videoID,
	})

	step(StageClassifying)
	meta := a.classifier.Classify(ctx, enhanced)

	step(StageDone)
	log.Printf("analysis %s done: category=%q confidence=%.2f tier=%s",
		rawURL, meta.Category, meta.Confidence, meta.Tier)
	return meta
}

// SuggestCategory asks the remote service for a single category label given
// a title and description, against a short taxonomy. Degrades to "General".
func (a *Analyzer) SuggestCategory(ctx context.Context, title, description string) string {
	system := "You are a content categorization assistant. Based on the title and description provided, suggest the most appropriate category from this list: Education, Entertainment, Music, Technology, Fitness, Food, Travel, Art, Fashion, Gaming, Business, Health, News, Sports"
	user := fmt.Sprintf("Title: %s\nDescription: %s\n\nWhat category best fits this content? Respond with just the category name.", title, description)

	raw, err := a.classifier.chat.CompleteText(ctx, system, user)
	if err != nil {
		log.Printf("category suggestion failed: %v", err)
		return "General"
	}
	label := strings.TrimSpace(raw)
	if label == "" {
		return "General"
	}
	return label
}
