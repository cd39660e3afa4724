package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Taxonomy is the closed category set the classifier must choose from.
// "Lifestyle & Vlogs" is the explicit last-resort entry.
var Taxonomy = []string{
	"Food & Cooking",
	"Fitness & Health",
	"Tech & Reviews",
	"Beauty & Fashion",
	"Travel & Adventure",
	"DIY & Crafts",
	"Music & Entertainment",
	"Education & Learning",
	"Business & Finance",
	"Art & Design",
	"Gaming",
	"Sports",
	"Comedy & Humor",
	"News & Current Events",
	"Lifestyle & Vlogs",
}

// ChatClient is the surface the pipeline needs from the remote
// text-generation service. Complete enforces the structured-JSON response
// schema; CompleteText is a plain completion for short free-text answers.
type ChatClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
	CompleteText(ctx context.Context, system, user string) (string, error)
}

// classifyResponse mirrors the JSON the model is asked to produce.
type classifyResponse struct {
	Title       string   `json:"title" jsonschema_description:"Clean, concise title (2-6 words)"`
	Description string   `json:"description" jsonschema_description:"Detailed description of the content"`
	Category    string   `json:"category" jsonschema_description:"EXACT category name from the provided list"`
	Confidence  float64  `json:"confidence" jsonschema_description:"Confidence score between 0 and 1"`
	Reasoning   string   `json:"reasoning" jsonschema_description:"Explanation of the categorization"`
	Tags        []string `json:"tags" jsonschema_description:"Relevant keywords extracted from the content"`
}

// GenerateSchema generates a JSON schema for structured outputs
func GenerateSchema[T any]() interface{} {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

var classifyResponseSchema = GenerateSchema[classifyResponse]()

// openAIChat is the production ChatClient backed by the OpenAI API. The
// client is constructed once at startup and injected; there is no
// package-level client or embedded credential.
type openAIChat struct {
	client openai.Client
	model  openai.ChatModel
}

// NewOpenAIChat builds a ChatClient from an API key. Model defaults to
// gpt-4o-mini when empty.
func NewOpenAIChat(apiKey, model string) ChatClient {
	m := openai.ChatModel(model)
	if model == "" {
		m = openai.ChatModelGPT4oMini
	}
	return &openAIChat{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  m,
	}
}

func (o *openAIChat) Complete(ctx context.Context, system, user string) (string, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "video_metadata",
		Description: openai.String("Categorization result for a saved video"),
		Schema:      classifyResponseSchema,
		Strict:      openai.Bool(true),
	}

	chatCompletion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model: o.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: schemaParam,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	raw := chatCompletion.Choices[0].Message.Content
	if raw == "" {
		return "", fmt.Errorf("OpenAI returned empty response. Finish reason: %s", chatCompletion.Choices[0].FinishReason)
	}
	return raw, nil
}

func (o *openAIChat) CompleteText(ctx context.Context, system, user string) (string, error) {
	chatCompletion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Model: o.model,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return chatCompletion.Choices[0].Message.Content, nil
}

// Classifier turns enriched video data into final metadata via the remote
// service, degrading through heuristic and default tiers on any failure.
type Classifier struct {
	chat ChatClient
}

func NewClassifier(chat ChatClient) *Classifier {
	return &Classifier{chat: chat}
}

func classifySystemPrompt() string {
	var b strings.Builder
	b.WriteString(`You are an expert video content categorization engine. Your task is to analyze video metadata and produce clean, accurate categorization results.

AVAILABLE CATEGORIES (use EXACTLY these names):
`)
	for i, cat := range Taxonomy {
		suffix := ""
		switch cat {
		case "Food & Cooking":
			suffix = " (prioritize for recipes, cooking tutorials, food reviews)"
		case "Lifestyle & Vlogs":
			suffix = " (only as fallback)"
		}
		fmt.Fprintf(&b, "%d. %s%s\n", i+1, cat, suffix)
	}
	b.WriteString(`
TASKS:
1. Extract a clean, concise title (2-6 words, remove unnecessary prefixes like "How to make", "Tutorial:", etc.)
2. Categorize into the MOST SPECIFIC category from the list above
3. Provide confidence score (0-1)
4. Explain your reasoning based on keywords and content indicators

Respond with valid JSON only.`)
	return b.String()
}

func classifyUserPrompt(data EnhancedVideoData) string {
	return fmt.Sprintf(`Analyze this %s video and categorize it:

ORIGINAL DATA:
- Title: %s
- Description: %s
- Creator: %s
- URL: %s

ENHANCED DATA:
- Enhanced Title: %s
- Enhanced Description: %s
- Hashtags: %s
- Search Context: %s

Platform: %s
Video ID: %s`,
		data.Platform,
		orNA(data.OriginalTitle),
		orNA(data.OriginalDescription),
		orNA(data.CreatorName),
		data.URL,
		orNA(data.EnhancedTitle),
		orNA(data.EnhancedDescription),
		orNA(strings.Join(data.Hashtags, ", ")),
		orNA(strings.Join(data.SearchResults, " | ")),
		data.Platform,
		orNA(data.VideoID))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Classify runs the classification stage. It never returns an error: a
// remote failure or malformed response degrades to the heuristic tier, and
// every missing field falls back field-by-field.
func (c *Classifier) Classify(ctx context.Context, data EnhancedVideoData) VideoMetadata {
	raw, err := c.chat.Complete(ctx, classifySystemPrompt(), classifyUserPrompt(data))
	if err != nil {
		log.Printf("classification call failed for %s: %v", data.URL, err)
		return c.fallback(data, 0.5, "Fallback analysis due to processing error")
	}

	var parsed classifyResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("classification response parse failed for %s: %v", data.URL, err)
		return c.fallback(data, 0.4, "Fallback analysis based on URL patterns and platform defaults")
	}

	meta := VideoMetadata{
		Title:       parsed.Title,
		Description: parsed.Description,
		Category:    parsed.Category,
		Confidence:  parsed.Confidence,
		Reasoning:   parsed.Reasoning,
		Tags:        parsed.Tags,
		Tier:        TierAuthoritative,
	}

	// Field-by-field fallback when the model leaves holes.
	if meta.Title == "" {
		meta.Title = bestTitle(data)
	}
	if meta.Description == "" {
		meta.Description = bestDescription(data, "AI-generated content analysis")
	}
	if meta.Category == "" {
		category, matched := suggestCategory(data.URL, data.Platform)
		meta.Category = category
		meta.Tier = TierHeuristic
		if !matched {
			meta.Tier = TierDefault
		}
	}
	if meta.Confidence == 0 {
		meta.Confidence = 0.5
	}
	if meta.Reasoning == "" {
		meta.Reasoning = "Analysis based on available metadata"
	}
	if len(meta.Tags) == 0 {
		meta.Tags = []string{"video", strings.ToLower(string(data.Platform))}
	}
	return meta
}

// fallback builds a fully-populated result without the remote service.
// A URL keyword match is the heuristic tier; a bare platform default is the
// default tier.
func (c *Classifier) fallback(data EnhancedVideoData, confidence float64, reasoning string) VideoMetadata {
	category, matched := suggestCategory(data.URL, data.Platform)
	tier := TierHeuristic
	if !matched {
		tier = TierDefault
	}
	return VideoMetadata{
		Title:       bestTitle(data),
		Description: bestDescription(data, fmt.Sprintf("%s content - Analysis temporarily unavailable", data.Platform)),
		Category:    category,
		Confidence:  confidence,
		Reasoning:   reasoning,
		Tags:        data.Hashtags,
		Tier:        tier,
	}
}

func bestTitle(data EnhancedVideoData) string {
	if data.EnhancedTitle != "" {
		return data.EnhancedTitle
	}
	if data.OriginalTitle != "" {
		return data.OriginalTitle
	}
	return SmartTitle(data.URL, data.Platform)
}

func bestDescription(data EnhancedVideoData, fallback string) string {
	if data.EnhancedDescription != "" {
		return data.EnhancedDescription
	}
	if data.OriginalDescription != "" {
		return data.OriginalDescription
	}
	return fallback
}
