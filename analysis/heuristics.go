package analysis

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// ExtractHashtags pulls #word tokens out of free text, leading '#' stripped.
// Matching is case-sensitive; tags come back in order of appearance.
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllString(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.TrimPrefix(m, "#"))
	}
	return tags
}

// hashtagsFromURL seeds tags from URL structure. The platform name is
// always included.
func hashtagsFromURL(rawURL string) []string {
	tags := []string{strings.ToLower(string(DetectPlatform(rawURL)))}

	if strings.Contains(rawURL, "/p/") {
		tags = append(tags, "post")
	}
	if strings.Contains(rawURL, "/video/") {
		tags = append(tags, "video")
	}
	if strings.Contains(rawURL, "/watch") {
		tags = append(tags, "watch")
	}
	if strings.Contains(rawURL, "/shorts/") {
		tags = append(tags, "shorts")
	}
	return tags
}

// SmartTitle synthesizes a readable title from URL structure when no real
// metadata is available.
func SmartTitle(rawURL string, platform Platform) string {
	if id := ExtractVideoID(rawURL, platform); id != "" {
		short := id
		if len(short) > 8 {
			short = short[:8]
		}
		return fmt.Sprintf("%s Video (%s...)", platform, short)
	}

	if u, err := url.Parse(rawURL); err == nil {
		parts := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
		if len(parts) > 0 {
			last := parts[len(parts)-1]
			if len(last) > 3 {
				return fmt.Sprintf("%s - %s", platform, titleCase(last))
			}
		}
	}

	return fmt.Sprintf("%s Video Content", platform)
}

// titleCase turns a URL slug ("my-cool_video") into display text.
func titleCase(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// urlCategoryKeywords maps URL substrings to short heuristic category
// labels, checked in order. These labels are intentionally looser than the
// classifier taxonomy; reconciliation against user categories happens by
// substring match either way.
var urlCategoryKeywords = []struct {
	words    []string
	category string
}{
	{[]string{"music", "song", "album"}, "Music"},
	{[]string{"gaming", "game", "gameplay"}, "Gaming"},
	{[]string{"cooking", "recipe", "food"}, "Food"},
	{[]string{"workout", "fitness", "exercise"}, "Fitness"},
	{[]string{"tutorial", "howto", "learn"}, "Education"},
	{[]string{"comedy", "funny", "humor"}, "Comedy"},
	{[]string{"news", "breaking"}, "News"},
	{[]string{"tech", "review", "unbox"}, "Technology"},
	{[]string{"travel", "vacation", "trip"}, "Travel"},
	{[]string{"fashion", "style", "outfit"}, "Fashion"},
	{[]string{"beauty", "makeup", "skincare"}, "Beauty"},
	{[]string{"diy", "craft", "build"}, "DIY"},
	{[]string{"health", "medical", "wellness"}, "Health"},
	{[]string{"business", "entrepreneur", "startup"}, "Business"},
	{[]string{"art", "paint", "draw"}, "Art"},
	{[]string{"science", "experiment", "physics"}, "Science"},
	{[]string{"sport", "football", "basketball"}, "Sports"},
}

// SuggestCategoryFromURL guesses a category from URL keywords, falling
// back to a platform default.
func SuggestCategoryFromURL(rawURL string, platform Platform) string {
	category, _ := suggestCategory(rawURL, platform)
	return category
}

// suggestCategory additionally reports whether a URL keyword matched, so
// callers can distinguish the heuristic tier from the platform default.
func suggestCategory(rawURL string, platform Platform) (string, bool) {
	lower := strings.ToLower(rawURL)
	for _, entry := range urlCategoryKeywords {
		for _, w := range entry.words {
			if strings.Contains(lower, w) {
				return entry.category, true
			}
		}
	}

	switch platform {
	case PlatformTikTok, PlatformYouTube:
		return "Entertainment", false
	case PlatformInstagram:
		return "Lifestyle", false
	default:
		return "General", false
	}
}
