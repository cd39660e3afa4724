package analysis

import (
	"reflect"
	"testing"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no tags", "just a plain description", nil},
		{"single tag", "check this out #cooking", []string{"cooking"}},
		{"multiple tags", "#food #Recipe dinner ideas #yum", []string{"food", "Recipe", "yum"}},
		{"hash alone ignored", "price is #1 today # nothing", []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractHashtags(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractHashtags(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHashtagsFromURL(t *testing.T) {
	got := hashtagsFromURL("https://www.instagram.com/p/Cxyz123/")
	want := []string{"instagram", "post"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("hashtagsFromURL = %v, want %v", got, want)
	}

	got = hashtagsFromURL("https://tiktok.com/@user/video/998877")
	want = []string{"tiktok", "video"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("hashtagsFromURL = %v, want %v", got, want)
	}

	// The platform name is always present, even with no path tokens.
	got = hashtagsFromURL("https://example.com/clip")
	if len(got) != 1 || got[0] != "video platform" {
		t.Errorf("hashtagsFromURL = %v, want [video platform]", got)
	}
}

func TestSmartTitle(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		platform Platform
		want     string
	}{
		{"id truncated to 8 chars", "https://www.youtube.com/watch?v=abcdefghijk", PlatformYouTube, "YouTube Video (abcdefgh...)"},
		{"short id kept whole", "https://tiktok.com/@user/video/998877", PlatformTikTok, "TikTok Video (998877...)"},
		{"slug from path", "https://example.com/my-cool_video", PlatformGeneric, "Video Platform - My Cool Video"},
		{"no usable path", "https://example.com/", PlatformGeneric, "Video Platform Video Content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SmartTitle(tt.url, tt.platform); got != tt.want {
				t.Errorf("SmartTitle(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestSuggestCategoryFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		platform Platform
		want     string
	}{
		{"recipe keyword", "https://youtube.com/watch?v=x&list=best-recipe-ideas", PlatformYouTube, "Food"},
		{"gaming keyword", "https://youtube.com/watch?v=gameplay-highlights", PlatformYouTube, "Gaming"},
		{"workout keyword", "https://instagram.com/p/morning-workout/", PlatformInstagram, "Fitness"},
		{"tiktok default", "https://tiktok.com/@user/xyz/112233", PlatformTikTok, "Entertainment"},
		{"instagram default", "https://instagram.com/p/Cxyz/", PlatformInstagram, "Lifestyle"},
		{"generic default", "https://example.com/clip", PlatformGeneric, "General"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestCategoryFromURL(tt.url, tt.platform); got != tt.want {
				t.Errorf("SuggestCategoryFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
