package analysis

import "testing"

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Platform
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=abc12345", PlatformYouTube},
		{"youtube short link", "https://youtu.be/abc12345", PlatformYouTube},
		{"youtube shorts", "https://youtube.com/shorts/xyz", PlatformYouTube},
		{"instagram post", "https://www.instagram.com/p/Cxyz123/", PlatformInstagram},
		{"tiktok video", "https://tiktok.com/@user/video/998877", PlatformTikTok},
		{"vimeo", "https://vimeo.com/123456", PlatformVimeo},
		{"twitter", "https://twitter.com/user/status/1", PlatformTwitter},
		{"x.com", "https://x.com/user/status/1", PlatformTwitter},
		{"unknown host", "https://example.com/some/video", PlatformGeneric},
		{"empty string", "", PlatformGeneric},
		{"not a url at all", "hello world", PlatformGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPlatform(tt.url); got != tt.want {
				t.Errorf("DetectPlatform(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		platform Platform
		want     string
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=abc12345", PlatformYouTube, "abc12345"},
		{"youtube watch with extra params", "https://www.youtube.com/watch?v=abc12345&t=10", PlatformYouTube, "abc12345"},
		{"youtube short link", "https://youtu.be/dQw4w9WgXcQ", PlatformYouTube, "dQw4w9WgXcQ"},
		{"youtube short link with query", "https://youtu.be/dQw4w9WgXcQ?t=30", PlatformYouTube, "dQw4w9WgXcQ"},
		{"youtube watch missing v", "https://www.youtube.com/watch?t=10", PlatformYouTube, ""},
		{"instagram post", "https://www.instagram.com/p/Cxyz123/", PlatformInstagram, "Cxyz123"},
		{"instagram reel path", "https://www.instagram.com/reel/Cxyz123/", PlatformInstagram, ""},
		{"tiktok video", "https://tiktok.com/@user/video/998877", PlatformTikTok, "998877"},
		{"tiktok profile only", "https://tiktok.com/@user", PlatformTikTok, ""},
		{"vimeo", "https://vimeo.com/123456", PlatformVimeo, "123456"},
		{"generic platform", "https://example.com/video/42", PlatformGeneric, ""},
		{"malformed url", "http://a b.com/watch?v=x", PlatformYouTube, ""},
		{"missing scheme garbage", "://nope", PlatformYouTube, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVideoID(tt.url, tt.platform); got != tt.want {
				t.Errorf("ExtractVideoID(%q, %v) = %q, want %q", tt.url, tt.platform, got, tt.want)
			}
		})
	}
}
