package analysis

import (
	"net/url"
	"regexp"
	"strings"
)

// Platform is the display tag for the service a URL belongs to.
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformVimeo     Platform = "Vimeo"
	PlatformTwitter   Platform = "Twitter/X"
	PlatformGeneric   Platform = "Video Platform"
)

// DetectPlatform classifies a URL by domain substring. It cannot fail;
// unrecognized URLs get the generic tag. Checks run in a fixed priority
// order so a URL that superficially matches several substrings resolves
// deterministically.
func DetectPlatform(rawURL string) Platform {
	switch {
	case strings.Contains(rawURL, "youtube.com") || strings.Contains(rawURL, "youtu.be"):
		return PlatformYouTube
	case strings.Contains(rawURL, "instagram.com"):
		return PlatformInstagram
	case strings.Contains(rawURL, "tiktok.com"):
		return PlatformTikTok
	case strings.Contains(rawURL, "vimeo.com"):
		return PlatformVimeo
	case strings.Contains(rawURL, "twitter.com") || strings.Contains(rawURL, "x.com"):
		return PlatformTwitter
	default:
		return PlatformGeneric
	}
}

var (
	instagramIDPattern = regexp.MustCompile(`/p/([^/]+)`)
	tiktokIDPattern    = regexp.MustCompile(`/video/(\d+)`)
	vimeoIDPattern     = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// ExtractVideoID pulls the platform-specific content id out of a URL.
// It fails closed: malformed URLs and unmatched patterns yield "".
func ExtractVideoID(rawURL string, platform Platform) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	switch platform {
	case PlatformYouTube:
		if strings.Contains(rawURL, "youtu.be/") {
			// Short links carry the id as the first path segment.
			return strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)[0]
		}
		if strings.Contains(rawURL, "youtube.com/watch") {
			return u.Query().Get("v")
		}
	case PlatformInstagram:
		if m := instagramIDPattern.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	case PlatformTikTok:
		if m := tiktokIDPattern.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	case PlatformVimeo:
		if m := vimeoIDPattern.FindStringSubmatch(rawURL); m != nil {
			return m[1]
		}
	}
	return ""
}
