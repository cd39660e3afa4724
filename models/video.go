package models

import (
	"strings"
	"time"
)

// Saved-video platforms. The analysis pipeline recognizes a wider set of
// display tags; persisted videos are limited to these three.
const (
	PlatformYouTube   = "youtube"
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
)

// Analysis status values for quick-saved videos.
const (
	StatusManual    = "manual"    // created via the full form, no analysis queued
	StatusPending   = "pending"   // analysis task queued
	StatusAnalyzing = "analyzing" // worker picked the task up
	StatusEnriched  = "enriched"  // pipeline result applied
	StatusFailed    = "failed"    // persistence error while applying the result
)

type Video struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	UserID      uint     `gorm:"not null;index" json:"user_id"`
	User        User     `gorm:"foreignKey:UserID" json:"-"`
	CategoryID  uint     `gorm:"not null;index" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	URL         string   `gorm:"not null" json:"url"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Platform    string   `gorm:"size:16;not null" json:"platform"`
	CreatorName string   `json:"creator_name,omitempty"`
	IsFavorite  bool     `gorm:"default:false" json:"is_favorite"`
	Status      string   `gorm:"size:32;default:'manual'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

// ToggleFavorite flips the favorite flag. Toggling twice restores the
// original state.
func (v *Video) ToggleFavorite() {
	v.IsFavorite = !v.IsFavorite
}

// StoragePlatform maps an arbitrary URL to one of the three persisted
// platform values, defaulting to youtube the way the original save forms do.
func StoragePlatform(url string) string {
	switch {
	case strings.Contains(url, "instagram.com"):
		return PlatformInstagram
	case strings.Contains(url, "tiktok.com"):
		return PlatformTikTok
	default:
		return PlatformYouTube
	}
}

// ThumbnailURL returns a best-effort thumbnail for a saved video.
// Only YouTube watch links have a well-known thumbnail scheme.
func (v *Video) ThumbnailURL() string {
	if v.Platform != PlatformYouTube || !strings.Contains(v.URL, "watch?v=") {
		return ""
	}
	id := strings.SplitN(v.URL, "watch?v=", 2)[1]
	if i := strings.IndexByte(id, '&'); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/mqdefault.jpg"
}
