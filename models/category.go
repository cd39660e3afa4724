package models

import (
	"time"
)

// ColorPalette holds the default colors offered when creating a category.
// A category's color is stored as a free-form hex string; the palette is
// only the default selection.
var ColorPalette = []string{
	"#3B82F6", // Blue
	"#EF4444", // Red
	"#10B981", // Green
	"#F59E0B", // Yellow
	"#8B5CF6", // Purple
	"#F97316", // Orange
	"#06B6D4", // Cyan
	"#EC4899", // Pink
	"#84CC16", // Lime
	"#6366F1", // Indigo
}

// DefaultColor returns the palette entry for the nth category a user creates.
func DefaultColor(n int) string {
	if n < 0 {
		n = 0
	}
	return ColorPalette[n%len(ColorPalette)]
}

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Color       string    `gorm:"not null" json:"color"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Video count (computed field, not persisted)
	VideoCount int `gorm:"-" json:"video_count"`
}

func (Category) TableName() string {
	return "categories"
}
