package worker

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/instasave/instasave-api/analysis"
	"github.com/instasave/instasave-api/models"
	"github.com/instasave/instasave-api/tasks"
)

// HandleVideoAnalysis processes tasks from QueueVideoAnalysis: runs the
// metadata pipeline for a quick-saved video and applies the result.
//
// A pipeline "failure" still yields a usable fallback result, so the video
// is marked enriched either way; only persistence errors mark it failed.
func (p *Processor) HandleVideoAnalysis(ctx context.Context, payload string) error {
	var task tasks.AnalysisTaskPayload
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		return err
	}

	log.Printf("Analyzing video %d", task.VideoID)
	var video models.Video
	if err := p.DB.First(&video, task.VideoID).Error; err != nil {
		return err
	}

	p.DB.Model(&video).Update("status", models.StatusAnalyzing)

	meta := p.Analyzer.AnalyzeURL(ctx, video.URL)

	updates := map[string]interface{}{
		"status": models.StatusEnriched,
	}
	if meta.Title != "" {
		updates["title"] = meta.Title
	}
	if meta.Description != "" {
		updates["description"] = meta.Description
	}

	// Reconcile the classifier's label against the owner's categories.
	// No match keeps the category the user picked at save time.
	var categories []models.Category
	if err := p.DB.Where("user_id = ?", video.UserID).Order("name").Find(&categories).Error; err != nil {
		p.DB.Model(&video).Update("status", models.StatusFailed)
		return err
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	if name, ok := analysis.MatchCategory(names, meta.Category); ok {
		for _, c := range categories {
			if c.Name == name {
				updates["category_id"] = c.ID
				break
			}
		}
	}

	if err := p.DB.Model(&video).Updates(updates).Error; err != nil {
		p.DB.Model(&video).Update("status", models.StatusFailed)
		return err
	}

	log.Printf("Video %d enriched: title=%q category=%q confidence=%.2f tier=%s tags=%s",
		video.ID, meta.Title, meta.Category, meta.Confidence, meta.Tier, strings.Join(meta.Tags, ","))
	return nil
}
