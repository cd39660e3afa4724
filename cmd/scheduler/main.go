package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/instasave/instasave-api/internal/platform"
	"github.com/instasave/instasave-api/models"
	"github.com/instasave/instasave-api/tasks"
)

// How long a video may sit in "analyzing" before the sweep assumes the
// worker died mid-task and requeues it.
const stuckAnalysisAge = 30 * time.Minute

func main() {
	// Use the shared initializers
	db := platform.NewDBConnection()
	rdb := platform.NewRedisClient()
	ctx := context.Background()

	c := cron.New()

	if _, err := c.AddFunc("@every 1h", func() { pruneExpiredSessions(db) }); err != nil {
		log.Fatalf("Failed to schedule session pruning: %v", err)
	}
	if _, err := c.AddFunc("@every 10m", func() { requeueStuckAnalyses(ctx, db, rdb) }); err != nil {
		log.Fatalf("Failed to schedule analysis sweep: %v", err)
	}

	c.Start()
	defer c.Stop()

	log.Println("Scheduler started")
	// Keep the main thread alive
	select {}
}

// pruneExpiredSessions removes sessions past their expiry.
func pruneExpiredSessions(db *gorm.DB) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	if result.Error != nil {
		log.Printf("Error pruning sessions: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Pruned %d expired sessions", result.RowsAffected)
	}
}

// requeueStuckAnalyses finds videos stuck in the analyzing state and puts
// them back on the analysis queue. The pipeline itself never retries a
// network call; this sweep only recovers tasks lost to a worker crash.
func requeueStuckAnalyses(ctx context.Context, db *gorm.DB, rdb *redis.Client) {
	cutoff := time.Now().Add(-stuckAnalysisAge)

	var videos []models.Video
	if err := db.Where("status = ? AND updated_at < ?", models.StatusAnalyzing, cutoff).Find(&videos).Error; err != nil {
		log.Printf("Error querying stuck analyses: %v", err)
		return
	}

	for _, video := range videos {
		payload, err := tasks.Marshal(tasks.AnalysisTaskPayload{VideoID: video.ID})
		if err != nil {
			log.Printf("Error marshalling analysis task for video %d: %v", video.ID, err)
			continue
		}
		if err := rdb.LPush(ctx, tasks.QueueVideoAnalysis, payload).Err(); err != nil {
			log.Printf("Error requeueing video %d: %v", video.ID, err)
			continue
		}
		db.Model(&video).Update("status", models.StatusPending)
		log.Printf("Requeued stuck analysis for video %d", video.ID)
	}
}
