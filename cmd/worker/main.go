package main

import (
	"context"
	"log"

	"github.com/instasave/instasave-api/analysis"
	"github.com/instasave/instasave-api/internal/platform"
	"github.com/instasave/instasave-api/tasks"
	"github.com/instasave/instasave-api/worker"
)

func main() {
	// Use the shared initializers
	db := platform.NewDBConnection()
	rdb := platform.NewRedisClient()
	analyzer := analysis.New(platform.NewAnalysisConfig())
	ctx := context.Background()

	processor := worker.NewProcessor(db, rdb, analyzer)
	processor.Register(tasks.QueueVideoAnalysis, processor.HandleVideoAnalysis)

	log.Println("Worker started, waiting for queue tasks...")
	processor.Listen(ctx, tasks.QueueVideoAnalysis)
}
