package tasks

import "encoding/json"

// ---
// QUEUE DEFINITIONS
// ---
const (
	// QueueVideoAnalysis holds quick-saved videos waiting for the metadata
	// pipeline to run against their URL.
	QueueVideoAnalysis = "q_video_analysis"
)

// ---
// TASK PAYLOADS
// ---
// These are the structs that will be JSON-marshalled and sent to Redis.

// AnalysisTaskPayload is the payload for QueueVideoAnalysis.
type AnalysisTaskPayload struct {
	VideoID uint `json:"video_id"`
}

// Marshal creates a JSON payload for a task.
func Marshal(payload interface{}) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
