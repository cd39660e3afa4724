package analysis

// Tier records which fallback level produced a metadata result.
type Tier string

const (
	// TierAuthoritative: the classification service returned a usable result.
	TierAuthoritative Tier = "authoritative"
	// TierHeuristic: synthesized from URL structure and enrichment signals.
	TierHeuristic Tier = "heuristic"
	// TierDefault: static platform default, nothing better was available.
	TierDefault Tier = "default"
)

// Stage labels the pipeline's progress for one invocation. Transitions are
// unconditional; no stage can abort the pipeline.
type Stage string

const (
	StageIdle        Stage = "idle"
	StageDetecting   Stage = "detecting"
	StageExtracting  Stage = "extracting"
	StageEnriching   Stage = "enriching"
	StageClassifying Stage = "classifying"
	StageDone        Stage = "done"
)

// VideoMetadata is the pipeline's terminal output. It is transient; callers
// copy fields into a saved video as they see fit.
type VideoMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Confidence  float64  `json:"confidence"`
	Reasoning   string   `json:"reasoning"`
	Tags        []string `json:"tags,omitempty"`
	Tier        Tier     `json:"tier"`
}

// EnhancedVideoData is the intermediate state flowing from the enricher to
// the classifier. It lives only for the duration of one invocation.
type EnhancedVideoData struct {
	URL      string
	Platform Platform
	VideoID  string

	OriginalTitle       string
	OriginalDescription string
	CreatorName         string

	EnhancedTitle       string
	EnhancedDescription string
	Hashtags            []string
	SearchResults       []string
}
