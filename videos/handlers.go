package videos

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/instasave/instasave-api/analysis"
	"github.com/instasave/instasave-api/models"
	"github.com/instasave/instasave-api/tasks"
)

type Handler struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Analyzer *analysis.Analyzer
}

func NewHandler(db *gorm.DB, rdb *redis.Client, analyzer *analysis.Analyzer) *Handler {
	return &Handler{DB: db, Redis: rdb, Analyzer: analyzer}
}

type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	URL         string `json:"url" binding:"required,url"`
	Description string `json:"description"`
	Platform    string `json:"platform" binding:"omitempty,oneof=youtube instagram tiktok"`
	CreatorName string `json:"creator_name"`
	CategoryID  uint   `json:"category_id" binding:"required"`
}

// ownsCategory verifies the category belongs to the user. Videos must not
// reference another user's category.
func (h *Handler) ownsCategory(userID, categoryID uint) (bool, error) {
	var count int64
	err := h.DB.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateVideo saves a video via the full manual form.
func (h *Handler) CreateVideo(c *gin.Context) {
	userID := c.GetUint("user_id")
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.ownsCategory(userID, req.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	platform := req.Platform
	if platform == "" {
		platform = models.StoragePlatform(req.URL)
	}

	video := models.Video{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Platform:    platform,
		CreatorName: req.CreatorName,
		Status:      models.StatusManual,
	}

	if err := h.DB.Create(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
		return
	}

	c.JSON(http.StatusOK, video)
}

// GetUserVideos lists the user's videos newest first, category name/color
// included. Filters: q (title/description/creator substring), category_id,
// favorites=true.
func (h *Handler) GetUserVideos(c *gin.Context) {
	userID := c.GetUint("user_id")

	query := h.DB.Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at desc")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR creator_name ILIKE ?", like, like, like)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if c.Query("favorites") == "true" {
		query = query.Where("is_favorite = ?", true)
	}

	var videos []models.Video
	if err := query.Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve videos"})
		return
	}

	c.JSON(http.StatusOK, videos)
}

// ToggleFavorite flips a video's favorite flag. Toggling twice returns the
// video to its original state.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video ID"})
		return
	}

	userID := c.GetUint("user_id")

	var video models.Video
	if err := h.DB.First(&video, "id = ? AND user_id = ?", videoID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	video.ToggleFavorite()
	if err := h.DB.Model(&video).Update("is_favorite", video.IsFavorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
		return
	}

	c.JSON(http.StatusOK, video)
}

// DeleteVideo removes a single video.
func (h *Handler) DeleteVideo(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video ID"})
		return
	}

	userID := c.GetUint("user_id")

	result := h.DB.Where("id = ? AND user_id = ?", videoID, userID).Delete(&models.Video{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

type QuickSaveRequest struct {
	URL        string `json:"url" binding:"required,url"`
	Title      string `json:"title"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

// QuickSave stores a video from a bare URL and queues the metadata
// pipeline to fill in title, description and category asynchronously.
func (h *Handler) QuickSave(c *gin.Context) {
	userID := c.GetUint("user_id")
	var req QuickSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.ownsCategory(userID, req.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	title := req.Title
	if title == "" {
		title = analysis.SmartTitle(req.URL, analysis.DetectPlatform(req.URL))
	}

	video := models.Video{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Title:      title,
		URL:        req.URL,
		Platform:   models.StoragePlatform(req.URL),
		Status:     models.StatusPending,
	}

	if err := h.DB.Create(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save video"})
		return
	}

	// Queue the analysis task. A queue failure downgrades the save to
	// manual rather than failing the request.
	payload, err := tasks.Marshal(tasks.AnalysisTaskPayload{VideoID: video.ID})
	if err == nil {
		err = h.Redis.LPush(c.Request.Context(), tasks.QueueVideoAnalysis, payload).Err()
	}
	if err != nil {
		log.Printf("Error queuing analysis for video %d: %v", video.ID, err)
		h.DB.Model(&video).Update("status", models.StatusManual)
		video.Status = models.StatusManual
	}

	c.JSON(http.StatusOK, video)
}

type AnalyzeRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// AnalyzeURL runs the metadata pipeline synchronously and, when the
// classifier's category label reconciles against one of the user's
// categories, reports the matched category id alongside the metadata.
func (h *Handler) AnalyzeURL(c *gin.Context) {
	userID := c.GetUint("user_id")
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meta := h.Analyzer.AnalyzeURL(c.Request.Context(), req.URL)

	var categories []models.Category
	if err := h.DB.Where("user_id = ?", userID).Order("name").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}

	resp := gin.H{"metadata": meta}
	if name, ok := analysis.MatchCategory(names, meta.Category); ok {
		for _, cat := range categories {
			if cat.Name == name {
				resp["matched_category_id"] = cat.ID
				break
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

type SuggestCategoryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// SuggestCategory returns a single category label for a title/description
// pair. Degrades to "General" when the service is unavailable.
func (h *Handler) SuggestCategory(c *gin.Context) {
	var req SuggestCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := h.Analyzer.SuggestCategory(c.Request.Context(), req.Title, req.Description)
	c.JSON(http.StatusOK, gin.H{"category": category})
}
