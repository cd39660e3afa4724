package categories

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/instasave/instasave-api/models"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (h *Handler) CreateCategory(c *gin.Context) {
	userID := c.GetUint("user_id")
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	color := req.Color
	if color == "" {
		// Pick the next palette color by how many categories the user has.
		var count int64
		h.DB.Model(&models.Category{}).Where("user_id = ?", userID).Count(&count)
		color = models.DefaultColor(int(count))
	}

	category := models.Category{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
	}

	if err := h.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetUserCategories lists the user's categories ordered by name, with
// per-category video counts filled in.
func (h *Handler) GetUserCategories(c *gin.Context) {
	userID := c.GetUint("user_id")
	var categories []models.Category
	if err := h.DB.Where("user_id = ?", userID).Order("name").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	for i := range categories {
		var count int64
		h.DB.Model(&models.Video{}).Where("category_id = ?", categories[i].ID).Count(&count)
		categories[i].VideoCount = int(count)
	}

	c.JSON(http.StatusOK, categories)
}

// DeleteCategory removes a category and every video saved under it.
// Both deletes run in one transaction so a crash cannot leave videos
// pointing at a missing category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	userID := c.GetUint("user_id")

	var category models.Category
	if err := h.DB.First(&category, "id = ? AND user_id = ?", categoryID, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ? AND user_id = ?", categoryID, userID).Delete(&models.Video{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
