package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Abhibhav1976/MacroTracker/services"

	"github.com/gin-gonic/gin"
)

type ImageController struct {
	images *services.ImageService
}

func NewImageController(images *services.ImageService) *ImageController {
	return &ImageController{images: images}
}

type ImageQueryInput struct {
	EntryDate   string `json:"entryDate" binding:"required"`
	Base64Image string `json:"base64Image" binding:"required"`
}

// Query submits an image for recognition. Quota exceedance is a normal
// 403 outcome; a failed model call still answers 200 with the sentinel
// values the gateway recorded.
func (ctl *ImageController) Query(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ImageQueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := parseEntryDate(input.EntryDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entryDate must be YYYY-MM-DD"})
		return
	}

	meal, err := ctl.images.Analyze(c.Request.Context(), userID, date, input.Base64Image)
	switch {
	case errors.Is(err, services.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image payload"})
	case errors.Is(err, services.ErrUploadLimit):
		c.JSON(http.StatusForbidden, gin.H{"error": "Daily upload limit reached."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while processing the image."})
	default:
		c.JSON(http.StatusOK, meal)
	}
}

func (ctl *ImageController) ListImages(c *gin.Context) {
	userID := c.GetUint("userID")

	date, ok := parseEntryDate(c.Query("date"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	queries, err := ctl.images.ListQueries(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while fetching image queries."})
		return
	}

	results := make([]gin.H, 0, len(queries))
	for _, q := range queries {
		results = append(results, gin.H{
			"queryId":   q.ID,
			"imageDate": q.ImageDate.Format(dateLayout),
			"response":  q.GptResponse,
			"sentAt":    q.SentAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "queries": results})
}

func (ctl *ImageController) DeleteImage(c *gin.Context) {
	userID := c.GetUint("userID")

	queryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query id"})
		return
	}

	deleted, err := ctl.images.DeleteQuery(userID, uint(queryID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while deleting image query."})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Image query not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
