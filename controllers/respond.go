package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// The mobile app marks its requests with this header and expects JSON;
// everything else is the browser flow and gets redirects.
func isMobile(c *gin.Context) bool {
	return c.GetHeader("X-Mobile-App") == "true"
}

// failure answers a not-successful outcome in the right client shape.
func failure(c *gin.Context, status int, message, redirectTo string) {
	if isMobile(c) {
		c.JSON(status, gin.H{"success": false, "message": message})
		return
	}
	c.Redirect(http.StatusFound, redirectTo)
}

func parseEntryDate(value string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
