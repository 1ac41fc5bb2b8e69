package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promokit/services"
)

// URLToFields scrapes open-graph metadata from a URL and maps it onto the
// standard prefill fields. Missing tags come back as empty strings; only an
// unreachable URL is an error.
func URLToFields(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	tags, err := services.FetchOGTags(req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch URL metadata"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prefillFields": gin.H{
			"headline": tags.Title,
			"subhead":  tags.Description,
			"photo":    tags.Image,
		},
	})
}
