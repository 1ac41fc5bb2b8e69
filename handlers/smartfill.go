package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"promokit/config"
	"promokit/services"
)

// SmartFill returns AI-suggested copy for a template's text fields. Upstream
// trouble degrades to empty suggestions, never an error.
func SmartFill(c *gin.Context) {
	features := config.LoadFeatures()
	if !features.SmartFillEnabled {
		c.JSON(http.StatusNotFound, gin.H{"error": "Smart fill not enabled"})
		return
	}

	var req struct {
		TemplateID string `json:"templateId" binding:"required"`
		Prompt     string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "templateId and prompt are required"})
		return
	}

	tpl, err := fetchTemplate(req.TemplateID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fields": services.SmartFill(tpl.Fields, req.Prompt)})
}
