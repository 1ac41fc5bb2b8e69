package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promokit/config"
	"promokit/db"
	"promokit/models"
	"promokit/og"
	"promokit/services"
)

var compositor = og.NewCompositor()

type renderRequest struct {
	TemplateID string            `json:"templateId" binding:"required"`
	Fields     map[string]string `json:"fields"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
}

// RenderImage generates one image for a template and stores it with the
// "original" size label.
func RenderImage(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "templateId is required"})
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

	values := resolveFieldValues(tpl, req.Fields)
	brand := services.LoadBrandKitAssets(tpl.BrandKitID, compositor.Fetcher)

	width, height := tpl.Width, tpl.Height
	if req.Width > 0 {
		width = req.Width
	}
	if req.Height > 0 {
		height = req.Height
	}

	png, err := compositor.Compose(width, height, values, brand)
	if err != nil {
		config.Log.WithError(err).Error("Render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render image"})
		return
	}

	url, err := services.UploadRender(png, fmt.Sprintf("renders/%s.png", uuid.NewString()), "image/png")
	if err != nil {
		config.Log.WithError(err).Error("Render upload failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to store rendered image"})
		return
	}

	if err := saveRender(c, tpl.ID, values, url, "original"); err != nil {
		config.Log.WithError(err).Error("Failed to save render record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record render"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// RenderPack generates the template's content at every registry size, in
// registry order. One failed size fails the whole pack.
func RenderPack(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "templateId is required"})
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

	values := resolveFieldValues(tpl, req.Fields)
	brand := services.LoadBrandKitAssets(tpl.BrandKitID, compositor.Fetcher)

	pack, err := compositor.RenderPack(values, brand)
	if err != nil {
		config.Log.WithError(err).Error("Pack render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render pack"})
		return
	}

	items := make([]gin.H, 0, len(pack))
	for _, item := range pack {
		path := fmt.Sprintf("renders/%s_%s.png", uuid.NewString(), item.Size.Name)
		url, err := services.UploadRender(item.PNG, path, "image/png")
		if err != nil {
			config.Log.WithError(err).Error("Pack upload failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to store rendered pack"})
			return
		}
		if err := saveRender(c, tpl.ID, values, url, item.Size.Name); err != nil {
			config.Log.WithError(err).Error("Failed to save render record")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record render"})
			return
		}
		items = append(items, gin.H{"size": item.Size.Name, "url": url})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// resolveFieldValues merges caller values over template defaults and applies
// each text field's declared max length.
func resolveFieldValues(tpl models.Template, provided map[string]string) map[string]string {
	values := map[string]string{}
	for k, v := range tpl.DefaultValues {
		values[k] = v
	}
	for k, v := range provided {
		values[k] = v
	}
	for _, f := range tpl.Fields {
		if f.Type == "text" && f.MaxLen > 0 {
			if v, ok := values[f.Key]; ok {
				values[f.Key] = og.Ellipsize(v, f.MaxLen)
			}
		}
	}
	return values
}

// saveRender records the artifact. The user reference is nullable: public
// form submissions have no session.
func saveRender(c *gin.Context, templateID string, values map[string]string, url, size string) error {
	var userID interface{}
	if v, ok := c.Get("userID"); ok && v != "system-placeholder" {
		userID = v
	}
	payload, _ := json.Marshal(values)
	_, err := db.GetDB().Exec(`
		INSERT INTO renders (user_id, template_id, payload, url, size)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, templateID, payload, url, size)
	return err
}
