package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"promokit/config"
	"promokit/db"
	"promokit/models"
	"promokit/services"
)

type templateInput struct {
	Name          string            `json:"name"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	Fields        []models.Field    `json:"fields"`
	DefaultValues map[string]string `json:"default_values"`
	BrandKitID    *string           `json:"brand_kit_id"`
	IsPublicForm  bool              `json:"is_public_form"`
}

func CreateTemplate(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req templateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	tpl := models.Template{
		Name:          req.Name,
		Width:         req.Width,
		Height:        req.Height,
		Fields:        req.Fields,
		DefaultValues: req.DefaultValues,
	}
	if err := models.ValidateTemplate(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Plan quota check, mirroring the billing tier limits.
	var tier string
	var count int
	if err := db.GetDB().QueryRow("SELECT subscription_tier FROM users WHERE id = $1", userID).Scan(&tier); err != nil {
		tier = services.PlanFree
	}
	if err := db.GetDB().QueryRow("SELECT COUNT(*) FROM templates WHERE user_id = $1", userID).Scan(&count); err == nil {
		if count >= services.GetTemplateLimit(tier) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Template limit reached for your plan"})
			return
		}
	}

	fieldsJSON, _ := json.Marshal(req.Fields)
	defaultsJSON, _ := json.Marshal(req.DefaultValues)

	var id string
	var createdAt string
	err := db.GetDB().QueryRow(`
		INSERT INTO templates (user_id, name, width, height, fields, default_values, brand_kit_id, is_public_form)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, userID, req.Name, req.Width, req.Height, fieldsJSON, defaultsJSON, req.BrandKitID, req.IsPublicForm).Scan(&id, &createdAt)

	if err != nil {
		config.Log.WithError(err).Error("Failed to create template")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             id,
		"name":           req.Name,
		"width":          req.Width,
		"height":         req.Height,
		"fields":         req.Fields,
		"default_values": req.DefaultValues,
		"brand_kit_id":   req.BrandKitID,
		"is_public_form": req.IsPublicForm,
		"created_at":     createdAt,
	})
}

func ListTemplates(c *gin.Context) {
	userID, _ := c.Get("userID")

	rows, err := db.GetDB().Query(`
		SELECT id, name, width, height, fields, default_values, brand_kit_id, is_public_form, created_at
		FROM templates WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	templates := []models.Template{}
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			continue
		}
		templates = append(templates, tpl)
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// GetTemplate serves a single template. Without auth context it only serves
// templates flagged as public forms.
func GetTemplate(c *gin.Context) {
	id := c.Param("id")

	tpl, err := fetchTemplate(id)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if _, authed := c.Get("userID"); !authed && !tpl.IsPublicForm {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, tpl)
}

func DeleteTemplate(c *gin.Context) {
	userID, _ := c.Get("userID")
	id := c.Param("id")

	res, err := db.GetDB().Exec("DELETE FROM templates WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTemplate(row rowScanner) (models.Template, error) {
	var tpl models.Template
	var fieldsRaw, defaultsRaw []byte
	err := row.Scan(&tpl.ID, &tpl.Name, &tpl.Width, &tpl.Height, &fieldsRaw, &defaultsRaw, &tpl.BrandKitID, &tpl.IsPublicForm, &tpl.CreatedAt)
	if err != nil {
		return tpl, err
	}
	if err := json.Unmarshal(fieldsRaw, &tpl.Fields); err != nil {
		tpl.Fields = nil
	}
	if len(defaultsRaw) > 0 {
		_ = json.Unmarshal(defaultsRaw, &tpl.DefaultValues)
	}
	return tpl, nil
}

func fetchTemplate(id string) (models.Template, error) {
	row := db.GetDB().QueryRow(`
		SELECT id, name, width, height, fields, default_values, brand_kit_id, is_public_form, created_at
		FROM templates WHERE id = $1
	`, id)
	return scanTemplate(row)
}
