package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promokit/db"
	"promokit/models"
	"promokit/og"
)

type brandKitInput struct {
	Name             string `json:"name"`
	PrimaryColor     string `json:"primary_color"`
	SecondaryColor   string `json:"secondary_color"`
	FontPrimaryURL   string `json:"font_primary_url"`
	FontSecondaryURL string `json:"font_secondary_url"`
	LogoURL          string `json:"logo_url"`
}

func CreateBrandKit(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req brandKitInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	kit := models.BrandKit{
		Name:           req.Name,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
	}
	if err := models.ValidateBrandKit(&kit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var id string
	var createdAt string
	err := db.GetDB().QueryRow(`
		INSERT INTO brand_kits (user_id, name, primary_color, secondary_color, font_primary_url, font_secondary_url, logo_url)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
		RETURNING id, created_at
	`, userID, req.Name, req.PrimaryColor, req.SecondaryColor, req.FontPrimaryURL, req.FontSecondaryURL, req.LogoURL).Scan(&id, &createdAt)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand kit"})
		return
	}

	resp := gin.H{
		"id":              id,
		"name":            req.Name,
		"primary_color":   req.PrimaryColor,
		"secondary_color": req.SecondaryColor,
		"logo_url":        req.LogoURL,
		"created_at":      createdAt,
	}
	// Advisory only: a kit whose text color fails AA on its own background
	// still saves, but the caller is told.
	if ok, err := og.IsAccessible(req.PrimaryColor, req.SecondaryColor, "AA"); err == nil && !ok {
		resp["contrast_warning"] = "primary on secondary fails WCAG AA (contrast < 4.5:1)"
	}

	c.JSON(http.StatusCreated, resp)
}

func ListBrandKits(c *gin.Context) {
	userID, _ := c.Get("userID")

	rows, err := db.GetDB().Query(`
		SELECT id, name, primary_color, secondary_color,
		       COALESCE(font_primary_url, ''), COALESCE(font_secondary_url, ''), COALESCE(logo_url, ''),
		       created_at
		FROM brand_kits WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	kits := []models.BrandKit{}
	for rows.Next() {
		var k models.BrandKit
		if err := rows.Scan(&k.ID, &k.Name, &k.PrimaryColor, &k.SecondaryColor,
			&k.FontPrimaryURL, &k.FontSecondaryURL, &k.LogoURL, &k.CreatedAt); err != nil {
			continue
		}
		kits = append(kits, k)
	}

	c.JSON(http.StatusOK, gin.H{"brand_kits": kits})
}

func DeleteBrandKit(c *gin.Context) {
	userID, _ := c.Get("userID")
	id := c.Param("id")

	res, err := db.GetDB().Exec("DELETE FROM brand_kits WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand kit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand kit deleted"})
}
