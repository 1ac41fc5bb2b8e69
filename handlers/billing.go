package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"promokit/config"
	"promokit/db"
	"promokit/models"
	"promokit/services"
)

// GetSubscription returns the caller's billing-processor subscription, if any.
func GetSubscription(c *gin.Context) {
	features := config.LoadFeatures()
	if !features.BillingEnabled {
		c.JSON(http.StatusNotFound, gin.H{"error": "Billing not enabled"})
		return
	}

	userID, _ := c.Get("userID")

	var sub models.Subscription
	err := db.GetDB().QueryRow(`
		SELECT id, stripe_customer_id, stripe_sub_id, plan, status, current_period_end, updated_at
		FROM subscriptions WHERE user_id = $1
		ORDER BY updated_at DESC LIMIT 1
	`, userID).Scan(&sub.ID, &sub.StripeCustomerID, &sub.StripeSubID, &sub.Plan, &sub.Status, &sub.CurrentPeriodEnd, &sub.UpdatedAt)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusOK, gin.H{"subscription": nil, "plan": services.PlanFree})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": sub, "plan": sub.Plan})
}

// GetUsageOverview reports this month's render count against the plan quota.
func GetUsageOverview(c *gin.Context) {
	userID, _ := c.Get("userID")

	var tier string
	if err := db.GetDB().QueryRow("SELECT subscription_tier FROM users WHERE id = $1", userID).Scan(&tier); err != nil {
		tier = services.PlanFree
	}

	var rendersThisMonth int
	err := db.GetDB().QueryRow(`
		SELECT COUNT(*) FROM renders
		WHERE user_id = $1 AND created_at >= date_trunc('month', NOW())
	`, userID).Scan(&rendersThisMonth)
	if err != nil {
		rendersThisMonth = 0
	}

	var templateCount int
	if err := db.GetDB().QueryRow("SELECT COUNT(*) FROM templates WHERE user_id = $1", userID).Scan(&templateCount); err != nil {
		templateCount = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":               tier,
		"renders_this_month": rendersThisMonth,
		"render_limit":       services.GetRenderLimit(tier),
		"template_count":     templateCount,
		"template_limit":     services.GetTemplateLimit(tier),
	})
}

// ListRenders returns the caller's render history, newest first.
func ListRenders(c *gin.Context) {
	userID, _ := c.Get("userID")

	rows, err := db.GetDB().Query(`
		SELECT id, template_id, url, size, created_at
		FROM renders WHERE user_id = $1
		ORDER BY created_at DESC LIMIT 100
	`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	renders := []models.Render{}
	for rows.Next() {
		var r models.Render
		if err := rows.Scan(&r.ID, &r.TemplateID, &r.URL, &r.Size, &r.CreatedAt); err != nil {
			continue
		}
		renders = append(renders, r)
	}

	c.JSON(http.StatusOK, gin.H{"renders": renders})
}
