package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"promokit/config"
	"promokit/db"
	"promokit/services"
)

var subscriptionStore services.SubscriptionStore = services.PostgresSubscriptionStore{}

type billingEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID               string `json:"id"`
			Customer         string `json:"customer"`
			Status           string `json:"status"`
			CurrentPeriodEnd int64  `json:"current_period_end"`
			Items            struct {
				Data []struct {
					Price struct {
						Nickname string `json:"nickname"`
					} `json:"price"`
				} `json:"data"`
			} `json:"items"`
		} `json:"object"`
	} `json:"data"`
}

// BillingWebhook syncs subscription state from the payment processor.
// Signature failures are rejected before any processing; duplicate
// deliveries are idempotent because the store upserts by subscription id.
func BillingWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable body"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	if !services.VerifyStripeSignature(sig, string(body), os.Getenv("STRIPE_WEBHOOK_SECRET")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	var event billingEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event payload"})
		return
	}

	switch event.Type {
	case "customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted":

		obj := event.Data.Object
		plan := "unknown"
		if len(obj.Items.Data) > 0 && obj.Items.Data[0].Price.Nickname != "" {
			plan = obj.Items.Data[0].Price.Nickname
		}
		change := services.SubscriptionChange{
			CustomerID:     obj.Customer,
			SubscriptionID: obj.ID,
			Plan:           plan,
			Status:         obj.Status,
		}
		if obj.CurrentPeriodEnd > 0 {
			end := time.Unix(obj.CurrentPeriodEnd, 0).UTC()
			change.CurrentPeriodEnd = &end
		}

		prevStatus, err := services.ApplySubscriptionEvent(subscriptionStore, event.Type, change)
		if err != nil {
			config.Log.WithError(err).WithField("event_id", event.ID).Error("Subscription sync failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
			return
		}

		if obj.Status == "past_due" && prevStatus != "past_due" {
			go notifyBillingIssueForCustomer(obj.Customer, plan, obj.Status)
		}

	default:
		config.Log.WithField("event_type", event.Type).Info("Unhandled billing event type")
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func notifyBillingIssueForCustomer(customerID, plan, status string) {
	var email string
	err := db.GetDB().QueryRow(
		"SELECT email FROM users WHERE stripe_customer_id = $1", customerID,
	).Scan(&email)
	if err != nil {
		config.Log.WithField("customer_id", customerID).Warn("No account for billing notice")
		return
	}
	services.NotifyBillingIssue(email, plan, status)
}
