package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"promokit/config"
)

// NotifyBillingIssue emails the account about a problematic subscription
// transition (e.g. past_due) and posts a Slack notice. Best effort on both
// channels; the webhook handler never waits on this.
func NotifyBillingIssue(email, plan, status string) {
	defer func() {
		if r := recover(); r != nil {
			config.Log.Errorf("Billing notify panic recovered: %v", r)
		}
	}()

	text := fmt.Sprintf("Subscription on plan %q moved to status %q", plan, status)
	go SendSlackNotice("💳 Billing: " + text + " for " + email)

	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" || email == "" {
		config.Log.Info("Billing email skipped: missing SendGrid config or address")
		return
	}

	subject := fmt.Sprintf("[PromoKit] Action needed: subscription %s", status)
	body := fmt.Sprintf(`Hi,

%s.

Please update your payment details to keep generating images without
interruption. Your templates and brand kits are unaffected.

— PromoKit billing`, text)

	from := mail.NewEmail("PromoKit", os.Getenv("BILLING_FROM_EMAIL"))
	to := mail.NewEmail("", email)
	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(apiKey)

	response, err := client.Send(message)
	if err != nil {
		config.Log.WithError(err).Error("Billing email failed")
	} else {
		config.Log.WithField("status_code", response.StatusCode).Info("Billing email sent")
	}
}

// SendSlackNotice posts a message to the operations Slack webhook, if one is
// configured.
func SendSlackNotice(text string) {
	defer func() {
		if r := recover(); r != nil {
			config.Log.Errorf("Slack notice panic recovered: %v", r)
		}
	}()

	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		config.Log.WithError(err).Error("Slack notice failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		config.Log.WithField("status_code", resp.StatusCode).Error("Slack API error")
	}
}
