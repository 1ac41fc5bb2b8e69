package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promokit/config"
	"promokit/services"
)

func slackEphemeral(c *gin.Context, text string) {
	c.JSON(http.StatusOK, gin.H{"response_type": "ephemeral", "text": text})
}

// SlackCommand handles the /promo slash command: the command text becomes the
// headline of the default template and the rendered image is posted back to
// the channel. Signature verification happens before anything else.
func SlackCommand(c *gin.Context) {
	features := config.LoadFeatures()
	if !features.SlackEnabled {
		c.JSON(http.StatusNotFound, gin.H{"error": "Slack integration not enabled"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable body"})
		return
	}

	ts := c.GetHeader("X-Slack-Request-Timestamp")
	sig := c.GetHeader("X-Slack-Signature")
	if !services.VerifySlackSignature(ts, string(body), sig, os.Getenv("SLACK_SIGNING_SECRET")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	params, err := url.ParseQuery(string(body))
	if err != nil {
		slackEphemeral(c, "Could not read the command. Please try again.")
		return
	}
	text := params.Get("text")
	if text == "" {
		text = "Quick promo"
	}

	templateID := os.Getenv("DEFAULT_TEMPLATE_ID")
	if templateID == "" {
		slackEphemeral(c, "No default template configured. Please contact your administrator.")
		return
	}

	tpl, err := fetchTemplate(templateID)
	if err != nil {
		config.Log.WithError(err).Error("Slack command: default template missing")
		slackEphemeral(c, "Failed to generate image. Please try again.")
		return
	}

	values := resolveFieldValues(tpl, map[string]string{"headline": text, "cta": "Shop now"})
	brand := services.LoadBrandKitAssets(tpl.BrandKitID, compositor.Fetcher)

	png, err := compositor.Compose(tpl.Width, tpl.Height, values, brand)
	if err != nil {
		config.Log.WithError(err).Error("Slack command render failed")
		slackEphemeral(c, "Failed to generate image. Please try again.")
		return
	}

	imgURL, err := services.UploadRender(png, fmt.Sprintf("renders/%s.png", uuid.NewString()), "image/png")
	if err != nil {
		config.Log.WithError(err).Error("Slack command upload failed")
		slackEphemeral(c, "Failed to generate image. Please try again.")
		return
	}
	if err := saveRender(c, tpl.ID, values, imgURL, "original"); err != nil {
		config.Log.WithError(err).Error("Slack command: failed to save render record")
	}

	c.JSON(http.StatusOK, gin.H{
		"response_type": "in_channel",
		"text":          "Here is your image",
		"attachments": []gin.H{
			{"image_url": imgURL, "alt_text": "Generated image"},
		},
	})
}
