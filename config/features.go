package config

import "os"

type Features struct {
	AuthEnabled      bool
	BillingEnabled   bool
	SlackEnabled     bool
	SmartFillEnabled bool
}

func LoadFeatures() Features {
	return Features{
		AuthEnabled:      os.Getenv("AUTH_ENABLED") == "true",
		BillingEnabled:   os.Getenv("BILLING_ENABLED") == "true",
		SlackEnabled:     os.Getenv("SLACK_ENABLED") == "true",
		SmartFillEnabled: os.Getenv("SMARTFILL_ENABLED") == "true",
	}
}
