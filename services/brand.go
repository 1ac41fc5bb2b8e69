package services

import (
	"promokit/config"
	"promokit/db"
	"promokit/og"
)

// DefaultBrand is used when a template has no brand kit or the kit cannot be
// loaded: dark text on a white canvas, no logo, no custom font.
func DefaultBrand() og.Brand {
	return og.Brand{
		PrimaryColor:   "#111111",
		SecondaryColor: "#ffffff",
	}
}

// LoadBrandKitAssets resolves a brand kit row into ready-to-compose assets,
// fetching the primary font eagerly. Every failure here is absorbed into safe
// defaults; brand trouble must never block image generation.
func LoadBrandKitAssets(brandKitID *string, fetcher *og.AssetFetcher) og.Brand {
	if brandKitID == nil || *brandKitID == "" {
		return DefaultBrand()
	}

	var primary, secondary string
	var fontURL, logoURL *string
	err := db.GetDB().QueryRow(`
		SELECT primary_color, secondary_color, font_primary_url, logo_url
		FROM brand_kits WHERE id = $1
	`, *brandKitID).Scan(&primary, &secondary, &fontURL, &logoURL)
	if err != nil {
		config.Log.WithError(err).WithField("brand_kit_id", *brandKitID).Warn("Brand kit load failed, using defaults")
		return DefaultBrand()
	}

	brand := og.Brand{PrimaryColor: primary, SecondaryColor: secondary}
	if logoURL != nil {
		brand.LogoURL = *logoURL
	}
	if fontURL != nil && *fontURL != "" {
		fontBytes, err := fetcher.FetchBytes(*fontURL)
		if err != nil {
			config.Log.WithError(err).Warn("Brand font fetch failed, using default font")
		} else {
			brand.FontPrimary = fontBytes
		}
	}
	return brand
}
