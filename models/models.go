package models

import (
	"time"
)

type Field struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Type     string `json:"type"` // "text" or "image"
	MaxLen   int    `json:"maxLen,omitempty"`
	Required bool   `json:"required,omitempty"`
	Align    string `json:"align,omitempty"` // left|center|right
}

type Template struct {
	ID            string            `json:"id"`
	UserID        *string           `json:"user_id,omitempty"`
	Name          string            `json:"name"`
	Width         int               `json:"width"`
	Height        int               `json:"height"`
	Fields        []Field           `json:"fields"`
	DefaultValues map[string]string `json:"default_values,omitempty"`
	BrandKitID    *string           `json:"brand_kit_id,omitempty"`
	IsPublicForm  bool              `json:"is_public_form"`
	CreatedAt     time.Time         `json:"created_at"`
}

type BrandKit struct {
	ID               string    `json:"id"`
	UserID           *string   `json:"user_id,omitempty"`
	Name             string    `json:"name"`
	PrimaryColor     string    `json:"primary_color"`
	SecondaryColor   string    `json:"secondary_color"`
	FontPrimaryURL   string    `json:"font_primary_url,omitempty"`
	FontSecondaryURL string    `json:"font_secondary_url,omitempty"`
	LogoURL          string    `json:"logo_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Render is an immutable artifact record: only ever created or read.
type Render struct {
	ID         string            `json:"id"`
	UserID     *string           `json:"user_id,omitempty"`
	TemplateID string            `json:"template_id"`
	Payload    map[string]string `json:"payload"`
	URL        string            `json:"url"`
	Size       string            `json:"size"` // "original" or a pack size name
	CreatedAt  time.Time         `json:"created_at"`
}

// Subscription mirrors the billing processor's view of an account. Plan and
// status are opaque strings from the processor's vocabulary.
type Subscription struct {
	ID               string     `json:"id"`
	UserID           *string    `json:"user_id,omitempty"`
	StripeCustomerID string     `json:"stripe_customer_id"`
	StripeSubID      string     `json:"stripe_sub_id"`
	Plan             string     `json:"plan"`
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
