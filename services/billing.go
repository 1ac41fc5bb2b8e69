package services

import "strings"

const (
	PlanFree = "free"
	PlanPro  = "pro"
	PlanTeam = "team"

	TemplateLimitFree = 3
	TemplateLimitPro  = 25
	TemplateLimitTeam = 100

	RenderLimitFree = 50
	RenderLimitPro  = 1000
	RenderLimitTeam = 5000
)

// GetTemplateLimit maps a plan tier to its template quota. The billing
// processor's plan nicknames are opaque text, so anything unrecognized falls
// back to the free quota.
func GetTemplateLimit(tier string) int {
	switch strings.ToLower(tier) {
	case PlanPro:
		return TemplateLimitPro
	case PlanTeam:
		return TemplateLimitTeam
	default:
		return TemplateLimitFree
	}
}

// GetRenderLimit maps a plan tier to its monthly render quota.
func GetRenderLimit(tier string) int {
	switch strings.ToLower(tier) {
	case PlanPro:
		return RenderLimitPro
	case PlanTeam:
		return RenderLimitTeam
	default:
		return RenderLimitFree
	}
}
