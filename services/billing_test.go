package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetTemplateLimit(t *testing.T) {
	require.Equal(t, TemplateLimitFree, GetTemplateLimit("free"))
	require.Equal(t, TemplateLimitPro, GetTemplateLimit("pro"))
	require.Equal(t, TemplateLimitPro, GetTemplateLimit("Pro"))
	require.Equal(t, TemplateLimitTeam, GetTemplateLimit("team"))
	// Plan nicknames are opaque processor text; anything else is free tier.
	require.Equal(t, TemplateLimitFree, GetTemplateLimit(""))
	require.Equal(t, TemplateLimitFree, GetTemplateLimit("enterprise-legacy"))
}

func TestGetRenderLimit(t *testing.T) {
	require.Equal(t, RenderLimitFree, GetRenderLimit("free"))
	require.Equal(t, RenderLimitPro, GetRenderLimit("pro"))
	require.Equal(t, RenderLimitTeam, GetRenderLimit("TEAM"))
	require.Equal(t, RenderLimitFree, GetRenderLimit("unknown"))
}
