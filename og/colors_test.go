package og

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelativeLuminance_Extremes(t *testing.T) {
	black, err := RelativeLuminance("#000000")
	require.NoError(t, err)
	require.InDelta(t, 0.0, black, 1e-9)

	white, err := RelativeLuminance("#ffffff")
	require.NoError(t, err)
	require.InDelta(t, 1.0, white, 1e-9)
}

func TestRelativeLuminance_InvalidInput(t *testing.T) {
	for _, hex := range []string{"", "red", "#fff", "#12345g", "#1234567"} {
		_, err := RelativeLuminance(hex)
		require.Error(t, err, "expected error for %q", hex)
	}
}

func TestContrastRatio_SymmetricAndAtLeastOne(t *testing.T) {
	pairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#111111", "#ffffff"},
		{"#ff0000", "#00ff00"},
		{"#abcdef", "#abcdef"},
	}
	for _, p := range pairs {
		ab, err := ContrastRatio(p[0], p[1])
		require.NoError(t, err)
		ba, err := ContrastRatio(p[1], p[0])
		require.NoError(t, err)
		require.InDelta(t, ab, ba, 1e-9)
		require.GreaterOrEqual(t, ab, 1.0)
	}
}

func TestContrastRatio_BlackOnWhite(t *testing.T) {
	ratio, err := ContrastRatio("#000000", "#ffffff")
	require.NoError(t, err)
	require.InDelta(t, 21.0, ratio, 0.01)
}

func TestIsAccessible_AAAImpliesAA(t *testing.T) {
	pairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#111111", "#ffffff"},
		{"#767676", "#ffffff"},
		{"#888888", "#999999"},
	}
	for _, p := range pairs {
		aaa, err := IsAccessible(p[0], p[1], "AAA")
		require.NoError(t, err)
		aa, err := IsAccessible(p[0], p[1], "AA")
		require.NoError(t, err)
		if aaa {
			require.True(t, aa, "%v passes AAA but not AA", p)
		}
	}
}

func TestIsAccessible_LowContrastFails(t *testing.T) {
	ok, err := IsAccessible("#888888", "#999999", "AA")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#1A2b3C")
	require.NoError(t, err)
	require.Equal(t, uint8(0x1a), c.R)
	require.Equal(t, uint8(0x2b), c.G)
	require.Equal(t, uint8(0x3c), c.B)
	require.Equal(t, uint8(0xff), c.A)

	_, err = ParseHexColor("nope")
	require.Error(t, err)
}
