package og

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampFontSize_NoMaxLenClampsBase(t *testing.T) {
	require.Equal(t, 64, ClampFontSize(64, 24, 80, 10, 0))
	require.Equal(t, 24, ClampFontSize(10, 24, 80, 10, 0))
	require.Equal(t, 80, ClampFontSize(200, 24, 80, 10, 0))
}

func TestClampFontSize_ShrinksOnOverflow(t *testing.T) {
	size := ClampFontSize(64, 24, 80, 200, 48)
	require.Less(t, size, 64)
	require.GreaterOrEqual(t, size, 24)
	// Never below 60% of base.
	require.GreaterOrEqual(t, size, 38)
}

func TestClampFontSize_FitsWithinMaxLen(t *testing.T) {
	// No overflow means no shrink.
	require.Equal(t, 64, ClampFontSize(64, 24, 80, 48, 48))
	require.Equal(t, 64, ClampFontSize(64, 24, 80, 20, 48))
}

func TestClampFontSize_FloorAtSixtyPercent(t *testing.T) {
	// Extreme overflow bottoms out at floor(base * 0.6).
	require.Equal(t, 38, ClampFontSize(64, 24, 80, 10000, 48))
}

func TestEllipsize(t *testing.T) {
	require.Equal(t, "hell…", Ellipsize("hello world", 5))
	require.Equal(t, "hi", Ellipsize("hi", 5))
	require.Equal(t, "hello", Ellipsize("hello", 5))
	require.Equal(t, "unchanged", Ellipsize("unchanged", 0))
	require.Equal(t, "…", Ellipsize("ab", 1))
}

func TestEllipsize_MultibyteSafe(t *testing.T) {
	require.Equal(t, "héll…", Ellipsize("héllo wörld", 5))
}
