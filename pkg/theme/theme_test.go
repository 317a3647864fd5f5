package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteSelection(t *testing.T) {
	assert.Equal(t, "#FFFFFF", Palette("light").PrimaryBackground)
	assert.Equal(t, "#1A1A1A", Palette("dark").PrimaryBackground)

	// Unknown or empty modes fall back to light.
	assert.Equal(t, Palette("light"), Palette(""))
	assert.Equal(t, Palette("light"), Palette("solarized"))
}

func TestBrandColorStableAcrossModes(t *testing.T) {
	assert.Equal(t, Palette("light").Primary, Palette("dark").Primary)
}
