package view

import (
	"fmt"
	"unicode/utf16"
)

// ColorMode selects how map primitives are colored.
type ColorMode string

const (
	ColorByCategory ColorMode = "category" // fixed palette keyed by category
	ColorByTrip     ColorMode = "trip"     // deterministic hue per trip identity
)

// categoryPalette maps the known event categories to their map colors.
var categoryPalette = map[string]string{
	"Flight": "#60a5fa",
	"Train":  "#34d399",
	"Bus":    "#fbbf24",
	"Car":    "#f87171",
	"Ferry":  "#22d3ee",
	"Hotel":  "#c084fc",
	"Other":  "#9ca3af",
}

// fallbackColor is used for categories outside the palette.
const fallbackColor = "#9ca3af"

// CategoryColor returns the palette color for a category, or the fallback
// for unrecognized ones.
func CategoryColor(category string) string {
	if c, ok := categoryPalette[category]; ok {
		return c
	}
	return fallbackColor
}

// IdentityColor derives a stable color from an arbitrary identifier: an
// FNV-1a hash over the identifier's UTF-16 code units picks one of 360 hues
// at fixed saturation and lightness. The same identifier always yields the
// same hue; distinct identifiers may collide, which is acceptable.
func IdentityColor(id string) string {
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", identityHue(id))
}

func identityHue(id string) int {
	const (
		offsetBasis = 2166136261
		prime       = 16777619
	)

	h := uint32(offsetBasis)
	for _, unit := range utf16.Encode([]rune(id)) {
		h ^= uint32(unit)
		h *= prime
	}

	// Interpret as a signed 32-bit value, then abs. int64 avoids the
	// MinInt32 negation overflow.
	v := int64(int32(h))
	if v < 0 {
		v = -v
	}
	return int(v % 360)
}
