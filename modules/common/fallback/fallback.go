package fallback

import "strings"

// Deterministic defaults substituted when model-driven extraction fails.
// Nothing in this package may fail.

// Box - layout zone rectangle in percentage units relative to the canvas
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Zone names every generated layout must carry.
const (
	ZoneBackground = "background_image"
	ZoneHeadline   = "headline"
	ZoneTagline    = "tagline"
	ZoneCTA        = "cta_text"
	ZoneLogo       = "logo_area"
)

// ZoneNames - the five required zones in canonical order
func ZoneNames() []string {
	return []string{ZoneBackground, ZoneHeadline, ZoneTagline, ZoneCTA, ZoneLogo}
}

// DefaultLayout - fixed poster layout: full-bleed background, headline band,
// tagline under it, centered CTA, small logo slot at the bottom
func DefaultLayout() map[string]Box {
	return map[string]Box{
		ZoneBackground: {X: 0, Y: 0, Width: 100, Height: 100},
		ZoneHeadline:   {X: 10, Y: 8, Width: 80, Height: 15},
		ZoneTagline:    {X: 10, Y: 25, Width: 80, Height: 10},
		ZoneCTA:        {X: 25, Y: 75, Width: 50, Height: 10},
		ZoneLogo:       {X: 40, Y: 88, Width: 20, Height: 8},
	}
}

// DefaultCaptions - fixed caption trio
func DefaultCaptions() map[string]string {
	return map[string]string{
		"headline": "Take Control of Your Health",
		"tagline":  "Early detection saves lives",
		"cta":      "Book Your Free Screening Today",
	}
}

// EmptyImageList - the "no image produced" sentinel
func EmptyImageList() []string {
	return []string{""}
}

// SafeString - trimmed value or the provided fallback
func SafeString(value, fallbackValue string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return fallbackValue
}
