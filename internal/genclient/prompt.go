package genclient

import (
	"fmt"

	"brandstudio/internal/types"
)

// Prompt construction is pure: same inputs, same prompt string. The prompt
// text is data, not protocol - any provider that accepts a text prompt and
// optional reference-image bytes can be substituted behind the client.

// BuildCaptionPrompt renders the caption request for a post.
func BuildCaptionPrompt(schoolName, title, description string, tone types.BrandTone) string {
	return fmt.Sprintf(`Generate Instagram caption for:
School Name: %s
Title: %s
Description: %s
Tone: %s

Include:
- Engaging opening line
- Short structured caption
- Call to action
- 8 relevant hashtags`, schoolName, title, description, tone)
}

// BuildImagePrompt renders the image request. Posters get a designed layout
// around the brand colors; events get photographic treatment, either
// enhancing an uploaded reference photo or staging one from scratch.
func BuildImagePrompt(title, description string, branding *types.BrandingConfig, isEvent, hasReference bool) string {
	if branding == nil {
		branding = &types.BrandingConfig{}
	}

	if isEvent {
		if hasReference {
			return fmt.Sprintf(`This is a photo for a school event titled "%s". `+
				`Enhance this photo for marketing. Apply a subtle gradient overlay in %s. `+
				`Ensure the aesthetic is professional and academic. `+
				`Description for context: %s.`,
				title, branding.PrimaryColor, description)
		}
		return fmt.Sprintf(`An event photo for a school titled "%s". Description: %s. `+
			`Style: Professional academic photography, high quality. `+
			`Apply a subtle brand overlay using primary color %s. `+
			`Leave a clean bottom strip for text: %s.`,
			title, description, branding.PrimaryColor, branding.FooterText)
	}

	return fmt.Sprintf(`A high-quality educational marketing poster for a school. `+
		`Title: "%s". `+
		`Theme: %s. `+
		`Colors: Use %s and %s as dominant themes. `+
		`Style: Minimalist, professional, clean layout with space for a school logo. `+
		`Format: Academic excellence.`,
		title, description, branding.PrimaryColor, branding.SecondaryColor)
}
