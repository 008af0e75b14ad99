package genclient

import (
	"strings"
	"testing"

	"brandstudio/internal/types"
)

var testBranding = &types.BrandingConfig{
	PrimaryColor:   "#1a2b3c",
	SecondaryColor: "#d4e5f6",
	Tone:           types.ToneFriendly,
	FooterText:     "Northside Academy - Est. 1974",
}

func TestBuildCaptionPromptDeterministic(t *testing.T) {
	a := BuildCaptionPrompt("Northside", "Science Fair", "Annual fair", types.ToneFormal)
	b := BuildCaptionPrompt("Northside", "Science Fair", "Annual fair", types.ToneFormal)
	if a != b {
		t.Fatal("caption prompt is not deterministic")
	}
	for _, want := range []string{
		"School Name: Northside",
		"Title: Science Fair",
		"Description: Annual fair",
		"Tone: formal",
		"8 relevant hashtags",
	} {
		if !strings.Contains(a, want) {
			t.Errorf("caption prompt missing %q:\n%s", want, a)
		}
	}
}

func TestBuildImagePromptPoster(t *testing.T) {
	got := BuildImagePrompt("Open Day", "Campus tours all day", testBranding, false, false)
	for _, want := range []string{
		`Title: "Open Day"`,
		"Theme: Campus tours all day",
		"#1a2b3c",
		"#d4e5f6",
		"space for a school logo",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("poster prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildImagePromptEventWithoutReference(t *testing.T) {
	got := BuildImagePrompt("Sports Day", "Track and field", testBranding, true, false)
	for _, want := range []string{
		`school titled "Sports Day"`,
		"Professional academic photography",
		"#1a2b3c",
		"Northside Academy - Est. 1974",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("event prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Enhance this photo") {
		t.Error("event prompt without reference must not mention an uploaded photo")
	}
}

func TestBuildImagePromptEventWithReference(t *testing.T) {
	got := BuildImagePrompt("Sports Day", "Track and field", testBranding, true, true)
	for _, want := range []string{
		"Enhance this photo for marketing",
		"gradient overlay in #1a2b3c",
		"Description for context: Track and field.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("reference prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildImagePromptNilBranding(t *testing.T) {
	// Defensive: orchestration enforces branding presence, the prompt
	// builder does not.
	got := BuildImagePrompt("T", "D", nil, false, false)
	if got == "" {
		t.Fatal("nil branding should still produce a prompt")
	}
}
