// Package types defines the data model shared by the store, the generation
// client, and the post lifecycle manager: schools, branding configs, and
// posts. The JSON shapes here are the persisted shapes and must stay stable
// across sessions; readers tolerate missing optional fields.
package types

import "time"

// PostStatus is the lifecycle state of a generation job.
type PostStatus string

const (
	// PostStatusDraft exists in the vocabulary but no operation produces
	// it today. Kept for shape compatibility with older records.
	PostStatusDraft PostStatus = "draft"

	PostStatusGenerating PostStatus = "generating"
	PostStatusGenerated  PostStatus = "generated"
	PostStatusFailed     PostStatus = "failed"
)

// Terminal reports whether the status permits no further transition except
// an explicit regenerate.
func (s PostStatus) Terminal() bool {
	return s == PostStatusGenerated || s == PostStatusFailed
}

// BrandTone steers caption wording.
type BrandTone string

const (
	ToneFormal        BrandTone = "formal"
	ToneFriendly      BrandTone = "friendly"
	ToneInspirational BrandTone = "inspirational"
)

// AspectRatio is the target image shape. Only ratios the image model
// accepts are listed; 4:5 portrait is deliberately absent (the API
// rejects it), 3:4 covers portrait layouts.
type AspectRatio string

const (
	RatioSquare    AspectRatio = "1:1"
	RatioPortrait  AspectRatio = "3:4"
	RatioLandscape AspectRatio = "16:9"
)

// ValidRatio reports whether r is one of the supported aspect ratios.
func ValidRatio(r AspectRatio) bool {
	switch r {
	case RatioSquare, RatioPortrait, RatioLandscape:
		return true
	}
	return false
}

// PostType distinguishes designed posters from event-photo posts.
type PostType string

const (
	PostTypePoster PostType = "poster"
	PostTypeEvent  PostType = "event"
)

// PlanTier is the subscription level controlling the monthly quota.
type PlanTier string

const (
	PlanFree  PlanTier = "free"
	PlanBasic PlanTier = "basic"
	PlanPro   PlanTier = "pro"
)

// ValidTier reports whether t names a known plan tier.
func ValidTier(t PlanTier) bool {
	switch t {
	case PlanFree, PlanBasic, PlanPro:
		return true
	}
	return false
}

// BrandingConfig is the visual and tonal identity a school applies to all
// generated content. It is saved wholesale; there is no per-field update.
type BrandingConfig struct {
	LogoURL        string    `json:"logoUrl"`
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	Tone           BrandTone `json:"tone"`
	FooterText     string    `json:"footerText"`
	FontPreference string    `json:"fontPreference"`
	SocialHandles  string    `json:"socialHandles"`
	LayoutStyle    string    `json:"layoutStyle"`
}

// School is the tenant/account record. Usage only moves forward; the quota
// ceiling is enforced at post creation, never retroactively.
type School struct {
	ID                      string          `json:"id"`
	Name                    string          `json:"name"`
	Email                   string          `json:"email"`
	PlanType                PlanTier        `json:"planType"`
	PostsGeneratedThisMonth int             `json:"postsGeneratedThisMonth"`
	PlanLimit               int             `json:"planLimit"`
	Branding                *BrandingConfig `json:"branding,omitempty"`
}

// Post is one generation job plus its artifacts. ImageURL, Caption, and
// Hashtags are populated together on success or not at all; a partial
// artifact never persists.
type Post struct {
	ID          string      `json:"id"`
	SchoolID    string      `json:"schoolId"`
	PostType    PostType    `json:"postType"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	AspectRatio AspectRatio `json:"aspectRatio"`
	Status      PostStatus  `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	GeneratedAt *time.Time  `json:"generatedAt,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Caption     string      `json:"caption,omitempty"`
	Hashtags    []string    `json:"hashtags,omitempty"`
}

// CaptionResult is the structured output of a caption generation call.
type CaptionResult struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta"`
}
