package ui

import (
	"strings"
	"testing"
	"time"

	"brandstudio/internal/types"
)

func TestStatusBadges(t *testing.T) {
	styles := DefaultStyles()
	cases := map[types.PostStatus]string{
		types.PostStatusGenerated:  "generated",
		types.PostStatusGenerating: "generating",
		types.PostStatusFailed:     "failed",
		types.PostStatusDraft:      "draft",
	}
	for status, want := range cases {
		badge := styles.StatusBadge(status)
		if !strings.Contains(badge, want) {
			t.Errorf("StatusBadge(%q) = %q, missing %q", status, badge, want)
		}
	}
}

func TestGalleryViewShowsFailedPosts(t *testing.T) {
	// Failed generations stay visible with a distinct badge; they never
	// disappear silently.
	m := GalleryModel{
		school: &types.School{Name: "Northside", PlanLimit: 5, PostsGeneratedThisMonth: 2},
		styles: DefaultStyles(),
		posts: []types.Post{
			{ID: "a", Title: "Science Fair", Status: types.PostStatusFailed,
				PostType: types.PostTypePoster, AspectRatio: types.RatioSquare, CreatedAt: time.Now()},
		},
	}
	view := m.View()
	if !strings.Contains(view, "failed") {
		t.Errorf("gallery view hides the failed post:\n%s", view)
	}
	if !strings.Contains(view, "Science Fair") {
		t.Errorf("gallery view missing post title:\n%s", view)
	}
	if !strings.Contains(view, "usage 2/5") {
		t.Errorf("gallery footer missing usage readout:\n%s", view)
	}
}

func TestGalleryViewEmpty(t *testing.T) {
	m := GalleryModel{
		school: &types.School{Name: "Northside", PlanLimit: 5},
		styles: DefaultStyles(),
	}
	if !strings.Contains(m.View(), "No posts yet") {
		t.Error("empty gallery should invite the user to create a post")
	}
}

func TestRenderPostDetailToleratesMissingArtifacts(t *testing.T) {
	// A generated record missing its artifacts (crash between writes)
	// renders defensively instead of erroring.
	post := &types.Post{
		ID:          "p",
		Title:       "Open Day",
		Description: "Campus tours",
		PostType:    types.PostTypePoster,
		AspectRatio: types.RatioLandscape,
		Status:      types.PostStatusGenerated,
		CreatedAt:   time.Now(),
	}
	out, err := RenderPostDetail(post)
	if err != nil {
		t.Fatalf("RenderPostDetail: %v", err)
	}
	if !strings.Contains(out, "Open Day") {
		t.Errorf("detail missing title:\n%s", out)
	}
}
