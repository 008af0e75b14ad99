package store

import (
	"testing"
	"time"

	"brandstudio/internal/types"

	"github.com/google/go-cmp/cmp"
)

func TestSchoolRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if _, ok, err := s.LoadSchool(); ok || err != nil {
		t.Fatalf("LoadSchool on empty store: ok=%v err=%v", ok, err)
	}

	school := &types.School{
		ID:        "school-1",
		Name:      "Northside Academy",
		Email:     "admin@northside.edu",
		PlanType:  types.PlanBasic,
		PlanLimit: 50,
		Branding: &types.BrandingConfig{
			PrimaryColor: "#123456",
			Tone:         types.ToneFormal,
		},
	}
	if err := s.SaveSchool(school); err != nil {
		t.Fatalf("SaveSchool: %v", err)
	}

	got, ok, err := s.LoadSchool()
	if err != nil || !ok {
		t.Fatalf("LoadSchool: ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(school, got); diff != "" {
		t.Fatalf("school mismatch (-want +got):\n%s", diff)
	}
}

func TestPostsEmptyCollection(t *testing.T) {
	s := newTestStore(t)

	posts, err := s.LoadPosts()
	if err != nil {
		t.Fatalf("LoadPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty collection, got %d posts", len(posts))
	}
}

func TestPostsPreserveOrder(t *testing.T) {
	s := newTestStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	posts := []types.Post{
		{ID: "a", SchoolID: "s", Status: types.PostStatusGenerated, CreatedAt: now},
		{ID: "b", SchoolID: "s", Status: types.PostStatusGenerating, CreatedAt: now.Add(time.Minute)},
	}
	if err := s.SavePosts(posts); err != nil {
		t.Fatalf("SavePosts: %v", err)
	}

	got, err := s.LoadPosts()
	if err != nil {
		t.Fatalf("LoadPosts: %v", err)
	}
	if diff := cmp.Diff(posts, got); diff != "" {
		t.Fatalf("posts mismatch (-want +got):\n%s", diff)
	}
}

func TestClearSessionLeavesPosts(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveSchool(&types.School{ID: "s"}); err != nil {
		t.Fatalf("SaveSchool: %v", err)
	}
	if err := s.SavePosts([]types.Post{{ID: "p", SchoolID: "s"}}); err != nil {
		t.Fatalf("SavePosts: %v", err)
	}

	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if _, ok, _ := s.LoadSchool(); ok {
		t.Fatal("school still present after ClearSession")
	}
	posts, err := s.LoadPosts()
	if err != nil || len(posts) != 1 {
		t.Fatalf("posts after ClearSession: %v err=%v", posts, err)
	}
}
