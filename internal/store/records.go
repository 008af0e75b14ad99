package store

import (
	"fmt"

	"brandstudio/internal/types"
)

// Fixed storage keys, one per logical collection. Branding is embedded in
// the school record rather than stored under its own key.
const (
	KeySchool = "brandstudio_school"
	KeyPosts  = "brandstudio_posts"
)

// LoadSchool returns the session's school record, or ok=false when no
// school has been registered yet.
func (s *RecordStore) LoadSchool() (*types.School, bool, error) {
	var school types.School
	ok, err := s.GetJSON(KeySchool, &school)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &school, true, nil
}

// SaveSchool overwrites the school record wholesale.
func (s *RecordStore) SaveSchool(school *types.School) error {
	if school == nil {
		return fmt.Errorf("school record must not be nil")
	}
	return s.Set(KeySchool, school)
}

// LoadPosts returns the post collection in stored order (append-on-create).
// An absent key reads as an empty collection.
func (s *RecordStore) LoadPosts() ([]types.Post, error) {
	var posts []types.Post
	if _, err := s.GetJSON(KeyPosts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// SavePosts overwrites the whole post collection. The collection is small
// (bounded by the plan limit) so whole-document writes keep the
// last-set-wins contract simple.
func (s *RecordStore) SavePosts(posts []types.Post) error {
	if posts == nil {
		posts = []types.Post{}
	}
	return s.Set(KeyPosts, posts)
}

// ClearSession removes the school record, matching the original logout
// behavior. Posts are left in place; no cascade delete exists.
func (s *RecordStore) ClearSession() error {
	return s.Remove(KeySchool)
}
