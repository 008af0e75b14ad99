// Package lifecycle implements the post orchestration state machine: create
// a placeholder record, fan out the two generation calls, reconcile the
// results into the store, and meter usage.
//
// The store has no cross-key transactions. The write sequence on success is
// posts-then-school; a crash between the two leaves a generated post with an
// unincremented counter. That window is documented and tolerated, not
// hidden.
package lifecycle

import (
	"context"
	"fmt"
	"sort"
	"time"

	"brandstudio/internal/logging"
	"brandstudio/internal/quota"
	"brandstudio/internal/store"
	"brandstudio/internal/types"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Generator is the slice of the generation client the manager needs.
// Declared here so tests can stub the network boundary.
type Generator interface {
	GenerateCaption(ctx context.Context, schoolName, title, description string, tone types.BrandTone) (*types.CaptionResult, error)
	GenerateMarketingImage(ctx context.Context, title, description string, branding *types.BrandingConfig, ratio types.AspectRatio, isEvent bool, referenceImage []byte) (string, error)
}

// ValidationError reports a rejected request: missing input, missing
// branding, or an exhausted quota. Nothing is persisted when one is
// returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// ErrGenerationFailed is the generic retryable error surfaced to the user
// when either generation call fails. The post record carries the failed
// status; the quota is not consumed.
var ErrGenerationFailed = fmt.Errorf("generation failed, please try again")

// Manager orchestrates post creation against a single school session.
// Session state is always passed in explicitly; there is no ambient
// current-school singleton.
type Manager struct {
	store *store.RecordStore
	gen   Generator

	// Injectable for tests.
	newID func() string
	now   func() time.Time
}

// New creates a lifecycle manager over the given store and generator.
func New(s *store.RecordStore, gen Generator) *Manager {
	return &Manager{
		store: s,
		gen:   gen,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateParams are the user inputs for a new post.
type CreateParams struct {
	Title          string
	Description    string
	PostType       types.PostType
	AspectRatio    types.AspectRatio
	ReferenceImage []byte // optional, event posts only
}

func (p CreateParams) validate() error {
	if p.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if p.Description == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if p.PostType != types.PostTypePoster && p.PostType != types.PostTypeEvent {
		return &ValidationError{Field: "postType", Reason: fmt.Sprintf("unknown type %q", p.PostType)}
	}
	if !types.ValidRatio(p.AspectRatio) {
		return &ValidationError{Field: "aspectRatio", Reason: fmt.Sprintf("unsupported ratio %q", p.AspectRatio)}
	}
	return nil
}

// Create runs the full create flow for the given school.
//
// Effects, in order: the placeholder record is persisted with status
// generating before any network call is issued (so a gallery reader sees
// the in-progress post immediately); the caption and image calls run
// concurrently; both succeeding merges the artifacts, stamps generatedAt,
// persists, and increments the school's usage by exactly one; either
// failing persists a failed record and leaves usage untouched.
func (m *Manager) Create(ctx context.Context, school *types.School, params CreateParams) (*types.Post, error) {
	if school == nil {
		return nil, &ValidationError{Field: "school", Reason: "session has no school record"}
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	if school.Branding == nil {
		return nil, &ValidationError{Field: "branding", Reason: "school has no branding configured"}
	}
	if !quota.SchoolCanGenerate(school) {
		return nil, &ValidationError{
			Field:  "quota",
			Reason: fmt.Sprintf("monthly limit reached (%d/%d)", school.PostsGeneratedThisMonth, school.PlanLimit),
		}
	}

	post := types.Post{
		ID:          m.newID(),
		SchoolID:    school.ID,
		PostType:    params.PostType,
		Title:       params.Title,
		Description: params.Description,
		AspectRatio: params.AspectRatio,
		Status:      types.PostStatusGenerating,
		CreatedAt:   m.now(),
	}

	posts, err := m.store.LoadPosts()
	if err != nil {
		return nil, err
	}
	posts = append(posts, post)
	if err := m.store.SavePosts(posts); err != nil {
		return nil, err
	}
	logging.Lifecycle("Created post %s (%s, %s) in generating state", post.ID, post.PostType, post.AspectRatio)

	return m.generate(ctx, school, post, params.ReferenceImage, true)
}

// Regenerate re-runs generation for an existing post, reusing its
// identifier, title, description, aspect ratio, and type. Quota is not
// consulted: regeneration is free by design. The collection length never
// changes.
func (m *Manager) Regenerate(ctx context.Context, school *types.School, postID string) (*types.Post, error) {
	if school == nil {
		return nil, &ValidationError{Field: "school", Reason: "session has no school record"}
	}
	if school.Branding == nil {
		return nil, &ValidationError{Field: "branding", Reason: "school has no branding configured"}
	}

	posts, err := m.store.LoadPosts()
	if err != nil {
		return nil, err
	}
	idx := indexByID(posts, postID)
	if idx < 0 {
		return nil, &ValidationError{Field: "post", Reason: fmt.Sprintf("no post with id %q", postID)}
	}

	post := posts[idx]
	post.Status = types.PostStatusGenerating
	posts[idx] = post
	if err := m.store.SavePosts(posts); err != nil {
		return nil, err
	}
	logging.Lifecycle("Regenerating post %s", post.ID)

	return m.generate(ctx, school, post, nil, false)
}

// generate fans out the two calls and writes back the terminal record.
// meterUsage distinguishes create (counted) from regenerate (free).
func (m *Manager) generate(ctx context.Context, school *types.School, post types.Post, referenceImage []byte, meterUsage bool) (*types.Post, error) {
	var (
		caption  *types.CaptionResult
		imageURI string
	)

	// Fan-out/fan-in: both must complete, the first failure cancels the
	// sibling's context and short-circuits the join.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		caption, err = m.gen.GenerateCaption(gctx, school.Name, post.Title, post.Description, school.Branding.Tone)
		return err
	})
	g.Go(func() error {
		var err error
		imageURI, err = m.gen.GenerateMarketingImage(gctx, post.Title, post.Description, school.Branding,
			post.AspectRatio, post.PostType == types.PostTypeEvent, referenceImage)
		return err
	})

	if err := g.Wait(); err != nil {
		// All-or-nothing: a partial success is discarded, the whole post
		// is failed, and usage stays untouched.
		logging.Lifecycle("Post %s failed: %v", post.ID, err)
		post.Status = types.PostStatusFailed
		if saveErr := m.writeBack(post); saveErr != nil {
			return nil, saveErr
		}
		return &post, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	generatedAt := m.now()
	post.Status = types.PostStatusGenerated
	post.GeneratedAt = &generatedAt
	post.ImageURL = imageURI
	post.Caption = caption.Caption
	post.Hashtags = caption.Hashtags

	if err := m.writeBack(post); err != nil {
		return nil, err
	}

	if meterUsage {
		// Second key write; not atomic with the post write above.
		school.PostsGeneratedThisMonth++
		if err := m.store.SaveSchool(school); err != nil {
			return nil, fmt.Errorf("post saved but usage update failed: %w", err)
		}
	}
	logging.Lifecycle("Post %s generated (usage %d/%d)", post.ID, school.PostsGeneratedThisMonth, school.PlanLimit)
	return &post, nil
}

// writeBack replaces the record matching post.ID in the collection. A
// late-arriving write still targets the right record by identifier, so a
// user navigating away mid-generation cannot orphan the result.
func (m *Manager) writeBack(post types.Post) error {
	posts, err := m.store.LoadPosts()
	if err != nil {
		return err
	}
	idx := indexByID(posts, post.ID)
	if idx < 0 {
		// Record was deleted while generation was in flight; drop the
		// result rather than resurrecting the post.
		logging.Lifecycle("Post %s vanished during generation, discarding result", post.ID)
		return nil
	}
	posts[idx] = post
	return m.store.SavePosts(posts)
}

// Delete removes the record with the given identifier. Deleting an absent
// identifier is a no-op, not an error.
func (m *Manager) Delete(postID string) error {
	posts, err := m.store.LoadPosts()
	if err != nil {
		return err
	}
	idx := indexByID(posts, postID)
	if idx < 0 {
		return nil
	}
	posts = append(posts[:idx], posts[idx+1:]...)
	logging.Lifecycle("Deleted post %s", postID)
	return m.store.SavePosts(posts)
}

// List returns the school's posts sorted by creation time descending.
func (m *Manager) List(schoolID string) ([]types.Post, error) {
	posts, err := m.store.LoadPosts()
	if err != nil {
		return nil, err
	}
	out := make([]types.Post, 0, len(posts))
	for _, p := range posts {
		if p.SchoolID == schoolID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Get returns a single post by identifier.
func (m *Manager) Get(postID string) (*types.Post, bool, error) {
	posts, err := m.store.LoadPosts()
	if err != nil {
		return nil, false, err
	}
	idx := indexByID(posts, postID)
	if idx < 0 {
		return nil, false, nil
	}
	p := posts[idx]
	return &p, true, nil
}

// Stats summarizes a school's posts for the dashboard readout.
type Stats struct {
	Total      int
	Generated  int
	Generating int
	Failed     int
}

// CountByStatus tallies the school's posts per status.
func (m *Manager) CountByStatus(schoolID string) (Stats, error) {
	posts, err := m.List(schoolID)
	if err != nil {
		return Stats{}, err
	}
	var s Stats
	for _, p := range posts {
		s.Total++
		switch p.Status {
		case types.PostStatusGenerated:
			s.Generated++
		case types.PostStatusGenerating:
			s.Generating++
		case types.PostStatusFailed:
			s.Failed++
		}
	}
	return s, nil
}

func indexByID(posts []types.Post, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}
