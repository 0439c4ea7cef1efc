package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfolio-site/internal/domain"
	infra "portfolio-site/pkg/infrastructure"
)

// ContentRepo serves the fixture collections. Accessors that take a context
// simulate a remote fetch with readDelay; the *Sync variants answer directly
// for server-rendered pages.
type ContentRepo struct {
	mu        sync.RWMutex
	posts     []domain.Post
	projects  []domain.Project
	skills    []domain.Skill
	profile   domain.PersonalInfo
	readDelay time.Duration
}

func NewContentRepo(readDelay time.Duration) *ContentRepo {
	r := &ContentRepo{readDelay: readDelay}
	r.Reset()
	return r
}

// Reset restores the fixture set, discarding admin edits.
func (r *ContentRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = fixturePosts()
	r.projects = fixtureProjects()
	r.skills = fixtureSkills()
	r.profile = fixtureProfile()
}

func (r *ContentRepo) wait(ctx context.Context) error {
	return infra.Sleep(ctx, r.readDelay)
}

// Posts returns published posts in fixture order.
func (r *ContentRepo) Posts(ctx context.Context) ([]domain.Post, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if p.Published {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// PostBySlug looks up a published post. A missing or draft slug is reported
// with ok=false, not an error.
func (r *ContentRepo) PostBySlug(ctx context.Context, slug string) (domain.Post, bool, error) {
	if err := r.wait(ctx); err != nil {
		return domain.Post{}, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.Slug == slug && p.Published {
			return p.Clone(), true, nil
		}
	}
	return domain.Post{}, false, nil
}

func (r *ContentRepo) Projects(ctx context.Context) ([]domain.Project, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *ContentRepo) FeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.FeaturedProjectsSync(), nil
}

func (r *ContentRepo) FeaturedProjectsSync() []domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Project
	for _, p := range r.projects {
		if p.Featured {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (r *ContentRepo) Skills(ctx context.Context) ([]domain.Skill, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.SkillsSync(), nil
}

func (r *ContentRepo) SkillsSync() []domain.Skill {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Skill(nil), r.skills...)
}

// SkillsByCategory groups skills for the landing page.
func (r *ContentRepo) SkillsByCategory() []domain.SkillGroup {
	return domain.GroupSkills(r.SkillsSync())
}

func (r *ContentRepo) Profile(ctx context.Context) (domain.PersonalInfo, error) {
	if err := r.wait(ctx); err != nil {
		return domain.PersonalInfo{}, err
	}
	return r.ProfileSync(), nil
}

func (r *ContentRepo) ProfileSync() domain.PersonalInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile
}

// AllPosts returns every post regardless of state, for the admin view.
func (r *ContentRepo) AllPosts() []domain.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p.Clone())
	}
	return out
}

func (r *ContentRepo) PostGroups() domain.PostGroups {
	g := domain.PostGroups{Published: []domain.Post{}, Drafts: []domain.Post{}}
	for _, p := range r.AllPosts() {
		if p.Published {
			g.Published = append(g.Published, p)
		} else {
			g.Drafts = append(g.Drafts, p)
		}
	}
	return g
}

// TogglePublished flips the published flag of the post with the given id and
// returns the updated post.
func (r *ContentRepo) TogglePublished(id string) (domain.Post, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts[i].Published = !r.posts[i].Published
			return r.posts[i].Clone(), true
		}
	}
	return domain.Post{}, false
}

// AddDraft appends p as an unpublished post and returns the stored copy.
// Slugs stay unique across drafts and published posts: a taken slug gets a
// numeric suffix.
func (r *ContentRepo) AddDraft(p domain.Post) domain.Post {
	p.Published = false
	r.mu.Lock()
	defer r.mu.Unlock()
	p.Slug = r.freeSlug(p.Slug)
	r.posts = append(r.posts, p.Clone())
	return p.Clone()
}

// freeSlug must be called with mu held.
func (r *ContentRepo) freeSlug(base string) string {
	taken := make(map[string]bool, len(r.posts))
	for _, p := range r.posts {
		taken[p.Slug] = true
	}
	slug := base
	for n := 2; taken[slug]; n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return slug
}
