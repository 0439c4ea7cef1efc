package usecase

import (
	"context"
	"fmt"
	"html/template"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/render"

	"golang.org/x/sync/errgroup"
)

// ContentSource is the read side of the fixture repository.
type ContentSource interface {
	Posts(ctx context.Context) ([]domain.Post, error)
	PostBySlug(ctx context.Context, slug string) (domain.Post, bool, error)
	Projects(ctx context.Context) ([]domain.Project, error)
	FeaturedProjects(ctx context.Context) ([]domain.Project, error)
	Skills(ctx context.Context) ([]domain.Skill, error)
	Profile(ctx context.Context) (domain.PersonalInfo, error)
}

type Site struct {
	content ContentSource
}

func NewSite(content ContentSource) *Site {
	return &Site{content: content}
}

type HomeData struct {
	Profile  domain.PersonalInfo
	Featured []domain.Project
	Skills   []domain.SkillGroup
	Result   *domain.ActionResult
}

// Home gathers the landing page sections concurrently.
func (s *Site) Home(ctx context.Context) (HomeData, error) {
	var (
		data   HomeData
		skills []domain.Skill
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.content.Profile(gctx)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		data.Profile = p
		return nil
	})
	g.Go(func() error {
		ps, err := s.content.FeaturedProjects(gctx)
		if err != nil {
			return fmt.Errorf("featured projects: %w", err)
		}
		data.Featured = ps
		return nil
	})
	g.Go(func() error {
		sk, err := s.content.Skills(gctx)
		if err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		skills = sk
		return nil
	})
	if err := g.Wait(); err != nil {
		return HomeData{}, err
	}
	data.Skills = domain.GroupSkills(skills)
	return data, nil
}

func (s *Site) Posts(ctx context.Context) ([]domain.Post, error) {
	return s.content.Posts(ctx)
}

func (s *Site) Projects(ctx context.Context) ([]domain.Project, error) {
	return s.content.Projects(ctx)
}

func (s *Site) FeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	return s.content.FeaturedProjects(ctx)
}

func (s *Site) Skills(ctx context.Context) ([]domain.Skill, error) {
	return s.content.Skills(ctx)
}

func (s *Site) Profile(ctx context.Context) (domain.PersonalInfo, error) {
	return s.content.Profile(ctx)
}

type PostView struct {
	Post domain.Post
	Body template.HTML
}

// Post loads a published post and renders its body. ok is false when no
// published post has the slug.
func (s *Site) Post(ctx context.Context, slug string) (PostView, bool, error) {
	p, ok, err := s.content.PostBySlug(ctx, slug)
	if err != nil || !ok {
		return PostView{}, ok, err
	}
	body, err := render.Markdown(p.Content)
	if err != nil {
		return PostView{}, false, err
	}
	return PostView{Post: p, Body: body}, true, nil
}
