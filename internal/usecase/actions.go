package usecase

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/render"
	infra "portfolio-site/pkg/infrastructure"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MaxUploadSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User-facing result messages.
const (
	MsgFillRequired    = "Please fill in all required fields."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgContactThanks   = "Thanks for your message! I will get back to you soon."
	MsgContactFailed   = "Submission failed, please try again later."
	MsgContactDeleted  = "Contact record deleted."
	MsgDeleteFailed    = "Delete failed, please try again later."
	MsgPostRequired    = "Title and content are required."
	MsgPostCreated     = "Post created!"
	MsgCreateFailed    = "Create failed, please try again later."
	MsgChooseFile      = "Please choose a file to upload."
	MsgUnsupportedType = "Only JPG, PNG, GIF and WebP images are supported."
	MsgFileTooLarge    = "Images must be 5MB or smaller."
	MsgImageUploaded   = "Image uploaded!"
	MsgUploadFailed    = "Upload failed, please try again later."
	MsgPostNotFound    = "Post not found."
	MsgPostPublished   = "Post published."
	MsgPostUnpublished = "Post moved to drafts."
	MsgToggleFailed    = "Update failed, please try again later."
)

type ContactStore interface {
	Save(ctx context.Context, c domain.ContactSubmission) error
	List(ctx context.Context) ([]domain.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}

type PostStore interface {
	TogglePublished(id string) (domain.Post, bool)
	AddDraft(p domain.Post) domain.Post
	ProfileSync() domain.PersonalInfo
}

type ActionsOptions struct {
	ActionDelay time.Duration
	UploadDelay time.Duration
	Now         func() time.Time
}

// Actions are the mock submission handlers. Each one validates its input,
// waits for an artificial delay and reports the outcome as an ActionResult;
// none of them return errors.
type Actions struct {
	contacts    ContactStore
	posts       PostStore
	log         *zap.Logger
	actionDelay time.Duration
	uploadDelay time.Duration
	now         func() time.Time
}

func NewActions(contacts ContactStore, posts PostStore, log *zap.Logger, opts ActionsOptions) *Actions {
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Actions{
		contacts:    contacts,
		posts:       posts,
		log:         log,
		actionDelay: opts.ActionDelay,
		uploadDelay: opts.UploadDelay,
		now:         now,
	}
}

// guard turns a panic inside fn into a failure result carrying failMsg.
func (a *Actions) guard(name, failMsg string, fn func() domain.ActionResult) (res domain.ActionResult) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("action panicked", zap.String("action", name), zap.Any("panic", r))
			res = domain.Fail(failMsg)
		}
	}()
	return fn()
}

func (a *Actions) SubmitContact(ctx context.Context, in domain.ContactInput) domain.ActionResult {
	return a.guard("submit_contact", MsgContactFailed, func() domain.ActionResult {
		name := strings.TrimSpace(in.Name)
		email := strings.TrimSpace(in.Email)
		message := strings.TrimSpace(in.Message)
		if name == "" || email == "" || message == "" {
			return domain.Fail(MsgFillRequired)
		}
		if !emailPattern.MatchString(in.Email) {
			return domain.Fail(MsgInvalidEmail)
		}
		if err := infra.Sleep(ctx, a.actionDelay); err != nil {
			a.log.Warn("contact submission interrupted", zap.Error(err))
			return domain.Fail(MsgContactFailed)
		}

		c := domain.ContactSubmission{
			ID:        uuid.NewString(),
			Name:      in.Name,
			Email:     in.Email,
			Message:   in.Message,
			CreatedAt: a.now().UTC(),
		}
		if err := a.contacts.Save(ctx, c); err != nil {
			a.log.Error("save contact", zap.Error(err))
			return domain.Fail(MsgContactFailed)
		}
		a.log.Info("new contact submission",
			zap.String("id", c.ID),
			zap.String("name", c.Name),
			zap.String("email", c.Email),
		)
		return domain.Ok(MsgContactThanks)
	})
}

// Contacts lists submissions received since the process started.
func (a *Actions) Contacts(ctx context.Context) ([]domain.ContactSubmission, error) {
	return a.contacts.List(ctx)
}

func (a *Actions) DeleteContact(ctx context.Context, id string) domain.ActionResult {
	return a.guard("delete_contact", MsgDeleteFailed, func() domain.ActionResult {
		if err := a.contacts.Delete(ctx, id); err != nil {
			a.log.Error("delete contact", zap.String("id", id), zap.Error(err))
			return domain.Fail(MsgDeleteFailed)
		}
		return domain.Ok(MsgContactDeleted)
	})
}

// CreatePost adds a draft post. It is listed in the admin drafts group until
// it is published.
func (a *Actions) CreatePost(ctx context.Context, in domain.PostInput) domain.ActionResult {
	return a.guard("create_post", MsgCreateFailed, func() domain.ActionResult {
		if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
			return domain.Fail(MsgPostRequired)
		}
		if err := infra.Sleep(ctx, a.actionDelay); err != nil {
			a.log.Warn("create post interrupted", zap.Error(err))
			return domain.Fail(MsgCreateFailed)
		}

		id := uuid.NewString()
		slug := render.Slugify(in.Title)
		if slug == "" {
			slug = id
		}
		excerpt := strings.TrimSpace(in.Excerpt)
		if excerpt == "" {
			excerpt = render.Excerpt(in.Content, render.DefaultExcerptLength)
		}
		now := a.now().UTC()
		profile := a.posts.ProfileSync()
		p := domain.Post{
			ID:          id,
			Title:       strings.TrimSpace(in.Title),
			Slug:        slug,
			Excerpt:     excerpt,
			Content:     in.Content,
			PublishedAt: now,
			UpdatedAt:   now,
			Author:      domain.Author{Name: profile.Name, Avatar: profile.Avatar},
			Tags:        append([]string{}, in.Tags...),
			Category:    in.Category,
		}
		stored := a.posts.AddDraft(p)
		a.log.Info("post created", zap.String("id", id), zap.String("slug", stored.Slug))

		res := domain.Ok(MsgPostCreated)
		res.PostID = id
		return res
	})
}

// UploadImage checks the declared type and size of an image and returns the
// URL it would be served from. The file itself is never stored.
func (a *Actions) UploadImage(ctx context.Context, f *domain.FileMeta) domain.ActionResult {
	return a.guard("upload_image", MsgUploadFailed, func() domain.ActionResult {
		if f == nil {
			return domain.Fail(MsgChooseFile)
		}
		name := path.Base(strings.ReplaceAll(strings.TrimSpace(f.Name), `\`, "/"))
		if name == "." || name == "/" {
			return domain.Fail(MsgChooseFile)
		}
		if !allowedImageTypes[f.ContentType] {
			return domain.Fail(MsgUnsupportedType)
		}
		if f.Size > MaxUploadSize {
			return domain.Fail(MsgFileTooLarge)
		}
		if err := infra.Sleep(ctx, a.uploadDelay); err != nil {
			a.log.Warn("upload interrupted", zap.Error(err))
			return domain.Fail(MsgUploadFailed)
		}

		res := domain.Ok(MsgImageUploaded)
		res.ImageURL = fmt.Sprintf("/uploads/%d-%s", a.now().UnixMilli(), name)
		return res
	})
}

// TogglePublished moves a post between the published and draft groups.
func (a *Actions) TogglePublished(ctx context.Context, id string) domain.ActionResult {
	return a.guard("toggle_published", MsgToggleFailed, func() domain.ActionResult {
		if err := ctx.Err(); err != nil {
			return domain.Fail(MsgToggleFailed)
		}
		p, ok := a.posts.TogglePublished(id)
		if !ok {
			return domain.Fail(MsgPostNotFound)
		}
		res := domain.Ok(MsgPostUnpublished)
		if p.Published {
			res.Message = MsgPostPublished
		}
		res.PostID = p.ID
		return res
	})
}
