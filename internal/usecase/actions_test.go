package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-site/internal/adapter/repository"
	"portfolio-site/internal/domain"
)

var fixedNow = time.Date(2024, 10, 10, 12, 0, 0, 0, time.UTC)

func newTestActions() (*Actions, *repository.ContactsRepo, *repository.ContentRepo) {
	contacts := repository.NewContactsRepo()
	content := repository.NewContentRepo(0)
	a := NewActions(contacts, content, nil, ActionsOptions{Now: func() time.Time { return fixedNow }})
	return a, contacts, content
}

func TestSubmitContactRequiresEveryField(t *testing.T) {
	a, contacts, _ := newTestActions()
	inputs := []domain.ContactInput{
		{Name: "", Email: "a@b.com", Message: "hi"},
		{Name: "Ann", Email: "", Message: "hi"},
		{Name: "Ann", Email: "a@b.com", Message: ""},
		{Name: "   ", Email: "a@b.com", Message: "hi"},
		{Name: "Ann", Email: "a@b.com", Message: "\n\t"},
	}
	for _, in := range inputs {
		res := a.SubmitContact(context.Background(), in)
		assert.False(t, res.Success)
		assert.Equal(t, MsgFillRequired, res.Message)
	}
	assert.Equal(t, 0, contacts.Count())
}

func TestSubmitContactRejectsBadEmail(t *testing.T) {
	a, contacts, _ := newTestActions()
	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@b.com", "a@.com x"} {
		res := a.SubmitContact(context.Background(), domain.ContactInput{Name: "Ann", Email: email, Message: "hi"})
		assert.False(t, res.Success, email)
		assert.Equal(t, MsgInvalidEmail, res.Message, email)
	}
	assert.Equal(t, 0, contacts.Count())
}

func TestSubmitContactAppendsOneRecordWithFreshID(t *testing.T) {
	a, contacts, _ := newTestActions()
	ctx := context.Background()
	seen := map[string]bool{}
	for i := 1; i <= 5; i++ {
		res := a.SubmitContact(ctx, domain.ContactInput{Name: "Ann", Email: "a@b.com", Message: "hello"})
		require.True(t, res.Success)
		assert.Equal(t, MsgContactThanks, res.Message)
		require.Equal(t, i, contacts.Count())

		list, err := a.Contacts(ctx)
		require.NoError(t, err)
		last := list[len(list)-1]
		assert.NotEmpty(t, last.ID)
		assert.False(t, seen[last.ID], "ids must be unique")
		seen[last.ID] = true
		assert.Equal(t, fixedNow, last.CreatedAt)
		assert.Equal(t, "a@b.com", last.Email)
	}
}

func TestSubmitContactCancelled(t *testing.T) {
	contacts := repository.NewContactsRepo()
	a := NewActions(contacts, repository.NewContentRepo(0), nil, ActionsOptions{ActionDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := a.SubmitContact(ctx, domain.ContactInput{Name: "Ann", Email: "a@b.com", Message: "hi"})
	assert.False(t, res.Success)
	assert.Equal(t, MsgContactFailed, res.Message)
	assert.Equal(t, 0, contacts.Count())
}

type panickyStore struct{ *repository.ContactsRepo }

func (panickyStore) Save(context.Context, domain.ContactSubmission) error { panic("boom") }

func TestActionsRecoverIntoFailure(t *testing.T) {
	a := NewActions(panickyStore{repository.NewContactsRepo()}, repository.NewContentRepo(0), nil, ActionsOptions{})
	res := a.SubmitContact(context.Background(), domain.ContactInput{Name: "Ann", Email: "a@b.com", Message: "hi"})
	assert.Equal(t, domain.Fail(MsgContactFailed), res)
}

func TestDeleteContact(t *testing.T) {
	a, contacts, _ := newTestActions()
	ctx := context.Background()
	require.True(t, a.SubmitContact(ctx, domain.ContactInput{Name: "Ann", Email: "a@b.com", Message: "hi"}).Success)
	list, _ := a.Contacts(ctx)

	res := a.DeleteContact(ctx, list[0].ID)
	assert.True(t, res.Success)
	assert.Equal(t, MsgContactDeleted, res.Message)
	assert.Equal(t, 0, contacts.Count())

	assert.True(t, a.DeleteContact(ctx, "unknown").Success)
}

func TestUploadImage(t *testing.T) {
	a, _, _ := newTestActions()
	ctx := context.Background()

	assert.Equal(t, domain.Fail(MsgChooseFile), a.UploadImage(ctx, nil))

	for _, ct := range []string{"image/svg+xml", "application/pdf", "text/plain", "", "image/JPEG"} {
		res := a.UploadImage(ctx, &domain.FileMeta{Name: "x", ContentType: ct, Size: 10})
		assert.Equal(t, domain.Fail(MsgUnsupportedType), res, ct)
	}

	res := a.UploadImage(ctx, &domain.FileMeta{Name: "big.png", ContentType: "image/png", Size: MaxUploadSize + 1})
	assert.Equal(t, domain.Fail(MsgFileTooLarge), res)

	for _, ct := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		res := a.UploadImage(ctx, &domain.FileMeta{Name: "cover photo.png", ContentType: ct, Size: MaxUploadSize})
		require.True(t, res.Success, ct)
		assert.Equal(t, MsgImageUploaded, res.Message)
		assert.Equal(t, "/uploads/1728561600000-cover photo.png", res.ImageURL)
	}

	res = a.UploadImage(ctx, &domain.FileMeta{Name: `C:\tmp\cat.gif`, ContentType: "image/gif", Size: 1})
	assert.True(t, strings.HasSuffix(res.ImageURL, "-cat.gif"), res.ImageURL)

	for _, name := range []string{"", "  ", "/"} {
		res = a.UploadImage(ctx, &domain.FileMeta{Name: name, ContentType: "image/png", Size: 1})
		assert.Equal(t, domain.Fail(MsgChooseFile), res, name)
	}
}

func TestCreatePost(t *testing.T) {
	a, _, content := newTestActions()
	ctx := context.Background()

	res := a.CreatePost(ctx, domain.PostInput{Title: " ", Content: "body"})
	assert.Equal(t, domain.Fail(MsgPostRequired), res)
	res = a.CreatePost(ctx, domain.PostInput{Title: "T", Content: ""})
	assert.Equal(t, domain.Fail(MsgPostRequired), res)

	res = a.CreatePost(ctx, domain.PostInput{Title: "Hello World", Content: "# Hi\nthere", Tags: []string{"go"}})
	require.True(t, res.Success)
	require.NotEmpty(t, res.PostID)

	groups := content.PostGroups()
	var created *domain.Post
	for i := range groups.Drafts {
		if groups.Drafts[i].ID == res.PostID {
			created = &groups.Drafts[i]
		}
	}
	require.NotNil(t, created, "new posts land in drafts")
	assert.Equal(t, "hello-world", created.Slug)
	assert.Equal(t, "Hi there", created.Excerpt)
	assert.Equal(t, fixedNow, created.PublishedAt)
	assert.NotEmpty(t, created.Author.Name)

	_, ok, _ := content.PostBySlug(ctx, "hello-world")
	assert.False(t, ok)
}

func TestCreatePostWithTakenSlugStaysReachable(t *testing.T) {
	a, _, content := newTestActions()
	ctx := context.Background()

	res := a.CreatePost(ctx, domain.PostInput{Title: "Nextjs 15 Features", Content: "body"})
	require.True(t, res.Success)
	require.True(t, a.TogglePublished(ctx, res.PostID).Success)

	posts, err := content.Posts(ctx)
	require.NoError(t, err)
	seen := map[string]int{}
	for _, p := range posts {
		seen[p.Slug]++
	}
	for slug, n := range seen {
		assert.Equal(t, 1, n, slug)
	}

	p, ok, err := content.PostBySlug(ctx, "nextjs-15-features-2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, res.PostID, p.ID)
}

func TestTogglePublished(t *testing.T) {
	a, _, content := newTestActions()
	ctx := context.Background()

	res := a.TogglePublished(ctx, "4")
	require.True(t, res.Success)
	assert.Equal(t, MsgPostPublished, res.Message)
	_, ok, _ := content.PostBySlug(ctx, "go-concurrency-notes")
	assert.True(t, ok)

	res = a.TogglePublished(ctx, "4")
	assert.Equal(t, MsgPostUnpublished, res.Message)

	assert.Equal(t, domain.Fail(MsgPostNotFound), a.TogglePublished(ctx, "nope"))
}
