package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"portfolio-site/internal/adapter/repository"
	"portfolio-site/internal/domain"
	"portfolio-site/internal/metrics"
	"portfolio-site/internal/render"
	"portfolio-site/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct{}

func (stubRenderer) RenderHTMLToPDF(context.Context, string) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type testEnv struct {
	app      *fiber.App
	content  *repository.ContentRepo
	contacts *repository.ContactsRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tpls, err := render.NewTemplates()
	require.NoError(t, err)

	content := repository.NewContentRepo(0)
	contacts := repository.NewContactsRepo()
	site := usecase.NewSite(content)
	boards := metrics.NewBoards(1)
	t.Cleanup(boards.Stop)

	h := NewHandler(Deps{
		SiteTitle: "Test Site",
		Site:      site,
		Actions:   usecase.NewActions(contacts, content, nil, usecase.ActionsOptions{}),
		Exporter:  usecase.NewExporter(site, tpls, stubRenderer{}),
		Admin:     content,
		Boards:    boards,
		Templates: tpls,
	})
	return &testEnv{app: NewApp(h), content: content, contacts: contacts}
}

func (e *testEnv) do(t *testing.T, req *nethttp.Request) (*nethttp.Response, string) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func (e *testEnv) get(t *testing.T, path string) (*nethttp.Response, string) {
	return e.do(t, httptest.NewRequest(nethttp.MethodGet, path, nil))
}

func (e *testEnv) postJSON(t *testing.T, path, body string) (*nethttp.Response, domain.ActionResult) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, raw := e.do(t, req)
	var res domain.ActionResult
	require.NoError(t, json.Unmarshal([]byte(raw), &res), raw)
	return resp, res
}

func TestPagesRender(t *testing.T) {
	e := newTestEnv(t)
	cases := map[string]string{
		"/":                       "Featured projects",
		"/blog":                   "TypeScript Best Practices",
		"/blog/tailwind-css-tips": "Responsive design",
		"/projects":               "github.com",
		"/dashboard":              "Traffic",
		"/dashboard?range=30d":    "30d",
		"/dashboard/analytics":    "Page Load Time",
		"/admin":                  "Notes on Go Concurrency",
		"/demo":                   "Component showcase",
	}
	for path, want := range cases {
		resp, body := e.get(t, path)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Contains(t, body, want, path)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html", path)
	}
}

func TestDashboardShowsPageTrends(t *testing.T) {
	e := newTestEnv(t)
	_, body := e.get(t, "/dashboard")
	assert.Contains(t, body, "+15.3%")
}

func TestBlogHidesDraftsAndShowsTagOverflow(t *testing.T) {
	e := newTestEnv(t)
	_, body := e.get(t, "/blog")
	assert.NotContains(t, body, "Notes on Go Concurrency")
	assert.Contains(t, body, "+1")
}

func TestUnknownSlugIsNotFound(t *testing.T) {
	e := newTestEnv(t)

	resp, body := e.get(t, "/blog/does-not-exist")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "could not be found")

	resp, _ = e.get(t, "/blog/go-concurrency-notes")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = e.get(t, "/api/posts/does-not-exist")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"post not found"}`, body)

	resp, _ = e.get(t, "/blog/does-not-exist/pdf")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = e.get(t, "/api/nothing-here")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"error"`)

	resp, _ = e.get(t, "/nothing-here")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPostPDF(t *testing.T) {
	e := newTestEnv(t)
	resp, body := e.get(t, "/blog/nextjs-15-features/pdf")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "nextjs-15-features.pdf")
	assert.Equal(t, "%PDF-stub", body)
}

func TestAPIReadEndpoints(t *testing.T) {
	e := newTestEnv(t)

	_, body := e.get(t, "/api/posts")
	var posts []domain.Post
	require.NoError(t, json.Unmarshal([]byte(body), &posts))
	assert.Len(t, posts, 3)

	_, body = e.get(t, "/api/posts/typescript-best-practices")
	var post domain.Post
	require.NoError(t, json.Unmarshal([]byte(body), &post))
	assert.Equal(t, "2", post.ID)

	_, body = e.get(t, "/api/projects/featured")
	var projects []domain.Project
	require.NoError(t, json.Unmarshal([]byte(body), &projects))
	assert.Len(t, projects, 2)

	_, body = e.get(t, "/api/skills")
	var skills []domain.Skill
	require.NoError(t, json.Unmarshal([]byte(body), &skills))
	assert.Len(t, skills, 10)

	_, body = e.get(t, "/api/dashboard/analytics")
	assert.Contains(t, body, `"metrics"`)
	assert.NotContains(t, body, `"behavior"`)

	_, body = e.get(t, "/api/admin/stats")
	assert.Contains(t, body, `"systemHealth":"good"`)

	resp, body := e.get(t, "/healthz")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestAPIContact(t *testing.T) {
	e := newTestEnv(t)

	resp, res := e.postJSON(t, "/api/contact", `{"name":"Ann","email":"","message":"hi"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.Fail(usecase.MsgFillRequired), res)

	_, res = e.postJSON(t, "/api/contact", `{"name":"Ann","email":"not-an-email","message":"hi"}`)
	assert.Equal(t, domain.Fail(usecase.MsgInvalidEmail), res)
	assert.Equal(t, 0, e.contacts.Count())

	resp, res = e.postJSON(t, "/api/contact", `{"name":1,"email":"a@b.com","message":"hi"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, res.Success)

	_, res = e.postJSON(t, "/api/contact", `{"name":"Ann","email":"a@b.com","message":"hi"}`)
	assert.True(t, res.Success)
	assert.Equal(t, 1, e.contacts.Count())

	_, body := e.get(t, "/api/admin/contacts")
	var list []domain.ContactSubmission
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 1)

	req := httptest.NewRequest(nethttp.MethodDelete, "/api/admin/contacts/"+list[0].ID, nil)
	_, raw := e.do(t, req)
	assert.Contains(t, raw, `"success":true`)
	assert.Equal(t, 0, e.contacts.Count())
}

func TestContactFormPost(t *testing.T) {
	e := newTestEnv(t)
	form := url.Values{"name": {"Ann"}, "email": {"a@b.com"}, "message": {"Hello there"}}
	req := httptest.NewRequest(nethttp.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, body := e.do(t, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "alert-success")
	assert.Equal(t, 1, e.contacts.Count())

	_, body = e.get(t, "/admin")
	assert.Contains(t, body, "Hello there")
}

func TestAdminTogglePost(t *testing.T) {
	e := newTestEnv(t)

	_, res := e.postJSON(t, "/api/admin/posts/1/toggle", ``)
	assert.True(t, res.Success)
	assert.Equal(t, usecase.MsgPostUnpublished, res.Message)

	resp, _ := e.get(t, "/blog/nextjs-15-features")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	_, body := e.get(t, "/api/admin/posts")
	var groups domain.PostGroups
	require.NoError(t, json.Unmarshal([]byte(body), &groups))
	assert.Len(t, groups.Published, 2)
	assert.Len(t, groups.Drafts, 2)

	req := httptest.NewRequest(nethttp.MethodPost, "/admin/posts/1/toggle", nil)
	resp, _ = e.do(t, req)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))

	resp, _ = e.get(t, "/blog/nextjs-15-features")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, res = e.postJSON(t, "/api/admin/posts/zzz/toggle", ``)
	assert.Equal(t, domain.Fail(usecase.MsgPostNotFound), res)
}

func TestAdminCreatePost(t *testing.T) {
	e := newTestEnv(t)

	resp, res := e.postJSON(t, "/api/admin/posts", `{"title":"New","content":"Body","tags":"go"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, res.Success)

	_, res = e.postJSON(t, "/api/admin/posts", `{"title":"","content":"Body"}`)
	assert.Equal(t, domain.Fail(usecase.MsgPostRequired), res)

	_, res = e.postJSON(t, "/api/admin/posts", `{"title":"New Post","content":"Body","tags":["go"]}`)
	require.True(t, res.Success)
	assert.NotEmpty(t, res.PostID)
	assert.Len(t, e.content.PostGroups().Drafts, 2)
}

func uploadRequest(t *testing.T, filename, contentType string, size int) *nethttp.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0}, size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(nethttp.MethodPost, "/api/admin/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestAdminUpload(t *testing.T) {
	e := newTestEnv(t)

	_, raw := e.do(t, uploadRequest(t, "cat.png", "image/png", 1024))
	var res domain.ActionResult
	require.NoError(t, json.Unmarshal([]byte(raw), &res))
	assert.True(t, res.Success)
	assert.True(t, strings.HasPrefix(res.ImageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(res.ImageURL, "-cat.png"))

	_, raw = e.do(t, uploadRequest(t, "doc.pdf", "application/pdf", 10))
	res = domain.ActionResult{}
	require.NoError(t, json.Unmarshal([]byte(raw), &res))
	assert.Equal(t, domain.Fail(usecase.MsgUnsupportedType), res)

	_, raw = e.do(t, uploadRequest(t, "big.jpg", "image/jpeg", usecase.MaxUploadSize+1))
	res = domain.ActionResult{}
	require.NoError(t, json.Unmarshal([]byte(raw), &res))
	assert.Equal(t, domain.Fail(usecase.MsgFileTooLarge), res)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/admin/uploads", nil)
	_, raw = e.do(t, req)
	res = domain.ActionResult{}
	require.NoError(t, json.Unmarshal([]byte(raw), &res))
	assert.Equal(t, domain.Fail(usecase.MsgChooseFile), res)
}

func TestAdminUploadOverTransportSizeStillAnswersResult(t *testing.T) {
	e := newTestEnv(t)

	resp, raw := e.do(t, uploadRequest(t, "huge.png", "image/png", 9<<20))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var res domain.ActionResult
	require.NoError(t, json.Unmarshal([]byte(raw), &res), raw)
	assert.Equal(t, domain.Fail(usecase.MsgFileTooLarge), res)
}

func TestErrorHandlerMapsBodyTooLargeOnUpload(t *testing.T) {
	h := NewHandler(Deps{SiteTitle: "Test Site"})
	app := fiber.New(fiber.Config{ErrorHandler: h.errorHandler})
	tooLarge := func(c *fiber.Ctx) error { return fiber.ErrRequestEntityTooLarge }
	app.Post(uploadPath, tooLarge)
	app.Post("/api/contact", tooLarge)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodPost, uploadPath, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"message":"`+usecase.MsgFileTooLarge+`"}`, string(body))

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodPost, "/api/contact", nil), -1)
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Contains(t, string(body), `"error"`)
}
