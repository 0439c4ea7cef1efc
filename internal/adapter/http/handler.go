package http

import (
	"bytes"
	"fmt"
	"strings"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/metrics"
	"portfolio-site/internal/model"
	"portfolio-site/internal/render"
	"portfolio-site/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdminContent interface {
	PostGroups() domain.PostGroups
}

type Handler struct {
	siteTitle string
	site      *usecase.Site
	actions   *usecase.Actions
	exporter  *usecase.Exporter
	admin     AdminContent
	boards    *metrics.Boards
	tpl       *render.Templates
	log       *zap.Logger
}

type Deps struct {
	SiteTitle string
	Site      *usecase.Site
	Actions   *usecase.Actions
	Exporter  *usecase.Exporter
	Admin     AdminContent
	Boards    *metrics.Boards
	Templates *render.Templates
	Log       *zap.Logger
}

func NewHandler(d Deps) *Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		siteTitle: d.SiteTitle,
		site:      d.Site,
		actions:   d.Actions,
		exporter:  d.Exporter,
		admin:     d.Admin,
		boards:    d.Boards,
		tpl:       d.Templates,
		log:       log,
	}
}

func (h *Handler) page(c *fiber.Ctx, status int, name, title string, data interface{}) error {
	var buf bytes.Buffer
	p := render.Page{Site: h.siteTitle, Title: title, Path: c.Path(), Data: data}
	if err := h.tpl.Render(&buf, name, p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func (h *Handler) notFound(c *fiber.Ctx, what string) error {
	return h.page(c, fiber.StatusNotFound, "error", "Not found", what+" could not be found.")
}

// ---- pages ----

func (h *Handler) Home(c *fiber.Ctx) error {
	data, err := h.site.Home(c.UserContext())
	if err != nil {
		return err
	}
	return h.page(c, fiber.StatusOK, "home", "", data)
}

func (h *Handler) Blog(c *fiber.Ctx) error {
	posts, err := h.site.Posts(c.UserContext())
	if err != nil {
		return err
	}
	return h.page(c, fiber.StatusOK, "blog", "Blog", posts)
}

func (h *Handler) BlogPost(c *fiber.Ctx) error {
	view, ok, err := h.site.Post(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	if !ok {
		return h.notFound(c, "The post")
	}
	return h.page(c, fiber.StatusOK, "post", view.Post.Title, view)
}

func (h *Handler) BlogPostPDF(c *fiber.Ctx) error {
	slug := c.Params("slug")
	pdf, ok, err := h.exporter.PostPDF(c.UserContext(), h.siteTitle, slug)
	if err != nil {
		return err
	}
	if !ok {
		return h.notFound(c, "The post")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, slug))
	return c.Send(pdf)
}

func (h *Handler) Projects(c *fiber.Ctx) error {
	projects, err := h.site.Projects(c.UserContext())
	if err != nil {
		return err
	}
	return h.page(c, fiber.StatusOK, "projects", "Projects", projects)
}

type dashboardView struct {
	Range   string
	Ranges  []string
	Stats   domain.RealTimeStats
	Traffic []domain.TrafficPoint
	Devices []domain.DeviceShare
	Pages   []domain.PageStat
	Funnel  []domain.FunnelStage
}

func (h *Handler) Dashboard(c *fiber.Ctx) error {
	rng := c.Query("range", metrics.DefaultTimeRange)
	if !metrics.ValidTimeRange(rng) {
		rng = metrics.DefaultTimeRange
	}
	return h.page(c, fiber.StatusOK, "dashboard", "Dashboard", dashboardView{
		Range:   rng,
		Ranges:  metrics.TimeRanges,
		Stats:   h.boards.RealTime.Snapshot(),
		Traffic: metrics.Traffic(),
		Devices: metrics.Devices(),
		Pages:   metrics.Pages(),
		Funnel:  metrics.Funnel(),
	})
}

type analyticsView struct {
	Stats       domain.AnalyticsStats    `json:"stats"`
	Metrics     []domain.Metric          `json:"metrics"`
	Behavior    []domain.BehaviorRow     `json:"behavior,omitempty"`
	Conversions []domain.ConversionEvent `json:"conversions,omitempty"`
}

func (h *Handler) analytics(withTables bool) analyticsView {
	s := h.boards.Analytics.Snapshot()
	v := analyticsView{Stats: s, Metrics: metrics.Classify(s)}
	if withTables {
		v.Behavior = metrics.Behavior()
		v.Conversions = metrics.Conversions()
	}
	return v
}

func (h *Handler) Analytics(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, "analytics", "Analytics", h.analytics(true))
}

type adminView struct {
	Stats    domain.AdminStats
	Activity []domain.Activity
	Posts    domain.PostGroups
	Contacts []domain.ContactSubmission
}

func (h *Handler) Admin(c *fiber.Ctx) error {
	contacts, err := h.actions.Contacts(c.UserContext())
	if err != nil {
		return err
	}
	return h.page(c, fiber.StatusOK, "admin", "Admin", adminView{
		Stats:    h.boards.Admin.Snapshot(),
		Activity: metrics.RecentActivity(),
		Posts:    h.admin.PostGroups(),
		Contacts: contacts,
	})
}

func (h *Handler) AdminToggleForm(c *fiber.Ctx) error {
	res := h.actions.TogglePublished(c.UserContext(), c.Params("id"))
	if !res.Success {
		h.log.Info("toggle rejected", zap.String("id", c.Params("id")), zap.String("reason", res.Message))
	}
	return c.Redirect("/admin", fiber.StatusSeeOther)
}

type demoView struct {
	Badges []string
	Alerts []domain.ActionResult
}

func (h *Handler) Demo(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, "demo", "Components", demoView{
		Badges: []string{"success", "warning", "info", "critical"},
		Alerts: []domain.ActionResult{domain.Ok("Saved successfully."), domain.Fail("Something went wrong.")},
	})
}

// ContactForm handles the landing page form post.
func (h *Handler) ContactForm(c *fiber.Ctx) error {
	var in domain.ContactInput
	if err := c.BodyParser(&in); err != nil {
		res := domain.Fail(usecase.MsgFillRequired)
		return h.page(c, fiber.StatusBadRequest, "contact_result", "Contact", &res)
	}
	res := h.actions.SubmitContact(c.UserContext(), in)
	return h.page(c, fiber.StatusOK, "contact_result", "Contact", &res)
}

// ---- JSON API ----

func (h *Handler) APIProfile(c *fiber.Ctx) error {
	p, err := h.site.Profile(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *Handler) APISkills(c *fiber.Ctx) error {
	skills, err := h.site.Skills(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(skills)
}

func (h *Handler) APIProjects(c *fiber.Ctx) error {
	projects, err := h.site.Projects(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(projects)
}

func (h *Handler) APIFeaturedProjects(c *fiber.Ctx) error {
	projects, err := h.site.FeaturedProjects(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(projects)
}

func (h *Handler) APIPosts(c *fiber.Ctx) error {
	posts, err := h.site.Posts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

func (h *Handler) APIPost(c *fiber.Ctx) error {
	view, ok, err := h.site.Post(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
	}
	return c.JSON(view.Post)
}

// bindJSON validates the body shape against schema before decoding it. Form
// bodies skip the schema check.
func bindJSON(c *fiber.Ctx, schema string, out interface{}) error {
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationJSON) {
		if err := model.ValidateJSON(schema, c.Body()); err != nil {
			return err
		}
	}
	return c.BodyParser(out)
}

func (h *Handler) APIContact(c *fiber.Ctx) error {
	var in domain.ContactInput
	if err := bindJSON(c, model.ContactSchema, &in); err != nil {
		h.log.Debug("invalid contact payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(domain.Fail(usecase.MsgFillRequired))
	}
	return c.JSON(h.actions.SubmitContact(c.UserContext(), in))
}

func (h *Handler) APIDashboardStats(c *fiber.Ctx) error {
	return c.JSON(h.boards.RealTime.Snapshot())
}

func (h *Handler) APIAnalytics(c *fiber.Ctx) error {
	return c.JSON(h.analytics(false))
}

func (h *Handler) APIAdminStats(c *fiber.Ctx) error {
	return c.JSON(h.boards.Admin.Snapshot())
}

func (h *Handler) APIAdminPosts(c *fiber.Ctx) error {
	return c.JSON(h.admin.PostGroups())
}

func (h *Handler) APICreatePost(c *fiber.Ctx) error {
	var in domain.PostInput
	if err := bindJSON(c, model.PostSchema, &in); err != nil {
		h.log.Debug("invalid post payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(domain.Fail(usecase.MsgPostRequired))
	}
	return c.JSON(h.actions.CreatePost(c.UserContext(), in))
}

func (h *Handler) APITogglePost(c *fiber.Ctx) error {
	return c.JSON(h.actions.TogglePublished(c.UserContext(), c.Params("id")))
}

func (h *Handler) APIContacts(c *fiber.Ctx) error {
	contacts, err := h.actions.Contacts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(contacts)
}

func (h *Handler) APIDeleteContact(c *fiber.Ctx) error {
	return c.JSON(h.actions.DeleteContact(c.UserContext(), c.Params("id")))
}

func (h *Handler) APIUpload(c *fiber.Ctx) error {
	var meta *domain.FileMeta
	if fh, err := c.FormFile("file"); err == nil {
		meta = &domain.FileMeta{
			Name:        fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Size:        fh.Size,
		}
	}
	return c.JSON(h.actions.UploadImage(c.UserContext(), meta))
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
