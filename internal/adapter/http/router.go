package http

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/render"
	"portfolio-site/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// maxRequestBody must stay above usecase.MaxUploadSize: images over the
// upload limit are rejected by the upload action, not by the transport.
const maxRequestBody = 32 * 1024 * 1024

const uploadPath = "/api/admin/uploads"

// NewApp wires the handler into a fiber app with recovery, request logging
// and an error handler that answers JSON under /api and HTML elsewhere.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               h.siteTitle,
		DisableStartupMessage: true,
		BodyLimit:             maxRequestBody,
		ErrorHandler:          h.errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestLogger(h.log))

	app.Get("/", h.Home)
	app.Get("/blog", h.Blog)
	app.Get("/blog/:slug", h.BlogPost)
	app.Get("/blog/:slug/pdf", h.BlogPostPDF)
	app.Get("/projects", h.Projects)
	app.Get("/dashboard", h.Dashboard)
	app.Get("/dashboard/analytics", h.Analytics)
	app.Get("/admin", h.Admin)
	app.Post("/admin/posts/:id/toggle", h.AdminToggleForm)
	app.Get("/demo", h.Demo)
	app.Post("/contact", h.ContactForm)
	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	api.Get("/profile", h.APIProfile)
	api.Get("/skills", h.APISkills)
	api.Get("/projects", h.APIProjects)
	api.Get("/projects/featured", h.APIFeaturedProjects)
	api.Get("/posts", h.APIPosts)
	api.Get("/posts/:slug", h.APIPost)
	api.Post("/contact", h.APIContact)
	api.Get("/dashboard/stats", h.APIDashboardStats)
	api.Get("/dashboard/analytics", h.APIAnalytics)

	admin := api.Group("/admin")
	admin.Get("/stats", h.APIAdminStats)
	admin.Get("/posts", h.APIAdminPosts)
	admin.Post("/posts", h.APICreatePost)
	admin.Post("/posts/:id/toggle", h.APITogglePost)
	admin.Get("/contacts", h.APIContacts)
	admin.Delete("/contacts/:id", h.APIDeleteContact)
	admin.Post("/uploads", h.APIUpload)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app
}

func (h *Handler) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code == fiber.StatusRequestEntityTooLarge && c.Path() == uploadPath {
		return c.JSON(domain.Fail(usecase.MsgFileTooLarge))
	}
	if code >= fiber.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}

	msg := "Something went wrong, please try again later."
	if code == fiber.StatusNotFound {
		msg = "The page could not be found."
	} else if fe != nil && code < fiber.StatusInternalServerError {
		msg = fe.Message
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
	var buf bytes.Buffer
	title := "Error"
	if code == fiber.StatusNotFound {
		title = "Not found"
	}
	if rerr := h.tpl.Render(&buf, "error", render.Page{Site: h.siteTitle, Title: title, Path: c.Path(), Data: msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	c.Type("html", "utf-8")
	return c.Status(code).Send(buf.Bytes())
}

func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
