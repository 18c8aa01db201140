package http

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/curtsdirt/site/internal/estimate"
	"github.com/curtsdirt/site/internal/http/middleware"
	"github.com/curtsdirt/site/internal/model"
	"github.com/curtsdirt/site/internal/service"
	"github.com/curtsdirt/site/internal/site"
)

type Handler struct {
	site    *service.SiteService
	content site.Content
	pages   *template.Template
	log     zerolog.Logger
	now     func() time.Time
}

func NewHandler(svc *service.SiteService, content site.Content, pages *template.Template, log zerolog.Logger) *Handler {
	return &Handler{
		site:    svc,
		content: content,
		pages:   pages,
		log:     log,
		now:     time.Now,
	}
}

func (h *Handler) Register(router *gin.Engine, api *gin.RouterGroup) {
	router.SetHTMLTemplate(h.pages)
	router.GET("/", h.index)
	router.POST("/contact", h.submitContactForm)
	router.GET("/healthz", h.health)
	router.GET("/static/site.js", h.script)

	api.GET("/estimate", h.getEstimate)
	api.GET("/estimate/:format", h.exportEstimate)
	api.POST("/contact", h.composeContact)
}

type pageData struct {
	Content  site.Content
	Input    model.DimensionInput
	Estimate model.VolumeEstimate
	Display  estimate.Display
	Year     int
}

func (h *Handler) index(c *gin.Context) {
	var input model.DimensionInput
	_ = c.ShouldBindQuery(&input)
	input = h.site.WithInputDefaults(input, func(field string) bool {
		_, ok := c.GetQuery(field)
		return ok
	})

	est := h.site.Estimate(input)
	c.HTML(http.StatusOK, "index.html", pageData{
		Content:  h.content,
		Input:    input,
		Estimate: est,
		Display:  h.site.Display(est),
		Year:     h.now().Year(),
	})
}

type estimateResponse struct {
	Estimate model.VolumeEstimate `json:"estimate"`
	Display  estimate.Display     `json:"display"`
}

func (h *Handler) getEstimate(c *gin.Context) {
	var input model.DimensionInput
	_ = c.ShouldBindQuery(&input)

	est := h.site.Estimate(input)
	c.JSON(http.StatusOK, estimateResponse{
		Estimate: est,
		Display:  h.site.Display(est),
	})
}

func (h *Handler) exportEstimate(c *gin.Context) {
	format, err := service.ParseDocumentFormat(c.Param("format"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	var input model.DimensionInput
	_ = c.ShouldBindQuery(&input)

	result, err := h.site.ExportEstimate(c.Request.Context(), input, format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func (h *Handler) composeContact(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.site.ComposeContact(req))
}

// submitContactForm hands the composed draft to the visitor's mail client when
// the page script is not running. With the script, the draft comes from
// composeContact and the form is reset in place.
func (h *Handler) submitContactForm(c *gin.Context) {
	var req model.ContactRequest
	_ = c.ShouldBind(&req)

	draft := h.site.ComposeContact(req)
	h.log.Debug().
		Str("request_id", middleware.GetRequestID(c)).
		Bool("has_name", req.Name != "").
		Bool("has_email", req.Email != "").
		Bool("has_details", req.Details != "").
		Msg("contact draft composed")

	c.Redirect(http.StatusSeeOther, draft.URI)
}

func (h *Handler) script(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/javascript; charset=utf-8", site.Script)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyArea):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request canceled"})
	default:
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("export estimate failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
