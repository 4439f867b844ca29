package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/passage-analyzer/internal/domain/analyzer"
	apperrors "github.com/yanqian/passage-analyzer/pkg/errors"
)

// Handler wires the HTTP transport to the analyzer service.
type Handler struct {
	analyzerSvc analyzer.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc analyzer.Service, logger *slog.Logger) *Handler {
	return &Handler{
		analyzerSvc: svc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Index renders the passage page without running an analysis.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, h.newPageView())
}

// AnalyzePage runs one analysis and renders the outcome. A failed run shows
// only the error, never a previous result.
func (h *Handler) AnalyzePage(c *gin.Context) {
	view := h.newPageView()
	view.Analyzed = true

	resp, err := h.analyzerSvc.Analyze(c.Request.Context())
	if err != nil {
		view.Error = providerErrorMessage(err)
		c.HTML(statusFor(err), indexTemplate, view)
		return
	}

	view.Analysis = &resp
	c.HTML(http.StatusOK, indexTemplate, view)
}

// Passage returns the fixed passage with its local statistics.
func (h *Handler) Passage(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzerSvc.Passage())
}

// Analyze handles the JSON analysis endpoint.
func (h *Handler) Analyze(c *gin.Context) {
	resp, err := h.analyzerSvc.Analyze(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(statusFor(err), "analyze_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) renderPageError(c *gin.Context, status int, message string) {
	view := h.newPageView()
	view.Error = message
	c.HTML(status, indexTemplate, view)
}

func (h *Handler) newPageView() pageView {
	info := h.analyzerSvc.Passage()
	return pageView{
		Title:     pageTitle,
		Passage:   info,
		WordCount: info.Words,
	}
}

func statusFor(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeLLM:
		return http.StatusBadGateway
	case apperrors.CodeBusy:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func providerErrorMessage(err error) string {
	return "Error from Groq API: " + errMessage(err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
