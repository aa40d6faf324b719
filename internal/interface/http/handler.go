package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/news-summarizer/internal/domain/session"
	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	"github.com/yanqian/news-summarizer/pkg/metrics"
)

// TokenCounter estimates prompt usage for logging.
type TokenCounter interface {
	Usage(text string) metrics.TokenUsage
}

// Handler wires the HTTP transport to the summarizer proxy and the session
// controller.
type Handler struct {
	summarizerSvc summarizer.Service
	session       *session.Controller
	tokens        TokenCounter
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(summarySvc summarizer.Service, ctrl *session.Controller, tokens TokenCounter, logger *slog.Logger) *Handler {
	return &Handler{
		summarizerSvc: summarySvc,
		session:       ctrl,
		tokens:        tokens,
		logger:        logger.With("component", "http.handler"),
	}
}

// Summarize is the pass-through proxy route. Errors are written in the flat
// {"error": "..."} shape so callers decode proxy and upstream answers alike.
func (h *Handler) Summarize(c *gin.Context) {
	var req summarizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, summarizer.ErrorBody{Error: "invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Inputs) == "" {
		c.JSON(http.StatusBadRequest, summarizer.ErrorBody{Error: "inputs cannot be empty"})
		return
	}

	usage := h.tokens.Usage(req.Inputs)
	h.logger.Info("forwarding summarization", "request_id", requestIDFrom(c), "prompt_tokens", usage.PromptTokens)

	result, err := h.summarizerSvc.Summarize(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("upstream summarization failed", "request_id", requestIDFrom(c), "error", err)
		c.JSON(http.StatusBadGateway, summarizer.ErrorBody{Error: err.Error()})
		return
	}

	status, body := summarizer.Encode(result)
	c.JSON(status, body)
}

type sessionResponse struct {
	SessionID string        `json:"sessionId"`
	State     session.State `json:"state"`
	View      session.View  `json:"view"`
}

type submitResponse struct {
	Submitted bool `json:"submitted"`
	sessionResponse
}

type inputRequest struct {
	Text string `json:"text"`
}

type presetRequest struct {
	Preset string `json:"preset" binding:"required"`
}

// GetSession returns the session state and its presentation contract.
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// UpdateInput replaces the session input text.
func (h *Handler) UpdateInput(c *gin.Context) {
	var req inputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	h.session.SetInput(req.Text)
	c.JSON(http.StatusOK, h.snapshot())
}

// UpdatePreset changes the summary length preset.
func (h *Handler) UpdatePreset(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	preset, err := session.ParsePreset(req.Preset)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_preset", errMessage(err), err))
		return
	}
	if err := h.session.SetPreset(preset); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_preset", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, h.snapshot())
}

// Submit runs one summarization. A guarded no-op answers submitted=false.
// The upstream call outlives a disconnected client.
func (h *Handler) Submit(c *gin.Context) {
	submitted := h.session.Submit(context.WithoutCancel(c.Request.Context()))
	c.JSON(http.StatusOK, submitResponse{Submitted: submitted, sessionResponse: h.snapshot()})
}

// CopySummary copies the last summary to the server-side clipboard.
func (h *Handler) CopySummary(c *gin.Context) {
	copied, err := h.session.CopySummary(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "copy_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"copied": copied})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) snapshot() sessionResponse {
	state := h.session.State()
	return sessionResponse{
		SessionID: h.session.ID(),
		State:     state,
		View:      session.ViewOf(state),
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
