package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	"github.com/yanqian/news-summarizer/pkg/util"
)

const errorPrefix = "Error: "

// Controller owns the session state and runs at most one summarization at a
// time. The mutex only protects field access; the busy flag is the guard that
// rejects overlapping submissions.
type Controller struct {
	mu    sync.Mutex
	state State

	id        string
	svc       summarizer.Service
	clipboard Clipboard
	notifier  Notifier
	logger    *slog.Logger
}

// NewController builds a controller with default state.
func NewController(svc summarizer.Service, clipboard Clipboard, notifier Notifier, logger *slog.Logger) *Controller {
	id := uuid.NewString()
	return &Controller{
		state:     State{LengthPreset: DefaultPreset},
		id:        id,
		svc:       svc,
		clipboard: clipboard,
		notifier:  notifier,
		logger:    logger.With("component", "session.controller", "session_id", id),
	}
}

// ID identifies the session in logs.
func (c *Controller) ID() string {
	return c.id
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the presentation contract for the current state.
func (c *Controller) View() View {
	return ViewOf(c.State())
}

// SetInput replaces the input text. Editing is allowed while a request is out.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.InputText = text
}

// SetPreset changes the length preset; unknown values are rejected.
func (c *Controller) SetPreset(preset LengthPreset) error {
	if !preset.Valid() {
		return fmt.Errorf("unknown length preset %q", preset)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.LengthPreset = preset
	return nil
}

// Submit sends the current input to the service and blocks until it answers.
// It reports false without touching state when the input is blank or another
// submission is still in flight. On return IsSubmitting is false and exactly
// one of LastSummary and LastError is set.
func (c *Controller) Submit(ctx context.Context) (submitted bool) {
	c.mu.Lock()
	if c.state.IsSubmitting || strings.TrimSpace(c.state.InputText) == "" {
		c.mu.Unlock()
		return false
	}
	c.state.IsSubmitting = true
	c.state.LastError = ""
	c.state.LastSummary = ""
	req := summarizer.Request{Inputs: BuildPayload(c.state.InputText, c.state.LengthPreset)}
	preset := c.state.LengthPreset
	c.mu.Unlock()
	submitted = true

	start := util.NowUTC()
	var summary, failure string
	defer func() {
		if r := recover(); r != nil {
			failure = fmt.Sprintf("%s%v", errorPrefix, r)
			summary = ""
		}
		c.mu.Lock()
		c.state.LastSummary = summary
		c.state.LastError = failure
		c.state.IsSubmitting = false
		c.mu.Unlock()

		if failure != "" {
			c.logger.Warn("summarization failed", "preset", preset, "error", failure, "duration_ms", util.ElapsedMillis(start))
			return
		}
		c.logger.Info("summarization completed", "preset", preset, "summary_len", len(summary), "duration_ms", util.ElapsedMillis(start))
	}()

	c.logger.Debug("summarization started", "preset", preset, "input_len", len(req.Inputs))
	result, err := c.svc.Summarize(ctx, req)
	if err != nil {
		failure = errorPrefix + err.Error()
		return submitted
	}

	switch r := result.(type) {
	case summarizer.ServiceError:
		failure = errorPrefix + r.Message
	case summarizer.ServiceResult:
		summary = r.Text()
	default:
		summary = summarizer.FallbackSummary
	}
	return submitted
}

// CopySummary writes the last summary to the clipboard and notifies the user.
// It reports false without writing when there is no summary.
func (c *Controller) CopySummary(ctx context.Context) (bool, error) {
	summary := c.State().LastSummary
	if summary == "" {
		return false, nil
	}
	if err := c.clipboard.WriteText(ctx, summary); err != nil {
		return false, fmt.Errorf("copy summary: %w", err)
	}
	if c.notifier != nil {
		c.notifier.Notify(CopiedNotice)
	}
	return true, nil
}
