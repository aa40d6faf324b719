package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	apperrors "github.com/yanqian/news-summarizer/pkg/errors"
)

func TestSubmitBlankInputIsNoop(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		svc := &stubService{}
		ctrl := newControllerUnderTest(svc, nil)
		ctrl.SetInput(input)
		before := ctrl.State()

		require.False(t, ctrl.Submit(context.Background()))
		require.Equal(t, before, ctrl.State())
		require.Zero(t, svc.callCount())
	}
}

func TestSubmitMarksBusyBeforeCalling(t *testing.T) {
	var ctrl *Controller
	var during State
	svc := &stubService{
		fn: func(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
			during = ctrl.State()
			return summarizer.ServiceResult{Summary: "X"}, nil
		},
	}
	ctrl = newControllerUnderTest(svc, nil)
	ctrl.SetInput("some article")

	require.True(t, ctrl.Submit(context.Background()))
	require.True(t, during.IsSubmitting)
	require.Empty(t, during.LastError)
	require.Empty(t, during.LastSummary)
	require.Equal(t, SubmitLabelBusy, ViewOf(during).SubmitLabel)
	require.False(t, ViewOf(during).CanSubmit)
}

func TestSubmitOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		fn          func(ctx context.Context, req summarizer.Request) (summarizer.Result, error)
		wantSummary string
		wantError   string
		errPrefix   bool
	}{
		{
			name: "summary returned",
			fn: func(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
				return summarizer.ServiceResult{Summary: "X"}, nil
			},
			wantSummary: "X",
		},
		{
			name: "summary missing",
			fn: func(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
				return summarizer.ServiceResult{}, nil
			},
			wantSummary: "No summary returned.",
		},
		{
			name: "service error",
			fn: func(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
				return summarizer.ServiceError{Message: "model loading"}, nil
			},
			wantError: "Error: model loading",
		},
		{
			name: "transport failure",
			fn: func(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
				return nil, apperrors.Wrap(apperrors.CodeTransport, "request summarization", errors.New("connection refused"))
			},
			wantError: "Error: request summarization: connection refused",
		},
		{
			name: "malformed body",
			fn: func(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
				return nil, apperrors.Wrap(apperrors.CodeDecode, "malformed response body", nil)
			},
			wantError: "Error: malformed response body",
		},
		{
			name: "collaborator panics",
			fn: func(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
				panic("boom")
			},
			wantError: "Error: boom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := newControllerUnderTest(&stubService{fn: tt.fn}, nil)
			ctrl.SetInput("Go is a programming language.")

			require.True(t, ctrl.Submit(context.Background()))

			state := ctrl.State()
			require.False(t, state.IsSubmitting)
			require.Equal(t, tt.wantSummary, state.LastSummary)
			require.Equal(t, tt.wantError, state.LastError)
			require.True(t, (state.LastSummary == "") != (state.LastError == ""))
			if tt.wantError != "" {
				require.True(t, strings.HasPrefix(state.LastError, "Error: "))
			}
		})
	}
}

func TestSubmitClearsPreviousOutcome(t *testing.T) {
	outcomes := []summarizer.Result{
		summarizer.ServiceError{Message: "model loading"},
		summarizer.ServiceResult{Summary: "fresh"},
	}
	var i int
	svc := &stubService{
		fn: func(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
			r := outcomes[i]
			i++
			return r, nil
		},
	}
	ctrl := newControllerUnderTest(svc, nil)
	ctrl.SetInput("text")

	require.True(t, ctrl.Submit(context.Background()))
	require.Equal(t, "Error: model loading", ctrl.State().LastError)

	require.True(t, ctrl.Submit(context.Background()))
	require.Equal(t, "fresh", ctrl.State().LastSummary)
	require.Empty(t, ctrl.State().LastError)
}

func TestSubmitPayloadCarriesPresetDirective(t *testing.T) {
	tests := []struct {
		preset LengthPreset
		want   string
	}{
		{preset: PresetShort, want: "1-2 sentences"},
		{preset: PresetMedium, want: "3-4 sentences"},
		{preset: PresetDetailed, want: "key points of the text above in detail"},
	}
	for _, tt := range tests {
		svc := &stubService{}
		ctrl := newControllerUnderTest(svc, nil)
		ctrl.SetInput("Article body.")
		require.NoError(t, ctrl.SetPreset(tt.preset))

		require.True(t, ctrl.Submit(context.Background()))
		require.Len(t, svc.requests, 1)
		require.True(t, strings.HasPrefix(svc.requests[0].Inputs, "Article body."))
		require.Contains(t, svc.requests[0].Inputs, tt.want)
	}
}

func TestSubmitWhileInFlightIsBlocked(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	svc := &stubService{
		fn: func(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
			close(entered)
			<-release
			return summarizer.ServiceResult{Summary: "first"}, nil
		},
	}
	ctrl := newControllerUnderTest(svc, nil)
	ctrl.SetInput("text")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Submit(context.Background())
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never reached the service")
	}

	busy := ctrl.State()
	require.False(t, ctrl.Submit(context.Background()))
	require.Equal(t, busy, ctrl.State())

	// Input stays editable while the request is out.
	ctrl.SetInput("edited")
	require.Equal(t, "edited", ctrl.State().InputText)

	close(release)
	wg.Wait()

	require.Equal(t, 1, svc.callCount())
	require.Equal(t, "first", ctrl.State().LastSummary)
	require.False(t, ctrl.State().IsSubmitting)
}

func TestSetPresetRejectsUnknown(t *testing.T) {
	ctrl := newControllerUnderTest(&stubService{}, nil)
	require.Equal(t, PresetMedium, ctrl.State().LengthPreset)
	require.Error(t, ctrl.SetPreset("tiny"))
	require.Equal(t, PresetMedium, ctrl.State().LengthPreset)
}

func TestCopySummary(t *testing.T) {
	clip := &stubClipboard{}
	var notices []string
	ctrl := NewController(&stubService{}, clip, NotifierFunc(func(m string) { notices = append(notices, m) }), newTestLogger())

	copied, err := ctrl.CopySummary(context.Background())
	require.NoError(t, err)
	require.False(t, copied)
	require.Empty(t, clip.writes)
	require.Empty(t, notices)

	ctrl.SetInput("text")
	require.True(t, ctrl.Submit(context.Background()))

	copied, err = ctrl.CopySummary(context.Background())
	require.NoError(t, err)
	require.True(t, copied)
	require.Equal(t, []string{"summary"}, clip.writes)
	require.Equal(t, []string{CopiedNotice}, notices)
}

func TestCopySummaryClipboardFailure(t *testing.T) {
	clip := &stubClipboard{err: errors.New("no display")}
	var notified bool
	ctrl := NewController(&stubService{}, clip, NotifierFunc(func(string) { notified = true }), newTestLogger())
	ctrl.SetInput("text")
	ctrl.Submit(context.Background())

	copied, err := ctrl.CopySummary(context.Background())
	require.ErrorContains(t, err, "no display")
	require.False(t, copied)
	require.False(t, notified)
}

func newControllerUnderTest(svc summarizer.Service, clip Clipboard) *Controller {
	if clip == nil {
		clip = &stubClipboard{}
	}
	return NewController(svc, clip, nil, newTestLogger())
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubService struct {
	mu       sync.Mutex
	fn       func(ctx context.Context, req summarizer.Request) (summarizer.Result, error)
	requests []summarizer.Request
}

func (s *stubService) Summarize(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	fn := s.fn
	s.mu.Unlock()
	if fn != nil {
		return fn(ctx, req)
	}
	return summarizer.ServiceResult{Summary: "summary"}, nil
}

func (s *stubService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

type stubClipboard struct {
	writes []string
	err    error
}

func (s *stubClipboard) WriteText(ctx context.Context, text string) error {
	if s.err != nil {
		return s.err
	}
	s.writes = append(s.writes, text)
	return nil
}
