package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	apperrors "github.com/yanqian/news-summarizer/pkg/errors"
)

// DefaultEndpoint is the hosted BART CNN summarization model.
const DefaultEndpoint = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

const maxErrorExcerpt = 4 << 10

// Client posts text to a summarization endpoint speaking the
// {"inputs": ...} / [{"summary_text": ...}] contract.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a client. A zero timeout waits for the endpoint
// indefinitely.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Summarize sends one request and interprets the answer. A body carrying an
// "error" member is returned as a ServiceError whatever the status code.
func (c *Client) Summarize(ctx context.Context, req summarizer.Request) (summarizer.Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, "encode summarization request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, "build summarization request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, "request summarization", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTransport, "read summarization response", err)
	}

	result, decodeErr := summarizer.Decode(body)
	if decodeErr == nil {
		if _, isServiceErr := result.(summarizer.ServiceError); isServiceErr {
			return result, nil
		}
	}
	if resp.StatusCode >= 300 {
		return nil, apperrors.Wrap(apperrors.CodeUpstreamStatus, fmt.Sprintf("summarization failed: status=%d body=%s", resp.StatusCode, excerpt(body)), nil)
	}
	if decodeErr != nil {
		return nil, decodeErr
	}
	return result, nil
}

func excerpt(body []byte) string {
	if len(body) > maxErrorExcerpt {
		body = body[:maxErrorExcerpt]
	}
	return strings.TrimSpace(string(body))
}
