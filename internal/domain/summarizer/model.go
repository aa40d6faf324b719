package summarizer

import "context"

// FallbackSummary is shown when the service answers without a summary.
const FallbackSummary = "No summary returned."

// Request is the payload accepted by the summarization endpoint.
type Request struct {
	Inputs string `json:"inputs"`
}

// Result is what a summarization call produced: either a ServiceError or a
// ServiceResult.
type Result interface {
	isResult()
}

// ServiceError is reported by the service inside an otherwise readable body.
type ServiceError struct {
	Message string
}

// ServiceResult carries the first summary of the returned sequence. Summary is
// empty when the service did not include one.
type ServiceResult struct {
	Summary string
}

func (ServiceError) isResult()  {}
func (ServiceResult) isResult() {}

// Text returns the summary or FallbackSummary when it is absent.
func (r ServiceResult) Text() string {
	if r.Summary == "" {
		return FallbackSummary
	}
	return r.Summary
}

// Service produces summaries for raw text.
type Service interface {
	Summarize(ctx context.Context, req Request) (Result, error)
}

// Item is one element of the result sequence on the wire.
type Item struct {
	SummaryText string `json:"summary_text,omitempty"`
}

// ErrorBody is the wire shape of a service-reported error.
type ErrorBody struct {
	Error string `json:"error"`
}
