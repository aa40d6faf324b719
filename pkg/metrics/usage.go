package metrics

// TokenUsage captures token counts attributed to a summarization request.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens,omitempty"`
	TotalTokens      int `json:"totalTokens"`
}

// PromptOnly records usage for calls where only the input side is known.
func PromptOnly(tokens int) TokenUsage {
	return TokenUsage{PromptTokens: tokens, TotalTokens: tokens}
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}
