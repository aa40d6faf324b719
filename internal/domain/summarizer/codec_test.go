package summarizer

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/news-summarizer/pkg/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Result
		wantErr string
	}{
		{
			name: "summary from first element",
			body: `[{"summary_text":"X"},{"summary_text":"ignored"}]`,
			want: ServiceResult{Summary: "X"},
		},
		{
			name: "missing summary field",
			body: `[{}]`,
			want: ServiceResult{},
		},
		{
			name: "empty summary treated as absent",
			body: `[{"summary_text":""}]`,
			want: ServiceResult{},
		},
		{
			name: "empty sequence",
			body: `[]`,
			want: ServiceResult{},
		},
		{
			name: "service error",
			body: `{"error":"model loading","estimated_time":20.5}`,
			want: ServiceError{Message: "model loading"},
		},
		{
			name: "non string error kept raw",
			body: `{"error":["too long"]}`,
			want: ServiceError{Message: `["too long"]`},
		},
		{
			name: "empty error is not an error",
			body: `{"error":""}`,
			want: ServiceResult{},
		},
		{
			name: "object without error",
			body: `{"summary_text":"not a sequence"}`,
			want: ServiceResult{},
		},
		{
			name: "scalar body",
			body: `"plain"`,
			want: ServiceResult{},
		},
		{
			name:    "null body",
			body:    `null`,
			wantErr: "response body is null",
		},
		{
			name:    "malformed body",
			body:    `<html>bad gateway</html>`,
			wantErr: "malformed response body",
		},
		{
			name:    "empty body",
			body:    "  ",
			wantErr: "empty response body",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode([]byte(tt.body))
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				require.True(t, apperrors.IsCode(err, apperrors.CodeDecode))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestServiceResultText(t *testing.T) {
	require.Equal(t, "X", ServiceResult{Summary: "X"}.Text())
	require.Equal(t, FallbackSummary, ServiceResult{}.Text())
}

func TestEncode(t *testing.T) {
	status, body := Encode(ServiceResult{Summary: "done"})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []Item{{SummaryText: "done"}}, body)

	status, body = Encode(ServiceResult{})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []Item{{}}, body)

	status, body = Encode(ServiceError{Message: "model loading"})
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, ErrorBody{Error: "model loading"}, body)
}
