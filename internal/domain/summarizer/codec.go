package summarizer

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apperrors "github.com/yanqian/news-summarizer/pkg/errors"
)

// Decode maps a raw response body onto a Result. The body is either a sequence
// of result objects or an object with an "error" member.
func Decode(raw []byte) (Result, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, apperrors.Wrap(apperrors.CodeDecode, "empty response body", nil)
	}
	if !gjson.ValidBytes(raw) {
		return nil, apperrors.Wrap(apperrors.CodeDecode, "malformed response body", nil)
	}

	root := gjson.ParseBytes(raw)
	switch {
	case root.Type == gjson.Null:
		return nil, apperrors.Wrap(apperrors.CodeDecode, "response body is null", nil)
	case root.IsObject():
		if errField := root.Get("error"); truthy(errField) {
			return ServiceError{Message: text(errField)}, nil
		}
		return ServiceResult{}, nil
	case root.IsArray():
		items := root.Array()
		if len(items) == 0 {
			return ServiceResult{}, nil
		}
		if summary := items[0].Get("summary_text"); truthy(summary) {
			return ServiceResult{Summary: text(summary)}, nil
		}
		return ServiceResult{}, nil
	default:
		return ServiceResult{}, nil
	}
}

// Encode renders a Result back into the wire shape along with the status a
// proxy should answer with.
func Encode(result Result) (int, any) {
	switch r := result.(type) {
	case ServiceError:
		return http.StatusServiceUnavailable, ErrorBody{Error: r.Message}
	case ServiceResult:
		if r.Summary == "" {
			return http.StatusOK, []Item{{}}
		}
		return http.StatusOK, []Item{{SummaryText: r.Summary}}
	default:
		return http.StatusOK, []Item{}
	}
}

func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	case gjson.True, gjson.JSON:
		return true
	default:
		return false
	}
}

func text(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	return v.Raw
}
