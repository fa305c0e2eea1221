package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse decodes resp according to the recipe service's conventions and
// closes the body.
//
//   - 204 No Content yields nothing, regardless of out.
//   - A non-JSON body on a successful status yields nothing; on a failing
//     status it yields an HTTPError with the status and reason phrase.
//   - A JSON body on a failing status is surfaced as ProblemDetails when
//     it conforms to the problem-detail shape, otherwise as an HTTPError
//     carrying any "message" field present.
//   - A JSON body on a successful status is decoded into out (which may be
//     nil to discard it).
func Parse(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !isJSON(resp.Header.Get("Content-Type")) {
		if success {
			return nil
		}
		return &domain.HTTPError{Status: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zerr.Wrap(err, "failed to read response body")
	}

	if !success {
		return errorFromBody(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to decode response body"), "status", resp.StatusCode)
	}
	return nil
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "application/problem+json")
}

// errorBody is the loose decode probe for failing JSON responses.
type errorBody struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Status  int    `json:"status"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func errorFromBody(status int, body []byte) error {
	var probe errorBody
	if err := json.Unmarshal(body, &probe); err != nil {
		return &domain.HTTPError{Status: status, Reason: http.StatusText(status)}
	}

	if probe.Title != "" || probe.Type != "" || probe.Detail != "" {
		pd := &domain.ProblemDetails{
			Type:   probe.Type,
			Title:  probe.Title,
			Status: probe.Status,
			Detail: probe.Detail,
		}
		if pd.Status == 0 {
			pd.Status = status
		}
		return pd
	}

	return &domain.HTTPError{
		Status:  status,
		Reason:  http.StatusText(status),
		Message: probe.Message,
	}
}
