package transport_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/transport"
	"go.trai.ch/pantry/internal/core/domain"
)

func response(status int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParse_NoContent(t *testing.T) {
	var out domain.Recipe
	err := transport.Parse(response(http.StatusNoContent, "application/json", ""), &out)
	require.NoError(t, err)
	assert.Zero(t, out)
}

func TestParse_JSONSuccess(t *testing.T) {
	body := `{"id":"r-1","title":"Birchermüesli","servings":2}`
	var out domain.Recipe
	err := transport.Parse(response(http.StatusOK, "application/json; charset=utf-8", body), &out)
	require.NoError(t, err)

	assert.Equal(t, "r-1", out.ID)
	assert.Equal(t, "Birchermüesli", out.Title)
	assert.Equal(t, 2, out.Servings)
}

func TestParse_NonJSONSuccessYieldsNothing(t *testing.T) {
	var out domain.Recipe
	err := transport.Parse(response(http.StatusOK, "text/html", "<html></html>"), &out)
	require.NoError(t, err)
	assert.Zero(t, out)
}

func TestParse_NonJSONFailureYieldsHTTPError(t *testing.T) {
	err := transport.Parse(response(http.StatusBadGateway, "text/html", "<html>bad gateway</html>"), nil)
	require.Error(t, err)

	var httpErr *domain.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Status)
	assert.Equal(t, "Bad Gateway", httpErr.Reason)
}

func TestParse_ProblemDetailsSurfacedVerbatim(t *testing.T) {
	body := `{"type":"https://errors.example/validation","title":"Validation failed","status":422,"detail":"Servings must be positive"}`
	err := transport.Parse(response(422, "application/problem+json", body), nil)
	require.Error(t, err)

	var pd *domain.ProblemDetails
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, "https://errors.example/validation", pd.Type)
	assert.Equal(t, "Validation failed", pd.Title)
	assert.Equal(t, 422, pd.Status)
	assert.Equal(t, "Servings must be positive", pd.Detail)
}

func TestParse_ProblemDetailsStatusDefaultsToResponse(t *testing.T) {
	body := `{"title":"Conflict"}`
	err := transport.Parse(response(http.StatusConflict, "application/json", body), nil)

	var pd *domain.ProblemDetails
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, http.StatusConflict, pd.Status)
}

func TestParse_GenericJSONFailureUsesMessageField(t *testing.T) {
	body := `{"message":"recipe not found"}`
	err := transport.Parse(response(http.StatusNotFound, "application/json", body), nil)
	require.Error(t, err)

	var httpErr *domain.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "recipe not found", httpErr.Message)
	assert.Contains(t, httpErr.Error(), "recipe not found")
}

func TestParse_GenericJSONFailureFallsBackToStatusLine(t *testing.T) {
	err := transport.Parse(response(http.StatusNotFound, "application/json", `{}`), nil)

	var httpErr *domain.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Not Found", httpErr.Reason)
	assert.Empty(t, httpErr.Message)
}

func TestParse_MalformedJSONFailure(t *testing.T) {
	err := transport.Parse(response(http.StatusInternalServerError, "application/json", `{{{`), nil)

	var httpErr *domain.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestParse_EmptySuccessBody(t *testing.T) {
	var out domain.Recipe
	err := transport.Parse(response(http.StatusOK, "application/json", ""), &out)
	require.NoError(t, err)
	assert.Zero(t, out)
}
