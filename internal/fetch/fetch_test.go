package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	// Create test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><form><input name='email'></form></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "name='email'")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractFormHTML_SelectsApplicationForm(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<form id="search"><input name="q"></form>
			<form id="application-form">
				<input name="first_name">
				<input name="email">
			</form>
		</body>
	</html>`

	fragment, err := ExtractFormHTML(html, DefaultFormSelectors())
	require.NoError(t, err)
	assert.Contains(t, fragment, "first_name")
	assert.NotContains(t, fragment, `name="q"`)
}

func TestExtractFormHTML_FallbackToBody(t *testing.T) {
	// Some career pages render controls without a form element
	html := `
	<html>
		<body>
			<div class="fields">
				<input name="email">
			</div>
		</body>
	</html>`

	fragment, err := ExtractFormHTML(html, []string{"#application-form"})
	require.NoError(t, err)
	assert.Contains(t, fragment, `name="email"`)
}

func TestExtractFormHTML_StripsScripts(t *testing.T) {
	html := `
	<html>
		<body>
			<script>var x = "input";</script>
			<form><input name="city"></form>
		</body>
	</html>`

	fragment, err := ExtractFormHTML(html, DefaultFormSelectors())
	require.NoError(t, err)
	assert.Contains(t, fragment, "city")
	assert.NotContains(t, fragment, "var x")
}

func TestDefaultFormSelectors(t *testing.T) {
	selectors := DefaultFormSelectors()
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, "#application-form")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(0))
	assert.False(t, ShouldUseBrowser(3))
}
